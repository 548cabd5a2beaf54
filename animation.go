package atlasmap

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// NodeTween eases a pair of node fields, such as a map layer's position when
// it slides into view. Call Update each tick until Done. Disposing the node
// ends the tween without touching it again.
type NodeTween struct {
	node   *Node
	x, y   *float64
	tx, ty *gween.Tween
	Done   bool
}

func newNodeTween(n *Node, x, y *float64, toX, toY float64, duration float32, fn ease.TweenFunc) *NodeTween {
	return &NodeTween{
		node: n,
		x:    x,
		y:    y,
		tx:   gween.New(float32(*x), float32(toX), duration, fn),
		ty:   gween.New(float32(*y), float32(toY), duration, fn),
	}
}

// TweenPosition moves n from its current position to (toX, toY).
func TweenPosition(n *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *NodeTween {
	return newNodeTween(n, &n.X, &n.Y, toX, toY, duration, fn)
}

// TweenScale scales n from its current scale to (toSX, toSY).
func TweenScale(n *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *NodeTween {
	return newNodeTween(n, &n.ScaleX, &n.ScaleY, toSX, toSY, duration, fn)
}

// Update advances the tween by dt seconds and marks the node's transform dirty.
func (t *NodeTween) Update(dt float32) {
	if t.Done {
		return
	}
	if t.node.IsDisposed() {
		t.Done = true
		return
	}
	x, doneX := t.tx.Update(dt)
	y, doneY := t.ty.Update(dt)
	*t.x, *t.y = float64(x), float64(y)
	t.Done = doneX && doneY
	t.node.MarkDirty()
}
