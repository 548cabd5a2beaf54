package atlasmap

import "math"

// Transform is a 2D affine matrix laid out as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Transform [6]float64

// IdentityTransform is the identity affine matrix.
var IdentityTransform = Transform{1, 0, 0, 1, 0, 0}

// TranslateTransform returns a matrix that translates by (x, y).
func TranslateTransform(x, y float64) Transform {
	return Transform{1, 0, 0, 1, x, y}
}

// ScaleTransform returns a matrix that scales by (sx, sy) about the origin.
func ScaleTransform(sx, sy float64) Transform {
	return Transform{sx, 0, 0, sy, 0, 0}
}

// Multiply returns t * child, i.e. child is applied first.
func (t Transform) Multiply(child Transform) Transform {
	return Transform{
		t[0]*child[0] + t[2]*child[1],
		t[1]*child[0] + t[3]*child[1],
		t[0]*child[2] + t[2]*child[3],
		t[1]*child[2] + t[3]*child[3],
		t[0]*child[4] + t[2]*child[5] + t[4],
		t[1]*child[4] + t[3]*child[5] + t[5],
	}
}

// Invert returns the inverse matrix.
// Returns the identity matrix if t is singular (determinant ≈ 0).
func (t Transform) Invert() Transform {
	det := t[0]*t[3] - t[2]*t[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityTransform
	}
	invDet := 1.0 / det
	a := t[3] * invDet
	b := -t[1] * invDet
	c := -t[2] * invDet
	d := t[0] * invDet
	return Transform{
		a, b, c, d,
		-(a*t[4] + c*t[5]),
		-(b*t[4] + d*t[5]),
	}
}

// Apply transforms the point (x, y).
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t[0]*x + t[2]*y + t[4], t[1]*x + t[3]*y + t[5]
}

// computeLocalTransform computes the local affine matrix from the node's
// transform properties.
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Rotate -> Translate(X, Y)
func computeLocalTransform(n *Node) Transform {
	sx := n.ScaleX
	sy := n.ScaleY

	sin, cos := math.Sincos(n.Rotation)

	preTx := -n.PivotX * sx
	preTy := -n.PivotY * sy

	return Transform{
		cos * sx,
		sin * sx,
		-sin * sy,
		cos * sy,
		cos*preTx - sin*preTy + n.X,
		sin*preTx + cos*preTy + n.Y,
	}
}

// updateWorldTransform recomputes a node's worldTransform.
// parentRecomputed indicates whether the parent was recomputed this frame,
// which forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parentTransform Transform, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = parentTransform.Multiply(computeLocalTransform(n))
		n.transformDirty = false
	}

	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.transformDirty = true
}

// SetRotation sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// SetPivot sets the node's PivotX and PivotY and marks it dirty.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX = px
	n.PivotY = py
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// WorldTransform returns the node's most recently computed world matrix.
func (n *Node) WorldTransform() Transform {
	return n.worldTransform
}

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return n.worldTransform.Invert().Apply(wx, wy)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return n.worldTransform.Apply(lx, ly)
}
