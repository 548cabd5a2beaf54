package atlasmap

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene owns the node tree and cameras, and renders every map node each frame.
type Scene struct {
	root    *Node
	cameras []*Camera
	debug   bool

	// ClearColor, when non-nil, fills the screen before drawing.
	ClearColor *Color

	// ScreenshotDir is where queued screenshots are written. Empty means
	// DefaultScreenshotDir.
	ScreenshotDir string

	sink            ImageSink
	stats           debugStats
	screenshotQueue []string
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{root: NewContainer("root")}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update refreshes world transforms and advances cameras by one tick.
func (s *Scene) Update() {
	s.UpdateDT(float32(1.0 / float64(ebiten.TPS())))
}

// UpdateDT is Update with an explicit time step in seconds.
func (s *Scene) UpdateDT(dt float32) {
	updateWorldTransform(s.root, IdentityTransform, false)
	for _, cam := range s.cameras {
		cam.Update(dt)
	}
}

// Draw renders the scene onto screen, once per camera. Without cameras the
// scene is drawn with the identity view across the whole screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor != nil {
		screen.Fill(s.ClearColor.toRGBA())
	}

	if len(s.cameras) == 0 {
		s.sink.SetTarget(screen)
		s.DrawTo(&s.sink, IdentityTransform)
		s.flushScreenshots(screen)
		return
	}

	for _, cam := range s.cameras {
		vp := cam.Viewport
		viewportImg := screen.SubImage(image.Rect(
			int(vp.X), int(vp.Y),
			int(vp.X+vp.Width), int(vp.Y+vp.Height),
		)).(*ebiten.Image)
		s.sink.SetTarget(viewportImg)
		s.DrawTo(&s.sink, cam.ViewTransform())
	}
	s.flushScreenshots(screen)
}

// DrawTo renders every visible map node into sink under view * world.
// Children are visited in ZIndex order, ties in insertion order.
func (s *Scene) DrawTo(sink Sink, view Transform) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
		s.stats = debugStats{}
	}

	s.traverse(s.root, IdentityTransform, false, view, sink)

	if s.debug {
		s.stats.drawTime = time.Since(t0)
		s.debugLog(s.stats)
	}
}

// traverse updates world transforms for dirty subtrees and renders map nodes.
func (s *Scene) traverse(n *Node, parentTransform Transform, parentRecomputed bool, view Transform, sink Sink) {
	if !n.Visible {
		return
	}

	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = parentTransform.Multiply(computeLocalTransform(n))
		n.transformDirty = false
	}

	if s.debug {
		s.stats.nodeCount++
	}

	if n.Type == NodeTypeMap && n.Map != nil {
		n.Map.Render(view.Multiply(n.worldTransform), sink)
		if s.debug {
			s.stats.mapDraws++
		}
	}

	if len(n.children) == 0 {
		return
	}
	if !n.childrenSorted {
		rebuildSortedChildren(n)
	}
	for _, child := range n.sortedChildren {
		s.traverse(child, n.worldTransform, recompute, view, sink)
	}
}

// NewCamera creates a camera with the given viewport and adds it to the scene.
func (s *Scene) NewCamera(viewport Rect) *Camera {
	cam := NewCamera(viewport)
	s.cameras = append(s.cameras, cam)
	return cam
}

// RemoveCamera removes a camera from the scene.
func (s *Scene) RemoveCamera(cam *Camera) {
	for i, c := range s.cameras {
		if c == cam {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			return
		}
	}
}

// Cameras returns the scene's camera list. The returned slice MUST NOT be mutated.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}

// SetDebugMode enables or disables debug mode. When enabled, tree operations
// on disposed nodes panic, rendering a disposed map and deep trees are
// reported, loads are logged, and per-frame stats are written to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node and
// loader operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
