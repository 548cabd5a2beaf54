package atlasmap

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera composes the view transform maps are rendered under: position, zoom,
// rotation, and the screen viewport it renders into.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	viewMatrix    Transform
	invViewMatrix Transform
	dirty         bool

	scrollTween *scrollAnim
}

// NewCamera creates a Camera with zoom 1 centered on the world origin.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// ScrollToTile scrolls to the center of grid cell (tileX, tileY) using the
// map's tile size.
func (c *Camera) ScrollToTile(tileX, tileY int, meta MapMetaData, duration float32, easeFn ease.TweenFunc) {
	worldX := float64(tileX)*meta.TileWidth + meta.TileWidth/2
	worldY := float64(tileY)*meta.TileHeight + meta.TileHeight/2
	c.ScrollTo(worldX, worldY, duration, easeFn)
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// ClampToBounds immediately clamps the camera position so the visible area
// stays within Bounds. No-op if BoundsEnabled is false.
func (c *Camera) ClampToBounds() {
	if c.BoundsEnabled {
		c.clampToBounds()
		c.dirty = true
	}
}

// Update advances any scroll animation by dt seconds, then clamps to Bounds.
// Scene.Update calls this for every scene camera.
func (c *Camera) Update(dt float32) {
	prevX, prevY := c.X, c.Y

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}

	if c.X != prevX || c.Y != prevY {
		c.dirty = true
	}
}

// clampToBounds restricts camera position so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// If bounds are smaller than visible area, center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// ViewTransform returns the world-to-screen matrix, recomputing it if any
// camera field changed since the last call through a setter or Update.
//
//	view = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
//
// where cx, cy is the viewport center.
func (c *Camera) ViewTransform() Transform {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	sin, cos := math.Sincos(-c.Rotation)
	z := c.Zoom

	a := z * cos
	b := -z * sin
	cc := z * sin
	d := z * cos
	tx := cx + z*(-cos*c.X+sin*c.Y)
	ty := cy + z*(-sin*c.X-cos*c.Y)

	c.viewMatrix = Transform{a, cc, b, d, tx, ty}
	c.invViewMatrix = c.viewMatrix.Invert()
	return c.viewMatrix
}

// Invalidate forces a recomputation of the view matrix. Call it after
// setting X, Y, Zoom, Rotation or Viewport directly.
func (c *Camera) Invalidate() {
	c.dirty = true
}

// SetPosition moves the camera center.
func (c *Camera) SetPosition(x, y float64) {
	c.X, c.Y = x, y
	c.dirty = true
}

// SetZoom sets the zoom factor.
func (c *Camera) SetZoom(z float64) {
	c.Zoom = z
	c.dirty = true
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return c.ViewTransform().Apply(wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.ViewTransform()
	return c.invViewMatrix.Apply(sx, sy)
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's visible
// area in world space.
func (c *Camera) VisibleBounds() Rect {
	c.ViewTransform()
	inv := c.invViewMatrix

	vx := c.Viewport.X
	vy := c.Viewport.Y
	vr := vx + c.Viewport.Width
	vb := vy + c.Viewport.Height

	x0, y0 := inv.Apply(vx, vy)
	x1, y1 := inv.Apply(vr, vy)
	x2, y2 := inv.Apply(vr, vb)
	x3, y3 := inv.Apply(vx, vb)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
