package atlasmap

import "github.com/hajimehoshi/ebiten/v2"

// Sink is the drawing surface maps render into. It needs exactly one
// capability: draw a whole texture under a 2D affine transform.
type Sink interface {
	DrawTexture(tex Texture, transform Transform)
}

// ImageSink draws onto an *ebiten.Image. It reuses one DrawImageOptions so a
// draw does not allocate.
type ImageSink struct {
	target *ebiten.Image
	op     ebiten.DrawImageOptions
	draws  int
}

// NewImageSink creates a sink that draws onto target.
func NewImageSink(target *ebiten.Image) *ImageSink {
	return &ImageSink{target: target}
}

// SetTarget redirects subsequent draws, e.g. to the next frame's screen.
func (s *ImageSink) SetTarget(target *ebiten.Image) {
	s.target = target
}

// Target returns the current draw target.
func (s *ImageSink) Target() *ebiten.Image {
	return s.target
}

// DrawTexture draws tex with the texture's own filter. Textures that are not
// *EbitenTexture, or that have been disposed, are skipped.
func (s *ImageSink) DrawTexture(tex Texture, transform Transform) {
	et, ok := tex.(*EbitenTexture)
	if !ok || et.img == nil || s.target == nil {
		return
	}
	s.op.GeoM = transformGeoM(transform)
	s.op.Filter = et.filter.EbitenFilter()
	s.target.DrawImage(et.img, &s.op)
	s.draws++
}

// Draws returns the number of draw submissions since the last ResetStats.
func (s *ImageSink) Draws() int {
	return s.draws
}

// ResetStats zeroes the draw counter.
func (s *ImageSink) ResetStats() {
	s.draws = 0
}

// transformGeoM converts an affine Transform into an ebiten.GeoM.
func transformGeoM(t Transform) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, t[0])
	m.SetElement(1, 0, t[1])
	m.SetElement(0, 1, t[2])
	m.SetElement(1, 1, t[3])
	m.SetElement(0, 2, t[4])
	m.SetElement(1, 2, t[5])
	return m
}
