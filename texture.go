package atlasmap

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // atlas pages are PNG by default

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp" // lets Loader.ImageExt select ".bmp" atlases
)

// Texture is a GPU-resident image with a stable identifier. A Texture is
// owned by exactly one Map.
type Texture interface {
	// ID returns an identifier that is stable for the texture's lifetime and
	// unique among textures created by the same decoder.
	ID() uint32
	// Size returns the texture extent in pixels.
	Size() (w, h int)
	// Filter returns the sampling mode the texture is drawn with.
	Filter() Filter
	// Dispose releases the GPU resource. Safe to call more than once.
	Dispose()
}

// TextureDecoder turns encoded image bytes into a Texture sampled with the
// given filter.
type TextureDecoder interface {
	DecodeTexture(data []byte, filter Filter) (Texture, error)
}

// textureIDCounter is a plain counter (no atomic, loading is single-threaded).
var textureIDCounter uint32

func nextTextureID() uint32 {
	textureIDCounter++
	return textureIDCounter
}

// EbitenTexture is a Texture backed by an *ebiten.Image.
type EbitenTexture struct {
	id     uint32
	img    *ebiten.Image
	w, h   int
	filter Filter
}

// NewEbitenTexture wraps an existing image. The texture takes ownership of img
// and deallocates it on Dispose.
func NewEbitenTexture(img *ebiten.Image, filter Filter) *EbitenTexture {
	b := img.Bounds()
	return &EbitenTexture{
		id:     nextTextureID(),
		img:    img,
		w:      b.Dx(),
		h:      b.Dy(),
		filter: filter,
	}
}

// ID returns the texture's stable identifier.
func (t *EbitenTexture) ID() uint32 { return t.id }

// Size returns the texture extent in pixels.
func (t *EbitenTexture) Size() (w, h int) { return t.w, t.h }

// Filter returns the sampling mode.
func (t *EbitenTexture) Filter() Filter { return t.filter }

// Image returns the backing image, or nil after Dispose.
func (t *EbitenTexture) Image() *ebiten.Image { return t.img }

// Dispose deallocates the backing image.
func (t *EbitenTexture) Dispose() {
	if t.img == nil {
		return
	}
	t.img.Deallocate()
	t.img = nil
}

// EbitenTextureDecoder decodes PNG (and BMP) bytes and uploads them as an
// *ebiten.Image.
type EbitenTextureDecoder struct{}

// DecodeTexture decodes data and uploads it. The image's own characteristics
// never change the filter.
func (EbitenTextureDecoder) DecodeTexture(data []byte, filter Filter) (Texture, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%s image has empty bounds %v", format, b)
	}
	return NewEbitenTexture(ebiten.NewImageFromImage(src), filter), nil
}
