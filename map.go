package atlasmap

import (
	"fmt"
	"runtime"
)

// Map is a loaded tile map: metadata, the ordered tile list, and the atlas
// texture the tiles address. A Map only exists fully constructed; it is
// read-only after Load returns it.
//
// The texture is owned by the Map. It is released when the Map becomes
// unreachable, or immediately by Dispose.
type Map struct {
	meta    MapMetaData
	tiles   []Tile
	tex     Texture
	cleanup runtime.Cleanup
}

// newMap takes ownership of tex and registers its release.
func newMap(data MapData, tex Texture) *Map {
	m := &Map{
		meta:  data.Meta,
		tiles: data.Tiles,
		tex:   tex,
	}
	m.cleanup = runtime.AddCleanup(m, func(t Texture) { t.Dispose() }, tex)
	return m
}

// MetaData returns the tile geometry metadata.
func (m *Map) MetaData() MapMetaData {
	return m.meta
}

// Tiles returns the tile list in document order; index is tile id.
// The returned slice MUST NOT be mutated by the caller.
func (m *Map) Tiles() []Tile {
	return m.tiles
}

// NumTiles returns the number of tiles.
func (m *Map) NumTiles() int {
	return len(m.tiles)
}

// TileRegion returns the atlas rectangle of the tile with the given id.
// Render does not use it; it is addressing data for callers that draw
// individual tiles themselves.
func (m *Map) TileRegion(id int) (Rect, bool) {
	if id < 0 || id >= len(m.tiles) {
		return Rect{}, false
	}
	return m.tiles[id].Rect(), true
}

// Texture returns the atlas texture, or nil after Dispose.
//
// The texture belongs to the Map. Do not keep it past the Map's lifetime:
// once the Map is unreachable the texture is disposed on a runtime cleanup
// goroutine, possibly while another reference to it is still in use.
func (m *Map) Texture() Texture {
	return m.tex
}

// Size returns the atlas texture extent in pixels.
func (m *Map) Size() (w, h int) {
	if m.tex == nil {
		return 0, 0
	}
	return m.tex.Size()
}

// Bounds returns the full extent Render covers in the map's local space.
func (m *Map) Bounds() Rect {
	w, h := m.Size()
	return Rect{Width: float64(w), Height: float64(h)}
}

// Render draws the whole atlas texture once under transform. It does not
// consult the tile list and never fails. Rendering a disposed Map draws
// nothing; in debug mode it also reports the misuse on stderr.
func (m *Map) Render(transform Transform, sink Sink) {
	if m.tex == nil {
		if globalDebug {
			debugWarnDisposedMap()
		}
		return
	}
	sink.DrawTexture(m.tex, transform)
}

// Dispose releases the texture now instead of waiting for the Map to be
// collected. Safe to call more than once.
func (m *Map) Dispose() {
	if m.tex == nil {
		return
	}
	m.cleanup.Stop()
	m.tex.Dispose()
	m.tex = nil
}

// IsDisposed reports whether Dispose has been called.
func (m *Map) IsDisposed() bool {
	return m.tex == nil
}

// String returns metadata, the full tile list and the texture id. Pixel data
// is never included.
func (m *Map) String() string {
	var texID uint32
	if m.tex != nil {
		texID = m.tex.ID()
	}
	return fmt.Sprintf("Map{MetaData: %+v, Tiles: %+v, TextureID: %d}", m.meta, m.tiles, texID)
}
