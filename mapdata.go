package atlasmap

import (
	"encoding/json"
	"fmt"
)

// MapMetaData describes the nominal size of one grid cell. The unit is a
// convention shared with the caller.
type MapMetaData struct {
	TileWidth  float64 `json:"tileWidth" yaml:"tileWidth"`
	TileHeight float64 `json:"tileHeight" yaml:"tileHeight"`
}

// Tile is a source rectangle in atlas pixel space. A tile's index in
// MapData.Tiles is its id.
type Tile struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

// Rect returns the tile rectangle as a Rect.
func (t Tile) Rect() Rect {
	return Rect{X: t.X, Y: t.Y, Width: t.W, Height: t.H}
}

// MapData is the exact shape of a map metadata document.
type MapData struct {
	Meta  MapMetaData `json:"meta" yaml:"meta"`
	Tiles []Tile      `json:"tiles" yaml:"tiles"`
}

// MarshalJSON writes a nil tile list as [] so the document decodes again.
func (d MapData) MarshalJSON() ([]byte, error) {
	type plain MapData
	p := plain(d)
	if p.Tiles == nil {
		p.Tiles = []Tile{}
	}
	return json.Marshal(p)
}

// MarshalYAML writes a nil tile list as [] so the document decodes again.
func (d MapData) MarshalYAML() (any, error) {
	type plain MapData
	p := plain(d)
	if p.Tiles == nil {
		p.Tiles = []Tile{}
	}
	return p, nil
}

// --- Wire shapes with presence tracking ---

// The wire* types use pointers so a missing field can be told apart from a
// zero value.

type wireMeta struct {
	TileWidth  *float64 `json:"tileWidth" yaml:"tileWidth"`
	TileHeight *float64 `json:"tileHeight" yaml:"tileHeight"`
}

type wireTile struct {
	X *float64 `json:"x" yaml:"x"`
	Y *float64 `json:"y" yaml:"y"`
	W *float64 `json:"w" yaml:"w"`
	H *float64 `json:"h" yaml:"h"`
}

type wireMapData struct {
	Meta  *wireMeta   `json:"meta" yaml:"meta"`
	Tiles *[]wireTile `json:"tiles" yaml:"tiles"`
}

// JSON keys are matched exactly. encoding/json would otherwise accept "W"
// for "w" or "TILES" for "tiles", which the format does not allow.

func (w *wireMeta) UnmarshalJSON(data []byte) error {
	return decodeExactKeys(data, map[string]any{
		"tileWidth":  &w.TileWidth,
		"tileHeight": &w.TileHeight,
	})
}

func (w *wireTile) UnmarshalJSON(data []byte) error {
	return decodeExactKeys(data, map[string]any{
		"x": &w.X,
		"y": &w.Y,
		"w": &w.W,
		"h": &w.H,
	})
}

func (w *wireMapData) UnmarshalJSON(data []byte) error {
	return decodeExactKeys(data, map[string]any{
		"meta":  &w.Meta,
		"tiles": &w.Tiles,
	})
}

// decodeExactKeys decodes a JSON object and stores each field whose key is
// byte-equal to one in fields. Other keys are ignored. A null object leaves
// every field unset.
func decodeExactKeys(data []byte, fields map[string]any) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	for key, dst := range fields {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// mapData validates required fields and converts to MapData. Tile order is
// preserved.
func (w *wireMapData) mapData() (MapData, error) {
	if w.Meta == nil {
		return MapData{}, malformed(`missing "meta"`, nil)
	}
	if w.Meta.TileWidth == nil {
		return MapData{}, malformed(`meta: missing "tileWidth"`, nil)
	}
	if w.Meta.TileHeight == nil {
		return MapData{}, malformed(`meta: missing "tileHeight"`, nil)
	}
	if w.Tiles == nil {
		return MapData{}, malformed(`missing "tiles"`, nil)
	}

	wt := *w.Tiles
	tiles := make([]Tile, len(wt))
	for i := range wt {
		t := &wt[i]
		missing := ""
		switch {
		case t.X == nil:
			missing = "x"
		case t.Y == nil:
			missing = "y"
		case t.W == nil:
			missing = "w"
		case t.H == nil:
			missing = "h"
		}
		if missing != "" {
			return MapData{}, malformed(fmt.Sprintf("tiles[%d]: missing %q", i, missing), nil)
		}
		tiles[i] = Tile{X: *t.X, Y: *t.Y, W: *t.W, H: *t.H}
	}

	return MapData{
		Meta: MapMetaData{
			TileWidth:  *w.Meta.TileWidth,
			TileHeight: *w.Meta.TileHeight,
		},
		Tiles: tiles,
	}, nil
}
