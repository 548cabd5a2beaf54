package atlasmap

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadEndToEnd(t *testing.T) {
	m, dec := loadTestMap(t)

	if got := m.MetaData().TileWidth; got != 16.0 {
		t.Errorf("TileWidth = %v, want 16", got)
	}
	if got := m.MetaData().TileHeight; got != 16.0 {
		t.Errorf("TileHeight = %v, want 16", got)
	}
	if m.NumTiles() != 1 {
		t.Fatalf("NumTiles = %d, want 1", m.NumTiles())
	}
	if dec.calls != 1 {
		t.Errorf("decoder calls = %d, want 1", dec.calls)
	}
	if m.Texture() != Texture(dec.made[0]) {
		t.Error("Map does not hold the decoded texture")
	}

	sink := &recordingSink{}
	m.Render(IdentityTransform, sink)
	if len(sink.calls) != 1 {
		t.Fatalf("draw submissions = %d, want 1", len(sink.calls))
	}
	call := sink.calls[0]
	if call.tex != m.Texture() {
		t.Error("draw used a different texture")
	}
	assertMatrix(t, "transform", call.transform, IdentityTransform)
	w, h := call.tex.Size()
	if w != 64 || h != 32 {
		t.Errorf("drawn extent = %dx%d, want full texture 64x32", w, h)
	}
}

func TestLoadPreservesTileOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"m.json": {Data: []byte(`{"meta":{"tileWidth":8,"tileHeight":8},"tiles":[
			{"x":16,"y":0,"w":8,"h":8},{"x":0,"y":0,"w":8,"h":8},{"x":8,"y":8,"w":8,"h":8}]}`)},
		"m.png": {Data: []byte("x")},
	}
	m, err := (&Loader{FS: fsys, Textures: &fakeDecoder{w: 24, h: 16}}).Load("m")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []Tile{{X: 16, W: 8, H: 8}, {X: 0, W: 8, H: 8}, {X: 8, Y: 8, W: 8, H: 8}}
	if len(m.Tiles()) != len(want) {
		t.Fatalf("len(Tiles) = %d, want %d", len(m.Tiles()), len(want))
	}
	for i, tile := range m.Tiles() {
		if tile != want[i] {
			t.Errorf("tile %d = %+v, want %+v", i, tile, want[i])
		}
	}
}

func TestLoadIgnoresLogicalExtension(t *testing.T) {
	for _, p := range []string{"maps/base.json", "maps/base.png", "maps/base.level"} {
		_, err := (&Loader{FS: testFS(), Textures: &fakeDecoder{w: 1, h: 1}}).Load(p)
		if err != nil {
			t.Errorf("Load(%q): %v", p, err)
		}
	}
}

func TestLoadMissingMetaAllocatesNothing(t *testing.T) {
	fsys := fstest.MapFS{"maps/base.png": {Data: []byte("x")}}
	dec := &fakeDecoder{w: 1, h: 1}
	m, err := (&Loader{FS: fsys, Textures: dec}).Load("maps/base")
	if m != nil {
		t.Error("Map returned alongside error")
	}
	if !errors.Is(err, ErrAssetNotFound) {
		t.Fatalf("err = %v, want ErrAssetNotFound", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want it to wrap fs.ErrNotExist", err)
	}
	if dec.calls != 0 {
		t.Errorf("decoder calls = %d, want 0", dec.calls)
	}

	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("err is %T, want *LoadError", err)
	}
	if le.Op != "open meta" || le.Path != "maps/base.json" {
		t.Errorf("LoadError = {Op:%q Path:%q}, want {open meta maps/base.json}", le.Op, le.Path)
	}
}

func TestLoadMalformedMetaAllocatesNothing(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.json": {Data: []byte(`{"meta":{"tileWidth":16,"tileHeight":16},"tiles":[{"x":0,"y":0,"h":16}]}`)},
		"bad.png":  {Data: []byte("x")},
	}
	dec := &fakeDecoder{w: 1, h: 1}
	m, err := (&Loader{FS: fsys, Textures: dec}).Load("bad")
	if m != nil {
		t.Error("Map returned alongside error")
	}
	if !errors.Is(err, ErrMalformedAsset) {
		t.Fatalf("err = %v, want ErrMalformedAsset", err)
	}
	if errors.Is(err, ErrAssetNotFound) || errors.Is(err, ErrDecode) {
		t.Errorf("err = %v matches more than one kind", err)
	}
	if dec.calls != 0 {
		t.Errorf("decoder calls = %d, want 0", dec.calls)
	}
	if !strings.Contains(err.Error(), `missing "w"`) {
		t.Errorf("err = %q, want the missing field named", err)
	}
}

func TestLoadMissingImage(t *testing.T) {
	fsys := fstest.MapFS{"maps/base.json": {Data: []byte(baseJSON)}}
	dec := &fakeDecoder{w: 1, h: 1}
	_, err := (&Loader{FS: fsys, Textures: dec}).Load("maps/base")
	if !errors.Is(err, ErrAssetNotFound) {
		t.Fatalf("err = %v, want ErrAssetNotFound", err)
	}
	var le *LoadError
	if errors.As(err, &le) && le.Path != "maps/base.png" {
		t.Errorf("Path = %q, want maps/base.png", le.Path)
	}
	if dec.calls != 0 {
		t.Errorf("decoder calls = %d, want 0", dec.calls)
	}
}

func TestLoadDecodeFailure(t *testing.T) {
	dec := &fakeDecoder{err: errBadImage}
	m, err := (&Loader{FS: testFS(), Textures: dec}).Load("maps/base")
	if m != nil {
		t.Error("Map returned alongside error")
	}
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("err = %v, want ErrDecode", err)
	}
	if !errors.Is(err, errBadImage) {
		t.Errorf("err = %v, want it to wrap the decoder error", err)
	}
}

func TestLoadCorruptImageWithEbitenDecoder(t *testing.T) {
	// image.Decode rejects the bytes before anything is uploaded.
	_, err := (&Loader{FS: testFS()}).Load("maps/base")
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("err = %v, want ErrDecode", err)
	}
}

func TestLoadAlwaysRequestsNearest(t *testing.T) {
	dec := &fakeDecoder{w: 4, h: 4}
	m, err := (&Loader{FS: testFS(), Textures: dec}).Load("maps/base")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(dec.filters) != 1 || dec.filters[0] != FilterNearest {
		t.Errorf("requested filters = %v, want [nearest]", dec.filters)
	}
	if m.Texture().Filter() != FilterNearest {
		t.Errorf("texture filter = %v, want nearest", m.Texture().Filter())
	}
}

func TestLoadYAMLMeta(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/base.yaml": {Data: []byte("meta: {tileWidth: 32, tileHeight: 16}\ntiles:\n  - {x: 0, y: 0, w: 32, h: 16}\n")},
		"maps/base.png":  {Data: []byte("x")},
	}
	m, err := (&Loader{FS: fsys, Meta: YAMLCodec{}, Textures: &fakeDecoder{w: 32, h: 16}}).Load("maps/base")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.MetaData().TileWidth != 32 || m.NumTiles() != 1 {
		t.Errorf("loaded %v", m)
	}
}

func TestLoadCustomImageExt(t *testing.T) {
	fsys := fstest.MapFS{
		"a.json": {Data: []byte(baseJSON)},
		"a.bmp":  {Data: []byte("x")},
	}
	if _, err := (&Loader{FS: fsys, Textures: &fakeDecoder{w: 1, h: 1}, ImageExt: ".bmp"}).Load("a"); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

// gradientPNG encodes a smooth, non-pixel-art image.
func gradientPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestLoadFromDiskWithEbitenDecoder(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base")
	if err := os.WriteFile(base+".json", []byte(baseJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(base+".png", gradientPNG(t, 48, 32), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(base)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer m.Dispose()

	tex, ok := m.Texture().(*EbitenTexture)
	if !ok {
		t.Fatalf("texture is %T, want *EbitenTexture", m.Texture())
	}
	if tex.Filter() != FilterNearest {
		t.Errorf("filter = %v, want nearest", tex.Filter())
	}
	if w, h := m.Size(); w != 48 || h != 32 {
		t.Errorf("Size = %dx%d, want 48x32", w, h)
	}
	if tex.Image() == nil {
		t.Error("texture has no image")
	}
}

func TestLoadErrorMessage(t *testing.T) {
	err := &LoadError{Op: "read image", Path: "a.png", Kind: ErrAssetNotFound, Err: fs.ErrNotExist}
	want := "atlasmap: read image a.png: asset not found: file does not exist"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	bare := &LoadError{Op: "decode image", Path: "a.png", Kind: ErrDecode}
	if !errors.Is(bare, ErrDecode) {
		t.Error("bare LoadError does not match its kind")
	}
}
