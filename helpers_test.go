package atlasmap

import (
	"errors"
	"math"
	"testing"
	"testing/fstest"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Transform) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- Fakes ---

// fakeTexture is a GPU-free Texture.
type fakeTexture struct {
	id       uint32
	w, h     int
	filter   Filter
	disposed int
}

func (t *fakeTexture) ID() uint32       { return t.id }
func (t *fakeTexture) Size() (int, int) { return t.w, t.h }
func (t *fakeTexture) Filter() Filter   { return t.filter }
func (t *fakeTexture) Dispose()         { t.disposed++ }

// fakeDecoder records every decode call and returns fixed-size textures.
type fakeDecoder struct {
	w, h    int
	err     error
	calls   int
	filters []Filter
	made    []*fakeTexture
}

func (d *fakeDecoder) DecodeTexture(data []byte, filter Filter) (Texture, error) {
	d.calls++
	d.filters = append(d.filters, filter)
	if d.err != nil {
		return nil, d.err
	}
	tex := &fakeTexture{id: nextTextureID(), w: d.w, h: d.h, filter: filter}
	d.made = append(d.made, tex)
	return tex, nil
}

// drawCall is one submission captured by recordingSink.
type drawCall struct {
	tex       Texture
	transform Transform
}

// recordingSink captures draw submissions.
type recordingSink struct {
	calls []drawCall
}

func (s *recordingSink) DrawTexture(tex Texture, transform Transform) {
	s.calls = append(s.calls, drawCall{tex: tex, transform: transform})
}

// --- Fixtures ---

const baseJSON = `{"meta":{"tileWidth":16,"tileHeight":16},"tiles":[{"x":0,"y":0,"w":16,"h":16}]}`

// testFS returns an in-memory asset tree with one valid map at "maps/base".
func testFS() fstest.MapFS {
	return fstest.MapFS{
		"maps/base.json": {Data: []byte(baseJSON)},
		"maps/base.png":  {Data: []byte("png bytes")},
	}
}

// loadTestMap loads "maps/base" from testFS with a fake texture decoder.
func loadTestMap(t *testing.T) (*Map, *fakeDecoder) {
	t.Helper()
	dec := &fakeDecoder{w: 64, h: 32}
	l := &Loader{FS: testFS(), Textures: dec}
	m, err := l.Load("maps/base")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return m, dec
}

var errBadImage = errors.New("bad image")
