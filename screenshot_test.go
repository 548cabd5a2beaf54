package atlasmap

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"level1", "level1"},
		{"after-load", "after-load"},
		{"frame.01", "frame.01"},
		{"zoomed in", "zoomed_in"},
		{"maps/level1", "maps_level1"},
		{"ünïcode", "_n_code"},
		{"", "unlabeled"},
		{"  ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	s := NewScene()
	s.Screenshot("a")
	s.Screenshot("b")
	if len(s.screenshotQueue) != 2 || s.screenshotQueue[0] != "a" || s.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", s.screenshotQueue)
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		64, 32, 0, 128, // half alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)

	want := []color.NRGBA{
		{R: 127, G: 63, B: 0, A: 128},
		{R: 10, G: 20, B: 30, A: 255},
		{},
	}
	for x, w := range want {
		if got := img.NRGBAAt(x, 0); got != w {
			t.Errorf("pixel %d = %+v, want %+v", x, got, w)
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := writePNG(path, image.NewNRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty PNG written")
	}
}
