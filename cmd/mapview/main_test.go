package main

import (
	"math"
	"testing"

	"github.com/phanxgames/atlasmap"
)

func newTestController() *panController {
	cam := atlasmap.NewCamera(atlasmap.Rect{Width: 100, Height: 100})
	cam.SetPosition(500, 500)
	cam.SetBounds(atlasmap.Rect{Width: 1000, Height: 1000})
	return &panController{cam: cam, speed: 100}
}

func TestPanControllerPans(t *testing.T) {
	p := newTestController()
	p.apply(1, -1, 0, 0.5)
	if p.cam.X != 550 || p.cam.Y != 450 {
		t.Errorf("camera = (%v,%v), want (550,450)", p.cam.X, p.cam.Y)
	}
}

func TestPanControllerPanScalesWithZoom(t *testing.T) {
	p := newTestController()
	p.cam.SetZoom(2)
	p.apply(1, 0, 0, 1)
	if p.cam.X != 550 {
		t.Errorf("X = %v, want 550", p.cam.X)
	}
}

func TestPanControllerZoomLimits(t *testing.T) {
	p := newTestController()
	for i := 0; i < 100; i++ {
		p.apply(0, 0, 1, 0)
	}
	if p.cam.Zoom != maxZoom {
		t.Errorf("Zoom = %v, want clamp at %v", p.cam.Zoom, float64(maxZoom))
	}
	for i := 0; i < 200; i++ {
		p.apply(0, 0, -1, 0)
	}
	if p.cam.Zoom != minZoom {
		t.Errorf("Zoom = %v, want clamp at %v", p.cam.Zoom, minZoom)
	}
}

func TestPanControllerClampsToMap(t *testing.T) {
	p := newTestController()
	p.apply(-1, -1, 0, 100)
	if math.Abs(p.cam.X-50) > 1e-9 || math.Abs(p.cam.Y-50) > 1e-9 {
		t.Errorf("camera = (%v,%v), want clamped to (50,50)", p.cam.X, p.cam.Y)
	}
}
