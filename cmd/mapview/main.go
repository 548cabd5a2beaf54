// Mapview opens a window showing one tile map, with keyboard panning and
// mouse-wheel zoom. F12 saves a screenshot.
//
// Usage:
//
//	mapview -config mapview.hcl
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/atlasmap"
)

const (
	minZoom  = 0.25
	maxZoom  = 8
	zoomStep = 1.1
)

func main() {
	configPath := flag.String("config", "mapview.hcl", "path to the viewer's HCL config file")
	flag.Parse()

	src, err := os.ReadFile(*configPath)
	if err != nil {
		log.Fatalf("failed to read config: %v", err)
	}
	cfg, err := parseConfig(src, *configPath)
	if err != nil {
		log.Fatal(err)
	}

	m, err := cfg.loader().Load(cfg.Map)
	if err != nil {
		log.Fatalf("failed to load map: %v", err)
	}
	defer m.Dispose()
	log.Printf("loaded %v", m)

	scene := atlasmap.NewScene()
	scene.SetDebugMode(cfg.Debug)
	scene.ClearColor = &atlasmap.Color{R: 0.1, G: 0.1, B: 0.1, A: 1}
	scene.ScreenshotDir = cfg.Shots
	scene.Root().AddChild(atlasmap.NewMapNode("map", m))

	win := cfg.Window
	cam := scene.NewCamera(atlasmap.Rect{Width: float64(win.Width), Height: float64(win.Height)})
	bounds := m.Bounds()
	cam.SetPosition(bounds.Width/2, bounds.Height/2)
	cam.SetZoom(cfg.Camera.Zoom)
	cam.SetBounds(bounds)

	ctl := &panController{scene: scene, cam: cam, speed: cfg.Camera.ScrollSpeed, label: filepath.Base(cfg.Map)}

	if err := atlasmap.Run(scene, atlasmap.RunConfig{
		Title:    win.Title,
		Width:    win.Width,
		Height:   win.Height,
		ShowFPS:  win.ShowFPS,
		OnUpdate: ctl.update,
	}); err != nil {
		log.Fatal(err)
	}
}

// panController moves the camera from keyboard and mouse-wheel input.
type panController struct {
	scene *atlasmap.Scene
	cam   *atlasmap.Camera
	speed float64
	label string
}

func (p *panController) update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		p.scene.Screenshot(p.label)
	}

	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy++
	}
	_, wheel := ebiten.Wheel()
	p.apply(dx, dy, wheel, 1/float64(ebiten.TPS()))
	return nil
}

// apply pans by (dx, dy) screen directions for dt seconds and zooms one step
// per wheel notch, then re-clamps the camera to the map.
func (p *panController) apply(dx, dy, wheel, dt float64) {
	cam := p.cam
	if dx != 0 || dy != 0 {
		step := p.speed * dt / cam.Zoom
		cam.SetPosition(cam.X+dx*step, cam.Y+dy*step)
	}
	if wheel > 0 {
		cam.SetZoom(min(cam.Zoom*zoomStep, maxZoom))
	} else if wheel < 0 {
		cam.SetZoom(max(cam.Zoom/zoomStep, minZoom))
	}
	cam.ClampToBounds()
}
