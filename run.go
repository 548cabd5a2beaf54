package atlasmap

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window and loop created by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// OnUpdate, if set, runs once per tick before Scene.Update. Returning a
	// non-nil error (including ebiten.Termination) ends the loop.
	OnUpdate func() error
}

// Run opens a window and drives the scene until the window is closed or
// OnUpdate returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("atlasmap: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&runGame{scene: scene, cfg: cfg})
}

// runGame adapts a Scene to ebiten.Game.
type runGame struct {
	scene *Scene
	cfg   RunConfig
}

func (g *runGame) Update() error {
	if g.cfg.OnUpdate != nil {
		if err := g.cfg.OnUpdate(); err != nil {
			return err
		}
	}
	g.scene.Update()
	return nil
}

func (g *runGame) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *runGame) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
