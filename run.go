package modbot

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Input overrides the real ebiten input poller. Nil uses the poller.
	Input InputSource
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	w, h  int
}

func (g *game) Update() error              { return g.scene.Update() }
func (g *game) Draw(screen *ebiten.Image)  { g.scene.Draw(screen) }
func (g *game) Layout(_, _ int) (int, int) { return g.w, g.h }

// Run opens a fixed-size window and drives scene at its configured TPS until
// the window is closed. A clean quit returns nil.
func Run(scene *Scene, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = int(scene.bounds.Width), int(scene.bounds.Height)
	}

	src := cfg.Input
	if src == nil {
		src = newEbitenInput()
	}
	scene.SetInputSource(src)
	scene.SetShowFPS(cfg.ShowFPS)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(scene.tps)

	scene.log.Info().Str("title", cfg.Title).Int("width", w).Int("height", h).Msg("window open")
	err := ebiten.RunGame(&game{scene: scene, w: w, h: h})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("modbot: run game: %w", err)
	}
	scene.log.Info().Msg("window closed")
	return nil
}
