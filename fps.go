package modbot

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsPanel is the translucent backdrop behind the FPS readout.
var fpsPanel = Rect{X: 0, Y: 0, Width: 100, Height: 32}

// drawFPS prints the current FPS and TPS in the bottom-left corner, below
// the menu strip's reach.
func drawFPS(screen *ebiten.Image) {
	h := screen.Bounds().Dy()
	panel := fpsPanel
	panel.Y = float64(h) - panel.Height
	fillRect(screen, panel, Color{A: 0.5})
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		int(panel.X)+2, int(panel.Y)+2)
}
