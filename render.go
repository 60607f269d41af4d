package modbot

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// labelPadX is the gap between a button's left edge and its label.
const labelPadX = 10

// Draw renders the background, the main body, the addons in collection order,
// the menu when open and the FPS overlay when enabled, then flushes queued
// screenshots.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	screen.Fill(s.cfg.Background.toRGBA())
	fillRect(screen, s.body.Rect, s.cfg.BodyColor)
	for _, a := range s.addons {
		fillRect(screen, a.Rect, a.Color)
	}
	if s.menu.Open() {
		s.drawMenu(screen)
	}
	if s.showFPS {
		drawFPS(screen)
	}

	if s.debug {
		s.stats.drawTime = time.Since(t0)
	}
	s.flushScreenshots(screen)
}

// drawMenu draws the bar and its buttons. A font failure drops the labels
// but keeps the buttons usable.
func (s *Scene) drawMenu(screen *ebiten.Image) {
	style := s.cfg.Menu.Style
	fillRect(screen, Rect{Width: s.bounds.Width, Height: s.cfg.Menu.Height}, style.Background)

	font := s.menuFont()
	for _, b := range s.menu.Buttons {
		fillRect(screen, b.Rect, s.menu.ButtonColor(b))
		if font != nil {
			p := labelPos(b.Rect, font, b.Label)
			font.DrawString(screen, b.Label, p.X, p.Y, style.Text)
		}
	}
}

// menuFont returns the label font, or nil if it failed to load. The failure
// is logged once per scene.
func (s *Scene) menuFont() *Font {
	font, err := s.loadFont()
	if err != nil {
		if !s.fontWarned {
			s.fontWarned = true
			s.log.Warn().Err(err).Msg("menu labels disabled")
		}
		return nil
	}
	return font
}

// labelPos places label inside r, padded from the left edge and centred
// vertically.
func labelPos(r Rect, font *Font, label string) Vec2 {
	_, h := font.MeasureString(label)
	return Vec2{r.X + labelPadX, r.Y + (r.Height-h)/2}
}

// fillRect draws r as a solid rectangle.
func fillRect(dst *ebiten.Image, r Rect, c Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.toRGBA(), false)
}
