package modbot

import "time"

// debugStats holds per-frame timing and entity counts.
// Only populated when Scene.debug is true.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	eventCount int
}

// debugLog reports the last frame's stats at debug level.
func (s *Scene) debugLog() {
	if !s.debug {
		return
	}
	s.log.Debug().
		Dur("update", s.stats.updateTime).
		Dur("draw", s.stats.drawTime).
		Int("events", s.stats.eventCount).
		Int("addons", len(s.addons)).
		Int("attached", countAttached(s.addons)).
		Bool("menu_open", s.menu.Open()).
		Msg("frame")
}

// countAttached counts addons currently snapped onto the body.
func countAttached(addons []*Addon) int {
	n := 0
	for _, a := range addons {
		if _, ok := a.Attached(); ok {
			n++
		}
	}
	return n
}
