package modbot

import "github.com/hajimehoshi/ebiten/v2"

// InjectPress queues a left-button press at the given screen coordinates.
// Injected events are consumed one per frame, and real input is skipped
// while any are queued.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, InputEvent{
		Type: EventPointerDown, X: x, Y: y, Button: MouseButtonLeft,
	})
}

// InjectMove queues a pointer move to the given screen coordinates.
// Use this between InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, InputEvent{
		Type: EventPointerMove, X: x, Y: y,
	})
}

// InjectRelease queues a left-button release at the given screen coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, InputEvent{
		Type: EventPointerUp, X: x, Y: y, Button: MouseButtonLeft,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, a final
// move to (toX, toY) and the release there. The total sequence consumes
// frames+1 frames. Minimum frames is 2.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectMove(toX, toY)
	s.InjectRelease(toX, toY)
}

// InjectKey queues a key press with the given modifiers held.
func (s *Scene) InjectKey(key ebiten.Key, mods KeyModifiers) {
	s.injectQueue = append(s.injectQueue, InputEvent{
		Type: EventKeyDown, Key: key, Mods: mods,
	})
}

// InjectQuit queues a quit request.
func (s *Scene) InjectQuit() {
	s.injectQueue = append(s.injectQueue, InputEvent{Type: EventQuit})
}

// Pending reports how many injected events are still queued.
func (s *Scene) Pending() int {
	return len(s.injectQueue)
}
