package modbot

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestInjectClick(t *testing.T) {
	s := NewScene(BoxSceneConfig())
	s.InjectClick(310, 310)
	if s.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", s.Pending())
	}

	// Frame 1: press
	s.Update()
	if s.Pending() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", s.Pending())
	}
	if !s.body.Dragging() {
		t.Error("press frame should grab the body")
	}

	// Frame 2: release
	s.Update()
	if s.Pending() != 0 {
		t.Fatalf("expected 0 remaining events after frame 2, got %d", s.Pending())
	}
	if s.body.Dragging() {
		t.Error("release frame should drop the body")
	}
}

func TestInjectDrag(t *testing.T) {
	s := NewScene(BoxSceneConfig())

	// Drag from (310,310) to (410,350) over 4 frames:
	// press, two interpolated moves, the final move and the release.
	s.InjectDrag(310, 310, 410, 350, 4)
	if s.Pending() != 5 {
		t.Fatalf("expected 5 queued events, got %d", s.Pending())
	}
	q := s.injectQueue
	if q[0].Type != EventPointerDown || q[4].Type != EventPointerUp {
		t.Errorf("sequence = %v ... %v", q[0].Type, q[4].Type)
	}
	for i := 1; i <= 3; i++ {
		if q[i].Type != EventPointerMove {
			t.Errorf("event %d type = %v, want move", i, q[i].Type)
		}
	}
	if q[1].X >= q[2].X || q[2].X >= q[3].X {
		t.Errorf("moves should advance monotonically: %v %v %v", q[1].X, q[2].X, q[3].X)
	}
	if q[3].X != 410 || q[3].Y != 350 {
		t.Errorf("last move = (%v, %v), want target", q[3].X, q[3].Y)
	}

	drain(t, s)
	if s.Body().Pos() != (Vec2{400, 340}) {
		t.Errorf("body = %v, want (400, 340)", s.Body().Pos())
	}
}

func TestInjectDragMinFrames(t *testing.T) {
	s := NewScene(BoxSceneConfig())
	s.InjectDrag(0, 0, 100, 100, 1) // clamped to 2
	if s.Pending() != 3 {
		t.Errorf("expected 3 queued events, got %d", s.Pending())
	}
}

func TestInjectKeyAndQuit(t *testing.T) {
	s := NewScene(RobotSceneConfig())
	s.InjectKey(ebiten.KeyM, ModCtrl)
	s.InjectQuit()

	if err := s.Update(); err != nil {
		t.Fatalf("key frame: %v", err)
	}
	if !s.Menu().Open() {
		t.Error("injected chord should open the menu")
	}
	if err := s.Update(); err != ebiten.Termination {
		t.Errorf("quit frame = %v, want ebiten.Termination", err)
	}
}

func TestInjectQueueFIFO(t *testing.T) {
	s := NewScene(BoxSceneConfig())
	s.InjectPress(1, 2)
	s.InjectMove(3, 4)
	s.InjectRelease(5, 6)

	want := []EventType{EventPointerDown, EventPointerMove, EventPointerUp}
	for i, ev := range s.injectQueue {
		if ev.Type != want[i] || ev.X != float64(2*i+1) || ev.Y != float64(2*i+2) {
			t.Errorf("event %d = %+v", i, ev)
		}
	}
	s.Update()
	if s.injectQueue[0].Type != EventPointerMove {
		t.Error("front of the queue should be consumed first")
	}
}
