package modbot

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventQuit        EventType = iota // window close requested
	EventPointerDown                  // a pointer button was pressed
	EventPointerUp                    // a pointer button was released
	EventPointerMove                  // the pointer moved
	EventKeyDown                      // a key was pressed
)

// InputEvent is one record in the ordered per-frame event sequence.
type InputEvent struct {
	Type   EventType
	X, Y   float64
	Button MouseButton
	Key    ebiten.Key
	Mods   KeyModifiers
}

// InputSource yields the input events that arrived since the last frame.
// Implementations append to buf and return it.
type InputSource interface {
	Poll(buf []InputEvent) []InputEvent
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

var polledButtons = [...]struct {
	eb  ebiten.MouseButton
	btn MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// ebitenInput turns ebiten's polled input state into edge events.
type ebitenInput struct {
	lastX, lastY int
	seen         bool
	keys         []ebiten.Key
}

func newEbitenInput() *ebitenInput {
	return &ebitenInput{}
}

// Poll emits events in the order quit, move, press, release, key. A move is
// emitted before presses so a press lands where the cursor actually is.
func (in *ebitenInput) Poll(buf []InputEvent) []InputEvent {
	if ebiten.IsWindowBeingClosed() {
		buf = append(buf, InputEvent{Type: EventQuit})
	}

	mods := readModifiers()
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	if !in.seen || mx != in.lastX || my != in.lastY {
		in.seen = true
		in.lastX, in.lastY = mx, my
		buf = append(buf, InputEvent{Type: EventPointerMove, X: x, Y: y, Mods: mods})
	}

	for _, b := range polledButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			buf = append(buf, InputEvent{Type: EventPointerDown, X: x, Y: y, Button: b.btn, Mods: mods})
		}
	}
	for _, b := range polledButtons {
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			buf = append(buf, InputEvent{Type: EventPointerUp, X: x, Y: y, Button: b.btn, Mods: mods})
		}
	}

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		buf = append(buf, InputEvent{Type: EventKeyDown, Key: k, Mods: mods})
	}
	return buf
}
