package modbot

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// SceneConfig describes one demo: window bounds, the main body, addon
// spawning, attachment tuning and the menu.
type SceneConfig struct {
	Width, Height float64
	Background    Color

	Body      Rect
	BodyColor Color

	AddonWidth, AddonHeight float64
	AddonColor              Color
	InitialAddons           int
	// New addons spawn at (SpawnX, menu height + SpawnY + index*SpawnStep).
	SpawnX, SpawnY, SpawnStep float64

	Resolver Resolver
	Menu     MenuConfig

	// TPS is the fixed update rate. Zero means 60.
	TPS int
}

// BoxSceneConfig is the single draggable box demo.
func BoxSceneConfig() SceneConfig {
	return SceneConfig{
		Width:      800,
		Height:     600,
		Background: RGB(30, 30, 30),
		Body:       Rect{X: 300, Y: 300, Width: 120, Height: 80},
		BodyColor:  RGB(80, 180, 255),
		Resolver:   DefaultResolver(),
		TPS:        60,
	}
}

// RobotSceneConfig is the modular robot editor: a centred 320x180 body, two
// starting addons and a Ctrl+M menu.
func RobotSceneConfig() SceneConfig {
	const w, h, bw, bh = 1000, 600, 320, 180
	return SceneConfig{
		Width:         w,
		Height:        h,
		Background:    RGB(30, 30, 30),
		Body:          Rect{X: (w - bw) / 2, Y: (h - bh) / 2, Width: bw, Height: bh},
		BodyColor:     RGB(112, 108, 97),
		AddonWidth:    80,
		AddonHeight:   80,
		AddonColor:    RGB(160, 120, 90),
		InitialAddons: 2,
		SpawnX:        10,
		SpawnY:        10,
		SpawnStep:     20,
		Resolver:      DefaultResolver(),
		Menu:          DefaultMenuConfig(),
		TPS:           60,
	}
}

// Tuning is the subset of SceneConfig that may change while running.
type Tuning struct {
	SnapDistance float64
	Offsets      OffsetTable
}

// Scene owns the main body, the addon collection and the menu, and routes
// input to them once per frame.
type Scene struct {
	cfg    SceneConfig
	bounds Rect
	tps    int
	dt     float32

	body      *Draggable
	bodyMoved bool
	addons    []*Addon
	spawn     int
	nextID    uint32
	menu      *Menu
	resolver  Resolver

	input    InputSource
	events   []InputEvent
	pointerX float64
	pointerY float64
	quit     bool

	store EntityStore
	log   zerolog.Logger
	debug bool
	stats debugStats

	showFPS    bool
	loadFont   func() (*Font, error)
	fontWarned bool

	injectQueue []InputEvent
	testRunner  *TestRunner

	ScreenshotDir   string
	screenshotQueue []string

	tuneMu  sync.Mutex
	pending *Tuning
}

// NewScene creates a scene from cfg and spawns its initial addons.
func NewScene(cfg SceneConfig) *Scene {
	tps := cfg.TPS
	if tps <= 0 {
		tps = 60
	}
	s := &Scene{
		cfg:           cfg,
		bounds:        Rect{Width: cfg.Width, Height: cfg.Height},
		tps:           tps,
		dt:            float32(1.0 / float64(tps)),
		body:          NewDraggable(cfg.Body),
		menu:          NewMenu(cfg.Menu),
		resolver:      cfg.Resolver,
		log:           zerolog.Nop(),
		loadFont:      defaultLabelFont,
		ScreenshotDir: "screenshots",
	}
	s.body.Rect = s.body.Rect.Clamp(s.bounds)
	for i := 0; i < cfg.InitialAddons; i++ {
		s.AddAddon()
	}
	return s
}

// Body returns the main body's current rectangle.
func (s *Scene) Body() Rect { return s.body.Rect }

// Addons returns the addon collection in insertion order. The returned slice
// MUST NOT be mutated.
func (s *Scene) Addons() []*Addon { return s.addons }

// Menu returns the scene's menu.
func (s *Scene) Menu() *Menu { return s.menu }

// Bounds returns the screen rectangle entities are clamped to.
func (s *Scene) Bounds() Rect { return s.bounds }

// Resolver returns the attachment resolver currently in effect.
func (s *Scene) Resolver() Resolver { return s.resolver }

// Config returns the configuration the scene was built from.
func (s *Scene) Config() SceneConfig { return s.cfg }

// SetInputSource sets where Update polls real input from. Nil disables
// polling; injected events still flow.
func (s *Scene) SetInputSource(src InputSource) { s.input = src }

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) { s.store = store }

// SetLogger replaces the scene's logger. The default discards everything.
func (s *Scene) SetLogger(l zerolog.Logger) { s.log = l }

// SetDebugMode enables per-frame stats logging at debug level.
func (s *Scene) SetDebugMode(enabled bool) { s.debug = enabled }

// SetShowFPS toggles the FPS/TPS overlay.
func (s *Scene) SetShowFPS(enabled bool) { s.showFPS = enabled }

// QueueTuning schedules new attachment tuning for the next Update. Safe to
// call from any goroutine.
func (s *Scene) QueueTuning(t Tuning) {
	s.tuneMu.Lock()
	s.pending = &t
	s.tuneMu.Unlock()
}

func (s *Scene) applyPendingTuning() {
	s.tuneMu.Lock()
	t := s.pending
	s.pending = nil
	s.tuneMu.Unlock()
	if t == nil {
		return
	}
	s.resolver = Resolver{Distance: t.SnapDistance, Offsets: t.Offsets}
	s.log.Info().Float64("snap_distance", t.SnapDistance).Msg("attachment tuning reloaded")
}

// AddAddon appends a new addon at the next stacked spawn position.
func (s *Scene) AddAddon() *Addon {
	s.nextID++
	r := Rect{
		X:      s.cfg.SpawnX,
		Y:      s.cfg.Menu.Height + s.cfg.SpawnY + float64(s.spawn)*s.cfg.SpawnStep,
		Width:  s.cfg.AddonWidth,
		Height: s.cfg.AddonHeight,
	}
	a := NewAddon(s.nextID, r, s.cfg.AddonColor)
	s.addons = append(s.addons, a)
	s.spawn++
	s.emit(SceneEvent{Type: AddonAdded, AddonID: a.ID, Side: SideNone, X: r.X, Y: r.Y})
	return a
}

// DeleteAddon removes the most recently added addon. No-op when empty.
func (s *Scene) DeleteAddon() {
	if len(s.addons) == 0 {
		return
	}
	last := len(s.addons) - 1
	a := s.addons[last]
	s.addons[last] = nil
	s.addons = s.addons[:last]
	s.spawn = max(0, s.spawn-1)
	s.emit(SceneEvent{Type: AddonRemoved, AddonID: a.ID, Side: SideNone, X: a.Rect.X, Y: a.Rect.Y})
}

// ToggleMenu opens or closes the menu.
func (s *Scene) ToggleMenu() {
	s.menu.Toggle()
	s.emit(SceneEvent{Type: MenuToggled, Side: SideNone, Open: s.menu.Open()})
}

// Update processes one frame: pending tuning, the test runner, input, then
// per-addon attachment. Returns ebiten.Termination once quit was requested.
func (s *Scene) Update() error {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.applyPendingTuning()

	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	s.events = s.events[:0]
	if len(s.injectQueue) > 0 {
		s.events = append(s.events, s.injectQueue[0])
		copy(s.injectQueue, s.injectQueue[1:])
		s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	} else if s.input != nil {
		s.events = s.input.Poll(s.events)
	}

	for _, ev := range s.events {
		s.HandleEvent(ev)
	}

	s.updateEntities()
	s.menu.update(s.pointerX, s.pointerY, s.dt)

	if s.debug {
		s.stats.eventCount = len(s.events)
		s.stats.updateTime = time.Since(t0)
		s.debugLog()
	}

	if s.quit {
		return ebiten.Termination
	}
	return nil
}

// updateEntities keeps the body on screen, then runs attachment tracking for
// every addon in order.
func (s *Scene) updateEntities() {
	s.body.Rect = s.body.Rect.Clamp(s.bounds)
	body := s.body.Rect
	for _, a := range s.addons {
		if a.Update(body, s.bounds, s.resolver) {
			side, _ := a.Attached()
			s.emit(SceneEvent{Type: AddonAttached, AddonID: a.ID, Side: side, X: a.Rect.X, Y: a.Rect.Y})
		}
	}
}

// HandleEvent routes a single input event. Menu chords and menu clicks are
// consumed; everything else goes to the body, then to each addon in order.
func (s *Scene) HandleEvent(ev InputEvent) {
	switch ev.Type {
	case EventQuit:
		s.quit = true
		return
	case EventKeyDown:
		if s.menu.IsToggle(ev) {
			s.ToggleMenu()
		}
		return
	case EventPointerMove, EventPointerDown, EventPointerUp:
		s.pointerX, s.pointerY = ev.X, ev.Y
	}

	if ev.Type == EventPointerDown && ev.Button == MouseButtonLeft && s.menu.InStrip(ev.Y) {
		switch s.menu.Click(ev.X, ev.Y) {
		case ActionAddAddon:
			s.AddAddon()
		case ActionDeleteAddon:
			s.DeleteAddon()
		}
		return
	}

	if ev.Type == EventPointerDown {
		s.press(ev)
		return
	}

	s.handleBody(ev)
	for _, a := range s.addons {
		a.HandleEvent(ev, s.menu.Strip())
	}
}

// press starts a drag on the topmost entity under the pointer. Addons are
// drawn over the body in collection order, so the search runs newest addon
// first and the body last.
func (s *Scene) press(ev InputEvent) {
	if ev.Button != MouseButtonLeft {
		return
	}
	strip := s.menu.Strip()
	for i := len(s.addons) - 1; i >= 0; i-- {
		a := s.addons[i]
		side, wasAttached := a.Attached()
		if a.HandleEvent(ev, strip) {
			if wasAttached {
				s.emit(SceneEvent{Type: AddonDetached, AddonID: a.ID, Side: side, X: a.Rect.X, Y: a.Rect.Y})
			}
			return
		}
	}
	if !s.menu.InStrip(ev.Y) && s.body.Press(ev.X, ev.Y) {
		s.bodyMoved = false
	}
}

// handleBody applies move and release events to the main body, keeping it
// inside the screen.
func (s *Scene) handleBody(ev InputEvent) {
	switch ev.Type {
	case EventPointerUp:
		if ev.Button != MouseButtonLeft || !s.body.Dragging() {
			return
		}
		s.body.Release()
		if s.bodyMoved {
			s.bodyMoved = false
			s.emit(SceneEvent{Type: BodyMoved, Side: SideNone, X: s.body.Rect.X, Y: s.body.Rect.Y})
		}
	case EventPointerMove:
		if s.body.MoveTo(ev.X, ev.Y) {
			s.body.Rect = s.body.Rect.Clamp(s.bounds)
			s.bodyMoved = true
		}
	}
}
