package modbot

import "github.com/hajimehoshi/ebiten/v2"

// MenuAction identifies what a menu button does when clicked.
type MenuAction uint8

const (
	ActionNone        MenuAction = iota // click hit no button
	ActionAddAddon                      // append a new addon
	ActionDeleteAddon                   // remove the newest addon
)

// Button is a labeled menu button whose fill eases toward HoverColor while the
// pointer is over it.
type Button struct {
	Label  string
	Rect   Rect
	Action MenuAction
	hover  hoverFade
}

// Hovered reports whether the pointer was over the button at the last update.
func (b *Button) Hovered() bool {
	return b.hover.target == 1
}

// MenuStyle holds the menu palette.
type MenuStyle struct {
	Background Color
	Button     Color
	ButtonOver Color
	Text       Color
}

// DefaultMenuStyle is the grey palette of the robot editor.
var DefaultMenuStyle = MenuStyle{
	Background: RGB(50, 50, 50),
	Button:     RGB(80, 80, 80),
	ButtonOver: RGB(110, 110, 110),
	Text:       RGB(220, 220, 220),
}

// MenuConfig configures the menu bar and its toggle chord.
type MenuConfig struct {
	Enabled    bool
	Height     float64
	ToggleKey  ebiten.Key
	ToggleMods KeyModifiers
	Style      MenuStyle
}

// DefaultMenuConfig returns a 40 px bar toggled with Ctrl+M.
func DefaultMenuConfig() MenuConfig {
	return MenuConfig{
		Enabled:    true,
		Height:     40,
		ToggleKey:  ebiten.KeyM,
		ToggleMods: ModCtrl,
		Style:      DefaultMenuStyle,
	}
}

// Menu is the top strip holding the add/delete buttons.
type Menu struct {
	cfg     MenuConfig
	open    bool
	Buttons []*Button
}

// NewMenu creates a closed menu with the "Add Addon" and "Delete Addon" buttons.
func NewMenu(cfg MenuConfig) *Menu {
	return &Menu{
		cfg: cfg,
		Buttons: []*Button{
			{Label: "Add Addon", Rect: Rect{X: 10, Y: 5, Width: 100, Height: 30}, Action: ActionAddAddon},
			{Label: "Delete Addon", Rect: Rect{X: 120, Y: 5, Width: 120, Height: 30}, Action: ActionDeleteAddon},
		},
	}
}

// Open reports whether the menu is showing.
func (m *Menu) Open() bool { return m.open }

// Toggle flips the menu's visibility. Disabled menus never open.
func (m *Menu) Toggle() {
	if !m.cfg.Enabled {
		return
	}
	m.open = !m.open
}

// IsToggle reports whether ev is the menu's key chord.
func (m *Menu) IsToggle(ev InputEvent) bool {
	return m.cfg.Enabled && ev.Type == EventKeyDown &&
		ev.Key == m.cfg.ToggleKey && ev.Mods.Has(m.cfg.ToggleMods)
}

// Strip returns the height of the region the open menu occludes, or 0.
func (m *Menu) Strip() float64 {
	if !m.open {
		return 0
	}
	return m.cfg.Height
}

// InStrip reports whether y falls inside the open menu's strip.
func (m *Menu) InStrip(y float64) bool {
	return m.open && y <= m.cfg.Height
}

// Click returns the action of the button under (x, y).
func (m *Menu) Click(x, y float64) MenuAction {
	for _, b := range m.Buttons {
		if b.Rect.Contains(x, y) {
			return b.Action
		}
	}
	return ActionNone
}

// update retargets and advances each button's hover fade for a pointer at
// (x, y).
func (m *Menu) update(x, y float64, dt float32) {
	for _, b := range m.Buttons {
		if m.open && b.Rect.Contains(x, y) {
			b.hover.setTarget(1)
		} else {
			b.hover.setTarget(0)
		}
		b.hover.update(dt)
	}
}

// ButtonColor returns b's current fill.
func (m *Menu) ButtonColor(b *Button) Color {
	return b.hover.color(m.cfg.Style.Button, m.cfg.Style.ButtonOver)
}
