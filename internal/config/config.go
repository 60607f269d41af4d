// Package config loads demo settings from defaults, an optional config file
// and MODBOT_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/modbot"
)

// Demo names accepted by Defaults.
const (
	DemoBox   = "box"
	DemoRobot = "robot"
)

// Config is the full set of tunables for one demo.
type Config struct {
	Window WindowConfig `mapstructure:"window"`
	Body   BodyConfig   `mapstructure:"body"`
	Addon  AddonConfig  `mapstructure:"addon"`
	Attach AttachConfig `mapstructure:"attach"`
	Menu   MenuConfig   `mapstructure:"menu"`
	Log    LogConfig    `mapstructure:"log"`
}

// WindowConfig sizes and titles the window.
type WindowConfig struct {
	Title      string `mapstructure:"title"`
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	TPS        int    `mapstructure:"tps"`
	Background string `mapstructure:"background"`
	ShowFPS    bool   `mapstructure:"show_fps"`
}

// BodyConfig places the main body.
type BodyConfig struct {
	X      float64 `mapstructure:"x"`
	Y      float64 `mapstructure:"y"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	Color  string  `mapstructure:"color"`
}

// AddonConfig sizes addons and controls where new ones spawn.
type AddonConfig struct {
	Width     float64 `mapstructure:"width"`
	Height    float64 `mapstructure:"height"`
	Color     string  `mapstructure:"color"`
	Initial   int     `mapstructure:"initial"`
	SpawnX    float64 `mapstructure:"spawn_x"`
	SpawnY    float64 `mapstructure:"spawn_y"`
	SpawnStep float64 `mapstructure:"spawn_step"`
}

// OffsetConfig is one attachment side's nudge.
type OffsetConfig struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
}

// AttachConfig tunes snapping. Offsets are keyed by side name
// (top_left, top_right, bottom_left, bottom_right).
type AttachConfig struct {
	Distance float64                 `mapstructure:"distance"`
	Offsets  map[string]OffsetConfig `mapstructure:"offsets"`
}

// MenuConfig configures the menu bar and its toggle chord.
type MenuConfig struct {
	Enabled    bool     `mapstructure:"enabled"`
	Height     float64  `mapstructure:"height"`
	Key        string   `mapstructure:"key"`
	Modifiers  []string `mapstructure:"modifiers"`
	Background string   `mapstructure:"background"`
	Button     string   `mapstructure:"button"`
	Hover      string   `mapstructure:"hover"`
	Text       string   `mapstructure:"text"`
}

// LogConfig selects log verbosity and encoding.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Debug  bool   `mapstructure:"debug"`
}

// Defaults returns the built-in settings for a demo.
func Defaults(demo string) (Config, error) {
	var (
		sc    modbot.SceneConfig
		title string
	)
	switch demo {
	case DemoBox:
		sc, title = modbot.BoxSceneConfig(), "Draggable Box"
	case DemoRobot:
		sc, title = modbot.RobotSceneConfig(), "Modular Robot Simulation"
	default:
		return Config{}, fmt.Errorf("unknown demo %q", demo)
	}

	offsets := make(map[string]OffsetConfig, len(modbot.Sides))
	for _, side := range modbot.Sides {
		o := sc.Resolver.Offsets[side]
		offsets[side.String()] = OffsetConfig{X: o.X, Y: o.Y}
	}

	return Config{
		Window: WindowConfig{
			Title:      title,
			Width:      int(sc.Width),
			Height:     int(sc.Height),
			TPS:        sc.TPS,
			Background: hexOf(sc.Background),
		},
		Body: BodyConfig{
			X: sc.Body.X, Y: sc.Body.Y, Width: sc.Body.Width, Height: sc.Body.Height,
			Color: hexOf(sc.BodyColor),
		},
		Addon: AddonConfig{
			Width:     orDefault(sc.AddonWidth, 80),
			Height:    orDefault(sc.AddonHeight, 80),
			Color:     hexOf(orDefaultColor(sc.AddonColor, modbot.RGB(160, 120, 90))),
			Initial:   sc.InitialAddons,
			SpawnX:    sc.SpawnX,
			SpawnY:    sc.SpawnY,
			SpawnStep: sc.SpawnStep,
		},
		Attach: AttachConfig{Distance: sc.Resolver.Distance, Offsets: offsets},
		Menu: MenuConfig{
			Enabled:    sc.Menu.Enabled,
			Height:     sc.Menu.Height,
			Key:        "M",
			Modifiers:  []string{"ctrl"},
			Background: hexOf(modbot.DefaultMenuStyle.Background),
			Button:     hexOf(modbot.DefaultMenuStyle.Button),
			Hover:      hexOf(modbot.DefaultMenuStyle.ButtonOver),
			Text:       hexOf(modbot.DefaultMenuStyle.Text),
		},
		Log: LogConfig{Level: "info", Format: "console"},
	}, nil
}

// Validate reports the first invalid setting. The body position is not
// checked; the scene clamps it into the window.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Body.Width <= 0 || c.Body.Height <= 0 {
		return fmt.Errorf("body size must be positive, got %vx%v", c.Body.Width, c.Body.Height)
	}
	if c.Body.Width > float64(c.Window.Width) || c.Body.Height > float64(c.Window.Height) {
		return fmt.Errorf("body %vx%v does not fit the window", c.Body.Width, c.Body.Height)
	}
	if c.Addon.Width <= 0 || c.Addon.Height <= 0 {
		return fmt.Errorf("addon size must be positive, got %vx%v", c.Addon.Width, c.Addon.Height)
	}
	if c.Addon.Initial < 0 {
		return fmt.Errorf("addon.initial must not be negative, got %d", c.Addon.Initial)
	}
	if c.Attach.Distance <= 0 {
		return fmt.Errorf("attach.distance must be positive, got %v", c.Attach.Distance)
	}
	if _, err := c.offsets(); err != nil {
		return err
	}
	if c.Menu.Enabled {
		if c.Menu.Height <= 0 {
			return fmt.Errorf("menu.height must be positive, got %v", c.Menu.Height)
		}
		if _, err := ParseKey(c.Menu.Key); err != nil {
			return err
		}
		if _, err := ParseModifiers(c.Menu.Modifiers); err != nil {
			return err
		}
	}
	for name, hex := range map[string]string{
		"window.background": c.Window.Background,
		"body.color":        c.Body.Color,
		"addon.color":       c.Addon.Color,
		"menu.background":   c.Menu.Background,
		"menu.button":       c.Menu.Button,
		"menu.hover":        c.Menu.Hover,
		"menu.text":         c.Menu.Text,
	} {
		if _, err := parseColor(hex); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	return nil
}

// SceneConfig converts c into the scene's configuration. Call Validate first;
// errors here mirror its checks.
func (c *Config) SceneConfig() (modbot.SceneConfig, error) {
	tuning, err := c.Tuning()
	if err != nil {
		return modbot.SceneConfig{}, err
	}
	colors := make(map[string]modbot.Color, 7)
	for name, hex := range map[string]string{
		"background": c.Window.Background,
		"body":       c.Body.Color,
		"addon":      c.Addon.Color,
		"menu":       c.Menu.Background,
		"button":     c.Menu.Button,
		"hover":      c.Menu.Hover,
		"text":       c.Menu.Text,
	} {
		col, err := parseColor(hex)
		if err != nil {
			return modbot.SceneConfig{}, fmt.Errorf("%s color: %w", name, err)
		}
		colors[name] = col
	}

	menu := modbot.MenuConfig{Enabled: c.Menu.Enabled}
	if c.Menu.Enabled {
		key, err := ParseKey(c.Menu.Key)
		if err != nil {
			return modbot.SceneConfig{}, err
		}
		mods, err := ParseModifiers(c.Menu.Modifiers)
		if err != nil {
			return modbot.SceneConfig{}, err
		}
		menu.Height = c.Menu.Height
		menu.ToggleKey = key
		menu.ToggleMods = mods
		menu.Style = modbot.MenuStyle{
			Background: colors["menu"],
			Button:     colors["button"],
			ButtonOver: colors["hover"],
			Text:       colors["text"],
		}
	}

	return modbot.SceneConfig{
		Width:         float64(c.Window.Width),
		Height:        float64(c.Window.Height),
		Background:    colors["background"],
		Body:          modbot.Rect{X: c.Body.X, Y: c.Body.Y, Width: c.Body.Width, Height: c.Body.Height},
		BodyColor:     colors["body"],
		AddonWidth:    c.Addon.Width,
		AddonHeight:   c.Addon.Height,
		AddonColor:    colors["addon"],
		InitialAddons: c.Addon.Initial,
		SpawnX:        c.Addon.SpawnX,
		SpawnY:        c.Addon.SpawnY,
		SpawnStep:     c.Addon.SpawnStep,
		Resolver:      modbot.Resolver{Distance: tuning.SnapDistance, Offsets: tuning.Offsets},
		Menu:          menu,
		TPS:           c.Window.TPS,
	}, nil
}

// Tuning extracts the hot-reloadable attachment settings.
func (c *Config) Tuning() (modbot.Tuning, error) {
	offsets, err := c.offsets()
	if err != nil {
		return modbot.Tuning{}, err
	}
	return modbot.Tuning{SnapDistance: c.Attach.Distance, Offsets: offsets}, nil
}

// offsets builds the side table. Every side must be present exactly once.
func (c *Config) offsets() (modbot.OffsetTable, error) {
	var table modbot.OffsetTable
	var seen [4]bool
	for name, o := range c.Attach.Offsets {
		side, err := modbot.ParseSide(strings.ToLower(name))
		if err != nil {
			return table, fmt.Errorf("attach.offsets: %w", err)
		}
		table[side] = modbot.Vec2{X: o.X, Y: o.Y}
		seen[side] = true
	}
	for _, side := range modbot.Sides {
		if !seen[side] {
			return table, fmt.Errorf("attach.offsets: missing side %q", side)
		}
	}
	return table, nil
}

// ParseKey resolves a key name such as "M" or "F1" to an ebiten.Key.
func ParseKey(name string) (ebiten.Key, error) {
	name = strings.TrimSpace(name)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("menu.key: unknown key %q", name)
}

// ParseModifiers resolves modifier names (shift, ctrl, alt, meta) to a mask.
func ParseModifiers(names []string) (modbot.KeyModifiers, error) {
	var mods modbot.KeyModifiers
	for _, n := range names {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "shift":
			mods |= modbot.ModShift
		case "ctrl", "control":
			mods |= modbot.ModCtrl
		case "alt", "option":
			mods |= modbot.ModAlt
		case "meta", "cmd", "super":
			mods |= modbot.ModMeta
		default:
			return 0, fmt.Errorf("menu.modifiers: unknown modifier %q", n)
		}
	}
	return mods, nil
}

// parseColor reads a "#rrggbb" string.
func parseColor(hex string) (modbot.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return modbot.Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return modbot.RGB(r, g, b), nil
}

func hexOf(c modbot.Color) string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Hex()
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

func orDefaultColor(c, def modbot.Color) modbot.Color {
	if c == (modbot.Color{}) {
		return def
	}
	return c
}
