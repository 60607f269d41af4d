package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	viper    *viper.Viper
	defaults Config
	path     string

	mu     sync.RWMutex
	config *Config
}

// NewManager creates a manager for demo. When path is empty, a file named
// modbot.{yaml,toml,json} is looked up in the working directory and is
// optional; an explicit path must exist.
func NewManager(demo, path string) (*Manager, error) {
	defaults, err := Defaults(demo)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("modbot")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("MODBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	m := &Manager{viper: v, defaults: defaults, path: path}
	m.setDefaults()
	return m, nil
}

// setDefaults registers every field of the demo's built-in Config.
func (m *Manager) setDefaults() {
	d := m.defaults
	v := m.viper

	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.tps", d.Window.TPS)
	v.SetDefault("window.background", d.Window.Background)
	v.SetDefault("window.show_fps", d.Window.ShowFPS)

	v.SetDefault("body.x", d.Body.X)
	v.SetDefault("body.y", d.Body.Y)
	v.SetDefault("body.width", d.Body.Width)
	v.SetDefault("body.height", d.Body.Height)
	v.SetDefault("body.color", d.Body.Color)

	v.SetDefault("addon.width", d.Addon.Width)
	v.SetDefault("addon.height", d.Addon.Height)
	v.SetDefault("addon.color", d.Addon.Color)
	v.SetDefault("addon.initial", d.Addon.Initial)
	v.SetDefault("addon.spawn_x", d.Addon.SpawnX)
	v.SetDefault("addon.spawn_y", d.Addon.SpawnY)
	v.SetDefault("addon.spawn_step", d.Addon.SpawnStep)

	v.SetDefault("attach.distance", d.Attach.Distance)
	for name, o := range d.Attach.Offsets {
		v.SetDefault("attach.offsets."+name+".x", o.X)
		v.SetDefault("attach.offsets."+name+".y", o.Y)
	}

	v.SetDefault("menu.enabled", d.Menu.Enabled)
	v.SetDefault("menu.height", d.Menu.Height)
	v.SetDefault("menu.key", d.Menu.Key)
	v.SetDefault("menu.modifiers", d.Menu.Modifiers)
	v.SetDefault("menu.background", d.Menu.Background)
	v.SetDefault("menu.button", d.Menu.Button)
	v.SetDefault("menu.hover", d.Menu.Hover)
	v.SetDefault("menu.text", d.Menu.Text)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.debug", d.Log.Debug)
}

// Set overrides a key, taking precedence over file and environment. The CLI
// uses it for flags.
func (m *Manager) Set(key string, value any) {
	m.viper.Set(key, value)
}

// Load reads the config file (if any), applies the environment and validates
// the result.
func (m *Manager) Load() (*Config, error) {
	if err := m.readConfigFile(); err != nil {
		return nil, err
	}
	cfg, err := m.unmarshalConfig()
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.config = cfg
	m.mu.Unlock()
	return cfg, nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if m.path == "" && errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("failed to read config: %w", err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	var cfg Config
	if err := m.viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Get returns the most recently loaded config, or nil before Load.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// ConfigFile returns the file in use, or "" when running on defaults.
func (m *Manager) ConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// Watch reloads the config file whenever it changes and passes each valid
// result to onChange. Invalid edits are reported to onError and the previous
// config stays in effect. Callbacks run on viper's watcher goroutine.
func (m *Manager) Watch(onChange func(*Config), onError func(error)) error {
	if m.viper.ConfigFileUsed() == "" {
		return errors.New("no config file to watch")
	}
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := m.unmarshalConfig()
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		m.mu.Lock()
		m.config = cfg
		m.mu.Unlock()
		onChange(cfg)
	})
	m.viper.WatchConfig()
	return nil
}
