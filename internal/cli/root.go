// Package cli provides the command-line interface for modbot.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/phanxgames/modbot"
	"github.com/phanxgames/modbot/internal/config"
	"github.com/phanxgames/modbot/internal/logging"
)

// Options holds the persistent flags shared by every demo command.
type Options struct {
	ConfigFile    string
	LogLevel      string
	LogFormat     string
	Debug         bool
	ShowFPS       bool
	Script        string
	ScreenshotDir string
	Watch         bool
}

// runFunc opens the window. Tests replace it to avoid touching the display.
type runFunc func(scene *modbot.Scene, cfg modbot.RunConfig) error

// NewRootCmd creates the root command for modbot.
func NewRootCmd(version string) *cobra.Command {
	return newRootCmd(version, modbot.Run)
}

func newRootCmd(version string, run runFunc) *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:           "modbot",
		Short:         "Drag-and-snap rectangle demos",
		Long:          `modbot runs two small demos: a single draggable box, and a modular robot editor whose addons snap onto the body's corners.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigFile, "config", "c", "", "config file (default ./modbot.{yaml,toml,json} if present)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.StringVar(&opts.LogFormat, "log-format", "", "log format: console or json")
	pf.BoolVar(&opts.Debug, "debug", false, "log per-frame stats")
	pf.BoolVar(&opts.ShowFPS, "fps", false, "show the FPS/TPS overlay")
	pf.StringVar(&opts.Script, "script", "", "JSON test script to drive the demo")
	pf.StringVar(&opts.ScreenshotDir, "screenshot-dir", "screenshots", "directory for script screenshots")
	pf.BoolVar(&opts.Watch, "watch", false, "reload attachment tuning when the config file changes")

	rootCmd.AddCommand(
		newDemoCmd(config.DemoBox, "Drag a single box around the window", opts, run),
		newDemoCmd(config.DemoRobot, "Build a modular robot by snapping addons onto its body", opts, run),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "modbot %s\n", version)
			},
		},
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute(version string) {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "modbot: %v\n", err)
		os.Exit(1)
	}
}

func newDemoCmd(demo, short string, opts *Options, run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   demo,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, demo, opts, run)
		},
	}
}

// runDemo loads config, builds the scene and hands it to run.
func runDemo(cmd *cobra.Command, demo string, opts *Options, run runFunc) error {
	mgr, err := config.NewManager(demo, opts.ConfigFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		mgr.Set("log.level", opts.LogLevel)
	}
	if flags.Changed("log-format") {
		mgr.Set("log.format", opts.LogFormat)
	}
	if flags.Changed("debug") {
		mgr.Set("log.debug", opts.Debug)
	}
	if flags.Changed("fps") {
		mgr.Set("window.show_fps", opts.ShowFPS)
	}

	cfg, err := mgr.Load()
	if err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Log.Level)
	logCfg.Format = cfg.Log.Format
	if cfg.Log.Debug && logCfg.Level > zerolog.DebugLevel {
		logCfg.Level = zerolog.DebugLevel
	}
	log := logging.NewWithWriter(logCfg, cmd.ErrOrStderr()).With().Str("demo", demo).Logger()

	scene, err := buildScene(cfg, log)
	if err != nil {
		return err
	}
	scene.ScreenshotDir = opts.ScreenshotDir

	if opts.Script != "" {
		data, err := os.ReadFile(opts.Script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := modbot.LoadTestScript(data)
		if err != nil {
			return err
		}
		scene.SetTestRunner(runner)
		log.Info().Str("script", opts.Script).Msg("test script attached")
	}

	if opts.Watch {
		err := mgr.Watch(func(c *config.Config) {
			t, err := c.Tuning()
			if err != nil {
				log.Warn().Err(err).Msg("ignoring reloaded tuning")
				return
			}
			scene.QueueTuning(t)
		}, func(err error) {
			log.Warn().Err(err).Msg("config reload rejected")
		})
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
		log.Info().Str("file", mgr.ConfigFile()).Msg("watching config")
	}

	return run(scene, modbot.RunConfig{
		Title:   cfg.Window.Title,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		ShowFPS: cfg.Window.ShowFPS,
	})
}

// buildScene converts cfg into a ready Scene wired to log.
func buildScene(cfg *config.Config, log zerolog.Logger) (*modbot.Scene, error) {
	sc, err := cfg.SceneConfig()
	if err != nil {
		return nil, err
	}
	scene := modbot.NewScene(sc)
	scene.SetLogger(log)
	scene.SetDebugMode(cfg.Log.Debug)
	return scene, nil
}
