package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/modbot"
)

type captured struct {
	scene *modbot.Scene
	cfg   modbot.RunConfig
}

func execute(t *testing.T, run runFunc, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd("test", run)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func capture(c *captured) runFunc {
	return func(scene *modbot.Scene, cfg modbot.RunConfig) error {
		c.scene, c.cfg = scene, cfg
		return nil
	}
}

func TestRobotCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	var c captured

	_, err := execute(t, capture(&c), "robot")
	require.NoError(t, err)
	require.NotNil(t, c.scene)

	assert.Equal(t, "Modular Robot Simulation", c.cfg.Title)
	assert.Equal(t, 1000, c.cfg.Width)
	assert.Equal(t, 600, c.cfg.Height)
	assert.False(t, c.cfg.ShowFPS)
	assert.Len(t, c.scene.Addons(), 2)
	assert.Equal(t, modbot.Rect{X: 340, Y: 210, Width: 320, Height: 180}, c.scene.Body())
}

func TestBoxCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	var c captured

	_, err := execute(t, capture(&c), "box", "--fps")
	require.NoError(t, err)

	assert.Equal(t, "Draggable Box", c.cfg.Title)
	assert.Equal(t, 800, c.cfg.Width)
	assert.True(t, c.cfg.ShowFPS)
	assert.Empty(t, c.scene.Addons())
	assert.Equal(t, modbot.Rect{X: 300, Y: 300, Width: 120, Height: 80}, c.scene.Body())
}

func TestConfigFileFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "robot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addon:\n  initial: 4\nattach:\n  distance: 10\n"), 0o644))
	var c captured

	_, err := execute(t, capture(&c), "robot", "--config", path)
	require.NoError(t, err)
	assert.Len(t, c.scene.Addons(), 4)
	assert.Equal(t, 10.0, c.scene.Resolver().Distance)
}

func TestInvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("body:\n  width: 0\n"), 0o644))

	_, err := execute(t, capture(&captured{}), "robot", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "body size")
}

func TestRunErrorPropagates(t *testing.T) {
	t.Chdir(t.TempDir())
	boom := errors.New("no display")
	_, err := execute(t, func(*modbot.Scene, modbot.RunConfig) error { return boom }, "box")
	assert.ErrorIs(t, err, boom)
}

func TestScriptDrivesScene(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	script := filepath.Join(dir, "lifo.json")
	require.NoError(t, os.WriteFile(script, []byte(`{"steps": [
		{"action": "menu"},
		{"action": "add"},
		{"action": "add"},
		{"action": "add"},
		{"action": "delete"},
		{"action": "delete"}
	]}`), 0o644))

	var addons int
	run := func(scene *modbot.Scene, _ modbot.RunConfig) error {
		for i := 0; i < 100; i++ {
			if err := scene.Update(); err != nil {
				return err
			}
		}
		addons = len(scene.Addons())
		return nil
	}

	_, err := execute(t, run, "robot", "--script", script)
	require.NoError(t, err)
	assert.Equal(t, 3, addons)
}

func TestBadScriptFails(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	script := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(script, []byte(`{"steps": [{"action": "fly"}]}`), 0o644))

	_, err := execute(t, capture(&captured{}), "robot", "--script", script)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown action")
}

func TestWatchRequiresFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := execute(t, capture(&captured{}), "robot", "--watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch config")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, capture(&captured{}), "version")
	require.NoError(t, err)
	assert.Equal(t, "modbot test\n", out)
}
