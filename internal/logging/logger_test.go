package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"info":    zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(Config{Level: zerolog.InfoLevel, Format: "json"}, &buf)

	log.Debug().Msg("hidden")
	log.Info().Int("addons", 2).Msg("ready")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "ready", rec["message"])
	assert.Equal(t, "modbot", rec["component"])
	assert.EqualValues(t, 2, rec["addons"])
}

func TestNewWithWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(DefaultConfig(), &buf)
	log.Info().Msg("window open")
	assert.Contains(t, buf.String(), "window open")
}

func TestNew_UsesConfiguredLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = zerolog.WarnLevel
	assert.Equal(t, zerolog.WarnLevel, New(cfg).GetLevel())
}
