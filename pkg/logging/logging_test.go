package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestInit_Text(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	Init(slog.LevelInfo, "text", &buf)

	New("seeder").Info("seeded", "source", "primary")
	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "component=seeder")
	assert.Contains(t, out, "source=primary")
}

func TestInit_JSON(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	Init(slog.LevelInfo, "json", &buf)

	New("evaluator").Info("scenario evaluated")
	assert.Contains(t, buf.String(), `"level":"INFO"`)
	assert.Contains(t, buf.String(), `"component":"evaluator"`)
}

func TestInit_LevelGating(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	Init(slog.LevelWarn, "text", &buf)

	New("gate").Info("suppressed")
	assert.Empty(t, buf.String())
	New("gate").Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"Warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
