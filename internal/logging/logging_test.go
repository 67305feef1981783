package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seven7ty/typeshi/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, Config{Level: "debug", Format: "json"}))
	logger.Debug("generated", slog.Int("records", 3))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "generated", line["msg"])
	assert.Equal(t, float64(3), line["records"])
}

func TestNewHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, Config{Level: "warn"}))
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestSetup_File(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "logs", "typeshi.log")
	cleanup, err := Setup(Config{Level: "info", FilePath: path, MaxSizeMB: 1})
	require.NoError(t, err)

	slog.Info("to file")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestFromConfig(t *testing.T) {
	cfg := &config.Config{LogLevel: "debug", LogFormat: "json", LogFile: "x.log", LogMaxBackups: 2}
	got := FromConfig(cfg)
	assert.Equal(t, Config{Level: "debug", Format: "json", FilePath: "x.log", MaxBackups: 2}, got)
}
