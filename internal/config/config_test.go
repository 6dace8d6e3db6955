// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf2img/pkg/types"
)

// loadFrom resets the global viper state, optionally writes a config file,
// and returns the typed config materialized from it.
func loadFrom(t *testing.T, yamlBody string) types.AppConfig {
	t.Helper()
	viper.Reset()
	path := filepath.Join(t.TempDir(), "pdf2img.yaml")
	if yamlBody != "" {
		require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0o644))
	}
	Init(path)
	return Load()
}

func TestLoadDefaults(t *testing.T) {
	cfg := loadFrom(t, "")

	require.Equal(t, types.EnginePoppler, cfg.Render.Engine)
	require.Equal(t, types.DefaultDPI, cfg.Render.DPI)
	require.Equal(t, types.FormatJPEG, cfg.Render.Format)
	require.Equal(t, types.DefaultQuality, cfg.Render.Quality)
	require.Equal(t, types.DefaultOutputRoot, cfg.Output.Root)
	require.True(t, cfg.Output.OpenFolder)
	require.True(t, cfg.History.Enabled)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "pdf2img.log", cfg.Log.File)
	require.Equal(t, 60*time.Second, cfg.Fetch.Timeout)
	require.Equal(t, "pdf2img/0.1", cfg.Fetch.UserAgent)
	require.Equal(t, 3, cfg.Fetch.MaxRetries)
}

func TestInitReportsConfigFile(t *testing.T) {
	viper.Reset()
	path := filepath.Join(t.TempDir(), "pdf2img.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render:\n  dpi: 150\n"), 0o644))

	used := Init(path)
	require.Equal(t, path, used)

	viper.Reset()
	used = Init(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Empty(t, used)
}

func TestLoadFromFile(t *testing.T) {
	cfg := loadFrom(t, `
render:
  engine: mupdf
  dpi: 150
  format: png
  quality: 80
  poppler_path: /opt/poppler/bin
output:
  root: capturas
  open_folder: false
history:
  enabled: false
log:
  level: debug
  file: ""
fetch:
  timeout: 90s
  max_retries: 5
`)

	require.Equal(t, types.EngineMuPDF, cfg.Render.Engine)
	require.Equal(t, 150, cfg.Render.DPI)
	require.Equal(t, types.FormatPNG, cfg.Render.Format)
	require.Equal(t, 80, cfg.Render.Quality)
	require.Equal(t, "/opt/poppler/bin", cfg.Render.PopplerPath)
	require.Equal(t, "capturas", cfg.Output.Root)
	require.False(t, cfg.Output.OpenFolder)
	require.False(t, cfg.History.Enabled)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Empty(t, cfg.Log.File)
	require.Equal(t, 90*time.Second, cfg.Fetch.Timeout)
	require.Equal(t, 5, cfg.Fetch.MaxRetries)
}

func TestLoadClampsRangedValues(t *testing.T) {
	cfg := loadFrom(t, "render:\n  dpi: 10000\n  quality: 500\n")
	require.Equal(t, types.MaxDPI, cfg.Render.DPI)
	require.Equal(t, types.MaxQuality, cfg.Render.Quality)

	cfg = loadFrom(t, "render:\n  dpi: 10\n  quality: 0\n")
	require.Equal(t, types.MinDPI, cfg.Render.DPI)
	require.Equal(t, types.MinQuality, cfg.Render.Quality)
}

func TestLoadFallsBackOnBadEnums(t *testing.T) {
	cfg := loadFrom(t, "render:\n  engine: ghostscript\n  format: bmp\n")
	require.Equal(t, types.EnginePoppler, cfg.Render.Engine)
	require.Equal(t, types.FormatJPEG, cfg.Render.Format)
}

func TestLoadEmptyRootFallsBack(t *testing.T) {
	cfg := loadFrom(t, "output:\n  root: \"\"\n")
	require.Equal(t, types.DefaultOutputRoot, cfg.Output.Root)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("PDF2IMG_RENDER_DPI", "200")
	cfg := loadFrom(t, "render:\n  dpi: 150\n")
	require.Equal(t, 200, cfg.Render.DPI)
}

func TestNewLoggerWritesFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.log")
	logger, closer, err := NewLogger(types.LogConfig{Level: "info", File: logPath}, false, true)
	require.NoError(t, err)
	require.NotNil(t, closer)

	logger.Info().Str("source", "informe.pdf").Msg("conversion started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "conversion started")
	require.Contains(t, string(data), "informe.pdf")
}

func TestNewLoggerLevelFilters(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.log")
	logger, closer, err := NewLogger(types.LogConfig{Level: "error", File: logPath}, false, true)
	require.NoError(t, err)

	logger.Info().Msg("below threshold")
	logger.Error().Msg("surfaced failure")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.NotContains(t, string(data), "below threshold")
	require.Contains(t, string(data), "surfaced failure")
}

func TestNewLoggerVerboseForcesDebug(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.log")
	logger, closer, err := NewLogger(types.LogConfig{Level: "error", File: logPath}, true, true)
	require.NoError(t, err)

	logger.Debug().Msg("diagnostic detail")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "diagnostic detail")
}

func TestNewLoggerWithoutFile(t *testing.T) {
	_, closer, err := NewLogger(types.LogConfig{Level: "info"}, false, true)
	require.NoError(t, err)
	require.Nil(t, closer)
}

func TestNewLoggerBadPath(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "missing", "run.log")
	_, _, err := NewLogger(types.LogConfig{Level: "info", File: logPath}, false, true)
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"ERROR":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"trace":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		require.Equal(t, want, parseLevel(in), "level %q", in)
	}
}
