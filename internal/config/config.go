// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads the application configuration. Precedence, lowest
// to highest: built-in defaults, the optional YAML config file, PDF2IMG_*
// environment variables (a .env file feeds these when present).
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf2img/pkg/types"
)

const (
	// FileBase is the config file name without extension, looked up in the
	// working directory and in ~/.config/pdf2img/.
	FileBase = "pdf2img"

	// EnvPrefix namespaces the environment variables, e.g. PDF2IMG_RENDER_DPI.
	EnvPrefix = "PDF2IMG"

	defaultUserAgent  = "pdf2img/0.1"
	defaultTimeout    = 60 * time.Second
	defaultMaxRetries = 3
)

// Init wires the global viper state: defaults, config file search paths,
// and environment binding. It returns the config file actually read, or
// an empty string when none was found (which is fine, defaults carry).
func Init(cfgFile string) string {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(FileBase)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf2img"))
		}
	}

	// A .env in the working directory feeds the environment binding.
	godotenv.Load()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err == nil {
		return viper.ConfigFileUsed()
	}
	return ""
}

func setDefaults() {
	viper.SetDefault("render.engine", string(types.EnginePoppler))
	viper.SetDefault("render.dpi", types.DefaultDPI)
	viper.SetDefault("render.format", string(types.FormatJPEG))
	viper.SetDefault("render.quality", types.DefaultQuality)
	viper.SetDefault("output.root", types.DefaultOutputRoot)
	viper.SetDefault("output.open_folder", true)
	viper.SetDefault("history.enabled", true)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.file", "pdf2img.log")
	viper.SetDefault("fetch.timeout", defaultTimeout)
	viper.SetDefault("fetch.user_agent", defaultUserAgent)
	viper.SetDefault("fetch.max_retries", defaultMaxRetries)
}

// Load materializes the typed configuration from the viper state.
// Unparseable enum values fall back to their defaults and ranged values
// are clamped, so the returned config is always usable as-is.
func Load() types.AppConfig {
	format, ok := types.ParseFormat(viper.GetString("render.format"))
	if !ok {
		format = types.FormatJPEG
	}
	engine, ok := types.ParseEngine(viper.GetString("render.engine"))
	if !ok {
		engine = types.EnginePoppler
	}
	root := viper.GetString("output.root")
	if root == "" {
		root = types.DefaultOutputRoot
	}

	return types.AppConfig{
		Render: types.RenderConfig{
			Engine:      engine,
			PopplerPath: viper.GetString("render.poppler_path"),
			DPI:         types.ClampDPI(viper.GetInt("render.dpi")),
			Format:      format,
			Quality:     types.ClampQuality(viper.GetInt("render.quality")),
		},
		Output: types.OutputConfig{
			Root:       root,
			OpenFolder: viper.GetBool("output.open_folder"),
		},
		History: types.HistoryConfig{
			Enabled: viper.GetBool("history.enabled"),
			Path:    viper.GetString("history.path"),
		},
		Log: types.LogConfig{
			Level: viper.GetString("log.level"),
			File:  viper.GetString("log.file"),
		},
		Fetch: types.FetchConfig{
			Timeout:    viper.GetDuration("fetch.timeout"),
			UserAgent:  viper.GetString("fetch.user_agent"),
			MaxRetries: viper.GetInt("fetch.max_retries"),
		},
	}
}
