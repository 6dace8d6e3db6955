package types

import "time"

// RenderConfig holds the rendering defaults applied when the user does not
// override them through prompts or flags.
type RenderConfig struct {
	// Engine selects the rendering backend: poppler or mupdf.
	Engine Engine `json:"engine" yaml:"engine"`

	// PopplerPath is an explicit directory for the Poppler binaries.
	// Empty means resolve through PATH or the conventional install dirs.
	PopplerPath string `json:"poppler_path,omitempty" yaml:"poppler_path,omitempty"`

	// DPI is the default rasterization resolution.
	DPI int `json:"dpi" yaml:"dpi"`

	// Format is the default page format: JPEG or PNG.
	Format Format `json:"format" yaml:"format"`

	// Quality is the default JPEG compression quality.
	Quality int `json:"quality" yaml:"quality"`
}

// OutputConfig holds settings for where runs are written.
type OutputConfig struct {
	// Root is the folder that collects all run folders (default "pdf_conversions").
	Root string `json:"root" yaml:"root"`

	// OpenFolder controls whether the result folder is opened in the OS
	// file browser after a successful run (subject to the final prompt).
	OpenFolder bool `json:"open_folder" yaml:"open_folder"`
}

// HistoryConfig holds settings for the conversion history store.
type HistoryConfig struct {
	// Enabled turns run recording on or off.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path is the sqlite database file. Empty means Root/history.db.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum level written: debug, info, warn, or error.
	Level string `json:"level" yaml:"level"`

	// File is the append-only log file mirrored to the console.
	// Empty disables the file sink.
	File string `json:"file" yaml:"file"`
}

// FetchConfig holds settings for downloading remote PDFs.
type FetchConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pdf2img/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxRetries is the retry budget for rate-limited downloads.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// AppConfig groups all configuration sections.
type AppConfig struct {
	Render  RenderConfig  `json:"render" yaml:"render"`
	Output  OutputConfig  `json:"output" yaml:"output"`
	History HistoryConfig `json:"history" yaml:"history"`
	Log     LogConfig     `json:"log" yaml:"log"`
	Fetch   FetchConfig   `json:"fetch" yaml:"fetch"`
}
