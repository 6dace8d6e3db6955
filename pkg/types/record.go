// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunStatus indicates how a conversion run ended.
type RunStatus string

const (
	RunCompleted RunStatus = "completed"
	RunCancelled RunStatus = "cancelled"
	RunFailed    RunStatus = "failed"
)

// RunRecord describes one conversion run for the history store and exports.
type RunRecord struct {
	// ID is assigned by the history store on insert.
	ID int64 `json:"id" yaml:"id"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// SourcePath is the converted PDF (local path or URL as given).
	SourcePath string `json:"source_path" yaml:"source_path"`

	// OutputDir is the timestamped folder the pages were written to.
	// Empty when the run failed before the folder was created.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// Engine, DPI, Format, and Quality echo the request that ran.
	Engine  Engine `json:"engine" yaml:"engine"`
	DPI     int    `json:"dpi" yaml:"dpi"`
	Format  Format `json:"format" yaml:"format"`
	Quality int    `json:"quality,omitempty" yaml:"quality,omitempty"`

	// Pages is the number of page files written.
	Pages int `json:"pages" yaml:"pages"`

	// Status records completed, cancelled, or failed.
	Status RunStatus `json:"status" yaml:"status"`

	// Error carries the failure reason when Status is failed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Duration is the wall-clock time of the run.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Manifest is written as manifest.yaml into the output folder after a
// successful run.
type Manifest struct {
	CreatedAt time.Time `yaml:"created_at"`
	Source    string    `yaml:"source"`
	Engine    Engine    `yaml:"engine"`
	DPI       int       `yaml:"dpi"`
	Format    Format    `yaml:"format"`
	// Quality is omitted for PNG, where it has no effect.
	Quality int      `yaml:"quality,omitempty"`
	Pages   int      `yaml:"pages"`
	Files   []string `yaml:"files"`
}
