// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// Format identifies the raster format pages are saved in.
type Format string

const (
	FormatJPEG Format = "JPEG"
	FormatPNG  Format = "PNG"
)

// Ext returns the file extension (without dot) used for saved pages.
func (f Format) Ext() string {
	if f == FormatPNG {
		return "png"
	}
	return "jpg"
}

// ParseFormat matches free-text input against the known formats,
// case-insensitively and ignoring surrounding whitespace. The boolean
// reports whether the input was recognized.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "JPEG", "JPG":
		return FormatJPEG, true
	case "PNG":
		return FormatPNG, true
	}
	return "", false
}

// Engine identifies the rendering backend.
type Engine string

const (
	// EnginePoppler renders through the pdftoppm/pdfinfo binaries.
	EnginePoppler Engine = "poppler"
	// EngineMuPDF renders in-process through the MuPDF library.
	EngineMuPDF Engine = "mupdf"
)

// ParseEngine matches free-text input against the known engines.
func ParseEngine(s string) (Engine, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "poppler":
		return EnginePoppler, true
	case "mupdf", "fitz":
		return EngineMuPDF, true
	}
	return "", false
}

// Rendering limits and defaults. DPI outside [MinDPI, MaxDPI] is clamped,
// never stored out of range; quality applies to JPEG only.
const (
	DefaultDPI = 300
	MinDPI     = 72
	MaxDPI     = 600

	DefaultQuality = 95
	MinQuality     = 1
	MaxQuality     = 100

	// DefaultBaseName labels the output folder when the user provides none.
	DefaultBaseName = "documento"

	// DefaultOutputRoot is the folder that collects all conversion runs.
	DefaultOutputRoot = "pdf_conversions"
)

// ClampDPI forces n into [MinDPI, MaxDPI].
func ClampDPI(n int) int {
	if n < MinDPI {
		return MinDPI
	}
	if n > MaxDPI {
		return MaxDPI
	}
	return n
}

// ClampQuality forces n into [MinQuality, MaxQuality].
func ClampQuality(n int) int {
	if n < MinQuality {
		return MinQuality
	}
	if n > MaxQuality {
		return MaxQuality
	}
	return n
}

// ConversionRequest holds the settled parameters for one conversion run.
// It is built once from flags and prompts and not modified afterward.
type ConversionRequest struct {
	// SourcePath is the PDF being converted.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// OutputBaseName labels the timestamped output folder.
	OutputBaseName string `json:"output_base_name" yaml:"output_base_name"`

	// DPI is the rasterization resolution, within [MinDPI, MaxDPI].
	DPI int `json:"dpi" yaml:"dpi"`

	// Format selects JPEG or PNG page files.
	Format Format `json:"format" yaml:"format"`

	// Quality is the JPEG compression quality, within [MinQuality, MaxQuality].
	// Ignored when Format is PNG.
	Quality int `json:"quality" yaml:"quality"`

	// Engine selects the rendering backend.
	Engine Engine `json:"engine" yaml:"engine"`

	// PopplerPath is the directory holding the Poppler binaries. Empty
	// means they resolve through PATH.
	PopplerPath string `json:"poppler_path,omitempty" yaml:"poppler_path,omitempty"`
}

// Validate reports the first out-of-range or missing field.
func (r ConversionRequest) Validate() error {
	if strings.TrimSpace(r.SourcePath) == "" {
		return fmt.Errorf("source path is empty")
	}
	if strings.TrimSpace(r.OutputBaseName) == "" {
		return fmt.Errorf("output base name is empty")
	}
	if r.DPI < MinDPI || r.DPI > MaxDPI {
		return fmt.Errorf("dpi %d outside [%d, %d]", r.DPI, MinDPI, MaxDPI)
	}
	if r.Format != FormatJPEG && r.Format != FormatPNG {
		return fmt.Errorf("unknown format %q", r.Format)
	}
	if r.Format == FormatJPEG && (r.Quality < MinQuality || r.Quality > MaxQuality) {
		return fmt.Errorf("quality %d outside [%d, %d]", r.Quality, MinQuality, MaxQuality)
	}
	if r.Engine != EnginePoppler && r.Engine != EngineMuPDF {
		return fmt.Errorf("unknown engine %q", r.Engine)
	}
	return nil
}
