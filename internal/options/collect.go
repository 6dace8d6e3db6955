// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package options settles the per-run conversion request through a short
// prompt sequence. Values pinned by command-line flags keep their value and
// skip their prompt; closing the input stream cancels the run.
package options

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pdf2img/pkg/types"
)

// Prompter is the prompt surface the collector needs. *ui.UI satisfies it.
type Prompter interface {
	Printf(format string, args ...interface{})
	Prompt(message string) (string, error)
	PromptWithDefault(message, defaultValue string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
	PromptInt(message string, defaultValue, min, max int) (int, error)
	Warning(format string, args ...interface{})
	Info(format string, args ...interface{})
}

// Seed carries the effective defaults (config file merged over built-ins)
// and marks which of them were pinned by explicit flags. Zero values fall
// back to the built-in defaults.
type Seed struct {
	BaseName   string
	DPI        int
	Format     types.Format
	Quality    int
	Engine     types.Engine
	PopplerDir string

	// Pinned fields keep their value without prompting.
	BaseNamePinned bool
	DPIPinned      bool
	FormatPinned   bool
	QualityPinned  bool

	// AcceptDefaults suppresses every prompt and keeps the seed values.
	AcceptDefaults bool
}

// Collect returns the settled request. The boolean is false when the user
// cancelled; the error reports an unexpected prompt failure.
func Collect(p Prompter, sourcePath string, seed Seed) (types.ConversionRequest, bool, error) {
	req := seedRequest(sourcePath, seed)

	if seed.AcceptDefaults {
		return req, true, nil
	}

	if !seed.BaseNamePinned {
		name, ok, err := askBaseName(p, req.OutputBaseName)
		if err != nil || !ok {
			return types.ConversionRequest{}, false, err
		}
		req.OutputBaseName = name
	}

	needDPI := !seed.DPIPinned
	needFormat := !seed.FormatPinned
	needQuality := !seed.QualityPinned && (needFormat || req.Format == types.FormatJPEG)

	if !needDPI && !needFormat && !needQuality {
		return req, true, nil
	}

	advanced, err := p.Confirm("¿Configurar opciones avanzadas (DPI, formato, calidad)?", false)
	if err != nil {
		if isCancel(err) {
			return types.ConversionRequest{}, false, nil
		}
		return types.ConversionRequest{}, false, err
	}
	if !advanced {
		return req, true, nil
	}

	if needDPI {
		dpi, err := p.PromptInt("Resolución en DPI", req.DPI, types.MinDPI, types.MaxDPI)
		if err != nil {
			if isCancel(err) {
				return types.ConversionRequest{}, false, nil
			}
			return types.ConversionRequest{}, false, err
		}
		req.DPI = types.ClampDPI(dpi)
	}

	if needFormat {
		input, err := p.Prompt(fmt.Sprintf("Formato de salida (JPEG/PNG) [%s]", req.Format))
		if err != nil {
			if isCancel(err) {
				return types.ConversionRequest{}, false, nil
			}
			return types.ConversionRequest{}, false, err
		}
		if input != "" {
			if f, ok := types.ParseFormat(input); ok {
				req.Format = f
			} else {
				p.Warning("formato no reconocido %q; se mantiene %s", input, req.Format)
			}
		}
	}

	if req.Format == types.FormatJPEG && !seed.QualityPinned {
		q, err := p.PromptInt("Calidad JPEG", req.Quality, types.MinQuality, types.MaxQuality)
		if err != nil {
			if isCancel(err) {
				return types.ConversionRequest{}, false, nil
			}
			return types.ConversionRequest{}, false, err
		}
		req.Quality = types.ClampQuality(q)
	}

	return req, true, nil
}

// seedRequest fills the request with the seed values, substituting the
// built-in defaults for zero fields and clamping the ranged ones.
func seedRequest(sourcePath string, seed Seed) types.ConversionRequest {
	base := strings.TrimSpace(seed.BaseName)
	if base == "" {
		base = types.DefaultBaseName
	}
	dpi := seed.DPI
	if dpi == 0 {
		dpi = types.DefaultDPI
	}
	format := seed.Format
	if format == "" {
		format = types.FormatJPEG
	}
	quality := seed.Quality
	if quality == 0 {
		quality = types.DefaultQuality
	}
	engine := seed.Engine
	if engine == "" {
		engine = types.EnginePoppler
	}

	return types.ConversionRequest{
		SourcePath:     sourcePath,
		OutputBaseName: base,
		DPI:            types.ClampDPI(dpi),
		Format:         format,
		Quality:        types.ClampQuality(quality),
		Engine:         engine,
		PopplerPath:    seed.PopplerDir,
	}
}

// askBaseName prompts for the output folder base name. Empty input falls
// back to def after a confirmation; declining the fallback cancels.
func askBaseName(p Prompter, def string) (string, bool, error) {
	name, err := p.Prompt(fmt.Sprintf("Nombre base para la carpeta de salida [%s]", def))
	if err != nil {
		if isCancel(err) {
			return "", false, nil
		}
		return "", false, err
	}
	if name != "" {
		return name, true, nil
	}

	useDefault, err := p.Confirm(fmt.Sprintf("¿Usar el nombre por defecto %q?", def), true)
	if err != nil {
		if isCancel(err) {
			return "", false, nil
		}
		return "", false, err
	}
	if !useDefault {
		return "", false, nil
	}
	return def, true, nil
}

// isCancel reports whether a prompt error means the input stream closed,
// the CLI analog of dismissing a dialog.
func isCancel(err error) bool {
	return errors.Is(err, io.EOF)
}
