// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render rasterizes PDF pages into image files through pluggable
// engines. Two backends implement the Engine interface: poppler (external
// pdftoppm/pdfinfo binaries) and mupdf (in-process go-fitz).
package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/pdiddy/pdf2img/pkg/types"
)

// Conversion failures the caller can distinguish. Anything else is wrapped
// with enough context to show the user.
var (
	// ErrEngineMissing reports that the rendering backend is not installed.
	ErrEngineMissing = errors.New("el motor de renderizado no está instalado")

	// ErrPageCountUnknown reports that the page count could not be determined.
	ErrPageCountUnknown = errors.New("no se pudo determinar el número de páginas")

	// ErrCorruptDocument reports that the document could not be parsed.
	ErrCorruptDocument = errors.New("el PDF está dañado o tiene una sintaxis inválida")
)

// Engine rasterizes the pages of a PDF document.
type Engine interface {
	// Name identifies the backend in logs and run records.
	Name() string

	// PageCount returns the number of pages in the document at pdfPath.
	PageCount(ctx context.Context, pdfPath string) (int, error)

	// RenderPages rasterizes every page of pdfPath at the given DPI and
	// streams them, in page order, to emit. Page numbers are 1-based.
	// Rendering stops at the first emit error.
	RenderPages(ctx context.Context, pdfPath string, dpi int, emit func(page int, img image.Image) error) error
}

// NewEngine returns the backend named by the request.
func NewEngine(name types.Engine, popplerDir string) (Engine, error) {
	switch name {
	case types.EnginePoppler:
		return NewPopplerEngine(popplerDir), nil
	case types.EngineMuPDF:
		return NewFitzEngine(), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", name)
	}
}

// Result holds the outcome of a completed conversion.
type Result struct {
	// Pages is the number of page files written.
	Pages int
	// Files lists the written page files in page order.
	Files []string
}

// Progress is called after each page file is written.
type Progress func(done, total int)

// Convert rasterizes req.SourcePath into outDir, one file per page named
// pagina_NNN with the requested extension, and returns the written files.
// The quality option is applied only when the format is JPEG. A nil
// progress callback is allowed.
func Convert(ctx context.Context, eng Engine, req types.ConversionRequest, outDir string, progress Progress) (Result, error) {
	total, err := eng.PageCount(ctx, req.SourcePath)
	if err != nil {
		return Result{}, err
	}

	files := make([]string, 0, total)
	err = eng.RenderPages(ctx, req.SourcePath, req.DPI, func(page int, img image.Image) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		dst := filepath.Join(outDir, pageFileName(page, req.Format))
		if err := savePage(img, dst, req.Format, req.Quality); err != nil {
			return fmt.Errorf("guardando la página %d: %w", page, err)
		}
		files = append(files, dst)
		if progress != nil {
			progress(len(files), total)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	return Result{Pages: len(files), Files: files}, nil
}

// pageFileName builds the 1-based page file name, zero-padded to three
// digits. Wider page numbers keep their natural width.
func pageFileName(page int, format types.Format) string {
	return fmt.Sprintf("pagina_%03d.%s", page, format.Ext())
}

func savePage(img image.Image, dst string, format types.Format, quality int) error {
	if format == types.FormatJPEG {
		return imaging.Save(img, dst, imaging.JPEGQuality(quality))
	}
	return imaging.Save(img, dst)
}
