// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"

	"github.com/pdiddy/pdf2img/internal/poppler"
	"github.com/pdiddy/pdf2img/pkg/types"
)

// tempPrefix names the intermediate PNG files pdftoppm writes before they
// are re-encoded into the requested format.
const tempPrefix = "page"

// popplerEngine shells out to the Poppler binaries. pdftoppm renders the
// whole document into a scratch directory as PNG; each intermediate is
// decoded, handed to the caller, and removed.
type popplerEngine struct {
	tools *poppler.Tools
}

// NewPopplerEngine returns the Poppler-backed engine. dir optionally points
// at the directory holding the binaries; empty means PATH.
func NewPopplerEngine(dir string) Engine {
	return &popplerEngine{tools: poppler.NewTools(dir)}
}

func (e *popplerEngine) Name() string { return string(types.EnginePoppler) }

func (e *popplerEngine) PageCount(ctx context.Context, pdfPath string) (int, error) {
	n, err := e.tools.PageCount(ctx, pdfPath)
	if err != nil {
		return 0, mapPopplerErr(err)
	}
	return n, nil
}

func (e *popplerEngine) RenderPages(ctx context.Context, pdfPath string, dpi int, emit func(page int, img image.Image) error) error {
	scratch, err := os.MkdirTemp("", "pdf2img-*")
	if err != nil {
		return fmt.Errorf("creating scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	pages, err := e.tools.RenderPages(ctx, pdfPath, scratch, tempPrefix, dpi)
	if err != nil {
		return mapPopplerErr(err)
	}

	for i, p := range pages {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		img, err := imaging.Open(p)
		if err != nil {
			return fmt.Errorf("decodificando la página %d: %w", i+1, err)
		}
		if err := emit(i+1, img); err != nil {
			return err
		}
		os.Remove(p)
	}
	return nil
}

// mapPopplerErr translates the poppler package sentinels into the
// engine-agnostic ones, keeping the underlying detail.
func mapPopplerErr(err error) error {
	switch {
	case errors.Is(err, poppler.ErrNotInstalled):
		return fmt.Errorf("%w: %v", ErrEngineMissing, err)
	case errors.Is(err, poppler.ErrPageCount):
		return fmt.Errorf("%w: %v", ErrPageCountUnknown, err)
	case errors.Is(err, poppler.ErrSyntax):
		return fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	default:
		return err
	}
}
