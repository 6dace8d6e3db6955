// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"context"
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"

	"github.com/pdiddy/pdf2img/pkg/types"
)

// fitzEngine renders in-process through MuPDF. It needs no external
// binaries, so ErrEngineMissing never applies to it.
type fitzEngine struct{}

// NewFitzEngine returns the MuPDF-backed engine.
func NewFitzEngine() Engine {
	return &fitzEngine{}
}

func (e *fitzEngine) Name() string { return string(types.EngineMuPDF) }

func (e *fitzEngine) PageCount(ctx context.Context, pdfPath string) (int, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	defer doc.Close()

	n := doc.NumPage()
	if n <= 0 {
		return 0, ErrPageCountUnknown
	}
	return n, nil
}

func (e *fitzEngine) RenderPages(ctx context.Context, pdfPath string, dpi int, emit func(page int, img image.Image) error) error {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	defer doc.Close()

	total := doc.NumPage()
	for i := 0; i < total; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		img, err := doc.ImageDPI(i, float64(dpi))
		if err != nil {
			return fmt.Errorf("renderizando la página %d: %w", i+1, err)
		}
		if err := emit(i+1, img); err != nil {
			return err
		}
	}
	return nil
}
