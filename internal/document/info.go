// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"os"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Info holds document metadata read in-process, without a rendering engine.
type Info struct {
	Pages    int       `json:"pages"`
	Title    string    `json:"title,omitempty"`
	Author   string    `json:"author,omitempty"`
	Subject  string    `json:"subject,omitempty"`
	Created  time.Time `json:"created,omitempty"`
	Modified time.Time `json:"modified,omitempty"`
}

// Inspect reads metadata from the PDF at path.
func Inspect(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	raw, err := api.PDFInfo(f, "", nil, false, nil)
	if err != nil {
		return nil, fmt.Errorf("reading PDF metadata: %w", err)
	}

	info := &Info{
		Pages:   raw.PageCount,
		Title:   raw.Title,
		Author:  raw.Author,
		Subject: raw.Subject,
	}
	if created, ok := types.DateTime(raw.CreationDate, true); ok {
		info.Created = created
	}
	if modified, ok := types.DateTime(raw.ModificationDate, true); ok {
		info.Modified = modified
	}
	return info, nil
}
