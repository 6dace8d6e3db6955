// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document validates PDF files and reads their metadata.
package document

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Validation failures. The messages are shown to the user as-is.
var (
	ErrEmptyPath  = errors.New("no se indicó ningún archivo")
	ErrNotFound   = errors.New("el archivo no existe")
	ErrNotRegular = errors.New("la ruta no es un archivo")
	ErrNotPDF     = errors.New("la extensión no es .pdf")
	ErrBadHeader  = errors.New("el archivo no es un PDF válido (falta la firma %PDF)")
)

// headerMagic is the byte sequence every PDF starts with.
const headerMagic = "%PDF"

// Validate checks that path points to a plausible PDF: non-empty path,
// existing regular file, case-insensitive .pdf extension, and the %PDF
// header in the first four bytes. It returns the first failing check.
// This is a cheap sanity pass; structural validation is left to the
// rendering engine.
func Validate(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrEmptyPath
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("no se pudo acceder a %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegular, path)
	}

	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fmt.Errorf("%w: %s", ErrNotPDF, filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("no se pudo leer el archivo: %w", err)
	}
	defer f.Close()

	header := make([]byte, len(headerMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: %s", ErrBadHeader, filepath.Base(path))
		}
		return fmt.Errorf("no se pudo leer la cabecera: %w", err)
	}
	if string(header) != headerMagic {
		return fmt.Errorf("%w: %s", ErrBadHeader, filepath.Base(path))
	}
	return nil
}
