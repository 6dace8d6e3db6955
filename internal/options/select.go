// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package options

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SelectPDF asks the user which PDF to convert: the PDF files found in dir
// are offered as a numbered menu and any other input is taken as a path.
// Empty input cancels. No validation happens here.
func SelectPDF(p Prompter, dir string) (string, bool, error) {
	pdfs, err := listPDFs(dir)
	if err != nil {
		return "", false, err
	}

	if len(pdfs) == 0 {
		path, err := p.Prompt("Ruta del archivo PDF a convertir")
		if err != nil {
			if isCancel(err) {
				return "", false, nil
			}
			return "", false, err
		}
		if path == "" {
			return "", false, nil
		}
		return path, true, nil
	}

	p.Printf("Archivos PDF en %s:\n", dir)
	for i, name := range pdfs {
		p.Printf("  %d) %s\n", i+1, name)
	}

	for {
		input, err := p.Prompt("Número o ruta del PDF a convertir")
		if err != nil {
			if isCancel(err) {
				return "", false, nil
			}
			return "", false, err
		}
		if input == "" {
			return "", false, nil
		}
		if n, err := strconv.Atoi(input); err == nil {
			if n >= 1 && n <= len(pdfs) {
				return filepath.Join(dir, pdfs[n-1]), true, nil
			}
			p.Warning("introduce un número entre 1 y %d", len(pdfs))
			continue
		}
		return input, true, nil
	}
}

// listPDFs returns the names of the PDF files directly under dir, in
// directory order.
func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var pdfs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			pdfs = append(pdfs, e.Name())
		}
	}
	return pdfs, nil
}
