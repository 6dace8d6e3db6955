// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package poppler locates and invokes the Poppler command-line tools
// (pdftoppm, pdfinfo) used by the default rendering engine.
package poppler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const (
	binPdftoppm = "pdftoppm"
	binPdfinfo  = "pdfinfo"
)

// Invocation failures the caller can distinguish.
var (
	// ErrNotInstalled reports that the Poppler binaries cannot be executed.
	ErrNotInstalled = errors.New("poppler no está instalado o no se encuentra en el PATH")

	// ErrPageCount reports that pdfinfo could not determine the page count.
	ErrPageCount = errors.New("no se pudo obtener el número de páginas")

	// ErrSyntax reports that the document failed to parse.
	ErrSyntax = errors.New("el PDF tiene una sintaxis inválida o está corrupto")
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	Run(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	var outBuf, errBuf bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err := cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

var defaultExec executor = &osExecutor{}

// Tools invokes the Poppler binaries, optionally from an explicit directory.
type Tools struct {
	dir  string
	exec executor
}

// NewTools returns a Tools that resolves binaries under dir, or through
// PATH when dir is empty.
func NewTools(dir string) *Tools {
	return &Tools{dir: dir, exec: defaultExec}
}

func (t *Tools) bin(name string) string {
	if t.dir == "" {
		return name
	}
	return filepath.Join(t.dir, name)
}

// Version returns the pdftoppm version banner. Poppler prints it on stderr.
func (t *Tools) Version(ctx context.Context) (string, error) {
	_, stderr, err := t.exec.Run(ctx, t.bin(binPdftoppm), "-v")
	if err != nil {
		if isNotFound(err) {
			return "", fmt.Errorf("%w: %v", ErrNotInstalled, err)
		}
		return "", fmt.Errorf("pdftoppm -v: %w", err)
	}
	line, _, _ := strings.Cut(strings.TrimSpace(stderr), "\n")
	return line, nil
}

// PageCount runs pdfinfo and parses the "Pages:" line.
func (t *Tools) PageCount(ctx context.Context, pdfPath string) (int, error) {
	stdout, stderr, err := t.exec.Run(ctx, t.bin(binPdfinfo), pdfPath)
	if err != nil {
		if isNotFound(err) {
			return 0, fmt.Errorf("%w: %v", ErrNotInstalled, err)
		}
		return 0, fmt.Errorf("%w: %s", ErrPageCount, firstLine(stderr))
	}

	for _, line := range strings.Split(stdout, "\n") {
		rest, ok := strings.CutPrefix(line, "Pages:")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return 0, fmt.Errorf("%w: valor inesperado %q", ErrPageCount, strings.TrimSpace(rest))
		}
		return n, nil
	}
	return 0, fmt.Errorf("%w: pdfinfo no devolvió la línea Pages", ErrPageCount)
}

// RenderPages runs pdftoppm, rasterizing every page of pdfPath into
// outDir as PNG files named prefix-N.png, and returns the generated
// files in page order.
func (t *Tools) RenderPages(ctx context.Context, pdfPath, outDir, prefix string, dpi int) ([]string, error) {
	args := []string{
		"-r", strconv.Itoa(dpi),
		"-png",
		pdfPath,
		filepath.Join(outDir, prefix),
	}
	_, stderr, err := t.exec.Run(ctx, t.bin(binPdftoppm), args...)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %v", ErrNotInstalled, err)
		}
		if hasSyntaxError(stderr) {
			return nil, fmt.Errorf("%w: %s", ErrSyntax, firstLine(stderr))
		}
		return nil, fmt.Errorf("pdftoppm: %w: %s", err, firstLine(stderr))
	}

	pages, err := collectPages(outDir, prefix)
	if err != nil {
		return nil, err
	}
	return pages, nil
}

// pageFileRe matches a pdftoppm output name and captures the page number.
// pdftoppm zero-pads the number to the width of the last page.
var pageFileRe = regexp.MustCompile(`^(.+)-(\d+)\.png$`)

// collectPages gathers prefix-N.png files under dir in numeric page order
// and verifies the sequence is complete from page 1.
func collectPages(dir, prefix string) ([]string, error) {
	entries, err := filepath.Glob(filepath.Join(dir, prefix+"-*.png"))
	if err != nil {
		return nil, fmt.Errorf("listing rendered pages: %w", err)
	}

	byIndex := make(map[int]string, len(entries))
	indices := make([]int, 0, len(entries))
	for _, path := range entries {
		m := pageFileRe.FindStringSubmatch(filepath.Base(path))
		if m == nil || m[1] != prefix {
			continue
		}
		n, err := strconv.Atoi(m[2])
		if err != nil || n < 1 {
			continue
		}
		if _, dup := byIndex[n]; dup {
			return nil, fmt.Errorf("duplicate page index %d in %s", n, dir)
		}
		byIndex[n] = path
		indices = append(indices, n)
	}

	if len(indices) == 0 {
		return nil, errors.New("pdftoppm no generó ninguna página")
	}

	sort.Ints(indices)
	pages := make([]string, 0, len(indices))
	for i, n := range indices {
		if n != i+1 {
			return nil, fmt.Errorf("page sequence has a gap: expected %d, found %d", i+1, n)
		}
		pages = append(pages, byIndex[n])
	}
	return pages, nil
}

// hasSyntaxError reports whether pdftoppm/pdfinfo stderr indicates a
// malformed document.
func hasSyntaxError(stderr string) bool {
	return strings.Contains(stderr, "Syntax Error") ||
		strings.Contains(stderr, "May not be a PDF file")
}

// isNotFound reports whether err means the binary does not exist, either
// on PATH or at an explicit location.
func isNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
