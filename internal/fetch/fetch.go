// Package fetch downloads remote PDFs so the rest of the pipeline can treat
// them like local files.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pdf2img/internal/httputil"
	"github.com/pdiddy/pdf2img/pkg/types"
)

// fallbackName is used when the URL path yields no usable file name.
const fallbackName = "descarga.pdf"

// IsURL reports whether source names a remote document.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Download fetches rawURL into dir and returns the local file path. The
// body lands in a temporary file first and is renamed into place only after
// a complete read, so an interrupted download never leaves a partial PDF.
// Rate-limited responses are retried per the fetch configuration.
func Download(ctx context.Context, client *http.Client, rawURL, dir string, cfg types.FetchConfig) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "application/pdf")

	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, rawURL)
	}

	destPath := filepath.Join(dir, FileName(rawURL))

	tmpFile, err := os.CreateTemp(dir, ".fetch-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("renaming temp file: %w", err)
	}
	return destPath, nil
}

// FileName derives a local file name from the URL path, forcing a .pdf
// extension so the validator accepts the download.
func FileName(rawURL string) string {
	name := fallbackName
	if u, err := url.Parse(rawURL); err == nil {
		if base := path.Base(u.Path); base != "" && base != "/" && base != "." {
			name = base
		}
	}
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		name += ".pdf"
	}
	return name
}
