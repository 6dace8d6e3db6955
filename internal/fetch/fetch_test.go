// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf2img/internal/httputil"
	"github.com/pdiddy/pdf2img/pkg/types"
)

func init() {
	httputil.RetryBaseDelay = 1 * time.Millisecond
}

func testConfig() types.FetchConfig {
	return types.FetchConfig{
		Timeout:    10 * time.Second,
		UserAgent:  "pdf2img-test",
		MaxRetries: 2,
	}
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/doc.pdf"))
	assert.True(t, IsURL("http://example.com/doc.pdf"))
	assert.False(t, IsURL("/home/ana/doc.pdf"))
	assert.False(t, IsURL("doc.pdf"))
	assert.False(t, IsURL("ftp://example.com/doc.pdf"))
}

func TestFileName(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://example.com/papers/informe.pdf", "informe.pdf"},
		{"https://example.com/papers/INFORME.PDF", "INFORME.PDF"},
		{"https://example.com/download?id=7", "download.pdf"},
		{"https://example.com/", "descarga.pdf"},
		{"https://example.com", "descarga.pdf"},
		{"://bad url", "descarga.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(tt.url), "FileName(%q)", tt.url)
	}
}

func TestDownload(t *testing.T) {
	var gotUA, gotAccept string
	body := []byte("%PDF-1.4 fake body")
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Write(body)
	}))
	defer ts.Close()

	dir := t.TempDir()
	path, err := Download(context.Background(), ts.Client(), ts.URL+"/informe.pdf", dir, testConfig())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "informe.pdf"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, data)

	assert.Equal(t, "pdf2img-test", gotUA)
	assert.Equal(t, "application/pdf", gotAccept)

	// No temp leftovers.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDownloadHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	dir := t.TempDir()
	_, err := Download(context.Background(), ts.Client(), ts.URL+"/missing.pdf", dir, testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "failed download must not leave files")
}

func TestDownloadRetriesRateLimit(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	dir := t.TempDir()
	path, err := Download(context.Background(), ts.Client(), ts.URL+"/doc.pdf", dir, testConfig())
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestDownloadCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Download(ctx, ts.Client(), ts.URL+"/doc.pdf", t.TempDir(), testConfig())
	require.Error(t, err)
}
