// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outdir

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/pdf2img/pkg/types"
)

func TestEnsureRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "pdf_conversions")

	if err := EnsureRoot(root); err != nil {
		t.Fatalf("EnsureRoot: %v", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		t.Fatalf("root not created: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("root is not a directory")
	}

	// Calling again on an existing root is fine.
	if err := EnsureRoot(root); err != nil {
		t.Fatalf("EnsureRoot on existing root: %v", err)
	}
}

func TestRunDirName(t *testing.T) {
	ts := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	got := RunDirName("informe", ts)
	if got != "informe_20260314_150926" {
		t.Errorf("RunDirName = %q", got)
	}

	pattern := regexp.MustCompile(`^documento_\d{8}_\d{6}$`)
	if name := RunDirName("documento", time.Now()); !pattern.MatchString(name) {
		t.Errorf("RunDirName(now) = %q, want match for %s", name, pattern)
	}
}

func TestCreateRunDir(t *testing.T) {
	root := t.TempDir()
	ts := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	dir, err := CreateRunDir(root, "informe", ts)
	if err != nil {
		t.Fatalf("CreateRunDir: %v", err)
	}
	if dir != filepath.Join(root, "informe_20260314_150926") {
		t.Errorf("dir = %s", dir)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("run dir not created: %v", err)
	}

	// Same base and timestamp collides.
	if _, err := CreateRunDir(root, "informe", ts); err == nil {
		t.Fatal("expected collision error, got nil")
	}
}

func TestCreateRunDirMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing")
	if _, err := CreateRunDir(root, "doc", time.Now()); err == nil {
		t.Fatal("expected error for missing root, got nil")
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	m := types.Manifest{
		CreatedAt: time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
		Source:    "/docs/informe.pdf",
		Engine:    "poppler",
		DPI:       300,
		Format:    "JPEG",
		Quality:   95,
		Pages:     3,
		Files:     []string{"pagina_001.jpg", "pagina_002.jpg", "pagina_003.jpg"},
	}

	if err := WriteManifest(dir, m); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		t.Fatalf("manifest not written: %v", err)
	}
	text := string(data)
	for _, want := range []string{"source: /docs/informe.pdf", "engine: poppler", "pages: 3", "pagina_002.jpg"} {
		if !strings.Contains(text, want) {
			t.Errorf("manifest missing %q:\n%s", want, text)
		}
	}
}

func TestWriteManifestPNGOmitsQuality(t *testing.T) {
	dir := t.TempDir()
	m := types.Manifest{
		CreatedAt: time.Now().UTC(),
		Source:    "doc.pdf",
		Engine:    "mupdf",
		DPI:       150,
		Format:    "PNG",
		Pages:     1,
		Files:     []string{"pagina_001.png"},
	}

	if err := WriteManifest(dir, m); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "quality") {
		t.Errorf("PNG manifest should omit quality:\n%s", data)
	}
}
