// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package outdir manages the conversion output tree: the root folder that
// collects all runs and the timestamped per-run folder inside it.
package outdir

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf2img/pkg/types"
)

const (
	// timestampLayout names run folders down to the second. Two runs with
	// the same base name inside one second collide; the collision surfaces
	// as a creation error rather than silently reusing the folder.
	timestampLayout = "20060102_150405"

	// ManifestName is the YAML run summary written next to the page files.
	ManifestName = "manifest.yaml"
)

// EnsureRoot creates the output root if it does not already exist.
func EnsureRoot(root string) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("no se pudo crear la carpeta de salida %s: %w", root, err)
	}
	return nil
}

// RunDirName builds the folder name for a run of base started at ts.
func RunDirName(base string, ts time.Time) string {
	return base + "_" + ts.Format(timestampLayout)
}

// CreateRunDir creates the per-run folder under root and returns its path.
// The folder must not already exist.
func CreateRunDir(root, base string, ts time.Time) (string, error) {
	dir := filepath.Join(root, RunDirName(base, ts))
	if err := os.Mkdir(dir, 0o755); err != nil {
		return "", fmt.Errorf("no se pudo crear la carpeta %s: %w", dir, err)
	}
	return dir, nil
}

// WriteManifest writes the run manifest into dir.
func WriteManifest(dir string, m types.Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, ManifestName), data, 0o644)
}
