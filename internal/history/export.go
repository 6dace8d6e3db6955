// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// ExportYAML writes the full history, newest first, to path.
func (s *Store) ExportYAML(ctx context.Context, path string) error {
	recs, err := s.List(ctx, 0)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(recs)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the full history, newest first, to path.
func (s *Store) ExportJSON(ctx context.Context, path string) error {
	recs, err := s.List(ctx, 0)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
