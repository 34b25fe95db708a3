// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// ExportYAML writes the stored vocabulary (or a filtered subset) to
// dataDir/export.yaml.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) (string, error) {
	results, err := s.exportResults(ctx, opts)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dataDir, "export.yaml")
	data, err := yaml.Marshal(results)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// ExportJSON writes the stored vocabulary (or a filtered subset) to
// dataDir/export.json.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) (string, error) {
	results, err := s.exportResults(ctx, opts)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dataDir, "export.json")
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func (s *Store) exportResults(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	opts.MaxResults = exportLimit
	results, err := s.Retrieve(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	if results == nil {
		results = []QueryResult{}
	}
	return results, nil
}
