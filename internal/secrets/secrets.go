// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// Each file holds one secret: the filename is the key name and the trimmed
// file contents are the value.
//
// Known key files: mealdb-api-key.
package secrets

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is the secrets directory used when none is configured.
const DefaultDir = ".secrets"

// MealDBAPIKey names the file holding the recipe service API key.
const MealDBAPIKey = "mealdb-api-key"

// Secrets maps key names to values.
type Secrets map[string]string

// Load reads all regular, non-hidden files in dir. A missing directory is
// not an error and yields an empty set. Unreadable files are logged and
// skipped.
func Load(dir string, logger *slog.Logger) (Secrets, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	out := make(Secrets)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("could not read secret", "name", name, "error", err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			out[name] = value
		}
	}
	return out, nil
}

// Get returns the value for name, or fallback when it is absent.
func (s Secrets) Get(name, fallback string) string {
	if v, ok := s[name]; ok {
		return v
	}
	return fallback
}
