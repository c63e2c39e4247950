package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mhojune/idea-creator/internal/idea"
)

const cacheDirName = "idea-creator"

// cachePath locates last.json under the platform cache directory.
func cachePath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(dir, cacheDirName, "last.json"), nil
}

// saveLast replaces the cached result set. The file is indented so a
// user can read it directly.
func saveLast(ideas []idea.Idea) error {
	path, err := cachePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(ideas, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func loadLast() ([]idea.Idea, error) {
	path, err := cachePath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("no cached ideas yet, run 'ideas generate' first")
	}
	if err != nil {
		return nil, err
	}

	var ideas []idea.Idea
	if err := json.Unmarshal(data, &ideas); err != nil {
		return nil, fmt.Errorf("cache file %s is corrupt: %w", path, err)
	}
	return ideas, nil
}
