// Package iofs prepares the on-disk layout of herbdb: config and log
// directories, the default config file, and discovery of scraped
// species documents.
package iofs

import (
	_ "embed"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/avherb/herbdb/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates the standard directories if they are missing.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.DocumentsDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return ErrCreateDir(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the embedded default config if none exists.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return ErrCopyFile(configPath, err)
	}

	return nil
}

// ListDocuments returns the species document files in dir, sorted by
// name. The crawler leaves bookkeeping files next to the documents
// (for example _scraping_status.json); anything starting with an
// underscore or not ending in .json is skipped.
func ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ErrReadFile(dir, err)
	}

	var res []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() ||
			strings.HasPrefix(name, "_") ||
			!strings.HasSuffix(name, ".json") {
			continue
		}
		res = append(res, filepath.Join(dir, name))
	}
	sort.Strings(res)
	return res, nil
}
