package config

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/classfinder/pkg/classfinder"
)

// FromFile loads configuration from a file, auto-detecting format by extension.
// Supported extensions: .yaml, .yml, .json
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return Config{}, fmt.Errorf("unsupported config file extension: %s", ext)
	}
}

// FromYAML parses YAML data into a Config.
func FromYAML(data []byte) (Config, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	return New(m), nil
}

// FromJSON parses JSON data into a Config.
func FromJSON(data []byte) (Config, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse json: %w", err)
	}
	return New(m), nil
}

// BuildLoader turns the config's roots into a SearchPath loader bound to
// the given type table. Directory roots are opened with os.DirFS; roots
// ending in .zip or .jar are opened as archives. Each root must exist.
//
// Archive handles stay open for the loader's lifetime, which matches the
// process-lifetime search path the loader represents.
func BuildLoader(cfg Config, types *classfinder.TypeTable) (*classfinder.SearchPath, error) {
	var roots []fs.FS
	for _, root := range cfg.Roots() {
		fsys, err := openRoot(root)
		if err != nil {
			return nil, err
		}
		roots = append(roots, fsys)
	}
	return classfinder.NewSearchPath(types, roots...), nil
}

// openRoot opens one configured root as an fs.FS.
func openRoot(root string) (fs.FS, error) {
	if isArchive(root) {
		zr, err := zip.OpenReader(root)
		if err != nil {
			return nil, fmt.Errorf("open archive root %s: %w", root, err)
		}
		return zr, nil
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("open root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open root %s: not a directory or archive", root)
	}
	return os.DirFS(root), nil
}
