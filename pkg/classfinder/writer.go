package classfinder

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriteIndex writes names to w in the index file format: one
// fully-qualified type name per line, newline-terminated, no header.
// Producers (code generators, build scripts) and tests use this so the
// format lives in one place.
func WriteIndex(w io.Writer, names []string) error {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, err := io.WriteString(w, name+"\n"); err != nil {
			return fmt.Errorf("write index entry %q: %w", name, err)
		}
	}
	return nil
}

// WriteIndexFile writes the index for a registry name under dir,
// creating dir/META-INF/classfinder as needed. dir is typically a build
// output directory that later becomes one root of a search path.
func WriteIndexFile(dir, name string, names []string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	indexDir := filepath.Join(dir, filepath.FromSlash(IndexDir))
	if err := os.MkdirAll(indexDir, 0o755); err != nil {
		return fmt.Errorf("create index dir: %w", err)
	}

	f, err := os.Create(filepath.Join(indexDir, name))
	if err != nil {
		return fmt.Errorf("create index file: %w", err)
	}
	if err := WriteIndex(f, names); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
