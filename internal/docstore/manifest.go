// ABOUTME: YAML manifest of indexed guideline packs
// ABOUTME: One entry per pack: source file, chunk count, index time

package docstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Pack describes one indexed document.
type Pack struct {
	Name      string `yaml:"name"`
	Source    string `yaml:"source"`
	Chunks    int    `yaml:"chunks"`
	IndexedAt string `yaml:"indexed_at"`
}

// Manifest lists every pack in the store.
type Manifest struct {
	Version int    `yaml:"version"`
	Packs   []Pack `yaml:"packs"`
}

// Manifest loads the pack manifest. An absent file is an empty
// manifest, not an error.
func (s *Store) Manifest() (*Manifest, error) {
	data, err := os.ReadFile(s.manifestPath())
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{Version: 1}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading docstore manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing docstore manifest: %w", err)
	}
	return &m, nil
}

func (s *Store) manifestPath() string {
	return filepath.Join(s.dir, "manifest.yaml")
}

func (s *Store) updateManifest(name, source string, chunks int) error {
	m, err := s.Manifest()
	if err != nil {
		return err
	}

	entry := Pack{
		Name:      name,
		Source:    source,
		Chunks:    chunks,
		IndexedAt: time.Now().UTC().Format(time.RFC3339),
	}
	replaced := false
	for i := range m.Packs {
		if m.Packs[i].Name == name {
			m.Packs[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		m.Packs = append(m.Packs, entry)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding docstore manifest: %w", err)
	}
	if err := os.WriteFile(s.manifestPath(), data, 0o644); err != nil {
		return fmt.Errorf("writing docstore manifest: %w", err)
	}
	return nil
}
