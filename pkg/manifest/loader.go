package manifest

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set holds the manifests loaded from a filesystem, keyed by theme id.
type Set struct {
	manifests map[string]Manifest
}

// LoadFS walks fsys and parses every JSON/YAML manifest. A nil fsys or one
// without manifest files yields an empty set.
func LoadFS(fsys fs.FS) (*Set, error) {
	set := &Set{manifests: make(map[string]Manifest)}
	if fsys == nil {
		return set, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isManifestFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("manifest: read %s: %w", path, err)
		}
		m, err := Parse(data, path)
		if err != nil {
			return err
		}
		if existing, exists := set.manifests[m.ID]; exists {
			return fmt.Errorf("manifest: duplicate theme %q (files %s and %s)", m.ID, existing.Source, path)
		}
		set.manifests[m.ID] = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// Parse decodes and validates one manifest document. source names the
// document in error messages.
func Parse(data []byte, source string) (Manifest, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Manifest{}, fmt.Errorf("manifest: file %s is empty", source)
	}

	var raw manifestFile
	if err := json.Unmarshal(data, &raw); err != nil {
		raw = manifestFile{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Manifest{}, fmt.Errorf("manifest: parse %s: invalid JSON or YAML", source)
		}
	}
	return normalise(raw, source)
}

func normalise(raw manifestFile, source string) (Manifest, error) {
	m := Manifest{
		ID:      strings.TrimSpace(raw.ID),
		Name:    strings.TrimSpace(raw.Name),
		Version: strings.TrimSpace(raw.Version),
		Source:  source,
		Styles:  strings.TrimSpace(raw.Styles),
		Scripts: strings.TrimSpace(raw.Scripts),
		Tokens:  cloneStrings(raw.Tokens),
		Assets:  cloneAssets(raw.Assets),
	}
	if m.ID == "" {
		return Manifest{}, fmt.Errorf("manifest: file %s is missing an id", source)
	}
	if m.Version == "" {
		return Manifest{}, fmt.Errorf("manifest: theme %q (file %s) is missing a version", m.ID, source)
	}
	if m.Name == "" {
		m.Name = m.ID
	}

	if len(raw.Variants) > 0 {
		m.Variants = make(map[string]Variant, len(raw.Variants))
		for name, variant := range raw.Variants {
			key := strings.TrimSpace(name)
			if key == "" {
				return Manifest{}, fmt.Errorf("manifest: theme %q (file %s) defines a variant with an empty name", m.ID, source)
			}
			m.Variants[key] = Variant{Tokens: cloneStrings(variant.Tokens), Assets: cloneAssets(variant.Assets)}
		}
	}

	var err error
	if m.Slots, err = normaliseTemplates(raw.Slots, "slot", m.ID, source); err != nil {
		return Manifest{}, err
	}
	if m.Blocks, err = normaliseTemplates(raw.Blocks, "block", m.ID, source); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func normaliseTemplates(raw map[string]Template, kind, id, source string) (map[string]Template, error) {
	out := make(map[string]Template, len(raw))
	for name, tpl := range raw {
		key := strings.TrimSpace(name)
		if key == "" {
			return nil, fmt.Errorf("manifest: theme %q (file %s) defines a %s with an empty name", id, source, kind)
		}
		if _, exists := out[key]; exists {
			return nil, fmt.Errorf("manifest: theme %q (file %s) defines duplicate %s %q", id, source, kind, key)
		}
		if strings.TrimSpace(tpl.Template) == "" {
			return nil, fmt.Errorf("manifest: theme %q (file %s) %s %q has no template", id, source, kind, key)
		}
		out[key] = Template{
			Template: tpl.Template,
			Styles:   strings.TrimSpace(tpl.Styles),
			Scripts:  strings.TrimSpace(tpl.Scripts),
		}
	}
	return out, nil
}

// IDs returns the loaded theme ids sorted.
func (s *Set) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.manifests))
	for id := range s.manifests {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Manifest returns the manifest for id.
func (s *Set) Manifest(id string) (Manifest, bool) {
	if s == nil {
		return Manifest{}, false
	}
	m, ok := s.manifests[id]
	return m, ok
}

// Empty reports whether the set holds any manifests.
func (s *Set) Empty() bool {
	return s == nil || len(s.manifests) == 0
}

// Merge adds every manifest of other to s. Duplicate ids fail.
func (s *Set) Merge(other *Set) error {
	for _, id := range other.IDs() {
		if existing, exists := s.manifests[id]; exists {
			return fmt.Errorf("manifest: duplicate theme %q (files %s and %s)", id, existing.Source, other.manifests[id].Source)
		}
		s.manifests[id] = other.manifests[id]
	}
	return nil
}

func isManifestFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func cloneStrings(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[strings.TrimSpace(key)] = value
	}
	return out
}

func cloneAssets(in Assets) Assets {
	return Assets{Prefix: strings.TrimSpace(in.Prefix), Files: cloneStrings(in.Files)}
}
