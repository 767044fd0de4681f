package manifest

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ErrUnknownTheme is returned by Selector.Select for ids it does not hold.
var ErrUnknownTheme = errors.New("manifest: unknown theme")

// Selector implements theme.ThemeSelector over go-theme manifests keyed by
// manifest name.
type Selector struct {
	manifests map[string]*theme.Manifest
}

var _ theme.ThemeSelector = (*Selector)(nil)

// NewSelector indexes manifests by name. Later manifests replace earlier ones
// with the same name.
func NewSelector(manifests ...*theme.Manifest) *Selector {
	s := &Selector{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, m := range manifests {
		if m == nil || strings.TrimSpace(m.Name) == "" {
			continue
		}
		s.manifests[strings.TrimSpace(m.Name)] = m
	}
	return s
}

// Select returns the manifest registered as name. An unknown variant falls
// back to the base tokens and is reported as the empty variant.
func (s *Selector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	m, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}

	variant = strings.TrimSpace(variant)
	if _, ok := m.Variants[variant]; !ok {
		variant = ""
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: m}, nil
}

// Variants lists the variant names a theme declares.
func (s *Selector) Variants(name string) []string {
	m, ok := s.manifests[strings.TrimSpace(name)]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(m.Variants))
	for key := range m.Variants {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// ThemeManifest converts m into a go-theme manifest. The theme id becomes the
// go-theme name.
func (m Manifest) ThemeManifest() *theme.Manifest {
	out := &theme.Manifest{
		Name:    m.ID,
		Version: m.Version,
		Tokens:  cloneStrings(m.Tokens),
		Assets:  theme.Assets{Prefix: m.Assets.Prefix, Files: cloneStrings(m.Assets.Files)},
	}
	if len(m.Variants) > 0 {
		out.Variants = make(map[string]theme.Variant, len(m.Variants))
		for name, variant := range m.Variants {
			out.Variants[name] = theme.Variant{
				Tokens: cloneStrings(variant.Tokens),
				Assets: theme.Assets{Prefix: variant.Assets.Prefix, Files: cloneStrings(variant.Assets.Files)},
			}
		}
	}
	return out
}

// ThemeManifests returns the go-theme manifests of every theme in the set.
func (s *Set) ThemeManifests() []*theme.Manifest {
	ids := s.IDs()
	out := make([]*theme.Manifest, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.manifests[id].ThemeManifest())
	}
	return out
}

// Selector returns a go-theme selector over the set's manifests.
func (s *Set) Selector() *Selector {
	return NewSelector(s.ThemeManifests()...)
}
