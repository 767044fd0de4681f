package themekit

import (
	"fmt"
	"io/fs"

	theme "github.com/goliatone/go-theme"
	"github.com/goliatone/go-themekit/pkg/engine"
	"github.com/goliatone/go-themekit/pkg/manifest"
	"github.com/goliatone/go-themekit/pkg/render"
	"github.com/goliatone/go-themekit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-themekit/pkg/renderers/glass"
)

// Themes pairs theme descriptors with the go-theme manifests carrying their
// tokens, variants and asset prefixes.
type Themes struct {
	Descriptors []Descriptor
	Manifests   []*theme.Manifest
}

// IDs lists the descriptor ids in registration order.
func (t Themes) IDs() []string {
	out := make([]string, 0, len(t.Descriptors))
	for _, desc := range t.Descriptors {
		out = append(out, desc.ID())
	}
	return out
}

// Selector returns a selector over the bundled manifests.
func (t Themes) Selector() *manifest.Selector {
	return manifest.NewSelector(t.Manifests...)
}

// Options returns the engine options registering every descriptor and the
// token selector.
func (t Themes) Options() []Option {
	return []Option{
		engine.WithThemes(t.Descriptors...),
		engine.WithThemeSelector(t.Selector()),
	}
}

// EmbeddedThemes exposes the manifest themes shipped with the module so
// callers can inspect or extend them without importing the manifest package.
func EmbeddedThemes() fs.FS {
	return manifest.EmbeddedFS()
}

// LoadThemes returns the liquid-glass theme, the embedded manifest themes,
// and the manifest themes found in each extra source. Manifest ids must be
// unique across all sources and must not reuse a built-in theme id.
func LoadThemes(sources ...fs.FS) (Themes, error) {
	set, err := manifest.LoadFS(manifest.EmbeddedFS())
	if err != nil {
		return Themes{}, fmt.Errorf("themekit: load embedded themes: %w", err)
	}
	for _, src := range sources {
		if src == nil {
			continue
		}
		extra, err := manifest.LoadFS(src)
		if err != nil {
			return Themes{}, fmt.Errorf("themekit: load themes: %w", err)
		}
		if err := set.Merge(extra); err != nil {
			return Themes{}, fmt.Errorf("themekit: merge themes: %w", err)
		}
	}

	if m, exists := set.Manifest(glass.ThemeID); exists {
		return Themes{}, fmt.Errorf("themekit: load themes: %w", &render.ConfigurationError{
			ThemeID:  glass.ThemeID,
			Problems: []string{fmt.Sprintf("manifest %s reuses the id of a built-in theme", m.Source)},
		})
	}

	templates, err := gotemplate.New()
	if err != nil {
		return Themes{}, fmt.Errorf("themekit: template engine: %w", err)
	}
	descriptors, err := set.Descriptors(templates)
	if err != nil {
		return Themes{}, fmt.Errorf("themekit: compile themes: %w", err)
	}

	out := Themes{
		Descriptors: append([]Descriptor{glass.New()}, descriptors...),
		Manifests:   append([]*theme.Manifest{glass.Manifest()}, set.ThemeManifests()...),
	}
	return out, nil
}
