package manifest

import (
	"fmt"

	"github.com/goliatone/go-themekit/pkg/render"
	"github.com/goliatone/go-themekit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-themekit/pkg/themes"
)

// Descriptors compiles every template in the set and returns one descriptor
// per theme, sorted by id. Template syntax errors fail here, before any page
// renders.
func (s *Set) Descriptors(engine *gotemplate.Engine) ([]themes.Descriptor, error) {
	if engine == nil {
		return nil, fmt.Errorf("manifest: template engine is nil")
	}

	out := make([]themes.Descriptor, 0, len(s.IDs()))
	for _, id := range s.IDs() {
		m := s.manifests[id]
		slots, err := entries(engine, m, "slot", m.Slots)
		if err != nil {
			return nil, err
		}
		blocks, err := entries(engine, m, "block", m.Blocks)
		if err != nil {
			return nil, err
		}

		desc := themes.Descriptor{
			Config: themes.Config{ID: m.ID, Name: m.Name, Version: m.Version},
			Slots:  slots,
			Blocks: blocks,
		}
		if base := (render.AssetBundle{Styles: m.Styles, Scripts: m.Scripts}); !base.Empty() {
			desc.Assets = &base
		}
		out = append(out, desc)
	}
	return out, nil
}

func entries(engine *gotemplate.Engine, m Manifest, kind string, templates map[string]Template) (map[string]render.Entry, error) {
	out := make(map[string]render.Entry, len(templates))
	for name, tpl := range templates {
		if _, err := engine.Compile(tpl.Template); err != nil {
			return nil, fmt.Errorf("manifest: theme %q (file %s) %s %q: %w", m.ID, m.Source, kind, name, err)
		}
		renderer := TemplateRenderer{Engine: engine, Source: tpl.Template}
		out[name] = render.WithAssets(renderer, render.AssetBundle{Styles: tpl.Styles, Scripts: tpl.Scripts})
	}
	return out, nil
}
