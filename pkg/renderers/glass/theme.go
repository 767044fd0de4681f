// Package glass is the Liquid Glass theme written as Go renderers.
package glass

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-themekit/pkg/render"
	"github.com/goliatone/go-themekit/pkg/themes"
)

// Theme metadata.
const (
	ThemeID = "liquid-glass"
	Name    = "Liquid Glass"
	Version = "1.0.0"
)

// New returns the theme descriptor.
func New() themes.Descriptor {
	return themes.Descriptor{
		Config: themes.Config{ID: ThemeID, Name: Name, Version: Version},
		Assets: &render.AssetBundle{Styles: baseStyles},
		Slots: map[string]render.Entry{
			themes.SlotHeader:     render.WithAssets(render.RendererFunc(renderHeader), render.AssetBundle{Styles: headerStyles}),
			themes.SlotNavigation: render.WithAssets(render.RendererFunc(renderNavigation), render.AssetBundle{Styles: navigationStyles}),
			themes.SlotArticle:    render.WithAssets(render.RendererFunc(renderArticle), render.AssetBundle{Styles: articleStyles}),
			themes.SlotFooter:     render.WithAssets(render.RendererFunc(renderFooter), render.AssetBundle{Styles: footerStyles}),
		},
		Blocks: map[string]render.Entry{
			"heading":   render.Func(renderHeading),
			"paragraph": render.Func(renderParagraph),
			"card":      render.WithAssets(render.RendererFunc(renderCard), render.AssetBundle{Styles: cardStyles}),
			"tabs":      render.WithAssets(render.RendererFunc(renderTabs), render.AssetBundle{Styles: tabsStyles, Scripts: tabsScript}),
			"markdown":  render.WithAssets(render.RendererFunc(renderMarkdown), render.AssetBundle{Styles: markdownStyles}),
			"image":     render.WithAssets(render.RendererFunc(renderImage), render.AssetBundle{Styles: imageStyles}),
			"list":      render.Func(renderList),
		},
	}
}

// Manifest returns the go-theme manifest carrying the theme's design tokens
// and its dark variant.
func Manifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    ThemeID,
		Version: Version,
		Tokens: map[string]string{
			"glass-bg":     "rgba(255, 255, 255, 0.55)",
			"glass-border": "rgba(255, 255, 255, 0.35)",
			"glass-blur":   "18px",
			"text":         "#111827",
			"accent":       "#2563eb",
			"radius":       "18px",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"glass-bg":     "rgba(17, 24, 39, 0.55)",
					"glass-border": "rgba(255, 255, 255, 0.12)",
					"text":         "#f3f4f6",
					"accent":       "#60a5fa",
				},
			},
		},
	}
}
