package engine

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-themekit/pkg/observe"
)

// themeConfig asks the selector for the theme's go-theme manifest and derives
// the tokens, CSS variables and asset resolver renderers see. Themes the
// selector does not know render without tokens.
func (e *Engine) themeConfig(themeID, variant string) *theme.RendererConfig {
	if e.selector == nil {
		return nil
	}
	selection, err := e.selector.Select(themeID, variant)
	if err != nil {
		e.logger.Debug("theme selection skipped",
			observe.ThemeID(themeID),
			observe.Variant(variant),
			observe.Error(err),
		)
		return nil
	}
	return rendererConfig(selection)
}

func rendererConfig(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil {
		return nil
	}
	cfg := &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}
	manifest := selection.Manifest
	if manifest == nil {
		return cfg
	}
	if cfg.Theme == "" {
		cfg.Theme = manifest.Name
	}

	var variant theme.Variant
	if selection.Variant != "" && manifest.Variants != nil {
		variant = manifest.Variants[selection.Variant]
	}

	cfg.Tokens = mergeStrings(manifest.Tokens, variant.Tokens)
	cfg.Partials = mergeStrings(manifest.Templates, variant.Templates)
	cfg.CSSVars = cssVars(cfg.Tokens)

	prefix := manifest.Assets.Prefix
	if variant.Assets.Prefix != "" {
		prefix = variant.Assets.Prefix
	}
	files := mergeStrings(manifest.Assets.Files, variant.Assets.Files)
	cfg.AssetURL = func(key string) string {
		file, ok := files[key]
		if !ok {
			return ""
		}
		return joinAssetURL(prefix, file)
	}
	return cfg
}

func mergeStrings(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range override {
		out[key] = value
	}
	return out
}

func cssVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		name := strings.TrimSpace(key)
		if name == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		out[name] = value
	}
	return out
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func joinAssetURL(prefix, file string) string {
	if file == "" {
		return ""
	}
	if strings.Contains(file, "://") || strings.HasPrefix(file, "/") || prefix == "" {
		return file
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
}
