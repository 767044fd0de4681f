package engine

import (
	"log/slog"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-themekit/pkg/render"
	"github.com/goliatone/go-themekit/pkg/themes"
)

// Option customises the engine configuration.
type Option func(*Engine)

// WithCatalog injects a theme catalog. The engine owns a private catalog when
// none is supplied.
func WithCatalog(catalog *themes.Catalog) Option {
	return func(e *Engine) {
		if catalog != nil {
			e.catalog = catalog
		}
	}
}

// WithMaxDepth bounds content nesting for every page.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}

// WithReporter routes recoverable render problems to reporter. Without one,
// problems are logged as warnings through the engine logger.
func WithReporter(reporter render.Reporter) Option {
	return func(e *Engine) {
		e.reporter = reporter
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithPlaceholder configures the markup emitted in place of failed nodes.
func WithPlaceholder(fn render.PlaceholderFunc) Option {
	return func(e *Engine) {
		e.placeholder = fn
	}
}

// WithThemeSelector resolves design tokens and asset URLs for the requested
// theme and variant through go-theme.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(e *Engine) {
		e.selector = selector
	}
}

// WithThemes registers descriptors while the engine is constructed. A
// registration failure is reported by Err and returned by RenderPage for the
// failing theme id.
func WithThemes(descriptors ...themes.Descriptor) Option {
	return func(e *Engine) {
		e.pending = append(e.pending, descriptors...)
	}
}
