// Package themekit is the top-level entry point: it re-exports the engine
// types and wires the bundled themes so callers can render a page with a
// single import.
package themekit

import (
	"context"

	theme "github.com/goliatone/go-theme"
	"github.com/goliatone/go-themekit/pkg/engine"
	"github.com/goliatone/go-themekit/pkg/node"
	"github.com/goliatone/go-themekit/pkg/render"
	"github.com/goliatone/go-themekit/pkg/themes"
)

// Request aliases engine.Request.
type Request = engine.Request

// Page aliases engine.Page.
type Page = engine.Page

// Option aliases engine.Option.
type Option = engine.Option

// Descriptor aliases themes.Descriptor for callers registering their own
// themes.
type Descriptor = themes.Descriptor

// Node aliases node.Node.
type Node = node.Node

// Payload aliases node.Payload.
type Payload = node.Payload

// Renderer aliases render.Renderer.
type Renderer = render.Renderer

// NewEngine exposes the engine constructor from the top-level module.
func NewEngine(options ...Option) *engine.Engine {
	return engine.New(options...)
}

// New builds an engine with the bundled themes registered and their tokens
// selectable. Extra options are applied after the defaults, so a caller
// supplied selector replaces the bundled one. Any theme that fails to
// register fails New.
func New(options ...Option) (*engine.Engine, error) {
	bundled, err := LoadThemes()
	if err != nil {
		return nil, err
	}
	eng := engine.New(append(bundled.Options(), options...)...)
	if err := eng.Err(); err != nil {
		return nil, err
	}
	return eng, nil
}

// RenderPage renders req with a fresh engine carrying the bundled themes. It
// is the simplest entry point for one-off renders; long running callers
// should keep an engine from New.
func RenderPage(ctx context.Context, req Request, options ...Option) (Page, error) {
	eng, err := New(options...)
	if err != nil {
		return Page{}, err
	}
	return eng.RenderPage(ctx, req)
}

// WithThemes registers descriptors on the engine.
func WithThemes(descriptors ...Descriptor) Option {
	return engine.WithThemes(descriptors...)
}

// WithThemeSelector passes a go-theme selector through to the engine so
// theme tokens and asset URLs resolve per variant.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return engine.WithThemeSelector(selector)
}
