package render

import (
	"reflect"

	"github.com/goliatone/go-themekit/pkg/markup"
	"github.com/goliatone/go-themekit/pkg/node"
)

// Renderer turns one node into markup. Implementations decide whether and how
// to render the node's children, typically by calling ctx.RenderAll on some or
// all of n.Children.
type Renderer interface {
	Render(n *node.Node, ctx *Context) (markup.HTML, error)
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(n *node.Node, ctx *Context) (markup.HTML, error)

// Render calls fn.
func (fn RendererFunc) Render(n *node.Node, ctx *Context) (markup.HTML, error) {
	return fn(n, ctx)
}

// AssetBundle is the styling and scripting a renderer contributes to a page
// when it is used. Either field may be empty.
type AssetBundle struct {
	Styles  string
	Scripts string
}

// Empty reports whether the bundle contributes nothing.
func (b AssetBundle) Empty() bool {
	return b.Styles == "" && b.Scripts == ""
}

// Entry pairs a renderer with the optional asset bundle it depends on.
type Entry struct {
	Renderer Renderer
	Assets   *AssetBundle
}

// Func wraps a bare render function into an Entry without assets.
func Func(fn RendererFunc) Entry {
	if fn == nil {
		return Entry{}
	}
	return Entry{Renderer: fn}
}

// WithAssets wraps renderer into an Entry carrying bundle.
func WithAssets(renderer Renderer, bundle AssetBundle) Entry {
	entry := Entry{Renderer: renderer}
	if !bundle.Empty() {
		copied := bundle
		entry.Assets = &copied
	}
	return entry
}

// Callable reports whether the entry holds a usable renderer. Typed nil
// values (a nil RendererFunc stored in the interface) are not callable.
func (e Entry) Callable() bool {
	if e.Renderer == nil {
		return false
	}
	rv := reflect.ValueOf(e.Renderer)
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}

// Kind distinguishes the namespaces renderer identities live in.
type Kind string

const (
	KindSlot   Kind = "slot"
	KindBlock  Kind = "block"
	KindTheme  Kind = "theme"
	KindTokens Kind = "tokens"
)

// Identity names a renderer (or theme-level contribution) uniquely across the
// catalog. Asset bundles are deduplicated per identity within one page.
type Identity struct {
	ThemeID string
	Kind    Kind
	Name    string
}

// String formats the identity as theme/kind/name.
func (id Identity) String() string {
	if id.Name == "" {
		return id.ThemeID + "/" + string(id.Kind)
	}
	return id.ThemeID + "/" + string(id.Kind) + "/" + id.Name
}

// Resolver looks up renderer entries. The theme catalog implements it.
type Resolver interface {
	Resolve(themeID string, kind Kind, name string) (Entry, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(themeID string, kind Kind, name string) (Entry, bool)

// Resolve calls fn.
func (fn ResolverFunc) Resolve(themeID string, kind Kind, name string) (Entry, bool) {
	return fn(themeID, kind, name)
}
