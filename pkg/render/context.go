package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-themekit/pkg/markup"
	"github.com/goliatone/go-themekit/pkg/node"
)

// Context carries the state of one page render: the renderer lookup, the
// asset accumulator, and the problems collected so far. A Context is
// single-use and must not be shared between concurrent renders.
type Context struct {
	themeID  string
	resolver Resolver
	opts     options

	assets   *accumulator
	problems []error
	sequence map[string]int

	slot   string
	path   []int
	depth  int
	active map[*node.Node]struct{}
}

// NewContext prepares a render context for themeID.
func NewContext(themeID string, resolver Resolver, opts ...Option) *Context {
	cfg := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.reporter == nil {
		cfg.reporter = NopReporter{}
	}
	return &Context{
		themeID:  strings.TrimSpace(themeID),
		resolver: resolver,
		opts:     cfg,
		assets:   newAccumulator(),
		sequence: make(map[string]int),
		active:   make(map[*node.Node]struct{}),
	}
}

// ThemeID returns the theme the context renders with.
func (c *Context) ThemeID() string { return c.themeID }

// RenderID returns the identifier attached to events raised by this context.
func (c *Context) RenderID() string { return c.opts.renderID }

// MaxDepth returns the configured nesting limit.
func (c *Context) MaxDepth() int { return c.opts.maxDepth }

// Depth returns the nesting level of the node currently being rendered (zero
// outside of RenderAll).
func (c *Context) Depth() int { return c.depth }

// Slot returns the slot currently being rendered, if any.
func (c *Context) Slot() string { return c.slot }

// Path returns a copy of the index path of the node currently being rendered.
func (c *Context) Path() []int {
	return clonePath(c.path)
}

// Token returns a design token value, or "" when the theme does not define it.
func (c *Context) Token(name string) string {
	if c.opts.tokens == nil {
		return ""
	}
	return c.opts.tokens[name]
}

// AssetURL resolves a theme asset key to its public URL. Unknown keys and
// contexts without a resolver return "".
func (c *Context) AssetURL(key string) string {
	if c.opts.assetURL == nil {
		return ""
	}
	return c.opts.assetURL(key)
}

// Sequence returns the next page-scoped identifier for prefix ("tabs-1",
// "tabs-2", ...). Renderers use it to build unique element ids.
func (c *Context) Sequence(prefix string) string {
	c.sequence[prefix]++
	return prefix + "-" + strconv.Itoa(c.sequence[prefix])
}

// Record adds a bundle to the page aggregate unless id was already recorded.
// It reports whether the bundle was added.
func (c *Context) Record(id Identity, bundle AssetBundle) bool {
	return c.assets.record(id, bundle)
}

// Recorded lists the identities whose bundles were recorded, in discovery
// order.
func (c *Context) Recorded() []Identity {
	return c.assets.identities()
}

// Finalize returns the consolidated styles and scripts of every bundle
// recorded so far, in first-discovery order. It may be called repeatedly.
func (c *Context) Finalize() (styles, scripts string) {
	return c.assets.finalize()
}

// Problems returns the recoverable errors collected during rendering.
func (c *Context) Problems() []error {
	out := make([]error, len(c.problems))
	copy(out, c.problems)
	return out
}

// RenderChildren renders n.Children in order.
func (c *Context) RenderChildren(n *node.Node) markup.HTML {
	if n == nil {
		return ""
	}
	return c.RenderAll(n.Children)
}

// RenderChild renders the child of n at idx, keeping the child's index in
// the node path. Renderers that wrap each child individually use it instead
// of RenderChildren. Out-of-range indexes yield "".
func (c *Context) RenderChild(n *node.Node, idx int) markup.HTML {
	if n == nil || idx < 0 || idx >= len(n.Children) {
		return ""
	}
	return c.renderNode(idx, n.Children[idx])
}

// RenderAll renders nodes in input order and concatenates their markup. Each
// node is rendered independently; failures are confined to the failing node.
func (c *Context) RenderAll(nodes []*node.Node) markup.HTML {
	if len(nodes) == 0 {
		return ""
	}
	var b strings.Builder
	for idx, n := range nodes {
		b.WriteString(string(c.renderNode(idx, n)))
	}
	return markup.HTML(b.String())
}

// RenderSlot renders a named page region. A theme without a renderer for the
// slot yields empty markup and an unresolved event.
//
// A top-level call starts at the root path. A call made from inside another
// renderer counts as one more nesting level and keeps the current path, so
// renderers that re-enter slots stay bounded by MaxDepth.
func (c *Context) RenderSlot(name string, payload node.Payload, children []*node.Node) markup.HTML {
	name = strings.TrimSpace(name)
	prevSlot, prevPath, prevDepth := c.slot, c.path, c.depth
	defer func() {
		c.slot, c.path, c.depth = prevSlot, prevPath, prevDepth
	}()

	if c.depth == 0 && c.slot == "" {
		c.slot, c.path = name, nil
	} else {
		c.slot = name
		c.depth++
		if c.depth > c.opts.maxDepth {
			return c.report(EventDepthExceeded, name, &DepthExceededError{
				ThemeID:  c.themeID,
				NodeType: name,
				Path:     clonePath(c.path),
				Depth:    c.depth,
				Limit:    c.opts.maxDepth,
			})
		}
	}

	entry, ok := c.lookup(KindSlot, name)
	if !ok {
		c.report(EventUnresolvedSlot, name, &UnresolvedRendererError{
			ThemeID: c.themeID,
			Kind:    KindSlot,
			Name:    name,
		})
		return ""
	}

	slotNode := &node.Node{Type: name, Payload: payload, Children: children}
	c.recordEntry(Identity{ThemeID: c.themeID, Kind: KindSlot, Name: name}, entry)

	out, fault := c.invoke(entry, slotNode)
	if fault != nil {
		fault.Kind = KindSlot
		fault.Name = name
		return c.report(EventRendererFault, name, fault)
	}
	return out
}

func (c *Context) renderNode(idx int, n *node.Node) markup.HTML {
	if n == nil {
		return ""
	}

	c.path = append(c.path, idx)
	c.depth++
	defer func() {
		c.path = c.path[:len(c.path)-1]
		c.depth--
	}()

	if _, cyclic := c.active[n]; cyclic {
		return c.report(EventDepthExceeded, n.Type, &DepthExceededError{
			ThemeID:  c.themeID,
			NodeType: n.Type,
			Path:     clonePath(c.path),
			Depth:    c.depth,
			Limit:    c.opts.maxDepth,
			Cycle:    true,
		})
	}
	if c.depth > c.opts.maxDepth {
		return c.report(EventDepthExceeded, n.Type, &DepthExceededError{
			ThemeID:  c.themeID,
			NodeType: n.Type,
			Path:     clonePath(c.path),
			Depth:    c.depth,
			Limit:    c.opts.maxDepth,
		})
	}

	entry, ok := c.lookup(KindBlock, n.Type)
	if !ok {
		return c.report(EventUnresolvedBlock, n.Type, &UnresolvedRendererError{
			ThemeID: c.themeID,
			Kind:    KindBlock,
			Name:    n.Type,
			Path:    clonePath(c.path),
		})
	}

	c.recordEntry(Identity{ThemeID: c.themeID, Kind: KindBlock, Name: n.Type}, entry)

	c.active[n] = struct{}{}
	defer delete(c.active, n)

	out, fault := c.invoke(entry, n)

	if fault != nil {
		fault.Kind = KindBlock
		fault.Name = n.Type
		return c.report(EventRendererFault, n.Type, fault)
	}
	return out
}

func (c *Context) lookup(kind Kind, name string) (Entry, bool) {
	if c.resolver == nil || name == "" {
		return Entry{}, false
	}
	entry, ok := c.resolver.Resolve(c.themeID, kind, name)
	if !ok || !entry.Callable() {
		return Entry{}, false
	}
	return entry, true
}

func (c *Context) recordEntry(id Identity, entry Entry) {
	if entry.Assets == nil {
		return
	}
	c.assets.record(id, *entry.Assets)
}

// invoke runs the renderer, converting both returned errors and panics into a
// fault. Nested RenderAll frames restore path, depth and the active set through
// their own defers while a panic unwinds.
func (c *Context) invoke(entry Entry, n *node.Node) (out markup.HTML, fault *RendererFaultError) {
	defer func() {
		if recovered := recover(); recovered != nil {
			out = ""
			fault = &RendererFaultError{
				ThemeID: c.themeID,
				Path:    clonePath(c.path),
				Panic:   recovered,
				Err:     panicError(recovered),
			}
		}
	}()

	rendered, err := entry.Renderer.Render(n, c)
	if err != nil {
		return "", &RendererFaultError{
			ThemeID: c.themeID,
			Path:    clonePath(c.path),
			Err:     err,
		}
	}
	return rendered, nil
}

func (c *Context) report(kind EventKind, subject string, err error) markup.HTML {
	c.problems = append(c.problems, err)

	event := Event{
		Kind:     kind,
		RenderID: c.opts.renderID,
		ThemeID:  c.themeID,
		NodeType: subject,
		Slot:     c.slot,
		Path:     clonePath(c.path),
		Err:      err,
	}
	c.opts.reporter.Report(event)

	if c.opts.placeholder == nil {
		return ""
	}
	return c.opts.placeholder(event)
}

func clonePath(path []int) []int {
	if len(path) == 0 {
		return nil
	}
	out := make([]int, len(path))
	copy(out, path)
	return out
}

func panicError(recovered any) error {
	if err, ok := recovered.(error); ok {
		return err
	}
	return fmt.Errorf("%v", recovered)
}
