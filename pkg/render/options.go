package render

import (
	"strings"

	"github.com/goliatone/go-themekit/pkg/markup"
)

// DefaultMaxDepth bounds content tree nesting when no explicit limit is set.
const DefaultMaxDepth = 64

// PlaceholderFunc produces the markup substituted for a node that could not be
// rendered. Returning an empty fragment leaves a silent gap.
type PlaceholderFunc func(Event) markup.HTML

// Option customises a Context.
type Option func(*options)

type options struct {
	maxDepth    int
	reporter    Reporter
	placeholder PlaceholderFunc
	renderID    string
	tokens      map[string]string
	assetURL    func(string) string
}

// WithMaxDepth sets the maximum nesting level of content nodes. Values below
// one fall back to DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// WithReporter routes render events to reporter.
func WithReporter(reporter Reporter) Option {
	return func(o *options) {
		if reporter != nil {
			o.reporter = reporter
		}
	}
}

// WithPlaceholder configures the markup emitted in place of failed nodes.
func WithPlaceholder(fn PlaceholderFunc) Option {
	return func(o *options) {
		o.placeholder = fn
	}
}

// WithRenderID tags every event raised by the context.
func WithRenderID(id string) Option {
	return func(o *options) {
		o.renderID = strings.TrimSpace(id)
	}
}

// WithTokens exposes design tokens to renderers through Context.Token.
func WithTokens(tokens map[string]string) Option {
	return func(o *options) {
		if len(tokens) == 0 {
			return
		}
		o.tokens = make(map[string]string, len(tokens))
		for key, value := range tokens {
			o.tokens[key] = value
		}
	}
}

// WithAssetURL exposes a theme asset resolver through Context.AssetURL.
func WithAssetURL(resolve func(string) string) Option {
	return func(o *options) {
		o.assetURL = resolve
	}
}

// CommentPlaceholder marks failed nodes with an HTML comment so gaps are easy
// to spot in the page source.
func CommentPlaceholder(event Event) markup.HTML {
	subject := event.NodeType
	if subject == "" {
		subject = event.Slot
	}
	text := string(event.Kind) + " " + subject + " at " + FormatPath(event.Path)
	text = strings.ReplaceAll(markup.Escape(text), "--", "- -")
	return markup.HTML("<!-- themekit: " + text + " -->")
}
