package glass

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/goliatone/go-themekit/pkg/markup"
	"github.com/goliatone/go-themekit/pkg/node"
	"github.com/goliatone/go-themekit/pkg/render"
)

var (
	headingTmpl   = markup.MustParse(`<h{{level}} class="theme-heading"{{anchor}}>{{text}}</h{{level}}>`)
	paragraphTmpl = markup.MustParse(`<p class="theme-paragraph">{{text}}</p>`)

	cardTmpl      = markup.MustParse(`<div class="theme-card">{{title}}<div class="theme-card__body">{{text}}{{body}}</div></div>`)
	cardTitleTmpl = markup.MustParse(`<h3 class="theme-card__title">{{text}}</h3>`)

	tabsTmpl     = markup.MustParse(`<div class="theme-tabs" id="{{id}}" data-tabs><div class="theme-tabs__list" role="tablist">{{tabs}}</div>{{panels}}</div>`)
	tabTmpl      = markup.MustParse(`<button class="theme-tabs__tab" type="button" role="tab" id="{{tab}}" aria-controls="{{panel}}" aria-selected="{{selected}}">{{label}}</button>`)
	tabPanelTmpl = markup.MustParse(`<div class="theme-tabs__panel" role="tabpanel" id="{{panel}}" aria-labelledby="{{tab}}"{{hidden}}>{{body}}</div>`)

	markdownTmpl = markup.MustParse(`<div class="theme-markdown">{{body}}</div>`)

	imageTmpl   = markup.MustParse(`<figure class="theme-image"><img src="{{src}}" alt="{{alt}}" loading="lazy">{{caption}}</figure>`)
	captionTmpl = markup.MustParse(`<figcaption>{{text}}</figcaption>`)

	listItemTmpl = markup.MustParse(`<li>{{body}}</li>`)
)

func renderHeading(n *node.Node, _ *render.Context) (markup.HTML, error) {
	level := n.Payload.Int("level", 2)
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	anchor := n.Payload.String("anchor")
	if anchor == "auto" || anchor == "true" {
		anchor = markup.Slug(n.Payload.String("text"))
	}
	return headingTmpl.Execute(markup.Values{
		"level":  level,
		"anchor": markup.Include(anchor, markup.HTML(` id="`+markup.Escape(anchor)+`"`)),
		"text":   n.Payload.Get("text"),
	}), nil
}

func renderParagraph(n *node.Node, _ *render.Context) (markup.HTML, error) {
	return paragraphTmpl.Execute(markup.Values{"text": n.Payload.Get("text")}), nil
}

func renderCard(n *node.Node, ctx *render.Context) (markup.HTML, error) {
	title := n.Payload.String("title")
	text := n.Payload.String("text")
	return cardTmpl.Execute(markup.Values{
		"title": markup.Include(title, cardTitleTmpl.Execute(markup.Values{"text": title})),
		"text":  markup.Include(text, paragraphTmpl.Execute(markup.Values{"text": text})),
		"body":  ctx.RenderChildren(n),
	}), nil
}

// renderTabs turns each child into a panel. A child's "label" payload field
// names its tab.
func renderTabs(n *node.Node, ctx *render.Context) (markup.HTML, error) {
	id := ctx.Sequence("tabs")

	var tabs, panels markup.HTML
	for i, child := range n.Children {
		if child == nil {
			continue
		}
		label := child.Payload.String("label")
		if label == "" {
			label = "Tab " + strconv.Itoa(i+1)
		}
		tabID := fmt.Sprintf("%s-tab-%d", id, i+1)
		panelID := fmt.Sprintf("%s-panel-%d", id, i+1)

		tabs += tabTmpl.Execute(markup.Values{
			"tab":      tabID,
			"panel":    panelID,
			"selected": i == 0,
			"label":    label,
		})
		panels += tabPanelTmpl.Execute(markup.Values{
			"tab":    tabID,
			"panel":  panelID,
			"hidden": markup.Include(i > 0, " hidden"),
			"body":   ctx.RenderChild(n, i),
		})
	}
	return tabsTmpl.Execute(markup.Values{"id": id, "tabs": tabs, "panels": panels}), nil
}

// renderMarkdown converts the "source" field with goldmark and sanitizes the
// result. Raw HTML in the source is dropped.
func renderMarkdown(n *node.Node, _ *render.Context) (markup.HTML, error) {
	source := n.Payload.String("source")
	if source == "" {
		return "", nil
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("glass: convert markdown: %w", err)
	}
	return markdownTmpl.Execute(markup.Values{"body": markup.Sanitize(buf.String())}), nil
}

// renderImage resolves "asset" through the theme's asset map when "src" is
// not given.
func renderImage(n *node.Node, ctx *render.Context) (markup.HTML, error) {
	src := n.Payload.String("src")
	if src == "" {
		if key := n.Payload.String("asset"); key != "" {
			src = ctx.AssetURL(key)
		}
	}
	if src == "" {
		return "", fmt.Errorf("glass: image requires src or a known asset")
	}
	caption := n.Payload.String("caption")
	return imageTmpl.Execute(markup.Values{
		"src":     markup.SafeURL(src),
		"alt":     n.Payload.String("alt"),
		"caption": markup.Include(caption, captionTmpl.Execute(markup.Values{"text": caption})),
	}), nil
}

// renderList lists the "items" strings, then one item per child node.
func renderList(n *node.Node, ctx *render.Context) (markup.HTML, error) {
	var items markup.HTML
	for _, item := range n.Payload.Slice("items") {
		items += listItemTmpl.Execute(markup.Values{"body": item})
	}
	for i := range n.Children {
		items += listItemTmpl.Execute(markup.Values{"body": ctx.RenderChild(n, i)})
	}

	tag := "ul"
	if n.Payload.Bool("ordered") {
		tag = "ol"
	}
	return markup.HTML("<"+tag+` class="theme-list">`) + items + markup.HTML("</"+tag+">"), nil
}
