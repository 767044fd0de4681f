package glass

import (
	"time"

	"github.com/goliatone/go-themekit/pkg/markup"
	"github.com/goliatone/go-themekit/pkg/node"
	"github.com/goliatone/go-themekit/pkg/render"
)

var (
	headerTmpl = markup.MustParse(`<header class="theme-header"><a href="{{home}}" class="theme-header__brand">{{brand}}</a>{{toggle}}</header>`)
	logoTmpl   = markup.MustParse(`<img src="{{src}}" alt="{{alt}}" class="theme-header__logo">`)
	titleTmpl  = markup.MustParse(`<span class="theme-header__title">{{name}}</span>`)
	toggleTmpl = markup.MustParse(`<button class="theme-header__toggle" type="button" aria-label="Toggle menu" aria-expanded="false">{{icon}}</button>`)

	navTmpl     = markup.MustParse(`<nav class="theme-nav"><ul class="theme-nav__list">{{items}}</ul></nav>`)
	navItemTmpl = markup.MustParse(`<li class="theme-nav__item"><a href="{{href}}" class="{{class}}"{{current}}>{{label}}</a></li>`)

	footerTmpl     = markup.MustParse(`<footer class="theme-footer"><div class="theme-footer__content"><p class="theme-footer__copyright">&copy; {{year}} {{copyright}}</p>{{links}}</div></footer>`)
	footerNavTmpl  = markup.MustParse(`<nav class="theme-footer__nav">{{links}}</nav>`)
	footerLinkTmpl = markup.MustParse(`<a href="{{href}}" class="theme-footer__link">{{label}}</a>`)

	articleTmpl = markup.MustParse(`<article class="theme-article">{{title}}{{body}}</article>`)
	h1Tmpl      = markup.MustParse(`<h1 class="theme-article__title">{{text}}</h1>`)
)

var menuIcon = markup.SanitizeIcon(`<svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><line x1="3" y1="6" x2="21" y2="6"></line><line x1="3" y1="12" x2="21" y2="12"></line><line x1="3" y1="18" x2="21" y2="18"></line></svg>`)

// toggleID names the bundle recorded only when a header shows the menu toggle.
func toggleID(themeID string) render.Identity {
	return render.Identity{ThemeID: themeID, Kind: render.KindSlot, Name: "header.toggle"}
}

func renderHeader(n *node.Node, ctx *render.Context) (markup.HTML, error) {
	d := DecodeHeader(n.Payload)

	var brand markup.HTML
	if d.Logo != nil {
		src := d.Logo.Src
		if src == "" {
			src = ctx.AssetURL("logo")
		}
		alt := d.Logo.Alt
		if alt == "" {
			alt = d.SiteName
		}
		brand = logoTmpl.Execute(markup.Values{"src": markup.SafeURL(src), "alt": alt})
	} else {
		brand = titleTmpl.Execute(markup.Values{"name": d.SiteName})
	}

	var toggle markup.HTML
	if d.ShowMenuToggle {
		ctx.Record(toggleID(ctx.ThemeID()), render.AssetBundle{Scripts: toggleScript})
		toggle = toggleTmpl.Execute(markup.Values{"icon": menuIcon})
	}

	home := d.HomeURL
	if home == "" {
		home = "/"
	}
	return headerTmpl.Execute(markup.Values{"home": markup.SafeURL(home), "brand": brand, "toggle": toggle}), nil
}

func renderNavigation(n *node.Node, _ *render.Context) (markup.HTML, error) {
	d := DecodeNavigation(n.Payload)
	items := markup.JoinEach(d.Items, func(item NavItem) markup.HTML {
		class := "theme-nav__link"
		if item.Active {
			class += " is-active"
		}
		return navItemTmpl.Execute(markup.Values{
			"href":    markup.SafeURL(item.Href),
			"class":   class,
			"current": markup.Include(item.Active, ` aria-current="page"`),
			"label":   item.Label,
		})
	})
	return navTmpl.Execute(markup.Values{"items": items}), nil
}

func renderFooter(n *node.Node, _ *render.Context) (markup.HTML, error) {
	d := DecodeFooter(n.Payload)
	if d.Year == 0 {
		d.Year = time.Now().Year()
	}

	links := markup.Include(len(d.Links) > 0, footerNavTmpl.Execute(markup.Values{
		"links": markup.JoinEach(d.Links, func(link FooterLink) markup.HTML {
			return footerLinkTmpl.Execute(markup.Values{"href": markup.SafeURL(link.Href), "label": link.Label})
		}),
	}))
	return footerTmpl.Execute(markup.Values{"year": d.Year, "copyright": d.Copyright, "links": links}), nil
}

func renderArticle(n *node.Node, ctx *render.Context) (markup.HTML, error) {
	title := n.Payload.String("title")
	return articleTmpl.Execute(markup.Values{
		"title": markup.Include(title, h1Tmpl.Execute(markup.Values{"text": title})),
		"body":  ctx.RenderChildren(n),
	}), nil
}
