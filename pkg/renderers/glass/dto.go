package glass

import (
	"github.com/goliatone/go-themekit/pkg/node"
)

// Logo is the header brand image.
type Logo struct {
	Src string
	Alt string
}

// HeaderData is the header slot payload.
type HeaderData struct {
	SiteName       string
	HomeURL        string
	Logo           *Logo
	ShowMenuToggle bool
}

// Payload encodes the header as a slot payload.
func (d HeaderData) Payload() node.Payload {
	p := node.Payload{
		"siteName":       d.SiteName,
		"showMenuToggle": d.ShowMenuToggle,
	}
	if d.HomeURL != "" {
		p["homeUrl"] = d.HomeURL
	}
	if d.Logo != nil {
		p["logo"] = map[string]any{"src": d.Logo.Src, "alt": d.Logo.Alt}
	}
	return p
}

// DecodeHeader reads a header slot payload.
func DecodeHeader(p node.Payload) HeaderData {
	d := HeaderData{
		SiteName:       p.String("siteName"),
		HomeURL:        p.String("homeUrl"),
		ShowMenuToggle: p.Bool("showMenuToggle"),
	}
	if logo := p.Map("logo"); logo != nil {
		d.Logo = &Logo{Src: logo.String("src"), Alt: logo.String("alt")}
	}
	return d
}

// NavItem is one navigation entry.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// NavigationData is the navigation slot payload.
type NavigationData struct {
	Items []NavItem
}

// Payload encodes the navigation as a slot payload.
func (d NavigationData) Payload() node.Payload {
	items := make([]any, len(d.Items))
	for i, item := range d.Items {
		items[i] = map[string]any{"label": item.Label, "href": item.Href, "active": item.Active}
	}
	return node.Payload{"items": items}
}

// DecodeNavigation reads a navigation slot payload.
func DecodeNavigation(p node.Payload) NavigationData {
	var d NavigationData
	for _, item := range p.Maps("items") {
		d.Items = append(d.Items, NavItem{
			Label:  item.String("label"),
			Href:   item.String("href"),
			Active: item.Bool("active"),
		})
	}
	return d
}

// FooterLink is one footer navigation link.
type FooterLink struct {
	Label string
	Href  string
}

// FooterData is the footer slot payload.
type FooterData struct {
	Year      int
	Copyright string
	Links     []FooterLink
}

// Payload encodes the footer as a slot payload.
func (d FooterData) Payload() node.Payload {
	links := make([]any, len(d.Links))
	for i, link := range d.Links {
		links[i] = map[string]any{"label": link.Label, "href": link.Href}
	}
	return node.Payload{"year": d.Year, "copyright": d.Copyright, "links": links}
}

// DecodeFooter reads a footer slot payload.
func DecodeFooter(p node.Payload) FooterData {
	d := FooterData{
		Year:      p.Int("year", 0),
		Copyright: p.String("copyright"),
	}
	for _, link := range p.Maps("links") {
		d.Links = append(d.Links, FooterLink{Label: link.String("label"), Href: link.String("href")})
	}
	return d
}
