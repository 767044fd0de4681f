package glass

import (
	"context"
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-themekit/pkg/engine"
	"github.com/goliatone/go-themekit/pkg/manifest"
	"github.com/goliatone/go-themekit/pkg/node"
	"github.com/goliatone/go-themekit/pkg/render"
	"github.com/goliatone/go-themekit/pkg/testsupport"
)

func renderPage(t *testing.T, req engine.Request, opts ...engine.Option) engine.Page {
	t.Helper()
	req.ThemeID = ThemeID
	eng := engine.New(append([]engine.Option{engine.WithThemes(New())}, opts...)...)
	page, err := eng.RenderPage(context.Background(), req)
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	return page
}

func TestHeaderSiteName(t *testing.T) {
	page := renderPage(t, engine.Request{
		Header: HeaderData{SiteName: "Acme & Co"}.Payload(),
	})

	want := `<header class="theme-header"><a href="/" class="theme-header__brand"><span class="theme-header__title">Acme &amp; Co</span></a></header>`
	if diff := cmp.Diff(want, string(page.Markup)); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}
	if page.Scripts != "" {
		t.Fatalf("toggle script must not be included without a toggle: %q", page.Scripts)
	}
}

func TestHeaderLogoAndToggle(t *testing.T) {
	selector := manifest.NewSelector(&theme.Manifest{
		Name:    ThemeID,
		Version: Version,
		Assets:  theme.Assets{Prefix: "/static/glass", Files: map[string]string{"logo": "logo.svg"}},
	})
	page := renderPage(t, engine.Request{
		Header: HeaderData{SiteName: "Acme", Logo: &Logo{}, ShowMenuToggle: true}.Payload(),
	}, engine.WithThemeSelector(selector))

	out := string(page.Markup)
	imgs := testsupport.Elements(t, out, "img")
	if len(imgs) != 1 {
		t.Fatalf("expected one logo image in %q", out)
	}
	if got := testsupport.Attr(imgs[0], "src"); got != "/static/glass/logo.svg" {
		t.Fatalf("logo src = %q", got)
	}
	if got := testsupport.Attr(imgs[0], "alt"); got != "Acme" {
		t.Fatalf("logo alt should fall back to site name, got %q", got)
	}
	buttons := testsupport.Elements(t, out, "button")
	if len(buttons) != 1 || testsupport.Attr(buttons[0], "aria-expanded") != "false" {
		t.Fatalf("expected menu toggle in %q", out)
	}
	if len(testsupport.Elements(t, out, "svg")) != 1 {
		t.Fatalf("expected sanitized menu icon in %q", out)
	}
	if !strings.Contains(page.Scripts, "theme-header__toggle") {
		t.Fatalf("toggle script missing: %q", page.Scripts)
	}
}

func TestNavigation(t *testing.T) {
	page := renderPage(t, engine.Request{
		Navigation: NavigationData{Items: []NavItem{
			{Label: "Home", Href: "/", Active: true},
			{Label: "<Docs>", Href: "/docs?a=1&b=2"},
		}}.Payload(),
	})

	want := `<nav class="theme-nav"><ul class="theme-nav__list">` +
		`<li class="theme-nav__item"><a href="/" class="theme-nav__link is-active" aria-current="page">Home</a></li>` +
		`<li class="theme-nav__item"><a href="/docs?a=1&amp;b=2" class="theme-nav__link">&lt;Docs&gt;</a></li>` +
		`</ul></nav>`
	if diff := cmp.Diff(want, string(page.Markup)); diff != "" {
		t.Fatalf("navigation mismatch (-want +got):\n%s", diff)
	}
}

func TestLinksWithScriptSchemesAreNeutralised(t *testing.T) {
	page := renderPage(t, engine.Request{
		Header:     HeaderData{SiteName: "Acme", HomeURL: "javascript:alert(1)"}.Payload(),
		Navigation: NavigationData{Items: []NavItem{{Label: "X", Href: " JavaScript:alert(1)"}}}.Payload(),
		Footer:     FooterData{Year: 2026, Links: []FooterLink{{Label: "Y", Href: "data:text/html,hi"}}}.Payload(),
	})

	out := string(page.Markup)
	if strings.Contains(strings.ToLower(out), "javascript:") || strings.Contains(out, "data:") {
		t.Fatalf("script scheme leaked into markup: %q", out)
	}
	for _, link := range testsupport.Elements(t, out, "a") {
		if href := testsupport.Attr(link, "href"); href != "#" {
			t.Fatalf("href = %q, want #", href)
		}
	}
}

func TestFooter(t *testing.T) {
	page := renderPage(t, engine.Request{
		Footer: FooterData{Year: 2026, Copyright: "Acme", Links: []FooterLink{{Label: "Privacy", Href: "/privacy"}}}.Payload(),
	})
	want := `<footer class="theme-footer"><div class="theme-footer__content"><p class="theme-footer__copyright">&copy; 2026 Acme</p>` +
		`<nav class="theme-footer__nav"><a href="/privacy" class="theme-footer__link">Privacy</a></nav></div></footer>`
	if diff := cmp.Diff(want, string(page.Markup)); diff != "" {
		t.Fatalf("footer mismatch (-want +got):\n%s", diff)
	}

	page = renderPage(t, engine.Request{Footer: FooterData{Year: 2026, Copyright: "Acme"}.Payload()})
	if strings.Contains(string(page.Markup), "theme-footer__nav") {
		t.Fatalf("footer nav must be omitted without links: %q", page.Markup)
	}
}

func TestHeadingLevels(t *testing.T) {
	page := renderPage(t, engine.Request{Content: []*node.Node{
		node.New("heading", node.Payload{"text": "Deep", "level": 9}),
		node.New("heading", node.Payload{"text": "Default", "anchor": "a\"b"}),
		node.New("heading", node.Payload{"text": "Café Setup", "level": 3, "anchor": true}),
	}})

	want := `<article class="theme-article"><h6 class="theme-heading">Deep</h6><h2 class="theme-heading" id="a&#34;b">Default</h2><h3 class="theme-heading" id="cafe-setup">Café Setup</h3></article>`
	if diff := cmp.Diff(want, string(page.Markup)); diff != "" {
		t.Fatalf("headings mismatch (-want +got):\n%s", diff)
	}
}

func TestContentFixture(t *testing.T) {
	content := testsupport.LoadNodes(t, "testdata/content.yaml")
	page := renderPage(t, engine.Request{
		Article: node.Payload{"title": "Docs"},
		Content: append(content, node.New("tabs", nil, node.New("paragraph", node.Payload{"text": "solo"}))),
	})
	if len(page.Problems) != 0 {
		t.Fatalf("unexpected problems: %v", page.Problems)
	}

	out := string(page.Markup)
	testsupport.AssertNoScripts(t, out)

	if got := testsupport.Elements(t, out, "strong"); len(got) != 1 || testsupport.Text(got[0]) != "go install" {
		t.Fatalf("markdown not rendered: %q", out)
	}

	tabs := testsupport.Elements(t, out, "button")
	var ids, labels []string
	for _, tab := range tabs {
		ids = append(ids, testsupport.Attr(tab, "id"))
		labels = append(labels, testsupport.Text(tab))
	}
	if diff := cmp.Diff([]string{"tabs-1-tab-1", "tabs-1-tab-2", "tabs-2-tab-1"}, ids); diff != "" {
		t.Fatalf("tab ids mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Linux", "macOS", "Tab 1"}, labels); diff != "" {
		t.Fatalf("tab labels mismatch (-want +got):\n%s", diff)
	}

	var hidden []bool
	for _, panel := range testsupport.Elements(t, out, "div") {
		if testsupport.Attr(panel, "role") != "tabpanel" {
			continue
		}
		hidden = append(hidden, testsupport.HasAttr(panel, "hidden"))
	}
	if diff := cmp.Diff([]bool{false, true, false}, hidden); diff != "" {
		t.Fatalf("panel visibility mismatch (-want +got):\n%s", diff)
	}

	items := testsupport.Elements(t, out, "ol")
	if len(items) != 1 || testsupport.Text(items[0]) != "onetwo" {
		t.Fatalf("ordered list missing: %q", out)
	}

	if strings.Count(page.Scripts, "[data-tabs]") != 1 {
		t.Fatalf("tabs script should be included exactly once: %q", page.Scripts)
	}
	if strings.Count(page.Styles, ".theme-card__title") != 1 {
		t.Fatalf("card styles should be included exactly once: %q", page.Styles)
	}
}

func TestImageRequiresSource(t *testing.T) {
	rec := testsupport.NewRecorder()
	page := renderPage(t, engine.Request{Content: []*node.Node{
		node.New("image", node.Payload{"alt": "missing"}),
		node.New("image", node.Payload{"src": "/a.png", "alt": "A", "caption": "Fig 1"}),
	}}, engine.WithReporter(rec))

	want := `<article class="theme-article"><figure class="theme-image"><img src="/a.png" alt="A" loading="lazy"><figcaption>Fig 1</figcaption></figure></article>`
	if diff := cmp.Diff(want, string(page.Markup)); diff != "" {
		t.Fatalf("image mismatch (-want +got):\n%s", diff)
	}
	if len(page.Problems) != 1 || !errors.Is(page.Problems[0], render.ErrRendererFault) {
		t.Fatalf("expected one renderer fault, got %v", page.Problems)
	}
	if diff := cmp.Diff([]render.EventKind{render.EventRendererFault}, rec.Kinds()); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestDarkVariantTokens(t *testing.T) {
	page := renderPage(t, engine.Request{
		Variant: "dark",
		Header:  HeaderData{SiteName: "Acme"}.Payload(),
	}, engine.WithThemeSelector(manifest.NewSelector(Manifest())))

	if !strings.Contains(page.Styles, "--accent: #60a5fa;") || !strings.Contains(page.Styles, "--radius: 18px;") {
		t.Fatalf("dark tokens not merged over base tokens: %q", page.Styles)
	}
	if page.Variant != "dark" {
		t.Fatalf("variant = %q", page.Variant)
	}
}

func TestPayloadDecodeRoundTrip(t *testing.T) {
	header := HeaderData{SiteName: "Acme", HomeURL: "/home", Logo: &Logo{Src: "/l.svg", Alt: "L"}, ShowMenuToggle: true}
	if diff := cmp.Diff(header, DecodeHeader(header.Payload())); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}
	nav := NavigationData{Items: []NavItem{{Label: "A", Href: "/a", Active: true}}}
	if diff := cmp.Diff(nav, DecodeNavigation(nav.Payload())); diff != "" {
		t.Fatalf("navigation mismatch (-want +got):\n%s", diff)
	}
	footer := FooterData{Year: 2026, Copyright: "Acme", Links: []FooterLink{{Label: "X", Href: "/x"}}}
	if diff := cmp.Diff(footer, DecodeFooter(footer.Payload())); diff != "" {
		t.Fatalf("footer mismatch (-want +got):\n%s", diff)
	}
}
