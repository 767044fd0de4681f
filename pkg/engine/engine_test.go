package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-themekit/pkg/markup"
	"github.com/goliatone/go-themekit/pkg/node"
	"github.com/goliatone/go-themekit/pkg/observe"
	"github.com/goliatone/go-themekit/pkg/render"
	"github.com/goliatone/go-themekit/pkg/themes"
)

func testTheme(id string) themes.Descriptor {
	slot := func(tag string) render.RendererFunc {
		return func(n *node.Node, ctx *render.Context) (markup.HTML, error) {
			body := markup.EscapeHTML(n.Payload.Get("title")) + ctx.RenderChildren(n)
			return markup.HTML("<"+tag+">") + body + markup.HTML("</"+tag+">"), nil
		}
	}
	return themes.Descriptor{
		Config: themes.Config{ID: id, Name: "Test", Version: "1.0.0"},
		Assets: &render.AssetBundle{Styles: "body{margin:0}"},
		Slots: map[string]render.Entry{
			themes.SlotHeader:     render.WithAssets(slot("header"), render.AssetBundle{Styles: "header{}"}),
			themes.SlotNavigation: render.WithAssets(slot("nav"), render.AssetBundle{Styles: "nav{}"}),
			themes.SlotArticle:    render.Func(slot("article")),
			themes.SlotFooter:     render.WithAssets(slot("footer"), render.AssetBundle{Scripts: "footer();"}),
		},
		Blocks: map[string]render.Entry{
			"paragraph": render.WithAssets(render.RendererFunc(func(n *node.Node, _ *render.Context) (markup.HTML, error) {
				return markup.HTML("<p>") + markup.EscapeHTML(n.Payload.Get("text")) + "</p>", nil
			}), render.AssetBundle{Styles: "p{}"}),
			"card": render.WithAssets(render.RendererFunc(func(n *node.Node, ctx *render.Context) (markup.HTML, error) {
				return markup.HTML("<div class=\"card\">") + ctx.RenderChildren(n) + "</div>", nil
			}), render.AssetBundle{Styles: ".card{}", Scripts: "card();"}),
		},
	}
}

func paragraph(text string) *node.Node {
	return node.New("paragraph", node.Payload{"text": text})
}

func TestRenderPageAssemblesSlotsInOrder(t *testing.T) {
	eng := New(WithThemes(testTheme("plain")))

	page, err := eng.RenderPage(context.Background(), Request{
		ThemeID:    "plain",
		Footer:     node.Payload{"title": "F"},
		Header:     node.Payload{"title": "H"},
		Navigation: node.Payload{"title": "N"},
		Article:    node.Payload{"title": "A"},
		Content: []*node.Node{
			node.New("card", nil, paragraph("one"), paragraph("two")),
			paragraph("three"),
		},
	})
	if err != nil {
		t.Fatalf("render page: %v", err)
	}

	want := strings.Join([]string{
		"<header>H</header>",
		"<nav>N</nav>",
		`<article>A<div class="card"><p>one</p><p>two</p></div><p>three</p></article>`,
		"<footer>F</footer>",
	}, "\n")
	if diff := cmp.Diff(want, string(page.Markup)); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("body{margin:0}\nheader{}\nnav{}\n.card{}\np{}", page.Styles); diff != "" {
		t.Fatalf("styles mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("card();\nfooter();", page.Scripts); diff != "" {
		t.Fatalf("scripts mismatch (-want +got):\n%s", diff)
	}
	if len(page.Problems) != 0 {
		t.Fatalf("unexpected problems: %v", page.Problems)
	}
	if page.RenderID == "" {
		t.Fatalf("expected render id")
	}
	if got := page.Slots[themes.SlotNavigation]; got != "<nav>N</nav>" {
		t.Fatalf("navigation slot = %q", got)
	}
}

func TestRenderPageSkipsSlotsWithoutData(t *testing.T) {
	eng := New(WithThemes(testTheme("plain")))

	page, err := eng.RenderPage(context.Background(), Request{
		ThemeID: "plain",
		Header:  node.Payload{"title": "only"},
	})
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	if string(page.Markup) != "<header>only</header>" {
		t.Fatalf("markup = %q", page.Markup)
	}
	if diff := cmp.Diff([]string{themes.SlotHeader}, mapKeys(page.Slots)); diff != "" {
		t.Fatalf("slots mismatch (-want +got):\n%s", diff)
	}
	if page.Scripts != "" {
		t.Fatalf("footer script must not be included when footer is skipped: %q", page.Scripts)
	}
}

func TestRenderPageUnknownThemeIsFatal(t *testing.T) {
	eng := New(WithThemes(testTheme("plain")))

	page, err := eng.RenderPage(context.Background(), Request{ThemeID: "missing", Header: node.Payload{}})
	if !errors.Is(err, render.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if page.Markup != "" || page.RenderID != "" {
		t.Fatalf("nothing should render for an unknown theme: %+v", page)
	}
}

func TestRenderPageMissingSlotRendererIsReported(t *testing.T) {
	desc := testTheme("partial")
	delete(desc.Slots, themes.SlotFooter)
	delete(desc.Slots, themes.SlotArticle)

	rec := &observe.Recorder{}
	eng := New(WithThemes(desc), WithReporter(rec))

	page, err := eng.RenderPage(context.Background(), Request{
		ThemeID: "partial",
		Header:  node.Payload{"title": "H"},
		Footer:  node.Payload{"title": "F"},
		Content: []*node.Node{paragraph("body"), node.New("gallery", nil)},
	})
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	if diff := cmp.Diff("<header>H</header>\n<p>body</p>", string(page.Markup)); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]render.EventKind{render.EventUnresolvedBlock, render.EventUnresolvedSlot}, rec.Kinds()); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
	if len(page.Problems) != 2 {
		t.Fatalf("expected two problems, got %v", page.Problems)
	}
	for _, event := range rec.Events() {
		if event.RenderID != page.RenderID || event.ThemeID != "partial" {
			t.Fatalf("event not tagged with page identity: %+v", event)
		}
	}
}

func TestRenderPageDepthGuard(t *testing.T) {
	desc := testTheme("deep")
	desc.Blocks["wrap"] = render.Func(func(n *node.Node, ctx *render.Context) (markup.HTML, error) {
		return "[" + ctx.RenderChildren(n) + "]", nil
	})
	eng := New(WithThemes(desc), WithMaxDepth(3), WithPlaceholder(func(render.Event) markup.HTML { return "!" }))

	tree := node.New("wrap", nil, node.New("wrap", nil, node.New("wrap", nil, node.New("wrap", nil))))
	page, err := eng.RenderPage(context.Background(), Request{ThemeID: "deep", Content: []*node.Node{tree}})
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	if string(page.Markup) != "<article>[[[!]]]</article>" {
		t.Fatalf("markup = %q", page.Markup)
	}
	if len(page.Problems) != 1 || !errors.Is(page.Problems[0], render.ErrDepthExceeded) {
		t.Fatalf("expected depth problem, got %v", page.Problems)
	}
}

func TestRenderPageTokensFromSelector(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "plain",
		Version: "1.0.0",
		Tokens:  map[string]string{"brand": "#123456", "radius": "4px"},
		Assets: theme.Assets{
			Prefix: "/assets/plain",
			Files:  map[string]string{"logo": "logo.svg"},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{"brand": "#654321"},
				Assets: theme.Assets{Files: map[string]string{"logo": "logo-dark.svg"}},
			},
		},
	}
	selector := &stubThemeSelector{selection: &theme.Selection{Theme: "plain", Variant: "dark", Manifest: manifest}}

	desc := testTheme("plain")
	desc.Slots[themes.SlotHeader] = render.Func(func(_ *node.Node, ctx *render.Context) (markup.HTML, error) {
		return markup.HTML(fmt.Sprintf("<header data-brand=%q><img src=%q></header>", ctx.Token("brand"), ctx.AssetURL("logo"))), nil
	})
	eng := New(WithThemes(desc), WithThemeSelector(selector))

	page, err := eng.RenderPage(context.Background(), Request{ThemeID: "plain", Variant: "dark", Header: node.Payload{}})
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	if diff := cmp.Diff([]selectorCall{{name: "plain", variant: "dark"}}, selector.calls, cmp.AllowUnexported(selectorCall{})); diff != "" {
		t.Fatalf("selector calls mismatch (-want +got):\n%s", diff)
	}
	if string(page.Markup) != `<header data-brand="#654321"><img src="/assets/plain/logo-dark.svg"></header>` {
		t.Fatalf("markup = %q", page.Markup)
	}
	wantStyles := "body{margin:0}\n:root {\n  --brand: #654321;\n  --radius: 4px;\n}"
	if diff := cmp.Diff(wantStyles, page.Styles); diff != "" {
		t.Fatalf("styles mismatch (-want +got):\n%s", diff)
	}
	if page.Variant != "dark" {
		t.Fatalf("variant = %q", page.Variant)
	}
}

func TestRenderPageSelectorErrorRendersWithoutTokens(t *testing.T) {
	selector := &stubThemeSelector{err: errors.New("unknown theme")}
	eng := New(WithThemes(testTheme("plain")), WithThemeSelector(selector))

	page, err := eng.RenderPage(context.Background(), Request{ThemeID: "plain", Header: node.Payload{"title": "H"}})
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	if strings.Contains(page.Styles, ":root") {
		t.Fatalf("no token styles expected: %q", page.Styles)
	}
}

func TestRegisterAfterRenderFails(t *testing.T) {
	eng := New()
	if err := eng.Register(testTheme("plain")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := eng.RenderPage(context.Background(), Request{ThemeID: "plain"}); err != nil {
		t.Fatalf("render page: %v", err)
	}
	if err := eng.Register(testTheme("late")); !errors.Is(err, render.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if diff := cmp.Diff([]string{"plain"}, eng.Themes()); diff != "" {
		t.Fatalf("themes mismatch (-want +got):\n%s", diff)
	}
}

func TestWithThemesInvalidDescriptorSurfacesOnRender(t *testing.T) {
	eng := New(WithThemes(themes.Descriptor{}))
	_, err := eng.RenderPage(context.Background(), Request{ThemeID: "plain"})
	if !errors.Is(err, render.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestWithThemesFailureIsScopedToTheme(t *testing.T) {
	eng := New(WithThemes(testTheme("plain"), testTheme("other"), testTheme("plain")))

	if err := eng.Err(); !errors.Is(err, render.ErrConfiguration) {
		t.Fatalf("expected configuration error from Err, got %v", err)
	}
	if _, err := eng.RenderPage(context.Background(), Request{ThemeID: "plain"}); !errors.Is(err, render.ErrConfiguration) {
		t.Fatalf("expected configuration error for plain, got %v", err)
	}

	page, err := eng.RenderPage(context.Background(), Request{ThemeID: "other", Header: node.Payload{"title": "H"}})
	if err != nil {
		t.Fatalf("render other: %v", err)
	}
	if string(page.Markup) != "<header>H</header>" {
		t.Fatalf("markup = %q", page.Markup)
	}
}

func TestErrIsNilWithoutFailures(t *testing.T) {
	if err := New(WithThemes(testTheme("plain"))).Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRenderPageCanceledContext(t *testing.T) {
	eng := New(WithThemes(testTheme("plain")))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := eng.RenderPage(ctx, Request{ThemeID: "plain"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestConcurrentPagesAreIndependent(t *testing.T) {
	eng := New(WithThemes(testTheme("plain")))

	var wg sync.WaitGroup
	results := make([]Page, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := Request{ThemeID: "plain", Content: []*node.Node{paragraph(fmt.Sprint(i))}}
			if i%2 == 0 {
				req.Footer = node.Payload{}
			}
			page, err := eng.RenderPage(context.Background(), req)
			if err != nil {
				t.Errorf("render page %d: %v", i, err)
				return
			}
			results[i] = page
		}(i)
	}
	wg.Wait()

	ids := map[string]bool{}
	for i, page := range results {
		if ids[page.RenderID] {
			t.Fatalf("duplicate render id %s", page.RenderID)
		}
		ids[page.RenderID] = true

		wantScripts := ""
		if i%2 == 0 {
			wantScripts = "footer();"
		}
		if page.Scripts != wantScripts {
			t.Fatalf("page %d scripts = %q, want %q", i, page.Scripts, wantScripts)
		}
		if !strings.Contains(string(page.Markup), fmt.Sprintf("<p>%d</p>", i)) {
			t.Fatalf("page %d markup = %q", i, page.Markup)
		}
	}
}

func TestRendererConfigDerivation(t *testing.T) {
	cfg := rendererConfig(&theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:   "acme",
			Tokens: map[string]string{"--gap": "8px"},
			Assets: theme.Assets{Prefix: "/static/", Files: map[string]string{
				"css": "theme.css",
				"cdn": "https://cdn.example.com/x.js",
			}},
			Variants: map[string]theme.Variant{
				"dark": {Assets: theme.Assets{Prefix: "/static/dark"}},
			},
		},
	})
	if cfg.CSSVars["--gap"] != "8px" {
		t.Fatalf("css var names already prefixed must be kept: %v", cfg.CSSVars)
	}
	if got := cfg.AssetURL("css"); got != "/static/dark/theme.css" {
		t.Fatalf("css url = %q", got)
	}
	if got := cfg.AssetURL("cdn"); got != "https://cdn.example.com/x.js" {
		t.Fatalf("absolute urls must pass through: %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("unknown key should resolve empty, got %q", got)
	}
	if rendererConfig(nil) != nil {
		t.Fatalf("nil selection should yield nil config")
	}
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	mu        sync.Mutex
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

func mapKeys(m map[string]markup.HTML) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	return keys
}
