package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	theme "github.com/goliatone/go-theme"
	"github.com/google/uuid"

	"github.com/goliatone/go-themekit/pkg/markup"
	"github.com/goliatone/go-themekit/pkg/node"
	"github.com/goliatone/go-themekit/pkg/observe"
	"github.com/goliatone/go-themekit/pkg/render"
	"github.com/goliatone/go-themekit/pkg/themes"
)

// Engine renders pages against a catalog of registered themes. Themes are
// registered first; the first RenderPage call seals the catalog. After that
// the engine is safe for concurrent use: each page gets its own render
// context.
type Engine struct {
	catalog     *themes.Catalog
	maxDepth    int
	reporter    render.Reporter
	logger      *slog.Logger
	placeholder render.PlaceholderFunc
	selector    theme.ThemeSelector

	pending       []themes.Descriptor
	initialiseErr error
	themeErrs     map[string]error
	sealOnce      sync.Once
}

// New constructs an Engine applying any provided options.
func New(options ...Option) *Engine {
	e := &Engine{
		maxDepth: render.DefaultMaxDepth,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.catalog == nil {
		e.catalog = themes.NewCatalog()
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.reporter == nil {
		e.reporter = observe.NewSlogReporter(e.logger)
	}
	for _, desc := range e.pending {
		err := e.catalog.Register(desc)
		if err == nil {
			continue
		}
		err = fmt.Errorf("engine: register theme: %w", err)
		id := desc.ID()
		switch {
		case id != "":
			if e.themeErrs == nil {
				e.themeErrs = make(map[string]error)
			}
			if _, seen := e.themeErrs[id]; !seen {
				e.themeErrs[id] = err
			}
		case e.initialiseErr == nil:
			e.initialiseErr = err
		}
		e.logger.Error("theme registration failed", observe.ThemeID(id), observe.Error(err))
	}
	e.pending = nil
	return e
}

// Err reports the registration failures collected while the engine was
// constructed. A failure tied to a theme id only blocks pages for that theme;
// a descriptor without an id blocks every page.
func (e *Engine) Err() error {
	errs := make([]error, 0, len(e.themeErrs)+1)
	if e.initialiseErr != nil {
		errs = append(errs, e.initialiseErr)
	}
	ids := make([]string, 0, len(e.themeErrs))
	for id := range e.themeErrs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		errs = append(errs, e.themeErrs[id])
	}
	return errors.Join(errs...)
}

// Register adds a theme. Registering after the first page render fails with
// a configuration error.
func (e *Engine) Register(descriptor themes.Descriptor) error {
	if err := e.catalog.Register(descriptor); err != nil {
		return err
	}
	e.logger.Debug("theme registered",
		observe.ThemeID(descriptor.ID()),
		slog.Int("slots", len(descriptor.Slots)),
		slog.Int("blocks", len(descriptor.Blocks)),
	)
	return nil
}

// Themes lists the registered theme ids sorted.
func (e *Engine) Themes() []string {
	return e.catalog.List()
}

// Catalog exposes the engine's theme catalog.
func (e *Engine) Catalog() *themes.Catalog {
	return e.catalog
}

// Request describes one page. Slots with a nil payload are skipped; Content
// becomes the children of the article slot.
type Request struct {
	ThemeID    string
	Variant    string
	Header     node.Payload
	Navigation node.Payload
	Article    node.Payload
	Footer     node.Payload
	Content    []*node.Node
}

// Page is a rendered page. Styles and Scripts hold every distinct bundle
// discovered while rendering, in discovery order.
type Page struct {
	RenderID string
	ThemeID  string
	Variant  string
	Markup   markup.HTML
	Slots    map[string]markup.HTML
	Styles   string
	Scripts  string
	Problems []error
}

// RenderPage renders req. Only configuration problems are returned as
// errors; everything recoverable is collected on Page.Problems.
func (e *Engine) RenderPage(ctx context.Context, req Request) (Page, error) {
	if ctx == nil {
		return Page{}, errors.New("engine: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	if err := e.initialiseErr; err != nil {
		return Page{}, err
	}
	e.sealOnce.Do(e.catalog.Seal)

	themeID := strings.TrimSpace(req.ThemeID)
	if err := e.themeErrs[themeID]; err != nil {
		return Page{}, err
	}
	descriptor, err := e.catalog.Get(themeID)
	if err != nil {
		return Page{}, err
	}

	started := time.Now()
	page := Page{
		RenderID: uuid.NewString(),
		ThemeID:  themeID,
		Variant:  strings.TrimSpace(req.Variant),
		Slots:    make(map[string]markup.HTML),
	}

	opts := []render.Option{
		render.WithRenderID(page.RenderID),
		render.WithMaxDepth(e.maxDepth),
		render.WithReporter(e.reporter),
		render.WithPlaceholder(e.placeholder),
	}
	cfg := e.themeConfig(themeID, page.Variant)
	if cfg != nil {
		page.Variant = cfg.Variant
		opts = append(opts, render.WithTokens(cfg.Tokens), render.WithAssetURL(cfg.AssetURL))
	}

	rc := render.NewContext(themeID, e.catalog, opts...)
	if descriptor.Assets != nil {
		rc.Record(render.Identity{ThemeID: themeID, Kind: render.KindTheme, Name: themeID}, *descriptor.Assets)
	}
	if cfg != nil {
		if style := cssVarsStyle(cfg.CSSVars); style != "" {
			rc.Record(render.Identity{ThemeID: themeID, Kind: render.KindTokens, Name: page.Variant}, render.AssetBundle{Styles: style})
		}
	}

	parts := make([]markup.HTML, 0, 4)
	for _, slot := range e.slotPlan(themeID, req) {
		out := slot.render(rc)
		if out == "" {
			continue
		}
		page.Slots[slot.name] = out
		parts = append(parts, out)
	}

	page.Markup = markup.HTML(strings.Join(htmlStrings(parts), "\n"))
	page.Styles, page.Scripts = rc.Finalize()
	page.Problems = rc.Problems()

	e.logger.Debug("page rendered",
		observe.RenderID(page.RenderID),
		observe.ThemeID(themeID),
		observe.Variant(page.Variant),
		slog.Int("slots", len(page.Slots)),
		slog.Int("bundles", len(rc.Recorded())),
		slog.Int("problems", len(page.Problems)),
		slog.Float64("duration_ms", float64(time.Since(started).Microseconds())/1000),
	)
	return page, nil
}

type slotCall struct {
	name   string
	render func(*render.Context) markup.HTML
}

// slotPlan returns the slots to render in page order: header, navigation,
// article, footer. Slots without data are left out.
func (e *Engine) slotPlan(themeID string, req Request) []slotCall {
	var plan []slotCall
	add := func(name string, payload node.Payload) {
		if payload == nil {
			return
		}
		plan = append(plan, slotCall{name: name, render: func(rc *render.Context) markup.HTML {
			return rc.RenderSlot(name, payload, nil)
		}})
	}

	add(themes.SlotHeader, req.Header)
	add(themes.SlotNavigation, req.Navigation)

	if req.Article != nil || len(req.Content) > 0 {
		_, hasArticle := e.catalog.Resolve(themeID, render.KindSlot, themes.SlotArticle)
		plan = append(plan, slotCall{name: themes.SlotArticle, render: func(rc *render.Context) markup.HTML {
			if hasArticle {
				article := req.Article
				if article == nil {
					article = node.Payload{}
				}
				return rc.RenderSlot(themes.SlotArticle, article, req.Content)
			}
			if req.Article != nil {
				rc.RenderSlot(themes.SlotArticle, req.Article, nil)
			}
			return rc.RenderAll(req.Content)
		}})
	}

	add(themes.SlotFooter, req.Footer)
	return plan
}

func htmlStrings(parts []markup.HTML) []string {
	out := make([]string, len(parts))
	for i, part := range parts {
		out[i] = string(part)
	}
	return out
}
