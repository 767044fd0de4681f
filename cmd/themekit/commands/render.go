package commands

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	themekit "github.com/goliatone/go-themekit"
	"github.com/goliatone/go-themekit/internal/config"
	"github.com/goliatone/go-themekit/pkg/engine"
	"github.com/goliatone/go-themekit/pkg/observe"
	"github.com/goliatone/go-themekit/pkg/render"
)

const baseVariantLabel = "(base)"

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Content     string `arg:"" help:"Page document (YAML or JSON)" type:"existingfile"`
	ThemesDir   string `name:"themes-dir" help:"Directory with additional manifest themes (overrides themes_dir)"`
	Theme       string `short:"t" help:"Theme id. Precedence: --theme > page document > config."`
	Variant     string `help:"Theme variant. Precedence: --variant > page document > config."`
	Output      string `short:"o" help:"Output file (stdout when empty)"`
	Interactive bool   `short:"i" help:"Choose theme and variant interactively"`
	Fragment    bool   `help:"Write only the page markup without the document shell"`
	Metrics     string `help:"Write render problem counters in Prometheus text format to this file"`
}

func (r *RenderCmd) Run(g *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return r.run(context.Background(), g, cfg)
}

func (r *RenderCmd) run(ctx context.Context, g *Global, cfg *config.Config) error {
	logger := g.logger()

	data, err := os.ReadFile(r.Content)
	if err != nil {
		return fmt.Errorf("read page: %w", err)
	}
	req, err := themekit.ParsePage(data)
	if err != nil {
		return fmt.Errorf("%w (%s)", err, r.Content)
	}

	bundled, err := loadThemes(firstNonEmpty(r.ThemesDir, cfg.ThemesDir))
	if err != nil {
		return err
	}

	req.ThemeID = firstNonEmpty(r.Theme, req.ThemeID, cfg.Theme)
	req.Variant = firstNonEmpty(r.Variant, req.Variant, cfg.Variant)
	if r.Interactive {
		if req.ThemeID, req.Variant, err = chooseTheme(ctx, g.prompter(), bundled, req.ThemeID, req.Variant); err != nil {
			return err
		}
	}

	registry := prometheus.NewRegistry()
	options := append(bundled.Options(),
		engine.WithMaxDepth(cfg.MaxDepth),
		engine.WithLogger(logger),
		engine.WithReporter(observe.Multi(
			observe.NewSlogReporter(logger),
			observe.NewPrometheusReporter(registry),
		)),
	)
	if cfg.Placeholders {
		options = append(options, engine.WithPlaceholder(render.CommentPlaceholder))
	}

	page, err := themekit.NewEngine(options...).RenderPage(ctx, req)
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	out := string(page.Markup)
	if !r.Fragment {
		out, err = themekit.RenderDocument(page, themekit.DocumentMeta{
			Title: firstNonEmpty(req.Article.String("title"), cfg.Document.Title),
			Lang:  cfg.Document.Lang,
		})
		if err != nil {
			return err
		}
	}

	if err := r.write(g, out); err != nil {
		return err
	}
	if err := r.writeMetrics(registry); err != nil {
		return err
	}

	attrs := []any{
		observe.RenderID(page.RenderID),
		observe.ThemeID(page.ThemeID),
		observe.Variant(page.Variant),
		slog.Int("problems", len(page.Problems)),
	}
	if r.Output != "" {
		attrs = append(attrs, slog.String("output", r.Output))
	}
	if len(page.Problems) > 0 {
		logger.Warn("Page rendered with problems", attrs...)
	} else {
		logger.Info("Page rendered", attrs...)
	}
	return nil
}

func (r *RenderCmd) write(g *Global, out string) error {
	if r.Output == "" {
		_, err := fmt.Fprintln(g.stdout(), out)
		return err
	}
	if dir := filepath.Dir(r.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(r.Output, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (r *RenderCmd) writeMetrics(registry *prometheus.Registry) error {
	if r.Metrics == "" {
		return nil
	}
	var buf bytes.Buffer
	if err := observe.WriteMetrics(&buf, registry); err != nil {
		return err
	}
	if err := os.WriteFile(r.Metrics, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}

// chooseTheme prompts for a theme and then one of its variants, preselecting
// the current values.
func chooseTheme(ctx context.Context, prompt Prompter, bundled themekit.Themes, themeID, variant string) (string, string, error) {
	ids := bundled.IDs()
	if len(ids) == 0 {
		return "", "", fmt.Errorf("no themes registered")
	}
	idx, err := prompt.Select(ctx, SelectConfig{
		Message:      "Theme",
		Options:      ids,
		DefaultIndex: indexOf(ids, themeID),
	})
	if err != nil {
		return "", "", err
	}
	if idx < 0 || idx >= len(ids) {
		return "", "", fmt.Errorf("invalid theme selection")
	}
	themeID = ids[idx]

	variants := bundled.Selector().Variants(themeID)
	if len(variants) == 0 {
		return themeID, "", nil
	}
	choices := append([]string{baseVariantLabel}, variants...)
	def := indexOf(choices, variant)
	if def < 0 {
		def = 0
	}
	idx, err = prompt.Select(ctx, SelectConfig{
		Message:      "Variant",
		Options:      choices,
		DefaultIndex: def,
	})
	if err != nil {
		return "", "", err
	}
	if idx <= 0 || idx >= len(choices) {
		return themeID, "", nil
	}
	return themeID, choices[idx], nil
}

func loadThemes(dir string) (themekit.Themes, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return themekit.LoadThemes()
	}
	bundled, err := themekit.LoadThemes(os.DirFS(dir))
	if err != nil {
		return themekit.Themes{}, fmt.Errorf("load themes from %s: %w", dir, err)
	}
	return bundled, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
