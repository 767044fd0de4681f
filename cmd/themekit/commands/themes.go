package commands

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-themekit/internal/config"
)

// ThemesCmd implements the 'themes' command.
type ThemesCmd struct {
	ThemesDir string `name:"themes-dir" help:"Directory with additional manifest themes (overrides themes_dir)"`
}

func (t *ThemesCmd) Run(g *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return t.run(g, cfg)
}

func (t *ThemesCmd) run(g *Global, cfg *config.Config) error {
	bundled, err := loadThemes(firstNonEmpty(t.ThemesDir, cfg.ThemesDir))
	if err != nil {
		return err
	}

	selector := bundled.Selector()
	out := g.stdout()
	for _, desc := range bundled.Descriptors {
		line := fmt.Sprintf("%s\t%s\t%s", desc.ID(), desc.Config.Version, desc.Config.Name)
		if variants := selector.Variants(desc.ID()); len(variants) > 0 {
			line += "\tvariants: " + strings.Join(variants, ", ")
		}
		if desc.ID() == cfg.Theme {
			line += "\t(default)"
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	g.logger().Debug("Listed themes", "count", len(bundled.Descriptors))
	return nil
}
