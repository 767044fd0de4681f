// Package themes holds theme descriptors and the catalog the engine resolves
// renderers from.
package themes

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/goliatone/go-themekit/pkg/render"
)

// Well-known slot names. Themes may register additional content slots.
const (
	SlotHeader     = "header"
	SlotNavigation = "navigation"
	SlotArticle    = "article"
	SlotFooter     = "footer"
)

// Config carries a theme's identifying metadata.
type Config struct {
	ID      string
	Name    string
	Version string
}

// Descriptor is everything a theme registers: metadata, slot renderers, block
// renderers keyed by content node type, and an optional base bundle that is
// included on every page rendered with the theme.
type Descriptor struct {
	Config Config
	Slots  map[string]render.Entry
	Blocks map[string]render.Entry
	Assets *render.AssetBundle
}

// ID returns the descriptor's normalised identifier.
func (d Descriptor) ID() string {
	return strings.TrimSpace(d.Config.ID)
}

// Validate checks the descriptor and returns a *render.ConfigurationError
// listing every problem found, or nil.
func (d Descriptor) Validate() error {
	var problems []string
	if d.ID() == "" {
		problems = append(problems, "id is required")
	}
	if strings.TrimSpace(d.Config.Version) == "" {
		problems = append(problems, "version is required")
	}
	problems = append(problems, validateEntries("slot", d.Slots)...)
	problems = append(problems, validateEntries("block", d.Blocks)...)

	if len(problems) == 0 {
		return nil
	}
	return &render.ConfigurationError{ThemeID: d.ID(), Problems: problems}
}

func validateEntries(kind string, entries map[string]render.Entry) []string {
	var problems []string
	for _, name := range slices.Sorted(maps.Keys(entries)) {
		if strings.TrimSpace(name) == "" {
			problems = append(problems, kind+" name is required")
			continue
		}
		if !entries[name].Callable() {
			problems = append(problems, kind+" "+strconv.Quote(name)+" renderer is not callable")
		}
	}
	return problems
}

// clone copies the descriptor so later mutation of the caller's maps cannot
// change a registered theme. Names are trimmed.
func (d Descriptor) clone() Descriptor {
	out := Descriptor{
		Config: Config{
			ID:      d.ID(),
			Name:    strings.TrimSpace(d.Config.Name),
			Version: strings.TrimSpace(d.Config.Version),
		},
		Slots:  cloneEntries(d.Slots),
		Blocks: cloneEntries(d.Blocks),
	}
	if d.Assets != nil && !d.Assets.Empty() {
		bundle := *d.Assets
		out.Assets = &bundle
	}
	return out
}

func cloneEntries(in map[string]render.Entry) map[string]render.Entry {
	out := make(map[string]render.Entry, len(in))
	for name, entry := range in {
		if entry.Assets != nil {
			bundle := *entry.Assets
			entry.Assets = &bundle
		}
		out[strings.TrimSpace(name)] = entry
	}
	return out
}
