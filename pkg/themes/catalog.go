package themes

import (
	"fmt"
	"slices"
	"sync"

	"github.com/goliatone/go-themekit/pkg/render"
)

// Catalog stores registered themes by id. Registration is expected to finish
// before pages render; Seal enforces that. Lookups take a read lock and are
// safe for concurrent use.
type Catalog struct {
	mu     sync.RWMutex
	themes map[string]Descriptor
	sealed bool
}

var _ render.Resolver = (*Catalog)(nil)

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		themes: make(map[string]Descriptor),
	}
}

// Register validates and stores a theme. Invalid descriptors, duplicate ids
// and registrations after Seal fail with *render.ConfigurationError.
func (c *Catalog) Register(descriptor Descriptor) error {
	if err := descriptor.Validate(); err != nil {
		return err
	}
	theme := descriptor.clone()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sealed {
		return &render.ConfigurationError{
			ThemeID:  theme.Config.ID,
			Problems: []string{"catalog is sealed; register themes before rendering"},
		}
	}
	if _, exists := c.themes[theme.Config.ID]; exists {
		return &render.ConfigurationError{
			ThemeID:  theme.Config.ID,
			Problems: []string{"theme already registered"},
		}
	}

	c.themes[theme.Config.ID] = theme
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (c *Catalog) MustRegister(descriptor Descriptor) {
	if err := c.Register(descriptor); err != nil {
		panic(err)
	}
}

// Seal ends the registration phase.
func (c *Catalog) Seal() {
	c.mu.Lock()
	c.sealed = true
	c.mu.Unlock()
}

// Sealed reports whether Seal was called.
func (c *Catalog) Sealed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sealed
}

// Get returns the theme registered under id.
func (c *Catalog) Get(id string) (Descriptor, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	theme, ok := c.themes[id]
	if !ok {
		return Descriptor{}, &render.ConfigurationError{
			ThemeID:  id,
			Problems: []string{"theme not registered"},
		}
	}
	return theme, nil
}

// Has reports whether a theme is registered.
func (c *Catalog) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.themes[id]
	return ok
}

// List returns the registered theme ids sorted.
func (c *Catalog) List() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.themes))
	for id := range c.themes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Resolve implements render.Resolver.
func (c *Catalog) Resolve(themeID string, kind render.Kind, name string) (render.Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	theme, ok := c.themes[themeID]
	if !ok {
		return render.Entry{}, false
	}

	var entry render.Entry
	switch kind {
	case render.KindSlot:
		entry, ok = theme.Slots[name]
	case render.KindBlock:
		entry, ok = theme.Blocks[name]
	default:
		return render.Entry{}, false
	}
	return entry, ok
}

// String implements fmt.Stringer for debugging output.
func (c *Catalog) String() string {
	return fmt.Sprintf("themes.Catalog%v", c.List())
}
