// Package engine assembles full pages: it resolves the requested theme, runs
// the slot renderers in page order and returns the markup together with the
// page's aggregated styles and scripts.
package engine
