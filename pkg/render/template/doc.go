// Package template defines the template engine seam used by declarative
// themes. The gotemplate subpackage provides the pongo2-backed engine.
package template
