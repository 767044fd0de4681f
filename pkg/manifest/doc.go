// Package manifest loads declarative themes from JSON or YAML files. Each
// file describes one theme: metadata, a base asset bundle, design tokens and
// variants, and pongo2 templates for slots and blocks. A loaded Set turns into
// themes.Descriptor values the engine registers like any Go theme, and into a
// go-theme selector that supplies tokens and asset URLs per variant.
//
//	id: paper
//	version: 1.0.0
//	styles: "body{font-family:serif}"
//	tokens: {ink: "#222"}
//	slots:
//	  header: {template: "<header>{{ siteName }}</header>"}
//	blocks:
//	  card: {template: "<div class=\"card\">{{ children }}</div>", styles: ".card{}"}
package manifest
