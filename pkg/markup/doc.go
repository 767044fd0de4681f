// Package markup holds the small primitives themes use to build markup:
// escaping interpolation, named-placeholder templates, eager conditional
// inclusion, and sanitisation of untrusted markup that must be passed through
// as raw HTML.
//
// Every value interpolated through this package is escaped unless it is
// already of type HTML. Wrapping a string with Raw is the explicit opt-out:
//
//	heading := markup.MustParse(`<h{{level}}>{{text}}</h{{level}}>`)
//	out := heading.Execute(markup.Values{"level": 2, "text": "A & B"})
//	// <h2>A &amp; B</h2>
package markup
