package markup

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicyOnce  sync.Once
	ugcPolicy      *bluemonday.Policy
	iconPolicyOnce sync.Once
	iconPolicy     *bluemonday.Policy
)

// Sanitize cleans untrusted markup (rendered markdown, editor output) with a
// user-generated-content policy and returns it as HTML ready for raw
// interpolation.
func Sanitize(raw string) HTML {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return HTML(strings.TrimSpace(contentSanitizer().Sanitize(trimmed)))
}

// SanitizeIcon keeps only inline SVG icon markup.
func SanitizeIcon(raw string) HTML {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return HTML(strings.TrimSpace(iconSanitizer().Sanitize(trimmed)))
}

func contentSanitizer() *bluemonday.Policy {
	ugcPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		ugcPolicy = policy
	})
	return ugcPolicy
}

func iconSanitizer() *bluemonday.Policy {
	iconPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "title", "desc", "defs", "use", "clipPath",
		)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"role", "focusable", "class",
		).OnElements("svg")

		policy.AllowAttrs("href", "xlink:href", "clip-path").OnElements("use")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
				"stroke-linecap", "stroke-linejoin", "class",
			).OnElements(el)
		}

		policy.AllowAttrs("id", "clipPathUnits").OnElements("clipPath")
		policy.AllowAttrs("id").OnElements("defs", "g")

		iconPolicy = policy
	})
	return iconPolicy
}

var safeSchemes = map[string]struct{}{
	"http":   {},
	"https":  {},
	"mailto": {},
	"tel":    {},
}

// SafeURL returns raw trimmed unless it names a scheme other than http,
// https, mailto or tel, in which case it returns "#". Relative URLs pass
// through unchanged.
func SafeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	var scheme strings.Builder
	for _, r := range trimmed {
		switch {
		case r == ':':
			if _, ok := safeSchemes[strings.ToLower(scheme.String())]; ok {
				return trimmed
			}
			return "#"
		case r == '/' || r == '?' || r == '#':
			return trimmed
		case r <= ' ' || r == 0x7f:
			// browsers skip these inside a scheme
		default:
			scheme.WriteRune(r)
		}
	}
	return trimmed
}
