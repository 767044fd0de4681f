package markup

import (
	"fmt"
	"reflect"
	"strings"
)

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// Values maps placeholder names to the values interpolated into a Template.
type Values map[string]any

// Template is a sequence of fixed markup fragments interleaved with named
// placeholders. A placeholder name may appear several times. Dotted names
// (logo.src) walk nested string-keyed maps.
type Template struct {
	src   string
	fixed []string
	holes []string
}

// Parse splits src into fixed fragments and {{name}} placeholders.
func Parse(src string) (*Template, error) {
	tmpl := &Template{src: src}
	rest := src
	offset := 0
	for {
		start := strings.Index(rest, openDelim)
		if start < 0 {
			tmpl.fixed = append(tmpl.fixed, rest)
			break
		}
		end := strings.Index(rest[start+len(openDelim):], closeDelim)
		if end < 0 {
			return nil, fmt.Errorf("markup: unterminated placeholder at offset %d", offset+start)
		}
		name := strings.TrimSpace(rest[start+len(openDelim) : start+len(openDelim)+end])
		if !validName(name) {
			return nil, fmt.Errorf("markup: invalid placeholder name %q at offset %d", name, offset+start)
		}
		tmpl.fixed = append(tmpl.fixed, rest[:start])
		tmpl.holes = append(tmpl.holes, name)

		consumed := start + len(openDelim) + end + len(closeDelim)
		rest = rest[consumed:]
		offset += consumed
	}
	return tmpl, nil
}

// MustParse is Parse that panics on error, for package-level templates.
func MustParse(src string) *Template {
	tmpl, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return tmpl
}

// Interpolate parses src and executes it once.
func Interpolate(src string, values Values) (HTML, error) {
	tmpl, err := Parse(src)
	if err != nil {
		return "", err
	}
	return tmpl.Execute(values), nil
}

// Execute renders the template. Missing values render as empty strings.
func (t *Template) Execute(values Values) HTML {
	if t == nil {
		return ""
	}
	var b strings.Builder
	b.Grow(len(t.src))
	for idx, fixed := range t.fixed {
		b.WriteString(fixed)
		if idx < len(t.holes) {
			b.WriteString(Escape(lookup(values, t.holes[idx])))
		}
	}
	return HTML(b.String())
}

// Placeholders returns the distinct placeholder names in order of first use.
func (t *Template) Placeholders() []string {
	if t == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(t.holes))
	out := make([]string, 0, len(t.holes))
	for _, name := range t.holes {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Source returns the unparsed template text.
func (t *Template) Source() string {
	if t == nil {
		return ""
	}
	return t.src
}

func lookup(values Values, name string) any {
	if len(values) == 0 {
		return nil
	}
	if value, ok := values[name]; ok {
		return value
	}
	if !strings.Contains(name, ".") {
		return nil
	}

	segments := strings.Split(name, ".")
	var current any = map[string]any(values)
	for _, segment := range segments {
		current = field(current, segment)
		if current == nil {
			return nil
		}
	}
	return current
}

func field(container any, key string) any {
	switch typed := container.(type) {
	case map[string]any:
		return typed[key]
	case Values:
		return typed[key]
	}
	rv := reflect.ValueOf(container)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil
	}
	value := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !value.IsValid() {
		return nil
	}
	return value.Interface()
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '.':
		default:
			return false
		}
	}
	return true
}
