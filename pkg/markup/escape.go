package markup

import (
	"fmt"
	"html"
	"reflect"
	"strconv"
)

// HTML is markup that has already been rendered or sanitised and must be
// emitted verbatim.
type HTML string

// String returns the markup as a plain string.
func (h HTML) String() string {
	return string(h)
}

// Raw marks s as pre-rendered markup so interpolation leaves it untouched.
func Raw(s string) HTML {
	return HTML(s)
}

// Escape formats v and escapes the characters that are significant in HTML
// text and attribute values (& < > " '). HTML values pass through as-is.
// Nil values, including typed nil pointers, produce an empty string.
func Escape(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case HTML:
		return string(value)
	case string:
		return html.EscapeString(value)
	case []byte:
		return html.EscapeString(string(value))
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case error:
		return html.EscapeString(value.Error())
	case fmt.Stringer:
		if isNil(v) {
			return ""
		}
		return html.EscapeString(value.String())
	}
	if isNil(v) {
		return ""
	}
	return html.EscapeString(fmt.Sprint(v))
}

// EscapeHTML is Escape with the result typed as HTML, convenient when building
// fragments by concatenation.
func EscapeHTML(v any) HTML {
	return HTML(Escape(v))
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return !rv.IsValid()
	}
}
