package markup

import (
	"reflect"
	"strings"
)

// Truthy reports whether v counts as true for conditional inclusion. Nil,
// false, zero numbers, empty strings and empty collections are false;
// everything else is true.
func Truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return value != ""
	case HTML:
		return value != ""
	case int:
		return value != 0
	case float64:
		return value != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return Truthy(rv.Elem().Interface())
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan, reflect.String:
		if rv.Kind() != reflect.Array && rv.Kind() != reflect.String && rv.IsNil() {
			return false
		}
		return rv.Len() > 0
	case reflect.Func:
		return !rv.IsNil()
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return !rv.IsZero()
	default:
		return true
	}
}

// Include returns fragment when cond is truthy and an empty fragment
// otherwise. The fragment is evaluated by the caller before the call.
func Include(cond any, fragment HTML) HTML {
	if Truthy(cond) {
		return fragment
	}
	return ""
}

// When is an alias for Include that reads better inline.
func When(cond any, fragment HTML) HTML {
	return Include(cond, fragment)
}

// Join concatenates already rendered fragments.
func Join(parts ...HTML) HTML {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(string(part))
	}
	return HTML(b.String())
}

// JoinEach renders every item with fn and concatenates the results in order.
func JoinEach[T any](items []T, fn func(T) HTML) HTML {
	if len(items) == 0 || fn == nil {
		return ""
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteString(string(fn(item)))
	}
	return HTML(b.String())
}
