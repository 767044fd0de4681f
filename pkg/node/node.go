// Package node defines the content tree the render engine walks: typed nodes
// carrying an open payload and an ordered list of children.
package node

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Node is one element of a content tree. The engine resolves a renderer from
// Type alone; Payload shape is renderer specific. Nodes are treated as
// immutable while a page renders.
type Node struct {
	Type     string
	Payload  Payload
	Children []*Node
}

// New constructs a node.
func New(typ string, payload Payload, children ...*Node) *Node {
	return &Node{
		Type:     strings.TrimSpace(typ),
		Payload:  payload,
		Children: children,
	}
}

// Payload holds the attributes of a node or slot.
type Payload map[string]any

// Has reports whether key is present.
func (p Payload) Has(key string) bool {
	if p == nil {
		return false
	}
	_, ok := p[key]
	return ok
}

// Get returns the raw value stored at key.
func (p Payload) Get(key string) any {
	if p == nil {
		return nil
	}
	return p[key]
}

// String returns the value at key formatted as a string. Missing keys yield "".
func (p Payload) String(key string) string {
	switch value := p.Get(key).(type) {
	case nil:
		return ""
	case string:
		return value
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}

// Int returns the value at key as an int, converting numeric strings and
// floats decoded from JSON. Unparseable values yield fallback.
func (p Payload) Int(key string, fallback int) int {
	switch value := p.Get(key).(type) {
	case int:
		return value
	case int64:
		return int(value)
	case float64:
		return int(value)
	case uint64:
		return int(value)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return fallback
}

// Bool returns the value at key as a bool.
func (p Payload) Bool(key string) bool {
	switch value := p.Get(key).(type) {
	case bool:
		return value
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		return err == nil && parsed
	}
	return false
}

// Map returns the nested payload stored at key.
func (p Payload) Map(key string) Payload {
	switch value := p.Get(key).(type) {
	case Payload:
		return value
	case map[string]any:
		return Payload(value)
	}
	return nil
}

// Slice returns the list stored at key.
func (p Payload) Slice(key string) []any {
	switch value := p.Get(key).(type) {
	case []any:
		return value
	case []map[string]any:
		out := make([]any, len(value))
		for idx, item := range value {
			out[idx] = item
		}
		return out
	case []Payload:
		out := make([]any, len(value))
		for idx, item := range value {
			out[idx] = map[string]any(item)
		}
		return out
	}
	return nil
}

// Maps returns the list stored at key keeping only object entries.
func (p Payload) Maps(key string) []Payload {
	items := p.Slice(key)
	if len(items) == 0 {
		return nil
	}
	out := make([]Payload, 0, len(items))
	for _, item := range items {
		switch typed := item.(type) {
		case map[string]any:
			out = append(out, Payload(typed))
		case Payload:
			out = append(out, typed)
		}
	}
	return out
}

// Keys returns the payload keys sorted.
func (p Payload) Keys() []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy of the payload.
func (p Payload) Clone() Payload {
	if p == nil {
		return nil
	}
	out := make(Payload, len(p))
	for key, value := range p {
		out[key] = value
	}
	return out
}

// Count returns the number of nodes in the tree rooted at nodes. Shared or
// cyclic references are counted once.
func Count(nodes []*Node) int {
	seen := make(map[*Node]struct{})
	var walk func([]*Node)
	walk = func(list []*Node) {
		for _, n := range list {
			if n == nil {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			walk(n.Children)
		}
	}
	walk(nodes)
	return len(seen)
}
