package render

import "strings"

// accumulator records asset bundles once per identity, preserving the order
// in which identities were first seen. That order is what the style cascade
// depends on, so it must never be sorted.
type accumulator struct {
	order   []Identity
	bundles map[Identity]AssetBundle
}

func newAccumulator() *accumulator {
	return &accumulator{bundles: make(map[Identity]AssetBundle)}
}

func (a *accumulator) record(id Identity, bundle AssetBundle) bool {
	if bundle.Empty() {
		return false
	}
	if _, exists := a.bundles[id]; exists {
		return false
	}
	a.bundles[id] = bundle
	a.order = append(a.order, id)
	return true
}

func (a *accumulator) identities() []Identity {
	out := make([]Identity, len(a.order))
	copy(out, a.order)
	return out
}

func (a *accumulator) finalize() (styles, scripts string) {
	var styleParts, scriptParts []string
	for _, id := range a.order {
		bundle := a.bundles[id]
		if s := strings.TrimSpace(bundle.Styles); s != "" {
			styleParts = append(styleParts, s)
		}
		if s := strings.TrimSpace(bundle.Scripts); s != "" {
			scriptParts = append(scriptParts, s)
		}
	}
	return strings.Join(styleParts, "\n"), strings.Join(scriptParts, "\n")
}
