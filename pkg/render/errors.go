package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinels for errors.Is checks against the engine's error taxonomy.
var (
	ErrConfiguration      = errors.New("render: configuration error")
	ErrUnresolvedRenderer = errors.New("render: unresolved renderer")
	ErrDepthExceeded      = errors.New("render: depth exceeded")
	ErrRendererFault      = errors.New("render: renderer fault")
)

// ConfigurationError reports an invalid or duplicate theme registration, or a
// render request for a theme that was never registered. It is fatal for the
// theme involved.
type ConfigurationError struct {
	ThemeID  string
	Problems []string
	Err      error
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString("render: configuration error")
	if e.ThemeID != "" {
		b.WriteString(" for theme ")
		b.WriteString(strconv.Quote(e.ThemeID))
	}
	if len(e.Problems) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Problems, "; "))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

func (e *ConfigurationError) Unwrap() error { return e.Err }

// UnresolvedRendererError reports a slot or block type with no renderer in the
// active theme. The page keeps rendering.
type UnresolvedRendererError struct {
	ThemeID string
	Kind    Kind
	Name    string
	Path    []int
}

func (e *UnresolvedRendererError) Error() string {
	return fmt.Sprintf("render: theme %q has no %s renderer for %q (path %s)", e.ThemeID, e.Kind, e.Name, FormatPath(e.Path))
}

func (e *UnresolvedRendererError) Is(target error) bool { return target == ErrUnresolvedRenderer }

// DepthExceededError reports a subtree that nests deeper than the configured
// limit or re-enters one of its own ancestors. Only that subtree is dropped.
type DepthExceededError struct {
	ThemeID  string
	NodeType string
	Path     []int
	Depth    int
	Limit    int
	Cycle    bool
}

func (e *DepthExceededError) Error() string {
	if e.Cycle {
		return fmt.Sprintf("render: node %q at path %s re-enters its own ancestry", e.NodeType, FormatPath(e.Path))
	}
	return fmt.Sprintf("render: node %q at path %s is nested %d deep (limit %d)", e.NodeType, FormatPath(e.Path), e.Depth, e.Limit)
}

func (e *DepthExceededError) Is(target error) bool { return target == ErrDepthExceeded }

// RendererFaultError wraps an error returned, or a panic raised, by a render
// function. The node is replaced by a placeholder and siblings continue.
type RendererFaultError struct {
	ThemeID string
	Kind    Kind
	Name    string
	Path    []int
	Err     error
	Panic   any
}

func (e *RendererFaultError) Error() string {
	cause := "unknown failure"
	switch {
	case e.Err != nil:
		cause = e.Err.Error()
	case e.Panic != nil:
		cause = fmt.Sprintf("panic: %v", e.Panic)
	}
	return fmt.Sprintf("render: %s renderer %q failed at path %s: %s", e.Kind, e.Name, FormatPath(e.Path), cause)
}

func (e *RendererFaultError) Is(target error) bool { return target == ErrRendererFault }

func (e *RendererFaultError) Unwrap() error { return e.Err }

// FormatPath renders a node path as dot separated indices ("0.2.1"). The root
// path renders as "$".
func FormatPath(path []int) string {
	if len(path) == 0 {
		return "$"
	}
	parts := make([]string, len(path))
	for idx, value := range path {
		parts[idx] = strconv.Itoa(value)
	}
	return strings.Join(parts, ".")
}
