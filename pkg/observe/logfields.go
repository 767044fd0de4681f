// Package observe turns render events into logs and metrics.
package observe

import (
	"log/slog"

	"github.com/goliatone/go-themekit/pkg/render"
)

// Canonical log field names shared by the engine and reporters.
const (
	KeyRenderID = "render_id"
	KeyThemeID  = "theme_id"
	KeyVariant  = "variant"
	KeyNodeType = "node_type"
	KeyNodePath = "node_path"
	KeySlot     = "slot"
	KeyEvent    = "event"
	KeyError    = "error"
)

func RenderID(id string) slog.Attr           { return slog.String(KeyRenderID, id) }
func ThemeID(id string) slog.Attr            { return slog.String(KeyThemeID, id) }
func Variant(v string) slog.Attr             { return slog.String(KeyVariant, v) }
func NodeType(t string) slog.Attr            { return slog.String(KeyNodeType, t) }
func NodePath(path []int) slog.Attr          { return slog.String(KeyNodePath, render.FormatPath(path)) }
func Slot(name string) slog.Attr             { return slog.String(KeySlot, name) }
func EventKind(k render.EventKind) slog.Attr { return slog.String(KeyEvent, string(k)) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

// EventAttrs returns the canonical attributes describing an event.
func EventAttrs(event render.Event) []slog.Attr {
	attrs := []slog.Attr{
		EventKind(event.Kind),
		RenderID(event.RenderID),
		ThemeID(event.ThemeID),
		NodeType(event.NodeType),
		NodePath(event.Path),
	}
	if event.Slot != "" {
		attrs = append(attrs, Slot(event.Slot))
	}
	if event.Err != nil {
		attrs = append(attrs, Error(event.Err))
	}
	return attrs
}
