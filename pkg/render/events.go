package render

// EventKind classifies the problems surfaced to the observability
// collaborator.
type EventKind string

const (
	EventUnresolvedSlot  EventKind = "unresolved_slot"
	EventUnresolvedBlock EventKind = "unresolved_block"
	EventDepthExceeded   EventKind = "depth_exceeded"
	EventRendererFault   EventKind = "renderer_fault"
)

// Event describes one recoverable problem encountered during a page render.
// Path holds child indices from the root of the content tree (or of the slot
// when Slot is set).
type Event struct {
	Kind     EventKind
	RenderID string
	ThemeID  string
	NodeType string
	Slot     string
	Path     []int
	Err      error
}

// Reporter receives render events. Implementations must not retain Path
// beyond the call unless they copy it; the engine already passes a copy.
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Event)

// Report calls fn.
func (fn ReporterFunc) Report(event Event) {
	if fn != nil {
		fn(event)
	}
}

// NopReporter drops every event.
type NopReporter struct{}

// Report does nothing.
func (NopReporter) Report(Event) {}
