package observe

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/goliatone/go-themekit/pkg/render"
)

// SlogReporter writes each render event as a warning record.
type SlogReporter struct {
	Logger *slog.Logger
	Level  slog.Level
}

// NewSlogReporter builds a reporter logging at warn level. A nil logger falls
// back to slog.Default().
func NewSlogReporter(logger *slog.Logger) *SlogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogReporter{Logger: logger, Level: slog.LevelWarn}
}

// Report implements render.Reporter.
func (r *SlogReporter) Report(event render.Event) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.LogAttrs(context.Background(), r.Level, "render problem", EventAttrs(event)...)
}

// PrometheusReporter counts render events by kind and theme.
type PrometheusReporter struct {
	events *prom.CounterVec
}

// NewPrometheusReporter constructs and registers the event counter. A nil
// registry gets a private one.
func NewPrometheusReporter(reg *prom.Registry) *PrometheusReporter {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	events := prom.NewCounterVec(prom.CounterOpts{
		Namespace: "themekit",
		Name:      "render_problems_total",
		Help:      "Recoverable render problems by kind and theme",
	}, []string{"kind", "theme"})
	reg.MustRegister(events)
	return &PrometheusReporter{events: events}
}

// Report implements render.Reporter.
func (r *PrometheusReporter) Report(event render.Event) {
	if r == nil || r.events == nil {
		return
	}
	r.events.WithLabelValues(string(event.Kind), event.ThemeID).Inc()
}

// Multi fans an event out to every non-nil reporter in order.
func Multi(reporters ...render.Reporter) render.Reporter {
	out := make([]render.Reporter, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			out = append(out, r)
		}
	}
	return multiReporter(out)
}

type multiReporter []render.Reporter

func (m multiReporter) Report(event render.Event) {
	for _, r := range m {
		r.Report(event)
	}
}

// Recorder keeps every event it receives. Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []render.Event
}

// Report implements render.Reporter.
func (r *Recorder) Report(event render.Event) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []render.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]render.Event(nil), r.events...)
}

// Kinds returns the kinds of the recorded events in order.
func (r *Recorder) Kinds() []render.EventKind {
	events := r.Events()
	kinds := make([]render.EventKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	return kinds
}

// WriteMetrics writes every metric family collected by gatherer in the
// Prometheus text exposition format.
func WriteMetrics(w io.Writer, gatherer prom.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("observe: gather metrics: %w", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("observe: write metrics: %w", err)
		}
	}
	return nil
}
