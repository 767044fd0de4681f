package testsupport

import (
	"github.com/goliatone/go-themekit/pkg/observe"
)

// NewRecorder returns a reporter that keeps every render event.
func NewRecorder() *observe.Recorder {
	return &observe.Recorder{}
}
