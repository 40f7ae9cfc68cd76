package metrics

import (
	"time"

	"github.com/jsamuelsen/logodir/internal/ports"
)

// NoopRecorder discards everything. The CLI uses it.
type NoopRecorder struct{}

// NewNoopRecorder creates a NoopRecorder.
func NewNoopRecorder() *NoopRecorder {
	return &NoopRecorder{}
}

func (*NoopRecorder) RecordSearch(bool, int)                              {}
func (*NoopRecorder) RecordLookup(string)                                 {}
func (*NoopRecorder) RecordSnippet(string)                                {}
func (*NoopRecorder) RecordCatalogLoad(string, int, time.Duration, error) {}
func (*NoopRecorder) RecordCacheLookup(bool)                              {}

var _ ports.MetricsRecorder = (*NoopRecorder)(nil)
