package metrics

import (
	"sync"
	"time"
)

// Snapshot is a copy of the in-memory page and request counters.
type Snapshot struct {
	Requests           int
	Renders            int
	RenderErrors       int
	Fallbacks          int
	LastRenderDuration time.Duration
	LastBytes          int
}

// Recorder captures lightweight, in-memory metrics about page renders and
// forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats Snapshot
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{otel: otel}
}

// PageRender describes one landing page render.
type PageRender struct {
	Locale   string
	Duration time.Duration
	Bytes    int
	Fallback bool
	Err      error
}

// RecordPageRender counts a render, its size and whether the footer fell back.
func (r *Recorder) RecordPageRender(p PageRender) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.stats.Renders++
	r.stats.LastRenderDuration = p.Duration
	if p.Err != nil {
		r.stats.RenderErrors++
	} else {
		r.stats.LastBytes = p.Bytes
	}
	if p.Fallback {
		r.stats.Fallbacks++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPageRender(p)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.Requests++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// Renders returns the total renders recorded.
func (r *Recorder) Renders() int {
	return r.Snapshot().Renders
}

// Fallbacks returns how many renders used the footer fallback text.
func (r *Recorder) Fallbacks() int {
	return r.Snapshot().Fallbacks
}

func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}
