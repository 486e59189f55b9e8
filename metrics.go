package charstream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	truncFormat = "format"
	truncBuffer = "buffer"
)

// Metrics counts stream activity. A nil *Metrics records nothing. One
// Metrics may be shared by several streams.
type Metrics struct {
	calls         prometheus.Counter
	chunks        prometheus.Counter
	bytes         prometheus.Counter
	truncations   *prometheus.CounterVec
	writeFailures prometheus.Counter
}

// NewMetrics registers stream metrics with r. A nil r leaves them
// unregistered.
func NewMetrics(r prometheus.Registerer) *Metrics {
	return &Metrics{
		calls: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "charstream_calls_total",
			Help: "Total number of top-level render calls.",
		}),
		chunks: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "charstream_chunks_total",
			Help: "Total number of chunks delivered to targets.",
		}),
		bytes: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "charstream_bytes_total",
			Help: "Total number of bytes committed to targets.",
		}),
		truncations: promauto.With(r).NewCounterVec(prometheus.CounterOpts{
			Name: "charstream_truncations_total",
			Help: "Total number of truncated calls.",
		}, []string{"kind"}),
		writeFailures: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "charstream_write_failures_total",
			Help: "Total number of failed stream writes.",
		}),
	}
}

func (m *Metrics) call(committed int) {
	if m == nil {
		return
	}
	m.calls.Inc()
	m.bytes.Add(float64(committed))
}

func (m *Metrics) chunk() {
	if m == nil {
		return
	}
	m.chunks.Inc()
}

func (m *Metrics) truncated(kind string) {
	if m == nil {
		return
	}
	m.truncations.WithLabelValues(kind).Inc()
}

func (m *Metrics) writeFailed() {
	if m == nil {
		return
	}
	m.writeFailures.Inc()
}

// Calls returns the top-level call counter.
func (m *Metrics) Calls() prometheus.Counter { return m.calls }

// Chunks returns the delivered chunk counter.
func (m *Metrics) Chunks() prometheus.Counter { return m.chunks }

// Bytes returns the committed byte counter.
func (m *Metrics) Bytes() prometheus.Counter { return m.bytes }

// Truncations returns the truncation counter for kind, "format" or
// "buffer".
func (m *Metrics) Truncations(kind string) prometheus.Counter {
	return m.truncations.WithLabelValues(kind)
}

// WriteFailures returns the failed stream write counter.
func (m *Metrics) WriteFailures() prometheus.Counter { return m.writeFailures }
