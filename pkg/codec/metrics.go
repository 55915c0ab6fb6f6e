package codec

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	appErrors "github.com/randomairborne/google-classroom/pkg/errors"
)

const outcomeOK = "ok"

// Metrics records codec activity in a private Prometheus registry and keeps
// running totals for snapshots. A nil *Metrics records nothing.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec

	operationCount uint64
	failureCount   uint64
	durationTotal  uint64
}

// Snapshot summarises codec activity since the Metrics were created.
type Snapshot struct {
	Operations        uint64  `json:"operations"`
	Failures          uint64  `json:"failures"`
	AverageDurationMs float64 `json:"average_duration_ms"`
}

// NewMetrics registers the codec collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "classroom_codec_operations_total",
		Help: "Total number of codec operations by outcome",
	}, []string{"operation", "resource", "outcome"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "classroom_codec_duration_seconds",
		Help:    "Duration of codec operations in seconds",
		Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
	}, []string{"operation", "resource"})

	registry.MustRegister(operations, duration)

	return &Metrics{
		registry:   registry,
		operations: operations,
		duration:   duration,
	}
}

// Registry exposes the underlying registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// WriteTextfile writes the registry in the Prometheus text format to path,
// replacing any previous file atomically, for a node exporter textfile
// collector to pick up.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) observe(operation, resource string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	outcome := outcomeOK
	if err != nil {
		outcome = appErrors.FromError(err).Code
		atomic.AddUint64(&m.failureCount, 1)
	}
	m.operations.WithLabelValues(operation, resource, outcome).Inc()
	m.duration.WithLabelValues(operation, resource).Observe(duration.Seconds())
	atomic.AddUint64(&m.operationCount, 1)
	atomic.AddUint64(&m.durationTotal, uint64(duration.Nanoseconds()))
}

// Snapshot returns the running totals.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	ops := atomic.LoadUint64(&m.operationCount)
	total := atomic.LoadUint64(&m.durationTotal)

	var avg float64
	if ops > 0 {
		avg = float64(total) / float64(ops) / float64(time.Millisecond)
	}
	return Snapshot{
		Operations:        ops,
		Failures:          atomic.LoadUint64(&m.failureCount),
		AverageDurationMs: avg,
	}
}
