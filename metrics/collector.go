// Package metrics collects operation counters and timings for the store
// on a private Prometheus registry. Metrics are gathered in-process by
// the reporting harness; no HTTP endpoint is exposed.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "fsindex"

// Collector aggregates store metrics. A nil *Collector is valid and
// turns every method into a no-op, so instrumentation can stay
// unconditional at the call sites.
type Collector struct {
	registry *prometheus.Registry

	opCounter  *prometheus.CounterVec
	opDuration *prometheus.HistogramVec
	liveFiles  prometheus.Gauge
	indexBytes prometheus.Gauge
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),

		opCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Total number of store operations by type.",
		}, []string{"op"}),

		opDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Store operation latency by type.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"op"}),

		liveFiles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_files",
			Help:      "Number of files currently held in the flat record table.",
		}),

		indexBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "index_memory_bytes",
			Help:      "Estimated memory footprint of the secondary indexes.",
		}),
	}

	c.registry.MustRegister(c.opCounter, c.opDuration, c.liveFiles, c.indexBytes)

	return c
}

// ObserveOp records one completed operation and its duration.
func (c *Collector) ObserveOp(op string, elapsed time.Duration) {
	if c == nil {
		return
	}

	c.opCounter.WithLabelValues(op).Inc()
	c.opDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// SetLiveFiles updates the live file gauge.
func (c *Collector) SetLiveFiles(count int) {
	if c == nil {
		return
	}

	c.liveFiles.Set(float64(count))
}

// SetIndexBytes updates the index footprint gauge.
func (c *Collector) SetIndexBytes(bytes int64) {
	if c == nil {
		return
	}

	c.indexBytes.Set(float64(bytes))
}

// Gather snapshots the current metric families.
func (c *Collector) Gather() ([]*dto.MetricFamily, error) {
	if c == nil {
		return nil, nil
	}

	return c.registry.Gather()
}
