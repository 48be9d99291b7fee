package clustergo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    processCounter   prometheus.Counter
//	    processHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordProcess(size, iterations int, duration time.Duration, err error) {
//	    p.processCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordProcess is called after each clustering run.
	// size is the number of data points, iterations the number of
	// refinement passes, duration the total time taken. err is nil
	// if successful.
	RecordProcess(size, iterations int, duration time.Duration, err error)

	// RecordSnapshotSave is called after each snapshot save.
	RecordSnapshotSave(duration time.Duration, err error)

	// RecordSnapshotLoad is called after each snapshot load.
	RecordSnapshotLoad(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordProcess(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSnapshotSave(time.Duration, error)      {}
func (NoopMetricsCollector) RecordSnapshotLoad(time.Duration, error)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ProcessCount      atomic.Int64
	ProcessErrors     atomic.Int64
	ProcessTotalNanos atomic.Int64
	ProcessItems      atomic.Int64
	IterationsTotal   atomic.Int64
	SaveCount         atomic.Int64
	SaveErrors        atomic.Int64
	LoadCount         atomic.Int64
	LoadErrors        atomic.Int64
}

// RecordProcess implements MetricsCollector.
func (b *BasicMetricsCollector) RecordProcess(size, iterations int, duration time.Duration, err error) {
	b.ProcessCount.Add(1)
	b.ProcessItems.Add(int64(size))
	b.IterationsTotal.Add(int64(iterations))
	b.ProcessTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ProcessErrors.Add(1)
	}
}

// RecordSnapshotSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshotSave(duration time.Duration, err error) {
	b.SaveCount.Add(1)
	if err != nil {
		b.SaveErrors.Add(1)
	}
}

// RecordSnapshotLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshotLoad(duration time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ProcessCount:    b.ProcessCount.Load(),
		ProcessErrors:   b.ProcessErrors.Load(),
		ProcessAvgNanos: b.getAvgProcessNanos(),
		ProcessItems:    b.ProcessItems.Load(),
		IterationsTotal: b.IterationsTotal.Load(),
		SaveCount:       b.SaveCount.Load(),
		SaveErrors:      b.SaveErrors.Load(),
		LoadCount:       b.LoadCount.Load(),
		LoadErrors:      b.LoadErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgProcessNanos() int64 {
	count := b.ProcessCount.Load()
	if count == 0 {
		return 0
	}
	return b.ProcessTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ProcessCount    int64
	ProcessErrors   int64
	ProcessAvgNanos int64
	ProcessItems    int64
	IterationsTotal int64
	SaveCount       int64
	SaveErrors      int64
	LoadCount       int64
	LoadErrors      int64
}
