package sortego

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordAdd is called after each add operation.
	// duration is the total time taken, err is nil if successful.
	RecordAdd(duration time.Duration, err error)

	// RecordRemove is called after each remove operation.
	RecordRemove(duration time.Duration, err error)

	// RecordAppendBucket is called after each bulk-load operation.
	// length is the payload length.
	RecordAppendBucket(length int, duration time.Duration, err error)

	// RecordRead is called after each read operation
	// (find-index, at, slice, size, to-list, debug).
	RecordRead(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(time.Duration, error)               {}
func (NoopMetricsCollector) RecordRemove(time.Duration, error)            {}
func (NoopMetricsCollector) RecordAppendBucket(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordRead(time.Duration, error)              {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount          atomic.Int64
	AddErrors         atomic.Int64
	AddTotalNanos     atomic.Int64
	RemoveCount       atomic.Int64
	RemoveErrors      atomic.Int64
	RemoveTotalNanos  atomic.Int64
	AppendBucketCount atomic.Int64
	AppendBucketItems atomic.Int64
	AppendBucketFails atomic.Int64
	ReadCount         atomic.Int64
	ReadErrors        atomic.Int64
	ReadTotalNanos    atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(duration time.Duration, err error) {
	b.AddCount.Add(1)
	b.AddTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AddErrors.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(duration time.Duration, err error) {
	b.RemoveCount.Add(1)
	b.RemoveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RemoveErrors.Add(1)
	}
}

// RecordAppendBucket implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAppendBucket(length int, duration time.Duration, err error) {
	b.AppendBucketCount.Add(1)
	b.AppendBucketItems.Add(int64(length))
	if err != nil {
		b.AppendBucketFails.Add(1)
	}
}

// RecordRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRead(duration time.Duration, err error) {
	b.ReadCount.Add(1)
	b.ReadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ReadErrors.Add(1)
	}
}
