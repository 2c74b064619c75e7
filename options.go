package sortego

type options struct {
	logger  *Logger
	metrics MetricsCollector
	opsRate float64
	burst   int
}

func defaultOptions() options {
	return options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

// Option configures Set constructor behavior.
//
// Options exist to avoid exploding the constructor surface; the zero set of
// options yields a silent, unmetered, unthrottled set.
type Option func(*options)

// WithLogger configures structured logging for set operations.
//
// If nil is passed, the noop logger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithAdmissionRate caps the operation rate on the set's gate. Calls over
// budget fail fast with ErrThrottled before the gate is attempted, in the
// same spirit as the fail-fast contention policy: latency-sensitive
// embedders get an immediate signal instead of a queue.
//
// A non-positive opsPerSec disables admission control (the default).
func WithAdmissionRate(opsPerSec float64, burst int) Option {
	return func(o *options) {
		o.opsRate = opsPerSec
		o.burst = burst
	}
}
