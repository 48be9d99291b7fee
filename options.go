package clustergo

import (
	"log/slog"

	"github.com/hupe1980/clustergo/codec"
	"github.com/hupe1980/clustergo/persistence"
	"github.com/hupe1980/clustergo/resource"
)

type options struct {
	codec            codec.Codec
	compression      persistence.Compression
	metricsCollector MetricsCollector
	logger           *Logger
	controller       *resource.Controller
}

// Option configures Engine behavior.
type Option func(*options)

// WithCodec configures the codec used for snapshot payloads.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures the compression algorithm for snapshot
// payloads. Defaults to no compression.
func WithCompression(c persistence.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// clustering runs and snapshot operations. Pass nil to disable
// metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &clustergo.BasicMetricsCollector{}
//	engine := clustergo.New(algorithm, clustergo.WithMetricsCollector(metrics))
//	// ... run clustering ...
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Avg latency: %dns\n", stats.ProcessCount, stats.ProcessAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := clustergo.NewJSONLogger(slog.LevelInfo)
//	engine := clustergo.New(algorithm, clustergo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithResourceController configures a resource controller. When set,
// clustering runs compete for worker slots and snapshot IO is
// throttled according to the controller's limits.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		compression:      persistence.CompressionNone,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
