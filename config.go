package relatedpg

import (
	"github.com/linaGirl/related-postgres-connection/internal/logging"
	"github.com/linaGirl/related-postgres-connection/internal/metrics"
	"github.com/linaGirl/related-postgres-connection/types"
)

// connConfig holds the ambient configuration for a Connection.
type connConfig struct {
	Logger  types.Logger
	Metrics types.MetricsCollector
	Pool    PoolHooks
}

// defaultConfig returns a connConfig with no-op logger and metrics.
func defaultConfig() *connConfig {
	return &connConfig{
		Logger:  logging.NewNopLogger(),
		Metrics: metrics.NewNopMetrics(),
	}
}

// Option configures a Connection.
type Option func(*connConfig)

// WithLogger sets the structured logger.
//
// If not set, a no-op logger is used that discards all messages.
// The logger interface is compatible with zap.SugaredLogger; use
// contrib/logging/zap to wrap one directly.
//
// Parameters:
//   - logger: The logger implementation
//
// Returns:
//   - Option: Configuration option
func WithLogger(logger types.Logger) Option {
	return func(c *connConfig) {
		c.Logger = logger
	}
}

// WithMetrics sets the metrics collector.
//
// If not set, a no-op collector is used that discards all metrics.
// Use contrib/metrics/vm.New() for VictoriaMetrics integration.
//
// Parameters:
//   - collector: The metrics collector implementation
//
// Returns:
//   - Option: Configuration option
func WithMetrics(collector types.MetricsCollector) Option {
	return func(c *connConfig) {
		c.Metrics = collector
	}
}

// WithPoolHooks sets the pool notification hooks.
//
// The connection uses the hooks to signal "detach me" when a transaction
// starts, "attach me" when it concludes, and "remove me" when the connection
// is killed by an asynchronous driver error.
//
// Parameters:
//   - hooks: The pool hooks implementation
//
// Returns:
//   - Option: Configuration option
func WithPoolHooks(hooks PoolHooks) Option {
	return func(c *connConfig) {
		c.Pool = hooks
	}
}
