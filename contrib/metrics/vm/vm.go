package vm

import (
	"io"
	"net/http"

	"github.com/VictoriaMetrics/metrics"

	"github.com/linaGirl/related-postgres-connection/types"
)

// Option configures a Collector.
type Option func(*Collector)

// WithPrefix sets the metric name prefix.
//
// Default: "relatedpg"
//
// Parameters:
//   - prefix: The prefix for all metric names
//
// Returns:
//   - Option: Configuration option
func WithPrefix(prefix string) Option {
	return func(c *Collector) {
		c.prefix = prefix
	}
}

// WithSet uses a caller-managed metrics set instead of registering a new
// one globally.
//
// Parameters:
//   - set: The metrics set to create metrics in
//
// Returns:
//   - Option: Configuration option
func WithSet(set *metrics.Set) Option {
	return func(c *Collector) {
		c.set = set
	}
}

// Collector implements types.MetricsCollector on VictoriaMetrics.
type Collector struct {
	prefix string
	set    *metrics.Set

	connectTotal      *metrics.Counter
	connectErrors     *metrics.Counter
	connectionsKilled *metrics.Counter
	connectionsEnded  *metrics.Counter

	queryTotal    *metrics.Counter
	queryErrors   *metrics.Counter
	queryRetries  *metrics.Counter
	queryDuration *metrics.Histogram

	transactionsBegun  *metrics.Counter
	transactionsClosed *metrics.Counter
	locksTotal         *metrics.Counter
}

// Compile-time assertion that Collector implements types.MetricsCollector.
var _ types.MetricsCollector = (*Collector)(nil)

// New creates a new VictoriaMetrics-based metrics collector.
//
// Unless WithSet is used, the collector creates its own metrics.Set and
// registers it globally. All metrics are pre-created at initialization for
// optimal performance.
//
// Parameters:
//   - opts: Configuration options (e.g., WithPrefix)
//
// Returns:
//   - *Collector: A new metrics collector ready for use
func New(opts ...Option) *Collector {
	c := &Collector{prefix: "relatedpg"}

	for _, opt := range opts {
		opt(c)
	}

	if c.set == nil {
		c.set = metrics.NewSet()
		metrics.RegisterSet(c.set)
	}

	c.initMetrics()

	return c
}

// initMetrics pre-creates all metrics with the configured prefix.
func (c *Collector) initMetrics() {
	p := c.prefix

	c.connectTotal = c.set.NewCounter(p + "_connect_total")
	c.connectErrors = c.set.NewCounter(p + "_connect_errors_total")
	c.connectionsKilled = c.set.NewCounter(p + "_connections_killed_total")
	c.connectionsEnded = c.set.NewCounter(p + "_connections_ended_total")

	c.queryTotal = c.set.NewCounter(p + "_query_total")
	c.queryErrors = c.set.NewCounter(p + "_query_errors_total")
	c.queryRetries = c.set.NewCounter(p + "_query_retries_total")
	c.queryDuration = c.set.NewHistogram(p + "_query_duration_seconds")

	c.transactionsBegun = c.set.NewCounter(p + "_transactions_begun_total")
	c.transactionsClosed = c.set.NewCounter(p + "_transactions_closed_total")
	c.locksTotal = c.set.NewCounter(p + "_locks_total")
}

// Set returns the underlying metrics set.
func (c *Collector) Set() *metrics.Set {
	return c.set
}

// Handler returns an HTTP handler that exposes metrics in Prometheus format.
//
// Example:
//
//	http.HandleFunc("/metrics", collector.Handler)
func (c *Collector) Handler(w http.ResponseWriter, _ *http.Request) {
	c.set.WritePrometheus(w)
}

// WritePrometheus writes all metrics in Prometheus format to the given writer.
//
// Parameters:
//   - w: The writer to write metrics to
func (c *Collector) WritePrometheus(w io.Writer) {
	c.set.WritePrometheus(w)
}

// ----------------------
// Connection Lifecycle
// ----------------------

// IncConnectTotal increments the connection attempt counter.
func (c *Collector) IncConnectTotal() {
	c.connectTotal.Inc()
}

// IncConnectError increments the failed connection attempt counter.
func (c *Collector) IncConnectError() {
	c.connectErrors.Inc()
}

// IncConnectionKilled increments the killed connection counter.
func (c *Collector) IncConnectionKilled() {
	c.connectionsKilled.Inc()
}

// IncConnectionEnded increments the gracefully ended connection counter.
func (c *Collector) IncConnectionEnded() {
	c.connectionsEnded.Inc()
}

// ----------------------
// Query Execution
// ----------------------

// IncQueryTotal increments the total query counter.
func (c *Collector) IncQueryTotal() {
	c.queryTotal.Inc()
}

// IncQueryError increments the query error counter.
func (c *Collector) IncQueryError() {
	c.queryErrors.Inc()
}

// IncQueryRetry increments the nil-result retry counter.
func (c *Collector) IncQueryRetry() {
	c.queryRetries.Inc()
}

// ObserveQueryDuration records a query duration in seconds.
func (c *Collector) ObserveQueryDuration(seconds float64) {
	c.queryDuration.Update(seconds)
}

// ----------------------
// Transactions and Locks
// ----------------------

// IncTransactionBegun increments the transactions started counter.
func (c *Collector) IncTransactionBegun() {
	c.transactionsBegun.Inc()
}

// IncTransactionClosed increments the transactions concluded counter.
func (c *Collector) IncTransactionClosed() {
	c.transactionsClosed.Inc()
}

// IncLockTotal increments the table lock counter.
func (c *Collector) IncLockTotal() {
	c.locksTotal.Inc()
}
