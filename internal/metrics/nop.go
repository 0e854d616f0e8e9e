// Package metrics provides internal metrics utilities for the adapter.
package metrics

import "github.com/linaGirl/related-postgres-connection/types"

// NopMetrics is a no-op metrics collector that discards all metrics.
//
// This is used as the default metrics collector when no collector is
// configured, avoiding nil checks throughout the codebase.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements types.MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNopMetrics creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A collector that discards all metrics
func NewNopMetrics() *NopMetrics {
	return &NopMetrics{}
}

// ----------------------
// Connection Lifecycle
// ----------------------

// IncConnectTotal discards the metric.
func (m *NopMetrics) IncConnectTotal() {}

// IncConnectError discards the metric.
func (m *NopMetrics) IncConnectError() {}

// IncConnectionKilled discards the metric.
func (m *NopMetrics) IncConnectionKilled() {}

// IncConnectionEnded discards the metric.
func (m *NopMetrics) IncConnectionEnded() {}

// ----------------------
// Query Execution
// ----------------------

// IncQueryTotal discards the metric.
func (m *NopMetrics) IncQueryTotal() {}

// IncQueryError discards the metric.
func (m *NopMetrics) IncQueryError() {}

// IncQueryRetry discards the metric.
func (m *NopMetrics) IncQueryRetry() {}

// ObserveQueryDuration discards the metric.
func (m *NopMetrics) ObserveQueryDuration(_ float64) {}

// ----------------------
// Transactions and Locks
// ----------------------

// IncTransactionBegun discards the metric.
func (m *NopMetrics) IncTransactionBegun() {}

// IncTransactionClosed discards the metric.
func (m *NopMetrics) IncTransactionClosed() {}

// IncLockTotal discards the metric.
func (m *NopMetrics) IncLockTotal() {}
