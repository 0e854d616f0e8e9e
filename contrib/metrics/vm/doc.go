// Package vm provides a VictoriaMetrics-based implementation of the
// MetricsCollector interface.
//
// This package uses github.com/VictoriaMetrics/metrics for lightweight,
// high-performance Prometheus-compatible metrics collection.
//
// # Basic Usage
//
// Create a collector with the default prefix "relatedpg":
//
//	collector := vm.New()
//	conn, _ := relatedpg.New(driver, relatedpg.WithMetrics(collector))
//
// # Custom Prefix
//
// Use WithPrefix to customize the metric name prefix:
//
//	collector := vm.New(vm.WithPrefix("myapp"))
//
// This produces metrics like:
//   - myapp_query_total
//   - myapp_query_duration_seconds
//
// # Exposing Metrics
//
// Use the Handler method to expose metrics via HTTP:
//
//	http.HandleFunc("/metrics", collector.Handler)
//	http.ListenAndServe(":8080", nil)
//
// Or use WritePrometheus to write metrics to a custom writer.
//
// # Metrics Provided
//
// Connection lifecycle:
//   - {prefix}_connect_total - Counter of connection attempts
//   - {prefix}_connect_errors_total - Counter of failed connection attempts
//   - {prefix}_connections_killed_total - Counter of connections killed by async driver errors
//   - {prefix}_connections_ended_total - Counter of gracefully ended connections
//
// Query execution:
//   - {prefix}_query_total - Counter of queries
//   - {prefix}_query_errors_total - Counter of query errors
//   - {prefix}_query_retries_total - Counter of one-shot nil-result retries
//   - {prefix}_query_duration_seconds - Histogram of query latencies
//
// Transactions and locks:
//   - {prefix}_transactions_begun_total - Counter of transactions started
//   - {prefix}_transactions_closed_total - Counter of transactions committed or rolled back
//   - {prefix}_locks_total - Counter of table lock statements
//
// # Performance Notes
//
// All metrics are pre-created at initialization time using the NewXXX
// pattern (instead of GetOrCreateXXX) for optimal performance in hot paths,
// as recommended by the VictoriaMetrics documentation.
package vm
