package types

// MetricsCollector defines methods for collecting operational metrics.
//
// Implementations should be thread-safe as methods may be called concurrently
// from different connections.
//
// Example usage with VictoriaMetrics (via contrib/metrics/vm):
//
//	collector := vm.New(vm.WithPrefix("myapp"))
//	conn, _ := relatedpg.New(driver, relatedpg.WithMetrics(collector))
//
//	// Expose metrics via HTTP
//	http.HandleFunc("/metrics", collector.Handler)
type MetricsCollector interface {
	// ----------------------
	// Connection Lifecycle
	// ----------------------

	// IncConnectTotal increments the connection attempt counter.
	IncConnectTotal()

	// IncConnectError increments the failed connection attempt counter.
	IncConnectError()

	// IncConnectionKilled increments the counter of connections killed by
	// asynchronous driver errors.
	IncConnectionKilled()

	// IncConnectionEnded increments the counter of gracefully ended connections.
	IncConnectionEnded()

	// ----------------------
	// Query Execution
	// ----------------------

	// IncQueryTotal increments the total query counter.
	IncQueryTotal()

	// IncQueryError increments the query error counter.
	IncQueryError()

	// IncQueryRetry increments the counter of one-shot nil-result retries.
	IncQueryRetry()

	// ObserveQueryDuration records a query duration in seconds.
	ObserveQueryDuration(seconds float64)

	// ----------------------
	// Transactions and Locks
	// ----------------------

	// IncTransactionBegun increments the counter of transactions started.
	IncTransactionBegun()

	// IncTransactionClosed increments the counter of transactions committed
	// or rolled back.
	IncTransactionClosed()

	// IncLockTotal increments the table lock counter.
	IncLockTotal()
}
