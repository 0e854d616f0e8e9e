package relatedpg

// PoolHooks is the notification contract toward the external connection pool.
//
// The pool owns checkout and rotation; the adapter's only duty toward it is
// to signal ownership changes. Implementations MUST be safe for concurrent
// use: Remove can fire from the asynchronous kill path while Detach or
// Attach runs on the caller's goroutine.
type PoolHooks interface {
	// Detach removes the connection from shared rotation for the duration
	// of a transaction. The pool must not hand the connection to another
	// caller until Attach is called.
	//
	// Parameters:
	//   - connID: The connection's unique identifier
	Detach(connID string)

	// Attach returns the connection to shared rotation after a transaction
	// concludes.
	//
	// Parameters:
	//   - connID: The connection's unique identifier
	Attach(connID string)

	// Remove evicts the connection from the pool permanently. Called when
	// the connection is killed by an asynchronous driver error; the
	// connection is unusable and must be discarded.
	//
	// Parameters:
	//   - connID: The connection's unique identifier
	Remove(connID string)
}
