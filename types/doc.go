// Package types provides shared types and error definitions for the
// related-postgres-connection adapter.
//
// This is a leaf package with zero adapter imports to prevent import cycles.
// All packages in the module can safely import this package.
//
// # Types
//
// ConnState tracks the connection lifecycle:
//
//	Disconnected -> Connecting -> Connected <-> TransactionOpen
//	                                  |
//	                             Ended / Killed (terminal)
//
// LockMode enumerates the supported table lock granularities:
//
//	const (
//	    LockWrite     LockMode = iota // SHARE ROW EXCLUSIVE
//	    LockExclusive                 // ACCESS EXCLUSIVE
//	)
//
// QueryContext is the immutable per-execution record consumed by the
// query executor, and Result is the shaped driver response.
//
// # Errors
//
// Sentinel errors form the stable taxonomy the pool and ORM layers match on:
//
//   - ErrInvalidCredentials: Authentication rejected by the server
//   - ErrFailedToConnect: Transient network-level connect failure
//   - ErrDuplicateKey: Unique constraint violation
//   - ErrUnexpectedResult: Driver returned a malformed or missing result
//   - ErrInvalidArgument: Caller error (bad lock mode, bad identifier)
//   - ErrConnectionEnded: Operation attempted on an ended or killed connection
//
// Translated driver errors wrap both the sentinel kind and the original
// driver error, so errors.Is works against either.
package types
