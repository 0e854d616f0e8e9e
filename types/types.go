// Package types provides shared types and errors for the
// related-postgres-connection adapter.
//
// This is a "leaf" package with no imports from other module packages,
// allowing it to be imported by any package without causing import cycles.
package types

import "errors"

// ConnState identifies the lifecycle state of a connection.
type ConnState int32

const (
	// StateDisconnected is the initial state before Connect is called.
	StateDisconnected ConnState = iota
	// StateConnecting is set while the driver handshake is in flight.
	StateConnecting
	// StateConnected means the connection accepts queries.
	StateConnected
	// StateTransactionOpen means the connection accepts queries and holds
	// an open transaction, detached from the pool.
	StateTransactionOpen
	// StateEnded is terminal: the connection was closed gracefully.
	StateEnded
	// StateKilled is terminal: the driver reported an asynchronous failure
	// and the connection was forcibly closed.
	StateKilled
)

// String returns the lower-case name of the state.
func (s ConnState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateTransactionOpen:
		return "transaction"
	case StateEnded:
		return "ended"
	case StateKilled:
		return "killed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state is Ended or Killed. A connection in a
// terminal state is permanently unusable and must not be returned to the pool.
func (s ConnState) Terminal() bool {
	return s == StateEnded || s == StateKilled
}

// LockMode identifies a table-level lock granularity.
//
// Only Write and Exclusive are supported; there is intentionally no read
// variant.
type LockMode int

const (
	// LockWrite acquires a SHARE ROW EXCLUSIVE lock: concurrent reads are
	// allowed, concurrent writes and other Write locks are not.
	LockWrite LockMode = iota
	// LockExclusive acquires an ACCESS EXCLUSIVE lock: no concurrent access
	// of any kind.
	LockExclusive
)

// Phrase returns the LOCK TABLE mode phrase for the lock mode.
//
// Returns:
//   - string: The SQL mode phrase, empty for unsupported modes
//   - bool: false if the mode is not a supported enumeration value
func (m LockMode) Phrase() (string, bool) {
	switch m {
	case LockWrite:
		return "SHARE ROW EXCLUSIVE", true
	case LockExclusive:
		return "ACCESS EXCLUSIVE", true
	default:
		return "", false
	}
}

// String returns the lock mode name.
func (m LockMode) String() string {
	switch m {
	case LockWrite:
		return "write"
	case LockExclusive:
		return "exclusive"
	default:
		return "invalid"
	}
}

// QueryContext is the immutable per-execution record consumed once by the
// query executor.
type QueryContext struct {
	// SQL is the statement text, with $n placeholders for bound values.
	SQL string

	// Values are the ordered bound values for the statement.
	Values []any

	// ASTOrigin marks a query produced by the upstream query builder.
	// Results of AST-origin queries are returned raw, without command-tag
	// shaping.
	ASTOrigin bool

	// Mode is an optional tag describing the execution context,
	// e.g. "transaction" for the BEGIN issued by the transaction manager.
	Mode string
}

// Row is a single result row keyed by column name.
type Row map[string]any

// Result is the driver response for one statement.
type Result struct {
	// Command is the leading keyword of the command tag reported by the
	// server, e.g. "SELECT", "INSERT", "LOCK".
	Command string

	// RowCount is the number of rows affected or returned, as reported by
	// the command tag.
	RowCount int64

	// Rows holds the returned rows in server order. Never nil for a
	// well-formed SELECT result, possibly empty.
	Rows []Row
}

// Sentinel errors forming the adapter's stable error taxonomy.
var (
	// ErrInvalidCredentials indicates the server rejected authentication.
	ErrInvalidCredentials = errors.New("relatedpg: invalid credentials")

	// ErrFailedToConnect indicates a network-level connect failure
	// (refused, reset, unreachable). Potentially retryable by the pool
	// layer, never retried by this adapter.
	ErrFailedToConnect = errors.New("relatedpg: failed to connect")

	// ErrDuplicateKey indicates a unique constraint violation. Always
	// surfaced to the caller, never retried.
	ErrDuplicateKey = errors.New("relatedpg: duplicate key violation")

	// ErrUnexpectedResult indicates the driver returned a nil or malformed
	// result even after the one-shot retry. This is fatal for the query.
	ErrUnexpectedResult = errors.New("relatedpg: unexpected query result")

	// ErrInvalidArgument indicates a caller error such as an unsupported
	// lock mode or an invalid identifier. Nothing was sent to the server.
	ErrInvalidArgument = errors.New("relatedpg: invalid argument")

	// ErrConnectionEnded indicates an operation was attempted on a
	// connection that has ended or been killed.
	ErrConnectionEnded = errors.New("relatedpg: connection ended")

	// ErrNilDriver indicates that a nil driver was provided.
	ErrNilDriver = errors.New("relatedpg: driver cannot be nil")

	// ErrAlreadyConnected indicates Connect was called twice.
	ErrAlreadyConnected = errors.New("relatedpg: already connected")

	// ErrTransactionOpen indicates Begin was called while a transaction is
	// already open on the connection.
	ErrTransactionOpen = errors.New("relatedpg: transaction already open")

	// ErrNoTransaction indicates Commit or Rollback was called without an
	// open transaction.
	ErrNoTransaction = errors.New("relatedpg: no open transaction")
)

// TranslatedError wraps a driver error together with the taxonomy kind the
// error translator mapped it to.
//
// errors.Is matches both the sentinel kind and the original driver error.
type TranslatedError struct {
	// Kind is the sentinel error from the taxonomy above.
	Kind error

	// Cause is the original driver error.
	Cause error
}

// Error implements the error interface.
func (e *TranslatedError) Error() string {
	return e.Kind.Error() + ": " + e.Cause.Error()
}

// Unwrap returns the wrapped errors for errors.Is/As compatibility.
func (e *TranslatedError) Unwrap() []error {
	return []error{e.Kind, e.Cause}
}
