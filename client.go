package relatedpg

import "github.com/linaGirl/related-postgres-connection/types"

// Type aliases for convenience - re-export from types package.
type (
	ConnState        = types.ConnState
	LockMode         = types.LockMode
	QueryContext     = types.QueryContext
	Row              = types.Row
	Result           = types.Result
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// Re-export connection state constants for convenience.
const (
	StateDisconnected    = types.StateDisconnected
	StateConnecting      = types.StateConnecting
	StateConnected       = types.StateConnected
	StateTransactionOpen = types.StateTransactionOpen
	StateEnded           = types.StateEnded
	StateKilled          = types.StateKilled
)

// Re-export lock mode constants for convenience.
const (
	LockWrite     = types.LockWrite
	LockExclusive = types.LockExclusive
)
