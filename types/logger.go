package types

// Logger defines the structured logging methods used by the adapter.
//
// The method set is compatible with zap.SugaredLogger's key-value style;
// use contrib/logging/zap to wrap a SugaredLogger directly.
//
// Implementations must be safe for concurrent use.
type Logger interface {
	// Debug logs a message with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message with optional key-value pairs.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message with optional key-value pairs.
	Error(msg string, keysAndValues ...any)
}
