// Package zap adapts a zap.SugaredLogger to the types.Logger interface.
//
// Example:
//
//	logger, _ := zap.NewProduction()
//	conn, _ := relatedpg.New(driver,
//	    relatedpg.WithLogger(zapadapter.Wrap(logger.Sugar())),
//	)
package zap

import (
	"go.uber.org/zap"

	"github.com/linaGirl/related-postgres-connection/types"
)

// Adapter forwards log calls to a zap.SugaredLogger using the *w key-value
// methods.
type Adapter struct {
	sugar *zap.SugaredLogger
}

// Compile-time assertion that Adapter implements types.Logger.
var _ types.Logger = (*Adapter)(nil)

// Wrap creates an Adapter around the given SugaredLogger.
//
// Parameters:
//   - sugar: The zap sugared logger to forward to
//
// Returns:
//   - *Adapter: A types.Logger backed by zap
func Wrap(sugar *zap.SugaredLogger) *Adapter {
	return &Adapter{sugar: sugar}
}

// Debug logs at debug level with key-value pairs.
func (a *Adapter) Debug(msg string, keysAndValues ...any) {
	a.sugar.Debugw(msg, keysAndValues...)
}

// Info logs at info level with key-value pairs.
func (a *Adapter) Info(msg string, keysAndValues ...any) {
	a.sugar.Infow(msg, keysAndValues...)
}

// Warn logs at warn level with key-value pairs.
func (a *Adapter) Warn(msg string, keysAndValues ...any) {
	a.sugar.Warnw(msg, keysAndValues...)
}

// Error logs at error level with key-value pairs.
func (a *Adapter) Error(msg string, keysAndValues ...any) {
	a.sugar.Errorw(msg, keysAndValues...)
}
