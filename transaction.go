package relatedpg

import (
	"context"

	"github.com/linaGirl/related-postgres-connection/types"
)

// Begin starts a transaction on the connection.
//
// The connection is marked as holding a transaction and detached from the
// pool before BEGIN is issued, so it cannot be handed to another caller
// while the transaction is open. The caller is responsible for concluding
// the transaction with Commit or Rollback, which re-attach the connection.
//
// Begin fails fast with types.ErrConnectionEnded when the connection has
// ended or been killed, without contacting the driver.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//
// Returns:
//   - any: The raw BEGIN result
//   - error: types.ErrConnectionEnded, types.ErrTransactionOpen, or a
//     translated driver error
func (c *Connection) Begin(ctx context.Context) (any, error) {
	c.mu.Lock()
	switch {
	case c.state.Terminal():
		c.mu.Unlock()

		return nil, types.ErrConnectionEnded
	case c.state == types.StateTransactionOpen:
		c.mu.Unlock()

		return nil, types.ErrTransactionOpen
	case c.state != types.StateConnected:
		c.mu.Unlock()

		return nil, types.ErrConnectionEnded
	}
	c.state = types.StateTransactionOpen
	c.mu.Unlock()

	if c.config.Pool != nil {
		c.config.Pool.Detach(c.id)
	}

	res, err := c.Exec(ctx, types.QueryContext{SQL: "BEGIN", Mode: "transaction"})
	if err != nil {
		c.reattach()

		return nil, err
	}

	c.config.Metrics.IncTransactionBegun()
	c.config.Logger.Debug("transaction started", "conn", c.id)

	return res, nil
}

// Commit concludes the open transaction and returns the connection to the
// pool.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//
// Returns:
//   - error: types.ErrNoTransaction if none is open, or a translated
//     driver error
func (c *Connection) Commit(ctx context.Context) error {
	return c.conclude(ctx, "COMMIT")
}

// Rollback aborts the open transaction and returns the connection to the
// pool.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//
// Returns:
//   - error: types.ErrNoTransaction if none is open, or a translated
//     driver error
func (c *Connection) Rollback(ctx context.Context) error {
	return c.conclude(ctx, "ROLLBACK")
}

// conclude issues the closing statement and re-attaches the connection.
func (c *Connection) conclude(ctx context.Context, stmt string) error {
	c.mu.Lock()
	if c.state != types.StateTransactionOpen {
		terminal := c.state.Terminal()
		c.mu.Unlock()
		if terminal {
			return types.ErrConnectionEnded
		}

		return types.ErrNoTransaction
	}
	c.mu.Unlock()

	_, err := c.Exec(ctx, types.QueryContext{SQL: stmt, Mode: "transaction"})

	// The transaction is over either way; re-attach unless the connection
	// was killed while the statement was in flight.
	c.reattach()

	if err != nil {
		return err
	}

	c.config.Metrics.IncTransactionClosed()
	c.config.Logger.Debug("transaction concluded", "conn", c.id, "stmt", stmt)

	return nil
}

// reattach restores the connected state and returns the connection to the
// pool, unless it has reached a terminal state in the meantime.
func (c *Connection) reattach() {
	c.mu.Lock()
	if c.state != types.StateTransactionOpen {
		c.mu.Unlock()

		return
	}
	c.state = types.StateConnected
	c.mu.Unlock()

	if c.config.Pool != nil {
		c.config.Pool.Attach(c.id)
	}
}
