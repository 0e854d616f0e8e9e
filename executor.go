package relatedpg

import (
	"context"
	"time"

	"github.com/linaGirl/related-postgres-connection/types"
)

// queryOutcome carries a driver response across the executor's select.
type queryOutcome struct {
	res *types.Result
	err error
}

// Exec executes a query through the connection's driver handle and shapes
// the result by command tag.
//
// Shaping rules:
//   - AST-origin queries resolve with the raw *types.Result, unshaped
//   - SELECT resolves with []types.Row, possibly empty, never nil
//   - INSERT resolves with the first types.Row, or a nil Row when the
//     statement returned nothing
//   - any other command resolves with the raw *types.Result
//
// A nil driver result triggers exactly one silent retry before the query
// fails with types.ErrUnexpectedResult. Driver errors are translated into
// the sentinel taxonomy; unique violations surface as types.ErrDuplicateKey.
//
// Queries are accepted only in the connected or transaction states. A killed
// connection fails fast with the error that killed it, without contacting
// the driver.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - qc: The immutable per-execution record, consumed once
//
// Returns:
//   - any: The shaped result, per the rules above
//   - error: Translated driver error, or types.ErrConnectionEnded
func (c *Connection) Exec(ctx context.Context, qc types.QueryContext) (any, error) {
	return c.exec(ctx, qc, false)
}

func (c *Connection) exec(ctx context.Context, qc types.QueryContext, isRetry bool) (any, error) {
	c.mu.Lock()
	state := c.state
	killErr := c.killErr
	c.mu.Unlock()

	if state != types.StateConnected && state != types.StateTransactionOpen {
		if state == types.StateKilled && killErr != nil {
			return nil, killErr
		}

		return nil, types.ErrConnectionEnded
	}

	c.config.Metrics.IncQueryTotal()
	start := time.Now()

	outcomes := make(chan queryOutcome, 1)
	go func() {
		res, err := c.driver.Query(ctx, qc.SQL, qc.Values)
		outcomes <- queryOutcome{res: res, err: err}
	}()

	var out queryOutcome
	select {
	case <-c.killed:
		// The kill path takes precedence over a racing result: the pending
		// query fails with the error that killed the connection.
		c.config.Metrics.IncQueryError()
		c.mu.Lock()
		err := c.killErr
		c.mu.Unlock()
		if err == nil {
			err = types.ErrConnectionEnded
		}

		return nil, err
	case out = <-outcomes:
	}

	c.config.Metrics.ObserveQueryDuration(time.Since(start).Seconds())

	if out.err != nil {
		c.config.Metrics.IncQueryError()

		return nil, Translate(out.err)
	}

	if out.res == nil || out.res.Command == "" {
		if !isRetry {
			// Workaround for a transient empty-result condition observed in
			// the driver under load. Bounded to a single retry; this is not
			// an application-level retry policy.
			c.config.Metrics.IncQueryRetry()
			c.config.Logger.Warn("driver returned no result, retrying once",
				"conn", c.id,
			)

			return c.exec(ctx, qc, true)
		}

		c.config.Metrics.IncQueryError()
		c.config.Logger.Error("driver returned no result after retry",
			"conn", c.id,
			"mode", qc.Mode,
		)

		return nil, types.ErrUnexpectedResult
	}

	if qc.ASTOrigin {
		return out.res, nil
	}

	switch out.res.Command {
	case "SELECT":
		rows := out.res.Rows
		if rows == nil {
			rows = []types.Row{}
		}

		return rows, nil
	case "INSERT":
		if len(out.res.Rows) > 0 {
			return out.res.Rows[0], nil
		}

		return types.Row(nil), nil
	default:
		return out.res, nil
	}
}
