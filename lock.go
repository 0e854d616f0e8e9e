package relatedpg

import (
	"context"
	"fmt"

	"github.com/linaGirl/related-postgres-connection/types"
)

// Lock acquires a table-level lock on the given table.
//
// Only types.LockWrite and types.LockExclusive are supported; any other
// mode fails with types.ErrInvalidArgument before anything is sent to the
// server. Schema is optional; when set, both schema and table are escaped
// as identifiers.
//
// The statement runs through the standard query path, so it inherits the
// same error translation and retry behavior as any other query. The lock is
// held until the surrounding transaction concludes.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - schema: Optional schema name, empty for the search path default
//   - table: Table name (required)
//   - mode: The lock granularity
//
// Returns:
//   - any: The raw LOCK result
//   - error: types.ErrInvalidArgument for bad input, or whatever the query
//     path returns
func (c *Connection) Lock(ctx context.Context, schema, table string, mode types.LockMode) (any, error) {
	phrase, ok := mode.Phrase()
	if !ok {
		return nil, fmt.Errorf("%w: unsupported lock mode %d", types.ErrInvalidArgument, int(mode))
	}

	target, err := EscapeIdentifier(table)
	if err != nil {
		return nil, err
	}

	if schema != "" {
		prefix, err := EscapeIdentifier(schema)
		if err != nil {
			return nil, err
		}
		target = prefix + "." + target
	}

	stmt := "LOCK TABLE " + target + " IN " + phrase + " MODE;"

	c.config.Metrics.IncLockTotal()
	c.config.Logger.Debug("locking table",
		"conn", c.id,
		"table", target,
		"mode", mode.String(),
	)

	return c.Exec(ctx, types.QueryContext{SQL: stmt})
}
