package pg

import (
	"context"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/linaGirl/related-postgres-connection/types"
)

// Driver is the low-level driver contract required by the connection layer.
//
// Implementations own exactly one server connection. Query and Close must
// not be called concurrently; the connection layer serializes access.
type Driver interface {
	// Connect opens the underlying server connection.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - error: The raw driver error on failure, untranslated
	Connect(ctx context.Context) error

	// Query executes a statement with driver-native parameter binding.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//   - sql: Statement text with $n placeholders
	//   - values: Ordered bound values
	//
	// Returns:
	//   - *types.Result: The tagged result, nil only on error
	//   - error: The raw driver error, untranslated
	Query(ctx context.Context, sql string, values []any) (*types.Result, error)

	// Ping performs a server round trip to verify the connection is alive.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - error: The raw driver error when the round trip fails
	Ping(ctx context.Context) error

	// Close terminates the connection, returning once the server confirms.
	Close(ctx context.Context) error

	// Notify returns the asynchronous error channel.
	//
	// At most one error is ever delivered: the fatal condition that killed
	// the connection outside of a request/response cycle.
	Notify() <-chan error
}

// pgxDriver implements Driver on a single pgx connection.
type pgxDriver struct {
	cfg        Config
	conn       *pgx.Conn
	notify     chan error
	notifyOnce sync.Once
}

// Compile-time assertion that pgxDriver implements Driver.
var _ Driver = (*pgxDriver)(nil)

// New creates a pgx-backed driver for the given config.
//
// Defaults (port 5432, user "postgres") are applied here, before the
// connection string is built.
//
// Parameters:
//   - cfg: Connection attributes, host is required
//
// Returns:
//   - Driver: An unconnected driver; call Connect before Query
func New(cfg Config) Driver {
	return &pgxDriver{
		cfg:    cfg.withDefaults(),
		notify: make(chan error, 1),
	}
}

// Connect opens the underlying pgx connection.
func (d *pgxDriver) Connect(ctx context.Context) error {
	if err := d.cfg.Validate(); err != nil {
		return err
	}

	conn, err := pgx.Connect(ctx, d.cfg.dsn())
	if err != nil {
		return err
	}
	d.conn = conn

	return nil
}

// Query executes a statement and collects the tagged result.
func (d *pgxDriver) Query(ctx context.Context, sql string, values []any) (*types.Result, error) {
	rows, err := d.conn.Query(ctx, sql, values...)
	if err != nil {
		d.maybeNotify(err)
		return nil, err
	}

	fields := rows.FieldDescriptions()
	collected := make([]types.Row, 0)
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			rows.Close()
			return nil, err
		}

		row := make(types.Row, len(fields))
		for i, f := range fields {
			row[f.Name] = vals[i]
		}
		collected = append(collected, row)
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		d.maybeNotify(err)
		return nil, err
	}

	tag := rows.CommandTag()

	return &types.Result{
		Command:  commandOf(tag.String()),
		RowCount: tag.RowsAffected(),
		Rows:     collected,
	}, nil
}

// Ping verifies the connection with a server round trip.
func (d *pgxDriver) Ping(ctx context.Context) error {
	err := d.conn.Ping(ctx)
	if err != nil {
		d.maybeNotify(err)
	}

	return err
}

// Close terminates the connection gracefully.
func (d *pgxDriver) Close(ctx context.Context) error {
	if d.conn == nil {
		return nil
	}

	return d.conn.Close(ctx)
}

// Notify returns the asynchronous error channel.
func (d *pgxDriver) Notify() <-chan error {
	return d.notify
}

// maybeNotify publishes err on the notification channel when the underlying
// connection has died. Request-scoped errors (bad SQL, constraint
// violations) leave the connection alive and are not published.
func (d *pgxDriver) maybeNotify(err error) {
	if d.conn == nil || !d.conn.IsClosed() {
		return
	}

	d.notifyOnce.Do(func() {
		d.notify <- err
	})
}

// commandOf extracts the leading keyword of a command tag,
// e.g. "INSERT 0 1" -> "INSERT".
func commandOf(tag string) string {
	if i := strings.IndexByte(tag, ' '); i >= 0 {
		return tag[:i]
	}

	return tag
}
