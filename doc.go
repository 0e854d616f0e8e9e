// Package relatedpg provides the PostgreSQL connection adapter for the
// related ORM stack.
//
// The adapter sits between the higher-level pooling/ORM layer and the raw
// driver, presenting a stable, driver-agnostic contract for connecting,
// executing queries, managing transactions, locking tables, and escaping
// values. The pool checks a Connection out to exactly one caller at a time;
// within a connection, at most one query is in flight.
//
// # Basic Usage
//
//	driver := pg.New(pg.Config{Host: "localhost", Database: "app"})
//	conn, err := relatedpg.New(driver)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := conn.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.End(ctx)
//
//	rows, err := conn.Exec(ctx, types.QueryContext{
//	    SQL:    "SELECT id, name FROM users WHERE id = $1",
//	    Values: []any{42},
//	})
//
// # Result Shaping
//
// Exec shapes the driver result by command tag:
//
//   - SELECT resolves to []types.Row, possibly empty, never nil
//   - INSERT resolves to the first returned types.Row, or a nil Row when
//     nothing was returned
//   - any other command resolves to the raw *types.Result
//
// Queries marked ASTOrigin bypass shaping entirely and resolve with the raw
// result, since the upstream query builder handles its own decoding.
//
// # Error Handling
//
// Driver errors are translated through an ordered table into the sentinel
// taxonomy in the types package. Check with errors.Is:
//
//	_, err := conn.Exec(ctx, qc)
//	if errors.Is(err, types.ErrDuplicateKey) {
//	    // unique constraint violation
//	}
//
// Unknown driver errors pass through untranslated.
//
// # Asynchronous Failures
//
// The server can drop a connection at any time, outside of a
// request/response cycle. When the driver reports such a failure the
// connection translates the error, fails any in-flight query, transitions to
// the killed state, force-closes the handle, and finally notifies the pool
// hooks so the connection is evicted from rotation. A killed connection
// never accepts another query; subsequent calls fail fast without touching
// the driver.
//
// # Transactions
//
// Begin marks the connection as holding a transaction and detaches it from
// the pool, so it is not handed to another caller until Commit or Rollback
// re-attaches it:
//
//	if _, err := conn.Begin(ctx); err != nil { ... }
//	// ... work ...
//	if err := conn.Commit(ctx); err != nil { ... }
//
// # Literal Rendering
//
// Render inlines positional values into literal SQL text for diagnostics and
// non-parameterized paths. It is never the parameter-binding mechanism for
// security-sensitive paths; Exec always uses driver-native binding.
//
//	relatedpg.Render("SELECT * FROM t WHERE a = $1", []any{"x"})
//	// SELECT * FROM t WHERE a = 'x'
package relatedpg
