// Package pg provides the PostgreSQL driver adapter for the connection layer.
//
// This package defines the Driver interface the connection lifecycle builds
// on, plus an implementation backed by github.com/jackc/pgx/v5. The adapter
// translates pgx rows and command tags into the shared types.Result form and
// surfaces fatal connection loss on an asynchronous notification channel.
//
// # Basic Usage
//
//	cfg := pg.Config{
//	    Host:     "localhost",
//	    Database: "app",
//	    Password: "secret",
//	}
//
//	driver := pg.New(cfg)
//	conn, _ := relatedpg.New(driver)
//	err := conn.Connect(ctx)
//
// Port defaults to 5432 and user to "postgres" when unset.
//
// # Asynchronous Errors
//
// The server can drop a connection outside of a request/response cycle.
// When the adapter detects that the underlying pgx connection has died, it
// publishes the error on the channel returned by Notify exactly once. The
// connection lifecycle consumes this channel to kill the connection and
// evict it from the pool.
package pg
