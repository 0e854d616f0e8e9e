package relatedpg

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/linaGirl/related-postgres-connection/adapter/pg"
	"github.com/linaGirl/related-postgres-connection/types"
)

// forceCloseTimeout bounds the handle close on the asynchronous kill path,
// where no caller context is available.
const forceCloseTimeout = 5 * time.Second

// Connection is a single database connection owned by exactly one caller at
// a time.
//
// The pool enforces single ownership externally; within a connection, at
// most one query is in flight and callers serialize their own requests.
// The asynchronous kill path is the only internal concurrency: a driver
// error can arrive at any time, fail the pending query, and transition the
// connection to the killed state.
type Connection struct {
	id     string
	driver pg.Driver
	config *connConfig

	mu      sync.Mutex
	state   types.ConnState
	killErr error

	// killed is closed exactly once when an asynchronous driver error
	// arrives. Closing it cancels the in-flight query before the pool is
	// notified, keeping the failure ordering deterministic.
	killed   chan struct{}
	killOnce sync.Once

	// done stops the notification monitor on graceful end.
	done     chan struct{}
	doneOnce sync.Once
}

// New creates a Connection on the given driver.
//
// The connection starts disconnected; call Connect before executing queries.
//
// Parameters:
//   - driver: The low-level driver handle (required)
//   - opts: Optional configuration (logger, metrics, pool hooks)
//
// Returns:
//   - *Connection: A new connection in the disconnected state
//   - error: types.ErrNilDriver if driver is nil
func New(driver pg.Driver, opts ...Option) (*Connection, error) {
	if driver == nil {
		return nil, types.ErrNilDriver
	}

	config := defaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	return &Connection{
		id:     uuid.NewString(),
		driver: driver,
		config: config,
		state:  types.StateDisconnected,
		killed: make(chan struct{}),
		done:   make(chan struct{}),
	}, nil
}

// ID returns the connection's unique identifier, as passed to pool hooks.
func (c *Connection) ID() string {
	return c.id
}

// State returns the current lifecycle state.
func (c *Connection) State() types.ConnState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Connect opens the underlying driver handle.
//
// On success the connection transitions to the connected state and starts
// watching the driver's asynchronous error channel. On failure the error is
// translated into the sentinel taxonomy (invalid credentials, failed to
// connect) and the connection returns to the disconnected state.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//
// Returns:
//   - error: nil on success, translated driver error on failure
func (c *Connection) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.state != types.StateDisconnected {
		st := c.state
		c.mu.Unlock()
		if st.Terminal() {
			return types.ErrConnectionEnded
		}

		return types.ErrAlreadyConnected
	}
	c.state = types.StateConnecting
	c.mu.Unlock()

	c.config.Metrics.IncConnectTotal()

	if err := c.driver.Connect(ctx); err != nil {
		c.mu.Lock()
		c.state = types.StateDisconnected
		c.mu.Unlock()

		c.config.Metrics.IncConnectError()
		translated := Translate(err)
		c.config.Logger.Error("connect failed",
			"conn", c.id,
			"error", translated.Error(),
		)

		return translated
	}

	c.mu.Lock()
	c.state = types.StateConnected
	c.mu.Unlock()

	c.config.Logger.Debug("connected", "conn", c.id)
	go c.monitor()

	return nil
}

// End requests a graceful close and returns once the driver confirms
// termination.
//
// Ending an already killed or ended connection is a benign no-op: there is
// nothing left to close.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//
// Returns:
//   - error: nil on success or no-op, driver error if the close fails
func (c *Connection) End(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Terminal() {
		c.mu.Unlock()

		return nil
	}
	if c.state == types.StateDisconnected {
		c.state = types.StateEnded
		c.mu.Unlock()

		return nil
	}
	c.state = types.StateEnded
	c.mu.Unlock()

	c.doneOnce.Do(func() { close(c.done) })

	err := c.driver.Close(ctx)
	c.config.Metrics.IncConnectionEnded()
	c.config.Logger.Debug("connection ended", "conn", c.id)

	return err
}

// Ping verifies the connection with a driver round trip.
//
// Intended for the pool's validation hook before handing the connection to
// a caller. Like Exec, it is accepted only in the connected or transaction
// states; a killed connection fails fast with the error that killed it.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//
// Returns:
//   - error: nil if the server responded, a translated driver error, or
//     types.ErrConnectionEnded
func (c *Connection) Ping(ctx context.Context) error {
	c.mu.Lock()
	state := c.state
	killErr := c.killErr
	c.mu.Unlock()

	if state != types.StateConnected && state != types.StateTransactionOpen {
		if state == types.StateKilled && killErr != nil {
			return killErr
		}

		return types.ErrConnectionEnded
	}

	if err := c.driver.Ping(ctx); err != nil {
		return Translate(err)
	}

	return nil
}

// monitor watches the driver's asynchronous error channel until the
// connection ends or a fatal error arrives.
func (c *Connection) monitor() {
	select {
	case err, ok := <-c.driver.Notify():
		if !ok {
			return
		}
		c.kill(Translate(err))
	case <-c.done:
	}
}

// kill transitions the connection to the killed state.
//
// Ordering is fixed: the pending query is cancelled first (by closing the
// killed channel), then the handle is force-closed, then the pool is
// notified to evict the connection.
func (c *Connection) kill(err error) {
	c.killOnce.Do(func() {
		c.mu.Lock()
		if c.state == types.StateEnded {
			c.mu.Unlock()

			return
		}
		c.state = types.StateKilled
		c.killErr = err
		c.mu.Unlock()

		close(c.killed)

		closeCtx, cancel := context.WithTimeout(context.Background(), forceCloseTimeout)
		defer cancel()
		_ = c.driver.Close(closeCtx)

		c.config.Metrics.IncConnectionKilled()
		c.config.Logger.Error("connection killed by driver error",
			"conn", c.id,
			"error", err.Error(),
		)

		if c.config.Pool != nil {
			c.config.Pool.Remove(c.id)
		}
	})
}
