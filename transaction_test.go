package relatedpg

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linaGirl/related-postgres-connection/types"
)

func TestBegin(t *testing.T) {
	driver := newMockDriver()
	pool := &mockPool{}
	conn := connectedConn(t, driver, WithPoolHooks(pool))

	_, err := conn.Begin(context.Background())
	require.NoError(t, err)
	require.Equal(t, types.StateTransactionOpen, conn.State())
	require.Equal(t, "BEGIN", driver.lastQuery())

	// The connection is detached before BEGIN is issued.
	require.Equal(t, []string{conn.ID()}, pool.detached)
	require.Empty(t, pool.attached)
}

func TestBeginOnTerminalConnection(t *testing.T) {
	t.Run("ended", func(t *testing.T) {
		driver := newMockDriver()
		conn := connectedConn(t, driver)
		require.NoError(t, conn.End(context.Background()))

		_, err := conn.Begin(context.Background())
		require.ErrorIs(t, err, types.ErrConnectionEnded)
		require.Equal(t, 0, driver.queryCount())
	})

	t.Run("killed", func(t *testing.T) {
		driver := newMockDriver()
		conn := connectedConn(t, driver)

		driver.notify <- errors.New("connection lost")
		require.Eventually(t, func() bool {
			return conn.State() == types.StateKilled
		}, testWait, testTick)

		_, err := conn.Begin(context.Background())
		require.ErrorIs(t, err, types.ErrConnectionEnded)
		require.Equal(t, 0, driver.queryCount())
	})
}

func TestBeginTwice(t *testing.T) {
	driver := newMockDriver()
	conn := connectedConn(t, driver)

	_, err := conn.Begin(context.Background())
	require.NoError(t, err)

	_, err = conn.Begin(context.Background())
	require.ErrorIs(t, err, types.ErrTransactionOpen)
}

func TestBeginReattachesOnFailure(t *testing.T) {
	driver := newMockDriver()
	driver.script = []scriptStep{{err: errors.New("cannot begin")}}
	pool := &mockPool{}
	conn := connectedConn(t, driver, WithPoolHooks(pool))

	_, err := conn.Begin(context.Background())
	require.Error(t, err)
	require.Equal(t, types.StateConnected, conn.State())
	require.Equal(t, []string{conn.ID()}, pool.detached)
	require.Equal(t, []string{conn.ID()}, pool.attached)
}

func TestCommit(t *testing.T) {
	driver := newMockDriver()
	pool := &mockPool{}
	conn := connectedConn(t, driver, WithPoolHooks(pool))

	_, err := conn.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, conn.Commit(context.Background()))
	require.Equal(t, types.StateConnected, conn.State())
	require.Equal(t, "COMMIT", driver.lastQuery())
	require.Equal(t, []string{conn.ID()}, pool.attached)
}

func TestRollback(t *testing.T) {
	driver := newMockDriver()
	pool := &mockPool{}
	conn := connectedConn(t, driver, WithPoolHooks(pool))

	_, err := conn.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, conn.Rollback(context.Background()))
	require.Equal(t, types.StateConnected, conn.State())
	require.Equal(t, "ROLLBACK", driver.lastQuery())
	require.Equal(t, []string{conn.ID()}, pool.attached)
}

func TestCommitWithoutTransaction(t *testing.T) {
	driver := newMockDriver()
	conn := connectedConn(t, driver)

	require.ErrorIs(t, conn.Commit(context.Background()), types.ErrNoTransaction)
	require.ErrorIs(t, conn.Rollback(context.Background()), types.ErrNoTransaction)
	require.Equal(t, 0, driver.queryCount())
}

func TestQueriesAllowedInTransaction(t *testing.T) {
	driver := newMockDriver()
	conn := connectedConn(t, driver)

	_, err := conn.Begin(context.Background())
	require.NoError(t, err)

	_, err = conn.Exec(context.Background(), types.QueryContext{SQL: "SELECT 1"})
	require.NoError(t, err)
}
