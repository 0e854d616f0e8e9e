package relatedpg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linaGirl/related-postgres-connection/types"
)

func TestLockStatements(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		table  string
		mode   types.LockMode
		want   string
	}{
		{
			name:  "write lock without schema",
			table: "accounts",
			mode:  types.LockWrite,
			want:  `LOCK TABLE "accounts" IN SHARE ROW EXCLUSIVE MODE;`,
		},
		{
			name:   "write lock with schema",
			schema: "billing",
			table:  "accounts",
			mode:   types.LockWrite,
			want:   `LOCK TABLE "billing"."accounts" IN SHARE ROW EXCLUSIVE MODE;`,
		},
		{
			name:  "exclusive lock without schema",
			table: "accounts",
			mode:  types.LockExclusive,
			want:  `LOCK TABLE "accounts" IN ACCESS EXCLUSIVE MODE;`,
		},
		{
			name:   "exclusive lock with schema",
			schema: "billing",
			table:  "accounts",
			mode:   types.LockExclusive,
			want:   `LOCK TABLE "billing"."accounts" IN ACCESS EXCLUSIVE MODE;`,
		},
		{
			name:  "identifier quoting doubles embedded quotes",
			table: `weird"name`,
			mode:  types.LockWrite,
			want:  `LOCK TABLE "weird""name" IN SHARE ROW EXCLUSIVE MODE;`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			driver := newMockDriver()
			conn := connectedConn(t, driver)

			_, err := conn.Lock(context.Background(), tc.schema, tc.table, tc.mode)
			require.NoError(t, err)
			require.Equal(t, tc.want, driver.lastQuery())
		})
	}
}

func TestLockUnsupportedMode(t *testing.T) {
	driver := newMockDriver()
	conn := connectedConn(t, driver)

	_, err := conn.Lock(context.Background(), "", "accounts", types.LockMode(42))
	require.ErrorIs(t, err, types.ErrInvalidArgument)

	// Nothing was sent to the database.
	require.Equal(t, 0, driver.queryCount())
}

func TestLockInvalidIdentifiers(t *testing.T) {
	driver := newMockDriver()
	conn := connectedConn(t, driver)

	_, err := conn.Lock(context.Background(), "", "", types.LockWrite)
	require.ErrorIs(t, err, types.ErrInvalidArgument)

	_, err = conn.Lock(context.Background(), "bad\x00schema", "accounts", types.LockWrite)
	require.ErrorIs(t, err, types.ErrInvalidArgument)

	require.Equal(t, 0, driver.queryCount())
}

func TestLockUsesStandardQueryPath(t *testing.T) {
	// Lock inherits the error mapping of the query path.
	driver := newMockDriver()
	driver.script = []scriptStep{{err: errConnReset(t)}}
	conn := connectedConn(t, driver)

	_, err := conn.Lock(context.Background(), "", "accounts", types.LockExclusive)
	require.ErrorIs(t, err, types.ErrFailedToConnect)
}
