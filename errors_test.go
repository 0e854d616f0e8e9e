package relatedpg

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/linaGirl/related-postgres-connection/types"
)

func errConnReset(t *testing.T) error {
	t.Helper()

	return fmt.Errorf("read tcp 127.0.0.1:5432: %w", syscall.ECONNRESET)
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "invalid password",
			err:  &pgconn.PgError{Code: "28P01"},
			want: types.ErrInvalidCredentials,
		},
		{
			name: "auth failure",
			err:  &pgconn.PgError{Code: "28000"},
			want: types.ErrInvalidCredentials,
		},
		{
			name: "connection refused",
			err:  fmt.Errorf("dial tcp: %w", syscall.ECONNREFUSED),
			want: types.ErrFailedToConnect,
		},
		{
			name: "network unreachable",
			err:  fmt.Errorf("dial tcp: %w", syscall.ENETUNREACH),
			want: types.ErrFailedToConnect,
		},
		{
			name: "connection reset",
			err:  fmt.Errorf("read tcp: %w", syscall.ECONNRESET),
			want: types.ErrFailedToConnect,
		},
		{
			name: "host unreachable",
			err:  fmt.Errorf("dial tcp: %w", syscall.EHOSTUNREACH),
			want: types.ErrFailedToConnect,
		},
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: "23505"},
			want: types.ErrDuplicateKey,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			translated := Translate(tc.err)
			require.ErrorIs(t, translated, tc.want)

			// The original driver error stays reachable.
			require.ErrorIs(t, translated, tc.err)
		})
	}
}

func TestTranslateUnknownPassthrough(t *testing.T) {
	cause := errors.New("something else entirely")
	require.Equal(t, cause, Translate(cause))

	pgErr := &pgconn.PgError{Code: "42601", Message: "syntax error"}
	require.Equal(t, error(pgErr), Translate(pgErr))
}

func TestTranslateNil(t *testing.T) {
	require.NoError(t, Translate(nil))
}
