package relatedpg

import (
	"errors"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/linaGirl/related-postgres-connection/types"
)

// translation is one row of the ordered error-mapping table.
type translation struct {
	name  string
	match func(error) bool
	kind  error
}

// translations maps low-level driver errors to the sentinel taxonomy.
// Evaluated in order; first match wins. Unmatched errors pass through
// unchanged.
var translations = []translation{
	{"invalid-password", matchSQLState("28P01"), types.ErrInvalidCredentials},
	{"auth-failure", matchSQLState("28000"), types.ErrInvalidCredentials},
	{"connection-refused", matchErrno(syscall.ECONNREFUSED), types.ErrFailedToConnect},
	{"network-unreachable", matchErrno(syscall.ENETUNREACH), types.ErrFailedToConnect},
	{"connection-reset", matchErrno(syscall.ECONNRESET), types.ErrFailedToConnect},
	{"host-unreachable", matchErrno(syscall.EHOSTUNREACH), types.ErrFailedToConnect},
	{"unique-violation", matchSQLState("23505"), types.ErrDuplicateKey},
}

// Translate maps a low-level driver error to the stable error taxonomy.
//
// The mapping is a deterministic ordered table shared by the connect and
// query paths. Matched errors are wrapped so errors.Is works against both
// the sentinel kind and the original driver error; unmatched errors are
// returned unchanged.
//
// Parameters:
//   - err: The raw driver error, may be nil
//
// Returns:
//   - error: The translated error, the original error, or nil
func Translate(err error) error {
	if err == nil {
		return nil
	}

	for _, t := range translations {
		if t.match(err) {
			return &types.TranslatedError{Kind: t.kind, Cause: err}
		}
	}

	return err
}

// matchSQLState matches a server error carrying the given SQLSTATE code.
func matchSQLState(code string) func(error) bool {
	return func(err error) bool {
		var pgErr *pgconn.PgError

		return errors.As(err, &pgErr) && pgErr.Code == code
	}
}

// matchErrno matches a network error carrying the given errno.
func matchErrno(errno syscall.Errno) func(error) bool {
	return func(err error) bool {
		return errors.Is(err, errno)
	}
}
