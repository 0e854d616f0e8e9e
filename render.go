package relatedpg

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/linaGirl/related-postgres-connection/types"
)

// Render inlines positional parameter values into literal SQL text.
//
// The statement is scanned left to right for numbered placeholders ($1, $2,
// ...). The Nth placeholder encountered consumes the Nth value, by scan
// order, regardless of its numeric suffix. Placeholders beyond the supplied
// value count are left untouched.
//
// Render exists for diagnostics and non-parameterized execution paths only;
// Exec always binds parameters through the driver.
//
// Parameters:
//   - sql: Statement text with $n placeholders
//   - values: Ordered values to inline
//
// Returns:
//   - string: The statement with literals substituted
func Render(sql string, values []any) string {
	var b strings.Builder
	b.Grow(len(sql))

	next := 0 // index of the value consumed by the next placeholder
	i := 0
	for i < len(sql) {
		if sql[i] == '$' && i+1 < len(sql) && isDigit(sql[i+1]) {
			j := i + 1
			for j < len(sql) && isDigit(sql[j]) {
				j++
			}

			if next < len(values) {
				b.WriteString(Literal(values[next]))
				next++
			} else {
				b.WriteString(sql[i:j])
			}
			i = j

			continue
		}

		b.WriteByte(sql[i])
		i++
	}

	return b.String()
}

// Literal converts a value into a safely quoted SQL literal.
//
// Strings and string-like values are quoted via lib/pq's literal quoting,
// which doubles embedded quotes and switches to E'' syntax for backslashes.
// Numbers and booleans render bare, nil renders as NULL, byte slices render
// in bytea hex form.
//
// Parameters:
//   - v: The value to render
//
// Returns:
//   - string: The literal SQL representation
func Literal(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case string:
		return pq.QuoteLiteral(x)
	case []byte:
		return `'\x` + hex.EncodeToString(x) + `'`
	case bool:
		if x {
			return "TRUE"
		}

		return "FALSE"
	case int:
		return strconv.Itoa(x)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case time.Time:
		return pq.QuoteLiteral(x.Format(time.RFC3339Nano))
	case fmt.Stringer:
		return pq.QuoteLiteral(x.String())
	default:
		return pq.QuoteLiteral(fmt.Sprintf("%v", x))
	}
}

// EscapeIdentifier converts a table, schema, or column name into a safely
// quoted SQL identifier.
//
// Unlike driver-reported errors, invalid input fails synchronously with
// types.ErrInvalidArgument: an empty name or one containing a NUL byte is a
// programmer error, not a server condition.
//
// Parameters:
//   - name: The identifier to escape
//
// Returns:
//   - string: The double-quoted identifier
//   - error: types.ErrInvalidArgument for empty or NUL-containing input
func EscapeIdentifier(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: identifier cannot be empty", types.ErrInvalidArgument)
	}
	if strings.ContainsRune(name, 0) {
		return "", fmt.Errorf("%w: identifier contains a NUL byte", types.ErrInvalidArgument)
	}

	return pq.QuoteIdentifier(name), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
