package sqlerr

import (
	"regexp"
	"strconv"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// sqliteConstraintRe pulls "table.column" out of messages like
// "UNIQUE constraint failed: persons.name".
var sqliteConstraintRe = regexp.MustCompile(`constraint failed: (\w+)\.(\w+)`)

// ConvertSQLiteError converts a modernc SQLite error into our Error.
//
// SQLite does not report table or constraint names as fields, so they are
// recovered from the message. The constraint name follows the Postgres
// "<table>_<column>_key" convention so both drivers produce the same
// client message.
func ConvertSQLiteError(src *sqlite.Error) *Error {
	sqlErr := &Error{
		Code:         mapSQLiteCode(src.Code(), src.Error()),
		Severity:     SeverityError,
		DatabaseCode: strconv.Itoa(src.Code()),
		Message:      src.Error(),
		driverErr:    src,
	}

	if m := sqliteConstraintRe.FindStringSubmatch(src.Error()); len(m) == 3 {
		sqlErr.TableName = m[1]
		sqlErr.ColumnName = m[2]
		sqlErr.ConstraintName = m[1] + "_" + m[2] + "_key"
	}

	return sqlErr
}

// mapSQLiteCode uses the extended result code, falling back to the message
// when only the primary SQLITE_CONSTRAINT code is available.
func mapSQLiteCode(code int, message string) Code {
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return UniqueViolation
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return NotNullViolation
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return ForeignKeyViolation
	case sqlite3.SQLITE_CONSTRAINT_CHECK:
		return CheckViolation
	case sqlite3.SQLITE_CONSTRAINT:
		switch {
		case strings.Contains(message, "UNIQUE constraint failed"):
			return UniqueViolation
		case strings.Contains(message, "NOT NULL constraint failed"):
			return NotNullViolation
		case strings.Contains(message, "FOREIGN KEY constraint failed"):
			return ForeignKeyViolation
		case strings.Contains(message, "CHECK constraint failed"):
			return CheckViolation
		}
		return Other
	default:
		return Other
	}
}
