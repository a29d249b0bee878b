package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/ncruces/go-sqlite3"
)

// ErrConflict is returned when a concurrent writer modified the same records
var ErrConflict = errors.New("concurrent update conflict")

// ErrInvalidQuery is returned for a query the store cannot execute as a range scan
var ErrInvalidQuery = errors.New("invalid range query")

// ErrUnindexedField is returned for a filter or order on a field without an index
var ErrUnindexedField = errors.New("unindexed field")

const (
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
	mysqlErrDuplicateEntry  = 1062
)

func isConflictError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrLockWaitTimeout, mysqlErrDeadlock, mysqlErrDuplicateEntry:
			return true
		default:
			return false
		}
	}

	var sqliteErr *sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code() == sqlite3.BUSY || sqliteErr.Code() == sqlite3.LOCKED {
			return true
		}
		return sqliteErr.ExtendedCode() == sqlite3.CONSTRAINT_PRIMARYKEY ||
			sqliteErr.ExtendedCode() == sqlite3.CONSTRAINT_UNIQUE
	}
	return false
}

func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrConflict) {
		return err
	}
	if isConflictError(err) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}

// checkVersioned turns a versioned update that matched no row into ErrConflict
func checkVersioned(result sql.Result, kind string, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s %s was modified concurrently", ErrConflict, kind, id)
	}
	return nil
}
