package integration

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/QuangTung97/conference/config"
	"github.com/QuangTung97/conference/pkg/migration"
	"github.com/jmoiron/sqlx"

	// for integration test, the sqlite store needs no running server
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// TestCase ...
type TestCase struct {
	DB *sqlx.DB
}

// NewTestCase creates a fresh sqlite database with the schema applied, closed when the test ends.
// It uses a single connection so transactions run one at a time.
func NewTestCase(t *testing.T) *TestCase {
	return NewTestCaseWithConns(t, 1)
}

// NewTestCaseWithConns is NewTestCase with up to maxConns connections,
// transactions on different connections conflict the way they do on a server store
func NewTestCaseWithConns(t *testing.T, maxConns int) *TestCase {
	path := filepath.Join(t.TempDir(), "conference.db")

	db := sqlx.MustConnect(config.DriverSQLite, config.SQLiteDSN(path))
	db.SetMaxOpenConns(maxConns)
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := migration.ApplySQLiteSchema(db); err != nil {
		t.Fatal(err)
	}

	return &TestCase{
		DB: db,
	}
}

// Truncate ...
func (tc *TestCase) Truncate(table string) {
	tc.DB.MustExec(fmt.Sprintf("DELETE FROM %s", table))
}
