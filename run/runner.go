// Package run executes compiled statements against a live database.
// The compiler itself never touches a connection; this package is the
// bridge between compile.Result and database/sql.
package run

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/benny-medflyt/selda/compile"
)

// Driver identifies the target database.
type Driver int

const (
	Postgres Driver = iota
	MySQL
	SQLite
)

// String returns the driver name.
func (d Driver) String() string {
	switch d {
	case Postgres:
		return "postgres"
	case MySQL:
		return "mysql"
	case SQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// Querier is the interface for executing queries.
// Both *sql.DB and *sql.Tx implement this interface.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Compile-time checks that *sql.DB and *sql.Tx implement Querier
var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// Runner executes compiled statements on one connection for one driver.
// It is created once at startup; per-statement work is limited to
// placeholder rebinding for drivers that need it.
type Runner struct {
	driver Driver
	db     Querier
	logger *slog.Logger
}

// New creates a runner for the given driver.
func New(db Querier, driver Driver) *Runner {
	return &Runner{
		driver: driver,
		db:     db,
		logger: slog.Default(),
	}
}

// WithLogger returns a copy of the runner using the given logger.
func (r *Runner) WithLogger(logger *slog.Logger) *Runner {
	return &Runner{driver: r.driver, db: r.db, logger: logger}
}

// WithTx returns a copy of the runner using the given transaction.
func (r *Runner) WithTx(tx *sql.Tx) *Runner {
	return &Runner{driver: r.driver, db: tx, logger: r.logger}
}

// WithDB returns a copy of the runner using the given connection.
func (r *Runner) WithDB(db Querier) *Runner {
	return &Runner{driver: r.driver, db: db, logger: r.logger}
}

// Driver returns the runner's driver.
func (r *Runner) Driver() Driver {
	return r.driver
}

// DB returns the runner's database connection.
func (r *Runner) DB() Querier {
	return r.db
}

// Query runs a compiled SELECT and returns its rows.
func (r *Runner) Query(ctx context.Context, res compile.Result) (*sql.Rows, error) {
	sqlText := Rebind(r.driver, res.SQL)
	r.log(sqlText, res)
	return r.db.QueryContext(ctx, sqlText, res.Args()...)
}

// QueryRow runs a compiled SELECT expected to return at most one row.
func (r *Runner) QueryRow(ctx context.Context, res compile.Result) *sql.Row {
	sqlText := Rebind(r.driver, res.SQL)
	r.log(sqlText, res)
	return r.db.QueryRowContext(ctx, sqlText, res.Args()...)
}

// Exec runs a compiled UPDATE or DELETE.
func (r *Runner) Exec(ctx context.Context, res compile.Result) (sql.Result, error) {
	sqlText := Rebind(r.driver, res.SQL)
	r.log(sqlText, res)
	return r.db.ExecContext(ctx, sqlText, res.Args()...)
}

func (r *Runner) log(sqlText string, res compile.Result) {
	r.logger.Debug("statement_executed",
		"driver", r.driver.String(),
		"sql", sqlText,
		"param_count", len(res.Params),
	)
}
