package repository

import (
	"database/sql"
)

// SQLExecutor is the common query surface of sql.DB and sql.Tx, letting the
// repositories run against either a bare connection or an open transaction.
type SQLExecutor interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

var (
	_ SQLExecutor = (*sql.DB)(nil)
	_ SQLExecutor = (*sql.Tx)(nil)
)
