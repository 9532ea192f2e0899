package postgres

import (
	"context"
	"database/sql"
)

// Queryer é satisfeito tanto pela conexão quanto por uma transação aberta
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
