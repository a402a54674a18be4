package postgres

import (
	"context"
	"database/sql"
)

// Queryer abstrai a execução de queries para que repositórios possam
// rodar tanto na conexão quanto dentro de uma transação
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}
