package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o recorte de Connection que os repositórios recebem. Eles nunca
// abrem nem fecham a conexão; só executam consultas com contexto.
type Queryer interface {
	Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row
}
