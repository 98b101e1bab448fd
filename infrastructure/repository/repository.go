// Package repository contém o acesso às tabelas de relatório do banco
// gerenciado. Toda consulta é obrigatoriamente filtrada pela empresa (rede)
// do usuário; a ausência desse filtro é tratada como erro, nunca como
// "todas as empresas".
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/missiaspietro/pshot-report-api/internal/domain"
)

// ErrEmptyTenant indica que uma consulta foi montada sem a empresa do
// usuário. Os serviços validam antes; aqui é defesa em profundidade.
var ErrEmptyTenant = errors.New("empresa não informada para consulta de relatório")

// scanRawRecords converte o resultado de uma consulta com colunas dinâmicas
// em registros coluna -> valor, normalizando []byte para string.
func scanRawRecords(rows *sql.Rows) ([]domain.RawRecord, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("erro ao obter colunas do resultado: %w", err)
	}

	records := make([]domain.RawRecord, 0)

	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("erro ao escanear registro: %w", err)
		}

		record := make(domain.RawRecord, len(columns))
		for i, column := range columns {
			switch v := values[i].(type) {
			case []byte:
				record[column] = string(v)
			case time.Time:
				record[column] = v.Format(time.DateOnly)
			default:
				record[column] = v
			}
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// tenantExists executa a sonda de existência (select 1 limit 1) usada pela
// checagem de acesso dos relatórios customizados.
func tenantExists(ctx context.Context, queryer interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}, table, tenantColumn, tenant string,
) (bool, error) {
	if tenant == "" {
		return false, ErrEmptyTenant
	}

	query, args, err := squirrel.
		Select("1").
		From(table).
		Where(squirrel.Eq{tenantColumn: tenant}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var one int
	if err := queryer.QueryRow(ctx, query, args...).Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("erro ao executar sonda de acesso: %w", err)
	}

	return true, nil
}
