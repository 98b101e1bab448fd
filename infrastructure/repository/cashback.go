package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/missiaspietro/pshot-report-api/infrastructure/database/postgres"
	"github.com/missiaspietro/pshot-report-api/internal/domain"
)

// A tabela de cashback veio de outra ferramenta e mantém identificadores
// com maiúsculas, por isso as aspas nas colunas.
const (
	cashbackTable        = `"EnvioCashTemTotal"`
	cashbackTenantColumn = `"Rede_de_loja"`
	cashbackDateColumn   = `"Envio_novo"`

	// Apenas envios concluídos entram nos gráficos
	cashbackDeliveredStatus = "Enviada"
)

type CashbackReportRepository interface {
	GetByTenantAndPeriod(ctx context.Context, rede string, start, end time.Time) ([]*domain.CashbackRow, error)
	SelectFields(ctx context.Context, columns []string, rede, loja string, start, end time.Time) ([]domain.RawRecord, error)
	TenantExists(ctx context.Context, rede string) (bool, error)
}

type cashbackReportRepository struct {
	conn postgres.Conn
}

func NewCashbackReportRepository(conn postgres.Conn) CashbackReportRepository {
	return &cashbackReportRepository{
		conn: conn,
	}
}

func (r *cashbackReportRepository) GetByTenantAndPeriod(ctx context.Context, rede string, start, end time.Time) ([]*domain.CashbackRow, error) {
	if rede == "" {
		return nil, ErrEmptyTenant
	}

	query, args, err := squirrel.
		Select("id", `"Nome"`, `"Whatsapp"`, cashbackTenantColumn, `"Loja"`, `"Status"`, cashbackDateColumn).
		From(cashbackTable).
		Where(squirrel.Eq{cashbackTenantColumn: rede}).
		Where(squirrel.Eq{`"Status"`: cashbackDeliveredStatus}).
		Where(squirrel.GtOrEq{cashbackDateColumn: start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{cashbackDateColumn: end.Format(time.DateOnly)}).
		OrderBy(cashbackDateColumn + " ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.CashbackRow, 0)
	for rows.Next() {
		row := &domain.CashbackRow{}
		var loja, status sql.NullString

		err := rows.Scan(
			&row.ID,
			&row.Nome,
			&row.WhatsApp,
			&row.RedeDeLoja,
			&loja,
			&status,
			&row.EnvioNovo,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear envio de cashback: %w", err)
		}

		row.Loja = loja.String
		row.Status = status.String
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

func (r *cashbackReportRepository) SelectFields(ctx context.Context, columns []string, rede, loja string, start, end time.Time) ([]domain.RawRecord, error) {
	if rede == "" {
		return nil, ErrEmptyTenant
	}

	builder := squirrel.
		Select(columns...).
		From(cashbackTable).
		Where(squirrel.Eq{cashbackTenantColumn: rede}).
		Where(squirrel.GtOrEq{cashbackDateColumn: start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{cashbackDateColumn: end.Format(time.DateOnly)}).
		OrderBy(cashbackDateColumn + " ASC").
		PlaceholderFormat(squirrel.Dollar)

	if loja != "" {
		builder = builder.Where(squirrel.Eq{`"Loja"`: loja})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	return scanRawRecords(rows)
}

func (r *cashbackReportRepository) TenantExists(ctx context.Context, rede string) (bool, error) {
	return tenantExists(ctx, r.conn, cashbackTable, cashbackTenantColumn, rede)
}
