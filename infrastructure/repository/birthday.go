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

const (
	birthdayTable        = "relatorio_niver_decor_fabril"
	birthdayTenantColumn = "rede"
	birthdayDateColumn   = "criado_em"
)

type BirthdayReportRepository interface {
	GetByTenantAndPeriod(ctx context.Context, rede string, start, end time.Time) ([]*domain.BirthdayRow, error)
	SelectFields(ctx context.Context, columns []string, rede, loja string, start, end time.Time) ([]domain.RawRecord, error)
	TenantExists(ctx context.Context, rede string) (bool, error)
}

type birthdayReportRepository struct {
	conn postgres.Conn
}

func NewBirthdayReportRepository(conn postgres.Conn) BirthdayReportRepository {
	return &birthdayReportRepository{
		conn: conn,
	}
}

func (r *birthdayReportRepository) GetByTenantAndPeriod(ctx context.Context, rede string, start, end time.Time) ([]*domain.BirthdayRow, error) {
	if rede == "" {
		return nil, ErrEmptyTenant
	}

	query, args, err := squirrel.
		Select("id", "cliente", "whatsapp", "rede", "loja", "sub_rede", "status", "obs", "criado_em").
		From(birthdayTable).
		Where(squirrel.Eq{birthdayTenantColumn: rede}).
		Where(squirrel.GtOrEq{birthdayDateColumn: start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{birthdayDateColumn: end.Format(time.DateOnly)}).
		OrderBy(birthdayDateColumn + " ASC").
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

	result := make([]*domain.BirthdayRow, 0)
	for rows.Next() {
		row := &domain.BirthdayRow{}
		var loja, subRede, status, obs sql.NullString

		err := rows.Scan(
			&row.ID,
			&row.Cliente,
			&row.WhatsApp,
			&row.Rede,
			&loja,
			&subRede,
			&status,
			&obs,
			&row.CriadoEm,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear envio de aniversário: %w", err)
		}

		row.Loja = loja.String
		row.SubRede = subRede.String
		row.Status = status.String
		row.Obs = obs.String
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

func (r *birthdayReportRepository) SelectFields(ctx context.Context, columns []string, rede, loja string, start, end time.Time) ([]domain.RawRecord, error) {
	if rede == "" {
		return nil, ErrEmptyTenant
	}

	builder := squirrel.
		Select(columns...).
		From(birthdayTable).
		Where(squirrel.Eq{birthdayTenantColumn: rede}).
		Where(squirrel.GtOrEq{birthdayDateColumn: start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{birthdayDateColumn: end.Format(time.DateOnly)}).
		OrderBy(birthdayDateColumn + " ASC").
		PlaceholderFormat(squirrel.Dollar)

	if loja != "" {
		builder = builder.Where(squirrel.Eq{"loja": loja})
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

func (r *birthdayReportRepository) TenantExists(ctx context.Context, rede string) (bool, error) {
	return tenantExists(ctx, r.conn, birthdayTable, birthdayTenantColumn, rede)
}
