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
	promotionTable        = "relatorio_promocoes"
	promotionTenantColumn = "rede"
	promotionDateColumn   = "data_envio"
)

type PromotionReportRepository interface {
	GetByTenantAndPeriod(ctx context.Context, rede string, start, end time.Time) ([]*domain.PromotionRow, error)
	SelectFields(ctx context.Context, columns []string, rede, loja string, start, end time.Time) ([]domain.RawRecord, error)
	TenantExists(ctx context.Context, rede string) (bool, error)
}

type promotionReportRepository struct {
	conn postgres.Conn
}

func NewPromotionReportRepository(conn postgres.Conn) PromotionReportRepository {
	return &promotionReportRepository{
		conn: conn,
	}
}

func (r *promotionReportRepository) GetByTenantAndPeriod(ctx context.Context, rede string, start, end time.Time) ([]*domain.PromotionRow, error) {
	if rede == "" {
		return nil, ErrEmptyTenant
	}

	// Envios com falha ficam na tabela com a observação de erro; o gráfico
	// conta somente os entregues.
	query, args, err := squirrel.
		Select("id", "cliente", "whatsapp", "rede", "loja", "sub_rede", "obs", "data_envio").
		From(promotionTable).
		Where(squirrel.Eq{promotionTenantColumn: rede}).
		Where(squirrel.Or{
			squirrel.Eq{"obs": nil},
			squirrel.NotILike{"obs": "%erro%"},
		}).
		Where(squirrel.GtOrEq{promotionDateColumn: start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{promotionDateColumn: end.Format(time.DateOnly)}).
		OrderBy(promotionDateColumn + " ASC").
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

	result := make([]*domain.PromotionRow, 0)
	for rows.Next() {
		row := &domain.PromotionRow{}
		var rede, loja, subRede, obs sql.NullString

		err := rows.Scan(
			&row.ID,
			&row.Cliente,
			&row.WhatsApp,
			&rede,
			&loja,
			&subRede,
			&obs,
			&row.DataEnvio,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear envio de promoção: %w", err)
		}

		row.Rede = rede.String
		row.Loja = loja.String
		row.SubRede = subRede.String
		row.Obs = obs.String
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

func (r *promotionReportRepository) SelectFields(ctx context.Context, columns []string, rede, loja string, start, end time.Time) ([]domain.RawRecord, error) {
	if rede == "" {
		return nil, ErrEmptyTenant
	}

	builder := squirrel.
		Select(columns...).
		From(promotionTable).
		Where(squirrel.Eq{promotionTenantColumn: rede}).
		Where(squirrel.GtOrEq{promotionDateColumn: start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{promotionDateColumn: end.Format(time.DateOnly)}).
		OrderBy(promotionDateColumn + " ASC").
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

func (r *promotionReportRepository) TenantExists(ctx context.Context, rede string) (bool, error) {
	return tenantExists(ctx, r.conn, promotionTable, promotionTenantColumn, rede)
}
