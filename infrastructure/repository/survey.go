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
	surveyTable        = "respostas_pesquisas"
	surveyTenantColumn = "rede"
	surveyDateColumn   = "criado_em"
)

type SurveyReportRepository interface {
	GetByTenantAndPeriod(ctx context.Context, rede string, start, end time.Time) ([]*domain.SurveyRow, error)
	SelectFields(ctx context.Context, columns []string, rede, loja string, start, end time.Time) ([]domain.RawRecord, error)
	TenantExists(ctx context.Context, rede string) (bool, error)
}

type surveyReportRepository struct {
	conn postgres.Conn
}

func NewSurveyReportRepository(conn postgres.Conn) SurveyReportRepository {
	return &surveyReportRepository{
		conn: conn,
	}
}

func (r *surveyReportRepository) GetByTenantAndPeriod(ctx context.Context, rede string, start, end time.Time) ([]*domain.SurveyRow, error) {
	if rede == "" {
		return nil, ErrEmptyTenant
	}

	query, args, err := squirrel.
		Select("id", "nome", "telefone", "rede", "loja", "resposta", "vendedor", "criado_em").
		From(surveyTable).
		Where(squirrel.Eq{surveyTenantColumn: rede}).
		Where(squirrel.GtOrEq{surveyDateColumn: start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{surveyDateColumn: end.Format(time.DateOnly)}).
		OrderBy(surveyDateColumn + " ASC").
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

	result := make([]*domain.SurveyRow, 0)
	for rows.Next() {
		row := &domain.SurveyRow{}
		var nome, telefone, loja, resposta, vendedor sql.NullString

		err := rows.Scan(
			&row.ID,
			&nome,
			&telefone,
			&row.Rede,
			&loja,
			&resposta,
			&vendedor,
			&row.CriadoEm,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resposta de pesquisa: %w", err)
		}

		row.Nome = nome.String
		row.Telefone = telefone.String
		row.Loja = loja.String
		row.Resposta = resposta.String
		row.Vendedor = vendedor.String
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

func (r *surveyReportRepository) SelectFields(ctx context.Context, columns []string, rede, loja string, start, end time.Time) ([]domain.RawRecord, error) {
	if rede == "" {
		return nil, ErrEmptyTenant
	}

	builder := squirrel.
		Select(columns...).
		From(surveyTable).
		Where(squirrel.Eq{surveyTenantColumn: rede}).
		Where(squirrel.GtOrEq{surveyDateColumn: start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{surveyDateColumn: end.Format(time.DateOnly)}).
		OrderBy(surveyDateColumn + " ASC").
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

func (r *surveyReportRepository) TenantExists(ctx context.Context, rede string) (bool, error) {
	return tenantExists(ctx, r.conn, surveyTable, surveyTenantColumn, rede)
}
