package reporting

import (
	"context"
	"time"

	"github.com/missiaspietro/pshot-report-api/internal/domain"
)

// ChartInsighter expõe as séries de gráfico do dashboard. As datas são
// opcionais: quando ausentes vale a janela padrão de 6 meses completos.
//
// Erros de backend nunca são propagados por estes métodos: o dashboard
// degrada para "sem dados" em vez de quebrar a página inteira. O único erro
// retornado é de entrada inválida (empresa em branco).
type ChartInsighter interface {
	GetBirthdayChart(ctx context.Context, rede string, start, end *time.Time) ([]domain.PivotRow, error)
	GetCashbackChart(ctx context.Context, rede string, start, end *time.Time) ([]domain.PivotRow, error)
	GetSurveyChart(ctx context.Context, rede string, start, end *time.Time) ([]domain.PivotRow, error)
	GetPromotionChart(ctx context.Context, rede string, start, end *time.Time) ([]domain.PivotRow, error)

	// GetSurveyWeeklyChart agrega respostas dos últimos 7 dias em buckets
	// diários.
	GetSurveyWeeklyChart(ctx context.Context, rede string) ([]domain.PivotRow, error)

	// ClearCache descarta os dados em cache; chamado quando o usuário sai
	// do dashboard. ClearCacheKey invalida uma entrada específica.
	ClearCache()
	ClearCacheKey(key string)
}
