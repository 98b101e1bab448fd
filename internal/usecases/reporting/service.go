package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/missiaspietro/pshot-report-api/infrastructure/repository"
	"github.com/missiaspietro/pshot-report-api/internal/config"
	"github.com/missiaspietro/pshot-report-api/internal/domain"
	"github.com/missiaspietro/pshot-report-api/pkg/cache"
	"github.com/missiaspietro/pshot-report-api/pkg/log"
	"github.com/missiaspietro/pshot-report-api/pkg/utils"
)

// ErrMissingTenant é retornado quando o chamador não informa a empresa.
// É o único erro que os métodos de gráfico propagam.
var ErrMissingTenant = fmt.Errorf("empresa do usuário é obrigatória")

// Service implementa ChartInsighter sobre os repositórios de relatório, com
// cache TTL por combinação relatório+empresa+janela.
type Service struct {
	cfg           *config.Config
	birthdayRepo  repository.BirthdayReportRepository
	cashbackRepo  repository.CashbackReportRepository
	surveyRepo    repository.SurveyReportRepository
	promotionRepo repository.PromotionReportRepository
	cache         *cache.Store

	// now é substituível em testes
	now func() time.Time
}

func NewService(
	cfg *config.Config,
	birthdayRepo repository.BirthdayReportRepository,
	cashbackRepo repository.CashbackReportRepository,
	surveyRepo repository.SurveyReportRepository,
	promotionRepo repository.PromotionReportRepository,
	cacheStore *cache.Store,
) ChartInsighter {
	return &Service{
		cfg:           cfg,
		birthdayRepo:  birthdayRepo,
		cashbackRepo:  cashbackRepo,
		surveyRepo:    surveyRepo,
		promotionRepo: promotionRepo,
		cache:         cacheStore,
		now:           time.Now,
	}
}

func chartCacheKey(report domain.ReportType, rede string, start, end time.Time) string {
	return fmt.Sprintf("chart|%s|%s|%s|%s", report, rede, start.Format(time.DateOnly), end.Format(time.DateOnly))
}

// getCachedChart devolve a série em cache quando ainda válida.
func (s *Service) getCachedChart(key string) ([]domain.PivotRow, bool) {
	value, ok := s.cache.GetWithTTL(key)
	if !ok {
		return nil, false
	}

	rows, ok := value.([]domain.PivotRow)
	return rows, ok
}

func (s *Service) GetBirthdayChart(ctx context.Context, rede string, start, end *time.Time) ([]domain.PivotRow, error) {
	if rede == "" {
		return nil, ErrMissingTenant
	}

	startDate, endDate := utils.ResolveWindow(start, end, s.now())
	key := chartCacheKey(domain.ReportBirthday, rede, startDate, endDate)
	if rows, ok := s.getCachedChart(key); ok {
		return rows, nil
	}

	raw, err := s.birthdayRepo.GetByTenantAndPeriod(ctx, rede, startDate, endDate)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"rede":       rede,
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
		}).Error("Erro ao buscar envios de aniversário; gráfico degradado para vazio")
		return []domain.PivotRow{}, nil
	}

	occurrences := make([]occurrence, 0, len(raw))
	for _, row := range raw {
		occurrences = append(occurrences, occurrence{Store: row.Loja, Date: row.CriadoEm})
	}

	rows := buildPivot(occurrences, monthBuckets(monthBucketCount, s.now()), monthKey, domain.NoStoreLabel)
	s.cache.SetWithTTL(key, rows)
	return rows, nil
}

func (s *Service) GetCashbackChart(ctx context.Context, rede string, start, end *time.Time) ([]domain.PivotRow, error) {
	if rede == "" {
		return nil, ErrMissingTenant
	}

	startDate, endDate := utils.ResolveWindow(start, end, s.now())
	key := chartCacheKey(domain.ReportCashback, rede, startDate, endDate)
	if rows, ok := s.getCachedChart(key); ok {
		return rows, nil
	}

	raw, err := s.cashbackRepo.GetByTenantAndPeriod(ctx, rede, startDate, endDate)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"rede":       rede,
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
		}).Error("Erro ao buscar envios de cashback; gráfico degradado para vazio")
		return []domain.PivotRow{}, nil
	}

	occurrences := make([]occurrence, 0, len(raw))
	for _, row := range raw {
		occurrences = append(occurrences, occurrence{Store: row.Loja, Date: row.EnvioNovo})
	}

	rows := buildPivot(occurrences, monthBuckets(monthBucketCount, s.now()), monthKey, domain.NoStoreLabel)
	s.cache.SetWithTTL(key, rows)
	return rows, nil
}

func (s *Service) GetSurveyChart(ctx context.Context, rede string, start, end *time.Time) ([]domain.PivotRow, error) {
	if rede == "" {
		return nil, ErrMissingTenant
	}

	startDate, endDate := utils.ResolveWindow(start, end, s.now())
	key := chartCacheKey(domain.ReportSurvey, rede, startDate, endDate)
	if rows, ok := s.getCachedChart(key); ok {
		return rows, nil
	}

	raw, err := s.fetchSurveysWithRetry(ctx, rede, startDate, endDate)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"rede":       rede,
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
		}).Error("Erro ao buscar respostas de pesquisas; gráfico degradado para vazio")
		return []domain.PivotRow{}, nil
	}

	occurrences := make([]occurrence, 0, len(raw))
	for _, row := range raw {
		occurrences = append(occurrences, occurrence{Store: row.Loja, Date: row.CriadoEm})
	}

	rows := buildPivot(occurrences, monthBuckets(monthBucketCount, s.now()), monthKey, domain.NoNetworkLabel)
	s.cache.SetWithTTL(key, rows)
	return rows, nil
}

func (s *Service) GetSurveyWeeklyChart(ctx context.Context, rede string) ([]domain.PivotRow, error) {
	if rede == "" {
		return nil, ErrMissingTenant
	}

	endDate := time.Date(s.now().Year(), s.now().Month(), s.now().Day(), 0, 0, 0, 0, s.now().Location())
	startDate := endDate.AddDate(0, 0, -(dayBucketCount - 1))

	key := fmt.Sprintf("chart|%s-weekly|%s|%s|%s", domain.ReportSurvey, rede, startDate.Format(time.DateOnly), endDate.Format(time.DateOnly))
	if rows, ok := s.getCachedChart(key); ok {
		return rows, nil
	}

	raw, err := s.fetchSurveysWithRetry(ctx, rede, startDate, endDate)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("rede", rede).
			Error("Erro ao buscar respostas de pesquisas da semana; gráfico degradado para vazio")
		return []domain.PivotRow{}, nil
	}

	occurrences := make([]occurrence, 0, len(raw))
	for _, row := range raw {
		occurrences = append(occurrences, occurrence{Store: row.Loja, Date: row.CriadoEm})
	}

	rows := buildPivot(occurrences, dayBuckets(dayBucketCount, s.now()), dayKey, domain.NoNetworkLabel)
	s.cache.SetWithTTL(key, rows)
	return rows, nil
}

// fetchSurveysWithRetry aplica o backoff exponencial configurado em torno
// da busca de pesquisas.
func (s *Service) fetchSurveysWithRetry(ctx context.Context, rede string, start, end time.Time) ([]*domain.SurveyRow, error) {
	var raw []*domain.SurveyRow

	err := retryWithBackoff(ctx, s.cfg.SurveyRetry.MaxAttempts, s.cfg.SurveyRetry.BaseDelay, func() error {
		var fetchErr error
		raw, fetchErr = s.surveyRepo.GetByTenantAndPeriod(ctx, rede, start, end)
		return fetchErr
	})

	return raw, err
}

func (s *Service) GetPromotionChart(ctx context.Context, rede string, start, end *time.Time) ([]domain.PivotRow, error) {
	if rede == "" {
		return nil, ErrMissingTenant
	}

	startDate, endDate := utils.ResolveWindow(start, end, s.now())
	key := chartCacheKey(domain.ReportPromotion, rede, startDate, endDate)
	if rows, ok := s.getCachedChart(key); ok {
		return rows, nil
	}

	raw, err := s.promotionRepo.GetByTenantAndPeriod(ctx, rede, startDate, endDate)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"rede":       rede,
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
		}).Error("Erro ao buscar envios de promoções; gráfico degradado para vazio")
		return []domain.PivotRow{}, nil
	}

	occurrences := make([]occurrence, 0, len(raw))
	for _, row := range raw {
		occurrences = append(occurrences, occurrence{Store: row.Loja, Date: row.DataEnvio})
	}

	rows := buildPivot(occurrences, monthBuckets(monthBucketCount, s.now()), monthKey, domain.NoNetworkLabel)
	s.cache.SetWithTTL(key, rows)
	return rows, nil
}

func (s *Service) ClearCache() {
	s.cache.ClearAll()
}

func (s *Service) ClearCacheKey(key string) {
	s.cache.ClearKey(key)
}
