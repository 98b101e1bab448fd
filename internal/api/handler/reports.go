package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/missiaspietro/pshot-report-api/internal/domain"
	"github.com/missiaspietro/pshot-report-api/internal/usecases/reporting"
	apiErrors "github.com/missiaspietro/pshot-report-api/pkg/apiErrors"
	"github.com/missiaspietro/pshot-report-api/pkg/log"
	"github.com/missiaspietro/pshot-report-api/pkg/middleware"
	"github.com/missiaspietro/pshot-report-api/pkg/utils"
)

// ChartResponse é o envelope das séries de gráfico do dashboard
type ChartResponse struct {
	Success bool              `json:"success"`
	Data    []domain.PivotRow `json:"data"`
}

// GetReportChart serve as séries mensais dos quatro relatórios. O tipo vem
// do path; `?period=weekly` troca a pesquisa para os buckets diários dos
// últimos 7 dias.
func GetReportChart(service reporting.ChartInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrSessionRequired, "Usuário não autenticado", nil)
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		report := domain.ReportType(params.ByName("type"))

		start, end, err := parseChartWindow(r)
		if err != nil {
			if errors.Is(err, errStartAfterEnd) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidDateSpan, errStartAfterEnd.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Datas inválidas; use o formato YYYY-MM-DD", nil)
			return
		}

		weekly := r.URL.Query().Get("period") == "weekly"

		var rows []domain.PivotRow
		switch {
		case report == domain.ReportSurvey && weekly:
			rows, err = service.GetSurveyWeeklyChart(r.Context(), session.Empresa)
		case report == domain.ReportBirthday:
			rows, err = service.GetBirthdayChart(r.Context(), session.Empresa, start, end)
		case report == domain.ReportCashback:
			rows, err = service.GetCashbackChart(r.Context(), session.Empresa, start, end)
		case report == domain.ReportSurvey:
			rows, err = service.GetSurveyChart(r.Context(), session.Empresa, start, end)
		case report == domain.ReportPromotion:
			rows, err = service.GetPromotionChart(r.Context(), session.Empresa, start, end)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de relatório desconhecido", nil)
			return
		}

		if err != nil {
			// Único erro possível aqui é de entrada (empresa em branco)
			logger.WithError(err).WithField("report", report).Warn("Gráfico recusado por entrada inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ChartResponse{Success: true, Data: rows}); err != nil {
			logger.WithError(err).Error("erro ao codificar resposta do gráfico")
		}
	})
}

// ClearReportCache invalida o cache de gráficos; chamado quando o usuário
// sai do dashboard. `?key=` invalida uma entrada específica.
func ClearReportCache(service reporting.ChartInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if key := r.URL.Query().Get("key"); key != "" {
			service.ClearCacheKey(key)
			logger.WithField("key", key).Info("Entrada do cache de relatórios invalidada")
		} else {
			service.ClearCache()
			logger.Info("Cache de relatórios limpo")
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})
}

var errStartAfterEnd = errors.New("data inicial posterior à data final")

func parseChartWindow(r *http.Request) (*time.Time, *time.Time, error) {
	start, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return nil, nil, err
	}

	end, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return nil, nil, err
	}

	if start != nil && end != nil && start.After(*end) {
		return nil, nil, errStartAfterEnd
	}

	return start, end, nil
}
