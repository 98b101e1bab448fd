package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/missiaspietro/pshot-report-api/internal/domain"
	"github.com/missiaspietro/pshot-report-api/internal/usecases/customreport"
	apiErrors "github.com/missiaspietro/pshot-report-api/pkg/apiErrors"
	"github.com/missiaspietro/pshot-report-api/pkg/log"
	"github.com/missiaspietro/pshot-report-api/pkg/middleware"
	"github.com/pkg/errors"
)

// CustomReportRequest é o corpo dos endpoints de relatório customizado. A
// empresa nunca vem do corpo: ela é sempre a da sessão.
type CustomReportRequest struct {
	SelectedFields []string `json:"selectedFields"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	SelectedStore  string   `json:"selectedStore"`
}

// CustomReportResponse é o envelope de sucesso dos relatórios customizados
type CustomReportResponse struct {
	Success bool               `json:"success"`
	Data    []domain.RawRecord `json:"data"`
	Total   int                `json:"total"`
}

// BuildCustomReport monta o relatório com os campos selecionados pelo
// usuário e responde JSON.
func BuildCustomReport(service customreport.ReportBuilder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, filters, ok := decodeCustomReportRequest(w, r)
		if !ok {
			return
		}

		if !service.ValidateUserAccess(r.Context(), report, filters.Empresa) {
			apiErrors.WriteError(w, apiErrors.ErrTenantAccessDenied, "Usuário sem acesso aos dados desta empresa", nil)
			return
		}

		records, err := service.BuildReport(r.Context(), report, filters)
		if err != nil {
			handleReportError(w, r, report, err)
			return
		}

		logger.WithFields(log.Fields{
			"report": report,
			"total":  len(records),
		}).Info("Relatório customizado gerado")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(CustomReportResponse{
			Success: true,
			Data:    records,
			Total:   len(records),
		}); err != nil {
			logger.WithError(err).Error("erro ao codificar resposta do relatório customizado")
		}
	})
}

// ExportCustomReport monta o mesmo relatório e responde CSV para download
func ExportCustomReport(service customreport.ReportBuilder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, filters, ok := decodeCustomReportRequest(w, r)
		if !ok {
			return
		}

		if !service.ValidateUserAccess(r.Context(), report, filters.Empresa) {
			apiErrors.WriteError(w, apiErrors.ErrTenantAccessDenied, "Usuário sem acesso aos dados desta empresa", nil)
			return
		}

		records, err := service.BuildReport(r.Context(), report, filters)
		if err != nil {
			handleReportError(w, r, report, err)
			return
		}

		fields := customreport.ValidateSelectedFields(r.Context(), report, filters.SelectedFields)
		filename := customreport.ExportFilename(report, time.Now())

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))

		if err := customreport.WriteCSV(w, fields, records); err != nil {
			// Cabeçalhos já foram enviados; só resta registrar
			logger.WithError(err).WithField("report", report).Error("erro ao escrever CSV de exportação")
			return
		}

		logger.WithFields(log.Fields{
			"report":   report,
			"total":    len(records),
			"filename": filename,
		}).Info("Relatório exportado em CSV")
	})
}

// decodeCustomReportRequest resolve o tipo do path, decodifica o corpo e
// monta os filtros com a empresa da sessão. Escreve a resposta de erro e
// devolve ok=false quando a requisição não passa daqui.
func decodeCustomReportRequest(w http.ResponseWriter, r *http.Request) (domain.ReportType, domain.ReportFilters, bool) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrSessionRequired, "Usuário não autenticado", nil)
		return "", domain.ReportFilters{}, false
	}

	params := httprouter.ParamsFromContext(r.Context())
	report := domain.ReportType(params.ByName("type"))

	if _, known := customreport.FieldSetFor(report); !known {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de relatório desconhecido", nil)
		return "", domain.ReportFilters{}, false
	}

	var req CustomReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return "", domain.ReportFilters{}, false
	}

	filters := domain.ReportFilters{
		Empresa:        session.Empresa,
		SelectedFields: req.SelectedFields,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		SelectedStore:  req.SelectedStore,
	}

	return report, filters, true
}

// handleReportError mapeia os erros do builder para os códigos da API
func handleReportError(w http.ResponseWriter, r *http.Request, report domain.ReportType, err error) {
	logger := log.ForContext(r.Context())

	var invalidFilters *customreport.InvalidFiltersError
	if errors.As(err, &invalidFilters) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFilters, "Filtros de relatório inválidos", invalidFilters.Result.Errors)
		return
	}

	if errors.Is(err, customreport.ErrNoValidFields) {
		apiErrors.WriteError(w, apiErrors.ErrNoValidFields, err.Error(), nil)
		return
	}

	if errors.Is(err, customreport.ErrUnknownReport) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return
	}

	logger.WithError(err).WithField("report", report).Error("Erro ao montar relatório customizado")
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar dados do relatório", nil)
}
