package handler

import (
	"net/http"

	"github.com/missiaspietro/pshot-report-api/internal/api/handler/router"
	"github.com/missiaspietro/pshot-report-api/internal/config"
	"github.com/missiaspietro/pshot-report-api/internal/usecases/authenticating"
	"github.com/missiaspietro/pshot-report-api/internal/usecases/customreport"
	"github.com/missiaspietro/pshot-report-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service, cfg),
		},
		{
			Path:    "/v1/logout",
			Method:  http.MethodPost,
			Handler: Logout(cfg),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(),
		},
	}
}

func Reports(chartService reporting.ChartInsighter, reportService customreport.ReportBuilder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/:type/chart",
			Method:  http.MethodGet,
			Handler: GetReportChart(chartService),
		},
		{
			Path:    "/v1/reports/:type/custom",
			Method:  http.MethodPost,
			Handler: BuildCustomReport(reportService),
		},
		{
			Path:    "/v1/reports/:type/export",
			Method:  http.MethodPost,
			Handler: ExportCustomReport(reportService),
		},
		{
			Path:    "/v1/cache/clear",
			Method:  http.MethodPost,
			Handler: ClearReportCache(chartService),
		},
	}
}
