package customreport

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/missiaspietro/pshot-report-api/infrastructure/repository/mocks"
	"github.com/missiaspietro/pshot-report-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestBuilder(t *testing.T) (*Service, *mocks.MockBirthdayReportRepository, *mocks.MockPromotionReportRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)

	birthdayRepo := mocks.NewMockBirthdayReportRepository(ctrl)
	cashbackRepo := mocks.NewMockCashbackReportRepository(ctrl)
	surveyRepo := mocks.NewMockSurveyReportRepository(ctrl)
	promotionRepo := mocks.NewMockPromotionReportRepository(ctrl)

	service := NewService(birthdayRepo, cashbackRepo, surveyRepo, promotionRepo)
	service.now = func() time.Time {
		return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	}

	return service, birthdayRepo, promotionRepo
}

func TestBuildReport_filtrosInvalidos(t *testing.T) {
	service, _, _ := newTestBuilder(t)

	_, err := service.BuildReport(context.Background(), domain.ReportBirthday, domain.ReportFilters{
		Empresa:        "",
		SelectedFields: []string{"cliente"},
		StartDate:      "2024-13-01",
	})

	var invalid *InvalidFiltersError
	require.ErrorAs(t, err, &invalid)
	assert.GreaterOrEqual(t, len(invalid.Result.Errors), 2)
}

func TestBuildReport_nenhumCampoValido(t *testing.T) {
	service, _, _ := newTestBuilder(t)

	_, err := service.BuildReport(context.Background(), domain.ReportBirthday, domain.ReportFilters{
		Empresa:        "Acme",
		SelectedFields: []string{"senha"},
	})

	assert.ErrorIs(t, err, ErrNoValidFields)
}

func TestBuildReport_relatorioDesconhecido(t *testing.T) {
	service, _, _ := newTestBuilder(t)

	_, err := service.BuildReport(context.Background(), domain.ReportType("unknown"), domain.ReportFilters{
		Empresa:        "Acme",
		SelectedFields: []string{"id"},
	})

	assert.ErrorIs(t, err, ErrUnknownReport)
}

func TestBuildReport_incluiColunaDeEmpresaNoSelect(t *testing.T) {
	service, birthdayRepo, _ := newTestBuilder(t)

	birthdayRepo.EXPECT().
		SelectFields(gomock.Any(), []string{"cliente", "id", "rede"}, "Acme", "", gomock.Any(), gomock.Any()).
		Return([]domain.RawRecord{
			{"id": int64(1), "cliente": "Maria", "rede": "Acme"},
		}, nil)

	records, err := service.BuildReport(context.Background(), domain.ReportBirthday, domain.ReportFilters{
		Empresa:        "Acme",
		SelectedFields: []string{"cliente"},
	})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Maria", records[0]["cliente"])
}

func TestBuildReport_reChecagemDescartaOutrasEmpresas(t *testing.T) {
	service, birthdayRepo, _ := newTestBuilder(t)

	birthdayRepo.EXPECT().
		SelectFields(gomock.Any(), gomock.Any(), "Acme", "", gomock.Any(), gomock.Any()).
		Return([]domain.RawRecord{
			{"id": int64(1), "rede": "Acme"},
			{"id": int64(2), "rede": "Other"},
		}, nil)

	records, err := service.BuildReport(context.Background(), domain.ReportBirthday, domain.ReportFilters{
		Empresa:        "Acme",
		SelectedFields: []string{"id"},
	})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0]["id"])
}

func TestBuildReport_erroDeBancoEhPropagado(t *testing.T) {
	service, birthdayRepo, _ := newTestBuilder(t)

	birthdayRepo.EXPECT().
		SelectFields(gomock.Any(), gomock.Any(), "Acme", "", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := service.BuildReport(context.Background(), domain.ReportBirthday, domain.ReportFilters{
		Empresa:        "Acme",
		SelectedFields: []string{"cliente"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestBuildReport_promocoesMantemRedeNula(t *testing.T) {
	service, _, promotionRepo := newTestBuilder(t)

	promotionRepo.EXPECT().
		SelectFields(gomock.Any(), gomock.Any(), "Acme", "", gomock.Any(), gomock.Any()).
		Return([]domain.RawRecord{
			{"id": int64(1), "rede": "Acme"},
			{"id": int64(2), "rede": nil},
			{"id": int64(3), "rede": "Other"},
		}, nil)

	records, err := service.BuildReport(context.Background(), domain.ReportPromotion, domain.ReportFilters{
		Empresa:        "Acme",
		SelectedFields: []string{"id"},
	})

	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestBuildReport_promocoesFallbackQuandoReFiltroZera(t *testing.T) {
	service, _, promotionRepo := newTestBuilder(t)

	// Todos os registros com rede divergente: o re-filtro zeraria o
	// resultado, então o conjunto bruto é devolvido
	raw := []domain.RawRecord{
		{"id": int64(1), "rede": "Outra"},
		{"id": int64(2), "rede": "Outra"},
	}

	promotionRepo.EXPECT().
		SelectFields(gomock.Any(), gomock.Any(), "Acme", "", gomock.Any(), gomock.Any()).
		Return(raw, nil)

	records, err := service.BuildReport(context.Background(), domain.ReportPromotion, domain.ReportFilters{
		Empresa:        "Acme",
		SelectedFields: []string{"id"},
	})

	require.NoError(t, err)
	assert.Equal(t, raw, records)
}

func TestBuildReport_aniversariosSemFallback(t *testing.T) {
	service, birthdayRepo, _ := newTestBuilder(t)

	birthdayRepo.EXPECT().
		SelectFields(gomock.Any(), gomock.Any(), "Acme", "", gomock.Any(), gomock.Any()).
		Return([]domain.RawRecord{
			{"id": int64(1), "rede": "Outra"},
		}, nil)

	records, err := service.BuildReport(context.Background(), domain.ReportBirthday, domain.ReportFilters{
		Empresa:        "Acme",
		SelectedFields: []string{"id"},
	})

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestValidateUserAccess(t *testing.T) {
	service, birthdayRepo, _ := newTestBuilder(t)

	birthdayRepo.EXPECT().TenantExists(gomock.Any(), "Acme").Return(true, nil)
	assert.True(t, service.ValidateUserAccess(context.Background(), domain.ReportBirthday, "Acme"))

	birthdayRepo.EXPECT().TenantExists(gomock.Any(), "Nope").Return(false, nil)
	assert.False(t, service.ValidateUserAccess(context.Background(), domain.ReportBirthday, "Nope"))
}

func TestValidateUserAccess_negaEmErro(t *testing.T) {
	service, birthdayRepo, _ := newTestBuilder(t)

	birthdayRepo.EXPECT().TenantExists(gomock.Any(), "Acme").Return(false, errors.New("timeout"))

	assert.False(t, service.ValidateUserAccess(context.Background(), domain.ReportBirthday, "Acme"))
}

func TestValidateUserAccess_relatorioDesconhecido(t *testing.T) {
	service, _, _ := newTestBuilder(t)

	assert.False(t, service.ValidateUserAccess(context.Background(), domain.ReportType("unknown"), "Acme"))
}
