package customreport

import (
	"context"
	"testing"

	"github.com/missiaspietro/pshot-report-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFilters_acumulaTodosOsErros(t *testing.T) {
	result := ValidateFilters(domain.ReportFilters{
		Empresa:        "",
		SelectedFields: []string{"cliente"},
		StartDate:      "2024-13-01",
	})

	assert.False(t, result.IsValid)
	// Empresa vazia e mês 13: dois erros de uma vez
	require.GreaterOrEqual(t, len(result.Errors), 2)
}

func TestValidateFilters_valido(t *testing.T) {
	result := ValidateFilters(domain.ReportFilters{
		Empresa:        "Acme",
		SelectedFields: []string{"cliente", "loja"},
		StartDate:      "2024-01-01",
		EndDate:        "2024-06-30",
	})

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateFilters_semCampos(t *testing.T) {
	result := ValidateFilters(domain.ReportFilters{
		Empresa: "Acme",
	})

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
}

func TestValidateFilters_dataComFormaErrada(t *testing.T) {
	result := ValidateFilters(domain.ReportFilters{
		Empresa:        "Acme",
		SelectedFields: []string{"cliente"},
		StartDate:      "01/01/2024",
	})

	assert.False(t, result.IsValid)
}

func TestValidateFilters_inicioDepoisDoFim(t *testing.T) {
	result := ValidateFilters(domain.ReportFilters{
		Empresa:        "Acme",
		SelectedFields: []string{"cliente"},
		StartDate:      "2024-06-30",
		EndDate:        "2024-01-01",
	})

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "posterior")
}

func TestValidDate(t *testing.T) {
	assert.True(t, validDate("2024-02-29"))  // bissexto
	assert.False(t, validDate("2023-02-29")) // não bissexto
	assert.False(t, validDate("2024-13-01")) // mês inválido com forma correta
	assert.False(t, validDate("2024-1-1"))
	assert.False(t, validDate(""))
}

func TestValidateCompanyData_descartaOutrasEmpresas(t *testing.T) {
	rows := []domain.RawRecord{
		{"id": int64(1), "rede": "Acme"},
		{"id": int64(2), "rede": "Other"},
	}

	valid := ValidateCompanyData(context.Background(), rows, "rede", "Acme", false)

	require.Len(t, valid, 1)
	assert.Equal(t, int64(1), valid[0]["id"])
}

func TestValidateCompanyData_redeVaziaDescartadaPorPadrao(t *testing.T) {
	rows := []domain.RawRecord{
		{"id": int64(1), "rede": "Acme"},
		{"id": int64(2), "rede": nil},
		{"id": int64(3), "rede": ""},
	}

	valid := ValidateCompanyData(context.Background(), rows, "rede", "Acme", false)

	require.Len(t, valid, 1)
}

func TestValidateCompanyData_promocoesMantemRedeVazia(t *testing.T) {
	rows := []domain.RawRecord{
		{"id": int64(1), "rede": "Acme"},
		{"id": int64(2), "rede": nil},
		{"id": int64(3), "rede": "Other"},
	}

	valid := ValidateCompanyData(context.Background(), rows, "rede", "Acme", true)

	// Rede nula permanece; rede de outra empresa não
	require.Len(t, valid, 2)
	assert.Equal(t, int64(1), valid[0]["id"])
	assert.Equal(t, int64(2), valid[1]["id"])
}
