package customreport

import (
	"context"
	"testing"

	"github.com/missiaspietro/pshot-report-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSelectedFields_descartaDesconhecidosEIncluiPK(t *testing.T) {
	fields := ValidateSelectedFields(context.Background(), domain.ReportBirthday,
		[]string{"cliente", "senha", "loja"})

	// "senha" não existe na allow-list; "id" entra forçado
	assert.Equal(t, []string{"cliente", "loja", "id"}, fields)
}

func TestValidateSelectedFields_pkNaoDuplicada(t *testing.T) {
	fields := ValidateSelectedFields(context.Background(), domain.ReportBirthday,
		[]string{"id", "cliente"})

	assert.Equal(t, []string{"id", "cliente"}, fields)
}

func TestValidateSelectedFields_duplicatasRemovidas(t *testing.T) {
	fields := ValidateSelectedFields(context.Background(), domain.ReportSurvey,
		[]string{"nome", "nome", "loja"})

	assert.Equal(t, []string{"nome", "loja", "id"}, fields)
}

func TestValidateSelectedFields_nenhumCampoValido(t *testing.T) {
	fields := ValidateSelectedFields(context.Background(), domain.ReportBirthday,
		[]string{"senha", "cpf"})

	// Vazio, não nil: o chamador distingue "nada válido" de "relatório desconhecido"
	require.NotNil(t, fields)
	assert.Empty(t, fields)
}

func TestValidateSelectedFields_relatorioDesconhecido(t *testing.T) {
	fields := ValidateSelectedFields(context.Background(), domain.ReportType("unknown"),
		[]string{"id"})

	assert.Nil(t, fields)
}

func TestFieldSetFor_cashbackUsaColunasComAspas(t *testing.T) {
	set, ok := FieldSetFor(domain.ReportCashback)
	require.True(t, ok)

	column, ok := set.Column("Nome")
	require.True(t, ok)
	assert.Equal(t, `"Nome"`, column)

	assert.Equal(t, "Rede_de_loja", set.TenantField)
	assert.Equal(t, "id", set.PrimaryKey)
}

func TestFieldSetFor_todosOsRelatorios(t *testing.T) {
	for _, report := range []domain.ReportType{
		domain.ReportBirthday,
		domain.ReportCashback,
		domain.ReportSurvey,
		domain.ReportPromotion,
	} {
		set, ok := FieldSetFor(report)
		require.True(t, ok, "relatório %s sem allow-list", report)
		assert.NotEmpty(t, set.Fields())

		_, hasPK := set.Column(set.PrimaryKey)
		assert.True(t, hasPK)

		_, hasTenant := set.Column(set.TenantField)
		assert.True(t, hasTenant)
	}
}
