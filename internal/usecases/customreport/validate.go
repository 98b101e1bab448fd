package customreport

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/missiaspietro/pshot-report-api/internal/domain"
	"github.com/missiaspietro/pshot-report-api/pkg/log"
)

var dateShapePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validDate exige o formato YYYY-MM-DD e uma data de calendário válida
// ("2024-13-01" passa no regex de forma, mas não é uma data).
func validDate(value string) bool {
	if !dateShapePattern.MatchString(value) {
		return false
	}
	_, err := time.Parse(time.DateOnly, value)
	return err == nil
}

// ValidateFilters valida os filtros de um relatório customizado acumulando
// todas as mensagens de erro, para que o usuário veja tudo de uma vez.
func ValidateFilters(filters domain.ReportFilters) domain.ValidationResult {
	errors := make([]string, 0)

	if filters.Empresa == "" {
		errors = append(errors, "empresa do usuário é obrigatória")
	}

	if len(filters.SelectedFields) == 0 {
		errors = append(errors, "selecione ao menos um campo para o relatório")
	}

	startOK := true
	if filters.StartDate != "" && !validDate(filters.StartDate) {
		errors = append(errors, fmt.Sprintf("data inicial inválida: %q (esperado YYYY-MM-DD)", filters.StartDate))
		startOK = false
	}

	endOK := true
	if filters.EndDate != "" && !validDate(filters.EndDate) {
		errors = append(errors, fmt.Sprintf("data final inválida: %q (esperado YYYY-MM-DD)", filters.EndDate))
		endOK = false
	}

	if startOK && endOK && filters.StartDate != "" && filters.EndDate != "" {
		if filters.StartDate > filters.EndDate {
			errors = append(errors, "a data inicial não pode ser posterior à data final")
		}
	}

	return domain.ValidationResult{
		IsValid: len(errors) == 0,
		Errors:  errors,
	}
}

// ValidateCompanyData re-filtra em memória as linhas devolvidas pelo banco,
// mantendo somente as da empresa esperada. É a segunda linha de isolamento
// de tenant, além do filtro SQL.
//
// Quando keepEmptyTenant é true (somente promoções), linhas com a coluna de
// empresa nula ou vazia são aceitas: a tabela de promoções tem registros
// antigos sem rede preenchida e descartá-los esconderia envios legítimos.
// A assimetria entre relatórios é intencional e deve ser mantida por tipo.
func ValidateCompanyData(ctx context.Context, rows []domain.RawRecord, tenantField, expected string, keepEmptyTenant bool) []domain.RawRecord {
	valid := make([]domain.RawRecord, 0, len(rows))

	for _, row := range rows {
		tenant := tenantString(row[tenantField])

		if tenant == expected {
			valid = append(valid, row)
			continue
		}

		if tenant == "" && keepEmptyTenant {
			valid = append(valid, row)
			continue
		}

		log.ForContext(ctx).WithFields(log.Fields{
			"expected": expected,
			"found":    tenant,
		}).Warn("Registro de outra empresa retornado pela consulta; descartado")
	}

	return valid
}

func tenantString(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
