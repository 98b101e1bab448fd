// Package customreport implementa os relatórios de campos customizados do
// dashboard: o usuário escolhe as colunas, a seleção é validada contra uma
// allow-list fixa por relatório e as linhas retornadas passam por uma
// re-checagem de empresa antes de chegar ao preview ou à exportação.
package customreport

import (
	"context"

	"github.com/missiaspietro/pshot-report-api/internal/domain"
	"github.com/missiaspietro/pshot-report-api/pkg/log"
)

// FieldSet descreve os campos permitidos de um relatório: identificador
// exposto na API -> expressão de coluna no banco. O mapeamento é fechado;
// identificadores fora dele são descartados na validação.
type FieldSet struct {
	PrimaryKey  string
	TenantField string
	columns     map[string]string
	order       []string
}

// Column resolve o identificador para a expressão usada no SELECT.
func (f FieldSet) Column(identifier string) (string, bool) {
	column, ok := f.columns[identifier]
	return column, ok
}

// Fields retorna os identificadores permitidos na ordem canônica.
func (f FieldSet) Fields() []string {
	return append([]string(nil), f.order...)
}

func newFieldSet(primaryKey, tenantField string, pairs [][2]string) FieldSet {
	columns := make(map[string]string, len(pairs))
	order := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		columns[pair[0]] = pair[1]
		order = append(order, pair[0])
	}

	return FieldSet{
		PrimaryKey:  primaryKey,
		TenantField: tenantField,
		columns:     columns,
		order:       order,
	}
}

var birthdayFields = newFieldSet("id", "rede", [][2]string{
	{"id", "id"},
	{"cliente", "cliente"},
	{"whatsapp", "whatsapp"},
	{"rede", "rede"},
	{"loja", "loja"},
	{"sub_rede", "sub_rede"},
	{"status", "status"},
	{"obs", "obs"},
	{"criado_em", "criado_em"},
})

var cashbackFields = newFieldSet("id", "Rede_de_loja", [][2]string{
	{"id", "id"},
	{"Nome", `"Nome"`},
	{"Whatsapp", `"Whatsapp"`},
	{"Rede_de_loja", `"Rede_de_loja"`},
	{"Loja", `"Loja"`},
	{"Status", `"Status"`},
	{"Envio_novo", `"Envio_novo"`},
})

var surveyFields = newFieldSet("id", "rede", [][2]string{
	{"id", "id"},
	{"nome", "nome"},
	{"telefone", "telefone"},
	{"rede", "rede"},
	{"loja", "loja"},
	{"resposta", "resposta"},
	{"vendedor", "vendedor"},
	{"criado_em", "criado_em"},
})

var promotionFields = newFieldSet("id", "rede", [][2]string{
	{"id", "id"},
	{"cliente", "cliente"},
	{"whatsapp", "whatsapp"},
	{"rede", "rede"},
	{"loja", "loja"},
	{"sub_rede", "sub_rede"},
	{"obs", "obs"},
	{"data_envio", "data_envio"},
})

var fieldSetsByReport = map[domain.ReportType]FieldSet{
	domain.ReportBirthday:  birthdayFields,
	domain.ReportCashback:  cashbackFields,
	domain.ReportSurvey:    surveyFields,
	domain.ReportPromotion: promotionFields,
}

// FieldSetFor retorna a allow-list do relatório.
func FieldSetFor(report domain.ReportType) (FieldSet, bool) {
	set, ok := fieldSetsByReport[report]
	return set, ok
}

// ValidateSelectedFields intersecta os campos pedidos com a allow-list do
// relatório. Identificadores desconhecidos são descartados com warning; a
// chave primária é sempre incluída para garantir identidade das linhas na
// exportação. Retorna vazio quando nenhum campo pedido é permitido.
func ValidateSelectedFields(ctx context.Context, report domain.ReportType, requested []string) []string {
	set, ok := fieldSetsByReport[report]
	if !ok {
		return nil
	}

	valid := make([]string, 0, len(requested))
	seen := make(map[string]bool, len(requested))

	for _, identifier := range requested {
		if _, allowed := set.columns[identifier]; !allowed {
			log.ForContext(ctx).WithFields(log.Fields{
				"report": report,
				"field":  identifier,
			}).Warn("Campo solicitado não consta na allow-list do relatório; descartado")
			continue
		}

		if seen[identifier] {
			continue
		}

		seen[identifier] = true
		valid = append(valid, identifier)
	}

	if len(valid) == 0 {
		return []string{}
	}

	if !seen[set.PrimaryKey] {
		valid = append(valid, set.PrimaryKey)
	}

	return valid
}
