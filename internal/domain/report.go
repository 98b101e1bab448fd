package domain

import "time"

// ReportType identifica cada relatório suportado pelo dashboard.
type ReportType string

const (
	ReportBirthday  ReportType = "birthdays"
	ReportCashback  ReportType = "cashback"
	ReportSurvey    ReportType = "surveys"
	ReportPromotion ReportType = "promotions"
)

// Rótulos usados quando a linha não informa a loja de origem.
const (
	NoStoreLabel   = "Sem Loja"
	NoNetworkLabel = "Sem Rede"
)

// RawRecord é uma linha de relatório customizado: coluna -> valor escalar,
// na forma devolvida pelo banco para o conjunto de campos selecionado.
type RawRecord map[string]any

// StoreValue é a contagem de uma loja dentro de um bucket de tempo.
type StoreValue struct {
	Store string `json:"loja"`
	Count int    `json:"valor"`
}

// PivotRow é uma linha do gráfico: um bucket (mês ou dia) com o mesmo
// conjunto de lojas em todas as linhas do resultado, zerado quando ausente.
type PivotRow struct {
	Bucket string       `json:"bucket"`
	Values []StoreValue `json:"valores"`
}

// BirthdayRow é uma linha da tabela de envios de aniversário.
type BirthdayRow struct {
	ID        int64
	Cliente   string
	WhatsApp  string
	Rede      string
	Loja      string
	SubRede   string
	Status    string
	Obs       string
	CriadoEm  time.Time
}

// CashbackRow é uma linha da tabela de envios de cashback.
type CashbackRow struct {
	ID         int64
	Nome       string
	WhatsApp   string
	RedeDeLoja string
	Loja       string
	Status     string
	EnvioNovo  time.Time
}

// SurveyRow é uma linha da tabela de respostas de pesquisas.
type SurveyRow struct {
	ID       int64
	Nome     string
	Telefone string
	Rede     string
	Loja     string
	Resposta string
	Vendedor string
	CriadoEm time.Time
}

// PromotionRow é uma linha da tabela de envios de promoções.
type PromotionRow struct {
	ID        int64
	Cliente   string
	WhatsApp  string
	Rede      string
	Loja      string
	SubRede   string
	Obs       string
	DataEnvio time.Time
}

// ReportFilters é o corpo aceito pelos relatórios de campos customizados.
type ReportFilters struct {
	Empresa        string   `json:"empresa"`
	SelectedFields []string `json:"selectedFields"`
	StartDate      string   `json:"startDate,omitempty"`
	EndDate        string   `json:"endDate,omitempty"`
	SelectedStore  string   `json:"selectedStore,omitempty"`
}

// ValidationResult acumula mensagens de erro de validação de filtros para
// exibição direta ao usuário, em vez de interromper no primeiro problema.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}
