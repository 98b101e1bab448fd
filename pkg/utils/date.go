package utils

import "time"

// ParseDate converte uma data "YYYY-MM-DD" opcional. String vazia retorna
// nil, indicando que o chamador deve usar a janela padrão.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// DefaultWindow calcula a janela padrão dos relatórios: do primeiro dia do
// mês atual menos 5 meses (6 meses completos de buckets) até hoje.
func DefaultWindow(now time.Time) (start, end time.Time) {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start = firstOfMonth.AddDate(0, -5, 0)
	end = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, end
}

// ResolveWindow aplica a janela padrão quando uma das pontas não foi
// informada.
func ResolveWindow(startDate, endDate *time.Time, now time.Time) (time.Time, time.Time) {
	defaultStart, defaultEnd := DefaultWindow(now)

	start := defaultStart
	if startDate != nil && !startDate.IsZero() {
		start = *startDate
	}

	end := defaultEnd
	if endDate != nil && !endDate.IsZero() {
		end = *endDate
	}

	return start, end
}
