package reporting

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/missiaspietro/pshot-report-api/internal/domain"
)

// Quantidade de buckets emitidos pelos gráficos.
const (
	monthBucketCount = 6
	dayBucketCount   = 7
)

// occurrence é a forma mínima que a agregação precisa de qualquer linha de
// relatório: a loja de origem e a data do evento.
type occurrence struct {
	Store string
	Date  time.Time
}

// monthBuckets gera os rótulos de exatamente n meses consecutivos contando
// para trás a partir do mês de referência, do mais antigo para o mais novo.
func monthBuckets(n int, ref time.Time) []string {
	buckets := make([]string, 0, n)
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())

	for i := n - 1; i >= 0; i-- {
		buckets = append(buckets, first.AddDate(0, -i, 0).Format("2006-01"))
	}

	return buckets
}

// dayBuckets gera os rótulos de n dias consecutivos terminando no dia de
// referência.
func dayBuckets(n int, ref time.Time) []string {
	buckets := make([]string, 0, n)
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())

	for i := n - 1; i >= 0; i-- {
		buckets = append(buckets, day.AddDate(0, 0, -i).Format(time.DateOnly))
	}

	return buckets
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

func dayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// normalizeStore limpa o rótulo da loja; linhas sem loja entram no bucket
// de rótulo vazio recebido (ex.: "Sem Loja").
func normalizeStore(store, emptyLabel string) string {
	store = strings.TrimSpace(store)
	if store == "" {
		return emptyLabel
	}
	return store
}

// sortStores ordena as lojas numericamente quando todos os rótulos são
// inteiros ("1", "2", "10"), senão lexicograficamente. A ordem define a
// ordem das séries no gráfico e precisa ser estável entre chamadas.
func sortStores(stores []string) {
	allNumeric := true
	for _, store := range stores {
		if _, err := strconv.Atoi(store); err != nil {
			allNumeric = false
			break
		}
	}

	if allNumeric {
		sort.Slice(stores, func(i, j int) bool {
			a, _ := strconv.Atoi(stores[i])
			b, _ := strconv.Atoi(stores[j])
			return a < b
		})
		return
	}

	sort.Strings(stores)
}

// buildPivot materializa as linhas do gráfico: uma PivotRow por bucket, na
// ordem recebida, sempre com o conjunto global de lojas, zerada quando a
// combinação bucket×loja não tem ocorrências.
func buildPivot(occurrences []occurrence, buckets []string, keyFn func(time.Time) string, emptyLabel string) []domain.PivotRow {
	storeSet := make(map[string]struct{})
	counts := make(map[string]map[string]int, len(buckets))

	wanted := make(map[string]struct{}, len(buckets))
	for _, bucket := range buckets {
		wanted[bucket] = struct{}{}
	}

	for _, occ := range occurrences {
		store := normalizeStore(occ.Store, emptyLabel)
		storeSet[store] = struct{}{}

		bucket := keyFn(occ.Date)
		if _, ok := wanted[bucket]; !ok {
			continue
		}

		if counts[bucket] == nil {
			counts[bucket] = make(map[string]int)
		}
		counts[bucket][store]++
	}

	stores := make([]string, 0, len(storeSet))
	for store := range storeSet {
		stores = append(stores, store)
	}
	sortStores(stores)

	rows := make([]domain.PivotRow, 0, len(buckets))
	for _, bucket := range buckets {
		values := make([]domain.StoreValue, 0, len(stores))
		for _, store := range stores {
			values = append(values, domain.StoreValue{
				Store: store,
				Count: counts[bucket][store],
			})
		}

		rows = append(rows, domain.PivotRow{Bucket: bucket, Values: values})
	}

	return rows
}
