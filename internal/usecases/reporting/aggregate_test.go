package reporting

import (
	"testing"
	"time"

	"github.com/missiaspietro/pshot-report-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthBuckets(t *testing.T) {
	ref := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	buckets := monthBuckets(6, ref)

	assert.Equal(t, []string{"2024-01", "2024-02", "2024-03", "2024-04", "2024-05", "2024-06"}, buckets)
}

func TestMonthBuckets_viradaDeAno(t *testing.T) {
	ref := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	buckets := monthBuckets(6, ref)

	assert.Equal(t, []string{"2023-09", "2023-10", "2023-11", "2023-12", "2024-01", "2024-02"}, buckets)
}

func TestDayBuckets(t *testing.T) {
	ref := time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC)

	buckets := dayBuckets(7, ref)

	assert.Equal(t, []string{
		"2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02",
		"2024-03-03", "2024-03-04", "2024-03-05",
	}, buckets)
}

func TestNormalizeStore(t *testing.T) {
	assert.Equal(t, "loja1", normalizeStore("  loja1  ", domain.NoStoreLabel))
	assert.Equal(t, domain.NoStoreLabel, normalizeStore("", domain.NoStoreLabel))
	assert.Equal(t, domain.NoNetworkLabel, normalizeStore("   ", domain.NoNetworkLabel))
}

func TestSortStores_numerico(t *testing.T) {
	stores := []string{"10", "2", "1"}

	sortStores(stores)

	assert.Equal(t, []string{"1", "2", "10"}, stores)
}

func TestSortStores_lexicografico(t *testing.T) {
	stores := []string{"loja10", "loja2", "loja1"}

	sortStores(stores)

	// Com rótulos não numéricos vale a ordem lexicográfica
	assert.Equal(t, []string{"loja1", "loja10", "loja2"}, stores)
}

func TestBuildPivot_zeraCombinacoesSemOcorrencia(t *testing.T) {
	ref := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	buckets := monthBuckets(6, ref)

	occurrences := []occurrence{
		{Store: "loja1", Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{Store: "loja1", Date: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)},
		{Store: "loja1", Date: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)},
		{Store: "loja2", Date: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)},
	}

	rows := buildPivot(occurrences, buckets, monthKey, domain.NoStoreLabel)

	require.Len(t, rows, 6)

	// Todo bucket emite todas as lojas, na mesma ordem
	for _, row := range rows {
		require.Len(t, row.Values, 2)
		assert.Equal(t, "loja1", row.Values[0].Store)
		assert.Equal(t, "loja2", row.Values[1].Store)
	}

	last := rows[5]
	assert.Equal(t, "2024-06", last.Bucket)
	assert.Equal(t, 3, last.Values[0].Count)
	assert.Equal(t, 0, last.Values[1].Count)

	may := rows[4]
	assert.Equal(t, "2024-05", may.Bucket)
	assert.Equal(t, 0, may.Values[0].Count)
	assert.Equal(t, 1, may.Values[1].Count)
}

func TestBuildPivot_lojaVaziaRecebeRotulo(t *testing.T) {
	ref := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	buckets := monthBuckets(6, ref)

	occurrences := []occurrence{
		{Store: "", Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{Store: "loja1", Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	rows := buildPivot(occurrences, buckets, monthKey, domain.NoStoreLabel)

	require.Len(t, rows, 6)
	last := rows[5]
	require.Len(t, last.Values, 2)
	assert.Equal(t, domain.NoStoreLabel, last.Values[0].Store)
	assert.Equal(t, 1, last.Values[0].Count)
	assert.Equal(t, "loja1", last.Values[1].Store)
}

func TestBuildPivot_ocorrenciaForaDaJanelaEhIgnorada(t *testing.T) {
	ref := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	buckets := monthBuckets(6, ref)

	occurrences := []occurrence{
		{Store: "loja1", Date: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	rows := buildPivot(occurrences, buckets, monthKey, domain.NoStoreLabel)

	require.Len(t, rows, 6)
	for _, row := range rows {
		for _, value := range row.Values {
			assert.Zero(t, value.Count)
		}
	}
}

func TestBuildPivot_semOcorrencias(t *testing.T) {
	ref := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	rows := buildPivot(nil, monthBuckets(6, ref), monthKey, domain.NoStoreLabel)

	require.Len(t, rows, 6)
	for _, row := range rows {
		assert.Empty(t, row.Values)
	}
}
