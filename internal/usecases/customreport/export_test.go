package customreport

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/missiaspietro/pshot-report-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	records := []domain.RawRecord{
		{"id": int64(1), "cliente": "Maria", "criado_em": "2024-06-01"},
		{"id": int64(2), "cliente": "José; Filho", "criado_em": nil},
	}

	err := WriteCSV(&buf, []string{"id", "cliente", "criado_em"}, records)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,cliente,criado_em", lines[0])
	assert.Equal(t, "1,Maria,2024-06-01", lines[1])
	// Valor nulo vira célula vazia
	assert.Equal(t, "2,José; Filho,", lines[2])
}

func TestWriteCSV_semRegistros(t *testing.T) {
	var buf bytes.Buffer

	err := WriteCSV(&buf, []string{"id", "cliente"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "id,cliente\n", buf.String())
}

func TestWriteCSV_campoAusenteNoRegistro(t *testing.T) {
	var buf bytes.Buffer

	records := []domain.RawRecord{
		{"id": int64(1)},
	}

	err := WriteCSV(&buf, []string{"id", "cliente"}, records)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "1,", lines[1])
}

func TestCellValue(t *testing.T) {
	assert.Equal(t, "", cellValue(nil))
	assert.Equal(t, "abc", cellValue("abc"))
	assert.Equal(t, "2024-06-01", cellValue(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "3.5", cellValue(3.5))
	assert.Equal(t, "true", cellValue(true))
	assert.Equal(t, "7", cellValue(int64(7)))
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	name := ExportFilename(domain.ReportBirthday, now)

	assert.True(t, strings.HasPrefix(name, "relatorio-birthdays-20240615-"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
}
