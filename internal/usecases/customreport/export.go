package customreport

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/missiaspietro/pshot-report-api/internal/domain"
	"github.com/missiaspietro/pshot-report-api/pkg/utils"
	"github.com/pkg/errors"
)

// WriteCSV serializa os registros na ordem de campos validada. Campos
// ausentes ou nulos viram célula vazia; o cabeçalho usa os identificadores
// dos campos, que são os mesmos nomes que o dashboard exibe.
func WriteCSV(w io.Writer, fields []string, records []domain.RawRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(fields); err != nil {
		return errors.Wrap(err, "erro ao escrever cabeçalho do CSV")
	}

	row := make([]string, len(fields))
	for _, record := range records {
		for i, field := range fields {
			row[i] = cellValue(record[field])
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "erro ao escrever linha do CSV")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "erro ao finalizar CSV")
}

// ExportFilename gera o nome do arquivo de download, com sufixo aleatório
// para evitar colisão de cache no navegador.
func ExportFilename(report domain.ReportType, now time.Time) string {
	suffix, err := utils.GenerateID()
	if err != nil {
		suffix = now.Format("150405")
	}
	return fmt.Sprintf("relatorio-%s-%s-%s.csv", report, now.Format("20060102"), suffix)
}

func cellValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(time.DateOnly)
	case float64:
		return fmt.Sprintf("%g", v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}
