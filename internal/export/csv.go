// Package export serializes a result table to CSV. The two frontends
// historically ship different column sets; both layouts are kept.
package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/spacesedan/tubemood/internal/models"
)

// CLIRecords renders the full five-column export the CLI writes to
// disk.
func CLIRecords(table models.ResultTable) ([]byte, error) {
	return write(table, true)
}

// BotRecords renders the four-column export the bot attaches to its
// reply. It omits the Translated column.
func BotRecords(table models.ResultTable) ([]byte, error) {
	return write(table, false)
}

func write(table models.ResultTable, withTranslated bool) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Author", "Original", "Translated", "Score", "Category"}
	if !withTranslated {
		header = []string{"Author", "Original", "Score", "Category"}
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, record := range table {
		score := strconv.FormatFloat(record.Score, 'f', 4, 64)
		row := []string{record.Author, record.Original, record.Translated, score, string(record.Category)}
		if !withTranslated {
			row = []string{record.Author, record.Original, score, string(record.Category)}
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
