package ingest

import (
	"strings"

	"github.com/workpulse/workpulse-backend-go/internal/pkg/cell"
)

// ParseCSV splits comma-separated text into rows of trimmed fields. Commas
// inside double-quoted spans do not separate fields; there is no
// escaped-quote support. Blank lines are dropped.
func ParseCSV(text string) [][]string {
	var rows [][]string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		var row []string
		var field strings.Builder
		insideQuotes := false

		for _, ch := range line {
			switch {
			case ch == '"':
				insideQuotes = !insideQuotes
			case ch == ',' && !insideQuotes:
				row = append(row, strings.TrimSpace(field.String()))
				field.Reset()
			default:
				field.WriteRune(ch)
			}
		}
		row = append(row, strings.TrimSpace(field.String()))
		rows = append(rows, row)
	}

	return rows
}

// FromCSV ingests delimited text. The first non-blank line is always
// treated as a header and discarded.
func FromCSV(data []byte) *Batch {
	batch := NewBatch()

	rows := ParseCSV(string(data))
	for i := 1; i < len(rows); i++ {
		batch.IngestRow(
			csvCell(rows[i], 0),
			csvCell(rows[i], 1),
			csvCell(rows[i], 2),
			csvCell(rows[i], 3),
		)
	}

	return batch
}

// csvCell returns the field at idx as a text cell value. CSV carries no
// type information, so every field is text.
func csvCell(row []string, idx int) cell.Value {
	if idx >= len(row) {
		return cell.Text("")
	}
	return cell.Text(row[idx])
}
