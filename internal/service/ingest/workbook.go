package ingest

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/cell"
)

// Column layout is fixed: 1 name, 2 date, 3 in-time, 4 out-time.
const rowColumns = 4

// FromXLSX ingests the first sheet of an xlsx workbook. Row 1 is the
// header. Cell values are read raw so date and time cells arrive as their
// underlying serial numbers; boolean and error cells are rejected per row.
func FromXLSX(data []byte) (*Batch, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, attendance.ErrEmptyWorkbook
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	batch := NewBatch()
	for i := 1; i < len(rows); i++ {
		values := make([]cell.Value, rowColumns)
		for col := 0; col < rowColumns; col++ {
			values[col] = xlsxCell(f, sheet, rows[i], i+1, col+1)
		}
		batch.IngestRow(values[0], values[1], values[2], values[3])
	}

	return batch, nil
}

// xlsxCell classifies one raw cell into the closed value union. This is the
// single choke point where excelize's dynamic cell content becomes typed.
func xlsxCell(f *excelize.File, sheet string, row []string, rowIdx, colIdx int) cell.Value {
	raw := ""
	if colIdx-1 < len(row) {
		raw = row[colIdx-1]
	}

	axis, err := excelize.CoordinatesToCellName(colIdx, rowIdx)
	if err != nil {
		return cell.Unsupported()
	}

	switch ct, _ := f.GetCellType(sheet, axis); ct {
	case excelize.CellTypeBool, excelize.CellTypeError:
		// Booleans are never valid names, dates or times.
		return cell.Unsupported()
	}

	return classifyRaw(raw)
}

// FromXLS ingests a legacy BIFF workbook. The whole batch fails when the
// workbook has no sheets.
func FromXLS(data []byte) (*Batch, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	if wb.NumSheets() == 0 {
		return nil, attendance.ErrEmptyWorkbook
	}

	rows := wb.ReadAllCells(100000)

	batch := NewBatch()
	for i := 1; i < len(rows); i++ {
		values := make([]cell.Value, rowColumns)
		for col := 0; col < rowColumns; col++ {
			raw := ""
			if col < len(rows[i]) {
				raw = rows[i][col]
			}
			values[col] = classifyRaw(raw)
		}
		batch.IngestRow(values[0], values[1], values[2], values[3])
	}

	return batch, nil
}

// classifyRaw maps a raw cell string to Numeric when it parses as a number
// (date/time serials included), otherwise Text.
func classifyRaw(raw string) cell.Value {
	if raw == "" {
		return cell.Text("")
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return cell.Numeric(n)
	}
	return cell.Text(raw)
}
