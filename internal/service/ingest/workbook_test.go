package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for r, row := range rows {
		for c, value := range row {
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", axis, value))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestFromXLSX(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Employee", "Date", "In", "Out"},
		{"Alice", "2024-01-02", "10:00", "18:30"},
		{"Bob", "2024-01-02", "10:00 AM", "2:00 PM"},
		{"Alice", "2024-01-03", "10:00", "18:30"},
	})

	batch, err := FromXLSX(data)
	require.NoError(t, err)

	employees := batch.Employees()
	require.Len(t, employees, 2)
	assert.Equal(t, "Alice", employees[0].EmployeeName)
	assert.Equal(t, "Bob", employees[1].EmployeeName)
	assert.Len(t, employees[0].Records, 2)

	require.NotNil(t, employees[1].Records[0].WorkedHours)
	assert.Equal(t, 4.0, *employees[1].Records[0].WorkedHours)
}

func TestFromXLSXNumericDateSerial(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Employee", "Date", "In", "Out"},
		{"Alice", 45000, 0.4375, 0.5}, // 2023-03-15, 10:30 - 12:00
	})

	batch, err := FromXLSX(data)
	require.NoError(t, err)

	employees := batch.Employees()
	require.Len(t, employees, 1)
	rec := employees[0].Records[0]
	assert.Equal(t, "2023-03-15", rec.Date.Format("2006-01-02"))
	require.NotNil(t, rec.WorkedHours)
	assert.Equal(t, 1.5, *rec.WorkedHours)
}

func TestFromXLSXBooleanCellsSkipRow(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Employee", "Date", "In", "Out"},
		{"Alice", true, "10:00", "18:30"},  // boolean date: row skipped
		{true, "2024-01-02", "10:00", "18:30"}, // boolean name: row skipped
		{"Bob", "2024-01-02", "10:00", "18:30"},
	})

	batch, err := FromXLSX(data)
	require.NoError(t, err)

	employees := batch.Employees()
	require.Len(t, employees, 1)
	assert.Equal(t, "Bob", employees[0].EmployeeName)

	// Alice's only row had a boolean date, so no entry exists for her.
	for _, ea := range employees {
		assert.NotEqual(t, "Alice", ea.EmployeeName)
	}
}

func TestFromXLSXBooleanClockCellLeavesTimeNil(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Employee", "Date", "In", "Out"},
		{"Alice", "2024-01-02", true, "18:30"},
	})

	batch, err := FromXLSX(data)
	require.NoError(t, err)

	employees := batch.Employees()
	require.Len(t, employees, 1)
	rec := employees[0].Records[0]
	assert.Nil(t, rec.InTime)
	assert.Nil(t, rec.WorkedHours)
	assert.Equal(t, attendance.StatusLeave, rec.Status)
}

func TestFromXLSXHeaderOnly(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Employee", "Date", "In", "Out"},
	})

	batch, err := FromXLSX(data)
	require.NoError(t, err)
	assert.Zero(t, batch.RecordCount())
}

func TestFromXLSXGarbage(t *testing.T) {
	_, err := FromXLSX([]byte("this is not a workbook"))
	assert.Error(t, err)
}

func TestClassifyRaw(t *testing.T) {
	assert.Equal(t, 45000.0, classifyRaw("45000").Number)
	assert.Equal(t, "10:00", classifyRaw("10:00").Text)
	assert.False(t, classifyRaw("").IsUsable())
}
