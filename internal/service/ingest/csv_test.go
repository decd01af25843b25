package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/cell"
)

func TestParseCSV(t *testing.T) {
	text := "Name,Date,In,Out\n" +
		"Alice,2024-01-02,10:00,18:30\n" +
		"\n" +
		"\"Smith, Bob\",2024-01-02,10:00,14:00\r\n"

	rows := ParseCSV(text)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Date", "In", "Out"}, rows[0])
	assert.Equal(t, []string{"Alice", "2024-01-02", "10:00", "18:30"}, rows[1])
	assert.Equal(t, []string{"Smith, Bob", "2024-01-02", "10:00", "14:00"}, rows[2])
}

func TestParseCSVTrimsFields(t *testing.T) {
	rows := ParseCSV("a , b ,c\n")
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"a", "b", "c"}, rows[0])
}

func TestFromCSV(t *testing.T) {
	text := "Employee,Date,In,Out\n" +
		"Alice,2024-01-02,10:00,18:30\n" +
		"Bob,2024-01-02,10:00,14:00\n" +
		"Alice,2024-01-03,10:00,18:30\n" +
		",2024-01-04,10:00,18:30\n" + // missing name: skipped
		"Carol,,10:00,18:30\n" + // missing date: skipped
		"Dave,garbage,10:00,18:30\n" // unparseable date: skipped

	batch := FromCSV([]byte(text))
	employees := batch.Employees()

	require.Len(t, employees, 2)
	// First-seen order.
	assert.Equal(t, "Alice", employees[0].EmployeeName)
	assert.Equal(t, "Bob", employees[1].EmployeeName)
	assert.Len(t, employees[0].Records, 2)
	assert.Len(t, employees[1].Records, 1)
	assert.Equal(t, 3, batch.RecordCount())
}

func TestFromCSVHeaderAlwaysSkipped(t *testing.T) {
	// Even a data-shaped first line is discarded as header.
	text := "Alice,2024-01-02,10:00,18:30\n" +
		"Bob,2024-01-03,10:00,18:30\n"

	batch := FromCSV([]byte(text))
	employees := batch.Employees()

	require.Len(t, employees, 1)
	assert.Equal(t, "Bob", employees[0].EmployeeName)
}

func TestFromCSVShortRows(t *testing.T) {
	text := "Employee,Date,In,Out\n" +
		"Alice,2024-01-02\n" // no clock columns at all

	batch := FromCSV([]byte(text))
	employees := batch.Employees()

	require.Len(t, employees, 1)
	require.Len(t, employees[0].Records, 1)
	rec := employees[0].Records[0]
	assert.Nil(t, rec.InTime)
	assert.Nil(t, rec.OutTime)
	assert.Equal(t, attendance.StatusLeave, rec.Status)
}

func TestBatchIngestRowTrimsName(t *testing.T) {
	batch := NewBatch()
	ok := batch.IngestRow(cell.Text("  Alice  "), cell.Text("2024-01-02"), cell.Text("10:00"), cell.Text("18:30"))
	require.True(t, ok)
	assert.Equal(t, "Alice", batch.Employees()[0].EmployeeName)

	// Same trimmed name accumulates into the same employee.
	batch.IngestRow(cell.Text("Alice"), cell.Text("2024-01-03"), cell.Text("10:00"), cell.Text("18:30"))
	require.Len(t, batch.Employees(), 1)
	assert.Len(t, batch.Employees()[0].Records, 2)
}

func TestBatchIngestRowNumericName(t *testing.T) {
	batch := NewBatch()
	ok := batch.IngestRow(cell.Numeric(1042), cell.Text("2024-01-02"), cell.Text("10:00"), cell.Text("18:30"))
	require.True(t, ok)
	assert.Equal(t, "1042", batch.Employees()[0].EmployeeName)
}

func TestBatchIngestRowRejectsUnsupportedName(t *testing.T) {
	batch := NewBatch()
	ok := batch.IngestRow(cell.Unsupported(), cell.Text("2024-01-02"), cell.Text("10:00"), cell.Text("18:30"))
	assert.False(t, ok)
	assert.Empty(t, batch.Employees())
}
