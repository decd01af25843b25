package ingest

import (
	"strconv"
	"strings"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/cell"
)

// Batch accumulates derived records per employee over one upload. It is
// private to a single ingestion call and never shared, so it needs no
// locking. Employee order is first-seen; record order is row-encounter.
type Batch struct {
	order  []string
	byName map[string]*attendance.EmployeeAttendance
}

func NewBatch() *Batch {
	return &Batch{byName: make(map[string]*attendance.EmployeeAttendance)}
}

func (b *Batch) add(name string, rec attendance.DailyRecord) {
	ea, ok := b.byName[name]
	if !ok {
		ea = &attendance.EmployeeAttendance{EmployeeName: name}
		b.byName[name] = ea
		b.order = append(b.order, name)
	}
	ea.Records = append(ea.Records, rec)
}

// Employees returns the accumulated batch in first-seen employee order.
func (b *Batch) Employees() []attendance.EmployeeAttendance {
	out := make([]attendance.EmployeeAttendance, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, *b.byName[name])
	}
	return out
}

// RecordCount returns the total number of derived records in the batch.
func (b *Batch) RecordCount() int {
	n := 0
	for _, ea := range b.byName {
		n += len(ea.Records)
	}
	return n
}

// IngestRow validates the employee name, derives the daily record, and adds
// it to the batch. Returns false when the row was skipped.
func (b *Batch) IngestRow(name, date, inTime, outTime cell.Value) bool {
	if !name.IsUsable() {
		return false
	}
	trimmed := strings.TrimSpace(nameString(name))
	if trimmed == "" {
		return false
	}

	rec, ok := DeriveRecord(date, inTime, outTime)
	if !ok {
		return false
	}

	b.add(trimmed, rec)
	return true
}

// nameString renders any usable cell value as an employee name. Numeric
// employee IDs are common in exports.
func nameString(v cell.Value) string {
	switch v.Kind {
	case cell.KindText:
		return v.Text
	case cell.KindNumeric:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case cell.KindDateTime:
		return v.Time.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}
