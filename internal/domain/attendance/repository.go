package attendance

import (
	"context"
)

// AttendanceRepository defines data access for per-day attendance records.
type AttendanceRepository interface {
	// UpsertDaily writes one derived day, keyed by (employeeID, record date).
	UpsertDaily(ctx context.Context, employeeID string, rec DailyRecord) error

	// ListByEmployeeMonth retrieves every persisted record of the employee
	// that falls inside the given calendar month.
	ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]DailyRecord, error)
}

// SummaryRepository defines data access for monthly summaries, keyed by
// (employeeID, month, year).
type SummaryRepository interface {
	Upsert(ctx context.Context, summary MonthlySummary) error

	// Get returns ErrSummaryNotFound when no summary exists for the key.
	Get(ctx context.Context, employeeID string, month, year int) (MonthlySummary, error)
}
