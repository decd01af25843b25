package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance ingestion and the
// dashboard read side.
type AttendanceService interface {
	// ProcessBatch parses an uploaded workbook or CSV into per-employee
	// derived records. Nothing is persisted; row-level defects are skipped,
	// batch-level defects abort with a domain error.
	ProcessBatch(ctx context.Context, req UploadRequest) ([]EmployeeAttendance, error)

	// CommitBatch persists a processed batch: employee identities, daily
	// records, and a recomputed monthly summary for every month touched.
	CommitBatch(ctx context.Context, batch []EmployeeAttendance) (UploadResponse, error)

	// Upload runs ProcessBatch then CommitBatch.
	Upload(ctx context.Context, req UploadRequest) (UploadResponse, error)

	// ListEmployees retrieves all known employees ordered by name.
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// GetMonthlySummary retrieves one employee's summary for a month.
	GetMonthlySummary(ctx context.Context, req MonthlySummaryRequest) (MonthlySummaryResponse, error)

	// MonthlySummaryPDF renders one employee's monthly summary as a PDF.
	MonthlySummaryPDF(ctx context.Context, req MonthlySummaryRequest) ([]byte, error)
}
