package attendance

import "errors"

// Attendance domain errors
var (
	// Batch-level upload errors; these abort the whole upload.
	ErrEmptyWorkbook     = errors.New("workbook has no sheets")
	ErrNoValidRows       = errors.New("no valid attendance rows found in file")
	ErrUnsupportedFormat = errors.New("unsupported file format, expected .xlsx, .xls or .csv")

	// Lookup errors
	ErrSummaryNotFound = errors.New("monthly summary not found")
)
