package response

import (
	"errors"
	"net/http"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrEmptyWorkbook):
		BadRequest(w, "Workbook has no sheets", nil)
	case errors.Is(err, attendance.ErrNoValidRows):
		BadRequest(w, "No valid attendance rows found in file", nil)
	case errors.Is(err, attendance.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported file format, expected .xlsx, .xls or .csv", nil)
	case errors.Is(err, attendance.ErrSummaryNotFound):
		NotFound(w, "Monthly summary not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
