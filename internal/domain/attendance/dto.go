package attendance

import (
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type UploadRequest struct {
	FileName string `json:"-"`
	Data     []byte `json:"-"`
}

func (r *UploadRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FileName) {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "file name is required",
		})
	}

	if len(r.Data) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "file is empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UploadResponse struct {
	Employees int `json:"employees"`
	Records   int `json:"records"`
	Skipped   int `json:"skipped_employees,omitempty"`
}

type MonthlySummaryRequest struct {
	EmployeeID string
	Month      int
	Year       int
}

func (r *MonthlySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 1900 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MonthlySummaryResponse struct {
	EmployeeID        string       `json:"employee_id"`
	EmployeeName      string       `json:"employee_name"`
	Month             int          `json:"month"`
	Year              int          `json:"year"`
	ExpectedHours     float64      `json:"expected_hours"`
	ActualWorkedHours float64      `json:"actual_worked_hours"`
	LeavesUsed        int          `json:"leaves_used"`
	Productivity      float64      `json:"productivity"`
	DailyRecords      []DailyEntry `json:"daily_records"`
}

func NewMonthlySummaryResponse(s MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		EmployeeID:        s.EmployeeID,
		EmployeeName:      s.EmployeeName,
		Month:             s.Month,
		Year:              s.Year,
		ExpectedHours:     s.ExpectedHours,
		ActualWorkedHours: s.ActualWorkedHours,
		LeavesUsed:        s.LeavesUsed,
		Productivity:      s.Productivity,
		DailyRecords:      s.DailyRecords,
	}
}
