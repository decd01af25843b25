package attendance

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
)

// MonthlySummaryPDF implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlySummaryPDF(ctx context.Context, req attendance.MonthlySummaryRequest) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s, err := a.SummaryRepository.Get(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return nil, err
	}

	monthName := time.Month(s.Month).String()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Monthly Attendance Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", s.EmployeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s %d", monthName, s.Year))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Expected hours: %.2f", s.ExpectedHours))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Worked hours: %.2f", s.ActualWorkedHours))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Leaves used: %d", s.LeavesUsed))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Productivity: %.2f%%", s.Productivity))
	pdf.Ln(12)

	// Daily breakdown table.
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(35, 8, "Date", "1", 0, "", false, 0, "")
	pdf.CellFormat(35, 8, "Day", "1", 0, "", false, 0, "")
	pdf.CellFormat(35, 8, "Worked Hours", "1", 0, "", false, 0, "")
	pdf.CellFormat(35, 8, "Status", "1", 1, "", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, entry := range s.DailyRecords {
		worked := "-"
		if entry.WorkedHours != nil {
			worked = fmt.Sprintf("%.2f", *entry.WorkedHours)
		}
		pdf.CellFormat(35, 8, entry.Date.Format("2006-01-02"), "1", 0, "", false, 0, "")
		pdf.CellFormat(35, 8, entry.Day, "1", 0, "", false, 0, "")
		pdf.CellFormat(35, 8, worked, "1", 0, "", false, 0, "")
		pdf.CellFormat(35, 8, string(entry.Status), "1", 1, "", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render summary PDF: %w", err)
	}

	return buf.Bytes(), nil
}
