package summary

import (
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/schedule"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/utils"
)

// Month identifies one calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// GroupByMonth buckets records by the calendar month of their date,
// preserving record order within each bucket.
func GroupByMonth(records []attendance.DailyRecord) map[Month][]attendance.DailyRecord {
	groups := make(map[Month][]attendance.DailyRecord)
	for _, rec := range records {
		key := Month{Year: rec.Date.Year(), Month: rec.Date.Month()}
		groups[key] = append(groups[key], rec)
	}
	return groups
}

// ExpectedHours sums the schedule's expected hours over every calendar day
// of the month. Derived from the calendar, not from supplied records, so a
// month with missing data still gets the full denominator.
func ExpectedHours(year int, month time.Month) float64 {
	total := 0.0
	for day := firstOfMonth(year, month); day.Month() == month; day = day.AddDate(0, 0, 1) {
		total += schedule.PolicyFor(day).ExpectedHours
	}
	return utils.Round2(total)
}

// LeavesUsed counts, across every working day of the month, the days with
// no record or a record in leave status. A day nobody uploaded is
// indistinguishable from an explicit leave. Sundays never count.
func LeavesUsed(year int, month time.Month, records []attendance.DailyRecord) int {
	byDay := make(map[int]attendance.DailyRecord, len(records))
	for _, rec := range records {
		byDay[rec.Date.Day()] = rec
	}

	leaves := 0
	for day := firstOfMonth(year, month); day.Month() == month; day = day.AddDate(0, 0, 1) {
		if !schedule.PolicyFor(day).IsWorkingDay {
			continue
		}
		rec, ok := byDay[day.Day()]
		if !ok || rec.Status == attendance.StatusLeave {
			leaves++
		}
	}
	return leaves
}

// Productivity is actual over expected hours as a rounded percentage, 0
// when nothing was expected.
func Productivity(actualHours, expectedHours float64) float64 {
	if expectedHours == 0 {
		return 0
	}
	return utils.Round2(actualHours / expectedHours * 100)
}

// Aggregate computes the monthly summary for one employee from records that
// all belong to the given month. Idempotent: the same records always yield
// the same summary.
func Aggregate(year int, month time.Month, records []attendance.DailyRecord) attendance.MonthlySummary {
	actual := 0.0
	daily := make([]attendance.DailyEntry, 0, len(records))
	for _, rec := range records {
		if rec.WorkedHours != nil {
			actual += *rec.WorkedHours
		}
		daily = append(daily, attendance.DailyEntry{
			Date:        rec.Date,
			Day:         schedule.DayName(rec.Date),
			WorkedHours: rec.WorkedHours,
			Status:      rec.Status,
		})
	}
	actual = utils.Round2(actual)

	expected := ExpectedHours(year, month)

	return attendance.MonthlySummary{
		Month:             int(month),
		Year:              year,
		ExpectedHours:     expected,
		ActualWorkedHours: actual,
		LeavesUsed:        LeavesUsed(year, month, records),
		Productivity:      Productivity(actual, expected),
		DailyRecords:      daily,
	}
}

func firstOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}
