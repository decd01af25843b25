package ingest

import (
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/schedule"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/cell"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/utils"
)

// maxWorkedHours guards against swapped in/out times and multi-day spans.
// Durations outside (0, 12] are treated as missing, not as errors.
const maxWorkedHours = 12.0

// DeriveRecord turns one row's raw date and clock cells into a DailyRecord.
// ok is false when the date is absent or unparseable; the caller skips the
// row. Clock parse failures never fail the row, they only leave the
// corresponding timestamp nil.
func DeriveRecord(dateRaw, inRaw, outRaw cell.Value) (attendance.DailyRecord, bool) {
	if !dateRaw.IsUsable() {
		return attendance.DailyRecord{}, false
	}

	parsed, ok := cell.ParseDate(dateRaw)
	if !ok {
		return attendance.DailyRecord{}, false
	}

	// Midnight of the parsed date is the canonical per-day key.
	date := cell.Midnight(parsed)

	var inTime, outTime *time.Time
	if inRaw.IsUsable() {
		if clock, ok := cell.ParseTime(inRaw); ok {
			ts := cell.Combine(date, clock)
			inTime = &ts
		}
	}
	if outRaw.IsUsable() {
		if clock, ok := cell.ParseTime(outRaw); ok {
			ts := cell.Combine(date, clock)
			outTime = &ts
		}
	}

	worked := WorkedHours(inTime, outTime)

	return attendance.DailyRecord{
		Date:        date,
		InTime:      inTime,
		OutTime:     outTime,
		WorkedHours: worked,
		Status:      StatusFor(date, worked),
	}, true
}

// WorkedHours computes the shift length in hours, rounded to 2 decimals.
// Returns nil when either timestamp is missing or the duration is negative
// or longer than maxWorkedHours.
func WorkedHours(inTime, outTime *time.Time) *float64 {
	if inTime == nil || outTime == nil {
		return nil
	}

	hours := outTime.Sub(*inTime).Hours()
	if hours < 0 || hours > maxWorkedHours {
		return nil
	}

	rounded := utils.Round2(hours)
	return &rounded
}

// StatusFor classifies a day: sunday when the schedule marks it
// non-working, leave when no positive worked hours, present otherwise.
func StatusFor(date time.Time, workedHours *float64) attendance.Status {
	if !schedule.PolicyFor(date).IsWorkingDay {
		return attendance.StatusSunday
	}
	if workedHours == nil || *workedHours == 0 {
		return attendance.StatusLeave
	}
	return attendance.StatusPresent
}
