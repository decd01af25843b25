package schedule

import "time"

// DayPolicy describes the working-hours expectation for a single calendar day.
type DayPolicy struct {
	Weekday       time.Weekday
	IsWorkingDay  bool
	ExpectedHours float64
}

// Fixed company schedule: Monday-Friday full day (10:00-18:30),
// Saturday half day (10:00-14:00), Sunday off. No holiday calendar.
const (
	WeekdayHours  = 8.5
	SaturdayHours = 4.0
)

// PolicyFor returns the schedule policy for the given date. Total function,
// no failure mode.
func PolicyFor(date time.Time) DayPolicy {
	switch wd := date.Weekday(); wd {
	case time.Sunday:
		return DayPolicy{Weekday: wd, IsWorkingDay: false, ExpectedHours: 0}
	case time.Saturday:
		return DayPolicy{Weekday: wd, IsWorkingDay: true, ExpectedHours: SaturdayHours}
	default:
		return DayPolicy{Weekday: wd, IsWorkingDay: true, ExpectedHours: WeekdayHours}
	}
}

// DayName returns the display name of the date's weekday (Sunday..Saturday).
func DayName(date time.Time) string {
	return date.Weekday().String()
}
