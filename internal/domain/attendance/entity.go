package attendance

import (
	"time"
)

// Status classifies one employee-day.
type Status string

const (
	StatusPresent Status = "present"
	StatusLeave   Status = "leave"
	StatusSunday  Status = "sunday"
)

// DailyRecord is one derived employee-day. Date is always midnight UTC and
// acts as the natural key within an employee. WorkedHours is nil when either
// clock time is missing or the span is invalid; a nil WorkedHours implies
// the status is leave or sunday.
type DailyRecord struct {
	Date        time.Time
	InTime      *time.Time
	OutTime     *time.Time
	WorkedHours *float64
	Status      Status
}

// EmployeeAttendance accumulates the derived records of one employee within
// a single upload batch. EmployeeID is empty until the batch is committed.
type EmployeeAttendance struct {
	EmployeeID   string
	EmployeeName string
	Records      []DailyRecord
}

// DailyEntry is the denormalized per-day row embedded in a monthly summary
// for display. Serialized as JSON when the summary is persisted.
type DailyEntry struct {
	Date        time.Time `json:"date"`
	Day         string    `json:"day"`
	WorkedHours *float64  `json:"worked_hours"`
	Status      Status    `json:"status"`
}

// MonthlySummary holds the aggregated productivity metrics of one employee
// for one calendar month. Natural key: (EmployeeID, Month, Year).
type MonthlySummary struct {
	EmployeeID        string
	EmployeeName      string
	Month             int
	Year              int
	ExpectedHours     float64
	ActualWorkedHours float64
	LeavesUsed        int
	Productivity      float64
	DailyRecords      []DailyEntry
}
