package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/cell"
)

func TestDeriveRecordFullDay(t *testing.T) {
	// Tuesday 2024-01-02, 10:00 - 18:30.
	rec, ok := DeriveRecord(cell.Text("2024-01-02"), cell.Text("10:00"), cell.Text("18:30"))
	require.True(t, ok)

	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), rec.Date)
	require.NotNil(t, rec.WorkedHours)
	assert.Equal(t, 8.5, *rec.WorkedHours)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	require.NotNil(t, rec.InTime)
	assert.Equal(t, 10, rec.InTime.Hour())
	require.NotNil(t, rec.OutTime)
	assert.Equal(t, 18, rec.OutTime.Hour())
	assert.Equal(t, 30, rec.OutTime.Minute())
}

func TestDeriveRecordMeridiemTimes(t *testing.T) {
	rec, ok := DeriveRecord(cell.Text("2024-01-02"), cell.Text("10:00 AM"), cell.Text("2:30 PM"))
	require.True(t, ok)
	require.NotNil(t, rec.WorkedHours)
	assert.Equal(t, 4.5, *rec.WorkedHours)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
}

func TestDeriveRecordSwappedTimes(t *testing.T) {
	// Out before in yields no worked hours, and therefore leave.
	rec, ok := DeriveRecord(cell.Text("2024-01-02"), cell.Text("18:30"), cell.Text("10:00"))
	require.True(t, ok)
	assert.Nil(t, rec.WorkedHours)
	assert.Equal(t, attendance.StatusLeave, rec.Status)
}

func TestDeriveRecordOverlongShift(t *testing.T) {
	rec, ok := DeriveRecord(cell.Text("2024-01-02"), cell.Text("6:00"), cell.Text("22:30"))
	require.True(t, ok)
	assert.Nil(t, rec.WorkedHours)
	assert.Equal(t, attendance.StatusLeave, rec.Status)
}

func TestDeriveRecordSunday(t *testing.T) {
	rec, ok := DeriveRecord(cell.Text("2024-01-07"), cell.Text(""), cell.Text(""))
	require.True(t, ok)
	assert.Nil(t, rec.WorkedHours)
	assert.Equal(t, attendance.StatusSunday, rec.Status)

	// Even with clock times, a Sunday stays sunday.
	rec, ok = DeriveRecord(cell.Text("2024-01-07"), cell.Text("10:00"), cell.Text("14:00"))
	require.True(t, ok)
	assert.Equal(t, attendance.StatusSunday, rec.Status)
}

func TestDeriveRecordMissingTimes(t *testing.T) {
	rec, ok := DeriveRecord(cell.Text("2024-01-02"), cell.Text(""), cell.Text("18:30"))
	require.True(t, ok)
	assert.Nil(t, rec.InTime)
	require.NotNil(t, rec.OutTime)
	assert.Nil(t, rec.WorkedHours)
	assert.Equal(t, attendance.StatusLeave, rec.Status)
}

func TestDeriveRecordRejectsBadDate(t *testing.T) {
	_, ok := DeriveRecord(cell.Text(""), cell.Text("10:00"), cell.Text("18:30"))
	assert.False(t, ok)

	_, ok = DeriveRecord(cell.Text("not a date"), cell.Text("10:00"), cell.Text("18:30"))
	assert.False(t, ok)

	_, ok = DeriveRecord(cell.Unsupported(), cell.Text("10:00"), cell.Text("18:30"))
	assert.False(t, ok)
}

func TestDeriveRecordSerialDate(t *testing.T) {
	rec, ok := DeriveRecord(cell.Numeric(45000), cell.Numeric(10.0/24), cell.Numeric(18.5/24))
	require.True(t, ok)
	assert.Equal(t, "2023-03-15", rec.Date.Format("2006-01-02"))
	require.NotNil(t, rec.WorkedHours)
	assert.Equal(t, 8.5, *rec.WorkedHours)
}

func TestWorkedHoursBounds(t *testing.T) {
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) *time.Time {
		ts := day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
		return &ts
	}

	assert.Nil(t, WorkedHours(nil, at(18, 0)))
	assert.Nil(t, WorkedHours(at(10, 0), nil))
	assert.Nil(t, WorkedHours(at(18, 0), at(10, 0)))
	assert.Nil(t, WorkedHours(at(6, 0), at(18, 30))) // 12.5h

	got := WorkedHours(at(6, 0), at(18, 0)) // exactly 12h is allowed
	require.NotNil(t, got)
	assert.Equal(t, 12.0, *got)

	got = WorkedHours(at(10, 0), at(10, 0))
	require.NotNil(t, got)
	assert.Equal(t, 0.0, *got)
}

func TestStatusForNilHours(t *testing.T) {
	sunday := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, attendance.StatusSunday, StatusFor(sunday, nil))
	assert.Equal(t, attendance.StatusLeave, StatusFor(monday, nil))

	zero := 0.0
	assert.Equal(t, attendance.StatusLeave, StatusFor(monday, &zero))

	full := 8.5
	assert.Equal(t, attendance.StatusPresent, StatusFor(monday, &full))
}
