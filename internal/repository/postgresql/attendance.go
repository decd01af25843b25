package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// UpsertDaily implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) UpsertDaily(ctx context.Context, employeeID string, rec attendance.DailyRecord) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, date, in_time, out_time, worked_hours, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, NOW(), NOW()
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			in_time = EXCLUDED.in_time,
			out_time = EXCLUDED.out_time,
			worked_hours = EXCLUDED.worked_hours,
			status = EXCLUDED.status,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		employeeID, rec.Date, rec.InTime, rec.OutTime, rec.WorkedHours, rec.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert attendance record for %s on %s: %w",
			employeeID, rec.Date.Format("2006-01-02"), err)
	}

	return nil
}

// ListByEmployeeMonth implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]attendance.DailyRecord, error) {
	q := GetQuerier(ctx, a.db)

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	rows, err := q.Query(ctx, `
		SELECT date, in_time, out_time, worked_hours, status
		FROM attendance_records
		WHERE employee_id = $1
		  AND date >= $2
		  AND date < $3
		ORDER BY date ASC
	`, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.DailyRecord
	for rows.Next() {
		var rec attendance.DailyRecord
		if err := rows.Scan(&rec.Date, &rec.InTime, &rec.OutTime, &rec.WorkedHours, &rec.Status); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		rec.Date = rec.Date.UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}

	return records, nil
}
