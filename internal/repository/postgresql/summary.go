package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type summaryRepositoryImpl struct {
	db *database.DB
}

func NewSummaryRepository(db *database.DB) attendance.SummaryRepository {
	return &summaryRepositoryImpl{db: db}
}

// Upsert implements attendance.SummaryRepository.
func (s *summaryRepositoryImpl) Upsert(ctx context.Context, summary attendance.MonthlySummary) error {
	q := GetQuerier(ctx, s.db)

	dailyJSON, err := json.Marshal(summary.DailyRecords)
	if err != nil {
		return fmt.Errorf("failed to marshal daily records: %w", err)
	}

	query := `
		INSERT INTO monthly_summaries (
			employee_id, month, year, expected_hours, actual_worked_hours,
			leaves_used, productivity, daily_records, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()
		)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			expected_hours = EXCLUDED.expected_hours,
			actual_worked_hours = EXCLUDED.actual_worked_hours,
			leaves_used = EXCLUDED.leaves_used,
			productivity = EXCLUDED.productivity,
			daily_records = EXCLUDED.daily_records,
			updated_at = NOW()
	`

	_, err = q.Exec(ctx, query,
		summary.EmployeeID, summary.Month, summary.Year,
		summary.ExpectedHours, summary.ActualWorkedHours,
		summary.LeavesUsed, summary.Productivity, dailyJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert monthly summary for %s %d-%02d: %w",
			summary.EmployeeID, summary.Year, summary.Month, err)
	}

	return nil
}

// Get implements attendance.SummaryRepository.
func (s *summaryRepositoryImpl) Get(ctx context.Context, employeeID string, month, year int) (attendance.MonthlySummary, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT s.employee_id, e.name, s.month, s.year, s.expected_hours,
			   s.actual_worked_hours, s.leaves_used, s.productivity, s.daily_records
		FROM monthly_summaries s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1
		  AND s.month = $2
		  AND s.year = $3
	`

	var summary attendance.MonthlySummary
	var dailyJSON []byte
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&summary.EmployeeID, &summary.EmployeeName, &summary.Month, &summary.Year,
		&summary.ExpectedHours, &summary.ActualWorkedHours,
		&summary.LeavesUsed, &summary.Productivity, &dailyJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.MonthlySummary{}, attendance.ErrSummaryNotFound
		}
		return attendance.MonthlySummary{}, fmt.Errorf("failed to get monthly summary: %w", err)
	}

	if err := json.Unmarshal(dailyJSON, &summary.DailyRecords); err != nil {
		return attendance.MonthlySummary{}, fmt.Errorf("failed to unmarshal daily records: %w", err)
	}

	return summary, nil
}
