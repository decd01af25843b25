package postgresql

import (
	"context"
	"fmt"

	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

// Migrate applies the schema. Every statement is idempotent so it runs
// unconditionally at startup.
func Migrate(ctx context.Context, db *database.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS attendance_records (
			employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			in_time TIMESTAMPTZ,
			out_time TIMESTAMPTZ,
			worked_hours DOUBLE PRECISION,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (employee_id, date)
		)`,
		`CREATE TABLE IF NOT EXISTS monthly_summaries (
			employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
			month INT NOT NULL,
			year INT NOT NULL,
			expected_hours DOUBLE PRECISION NOT NULL,
			actual_worked_hours DOUBLE PRECISION NOT NULL,
			leaves_used INT NOT NULL,
			productivity DOUBLE PRECISION NOT NULL,
			daily_records JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (employee_id, month, year)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_records_date
			ON attendance_records (date)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}
