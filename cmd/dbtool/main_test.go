package main

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// recordingQuerier captures every executed statement.
type recordingQuerier struct {
	statements []string
}

func (r *recordingQuerier) Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error) {
	r.statements = append(r.statements, sql)
	return pgconn.CommandTag{}, nil
}

func (r *recordingQuerier) Query(ctx context.Context, sql string, arguments ...interface{}) (pgx.Rows, error) {
	return nil, nil
}

func (r *recordingQuerier) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return nil
}

func TestRekeyEmployeeSingleStatement(t *testing.T) {
	q := &recordingQuerier{}
	if err := rekeyEmployee(context.Background(), q, "legacy-id-17", "0188d0f2-7b8c-4b4a-8a2b-6b8b8b8b8b8b"); err != nil {
		t.Fatalf("rekeyEmployee: %v", err)
	}

	// Parent and both referencing tables must move in one statement, or the
	// foreign keys reject the intermediate state.
	if len(q.statements) != 1 {
		t.Fatalf("rekeyEmployee ran %d statements, want 1", len(q.statements))
	}
	for _, table := range []string{"employees", "attendance_records", "monthly_summaries"} {
		if !strings.Contains(q.statements[0], table) {
			t.Errorf("re-key statement does not touch %s", table)
		}
	}
}
