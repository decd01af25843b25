// Command dbtool runs maintenance tasks against the attendance database.
//
//	dbtool -clear     delete all attendance data
//	dbtool -fix-ids   re-key employees whose id is not a valid UUID
//
// The fix-ids task exists for databases imported from the previous
// deployment, where employee ids were free-form strings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/workpulse/workpulse-backend-go/internal/config"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

func main() {
	clear := flag.Bool("clear", false, "delete all rows from every table")
	fixIDs := flag.Bool("fix-ids", false, "assign fresh UUIDs to employees with malformed ids")
	flag.Parse()

	if !*clear && !*fixIDs {
		flag.Usage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if *clear {
		if err := clearAll(ctx, db); err != nil {
			log.Fatalf("clear: %v", err)
		}
	}

	if *fixIDs {
		if err := fixEmployeeIDs(ctx, db); err != nil {
			log.Fatalf("fix-ids: %v", err)
		}
	}
}

// clearAll deletes children before parents so it also works on schemas
// created without ON DELETE CASCADE.
func clearAll(ctx context.Context, db *database.DB) error {
	tables := []string{"attendance_records", "monthly_summaries", "employees"}
	for _, table := range tables {
		tag, err := db.Exec(ctx, "DELETE FROM "+table)
		if err != nil {
			return fmt.Errorf("delete from %s: %w", table, err)
		}
		fmt.Printf("deleted %d rows from %s\n", tag.RowsAffected(), table)
	}
	return nil
}

func fixEmployeeIDs(ctx context.Context, db *database.DB) error {
	rows, err := db.Query(ctx, "SELECT id::text, name FROM employees")
	if err != nil {
		return err
	}
	defer rows.Close()

	type employee struct {
		id   string
		name string
	}
	var broken []employee
	for rows.Next() {
		var e employee
		if err := rows.Scan(&e.id, &e.name); err != nil {
			return err
		}
		if !validator.IsValidUUID(e.id) {
			broken = append(broken, e)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(broken) == 0 {
		fmt.Println("all employee ids are valid, nothing to fix")
		return nil
	}

	tx, err := db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, e := range broken {
		newID := uuid.NewString()
		if err := rekeyEmployee(ctx, tx, e.id, newID); err != nil {
			return fmt.Errorf("re-key employee %q: %w", e.name, err)
		}
		fmt.Printf("re-keyed %q: %s -> %s\n", e.name, e.id, newID)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	fmt.Printf("fixed %d employees\n", len(broken))
	return nil
}

// rekeyEmployee moves one employee and all rows referencing it to a new id.
// Updating parent and children separately fails in either order when the
// schema carries plain NO ACTION foreign keys, so all three tables move in a
// single statement; the constraint checks run after the whole statement.
func rekeyEmployee(ctx context.Context, q database.Querier, oldID, newID string) error {
	query := `
		WITH parent AS (
			UPDATE employees SET id = $1, updated_at = NOW() WHERE id::text = $2
		), records AS (
			UPDATE attendance_records SET employee_id = $1 WHERE employee_id::text = $2
		)
		UPDATE monthly_summaries SET employee_id = $1 WHERE employee_id::text = $2
	`
	_, err := q.Exec(ctx, query, newID, oldID)
	return err
}
