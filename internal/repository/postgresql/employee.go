package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/workpulse/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// FindOrCreate implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) FindOrCreate(ctx context.Context, name string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	var emp employee.Employee
	err := q.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM employees
		WHERE name = $1
	`, name).Scan(&emp.ID, &emp.Name, &emp.CreatedAt, &emp.UpdatedAt)
	if err == nil {
		return emp, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, fmt.Errorf("failed to look up employee %q: %w", name, err)
	}

	err = q.QueryRow(ctx, `
		INSERT INTO employees (id, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, name, created_at, updated_at
	`, uuid.NewString(), name).Scan(&emp.ID, &emp.Name, &emp.CreatedAt, &emp.UpdatedAt)
	if err == nil {
		return emp, nil
	}

	// A concurrent upload may have created the same name between the lookup
	// and the insert. Re-query once.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		retryErr := q.QueryRow(ctx, `
			SELECT id, name, created_at, updated_at
			FROM employees
			WHERE name = $1
		`, name).Scan(&emp.ID, &emp.Name, &emp.CreatedAt, &emp.UpdatedAt)
		if retryErr != nil {
			return employee.Employee{}, fmt.Errorf("%w: %q: %v", employee.ErrConflictUnresolved, name, retryErr)
		}
		return emp, nil
	}

	return employee.Employee{}, fmt.Errorf("failed to create employee %q: %w", name, err)
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	var emp employee.Employee
	err := q.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM employees
		WHERE id = $1
	`, id).Scan(&emp.ID, &emp.Name, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM employees
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.CreatedAt, &emp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	return employees, nil
}
