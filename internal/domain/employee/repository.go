package employee

import "context"

// EmployeeRepository defines data access for employee identities. Employees
// are keyed by their exact (trimmed) name; FindOrCreate must absorb
// duplicate-creation races by re-querying on conflict.
type EmployeeRepository interface {
	// FindOrCreate returns the employee with the given name, creating it
	// first if it does not exist.
	FindOrCreate(ctx context.Context, name string) (Employee, error)

	// GetByID retrieves a single employee.
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves all employees ordered by name.
	List(ctx context.Context) ([]Employee, error)
}
