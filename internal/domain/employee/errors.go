package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrConflictUnresolved means a duplicate-name insert conflicted and the
	// follow-up lookup still failed. Callers may skip the employee; any
	// other repository error is infrastructure and must propagate.
	ErrConflictUnresolved = errors.New("employee conflict could not be resolved")
)
