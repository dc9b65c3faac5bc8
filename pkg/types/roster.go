package types

import "errors"

// Roster defines the interface for the organizational data store.
// Callers attach to a backend, run queries and writes, and detach when done.
type Roster interface {
	// Attach opens the backend described by config and ensures the schema
	// exists. Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, every query returns ErrDetached.
	Detach() error

	// ListDepartments returns every department in storage order.
	ListDepartments() ([]Department, error)

	// ListRoles returns every role joined with its department name. Roles
	// whose department is missing are excluded.
	ListRoles() ([]RoleRow, error)

	// ListEmployees returns every employee joined with role, department and
	// manager name. Employees without a manager have a nil ManagerName.
	ListEmployees() ([]EmployeeRow, error)

	// AddDepartment inserts a department and returns its id.
	AddDepartment(name string) (int64, error)

	// AddRole inserts a role and returns its id. Fails when departmentID
	// does not reference an existing department.
	AddRole(title string, salary, departmentID int64) (int64, error)

	// AddEmployee inserts an employee and returns its id. managerID may be
	// nil for a top-level employee. Fails when roleID or a non-nil
	// managerID does not reference an existing row.
	AddEmployee(firstName, lastName string, roleID int64, managerID *int64) (int64, error)

	// UpdateEmployeeRole sets the role of an employee and returns the
	// number of rows affected, which is zero for an unknown employee.
	UpdateEmployeeRole(employeeID, roleID int64) (int64, error)
}

// Roster lifecycle errors.
var (
	ErrDetached        = errors.New("roster is detached")
	ErrAlreadyAttached = errors.New("roster is already attached")
)

// ErrInvalidNumber is returned when a numeric argument cannot be parsed as a
// whole number.
var ErrInvalidNumber = errors.New("expected a whole number")
