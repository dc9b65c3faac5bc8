package types

// Employee is a person holding one role, optionally reporting to another
// employee. ManagerID is nil for a top-level employee.
type Employee struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	RoleID    int64  `json:"role_id"`
	ManagerID *int64 `json:"manager_id"`
}

// EmployeeRow is an employee joined with its role, department and manager.
// ManagerName is nil when the employee has no manager.
type EmployeeRow struct {
	EmployeeID  int64
	FirstName   string
	LastName    string
	Title       string
	Department  string
	Salary      int64
	ManagerName *string
}

// Values returns the row fields in EmployeeColumns order. A missing manager
// is reported as a nil value rather than an empty string.
func (e EmployeeRow) Values() []any {
	var manager any
	if e.ManagerName != nil {
		manager = *e.ManagerName
	}
	return []any{e.EmployeeID, e.FirstName, e.LastName, e.Title, e.Department, e.Salary, manager}
}
