package types

// Table names created by the schema initializer, in dependency order.
const (
	DepartmentsTable = "departments"
	RolesTable       = "roles"
	EmployeesTable   = "employees"
)

// StandardTableNames lists all table names for enumeration.
var StandardTableNames = []string{
	DepartmentsTable,
	RolesTable,
	EmployeesTable,
}

// Column lists for the list query views, in display order. They match the
// Values method of the corresponding type.
var (
	DepartmentColumns = []string{"id", "name"}
	RoleColumns       = []string{"id", "title", "salary", "name"}
	EmployeeColumns   = []string{"employee_id", "first_name", "last_name", "title", "department", "salary", "manager_name"}
)
