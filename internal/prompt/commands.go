package prompt

import (
	"strconv"

	"github.com/mesh-intelligence/roster/internal/render"
	"github.com/mesh-intelligence/roster/pkg/types"
)

// quitChoice ends the session.
const quitChoice = "8"

const menuText = `
Options:
1. View all departments
2. View all roles
3. View all employees
4. Add a department
5. Add a role
6. Add an employee
7. Update an employee role
8. Quit

Enter your choice: `

// argument is one value a write command asks for.
type argument struct {
	prompt string
	field  string
	parse  func(string) (any, error)
}

// command is a menu entry. Read commands have no args and run immediately.
type command struct {
	choice string
	args   []argument
	run    func(s *Session, args []any)
}

var commands = []*command{
	{choice: "1", run: viewDepartments},
	{choice: "2", run: viewRoles},
	{choice: "3", run: viewEmployees},
	{
		choice: "4",
		args: []argument{
			{prompt: "Enter the name of the department: ", field: "name", parse: parseText},
		},
		run: addDepartment,
	},
	{
		choice: "5",
		args: []argument{
			{prompt: "Enter the title: ", field: "title", parse: parseText},
			{prompt: "Enter the salary: ", field: "salary", parse: parseNumber},
			{prompt: "Enter the department ID: ", field: "department ID", parse: parseNumber},
		},
		run: addRole,
	},
	{
		choice: "6",
		args: []argument{
			{prompt: "Enter the first name: ", field: "first name", parse: parseText},
			{prompt: "Enter the last name: ", field: "last name", parse: parseText},
			{prompt: "Enter the role ID: ", field: "role ID", parse: parseNumber},
			{prompt: "Enter the manager ID (blank for none): ", field: "manager ID", parse: parseOptionalNumber},
		},
		run: addEmployee,
	},
	{
		choice: "7",
		args: []argument{
			{prompt: "Enter the employee ID: ", field: "employee ID", parse: parseNumber},
			{prompt: "Enter the new role ID: ", field: "role ID", parse: parseNumber},
		},
		run: updateEmployeeRole,
	},
}

func commandFor(choice string) (*command, bool) {
	for _, c := range commands {
		if c.choice == choice {
			return c, true
		}
	}
	return nil, false
}

func parseText(s string) (any, error) {
	return s, nil
}

func parseNumber(s string) (any, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, types.ErrInvalidNumber
	}
	return n, nil
}

// parseOptionalNumber maps a blank line to a nil *int64.
func parseOptionalNumber(s string) (any, error) {
	if s == "" {
		return (*int64)(nil), nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, types.ErrInvalidNumber
	}
	return &n, nil
}

// records converts list rows to render records for columns.
func records[T interface{ Values() []any }](columns []string, rows []T) []render.Record {
	out := make([]render.Record, len(rows))
	for i, r := range rows {
		out[i] = render.NewRecord(columns, r.Values())
	}
	return out
}

func viewDepartments(s *Session, _ []any) {
	rows, err := s.dir.ListDepartments()
	if err != nil {
		s.logger.Error("view departments failed", "err", err)
		return
	}
	s.show(types.DepartmentColumns, records(types.DepartmentColumns, rows))
}

func viewRoles(s *Session, _ []any) {
	rows, err := s.dir.ListRoles()
	if err != nil {
		s.logger.Error("view roles failed", "err", err)
		return
	}
	s.show(types.RoleColumns, records(types.RoleColumns, rows))
}

func viewEmployees(s *Session, _ []any) {
	rows, err := s.dir.ListEmployees()
	if err != nil {
		s.logger.Error("view employees failed", "err", err)
		return
	}
	s.show(types.EmployeeColumns, records(types.EmployeeColumns, rows))
}

func addDepartment(s *Session, args []any) {
	name := args[0].(string)
	id, err := s.dir.AddDepartment(name)
	if err != nil {
		s.logger.Error("add department failed", "name", name, "err", err)
		return
	}
	s.printf("Added department %q (id %d).\n", name, id)
}

func addRole(s *Session, args []any) {
	title := args[0].(string)
	salary := args[1].(int64)
	departmentID := args[2].(int64)
	id, err := s.dir.AddRole(title, salary, departmentID)
	if err != nil {
		s.logger.Error("add role failed", "title", title, "department_id", departmentID, "err", err)
		return
	}
	s.printf("Added role %q (id %d).\n", title, id)
}

func addEmployee(s *Session, args []any) {
	first := args[0].(string)
	last := args[1].(string)
	roleID := args[2].(int64)
	managerID := args[3].(*int64)
	id, err := s.dir.AddEmployee(first, last, roleID, managerID)
	if err != nil {
		s.logger.Error("add employee failed", "role_id", roleID, "err", err)
		return
	}
	s.printf("Added employee %s %s (id %d).\n", first, last, id)
}

func updateEmployeeRole(s *Session, args []any) {
	employeeID := args[0].(int64)
	roleID := args[1].(int64)
	n, err := s.dir.UpdateEmployeeRole(employeeID, roleID)
	if err != nil {
		s.logger.Error("update employee role failed", "employee_id", employeeID, "role_id", roleID, "err", err)
		return
	}
	if n == 0 {
		s.printf("No employee with id %d; nothing updated.\n", employeeID)
		return
	}
	s.printf("Updated employee %d to role %d.\n", employeeID, roleID)
}
