package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// listEmployeesSQL joins each employee to its role and department, and left
// joins the manager so top-level employees are kept with a NULL manager_name.
const listEmployeesSQL = `SELECT employees.id, employees.first_name, employees.last_name,
       roles.title, departments.name, roles.salary,
       manager.first_name || ' ' || manager.last_name
FROM employees
JOIN roles ON employees.role_id = roles.id
JOIN departments ON roles.department_id = departments.id
LEFT JOIN employees manager ON employees.manager_id = manager.id`

// ListEmployees returns every employee with role, department and manager.
func (b *Backend) ListEmployees() ([]types.EmployeeRow, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(listEmployeesSQL)
	if err != nil {
		return nil, fmt.Errorf("querying employees: %w", err)
	}
	defer rows.Close()

	employees := []types.EmployeeRow{}
	for rows.Next() {
		var (
			e       types.EmployeeRow
			manager sql.NullString
		)
		if err := rows.Scan(&e.EmployeeID, &e.FirstName, &e.LastName, &e.Title, &e.Department, &e.Salary, &manager); err != nil {
			return nil, fmt.Errorf("scanning employee: %w", err)
		}
		if manager.Valid {
			name := manager.String
			e.ManagerName = &name
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employees: %w", err)
	}
	return employees, nil
}

// AddEmployee inserts an employee and returns its id. A nil managerID is
// stored as NULL.
func (b *Backend) AddEmployee(firstName, lastName string, roleID int64, managerID *int64) (int64, error) {
	db, err := b.conn()
	if err != nil {
		return 0, err
	}

	var manager sql.NullInt64
	if managerID != nil {
		manager = sql.NullInt64{Int64: *managerID, Valid: true}
	}

	res, err := db.Exec(
		"INSERT INTO employees (first_name, last_name, role_id, manager_id) VALUES (?, ?, ?, ?)",
		firstName, lastName, roleID, manager,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting employee: %w", err)
	}
	return res.LastInsertId()
}

// UpdateEmployeeRole sets role_id for one employee and returns the number of
// rows affected. An unknown employee id affects zero rows and is not an error.
func (b *Backend) UpdateEmployeeRole(employeeID, roleID int64) (int64, error) {
	db, err := b.conn()
	if err != nil {
		return 0, err
	}

	res, err := db.Exec("UPDATE employees SET role_id = ? WHERE id = ?", roleID, employeeID)
	if err != nil {
		return 0, fmt.Errorf("updating employee %d role: %w", employeeID, err)
	}
	return res.RowsAffected()
}
