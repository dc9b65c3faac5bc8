package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// ListDepartments returns every department in storage order.
func (b *Backend) ListDepartments() ([]types.Department, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT id, name FROM departments")
	if err != nil {
		return nil, fmt.Errorf("querying departments: %w", err)
	}
	defer rows.Close()

	departments := []types.Department{}
	for rows.Next() {
		var d types.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scanning department: %w", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating departments: %w", err)
	}
	return departments, nil
}

// AddDepartment inserts a department and returns the id SQLite assigned.
func (b *Backend) AddDepartment(name string) (int64, error) {
	db, err := b.conn()
	if err != nil {
		return 0, err
	}

	res, err := db.Exec("INSERT INTO departments (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("inserting department: %w", err)
	}
	return res.LastInsertId()
}
