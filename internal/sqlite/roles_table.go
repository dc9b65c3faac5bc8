package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// listRolesSQL joins roles to departments. The inner join drops roles whose
// department row is missing.
const listRolesSQL = `SELECT roles.id, roles.title, roles.salary, departments.name
FROM roles
JOIN departments ON roles.department_id = departments.id`

// ListRoles returns every role with its department name.
func (b *Backend) ListRoles() ([]types.RoleRow, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(listRolesSQL)
	if err != nil {
		return nil, fmt.Errorf("querying roles: %w", err)
	}
	defer rows.Close()

	roles := []types.RoleRow{}
	for rows.Next() {
		var r types.RoleRow
		if err := rows.Scan(&r.ID, &r.Title, &r.Salary, &r.Department); err != nil {
			return nil, fmt.Errorf("scanning role: %w", err)
		}
		roles = append(roles, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating roles: %w", err)
	}
	return roles, nil
}

// AddRole inserts a role and returns its id. The foreign key on
// department_id rejects unknown departments.
func (b *Backend) AddRole(title string, salary, departmentID int64) (int64, error) {
	db, err := b.conn()
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(
		"INSERT INTO roles (title, salary, department_id) VALUES (?, ?, ?)",
		title, salary, departmentID,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting role: %w", err)
	}
	return res.LastInsertId()
}
