package sqlite

import (
	"database/sql"
	"fmt"
)

// Schema DDL for all tables. Every statement is guarded by IF NOT EXISTS so
// attaching to an existing database file leaves its data in place.
const (
	createDepartments = `CREATE TABLE IF NOT EXISTS departments (
    id INTEGER PRIMARY KEY,
    name TEXT
);`

	createRoles = `CREATE TABLE IF NOT EXISTS roles (
    id INTEGER PRIMARY KEY,
    title TEXT,
    salary INTEGER,
    department_id INTEGER,
    FOREIGN KEY (department_id) REFERENCES departments(id)
);`

	createEmployees = `CREATE TABLE IF NOT EXISTS employees (
    id INTEGER PRIMARY KEY,
    first_name TEXT,
    last_name TEXT,
    role_id INTEGER,
    manager_id INTEGER,
    FOREIGN KEY (role_id) REFERENCES roles(id),
    FOREIGN KEY (manager_id) REFERENCES employees(id)
);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createDepartments,
	createRoles,
	createEmployees,
}

// createSchema executes schemaDDL against db, stopping at the first failure.
func createSchema(db *sql.DB) error {
	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

// firstLine returns the text of stmt up to its first newline.
func firstLine(stmt string) string {
	for i, r := range stmt {
		if r == '\n' {
			return stmt[:i]
		}
	}
	return stmt
}
