package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// sampleDepartment describes a department, its roles and the employees
// holding each role, inserted by Seed.
type sampleDepartment struct {
	name  string
	roles []sampleRole
}

type sampleRole struct {
	title     string
	salary    int64
	employees []sampleEmployee
}

// sampleEmployee names its manager by index into the employees inserted so
// far; -1 means no manager.
type sampleEmployee struct {
	firstName string
	lastName  string
	manager   int
}

// sampleOrganization is the data Seed inserts into an empty database.
var sampleOrganization = []sampleDepartment{
	{
		name: "Engineering",
		roles: []sampleRole{
			{title: "Engineering Manager", salary: 150000, employees: []sampleEmployee{{"Ada", "Lovelace", -1}}},
			{title: "Software Engineer", salary: 120000, employees: []sampleEmployee{{"Grace", "Hopper", 0}, {"Alan", "Turing", 0}}},
		},
	},
	{
		name: "Sales",
		roles: []sampleRole{
			{title: "Sales Lead", salary: 100000, employees: []sampleEmployee{{"Mary", "Jackson", -1}}},
			{title: "Account Executive", salary: 80000, employees: []sampleEmployee{{"Katherine", "Johnson", 3}}},
		},
	},
	{
		name: "Finance",
		roles: []sampleRole{
			{title: "Accountant", salary: 90000, employees: []sampleEmployee{{"Dorothy", "Vaughan", -1}}},
		},
	},
}

// Seed inserts sampleOrganization when all tables are empty. It returns false
// without writing anything when any table already holds rows. The inserts run
// in one transaction so a failure leaves the database untouched.
func (b *Backend) Seed() (bool, error) {
	db, err := b.conn()
	if err != nil {
		return false, err
	}

	for _, table := range types.StandardTableNames {
		n, err := countRows(db, table)
		if err != nil {
			return false, err
		}
		if n > 0 {
			return false, nil
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var employeeIDs []int64
	for _, dept := range sampleOrganization {
		res, err := tx.Exec("INSERT INTO departments (name) VALUES (?)", dept.name)
		if err != nil {
			return false, fmt.Errorf("seeding department %s: %w", dept.name, err)
		}
		deptID, err := res.LastInsertId()
		if err != nil {
			return false, err
		}

		for _, role := range dept.roles {
			res, err := tx.Exec(
				"INSERT INTO roles (title, salary, department_id) VALUES (?, ?, ?)",
				role.title, role.salary, deptID,
			)
			if err != nil {
				return false, fmt.Errorf("seeding role %s: %w", role.title, err)
			}
			roleID, err := res.LastInsertId()
			if err != nil {
				return false, err
			}

			for _, emp := range role.employees {
				var manager sql.NullInt64
				if emp.manager >= 0 {
					manager = sql.NullInt64{Int64: employeeIDs[emp.manager], Valid: true}
				}
				res, err := tx.Exec(
					"INSERT INTO employees (first_name, last_name, role_id, manager_id) VALUES (?, ?, ?, ?)",
					emp.firstName, emp.lastName, roleID, manager,
				)
				if err != nil {
					return false, fmt.Errorf("seeding employee %s %s: %w", emp.firstName, emp.lastName, err)
				}
				id, err := res.LastInsertId()
				if err != nil {
					return false, err
				}
				employeeIDs = append(employeeIDs, id)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing seed: %w", err)
	}
	return true, nil
}

// countRows returns the row count of table. table must be one of
// types.StandardTableNames; it is never taken from user input.
func countRows(db *sql.DB, table string) (int64, error) {
	var n int64
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return n, nil
}
