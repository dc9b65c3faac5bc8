package types

// Role is a job title with a salary, belonging to one department.
type Role struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Salary       int64  `json:"salary"`
	DepartmentID int64  `json:"department_id"`
}

// RoleRow is a role joined with the name of its department.
type RoleRow struct {
	ID         int64
	Title      string
	Salary     int64
	Department string
}

// Values returns the row fields in RoleColumns order.
func (r RoleRow) Values() []any {
	return []any{r.ID, r.Title, r.Salary, r.Department}
}
