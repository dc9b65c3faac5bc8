package types

// Department is a top-level organizational unit grouping roles.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Values returns the department fields in DepartmentColumns order.
func (d Department) Values() []any {
	return []any{d.ID, d.Name}
}
