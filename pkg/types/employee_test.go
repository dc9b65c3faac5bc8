package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmployeeRowValues(t *testing.T) {
	manager := "Ada Lovelace"
	tests := []struct {
		name string
		row  EmployeeRow
		want []any
	}{
		{
			name: "top-level employee has nil manager",
			row:  EmployeeRow{EmployeeID: 1, FirstName: "Ada", LastName: "Lovelace", Title: "Engineer", Department: "Engineering", Salary: 90000},
			want: []any{int64(1), "Ada", "Lovelace", "Engineer", "Engineering", int64(90000), nil},
		},
		{
			name: "reporting employee carries manager name",
			row:  EmployeeRow{EmployeeID: 2, FirstName: "Grace", LastName: "Hopper", Title: "Engineer", Department: "Engineering", Salary: 90000, ManagerName: &manager},
			want: []any{int64(2), "Grace", "Hopper", "Engineer", "Engineering", int64(90000), "Ada Lovelace"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.row.Values()
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(EmployeeColumns))
		})
	}
}

func TestViewValuesMatchColumns(t *testing.T) {
	assert.Len(t, Department{}.Values(), len(DepartmentColumns))
	assert.Len(t, RoleRow{}.Values(), len(RoleColumns))
}
