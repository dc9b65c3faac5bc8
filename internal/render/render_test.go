package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		records []Record
		want    []string
	}{
		{
			name:    "nothing to print without columns or records",
			columns: nil,
			records: nil,
			want:    nil,
		},
		{
			name:    "header only for empty records",
			columns: []string{"id", "name"},
			records: nil,
			want:    []string{"id  name"},
		},
		{
			name:    "columns aligned",
			columns: []string{"id", "name"},
			records: []Record{
				NewRecord([]string{"id", "name"}, []any{int64(1), "Engineering"}),
				NewRecord([]string{"id", "name"}, []any{int64(10), "Sales"}),
			},
			want: []string{
				"id  name",
				"1   Engineering",
				"10  Sales",
			},
		},
		{
			name:    "nil prints as null",
			columns: []string{"employee_id", "manager_name"},
			records: []Record{
				NewRecord([]string{"employee_id", "manager_name"}, []any{int64(1), nil}),
			},
			want: []string{
				"employee_id  manager_name",
				"1            null",
			},
		},
		{
			name: "columns derived in first-seen order",
			records: []Record{
				{{Name: "a", Value: 1}},
				{{Name: "b", Value: 2}, {Name: "a", Value: 3}},
			},
			want: []string{
				"a  b",
				"1",
				"3  2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Table(&buf, tt.columns, tt.records))

			var got []string
			for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
				if line != "" {
					got = append(got, strings.TrimRight(line, " "))
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSON(t *testing.T) {
	t.Run("empty input prints an empty array", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, JSON(&buf, nil, nil))
		assert.Equal(t, "[]\n", buf.String())
	})

	t.Run("keys keep column order", func(t *testing.T) {
		var buf bytes.Buffer
		rec := NewRecord([]string{"title", "salary", "name"}, []any{"Engineer", int64(90000), nil})
		require.NoError(t, JSON(&buf, nil, []Record{rec}))

		compact := strings.Join(strings.Fields(buf.String()), "")
		assert.Equal(t, `[{"title":"Engineer","salary":90000,"name":null}]`, compact)
	})
}

func TestNewRecord(t *testing.T) {
	rec := NewRecord([]string{"a", "b"}, []any{1})
	v, ok := rec.Get("b")
	assert.True(t, ok)
	assert.Nil(t, v)

	_, ok = rec.Get("c")
	assert.False(t, ok)
}
