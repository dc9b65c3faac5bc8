// Package render prints query results as aligned text tables or JSON.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// nullText is printed for nil values.
const nullText = "null"

// Field is one named value in a Record.
type Field struct {
	Name  string
	Value any
}

// Record is a row of named values in display order.
type Record []Field

// NewRecord pairs columns with values by position. Extra values beyond
// len(columns) are dropped; missing values are nil.
func NewRecord(columns []string, values []any) Record {
	rec := make(Record, len(columns))
	for i, name := range columns {
		rec[i].Name = name
		if i < len(values) {
			rec[i].Value = values[i]
		}
	}
	return rec
}

// Get returns the value stored under name and whether it was present.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// MarshalJSON encodes the record as a JSON object with keys in field order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Renderer writes records to w. columns may be nil.
type Renderer func(w io.Writer, columns []string, records []Record) error

// Table writes one header line and one line per record, with columns aligned.
// When columns is nil the column set is taken from the records in first-seen
// order. A record missing a column prints an empty cell; nil values print as
// "null". With no columns at all nothing is written.
func Table(w io.Writer, columns []string, records []Record) error {
	if columns == nil {
		columns = columnsOf(records)
	}
	if len(columns) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeLine(tw, columns)
	for _, rec := range records {
		cells := make([]string, len(columns))
		for i, name := range columns {
			v, ok := rec.Get(name)
			if !ok {
				continue
			}
			cells[i] = formatValue(v)
		}
		writeLine(tw, cells)
	}
	return tw.Flush()
}

// JSON writes records as an indented JSON array. columns is ignored; each
// record carries its own keys.
func JSON(w io.Writer, _ []string, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// columnsOf returns the distinct field names of records in first-seen order.
func columnsOf(records []Record) []string {
	var columns []string
	seen := make(map[string]bool)
	for _, rec := range records {
		for _, f := range rec {
			if !seen[f.Name] {
				seen[f.Name] = true
				columns = append(columns, f.Name)
			}
		}
	}
	return columns
}

func writeLine(w io.Writer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, c)
	}
	fmt.Fprintln(w)
}

func formatValue(v any) string {
	if v == nil {
		return nullText
	}
	return fmt.Sprint(v)
}
