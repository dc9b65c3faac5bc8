package sqlite

import (
	"bufio"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// ManifestFile is the name of the export summary written next to the JSONL
// table files.
const ManifestFile = "manifest.json"

// Manifest describes one export: a UUID v7 identifying the snapshot, when it
// was taken, and how many rows each table file holds.
type Manifest struct {
	ExportID  string           `json:"export_id"`
	CreatedAt time.Time        `json:"created_at"`
	Database  string           `json:"database"`
	Tables    map[string]int64 `json:"tables"`
}

// Export writes every table to dir as <table>.jsonl, one JSON object per row,
// followed by manifest.json. Each file is written atomically, so a failed
// export never leaves a half-written file behind.
func (b *Backend) Export(dir string) (Manifest, error) {
	db, err := b.conn()
	if err != nil {
		return Manifest{}, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Manifest{}, fmt.Errorf("creating export dir: %w", err)
	}

	exportID, err := uuid.NewV7()
	if err != nil {
		return Manifest{}, fmt.Errorf("generating export id: %w", err)
	}

	manifest := Manifest{
		ExportID:  exportID.String(),
		CreatedAt: time.Now().UTC(),
		Database:  b.Path(),
		Tables:    make(map[string]int64, len(types.StandardTableNames)),
	}

	for _, table := range types.StandardTableNames {
		records, err := exportTable(db, table)
		if err != nil {
			return Manifest{}, err
		}
		path := filepath.Join(dir, table+".jsonl")
		if err := writeJSONL(path, records); err != nil {
			return Manifest{}, fmt.Errorf("writing %s: %w", path, err)
		}
		manifest.Tables[table] = int64(len(records))
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return Manifest{}, fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := writeAtomic(filepath.Join(dir, ManifestFile), func(w *bufio.Writer) error {
		_, err := w.Write(append(data, '\n'))
		return err
	}); err != nil {
		return Manifest{}, fmt.Errorf("writing manifest: %w", err)
	}

	return manifest, nil
}

// exportTable reads the raw rows of table and marshals each to JSON using
// the entity struct for that table.
func exportTable(db *sql.DB, table string) ([]json.RawMessage, error) {
	var (
		rows *sql.Rows
		err  error
	)
	switch table {
	case types.DepartmentsTable:
		rows, err = db.Query("SELECT id, name FROM departments ORDER BY id")
	case types.RolesTable:
		rows, err = db.Query("SELECT id, title, salary, department_id FROM roles ORDER BY id")
	case types.EmployeesTable:
		rows, err = db.Query("SELECT id, first_name, last_name, role_id, manager_id FROM employees ORDER BY id")
	default:
		return nil, fmt.Errorf("unknown table %q", table)
	}
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	records := []json.RawMessage{}
	for rows.Next() {
		var entity any
		switch table {
		case types.DepartmentsTable:
			var d types.Department
			err = rows.Scan(&d.ID, &d.Name)
			entity = d
		case types.RolesTable:
			var r types.Role
			err = rows.Scan(&r.ID, &r.Title, &r.Salary, &r.DepartmentID)
			entity = r
		case types.EmployeesTable:
			var (
				e       types.Employee
				manager sql.NullInt64
			)
			err = rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.RoleID, &manager)
			if manager.Valid {
				id := manager.Int64
				e.ManagerID = &id
			}
			entity = e
		}
		if err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", table, err)
		}

		data, err := json.Marshal(entity)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s row: %w", table, err)
		}
		records = append(records, json.RawMessage(data))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", table, err)
	}
	return records, nil
}

// writeJSONL atomically writes records to path, one per line.
func writeJSONL(path string, records []json.RawMessage) error {
	return writeAtomic(path, func(w *bufio.Writer) error {
		for _, rec := range records {
			if _, err := w.Write(rec); err != nil {
				return fmt.Errorf("writing record: %w", err)
			}
			if err := w.WriteByte('\n'); err != nil {
				return fmt.Errorf("writing newline: %w", err)
			}
		}
		return nil
	})
}

// writeAtomic writes to a temp file in the same directory, syncs it, and
// renames it over path. The temp file is removed on any failure.
func writeAtomic(path string, fill func(w *bufio.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if err := fill(w); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
