// Package sqlite implements the SQLite storage backend for Roster.
// The backend owns a single database handle for the life of an attach and
// runs every query and write through it.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// Compile-time interface check: Backend must implement Roster.
var _ types.Roster = (*Backend)(nil)

// Backend implements the Roster interface on a SQLite database file.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration.
// Creates DataDir if it does not exist, opens the database file, and creates
// the schema if absent. Existing data is kept.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, config.Database)

	// Foreign keys are off by default in SQLite; the pragma is applied to
	// every connection the driver opens.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return fmt.Errorf("opening %s: %w", dbPath, err)
	}
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return fmt.Errorf("creating schema: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach releases all resources held by the backend.
// Closes the SQLite connection. After Detach, all operations return ErrDetached.
// Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	return nil
}

// Path returns the database file path of the attached backend, or an empty
// string when detached.
func (b *Backend) Path() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return ""
	}
	dataDir := b.config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	return filepath.Join(dataDir, b.config.Database)
}

// conn returns the open handle, or ErrDetached.
func (b *Backend) conn() (*sql.DB, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrDetached
	}
	return b.db, nil
}
