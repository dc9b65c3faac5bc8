package types

import "errors"

// Config holds backend selection and parameters for Roster.Attach.
type Config struct {
	Backend  string `json:"backend" yaml:"backend"`
	DataDir  string `json:"data_dir" yaml:"data_dir"`
	Database string `json:"database" yaml:"database"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// DefaultDatabase is the database file name used when Config.Database is
// not set by the caller.
const DefaultDatabase = "employee_tracker.db"

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrDatabaseEmpty  = errors.New("database file name must not be empty")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. An empty DataDir is valid and means the
// current directory.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Database == "" {
		return ErrDatabaseEmpty
	}
	return nil
}
