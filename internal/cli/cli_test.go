package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/roster/internal/paths"
	"github.com/mesh-intelligence/roster/internal/sqlite"
	"github.com/mesh-intelligence/roster/pkg/types"
)

// testDirs holds isolated config and data directories for one test.
type testDirs struct {
	config string
	data   string
}

func newTestDirs(t *testing.T) testDirs {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, "")
	t.Setenv(paths.EnvDataDir, "")
	t.Setenv("ROSTER_DATABASE", "")
	t.Setenv("ROSTER_LOG_LEVEL", "")
	root := t.TempDir()
	return testDirs{
		config: filepath.Join(root, "config"),
		data:   filepath.Join(root, "data"),
	}
}

// runCLI executes the root command with args and stdin, returning stdout,
// stderr and the command error.
func runCLI(t *testing.T, dirs testDirs, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(append([]string{"--config-dir", dirs.config, "--data-dir", dirs.data}, args...))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	dirs := newTestDirs(t)
	out, _, err := runCLI(t, dirs, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "roster v"+Version)
	assert.Contains(t, out, modulePath)
}

func TestInitWritesConfigAndDatabase(t *testing.T) {
	dirs := newTestDirs(t)

	out, _, err := runCLI(t, dirs, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Roster initialized successfully")

	data, err := os.ReadFile(filepath.Join(dirs.config, paths.ConfigFileName))
	require.NoError(t, err)
	var cfg configFile
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, types.BackendSQLite, cfg.Backend)
	assert.Equal(t, types.DefaultDatabase, cfg.Database)
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)

	_, err = os.Stat(filepath.Join(dirs.data, types.DefaultDatabase))
	assert.NoError(t, err)

	// A second init keeps the existing config untouched.
	require.NoError(t, os.WriteFile(filepath.Join(dirs.config, paths.ConfigFileName), []byte("backend: sqlite\ndatabase: custom.db\n"), 0o644))
	out, _, err = runCLI(t, dirs, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dirs.data, "custom.db"))
}

func TestMenuSessionPersists(t *testing.T) {
	dirs := newTestDirs(t)

	script := strings.Join([]string{
		"4", "Engineering",
		"5", "Engineer", "90000", "1",
		"6", "Ada", "Lovelace", "1", "",
		"8",
	}, "\n") + "\n"
	out, _, err := runCLI(t, dirs, script)
	require.NoError(t, err)
	assert.Contains(t, out, "Added employee Ada Lovelace (id 1).")

	// A new process sees the rows written by the previous one.
	out, _, err = runCLI(t, dirs, "3\n8\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Lovelace")
	assert.Contains(t, out, "Engineering")
	assert.Contains(t, out, "null")
}

func TestMenuSessionJSON(t *testing.T) {
	dirs := newTestDirs(t)

	out, _, err := runCLI(t, dirs, "4\nSales\n1\n8\n", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Sales"`)
}

func TestWriteFailureIsLoggedToStderr(t *testing.T) {
	dirs := newTestDirs(t)

	out, errOut, err := runCLI(t, dirs, "5\nEngineer\n1000\n9\n8\n")
	require.NoError(t, err)
	assert.NotContains(t, out, "Added role")
	assert.Contains(t, errOut, "add role failed")
}

func TestDatabaseFromEnv(t *testing.T) {
	dirs := newTestDirs(t)
	t.Setenv("ROSTER_DATABASE", "from-env.db")

	_, _, err := runCLI(t, dirs, "8\n")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dirs.data, "from-env.db"))
	assert.NoError(t, err)
}

func TestUnknownBackendFailsStartup(t *testing.T) {
	dirs := newTestDirs(t)
	require.NoError(t, os.MkdirAll(dirs.config, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dirs.config, paths.ConfigFileName), []byte("backend: postgres\n"), 0o644))

	_, _, err := runCLI(t, dirs, "8\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestSeedAndExport(t *testing.T) {
	dirs := newTestDirs(t)

	out, _, err := runCLI(t, dirs, "", "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Sample data loaded")

	out, _, err = runCLI(t, dirs, "", "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing seeded")

	exportDir := filepath.Join(t.TempDir(), "out")
	out, _, err = runCLI(t, dirs, "", "export", exportDir)
	require.NoError(t, err)
	assert.Contains(t, out, "employees")

	for _, table := range types.StandardTableNames {
		_, err := os.Stat(filepath.Join(exportDir, table+".jsonl"))
		assert.NoError(t, err)
	}
	_, err = os.Stat(filepath.Join(exportDir, sqlite.ManifestFile))
	assert.NoError(t, err)
}

func TestExportRequiresDir(t *testing.T) {
	dirs := newTestDirs(t)
	_, _, err := runCLI(t, dirs, "", "export")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"debug", "info", "warn", "error", "DEBUG", "bogus", ""} {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() { parseLevel(name) })
		})
	}
	assert.Equal(t, parseLevel("info"), parseLevel("bogus"))
	assert.NotEqual(t, parseLevel("info"), parseLevel("debug"))
}
