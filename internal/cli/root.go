// Package cli implements the roster command-line interface. Running roster
// with no subcommand opens the database and starts the interactive menu.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/internal/paths"
	"github.com/mesh-intelligence/roster/internal/prompt"
	"github.com/mesh-intelligence/roster/internal/render"
	"github.com/mesh-intelligence/roster/internal/sqlite"
	"github.com/mesh-intelligence/roster/pkg/types"
)

// Exit code for startup failures (bad config, unusable database).
const exitFailure = 1

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	logLevel  string
	jsonMode  bool
}

var flags rootFlags

// NewRootCmd creates the top-level "roster" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "roster",
		Short: "Interactive tracker for departments, roles and employees",
		Long: "Roster keeps departments, roles and employees in a local SQLite database.\n" +
			"Run it without a subcommand to open the interactive menu.",
		Args: cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		RunE:         runRoot,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: platform data dir)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "print query results as JSON")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newSeedCmd())
	root.AddCommand(newExportCmd())

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitFailure)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	env, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	renderer := render.Table
	if flags.jsonMode {
		renderer = render.JSON
	}

	session := prompt.NewSession(env.backend, cmd.InOrStdin(), cmd.OutOrStdout(),
		prompt.WithLogger(env.logger),
		prompt.WithRenderer(renderer),
	)
	return session.Run()
}

// env is the attached backend and logger a command runs against.
type env struct {
	configDir string
	settings  settings
	backend   *sqlite.Backend
	logger    *log.Logger
}

// openEnv resolves directories, loads config.yaml, builds the logger and
// attaches the SQLite backend. The caller must call close.
func openEnv(cmd *cobra.Command) (*env, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}

	s, err := loadSettings(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dataDir, err := paths.ResolveDataDir(flags.dataDir, s.DataDir)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	s.DataDir = dataDir

	level := s.LogLevel
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)

	backend := sqlite.NewBackend()
	if err := backend.Attach(types.Config{
		Backend:  s.Backend,
		DataDir:  s.DataDir,
		Database: s.Database,
	}); err != nil {
		return nil, fmt.Errorf("attach roster: %w", err)
	}
	logger.Debug("database attached", "path", backend.Path())

	return &env{
		configDir: configDir,
		settings:  s,
		backend:   backend,
		logger:    logger,
	}, nil
}

// close detaches the backend, logging any failure.
func (e *env) close() {
	if err := e.backend.Detach(); err != nil {
		e.logger.Error("detach failed", "err", err)
	}
}
