package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/roster/internal/paths"
	"github.com/mesh-intelligence/roster/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// envPrefix maps config keys to ROSTER_<KEY> environment variables.
	envPrefix = "ROSTER"

	cfgKeyBackend  = "backend"
	cfgKeyDataDir  = "data_dir"
	cfgKeyDatabase = "database"
	cfgKeyLogLevel = "log_level"

	defaultLogLevel = "info"
)

// configHeader is written above the marshaled defaults in a new config.yaml.
const configHeader = `# Roster configuration
# data_dir may be overridden by --data-dir or ROSTER_DATA_DIR.
`

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend  string `yaml:"backend"`
	DataDir  string `yaml:"data_dir,omitempty"`
	Database string `yaml:"database"`
	LogLevel string `yaml:"log_level"`
}

// settings is the merged result of defaults, config.yaml and environment.
type settings struct {
	Backend  string
	DataDir  string
	Database string
	LogLevel string
}

// loadSettings reads config.yaml from configDir using Viper. It creates the
// config directory and a default config.yaml on first run. A missing
// config.yaml is not an error.
func loadSettings(configDir string) (settings, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return settings{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := writeConfigIfMissing(filepath.Join(configDir, paths.ConfigFileName)); err != nil {
		return settings{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetDefault(cfgKeyDatabase, types.DefaultDatabase)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	return settings{
		Backend:  v.GetString(cfgKeyBackend),
		DataDir:  v.GetString(cfgKeyDataDir),
		Database: v.GetString(cfgKeyDatabase),
		LogLevel: v.GetString(cfgKeyLogLevel),
	}, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	cfg := configFile{
		Backend:  types.BackendSQLite,
		Database: types.DefaultDatabase,
		LogLevel: defaultLogLevel,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, append([]byte(configHeader), data...), 0o644)
}
