// Package config handles configuration loading and parsing for frename.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alctny/frename/internal/constants"
	"github.com/alctny/frename/internal/logger"
	"github.com/alctny/frename/internal/rename"
)

//go:embed config.toml
var defaultConfig []byte

// Traversal holds the settings every rename mode shares.
type Traversal struct {
	Recursive bool `toml:"recursive"`
	SkipDot   bool `toml:"skip_dot"`
}

// AppendConfig holds defaults for the append command.
type AppendConfig struct {
	Traversal
	Position string `toml:"position"`
}

// ReplaceConfig holds defaults for the replace command.
type ReplaceConfig struct {
	Traversal
	ChangeSurfix bool `toml:"change_surfix"`
}

// FormatConfig holds defaults for the format command.
type FormatConfig struct {
	Traversal
	Surfix     bool   `toml:"surfix"`
	DateLayout string `toml:"date_layout"`
}

// CaseConfig holds defaults for the case command.
type CaseConfig struct {
	Traversal
	Surfix bool `toml:"surfix"`
}

// JournalConfig controls the rename journal.
type JournalConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Config is the decoded configuration file.
type Config struct {
	Append   AppendConfig  `toml:"append"`
	Replace  ReplaceConfig `toml:"replace"`
	Format   FormatConfig  `toml:"format"`
	Case     CaseConfig    `toml:"case"`
	Sanitize Traversal     `toml:"sanitize"`
	Journal  JournalConfig `toml:"journal"`

	// Source is the file the configuration was read from, empty for the
	// embedded defaults
	Source string `toml:"-"`
}

// AppendPosition returns the configured default append position.
func (c *Config) AppendPosition() rename.Position {
	p, err := rename.ParsePosition(c.Append.Position)
	if err != nil {
		return rename.After
	}
	return p
}

var (
	// globalConfig is the loaded configuration
	globalConfig *Config
	// configInitialized tracks whether config has been loaded
	configInitialized bool
)

// GetConfigDir returns the config directory path.
// Uses FRENAME_CONFIG env var if set, otherwise ~/.config/frename
func GetConfigDir() (string, error) {
	if dir := os.Getenv(constants.EnvConfigDir); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, constants.XDGConfigSubdir, constants.AppName), nil
}

// EnsureConfigFiles creates the config directory and writes the default
// config file if it doesn't exist.
func EnsureConfigFiles(configDir string) error {
	if err := os.MkdirAll(configDir, constants.DirMode); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, constants.ConfigFileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := os.WriteFile(configPath, defaultConfig, constants.FileMode); err != nil {
			return fmt.Errorf("failed to write %s: %w", constants.ConfigFileName, err)
		}
	}

	return nil
}

// LoadConfig decodes TOML data on top of the embedded defaults, so keys
// missing from data keep their default value.
func LoadConfig(data []byte) (*Config, error) {
	cfg, err := decode(defaultConfig, &Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded defaults: %w", err)
	}
	return decode(data, cfg)
}

func decode(data []byte, cfg *Config) (*Config, error) {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logger.Warn("ignoring unknown config keys", "keys", strings.Join(keys, ","))
	}

	if _, err := rename.ParsePosition(cfg.Append.Position); err != nil {
		return nil, fmt.Errorf("invalid [append] position: %w", err)
	}
	if cfg.Format.DateLayout == "" {
		cfg.Format.DateLayout = rename.DefaultDateLayout
	}

	return cfg, nil
}

// loadEmbeddedDefaults loads the embedded default config file.
func loadEmbeddedDefaults() *Config {
	cfg, _ := LoadConfig(defaultConfig)
	return cfg
}

// Init loads the configuration file when present. A missing file is not an
// error; an unreadable or invalid one falls back to embedded defaults and
// the error is returned.
func Init() error {
	if configInitialized {
		return nil
	}
	configInitialized = true
	globalConfig = loadEmbeddedDefaults()

	configDir, err := GetConfigDir()
	if err != nil {
		logger.Debug("failed to get config dir, using embedded defaults", "error", err)
		return err
	}

	configPath := filepath.Join(configDir, constants.ConfigFileName)
	configData, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		logger.Debug("no config file, using embedded defaults", "path", configPath)
		return nil
	}
	if err != nil {
		logger.Debug("failed to read config file, using embedded defaults", "path", configPath, "error", err)
		return fmt.Errorf("failed to read %s: %w", constants.ConfigFileName, err)
	}

	cfg, err := LoadConfig(configData)
	if err != nil {
		logger.Debug("failed to parse config, using embedded defaults", "path", configPath, "error", err)
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Source = configPath
	globalConfig = cfg

	logger.Debug("config loaded successfully", "path", configPath)
	return nil
}

// Get returns the current configuration.
// If Init has not been called, it initializes with defaults.
func Get() *Config {
	if !configInitialized {
		Init()
	}
	return globalConfig
}

// Reset resets the configuration state. Used for testing.
func Reset() {
	configInitialized = false
	globalConfig = nil
}

// GetDefaultConfig returns the embedded default configuration.
func GetDefaultConfig() []byte {
	return defaultConfig
}
