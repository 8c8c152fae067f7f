/*
Package config manages TOML config for suggestlog.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bastiangx/suggestlog/internal/utils"
	"github.com/bastiangx/suggestlog/pkg/oracle"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Oracle   OracleConfig   `toml:"oracle"`
	Progress ProgressConfig `toml:"progress"`
}

// OracleConfig has the dictionary oracle options.
type OracleConfig struct {
	Language              string `toml:"language"`
	DictionaryDir         string `toml:"dictionary_dir"`
	Alphabet              string `toml:"alphabet"`
	MaxErrors             int    `toml:"max_errors"`
	MaxCorrectionDistance int    `toml:"max_correction_distance"`
	CacheSize             int    `toml:"cache_size"`
	MinFrequency          int    `toml:"min_frequency"`
}

// ProgressConfig holds operator reporting options.
type ProgressConfig struct {
	Enabled bool `toml:"enabled"`
	Every   int  `toml:"every"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.ExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "suggestlog")
	if st := utils.CheckDir(primaryPath); st.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "suggestlog")
	if st := utils.CheckDir(macOSPath); st.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.ExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/suggestlog/config.toml
// 3. Builtin defaults
//
// A custom path that can't be read is an error; problems with the default
// path fall back to the builtin defaults. Environment overrides are applied
// last in every case.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	config, path, err := loadWithPriority(customConfigPath)
	if err != nil {
		return nil, "", err
	}
	config.applyEnvOverrides(os.Getenv)
	return config, path, nil
}

func loadWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, err := os.Stat(customConfigPath); err != nil {
			return nil, "", fmt.Errorf("config file %s: %w", customConfigPath, err)
		}
		config, err := LoadConfig(customConfigPath)
		if err != nil {
			return nil, "", fmt.Errorf("config file %s: %w", customConfigPath, err)
		}
		log.Debugf("Loaded config from custom path: %s", customConfigPath)
		return config, customConfigPath, nil
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Oracle: OracleConfig{
			Language:              "",
			DictionaryDir:         "data",
			Alphabet:              "abcdefghijklmnopqrstuvwxyz'",
			MaxErrors:             2,
			MaxCorrectionDistance: 2,
			CacheSize:             4096,
			MinFrequency:          0,
		},
		Progress: ProgressConfig{
			Enabled: true,
			Every:   1,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.DecodeTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every well-typed value of a file the strict decode
// rejected
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	sections, err := utils.ReadTOMLSections(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}
	extractOracleConfig(sections["oracle"], &config.Oracle)
	extractProgressConfig(sections["progress"], &config.Progress)
	return config, nil
}

// extractOracleConfig copies the [oracle] values that are present
func extractOracleConfig(data utils.TOMLSection, oracle *OracleConfig) {
	if val, ok := data.String("language"); ok {
		oracle.Language = val
	}
	if val, ok := data.String("dictionary_dir"); ok {
		oracle.DictionaryDir = val
	}
	if val, ok := data.String("alphabet"); ok {
		oracle.Alphabet = val
	}
	if val, ok := data.Int("max_errors"); ok {
		oracle.MaxErrors = val
	}
	if val, ok := data.Int("max_correction_distance"); ok {
		oracle.MaxCorrectionDistance = val
	}
	if val, ok := data.Int("cache_size"); ok {
		oracle.CacheSize = val
	}
	if val, ok := data.Int("min_frequency"); ok {
		oracle.MinFrequency = val
	}
}

// extractProgressConfig copies the [progress] values that are present
func extractProgressConfig(data utils.TOMLSection, progress *ProgressConfig) {
	if val, ok := data.Bool("enabled"); ok {
		progress.Enabled = val
	}
	if val, ok := data.Int("every"); ok {
		progress.Every = val
	}
}

// applyEnvOverrides lets the environment win over the file
func (c *Config) applyEnvOverrides(getenv func(string) string) {
	if env := getenv("SUGGESTLOG_DICTIONARY_DIR"); env != "" {
		c.Oracle.DictionaryDir = env
	}
	if env := getenv("SUGGESTLOG_CACHE_SIZE"); env != "" {
		if n, err := strconv.Atoi(env); err == nil {
			c.Oracle.CacheSize = n
		} else {
			log.Warnf("Ignoring SUGGESTLOG_CACHE_SIZE=%q: %v", env, err)
		}
	}
}

// OracleOptions maps the [oracle] section onto oracle.Options. Values the
// file leaves non-positive fall back to the oracle defaults.
func (c *Config) OracleOptions() oracle.Options {
	opts := oracle.DefaultOptions()
	if c.Oracle.Alphabet != "" {
		opts.Alphabet = c.Oracle.Alphabet
	}
	if c.Oracle.MaxErrors > 0 {
		opts.MaxErrors = c.Oracle.MaxErrors
	}
	if c.Oracle.MaxCorrectionDistance > 0 {
		opts.MaxCorrectionDistance = c.Oracle.MaxCorrectionDistance
	}
	if c.Oracle.MinFrequency > 0 {
		opts.MinFrequency = c.Oracle.MinFrequency
	}
	if c.Oracle.CacheSize >= 0 {
		opts.CacheSize = c.Oracle.CacheSize
	}
	return opts
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.WriteTOMLFile(configPath, config)
}
