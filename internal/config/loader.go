package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// EnvDataFile overrides the task store location when set.
const EnvDataFile = "TASG_FILE"

// Load resolves the configuration. Precedence, highest first: the
// TASG_FILE environment variable, then the optional config file, then
// built-in defaults.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := loadFile(ConfigPath(), cfg); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	if path := os.Getenv(EnvDataFile); path != "" {
		cfg.DataFile = path
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		DataFile: filepath.Join(tasgDir(), "tasks.yaml"),
	}
}

// ConfigPath returns the path to the optional config file.
func ConfigPath() string {
	return filepath.Join(tasgDir(), "config.yaml")
}

func tasgDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "tasg")
}
