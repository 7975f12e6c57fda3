package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "todoo.db"
	DefaultLogName        = "todoo.log"
	DefaultDocumentKey    = "todoo-data"
	DefaultLogLevel       = "info"
	appDirName            = "todoo"
)

type Config struct {
	DBPath      string `toml:"db_path"`
	DocumentKey string `toml:"document_key"`
	LogFile     string `toml:"log_file"`
	LogLevel    string `toml:"log_level"`
}

// ResolveConfigPath returns ~/.config/todoo/config.toml, falling back to the
// working directory when no user config dir is available.
func ResolveConfigPath() string {
	return filepath.Join(appDir(), DefaultConfigFileName)
}

// LoadOrCreate reads the config at path. A missing file is created with
// defaults so the user has something to edit.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, fmt.Errorf("write default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.fill()
	return cfg, nil
}

// Default returns the configuration used on first launch.
func Default() Config {
	dir := appDir()
	return Config{
		DBPath:      filepath.Join(dir, DefaultDBName),
		DocumentKey: DefaultDocumentKey,
		LogFile:     filepath.Join(dir, DefaultLogName),
		LogLevel:    DefaultLogLevel,
	}
}

func (c *Config) fill() {
	def := Default()
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
	if c.DocumentKey == "" {
		c.DocumentKey = def.DocumentKey
	}
	if c.LogFile == "" {
		c.LogFile = def.LogFile
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func appDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, appDirName)
}
