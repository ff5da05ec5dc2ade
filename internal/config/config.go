// Package config loads todo settings from TOML files and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultTextFile   = "todo_list.txt"
	DefaultSQLiteFile = "todo_list.db"
	DefaultLogLevel   = "warn"

	BackendText   = "text"
	BackendSQLite = "sqlite"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	configFileName = ".todo.toml"

	configDirEnvKey          = "TODO_CONFIG_DIR"
	trustProjectConfigEnvKey = "TODO_TRUST_PROJECT_CONFIG"
	fileEnvKey               = "TODO_FILE"
	backendEnvKey            = "TODO_BACKEND"
)

// Config defines runtime configuration for todo.
type Config struct {
	File                     string `toml:"file"`
	Backend                  string `toml:"backend"`
	LogLevel                 string `toml:"log_level"`
	Color                    string `toml:"color"`
	TrustedProjectConfigPath string `toml:"-"`
}

// Default returns default configuration values.
func Default() Config {
	return Config{
		File:     "",
		Backend:  BackendText,
		LogLevel: DefaultLogLevel,
		Color:    ColorAuto,
	}
}

// DataPath returns the task file path, falling back to the backend's
// default file name in the working directory.
func (c *Config) DataPath() string {
	if strings.TrimSpace(c.File) != "" {
		return c.File
	}
	if c.Backend == BackendSQLite {
		return DefaultSQLiteFile
	}
	return DefaultTextFile
}

func loadFile(path string, cfg *Config) error {
	_, err := loadFileIfExists(path, cfg)
	return err
}

func loadFileIfExists(path string, cfg *Config) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if info.IsDir() {
		return false, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return false, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return true, nil
}

func overrideConfigPath() (string, bool) {
	dir := strings.TrimSpace(os.Getenv(configDirEnvKey))
	if dir == "" {
		return "", false
	}
	return filepath.Join(dir, configFileName), true
}

func trustProjectConfig() bool {
	raw := strings.TrimSpace(os.Getenv(trustProjectConfigEnvKey))
	if raw == "" {
		return false
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return value
}

var allowedKeys = []string{
	"file",
	"backend",
	"log_level",
	"color",
}

// AllowedKeys returns the set of valid config keys.
func AllowedKeys() []string {
	return allowedKeys
}

// IsAllowedKey checks if a key is a valid config key.
func IsAllowedKey(key string) bool {
	for _, k := range allowedKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Get returns the value of a config key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "file":
		return c.DataPath(), nil
	case "backend":
		return c.Backend, nil
	case "log_level":
		return c.LogLevel, nil
	case "color":
		return c.Color, nil
	default:
		return "", fmt.Errorf("unknown key: %s", key)
	}
}

// GlobalPath returns the path to the global config file.
func GlobalPath() (string, error) {
	if path, ok := overrideConfigPath(); ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configFileName), nil
}

// ProjectPath returns the path to the project config file.
func ProjectPath() (string, error) {
	if path, ok := overrideConfigPath(); ok {
		return path, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, configFileName), nil
}

// SetKey reads the TOML file at path, sets key=value, and writes it back.
func SetKey(path, key, value string) error {
	if !IsAllowedKey(key) {
		return fmt.Errorf("unknown key: %s", key)
	}

	data := make(map[string]any)
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &data); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}

	parsedValue, err := parseSetValue(key, value)
	if err != nil {
		return err
	}
	data[key] = parsedValue

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(data)
}

// Load reads config from trusted files and applies env overrides.
func Load() (*Config, error) {
	cfg := Default()

	if overridePath, ok := overrideConfigPath(); ok {
		if err := loadFile(overridePath, &cfg); err != nil {
			return nil, err
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			if err := loadFile(filepath.Join(home, configFileName), &cfg); err != nil {
				return nil, err
			}
		}

		if trustProjectConfig() {
			if cwd, err := os.Getwd(); err == nil {
				projectPath := filepath.Join(cwd, configFileName)
				info, statErr := os.Stat(projectPath)
				switch {
				case statErr == nil && !info.IsDir():
					if err := loadFile(projectPath, &cfg); err != nil {
						return nil, err
					}
					cfg.TrustedProjectConfigPath = projectPath
				case statErr != nil && !os.IsNotExist(statErr):
					return nil, statErr
				}
			}
		}
	}

	if file := strings.TrimSpace(os.Getenv(fileEnvKey)); file != "" {
		cfg.File = file
	}
	if backend := strings.TrimSpace(os.Getenv(backendEnvKey)); backend != "" {
		cfg.Backend = backend
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseSetValue(key, value string) (any, error) {
	value = strings.TrimSpace(value)
	switch key {
	case "backend":
		return parseBackend(value)
	case "color":
		return parseColor(value)
	default:
		return value, nil
	}
}

func parseBackend(raw string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case BackendText, BackendSQLite:
		return value, nil
	default:
		return "", fmt.Errorf("backend must be %s or %s", BackendText, BackendSQLite)
	}
}

func parseColor(raw string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case ColorAuto, ColorAlways, ColorNever:
		return value, nil
	default:
		return "", fmt.Errorf("color must be %s, %s or %s", ColorAuto, ColorAlways, ColorNever)
	}
}

func (c *Config) normalize() error {
	if strings.TrimSpace(c.Backend) == "" {
		c.Backend = BackendText
	}
	backend, err := parseBackend(c.Backend)
	if err != nil {
		return err
	}
	c.Backend = backend

	if strings.TrimSpace(c.Color) == "" {
		c.Color = ColorAuto
	}
	color, err := parseColor(c.Color)
	if err != nil {
		return err
	}
	c.Color = color

	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = DefaultLogLevel
	}
	return nil
}
