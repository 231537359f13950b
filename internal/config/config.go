package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ncruces/go-strftime"
)

const (
	// DefaultDBFile is the database used when nothing else is configured,
	// relative to the working directory.
	DefaultDBFile = "diary.db"
	// EnvDBPath overrides the configured database path.
	EnvDBPath = "DIARY_DB"
)

// Keys accepted by the config command, in display order.
const (
	KeyDBPath          = "db-path"
	KeyTimestampFormat = "timestamp-format"
	KeyClearScreen     = "clear-screen"
)

// Keys lists the supported configuration keys.
var Keys = []string{KeyDBPath, KeyTimestampFormat, KeyClearScreen}

// LoadEnv loads a .env file from the working directory if present.
func LoadEnv() {
	_ = godotenv.Load()
}

// ResolveDBPath picks the database path: the flag value, then $DIARY_DB,
// then the config file, then DefaultDBFile.
func ResolveDBPath(flagValue string, cfg *Config) string {
	if flagValue != "" {
		return ExpandPath(flagValue)
	}
	if env := os.Getenv(EnvDBPath); env != "" {
		return ExpandPath(env)
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath
	}
	return DefaultDBFile
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}

// NormalizeKey converts key formats (db_path, DB-Path) to the canonical db-path form.
func NormalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}

// Get returns the string value for a configuration key.
func (c *Config) Get(key string) (string, error) {
	switch NormalizeKey(key) {
	case KeyDBPath:
		return c.DBPath, nil
	case KeyTimestampFormat:
		return c.TimestampFormat, nil
	case KeyClearScreen:
		return strconv.FormatBool(c.ShouldClearScreen()), nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// Set validates and stores a value for a configuration key.
func (c *Config) Set(key, value string) error {
	switch NormalizeKey(key) {
	case KeyDBPath:
		if err := ValidateDBPath(value); err != nil {
			return err
		}
		c.DBPath = ExpandPath(value)
	case KeyTimestampFormat:
		if err := ValidateTimestampFormat(value); err != nil {
			return err
		}
		c.TimestampFormat = value
	case KeyClearScreen:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid clear-screen value: %s (want true or false)", value)
		}
		c.ClearScreen = &b
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

// ValidateDBPath checks that the database path is not a directory.
func ValidateDBPath(path string) error {
	if path == "" {
		return nil // Empty falls back to the default
	}

	info, err := os.Stat(ExpandPath(path))
	if err == nil && info.IsDir() {
		return fmt.Errorf("path is a directory: %s", path)
	}
	return nil
}

// ValidateTimestampFormat checks that a strftime pattern is well formed
// and renders to something non-empty.
func ValidateTimestampFormat(pattern string) error {
	if pattern == "" {
		return nil // Empty uses the default format
	}
	if strings.HasSuffix(strings.ReplaceAll(pattern, "%%", ""), "%") {
		return fmt.Errorf("invalid timestamp format: %q ends with a bare %%", pattern)
	}
	if strings.TrimSpace(strftime.Format(pattern, time.Now())) == "" {
		return fmt.Errorf("invalid timestamp format: %q renders empty", pattern)
	}
	return nil
}
