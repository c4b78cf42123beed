package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// GetEnv retrieves an environment variable with a default value.
func GetEnv(key, defaultValue string) string {
	if value, ok := lookup(key); ok {
		return value
	}
	return defaultValue
}

// IsEnvSet checks if an environment variable is set to a non-blank value.
func IsEnvSet(key string) bool {
	_, ok := lookup(key)
	return ok
}

// GetEnvAsInt retrieves an environment variable as int with a default value.
func GetEnvAsInt(key string, defaultValue int) int {
	if value, ok := lookup(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// GetEnvAsBool retrieves an environment variable as bool with a default value.
func GetEnvAsBool(key string, defaultValue bool) bool {
	if value, ok := lookup(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// GetEnvAsDuration retrieves an environment variable as time.Duration with a default value.
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, ok := lookup(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func lookup(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

// FindEnvTest walks up from the working directory looking for filename and
// returns the first match. An empty filename means ".env".
func FindEnvTest(filename string) (string, error) {
	if filename == "" {
		filename = ".env"
	}
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err != nil {
			return "", err
		}
		return filename, nil
	}
	curr, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(curr, filename)
		if _, err = os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(curr)
		if parent == curr {
			return "", os.ErrNotExist
		}
		curr = parent
	}
}
