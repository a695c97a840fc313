package envx

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrUnset is returned by [Require] when a variable is missing or empty.
var ErrUnset = errors.New("envx: required environment variable is not set")

// ─────────────────────────────────────────────────────────────────────────────
// .env loading
// ─────────────────────────────────────────────────────────────────────────────

// Load sources the given .env files (default "./.env") into the process
// environment. Variables that are already set keep their current value, so
// the real environment always wins over the file.
func Load(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("envx: load: %w", err)
	}
	return nil
}

// Overload sources the given .env files, overwriting variables that are
// already set. Use for test fixtures and forced profiles.
func Overload(files ...string) error {
	if err := godotenv.Overload(files...); err != nil {
		return fmt.Errorf("envx: overload: %w", err)
	}
	return nil
}

// LoadIfExists is [Load] for an optional file: a missing file is not an
// error, any other failure is.
func LoadIfExists(file string) error {
	if _, err := os.Stat(file); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("envx: stat %q: %w", file, err)
	}
	return Load(file)
}

// ─────────────────────────────────────────────────────────────────────────────
// Reads
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value of key, or fallback when key is unset or empty —
// the ${KEY:-fallback} convention (empty counts as unset).
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Require returns the value of key, or [ErrUnset] when it is unset or
// empty — the ${KEY:?} convention.
func Require(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("%w: %q", ErrUnset, key)
	}
	return v, nil
}

// Bool reads key as a boolean using [strconv.ParseBool] rules ("1", "t",
// "TRUE", …). Unset, empty, or unparsable values yield fallback.
func Bool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// Int reads key as a base-10 integer. Unset, empty, or unparsable values
// yield fallback.
func Int(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
