package sysx

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/google/uuid"
)

// Sentinel errors returned by system checks.
var (
	// ErrNotRoot is returned by [RequireRoot] when the process lacks
	// root privileges.
	ErrNotRoot = errors.New("sysx: root privileges required")

	// ErrUnsupported is returned by probes that have no meaningful answer
	// on the current platform.
	ErrUnsupported = errors.New("sysx: not supported on this platform")
)

// ─────────────────────────────────────────────────────────────────────────────
// Privileges
// ─────────────────────────────────────────────────────────────────────────────

// IsRoot reports whether the process runs with an effective UID of 0.
// Always false on platforms without POSIX UIDs.
func IsRoot() bool { return os.Geteuid() == 0 }

// RequireRoot returns [ErrNotRoot] unless the process runs as root — the
// guard clause at the top of privileged scripts.
func RequireRoot() error {
	if !IsRoot() {
		return ErrNotRoot
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Commands & host facts
// ─────────────────────────────────────────────────────────────────────────────

// CommandExists reports whether name resolves to an executable in PATH,
// like `command -v`.
func CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Hostname returns the kernel-reported host name.
func Hostname() (string, error) {
	h, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("sysx: hostname: %w", err)
	}
	return h, nil
}

// UUID returns a fresh random (version 4) UUID string, like uuidgen.
func UUID() string { return uuid.NewString() }

// ─────────────────────────────────────────────────────────────────────────────
// Temp files
// ─────────────────────────────────────────────────────────────────────────────

// TempFile creates a new file in the default temp directory and returns its
// path, like mktemp. pattern may contain one "*", replaced by a random
// string; an empty pattern gets a fully random name. The file is created
// closed; the caller owns removal.
func TempFile(pattern string) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("sysx: temp file: %w", err)
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("sysx: temp file: %w", err)
	}
	return path, nil
}

// TempDir creates a new directory in the default temp directory and returns
// its path, like `mktemp -d`. The caller owns removal.
func TempDir(pattern string) (string, error) {
	dir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("sysx: temp dir: %w", err)
	}
	return dir, nil
}
