package pathx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Name components
// ─────────────────────────────────────────────────────────────────────────────

// Basename returns the last element of path, like the basename utility.
func Basename(path string) string { return filepath.Base(path) }

// Dirname returns all but the last element of path, like the dirname utility.
func Dirname(path string) string { return filepath.Dir(path) }

// Ext returns the file name extension including the leading dot, or "" when
// the name has none.
func Ext(path string) string { return filepath.Ext(path) }

// Stem returns the last element of path with its extension removed.
//
//	Stem("/var/log/app.log")  // "app"
//	Stem("archive.tar.gz")    // "archive.tar"
func Stem(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// HasExt reports whether path carries the given extension, compared
// case-insensitively. ext may be given with or without the leading dot.
func HasExt(path, ext string) bool {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.EqualFold(filepath.Ext(path), ext)
}

// ─────────────────────────────────────────────────────────────────────────────
// Resolution
// ─────────────────────────────────────────────────────────────────────────────

// Abs returns the absolute form of path, resolved against the current
// working directory when path is relative.
func Abs(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("pathx: resolve %q: %w", path, err)
	}
	return abs, nil
}

// Expand replaces a leading "~" or "~/" with the current user's home
// directory. Paths without the prefix are returned unchanged. "~user" forms
// are not supported and pass through unchanged.
func Expand(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("pathx: expand %q: %w", path, err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Filesystem probes
// ─────────────────────────────────────────────────────────────────────────────

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile reports whether path names an existing regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path names an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
