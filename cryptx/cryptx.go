package cryptx

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
)

// ─────────────────────────────────────────────────────────────────────────────
// Checksums
// ─────────────────────────────────────────────────────────────────────────────

// SHA256Sum returns the hex-encoded SHA-256 digest of the file at path,
// matching the first column of `sha256sum` output.
func SHA256Sum(path string) (string, error) {
	return fileSum(path, sha256.New())
}

// MD5Sum returns the hex-encoded MD5 digest of the file at path, matching
// the first column of `md5sum` output. Integrity checks only; see the
// package documentation.
func MD5Sum(path string) (string, error) {
	return fileSum(path, md5.New())
}

// SHA256String returns the hex-encoded SHA-256 digest of s.
func SHA256String(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// MD5String returns the hex-encoded MD5 digest of s.
func MD5String(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func fileSum(path string, h hash.Hash) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("cryptx: checksum %q: %w", path, err)
	}
	defer f.Close()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("cryptx: checksum %q: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Random material
// ─────────────────────────────────────────────────────────────────────────────

// RandomHex returns n cryptographically random bytes hex-encoded (so the
// string is 2n characters), like `openssl rand -hex n`.
func RandomHex(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("cryptx: random byte count must be positive, got %d", n)
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("cryptx: random: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
