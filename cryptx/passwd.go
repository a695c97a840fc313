package cryptx

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor used by [HashPassword]. At 12, hashing
// takes roughly a quarter second on current server hardware, which meets
// the OWASP recommendation for bcrypt.
const BcryptCost = 12

// HashPassword hashes password with bcrypt and returns the Modular Crypt
// Format string ("$2a$12$..."), the same format `htpasswd -B` writes. A
// fresh random salt is generated internally on every call.
//
// Bcrypt truncates input beyond 72 bytes; longer passwords are rejected
// rather than silently truncated.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("cryptx: hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword verifies password against a bcrypt hash. A mismatch is
// (false, nil); an error means the hash itself is malformed.
func CheckPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cryptx: check password: %w", err)
	}
	return true, nil
}
