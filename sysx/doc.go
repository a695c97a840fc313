// Package sysx provides the small system-probing helpers scripts reach for:
// privilege checks, command lookup, temp files, and host facts.
//
//	if !sysx.IsRoot() { ... }              // [ "$EUID" -eq 0 ]
//	if sysx.CommandExists("rsync") { ... } // command -v rsync
//	f, _ := sysx.TempFile("backup-*.sql")  // mktemp
//	id := sysx.UUID()                      // uuidgen
//
// Uname and DiskFree are unix-only (Linux, macOS); elsewhere they return
// [ErrUnsupported].
package sysx
