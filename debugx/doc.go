// Package debugx provides env-gated debug printing for scripts and tools,
// the Go rendition of the `[ -n "$DEBUG" ] && echo ... >&2` convention.
//
// Output goes to stderr through a zerolog console writer and is emitted only
// when the DEBUG environment variable holds a truthy value ("1", "true",
// "yes", "on"; case-insensitive):
//
//	debugx.Logf("retrying %s (attempt %d)", url, attempt)
//	debugx.Dump("config", cfg)
//
// The gate is read once at first use; call [SetEnabled] to force it either
// way (tests do this, as does [SetOutput] to capture the stream).
package debugx
