package debugx

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var state struct {
	mu      sync.Mutex
	logger  zerolog.Logger
	enabled bool
}

func init() {
	state.logger = newLogger(os.Stderr)
	state.enabled = truthy(os.Getenv("DEBUG"))
}

func newLogger(w io.Writer) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: w, NoColor: true}
	return zerolog.New(console).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// truthy mirrors the shell convention for DEBUG-style flags.
func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Enabled reports whether debug output is currently emitted.
func Enabled() bool {
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.enabled
}

// SetEnabled turns debug output on or off, overriding the DEBUG variable.
func SetEnabled(on bool) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.enabled = on
}

// SetOutput redirects debug output, replacing stderr. Intended for tests.
func SetOutput(w io.Writer) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.logger = newLogger(w)
}

// Logf emits a printf-style debug line. A no-op unless enabled.
func Logf(format string, args ...any) {
	state.mu.Lock()
	defer state.mu.Unlock()
	if !state.enabled {
		return
	}
	state.logger.Debug().Msgf(format, args...)
}

// Dump emits value under the given label, rendering structs, maps, and
// slices through zerolog's JSON marshalling. A no-op unless enabled.
func Dump(label string, value any) {
	state.mu.Lock()
	defer state.mu.Unlock()
	if !state.enabled {
		return
	}
	state.logger.Debug().Interface(label, value).Msg("dump")
}
