package debugx_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/shellkit/go-shell-utils/debugx"
)

// syncBuffer lets tests capture output without racing the package mutex.
type syncBuffer struct {
	mu sync.Mutex
	sb strings.Builder
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.String()
}

func capture(t *testing.T, enabled bool) *syncBuffer {
	t.Helper()
	buf := &syncBuffer{}
	debugx.SetOutput(buf)
	debugx.SetEnabled(enabled)
	t.Cleanup(func() { debugx.SetEnabled(false) })
	return buf
}

func TestLogfEmitsWhenEnabled(t *testing.T) {
	buf := capture(t, true)
	debugx.Logf("retry %d of %d", 2, 5)
	if !strings.Contains(buf.String(), "retry 2 of 5") {
		t.Fatalf("output missing message: %q", buf.String())
	}
}

func TestLogfSilentWhenDisabled(t *testing.T) {
	buf := capture(t, false)
	debugx.Logf("should not appear")
	if buf.String() != "" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestDumpRendersValue(t *testing.T) {
	buf := capture(t, true)
	debugx.Dump("cfg", map[string]int{"workers": 4})
	out := buf.String()
	if !strings.Contains(out, "cfg") || !strings.Contains(out, "workers") {
		t.Fatalf("output missing dumped value: %q", out)
	}
}

func TestSetEnabledTogglesGate(t *testing.T) {
	capture(t, false)
	if debugx.Enabled() {
		t.Fatal("want disabled")
	}
	debugx.SetEnabled(true)
	if !debugx.Enabled() {
		t.Fatal("want enabled")
	}
}
