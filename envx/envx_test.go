package envx_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shellkit/go-shell-utils/envx"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDoesNotOverrideEnvironment(t *testing.T) {
	t.Setenv("ENVX_TEST_A", "from-env")
	path := writeEnvFile(t, "ENVX_TEST_A=from-file\nENVX_TEST_B=only-file\n")

	if err := envx.Load(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("ENVX_TEST_A"); got != "from-env" {
		t.Fatalf("Load overrode existing variable: %q", got)
	}
	if got := os.Getenv("ENVX_TEST_B"); got != "only-file" {
		t.Fatalf("got %q", got)
	}
	os.Unsetenv("ENVX_TEST_B")
}

func TestOverloadOverridesEnvironment(t *testing.T) {
	t.Setenv("ENVX_TEST_C", "from-env")
	path := writeEnvFile(t, "ENVX_TEST_C=from-file\n")

	if err := envx.Overload(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("ENVX_TEST_C"); got != "from-file" {
		t.Fatalf("got %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := envx.Load(filepath.Join(t.TempDir(), "absent.env")); err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestLoadIfExists(t *testing.T) {
	if err := envx.LoadIfExists(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("missing optional file should not error, got %v", err)
	}
	path := writeEnvFile(t, "ENVX_TEST_D=d\n")
	if err := envx.LoadIfExists(path); err != nil {
		t.Fatal(err)
	}
	if os.Getenv("ENVX_TEST_D") != "d" {
		t.Fatal("existing file should be loaded")
	}
	os.Unsetenv("ENVX_TEST_D")
}

func TestGet(t *testing.T) {
	t.Setenv("ENVX_TEST_E", "value")
	if got := envx.Get("ENVX_TEST_E", "fb"); got != "value" {
		t.Fatalf("got %q", got)
	}
	if got := envx.Get("ENVX_TEST_MISSING", "fb"); got != "fb" {
		t.Fatalf("got %q", got)
	}
	t.Setenv("ENVX_TEST_EMPTY", "")
	if got := envx.Get("ENVX_TEST_EMPTY", "fb"); got != "fb" {
		t.Fatal("empty should count as unset")
	}
}

func TestRequire(t *testing.T) {
	t.Setenv("ENVX_TEST_F", "present")
	got, err := envx.Require("ENVX_TEST_F")
	if err != nil || got != "present" {
		t.Fatalf("got %q, %v", got, err)
	}
	_, err = envx.Require("ENVX_TEST_MISSING")
	if !errors.Is(err, envx.ErrUnset) {
		t.Fatalf("got %v want ErrUnset", err)
	}
}

func TestBool(t *testing.T) {
	t.Setenv("ENVX_TEST_G", "1")
	if !envx.Bool("ENVX_TEST_G", false) {
		t.Fatal(`"1" should be true`)
	}
	t.Setenv("ENVX_TEST_G", "no such bool")
	if envx.Bool("ENVX_TEST_G", false) {
		t.Fatal("unparsable should fall back")
	}
	if !envx.Bool("ENVX_TEST_MISSING", true) {
		t.Fatal("unset should fall back")
	}
}

func TestInt(t *testing.T) {
	t.Setenv("ENVX_TEST_H", "42")
	if got := envx.Int("ENVX_TEST_H", 7); got != 42 {
		t.Fatalf("got %d", got)
	}
	t.Setenv("ENVX_TEST_H", "forty-two")
	if got := envx.Int("ENVX_TEST_H", 7); got != 7 {
		t.Fatalf("got %d", got)
	}
	if got := envx.Int("ENVX_TEST_MISSING", 7); got != 7 {
		t.Fatalf("got %d", got)
	}
}
