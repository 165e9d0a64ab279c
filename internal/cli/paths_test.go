package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// testCLI returns a CLI whose config comes from a TOML file in a temp dir.
func testCLI(t *testing.T, toml string) *CLI {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}
	c := New(io.Discard, LogInfo)
	c.configPath = path
	return c
}

func TestCacheDirFromConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	c := testCLI(t, "[cache]\nbackend = \"file\"\ndir = \""+filepath.ToSlash(dir)+"\"\n")

	got, err := c.cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if got != filepath.ToSlash(dir) {
		t.Errorf("cacheDir() = %q, want %q", got, dir)
	}
}

func TestCacheDirXDG(t *testing.T) {
	customCache := filepath.Join(t.TempDir(), "xdg")
	t.Setenv("XDG_CACHE_HOME", customCache)

	c := testCLI(t, "")
	got, err := c.cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	want := filepath.Join(customCache, appName)
	if got != want {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", got, want)
	}
}

func TestConfigInvalid(t *testing.T) {
	c := testCLI(t, "[cache]\nbackend = \"floppy\"\n")
	if _, err := c.cacheDir(); err == nil {
		t.Error("cacheDir() with invalid config should fail")
	}
}
