package config

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/vertexcover/pkg/cache"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
[server]
addr = ":9000"
allowed_origins = ["http://localhost:3000"]
request_timeout = "5s"

[cache]
backend = "none"

[solver]
max_nodes = 1000
restarts = 4
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Addr != ":9000" {
		t.Errorf("Server.Addr = %q, want :9000", cfg.Server.Addr)
	}
	if !slices.Equal(cfg.Server.AllowedOrigins, []string{"http://localhost:3000"}) {
		t.Errorf("AllowedOrigins = %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Server.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", cfg.Server.RequestTimeout)
	}
	if cfg.Cache.Backend != cache.BackendNone {
		t.Errorf("Cache.Backend = %q, want none", cfg.Cache.Backend)
	}
	if cfg.Solver.MaxNodes != 1000 || cfg.Solver.Restarts != 4 {
		t.Errorf("Solver = %+v", cfg.Solver)
	}
	if cfg.Server.MaxBodyBytes != 1<<20 {
		t.Errorf("unset MaxBodyBytes lost its default: %d", cfg.Server.MaxBodyBytes)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeFile(t, "[server]\nadress = \":9000\"\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "server.adress") {
		t.Errorf("Load() err = %v, want unknown key server.adress", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load(missing explicit file) err = nil")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"backend", "[cache]\nbackend = \"memcached\"\n"},
		{"log level", "[log]\nlevel = \"loud\"\n"},
		{"restarts", "[solver]\nrestarts = 0\n"},
		{"syntax", "[server\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeFile(t, tt.content)); err == nil {
				t.Error("Load() err = nil")
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"VERTEXCOVER_ADDR":            ":7000",
		"VERTEXCOVER_CACHE_BACKEND":   "redis",
		"VERTEXCOVER_REDIS_ADDR":      "cache:6379",
		"VERTEXCOVER_REDIS_DB":        "2",
		"VERTEXCOVER_ALLOWED_ORIGINS": "https://a.example,https://b.example",
		"VERTEXCOVER_REQUEST_TIMEOUT": "1m",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	if err := cfg.applyEnv(lookup); err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":7000" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	opts := cfg.CacheOptions()
	if opts.Backend != cache.BackendRedis || opts.RedisAddr != "cache:6379" || opts.RedisDB != 2 {
		t.Errorf("CacheOptions() = %+v", opts)
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Errorf("AllowedOrigins = %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Server.RequestTimeout != time.Minute {
		t.Errorf("RequestTimeout = %v", cfg.Server.RequestTimeout)
	}

	env = map[string]string{"VERTEXCOVER_MAX_NODES": "lots"}
	if err := Default().applyEnv(lookup); err == nil {
		t.Error("applyEnv with non-numeric VERTEXCOVER_MAX_NODES err = nil")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Cache.Backend = cache.BackendNone
	cfg.Solver.MaxNodes = 42

	var buf bytes.Buffer
	if err := cfg.Write(&buf); err != nil {
		t.Fatal(err)
	}
	back, err := Load(writeFile(t, buf.String()))
	if err != nil {
		t.Fatalf("Load(written) = %v\n%s", err, buf.String())
	}
	if back.Solver.MaxNodes != 42 {
		t.Errorf("MaxNodes = %d, want 42", back.Solver.MaxNodes)
	}
}

func TestDefaultPaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CACHE_HOME", dir)

	if got, want := DefaultPath(), filepath.Join(dir, "vertexcover", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
	if got, want := DefaultCacheDir(), filepath.Join(dir, "vertexcover"); got != want {
		t.Errorf("DefaultCacheDir() = %q, want %q", got, want)
	}
}
