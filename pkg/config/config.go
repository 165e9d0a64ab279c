// Package config loads vertexcover settings from a TOML file and the
// environment.
//
// Precedence, lowest first: built-in defaults, the TOML file, VERTEXCOVER_*
// environment variables. Command-line flags are applied by the caller on
// top of the loaded value.
//
//	[server]
//	addr = ":8000"
//	allowed_origins = ["http://localhost:3000"]
//	request_timeout = "30s"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "cache:6379"
//
//	[solver]
//	max_nodes = 2000000
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/vertexcover/pkg/cache"
)

const appName = "vertexcover"

// Config is the complete application configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Solver SolverConfig `toml:"solver"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr           string        `toml:"addr"`
	AllowedOrigins []string      `toml:"allowed_origins"`
	RequestTimeout time.Duration `toml:"request_timeout"`
	MaxBodyBytes   int64         `toml:"max_body_bytes"`
	Metrics        bool          `toml:"metrics"`
}

// CacheConfig selects the result cache backend.
type CacheConfig struct {
	Backend         string `toml:"backend"`
	Dir             string `toml:"dir"`
	Prefix          string `toml:"prefix"`
	RedisAddr       string `toml:"redis_addr"`
	RedisPassword   string `toml:"redis_password"`
	RedisDB         int    `toml:"redis_db"`
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// SolverConfig holds defaults for cover searches.
type SolverConfig struct {
	MaxNodes int `toml:"max_nodes"`
	Restarts int `toml:"restarts"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           ":8000",
			AllowedOrigins: []string{"*"},
			RequestTimeout: 30 * time.Second,
			MaxBodyBytes:   1 << 20,
			Metrics:        true,
		},
		Cache: CacheConfig{
			Backend: cache.BackendFile,
			Dir:     DefaultCacheDir(),
		},
		Solver: SolverConfig{
			MaxNodes: 2_000_000,
			Restarts: 1,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load returns the defaults overlaid with the TOML file at path (if path is
// non-empty) and the environment. A missing file at [DefaultPath] is not an
// error; a missing explicitly named file is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			if !(errors.Is(err, os.ErrNotExist) && path == DefaultPath()) {
				return nil, err
			}
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// applyEnv overlays VERTEXCOVER_* variables read through lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"VERTEXCOVER_ADDR":             &c.Server.Addr,
		"VERTEXCOVER_CACHE_BACKEND":    &c.Cache.Backend,
		"VERTEXCOVER_CACHE_DIR":        &c.Cache.Dir,
		"VERTEXCOVER_CACHE_PREFIX":     &c.Cache.Prefix,
		"VERTEXCOVER_REDIS_ADDR":       &c.Cache.RedisAddr,
		"VERTEXCOVER_REDIS_PASSWORD":   &c.Cache.RedisPassword,
		"VERTEXCOVER_MONGO_URI":        &c.Cache.MongoURI,
		"VERTEXCOVER_MONGO_DATABASE":   &c.Cache.MongoDatabase,
		"VERTEXCOVER_MONGO_COLLECTION": &c.Cache.MongoCollection,
		"VERTEXCOVER_LOG_LEVEL":        &c.Log.Level,
	}
	for name, dst := range str {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"VERTEXCOVER_REDIS_DB":  &c.Cache.RedisDB,
		"VERTEXCOVER_MAX_NODES": &c.Solver.MaxNodes,
		"VERTEXCOVER_RESTARTS":  &c.Solver.Restarts,
	}
	for name, dst := range ints {
		if v, ok := lookup(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			*dst = n
		}
	}

	if v, ok := lookup("VERTEXCOVER_ALLOWED_ORIGINS"); ok {
		c.Server.AllowedOrigins = strings.Split(v, ",")
	}
	if v, ok := lookup("VERTEXCOVER_REQUEST_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("VERTEXCOVER_REQUEST_TIMEOUT: %w", err)
		}
		c.Server.RequestTimeout = d
	}
	return nil
}

var (
	backends  = []string{cache.BackendNone, cache.BackendFile, cache.BackendRedis, cache.BackendMongo}
	logLevels = []string{"debug", "info", "warn", "error"}
)

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if !slices.Contains(backends, c.Cache.Backend) {
		return fmt.Errorf("cache.backend: unknown backend %q (want one of %v)", c.Cache.Backend, backends)
	}
	if c.Cache.Backend == cache.BackendFile && c.Cache.Dir == "" {
		return errors.New("cache.dir: required for the file backend")
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	if c.Solver.MaxNodes < 0 {
		return fmt.Errorf("solver.max_nodes: must be non-negative (got %d)", c.Solver.MaxNodes)
	}
	if c.Solver.Restarts < 1 {
		return fmt.Errorf("solver.restarts: must be at least 1 (got %d)", c.Solver.Restarts)
	}
	if c.Server.RequestTimeout < 0 {
		return fmt.Errorf("server.request_timeout: must be non-negative (got %s)", c.Server.RequestTimeout)
	}
	return nil
}

// CacheOptions converts the cache section for [cache.Open].
func (c *Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend:         c.Cache.Backend,
		Dir:             c.Cache.Dir,
		RedisAddr:       c.Cache.RedisAddr,
		RedisPassword:   c.Cache.RedisPassword,
		RedisDB:         c.Cache.RedisDB,
		MongoURI:        c.Cache.MongoURI,
		MongoDatabase:   c.Cache.MongoDatabase,
		MongoCollection: c.Cache.MongoCollection,
	}
}

// Write encodes c as TOML.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// DefaultPath returns $XDG_CONFIG_HOME/vertexcover/config.toml, falling back
// to ~/.config.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// DefaultCacheDir returns $XDG_CACHE_HOME/vertexcover, falling back to
// ~/.cache.
func DefaultCacheDir() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cache", appName)
}
