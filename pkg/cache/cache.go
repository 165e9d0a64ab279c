// Package cache stores computed results (solver covers, kernels, rendered
// artifacts) under content-addressed keys.
//
// # Backends
//
//   - [NullCache]: never stores anything; the default when caching is off
//   - [FileCache]: one JSON file per entry below a directory, for the CLI
//   - [RedisCache]: shared cache for multi-instance servers
//   - [MongoCache]: document store with a TTL index on the expiry field
//
// [Open] picks a backend from [Options].
//
// # Keys
//
// A [Keyer] derives keys from a hash of the wire-format graph plus every
// option that affects the result. Randomized results are only cacheable when
// the caller pinned a seed, so the seed is part of every solve key.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Default time-to-live values for cached entries.
const (
	TTLSolve    = 24 * time.Hour
	TTLKernel   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key-value store with per-entry expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the data stored under key. The boolean is false on a miss,
	// including for expired entries.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// Backend names accepted by [Open].
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Options selects and configures a backend.
type Options struct {
	Backend string

	// Dir is the FileCache directory.
	Dir string

	// RedisAddr, RedisPassword and RedisDB configure RedisCache.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// MongoURI, MongoDatabase and MongoCollection configure MongoCache.
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
}

// Open connects the backend named by opts.Backend. An empty backend is
// treated as [BackendNone].
func Open(ctx context.Context, opts Options) (Cache, error) {
	var (
		c   Cache
		err error
	)
	switch opts.Backend {
	case "", BackendNone:
		return NewNullCache(), nil
	case BackendFile:
		c, err = NewFileCache(opts.Dir)
	case BackendRedis:
		c, err = NewRedisCache(ctx, RedisConfig{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
	case BackendMongo:
		c, err = NewMongoCache(ctx, MongoConfig{
			URI:        opts.MongoURI,
			Database:   opts.MongoDatabase,
			Collection: opts.MongoCollection,
		})
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
