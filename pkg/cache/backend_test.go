package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

// exercise runs the shared Cache contract against a live backend.
func exercise(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()
	key := "test:" + t.Name() + ":" + time.Now().Format(time.RFC3339Nano)

	if _, hit, err := c.Get(ctx, key); err != nil || hit {
		t.Fatalf("Get(fresh) = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, key, []byte("cover"), time.Minute); err != nil {
		t.Fatal(err)
	}
	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(data) != "cover" {
		t.Fatalf("Get() = %q, %v, %v", data, hit, err)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("Get() hit after Delete")
	}
}

func TestRedisCache(t *testing.T) {
	addr := os.Getenv("VERTEXCOVER_TEST_REDIS")
	if addr == "" {
		t.Skip("VERTEXCOVER_TEST_REDIS not set")
	}
	c, err := NewRedisCache(context.Background(), RedisConfig{Addr: addr})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	exercise(t, c)
}

func TestMongoCache(t *testing.T) {
	uri := os.Getenv("VERTEXCOVER_TEST_MONGO")
	if uri == "" {
		t.Skip("VERTEXCOVER_TEST_MONGO not set")
	}
	c, err := NewMongoCache(context.Background(), MongoConfig{URI: uri, Collection: "cache_test"})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	exercise(t, c)
}

func TestFileCacheContract(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	exercise(t, c)
}
