package redisad

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"travel_catalog/internal/adapters/observability"
)

type Cache struct{ c *redis.Client }

func New(addr, pass string, db int) *Cache {
	return &Cache{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func (r *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, err := r.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		observability.ObserveCache("redis", "miss")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	observability.ObserveCache("redis", "hit")
	return true, json.Unmarshal(v, dst)
}

func (r *Cache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, _ := json.Marshal(v)
	observability.ObserveCache("redis", "set")
	return r.c.Set(ctx, key, b, time.Duration(ttlSec)*time.Second).Err()
}

func (r *Cache) Del(ctx context.Context, key string) error {
	observability.ObserveCache("redis", "del")
	return r.c.Del(ctx, key).Err()
}

// Selection is the durable store for the viewer's currency choice: one
// plain-string key, read at startup, written on every explicit change.
type Selection struct {
	c   *redis.Client
	key string
}

func NewSelection(addr, pass string, db int, key string) *Selection {
	if key == "" {
		key = "viewer:currency"
	}
	return &Selection{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}), key: key}
}

func (s *Selection) Read(ctx context.Context) (string, error) {
	v, err := s.c.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return v, err
}

func (s *Selection) Write(ctx context.Context, code string) error {
	// no TTL: the selection survives until the viewer changes it
	return s.c.Set(ctx, s.key, code, 0).Err()
}
