package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrMiss is returned when a key is absent or expired
var ErrMiss = errors.New("cache miss")

// Clock returns the current time. Tests inject a fake one.
type Clock func() time.Time

// Store is a byte-oriented key/value store with per-entry expiry
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore keeps entries in process memory and expires them against its clock
type MemoryStore struct {
	now Clock

	mu      sync.Mutex
	entries map[string]entry
}

// NewMemoryStore creates a MemoryStore; a nil clock means time.Now
func NewMemoryStore(now Clock) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{now: now, entries: make(map[string]entry)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, ErrMiss
	}
	if !m.now().Before(e.expiresAt) {
		delete(m.entries, key)
		return nil, ErrMiss
	}
	return e.value, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry{value: value, expiresAt: m.now().Add(ttl)}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

// RedisStore keeps entries in Redis; expiry is enforced by the server
type RedisStore struct {
	rdb    *goredis.Client
	prefix string
}

// NewRedisStore connects to Redis and checks the connection
func NewRedisStore(ctx context.Context, opts *goredis.Options, prefix string) (*RedisStore, error) {
	rdb := goredis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return &RedisStore{rdb: rdb, prefix: prefix}, nil
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.rdb.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrMiss
	}
	return b, err
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.rdb.Set(ctx, r.prefix+key, value, ttl).Err()
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, r.prefix+key).Err()
}

// Close closes the Redis connection
func (r *RedisStore) Close() error {
	return r.rdb.Close()
}

// Cache stores JSON-encoded values of type T for a fixed TTL
type Cache[T any] struct {
	store Store
	ttl   time.Duration
	log   *zap.Logger
}

// New creates a Cache on top of store. Store failures are logged to log, a nil log discards them.
func New[T any](store Store, ttl time.Duration, log *zap.Logger) *Cache[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache[T]{store: store, ttl: ttl, log: log}
}

// Get returns the cached value for key, or ErrMiss
func (c *Cache[T]) Get(ctx context.Context, key string) (T, error) {
	var value T
	b, err := c.store.Get(ctx, key)
	if err != nil {
		return value, err
	}
	if err := json.Unmarshal(b, &value); err != nil {
		return value, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key for the cache TTL
func (c *Cache[T]) Set(ctx context.Context, key string, value T) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, key, b, c.ttl)
}

// Invalidate drops key
func (c *Cache[T]) Invalidate(ctx context.Context, key string) error {
	return c.store.Delete(ctx, key)
}

// GetOrLoad returns the cached value for key, calling load and caching its
// result on a miss. Errors from load are returned as is and not cached.
// A failing store only costs the cache: it is logged and load's value is returned.
func (c *Cache[T]) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (T, error)) (T, error) {
	value, err := c.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, ErrMiss) {
		c.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	value, err = load(ctx)
	if err != nil {
		return value, err
	}
	if err := c.Set(ctx, key, value); err != nil {
		c.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return value, nil
}
