package scenario

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is a key-value cache of serialized scenario records.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
	Delete(key string) error
}

// RedisCache backs Cache with a redis instance.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisCache connects a cache to the redis server at addr.
func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ctx:    context.Background(),
	}
}

// Get returns the cached value for key, if present.
func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores value under key with no expiry.
func (r *RedisCache) Set(key string, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Delete removes key from the cache.
func (r *RedisCache) Delete(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

// MapCache is an in-process Cache used in tests and single-node setups.
type MapCache struct {
	Data map[string]string
}

// NewMapCache creates an empty MapCache.
func NewMapCache() *MapCache {
	return &MapCache{Data: make(map[string]string)}
}

// Get returns the cached value for key, if present.
func (m *MapCache) Get(key string) (string, bool) {
	val, ok := m.Data[key]
	return val, ok
}

// Set stores value under key.
func (m *MapCache) Set(key string, value string) error {
	m.Data[key] = value
	return nil
}

// Delete removes key.
func (m *MapCache) Delete(key string) error {
	delete(m.Data, key)
	return nil
}

// CachingStore wraps a Store with read-through caching of serialized records.
// Loads are served from the cache when possible; saves and deletes keep the
// cache coherent.
type CachingStore struct {
	store  Store
	cache  Cache
	logger *zap.Logger
}

// NewCachingStore wraps store with cache.
func NewCachingStore(store Store, cache Cache, logger *zap.Logger) *CachingStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachingStore{store: store, cache: cache, logger: logger}
}

func cacheKey(id uuid.UUID) string {
	return "scenario:" + id.String()
}

// Load returns the record for id, preferring the cache.
func (s *CachingStore) Load(id uuid.UUID) (Record, error) {
	if raw, ok := s.cache.Get(cacheKey(id)); ok {
		var record Record
		if err := json.Unmarshal([]byte(raw), &record); err == nil {
			return record, nil
		}
		// A corrupt cache entry falls through to the backing store.
		s.logger.Warn("discarding unreadable cached scenario",
			zap.String("op", "scenario.CachingStore.Load"),
			zap.String("id", id.String()),
		)
	}

	record, err := s.store.Load(id)
	if err != nil {
		return Record{}, err
	}
	s.cacheRecord(record)
	return record, nil
}

// Save persists the record and refreshes its cache entry.
func (s *CachingStore) Save(record Record) (uuid.UUID, error) {
	id, err := s.store.Save(record)
	if err != nil {
		return uuid.Nil, err
	}

	saved, err := s.store.Load(id)
	if err == nil {
		s.cacheRecord(saved)
	}
	return id, nil
}

// List delegates to the backing store.
func (s *CachingStore) List() ([]Record, error) {
	return s.store.List()
}

// Delete removes the record and its cache entry.
func (s *CachingStore) Delete(id uuid.UUID) (bool, error) {
	deleted, err := s.store.Delete(id)
	if err != nil {
		return false, err
	}
	if deleted {
		if cacheErr := s.cache.Delete(cacheKey(id)); cacheErr != nil {
			s.logger.Warn("failed to evict cached scenario",
				zap.String("op", "scenario.CachingStore.Delete"),
				zap.String("id", id.String()),
				zap.Error(cacheErr),
			)
		}
	}
	return deleted, nil
}

func (s *CachingStore) cacheRecord(record Record) {
	data, err := json.Marshal(record)
	if err != nil {
		return
	}
	if err := s.cache.Set(cacheKey(record.ID), string(data)); err != nil {
		s.logger.Warn("failed to cache scenario",
			zap.String("op", "scenario.CachingStore.cacheRecord"),
			zap.String("id", record.ID.String()),
			zap.Error(err),
		)
	}
}
