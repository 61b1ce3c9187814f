package database

import "context"

// CacheStore defines the capability exposed to domain services: a look-aside
// cache with best-effort reads, writes, targeted invalidation and a full
// namespace flush.
type CacheStore interface {
	GetJSON(ctx context.Context, key string, dst interface{}) bool
	SetJSON(ctx context.Context, key string, v interface{}, ttlSeconds int64)
	Delete(ctx context.Context, keys ...string)
	FlushAll(ctx context.Context)
	Close() error
}

var _ CacheStore = (*CacheClient)(nil)
