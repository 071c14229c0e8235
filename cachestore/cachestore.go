// Package cachestore provides a small named key/value cache for expensive
// lookups (verdicts, external API results), backed by memory or redis.
package cachestore

import (
	"context"
)

type CacheStore interface {
	Get(ctx context.Context, name, key string) (string, error)
	Set(ctx context.Context, name, key string, val string) error
	Purge(ctx context.Context, name, key string) error
}
