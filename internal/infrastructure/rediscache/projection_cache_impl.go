package rediscache

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/Koundinya12/UserService/internal/domain/cache"
)

// ProjectionCache stores serialized projections in a Redis hash per
// namespace, one field per entry. The hash layout keeps field names
// compatible with other consumers of the same keyspace.
type ProjectionCache struct {
	rdb *redis.Client
}

func NewProjectionCache(rdb *redis.Client) *ProjectionCache {
	return &ProjectionCache{rdb: rdb}
}

func (c *ProjectionCache) Get(ctx context.Context, namespace, field string) ([]byte, bool, error) {
	val, err := c.rdb.HGet(ctx, namespace, field).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (c *ProjectionCache) Put(ctx context.Context, namespace, field string, value []byte) error {
	return c.rdb.HSet(ctx, namespace, field, value).Err()
}

var _ cache.ProjectionCache = (*ProjectionCache)(nil)
