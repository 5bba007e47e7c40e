package cache

import "context"

// ProjectionCache is a two-level (namespace, field) key/value cache for
// serialized projections. Get reports a miss with found=false and a nil
// error; a non-nil error always means the cache backend failed.
type ProjectionCache interface {
	Get(ctx context.Context, namespace, field string) (value []byte, found bool, err error)
	Put(ctx context.Context, namespace, field string, value []byte) error
}
