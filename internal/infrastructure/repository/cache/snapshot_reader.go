package cache

import (
	"context"

	"github.com/riskibarqy/galero/internal/domain/placement"
	basecache "github.com/riskibarqy/galero/internal/platform/cache"
	"github.com/riskibarqy/galero/internal/platform/resilience"
)

const snapshotKey = "competition:snapshot"

// SnapshotReader serves a recently read snapshot and shields the store with a
// circuit breaker. Cached snapshots are shared, so callers must treat them as
// read-only; the placement graph only ever reads them.
type SnapshotReader struct {
	next    placement.SnapshotReader
	cache   *basecache.Store[placement.Snapshot]
	breaker *resilience.CircuitBreaker
}

func NewSnapshotReader(next placement.SnapshotReader, cache *basecache.Store[placement.Snapshot], breaker *resilience.CircuitBreaker) *SnapshotReader {
	return &SnapshotReader{next: next, cache: cache, breaker: breaker}
}

func (r *SnapshotReader) ReadSnapshot(ctx context.Context) (placement.Snapshot, error) {
	load := func(ctx context.Context) (placement.Snapshot, error) {
		return resilience.Execute(ctx, r.breaker, r.next.ReadSnapshot)
	}
	if r.cache == nil {
		return load(ctx)
	}
	return r.cache.GetOrLoad(ctx, snapshotKey, load)
}

// Invalidate drops the cached snapshot so the next read hits the store.
func (r *SnapshotReader) Invalidate(ctx context.Context) {
	if r.cache == nil {
		return
	}
	r.cache.Delete(ctx, snapshotKey)
}
