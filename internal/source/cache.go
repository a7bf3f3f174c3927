package source

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

const snapshotKey = "snapshot"

// CachingLoader remembers the last snapshot of another loader for a while,
// so replaying a game in the same process does not hit the API again.
type CachingLoader struct {
	next  Loader
	cache *cache.Cache
}

// NewCachingLoader caches next's snapshots for ttl.
func NewCachingLoader(next Loader, ttl time.Duration) *CachingLoader {
	return &CachingLoader{next: next, cache: cache.New(ttl, 2*ttl)}
}

// Name returns the wrapped loader's name.
func (l *CachingLoader) Name() string { return l.next.Name() }

// Load returns the cached snapshot or loads a fresh one.
func (l *CachingLoader) Load(ctx context.Context) (Snapshot, error) {
	if v, ok := l.cache.Get(snapshotKey); ok {
		return v.(Snapshot), nil
	}
	snap, err := l.next.Load(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	l.cache.SetDefault(snapshotKey, snap)
	return snap, nil
}

// Invalidate drops the cached snapshot.
func (l *CachingLoader) Invalidate() {
	l.cache.Delete(snapshotKey)
}
