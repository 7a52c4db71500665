package legislature

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"firewatch-backend/lib/timezone"
)

type CacheState string

const (
	CacheFresh    CacheState = "fresh"
	CacheStale    CacheState = "stale"
	CacheBuilding CacheState = "building"
	CacheEmpty    CacheState = "empty"
)

// StaleSnapshotError wraps the build failure when a previous snapshot
// could still be served. Callers unwrap it to decide whether stale
// data is acceptable.
type StaleSnapshotError struct {
	Err error
}

func (e *StaleSnapshotError) Error() string {
	return fmt.Sprintf("serving stale snapshot, rebuild failed: %v", e.Err)
}

func (e *StaleSnapshotError) Unwrap() error {
	return e.Err
}

// SnapshotCache serves the current snapshot and rebuilds it when the
// TTL lapses. Concurrent callers that all find the snapshot expired
// share a single build instead of racing the site. Freshness is
// tracked on the cache, not on the snapshot: published snapshots are
// never written to.
type SnapshotCache struct {
	builder *Builder
	ttl     time.Duration

	mu       sync.Mutex
	current  *Snapshot
	storedAt time.Time
	inflight chan struct{}
	buildErr error
}

func NewSnapshotCache(builder *Builder, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{builder: builder, ttl: ttl}
}

// Get returns the current snapshot, rebuilding first if it is expired,
// missing or force is set. When a rebuild fails but an earlier
// snapshot exists, that snapshot is returned together with a
// StaleSnapshotError. The failure sticks: every Get keeps retrying the
// build and returning the stale snapshot with the error until a build
// succeeds again.
func (c *SnapshotCache) Get(ctx context.Context, force bool) (*Snapshot, error) {
	c.mu.Lock()
	if c.current != nil && !force && c.buildErr == nil && timezone.Now().Sub(c.storedAt) < c.ttl {
		snapshot := c.current
		c.mu.Unlock()
		return snapshot, nil
	}

	if c.inflight != nil {
		// join the build already in progress and take whatever it
		// produced, force included: the shared build is this
		// caller's rebuild
		done := c.inflight
		c.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		c.mu.Lock()
		snapshot, err := c.current, c.buildErr
		c.mu.Unlock()
		if err != nil {
			if snapshot != nil {
				return snapshot, &StaleSnapshotError{Err: err}
			}
			return nil, err
		}
		return snapshot, nil
	}

	done := make(chan struct{})
	c.inflight = done
	c.mu.Unlock()

	snapshot, err := c.builder.Build(ctx)

	c.mu.Lock()
	if err == nil {
		c.current = snapshot
		c.storedAt = timezone.Now()
		c.buildErr = nil
	} else {
		c.buildErr = err
	}
	c.inflight = nil
	close(done)

	if err != nil {
		stale := c.current
		c.mu.Unlock()
		if stale != nil {
			slog.Warn("snapshot rebuild failed, serving stale", "error", err, "builtAt", stale.BuiltAt)
			return stale, &StaleSnapshotError{Err: err}
		}
		return nil, err
	}
	c.mu.Unlock()
	return snapshot, nil
}

// State reports what a caller would get right now without triggering a
// build.
func (c *SnapshotCache) State() CacheState {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.inflight != nil:
		return CacheBuilding
	case c.current == nil:
		return CacheEmpty
	case c.buildErr == nil && timezone.Now().Sub(c.storedAt) < c.ttl:
		return CacheFresh
	default:
		return CacheStale
	}
}

// Invalidate expires the current snapshot so the next Get rebuilds.
// Only cache bookkeeping changes, the snapshot itself stays intact for
// callers still holding it.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.storedAt = time.Time{}
}

// LastError returns the most recent build failure, nil after a
// successful build.
func (c *SnapshotCache) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buildErr
}
