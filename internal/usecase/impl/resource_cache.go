package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"

	deliverycontext "pabw/internal/delivery/context"
	"pabw/internal/domain/entity"
	domainerrors "pabw/internal/domain/errors"
	"pabw/internal/domain/service"
	"pabw/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// cacheEntry is the state of one key. generation advances whenever a settled
// entry is fetched again, so an older flight can neither commit over the new
// result nor be joined by the new fetch.
type cacheEntry struct {
	data       json.RawMessage
	err        error
	loading    bool
	settled    bool
	generation uint64
}

// resourceCache implements the ResourceCache interface.
type resourceCache struct {
	store     usecase.SessionStore
	refresher usecase.SessionRefresher
	backend   service.Backend
	logger    *slog.Logger

	flights singleflight.Group
	changes *changeNotifier

	mu      sync.Mutex
	epoch   uint64
	entries map[entity.CacheKey]*cacheEntry
}

// ResourceCacheParams holds dependencies for the resource cache, injected by Fx
type ResourceCacheParams struct {
	fx.In

	Store     usecase.SessionStore
	Refresher usecase.SessionRefresher
	Backend   service.Backend
	Logger    *slog.Logger
}

// NewResourceCache is the constructor for resourceCache.
func NewResourceCache(params ResourceCacheParams) usecase.ResourceCache {
	return &resourceCache{
		store:     params.Store,
		refresher: params.Refresher,
		backend:   params.Backend,
		logger:    params.Logger,
		changes:   newChangeNotifier(),
		entries:   make(map[entity.CacheKey]*cacheEntry),
	}
}

func (c *resourceCache) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// Request returns the entry for ref, dispatching the first fetch for its key.
func (c *resourceCache) Request(ctx context.Context, ref entity.ResourceRef) entity.CachedResource {
	state, key, entry, ok := c.acquire(ref)
	if !ok {
		return entity.CachedResource{}
	}
	if state.IsLoading {
		// The credential is under review; show what we have without fetching.
		snapshot := snapshotOf(key, entry)
		c.mu.Unlock()
		snapshot.IsLoading = true

		return snapshot
	}

	start := !entry.settled && !entry.loading
	if start {
		entry.loading = true
	}
	generation := entry.generation
	snapshot := snapshotOf(key, entry)
	c.mu.Unlock()

	if start {
		c.changes.Notify()
		c.flights.DoChan(flightKey(key, generation), c.fetcher(ctx, key, generation, state.Credential))
	}

	return snapshot
}

// Load waits for the session to settle and for the key's outstanding fetch.
func (c *resourceCache) Load(ctx context.Context, ref entity.ResourceRef) (entity.CachedResource, error) {
	if err := c.refresher.Wait(ctx); err != nil {
		return entity.CachedResource{IsLoading: true}, err
	}

	state, key, entry, ok := c.acquire(ref)
	if !ok {
		return entity.CachedResource{}, nil
	}
	if entry.settled && entry.err == nil && !entry.loading {
		snapshot := snapshotOf(key, entry)
		c.mu.Unlock()

		return snapshot, nil
	}
	start := !entry.loading
	if start && entry.settled {
		// The failed flight may not have left the group yet; do not join it.
		entry.generation++
		entry.settled = false
	}
	entry.loading = true
	generation := entry.generation
	c.mu.Unlock()

	if start {
		c.changes.Notify()
	}

	result := c.flights.DoChan(flightKey(key, generation), c.fetcher(ctx, key, generation, state.Credential))
	select {
	case res := <-result:
		data, _ := res.Val.(json.RawMessage)

		return entity.CachedResource{Key: key, Data: data, Err: res.Err}, res.Err
	case <-ctx.Done():
		return c.snapshot(key), ctx.Err()
	}
}

// Mutate invalidates ref for the current credential and refetches it.
func (c *resourceCache) Mutate(ctx context.Context, ref entity.ResourceRef) {
	state, key, entry, ok := c.acquire(ref)
	if !ok {
		return
	}
	entry.generation++
	entry.settled = false
	entry.loading = true
	generation := entry.generation
	c.mu.Unlock()

	c.log(ctx).Debug("Revalidating cached resource", slog.String("key", key.String()))
	c.changes.Notify()
	c.flights.DoChan(flightKey(key, generation), c.fetcher(ctx, key, generation, state.Credential))
}

// Retry refetches ref when its last fetch failed for a reason other than
// authorization. A fetch already under way is joined, not repeated.
func (c *resourceCache) Retry(ctx context.Context, ref entity.ResourceRef) {
	state, key, entry, ok := c.acquire(ref)
	if !ok {
		return
	}
	if state.IsLoading || entry.loading || !entry.settled || entry.err == nil || domainerrors.IsAuthorization(entry.err) {
		c.mu.Unlock()

		return
	}
	entry.generation++
	entry.settled = false
	entry.loading = true
	entry.err = nil
	generation := entry.generation
	c.mu.Unlock()

	c.log(ctx).Debug("Retrying failed resource", slog.String("key", key.String()))
	c.changes.Notify()
	c.flights.DoChan(flightKey(key, generation), c.fetcher(ctx, key, generation, state.Credential))
}

// Watch returns a channel closed on the next change.
func (c *resourceCache) Watch() <-chan struct{} {
	return c.changes.Watch()
}

func (c *resourceCache) fetcher(ctx context.Context, key entity.CacheKey, generation uint64, credential entity.Credential) func() (any, error) {
	// Joined callers share the flight, so it must not die with the first of them.
	fetchCtx := context.WithoutCancel(ctx)

	return func() (any, error) {
		// A caller that joins just after a flight settled gets its result.
		if data, ok := c.settledData(key, generation); ok {
			return data, nil
		}

		data, err := c.backend.Get(fetchCtx, key.Ref.Endpoint(), credential)
		if domainerrors.IsAuthorization(err) {
			c.refresher.Invalidate(fetchCtx, key.Epoch)
		}
		c.commit(fetchCtx, key, generation, data, err)

		if err != nil {
			return nil, err
		}

		return data, nil
	}
}

// commit stores a fetch result only if its key is still current.
func (c *resourceCache) commit(ctx context.Context, key entity.CacheKey, generation uint64, data json.RawMessage, err error) {
	current := c.store.CurrentState().Epoch

	c.mu.Lock()
	entry, ok := c.entries[key]
	if current != key.Epoch || !ok || entry.generation != generation {
		c.mu.Unlock()
		c.log(ctx).Debug("Discarding stale response", slog.String("key", key.String()))

		return
	}

	entry.loading = false
	entry.settled = true
	entry.err = err
	if err == nil {
		entry.data = data
	}
	c.mu.Unlock()

	c.changes.Notify()
}

func (c *resourceCache) settledData(key entity.CacheKey, generation uint64) (json.RawMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || entry.generation != generation || !entry.settled || entry.err != nil {
		return nil, false
	}

	return entry.data, true
}

func (c *resourceCache) snapshot(key entity.CacheKey) entity.CachedResource {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return entity.CachedResource{Key: key}
	}

	return snapshotOf(key, entry)
}

// acquire locks c.mu and returns the session state with the entry of ref
// under its credential. The state is read under the lock, so a credential the
// cache has already seen replaced never gets an entry. When ok is false
// there is nothing to fetch and c.mu is not held.
func (c *resourceCache) acquire(ref entity.ResourceRef) (entity.SessionState, entity.CacheKey, *cacheEntry, bool) {
	if ref.IsZero() {
		return entity.SessionState{}, entity.CacheKey{}, nil, false
	}

	c.mu.Lock()
	for {
		state := c.store.CurrentState()
		if state.Credential.IsZero() {
			c.mu.Unlock()

			return state, entity.CacheKey{}, nil, false
		}

		key := entity.CacheKey{Ref: ref, Epoch: state.Epoch}
		if entry := c.entryLocked(key); entry != nil {
			return state, key, entry, true
		}
		// Epochs only grow, so the next read is at least as new as the cache.
	}
}

// entryLocked returns the entry for key, creating it and evicting the entries
// of superseded credentials. It returns nil for a key older than the newest
// credential seen. c.mu must be held.
func (c *resourceCache) entryLocked(key entity.CacheKey) *cacheEntry {
	if key.Epoch < c.epoch {
		return nil
	}
	if key.Epoch > c.epoch {
		for k := range c.entries {
			if k.Epoch != key.Epoch {
				delete(c.entries, k)
			}
		}
		c.epoch = key.Epoch
	}

	entry, ok := c.entries[key]
	if !ok {
		entry = &cacheEntry{}
		c.entries[key] = entry
	}

	return entry
}

func snapshotOf(key entity.CacheKey, entry *cacheEntry) entity.CachedResource {
	return entity.CachedResource{
		Key:       key,
		Data:      entry.data,
		IsLoading: entry.loading,
		Err:       entry.err,
	}
}

func flightKey(key entity.CacheKey, generation uint64) string {
	return key.String() + "#" + strconv.FormatUint(generation, 10)
}
