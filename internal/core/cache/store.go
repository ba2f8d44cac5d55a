package cache

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/singleflight"

	"adsdesk/internal/core/domain"
)

const (
	DefaultSize           = 512
	DefaultRefetchTimeout = 15 * time.Second
)

// Fetcher loads the authoritative value of one key.
type Fetcher func(ctx context.Context) (domain.ReadModel, error)

type entry struct {
	value domain.ReadModel
	stale bool
}

type refetch struct {
	cancel context.CancelFunc
}

// Store is a bounded, concurrency-safe read-model cache.
//
// Each key carries a version stamp that changes on every write. Fetches and
// background refetches remember the stamp they started with and only store
// their result if it is unchanged, so a late response can never overwrite a
// value written while it was in flight (such as an optimistic patch).
type Store struct {
	mu       sync.Mutex
	entries  *lru.Cache
	versions map[Key]uint64
	fetchers map[Key]Fetcher
	inflight map[Key]*refetch
	clock    uint64

	group singleflight.Group

	ctx            context.Context
	stop           context.CancelFunc
	wg             sync.WaitGroup
	refetchTimeout time.Duration
	logger         *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func WithRefetchTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.refetchTimeout = d
		}
	}
}

// New creates a store holding at most size entries. The least recently used
// entry is evicted when full.
func New(size int, opts ...Option) (*Store, error) {
	if size <= 0 {
		size = DefaultSize
	}
	ctx, stop := context.WithCancel(context.Background())
	s := &Store{
		versions:       make(map[Key]uint64),
		fetchers:       make(map[Key]Fetcher),
		inflight:       make(map[Key]*refetch),
		ctx:            ctx,
		stop:           stop,
		refetchTimeout: DefaultRefetchTimeout,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	// called from inside entries.Add/Remove, with s.mu already held
	onEvict := func(k, _ interface{}) {
		key := k.(Key)
		delete(s.versions, key)
		delete(s.fetchers, key)
	}
	entries, err := lru.NewWithEvict(size, onEvict)
	if err != nil {
		stop()
		return nil, err
	}
	s.entries = entries
	return s, nil
}

// Fetch returns the cached value of key. A missing value is loaded with
// fetch, concurrent loads of the same key sharing one call. The shared call
// runs on the store's context bounded by the refetch timeout, so a caller
// giving up through ctx only stops its own wait. A stale value is returned
// as is while a background refetch replaces it.
func (s *Store) Fetch(ctx context.Context, key Key, fetch Fetcher) (domain.ReadModel, error) {
	s.mu.Lock()
	s.fetchers[key] = fetch
	if e, ok := s.peek(key); ok {
		if e.stale {
			s.refetchLocked(key)
		}
		s.entries.Get(key) // bump recency
		s.mu.Unlock()
		return e.value, nil
	}
	start := s.versions[key]
	s.mu.Unlock()

	ch := s.group.DoChan(key.String(), func() (interface{}, error) {
		lctx, cancel := context.WithTimeout(s.ctx, s.refetchTimeout)
		defer cancel()
		m, err := fetch(lctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.versions[key] != start {
			if e, ok := s.peek(key); ok {
				return e.value, nil
			}
			return m, nil
		}
		s.put(key, entry{value: m})
		return m, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(domain.ReadModel), nil
	}
}

// Get returns the cached value without loading it.
func (s *Store) Get(key Key) (domain.ReadModel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.peek(key)
	return e.value, ok
}

// Stale reports whether key holds a value that awaits a refetch.
func (s *Store) Stale(key Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.peek(key)
	return ok && e.stale
}

// Set stores a fresh value.
func (s *Store) Set(key Key, v domain.ReadModel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(key, entry{value: v})
}

// ReplaceAll writes several keys in one critical section, so no reader ever
// sees part of the group updated. Existing stale flags are preserved.
func (s *Store) ReplaceAll(values map[Key]domain.ReadModel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range values {
		prev, _ := s.peek(k)
		s.put(k, entry{value: v, stale: prev.stale})
	}
}

// Update rewrites the present keys among keys with fn, all inside one
// critical section. fn returns false to leave a value untouched. Absent keys
// are skipped. The returned stamps identify the writes made, one per
// replaced key.
func (s *Store) Update(keys []Key, fn func(Key, domain.ReadModel) (domain.ReadModel, bool)) Stamps {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(Stamps)
	for _, k := range keys {
		e, ok := s.peek(k)
		if !ok {
			continue
		}
		v, changed := fn(k, e.value)
		if !changed {
			continue
		}
		before := s.versions[k]
		e.value = v
		s.put(k, e)
		out[k] = stamp{before: before, after: s.versions[k]}
	}
	return out
}

// Snapshot captures the current state of keys, including their absence.
func (s *Store) Snapshot(keys ...Key) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{entries: make(map[Key]snapshotEntry, len(keys))}
	for _, k := range keys {
		e, ok := s.peek(k)
		snap.entries[k] = snapshotEntry{entry: e, present: ok, version: s.versions[k]}
	}
	return snap
}

// Reconcile takes one writer's change back out of the current value of a key,
// given the value captured before the change. It returns false when it cannot
// separate the change from later writes.
type Reconcile func(k Key, captured, current domain.ReadModel) (domain.ReadModel, bool)

// Revert takes back the writes recorded in own, in one critical section.
// Keys without a write in own are left alone, and so are keys evicted since.
//
// A key nobody else wrote since the snapshot is put back exactly as captured
// in snap. A key others wrote is passed to fn, which undoes the change on the
// current value so their writes survive. Without fn, or when fn fails, the
// key is marked stale and refetched.
func (s *Store) Revert(snap Snapshot, own Stamps, fn Reconcile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, st := range own {
		captured, ok := snap.entries[k]
		if !ok || !captured.present {
			continue
		}
		cur, ok := s.peek(k)
		if !ok {
			continue
		}
		if captured.version == st.before && s.versions[k] == st.after {
			s.put(k, captured.entry)
			continue
		}
		if fn != nil {
			if v, ok := fn(k, captured.value, cur.value); ok {
				cur.value = v
				s.put(k, cur)
				continue
			}
		}
		s.cancelLocked(k)
		cur.stale = true
		s.put(k, cur)
		s.refetchLocked(k)
	}
}

// Invalidate marks keys stale and starts a background refetch for each key
// whose loader is known. Absent keys are left alone; their next read loads
// them anyway.
func (s *Store) Invalidate(keys ...Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		e, ok := s.peek(k)
		if !ok {
			continue
		}
		s.cancelLocked(k)
		e.stale = true
		s.put(k, e)
		s.refetchLocked(k)
	}
}

// InvalidateResources invalidates every cached key of the given resources.
func (s *Store) InvalidateResources(resources ...string) {
	s.Invalidate(s.Keys(resources...)...)
}

// CancelRefetch aborts in-flight background refetches of keys and makes sure
// their results, should they still arrive, are discarded.
func (s *Store) CancelRefetch(keys ...Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		s.cancelLocked(k)
	}
}

// Keys lists cached keys of the given resources, or every key when none are
// given, from least to most recently used.
func (s *Store) Keys(resources ...string) []Key {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Key
	for _, k := range s.entries.Keys() {
		key := k.(Key)
		if len(resources) == 0 || slices.Contains(resources, key.Resource) {
			out = append(out, key)
		}
	}
	return out
}

// Len returns the number of cached keys.
func (s *Store) Len() int { return s.entries.Len() }

// Close stops all background refetches and waits for them to return.
func (s *Store) Close() {
	s.stop()
	s.wg.Wait()
}

func (s *Store) peek(k Key) (entry, bool) {
	v, ok := s.entries.Peek(k)
	if !ok {
		return entry{}, false
	}
	return v.(entry), true
}

func (s *Store) put(k Key, e entry) {
	s.clock++
	s.versions[k] = s.clock
	s.entries.Add(k, e)
}

func (s *Store) cancelLocked(k Key) {
	if r, ok := s.inflight[k]; ok {
		r.cancel()
		delete(s.inflight, k)
	}
	if _, ok := s.versions[k]; ok {
		s.clock++
		s.versions[k] = s.clock
	}
}

func (s *Store) refetchLocked(k Key) {
	if _, busy := s.inflight[k]; busy {
		return
	}
	fetch := s.fetchers[k]
	if fetch == nil || s.ctx.Err() != nil {
		return
	}
	ctx, cancel := context.WithTimeout(s.ctx, s.refetchTimeout)
	r := &refetch{cancel: cancel}
	s.inflight[k] = r
	start := s.versions[k]

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		m, err := fetch(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.inflight[k] == r {
			delete(s.inflight, k)
		}
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				s.logger.Warn("cache refetch failed", slog.String("key", k.String()), slog.Any("error", err))
			}
			return
		}
		if s.versions[k] != start {
			return
		}
		s.put(k, entry{value: m})
	}()
}

type snapshotEntry struct {
	entry
	present bool
	version uint64
}

type stamp struct {
	before, after uint64
}

// Stamps identifies writes made to keys by Update.
type Stamps map[Key]stamp

// Merge folds later writes into st. A key written twice keeps the version it
// had before the first write.
func (st Stamps) Merge(later Stamps) {
	for k, w := range later {
		if prev, ok := st[k]; ok {
			w.before = prev.before
		}
		st[k] = w
	}
}

// Snapshot is a captured state of a set of keys.
type Snapshot struct {
	entries map[Key]snapshotEntry
}

// Keys returns the captured keys.
func (s Snapshot) Keys() []Key {
	out := make([]Key, 0, len(s.entries))
	for k := range s.entries {
		out = append(out, k)
	}
	slices.SortFunc(out, func(a, b Key) int { return strings.Compare(a.String(), b.String()) })
	return out
}

// Value returns the captured value of k and whether k was present.
func (s Snapshot) Value(k Key) (domain.ReadModel, bool) {
	e, ok := s.entries[k]
	if !ok || !e.present {
		return nil, false
	}
	return e.value, true
}
