// Package optimistic applies not-yet-confirmed changes to cached read models
// and puts them back if the collaborator rejects the change.
//
// A transaction follows one fixed order: Begin cancels background refetches
// of the touched keys and snapshots them, Apply patches them, and exactly one
// of Commit (mark stale, refetch) or Rollback ends it. Rollback only takes
// back the transaction's own change: transactions on different entities may
// patch the same key while both are in flight.
package optimistic

import (
	"sync"

	"adsdesk/internal/core/cache"
	"adsdesk/internal/core/domain"
)

// Patch derives the optimistic value of one cached key. It returns false when
// the key does not contain anything to change.
type Patch func(key cache.Key, m domain.ReadModel) (domain.ReadModel, bool)

// Tx is one optimistic transaction over a fixed set of cache keys.
type Tx struct {
	store *cache.Store
	keys  []cache.Key
	snap  cache.Snapshot

	mu      sync.Mutex
	own     cache.Stamps
	undo    map[cache.Key][]cache.Reconcile
	patched int
	done    bool
}

// Begin starts a transaction over keys.
func Begin(store *cache.Store, keys ...cache.Key) *Tx {
	store.CancelRefetch(keys...)
	return &Tx{
		store: store,
		keys:  keys,
		snap:  store.Snapshot(keys...),
		own:   make(cache.Stamps),
		undo:  make(map[cache.Key][]cache.Reconcile),
	}
}

// Apply patches every cached key of the transaction in one store update and
// returns how many values changed. undo takes the patch back out of a key
// that others wrote since; without it such keys are refetched on rollback.
// Apply is a no-op once the transaction ended.
func (tx *Tx) Apply(p Patch, undo cache.Reconcile) int {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if tx.done {
		return 0
	}
	stamps := tx.store.Update(tx.keys, p)
	tx.own.Merge(stamps)
	for k := range stamps {
		tx.undo[k] = append(tx.undo[k], undo)
	}
	tx.patched += len(stamps)
	return len(stamps)
}

// Commit ends the transaction after the collaborator accepted the change.
// The optimistic values stay visible until refetched authoritative values
// replace them.
func (tx *Tx) Commit() {
	if !tx.finish() {
		return
	}
	tx.store.Invalidate(tx.keys...)
}

// Rollback ends the transaction after a failure. Every key it patched loses
// that patch in one store update; changes made by other transactions stay.
func (tx *Tx) Rollback() {
	if !tx.finish() {
		return
	}
	tx.store.Revert(tx.snap, tx.own, tx.reconcile)
}

// reconcile undoes the patches of k newest first. It fails when any patch
// came without an undo.
func (tx *Tx) reconcile(k cache.Key, captured, current domain.ReadModel) (domain.ReadModel, bool) {
	fns := tx.undo[k]
	for i := len(fns) - 1; i >= 0; i-- {
		if fns[i] == nil {
			return current, false
		}
		v, ok := fns[i](k, captured, current)
		if !ok {
			return current, false
		}
		current = v
	}
	return current, true
}

// Keys returns the keys the transaction covers.
func (tx *Tx) Keys() []cache.Key {
	return append([]cache.Key(nil), tx.keys...)
}

// Patched returns the number of values changed by Apply so far.
func (tx *Tx) Patched() int {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	return tx.patched
}

// Snapshot returns the values captured by Begin.
func (tx *Tx) Snapshot() cache.Snapshot { return tx.snap }

func (tx *Tx) finish() bool {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if tx.done {
		return false
	}
	tx.done = true
	return true
}
