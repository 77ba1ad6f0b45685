// Package scoped provides a two-level in-memory container: records grouped
// into buckets by owner, each bucket keyed by record id. Buckets lock
// independently so work on one owner does not block another.
package scoped

import (
	"fmt"
	"slices"
	"sync"

	"people/pkg/platform/sentinel"
)

type bucket[K ~string, V any] struct {
	mu      sync.RWMutex
	items   map[K]V
	order   []K
	dropped bool
}

// Store keeps records in insertion order per owner, and owners in the order
// their first record arrived.
type Store[O ~string, K ~string, V any] struct {
	mu      sync.RWMutex
	buckets map[O]*bucket[K, V]
	owners  []O
}

func New[O ~string, K ~string, V any]() *Store[O, K, V] {
	return &Store[O, K, V]{buckets: make(map[O]*bucket[K, V])}
}

func (s *Store[O, K, V]) lookup(owner O) *bucket[K, V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buckets[owner]
}

func (s *Store[O, K, V]) lookupOrCreate(owner O) *bucket[K, V] {
	if b := s.lookup(owner); b != nil {
		return b
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.buckets[owner]; ok {
		return b
	}
	b := &bucket[K, V]{items: make(map[K]V)}
	s.buckets[owner] = b
	s.owners = append(s.owners, owner)
	return b
}

// Insert adds a record under owner. An existing key yields ErrConflict.
func (s *Store[O, K, V]) Insert(owner O, key K, v V) error {
	for {
		b := s.lookupOrCreate(owner)
		b.mu.Lock()
		if b.dropped {
			// lost a race with Drop; retry against a fresh bucket
			b.mu.Unlock()
			continue
		}
		defer b.mu.Unlock()
		if _, ok := b.items[key]; ok {
			return fmt.Errorf("record %s: %w", key, sentinel.ErrConflict)
		}
		b.items[key] = v
		b.order = append(b.order, key)
		return nil
	}
}

// Replace swaps an existing record in place, keeping its position.
func (s *Store[O, K, V]) Replace(owner O, key K, v V) error {
	b := s.lookup(owner)
	if b == nil {
		return fmt.Errorf("record %s: %w", key, sentinel.ErrNotFound)
	}
	return b.replace(key, v)
}

func (b *bucket[K, V]) replace(key K, v V) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.items[key]; !ok || b.dropped {
		return fmt.Errorf("record %s: %w", key, sentinel.ErrNotFound)
	}
	b.items[key] = v
	return nil
}

// Remove deletes a record and returns what was stored.
func (s *Store[O, K, V]) Remove(owner O, key K) (V, error) {
	var zero V
	b := s.lookup(owner)
	if b == nil {
		return zero, fmt.Errorf("record %s: %w", key, sentinel.ErrNotFound)
	}
	return b.remove(key)
}

func (b *bucket[K, V]) remove(key K) (V, error) {
	var zero V
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.items[key]
	if !ok || b.dropped {
		return zero, fmt.Errorf("record %s: %w", key, sentinel.ErrNotFound)
	}
	delete(b.items, key)
	b.order = slices.DeleteFunc(b.order, func(k K) bool { return k == key })
	return v, nil
}

func (s *Store[O, K, V]) Get(owner O, key K) (V, error) {
	var zero V
	b := s.lookup(owner)
	if b == nil {
		return zero, fmt.Errorf("record %s: %w", key, sentinel.ErrNotFound)
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.items[key]
	if !ok {
		return zero, fmt.Errorf("record %s: %w", key, sentinel.ErrNotFound)
	}
	return v, nil
}

func (s *Store[O, K, V]) Has(owner O, key K) bool {
	b := s.lookup(owner)
	if b == nil {
		return false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.items[key]
	return ok
}

// List returns a snapshot of owner's records; an unknown owner yields an
// empty, non-nil slice.
func (s *Store[O, K, V]) List(owner O) []V {
	b := s.lookup(owner)
	if b == nil {
		return []V{}
	}
	return b.snapshot()
}

// All returns every record, grouped by owner.
func (s *Store[O, K, V]) All() []V {
	out := []V{}
	for _, b := range s.bucketsInOrder() {
		out = append(out, b.snapshot()...)
	}
	return out
}

// Drop removes owner's bucket and reports how many records it held.
func (s *Store[O, K, V]) Drop(owner O) int {
	s.mu.Lock()
	b, ok := s.buckets[owner]
	if ok {
		delete(s.buckets, owner)
		s.owners = slices.DeleteFunc(s.owners, func(o O) bool { return o == owner })
	}
	s.mu.Unlock()
	if !ok {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dropped = true
	return len(b.items)
}

// RemoveWhere deletes every record, across all owners, matching match.
func (s *Store[O, K, V]) RemoveWhere(match func(V) bool) int {
	removed := 0
	for _, b := range s.bucketsInOrder() {
		b.mu.Lock()
		kept := b.order[:0]
		for _, k := range b.order {
			if match(b.items[k]) {
				delete(b.items, k)
				removed++
				continue
			}
			kept = append(kept, k)
		}
		b.order = kept
		b.mu.Unlock()
	}
	return removed
}

func (s *Store[O, K, V]) bucketsInOrder() []*bucket[K, V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*bucket[K, V], 0, len(s.owners))
	for _, o := range s.owners {
		out = append(out, s.buckets[o])
	}
	return out
}

func (b *bucket[K, V]) snapshot() []V {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]V, 0, len(b.order))
	for _, k := range b.order {
		out = append(out, b.items[k])
	}
	return out
}
