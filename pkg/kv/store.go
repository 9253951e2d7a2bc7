// Package kv provides a generic thread-safe key-value store.
package kv

import (
	"cmp"
	"slices"
	"sync"
)

// Store is a thread-safe generic key-value store with ordered keys.
type Store[K cmp.Ordered, V any] struct {
	mu   sync.RWMutex
	data map[K]V
}

// New creates a new key-value store.
func New[K cmp.Ordered, V any]() *Store[K, V] {
	return &Store[K, V]{
		data: make(map[K]V),
	}
}

// Get retrieves a value by key.
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	return val, ok
}

// Set stores a value by key.
func (s *Store[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Delete removes a key from the store and reports whether it was present.
func (s *Store[K, V]) Delete(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	delete(s.data, key)
	return ok
}

// SetBatch stores multiple key-value pairs at once.
func (s *Store[K, V]) SetBatch(items map[K]V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range items {
		s.data[k] = v
	}
}

// Len returns the number of items in the store.
func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Keys returns all keys in ascending order.
func (s *Store[K, V]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]K, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Binding is a single string slot in a Store. It satisfies any interface
// with Get() string and Set(string), such as a picker host field.
type Binding[K cmp.Ordered] struct {
	store *Store[K, string]
	key   K
}

// Bind returns the slot for key. A missing key reads as "".
func Bind[K cmp.Ordered](s *Store[K, string], key K) *Binding[K] {
	return &Binding[K]{store: s, key: key}
}

func (b *Binding[K]) Get() string {
	v, _ := b.store.Get(b.key)
	return v
}

func (b *Binding[K]) Set(v string) { b.store.Set(b.key, v) }
