package session

import "sync"

// SafeRef guards a value that is replaced wholesale on every write.
// Reads share a lock; writes are serialized.
type SafeRef[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewRef creates a SafeRef holding val.
func NewRef[T any](val T) *SafeRef[T] {
	return &SafeRef[T]{val: val}
}

// Get returns the current value.
func (r *SafeRef[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

// Set replaces the current value.
func (r *SafeRef[T]) Set(val T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.val = val
}

// Swap replaces the value with next(current) and returns the new value.
// commit runs with the lock still held, so side effects such as persisting
// the new value are ordered the same way as the writes themselves.
func (r *SafeRef[T]) Swap(next func(T) T, commit func(T)) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.val = next(r.val)
	if commit != nil {
		commit(r.val)
	}
	return r.val
}
