package registry

import "sync"

// Registry is an insertion-ordered collection of tracked values.
//
// The zero value is ready to use. Values are appended at the back and
// removed only by Clear; there is no single-value removal.
type Registry[T any] struct {
	mu     sync.Mutex
	values []T
}

// New creates an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{}
}

// Append adds a value to the back of the registry.
func (r *Registry[T]) Append(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

// All returns a snapshot of the registry in insertion order.
//
// The returned slice is a copy; appending to or reordering it does
// not affect the registry. It is never nil.
func (r *Registry[T]) All() []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]T, len(r.values))
	copy(out, r.values)
	return out
}

// Len returns the number of tracked values.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// First returns the first value, in insertion order, for which pred
// returns true. The second result reports whether a match was found.
// A miss is a normal result, not an error.
func (r *Registry[T]) First(pred func(T) bool) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range r.values {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Each calls fn for every tracked value in insertion order.
//
// The registry lock is held for the full traversal, so fn must not
// call back into the registry.
func (r *Registry[T]) Each(fn func(T)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range r.values {
		fn(v)
	}
}

// Clear empties the registry in place. Values previously returned by
// All or First remain valid; they are simply no longer tracked.
func (r *Registry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = nil
}
