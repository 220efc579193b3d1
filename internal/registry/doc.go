// Package registry provides a mutex-guarded, insertion-ordered
// collection of tracked values.
//
// A Registry holds every value appended to it in the order of
// appending. That order is the only ordering guarantee, and it is
// preserved by every read path (All, First, Each).
//
// Snapshot semantics: All returns a copy of the sequence, never the
// live backing slice. Callers can range over or mutate the returned
// slice without affecting the registry. When T is a pointer type the
// elements themselves remain shared.
//
// All operations are safe for concurrent use. The original pattern
// this replaces was an unsynchronized shared list with a single
// caller; a library cannot assume a single caller, so every access
// goes through the mutex.
package registry
