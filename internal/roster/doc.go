// Package roster tracks Person entities created through the tracked
// construction path.
//
// A Roster owns an ordered registry of every Person built by Create
// or ImportDelimited. The registry is the single source of truth for
// "all people we know about": reads return insertion order, lookups
// scan in insertion order, and the only removal is the unconditional
// Clear.
//
// CONSTRUCTION POLICY:
//
// Only Create (and ImportDelimited, which is built on it) registers a
// Person. Constructing a Person literal directly is allowed but the
// result is invisible to All, FindByName, and NormalizeNames; keeping
// such values out of circulation is the caller's responsibility. The
// base Person type itself carries no side effects.
//
// ENTITY SHARING:
//
// All returns a fresh slice each call, but the *Person elements are
// the tracked entities themselves. NormalizeNames rewrites those
// entities in place, so names observed through previously returned
// pointers change too. After Clear, previously returned pointers stay
// valid; they are simply no longer tracked.
package roster
