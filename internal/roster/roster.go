package roster

import (
	"github.com/rosterkit/roster/internal/registry"
)

// Roster is an owned, ordered collection of tracked Person entities.
//
// The zero value is not usable; create one with New. All methods are
// safe for concurrent use (the underlying registry synchronizes).
type Roster struct {
	people *registry.Registry[*Person]
}

// New creates an empty roster.
func New() *Roster {
	return &Roster{people: registry.New[*Person]()}
}

// Create builds a Person and tracks it. This is the only path that
// inserts into the roster; see the package comment for the policy.
func (r *Roster) Create(name, age, company string) *Person {
	p := &Person{Name: name, Age: age, Company: company}
	r.people.Append(p)
	return p
}

// All returns every tracked person in creation order.
//
// The slice is a fresh copy; the elements are the tracked entities
// themselves.
func (r *Roster) All() []*Person {
	return r.people.All()
}

// Len returns the number of tracked people.
func (r *Roster) Len() int {
	return r.people.Len()
}

// FindByName returns the earliest-created person whose Name equals
// name exactly, or (nil, false) when nobody matches. A miss is a
// normal result, not an error.
func (r *Roster) FindByName(name string) (*Person, bool) {
	return r.people.First(func(p *Person) bool {
		return p.Name == name
	})
}

// Clear forgets every tracked person. Pointers previously handed out
// remain valid; they are simply no longer reachable through the
// roster.
func (r *Roster) Clear() {
	r.people.Clear()
}
