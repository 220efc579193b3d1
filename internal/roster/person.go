package roster

// Person is a tracked entity. All attributes are text: Age arrives as
// text in the delimited input and nothing computes on it, so it is
// stored as given rather than parsed.
//
// Person has no identity beyond the pointer; two people may share a
// name, and lookups resolve to the earliest-created match.
type Person struct {
	Name    string
	Age     string
	Company string
}
