// Package harness provides scenario-driven conformance testing for
// the roster library.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	setup:
//	  - create: { name: "grace hopper", age: "85", company: "US Navy" }
//	  - import: "Sandi Metz, 60, POODR"
//	steps:
//	  - op: import
//	    text: "elon musk, 45, Tesla\nmark zuckerberg, 32, Facebook"
//	  - op: find
//	    name: "grace hopper"
//	    expect: { found: true, company: "US Navy" }
//	  - op: normalize
//	  - op: count
//	    expect: { count: 3 }
//	  - op: clear
//
// # Operations
//
// The following step operations are supported:
//
//   - create: track one person with the given attributes
//   - import: run the delimited-text constructor on the given text
//   - find: look up a person by exact name
//   - normalize: capitalize every tracked name
//   - clear: forget everyone
//   - count: observe the number of tracked people
//
// Expect clauses are subset matches: only the fields present in the
// clause are validated. A find step may assert found/absent and the
// matched person's attributes; an import step may assert rejection
// (expect: { error: true }); a count step asserts the exact count.
//
// # Deterministic Testing
//
// Every scenario runs against a fresh roster and records a trace of
// the operations it performed. Traces and the final roster state are
// snapshotted as JSON and compared against golden files, so scenario
// runs are reproducible byte for byte.
package harness
