package harness

// TraceEvent records one executed operation for trace comparison.
type TraceEvent struct {
	Op     string `json:"op"`
	Detail string `json:"detail,omitempty"`
}

// PersonState is the serialized form of a tracked person, used in
// final-state snapshots.
type PersonState struct {
	Name    string `json:"name"`
	Age     string `json:"age"`
	Company string `json:"company"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success.
	// True if every expect clause matched.
	Pass bool `json:"pass"`

	// Trace contains the executed operations in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains expect-clause mismatch messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Final is the roster state after the last step, in
	// insertion order.
	Final []PersonState `json:"final_roster"`
}

// NewResult creates a new passing result.
// Used as the starting point for scenario execution.
func NewResult() *Result {
	return &Result{
		Pass:  true,
		Trace: []TraceEvent{},
		Final: []PersonState{},
	}
}

// fail records an expect mismatch and marks the result failed.
func (r *Result) fail(msg string) {
	r.Pass = false
	r.Errors = append(r.Errors, msg)
}
