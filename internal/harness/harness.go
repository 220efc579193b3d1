package harness

import (
	"fmt"
	"strconv"

	"github.com/rosterkit/roster/internal/roster"
)

// Run executes a scenario against a fresh roster and returns the
// result.
//
// Execution flow:
//  1. Create a fresh roster (isolation between scenarios)
//  2. Execute setup steps (assumed to succeed)
//  3. Execute main steps with expect validation
//  4. Snapshot the final roster state
//
// Run returns an error only for scenario mechanics (a failing setup
// import, a malformed step); expect mismatches are reported through
// Result.Pass and Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	r := roster.New()
	result := NewResult()

	for i, setup := range scenario.Setup {
		switch {
		case setup.Create != nil:
			r.Create(setup.Create.Name, setup.Create.Age, setup.Create.Company)
			result.trace("create", setup.Create.Name)
		case setup.Import != "":
			created, err := r.ImportDelimited(setup.Import)
			if err != nil {
				return nil, fmt.Errorf("setup[%d]: %w", i, err)
			}
			result.trace("import", fmt.Sprintf("%d records", len(created)))
		}
	}

	for i, step := range scenario.Steps {
		if err := runStep(r, step, i, result); err != nil {
			return nil, err
		}
	}

	for _, p := range r.All() {
		result.Final = append(result.Final, PersonState{
			Name:    p.Name,
			Age:     p.Age,
			Company: p.Company,
		})
	}
	return result, nil
}

func runStep(r *roster.Roster, step Step, i int, result *Result) error {
	switch step.Op {
	case "create":
		r.Create(step.Create.Name, step.Create.Age, step.Create.Company)
		result.trace("create", step.Create.Name)

	case "import":
		created, err := r.ImportDelimited(step.Text)
		expectErr := step.Expect != nil && step.Expect.Error
		if err != nil {
			result.trace("import", "rejected")
			if !expectErr {
				result.fail(fmt.Sprintf("steps[%d]: import failed: %v", i, err))
			}
			return nil
		}
		result.trace("import", fmt.Sprintf("%d records", len(created)))
		if expectErr {
			result.fail(fmt.Sprintf("steps[%d]: expected import to be rejected", i))
		}

	case "find":
		p, ok := r.FindByName(step.Name)
		if ok {
			result.trace("find", step.Name+" (found)")
		} else {
			result.trace("find", step.Name+" (absent)")
		}
		checkFind(step, i, p, ok, result)

	case "normalize":
		r.NormalizeNames()
		result.trace("normalize", "")

	case "clear":
		r.Clear()
		result.trace("clear", "")

	case "count":
		n := r.Len()
		result.trace("count", strconv.Itoa(n))
		if step.Expect != nil && step.Expect.Count != nil && n != *step.Expect.Count {
			result.fail(fmt.Sprintf("steps[%d]: expected count %d, got %d",
				i, *step.Expect.Count, n))
		}

	default:
		// validateScenario rejects unknown ops; this guards direct
		// Scenario construction.
		return fmt.Errorf("steps[%d]: unknown op %q", i, step.Op)
	}
	return nil
}

// checkFind validates a find step's expect clause against the lookup
// outcome. Attribute expectations are only meaningful on a match.
func checkFind(step Step, i int, p *roster.Person, ok bool, result *Result) {
	exp := step.Expect
	if exp == nil {
		return
	}

	if exp.Found != nil && *exp.Found != ok {
		result.fail(fmt.Sprintf("steps[%d]: expected found=%t for %q, got %t",
			i, *exp.Found, step.Name, ok))
		return
	}
	if !ok {
		return
	}

	if exp.Name != "" && p.Name != exp.Name {
		result.fail(fmt.Sprintf("steps[%d]: expected name %q, got %q", i, exp.Name, p.Name))
	}
	if exp.Age != "" && p.Age != exp.Age {
		result.fail(fmt.Sprintf("steps[%d]: expected age %q, got %q", i, exp.Age, p.Age))
	}
	if exp.Company != "" && p.Company != exp.Company {
		result.fail(fmt.Sprintf("steps[%d]: expected company %q, got %q", i, exp.Company, p.Company))
	}
}

func (r *Result) trace(op, detail string) {
	r.Trace = append(r.Trace, TraceEvent{Op: op, Detail: detail})
}
