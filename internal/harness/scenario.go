package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario.
// Scenarios exercise the roster operations in sequence and assert on
// lookup results, counts, and the final roster state.
type Scenario struct {
	// Name uniquely identifies this scenario. It is also the golden
	// file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Setup establishes initial roster state before the main steps.
	// Setup operations are assumed to succeed; a failing setup
	// import aborts the run with an error.
	Setup []SetupStep `yaml:"setup,omitempty"`

	// Steps is the main operation flow with expected results.
	Steps []Step `yaml:"steps"`
}

// SetupStep seeds the roster. Exactly one of Create or Import must be
// set.
type SetupStep struct {
	// Create tracks one person with the given attributes.
	Create *CreateArgs `yaml:"create,omitempty"`

	// Import runs the delimited-text constructor on the given text.
	Import string `yaml:"import,omitempty"`
}

// CreateArgs are the attributes for a create operation.
type CreateArgs struct {
	Name    string `yaml:"name"`
	Age     string `yaml:"age"`
	Company string `yaml:"company"`
}

// Step is one operation in the main flow.
type Step struct {
	// Op is the operation to perform:
	// create, import, find, normalize, clear, or count.
	Op string `yaml:"op"`

	// Create holds the attributes for op: create.
	Create *CreateArgs `yaml:"create,omitempty"`

	// Text is the delimited input for op: import.
	Text string `yaml:"text,omitempty"`

	// Name is the lookup key for op: find.
	Name string `yaml:"name,omitempty"`

	// Expect specifies the expected outcome. If nil, the operation
	// is performed without validation.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies expected operation outcomes. Only the fields
// present are validated (subset match).
type ExpectClause struct {
	// Found asserts whether a find step matched.
	Found *bool `yaml:"found,omitempty"`

	// Name, Age, and Company assert attributes of the person a find
	// step matched.
	Name    string `yaml:"name,omitempty"`
	Age     string `yaml:"age,omitempty"`
	Company string `yaml:"company,omitempty"`

	// Count asserts the exact roster size for a count step.
	Count *int `yaml:"count,omitempty"`

	// Error asserts that an import step is rejected.
	Error bool `yaml:"error,omitempty"`
}

// validOps defines the allowed step operations.
var validOps = map[string]bool{
	"create":    true,
	"import":    true,
	"find":      true,
	"normalize": true,
	"clear":     true,
	"count":     true,
}

// LoadScenario reads and parses a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML with strict field validation
// (catches typos like "expects:" vs "expect:").
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks required fields and op-specific arguments.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("at least one step is required")
	}

	for i, setup := range s.Setup {
		hasCreate := setup.Create != nil
		hasImport := setup.Import != ""
		if hasCreate == hasImport {
			return fmt.Errorf("setup[%d]: exactly one of create or import must be set", i)
		}
	}

	for i, step := range s.Steps {
		if !validOps[step.Op] {
			return fmt.Errorf("steps[%d]: unknown op %q", i, step.Op)
		}
		switch step.Op {
		case "create":
			if step.Create == nil {
				return fmt.Errorf("steps[%d]: create op requires create args", i)
			}
		case "import":
			if step.Text == "" {
				return fmt.Errorf("steps[%d]: import op requires text", i)
			}
		case "find":
			if step.Name == "" {
				return fmt.Errorf("steps[%d]: find op requires name", i)
			}
		}
	}
	return nil
}
