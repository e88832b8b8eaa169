// Package workflow runs a sequence of node invocations described by a
// YAML document. It is a harness for the node pack, not a graph engine:
// steps execute serially in document order and the run halts on the
// first error.
package workflow

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"imagenodes/node"
)

// Pipeline errors
var (
	ErrEmptyPipeline = errors.New("workflow: pipeline has no steps")
	ErrDuplicateStep = errors.New("workflow: duplicate step id")
	ErrMissingStepID = errors.New("workflow: step id is empty")
	ErrUnknownNode   = errors.New("workflow: unknown node identifier")
	ErrBadReference  = errors.New("workflow: unresolvable output reference")
)

// Step is one node invocation. String inputs of the form
// "$stepID.RETURN_NAME" are resolved against the outputs of an earlier
// step; all other values pass through as literals.
type Step struct {
	ID     string         `yaml:"id"`
	Node   string         `yaml:"node"`
	Inputs map[string]any `yaml:"inputs"`
}

// Pipeline is an ordered list of steps.
type Pipeline struct {
	Steps []Step `yaml:"steps"`
}

// Parse decodes a pipeline from YAML.
func Parse(data []byte) (*Pipeline, error) {
	var p Pipeline
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("workflow: parse pipeline: %w", err)
	}
	return &p, nil
}

// Load reads and parses a pipeline file.
func Load(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Validate checks the pipeline against a registry before execution:
// at least one step, unique non-empty step ids, every node registered,
// and every output reference pointing at an earlier step's declared
// return name.
func (p *Pipeline) Validate(reg *node.Registry) error {
	if len(p.Steps) == 0 {
		return ErrEmptyPipeline
	}

	returnNames := make(map[string][]string, len(p.Steps))
	for i, s := range p.Steps {
		if s.ID == "" {
			return fmt.Errorf("%w: step %d", ErrMissingStepID, i)
		}
		if _, dup := returnNames[s.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateStep, s.ID)
		}
		n, ok := reg.Get(s.Node)
		if !ok {
			return fmt.Errorf("%w: %q in step %q", ErrUnknownNode, s.Node, s.ID)
		}
		for name, v := range s.Inputs {
			ref, ok := parseReference(v)
			if !ok {
				continue
			}
			names, seen := returnNames[ref.stepID]
			if !seen {
				return fmt.Errorf("%w: input %q of step %q references unknown step %q",
					ErrBadReference, name, s.ID, ref.stepID)
			}
			if returnIndex(names, ref.output) < 0 {
				return fmt.Errorf("%w: step %q has no output %q",
					ErrBadReference, ref.stepID, ref.output)
			}
		}
		returnNames[s.ID] = n.Spec().ReturnNames
	}
	return nil
}

// reference names one output of an earlier step.
type reference struct {
	stepID string
	output string
}

// parseReference recognizes "$stepID.OUTPUT" strings. Anything else is
// a literal.
func parseReference(v any) (reference, bool) {
	s, ok := v.(string)
	if !ok || !strings.HasPrefix(s, "$") {
		return reference{}, false
	}
	stepID, output, found := strings.Cut(s[1:], ".")
	if !found || stepID == "" || output == "" {
		return reference{}, false
	}
	return reference{stepID: stepID, output: output}, true
}

func returnIndex(names []string, want string) int {
	for i, n := range names {
		if n == want {
			return i
		}
	}
	return -1
}
