// Package scenario loads and replays scripted editing sessions.
//
// A scenario is a YAML document holding a marked buffer, a list of
// keystrokes and the expected marked buffer after replaying them through
// the behaviour engine:
//
//	name: brace after function signature
//	buffer: |
//	  void f() <|>
//	steps:
//	  - insert: "{"
//	expect: |
//	  void f() {<|>}
//
// A file may hold several scenarios as a YAML document stream.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario is one scripted editing session.
type Scenario struct {
	// Name identifies the scenario in reports.
	Name string `yaml:"name"`

	// TabSize overrides the configured tab size when positive.
	TabSize int `yaml:"tab_size,omitempty"`

	// SoftTabs overrides the configured indentation style when set.
	SoftTabs *bool `yaml:"soft_tabs,omitempty"`

	// Disable lists behaviours (IDs or names) switched off for this scenario.
	Disable []string `yaml:"disable,omitempty"`

	// Buffer is the marked starting buffer.
	Buffer string `yaml:"buffer"`

	// Steps are replayed in order.
	Steps []Step `yaml:"steps"`

	// Expect is the marked buffer after the last step.
	Expect string `yaml:"expect"`

	// Path is the file the scenario was loaded from.
	Path string `yaml:"-"`
}

// Step is one keystroke: an insertion or a backspace.
type Step struct {
	Insert    string `yaml:"insert,omitempty"`
	Backspace bool   `yaml:"backspace,omitempty"`
}

// String renders the step for traces.
func (s Step) String() string {
	if s.Backspace {
		return "backspace"
	}
	return fmt.Sprintf("insert %q", s.Insert)
}

// ValidationError describes a malformed scenario.
type ValidationError struct {
	Scenario string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Scenario == "" {
		return e.Message
	}
	return e.Scenario + ": " + e.Message
}

// Load reads every scenario in the file at path.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	scenarios, err := Parse(bytes.NewReader(data), path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenarios, nil
}

// Parse decodes a stream of scenario documents. Unknown keys are rejected.
func Parse(r io.Reader, path string) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var scenarios []Scenario
	for idx := 0; ; idx++ {
		var sc Scenario
		err := dec.Decode(&sc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode scenario %d: %w", idx+1, err)
		}

		sc.Path = path
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("scenario %d", idx+1)
		}
		sc.Buffer = trimBlock(sc.Buffer)
		sc.Expect = trimBlock(sc.Expect)

		if err := sc.Validate(); err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}

	if len(scenarios) == 0 {
		return nil, errors.New("no scenarios found")
	}
	return scenarios, nil
}

// Validate checks that the scenario can be replayed.
func (s *Scenario) Validate() error {
	var errs []error

	if _, _, err := ParseMarked(s.Buffer); err != nil {
		errs = append(errs, &ValidationError{Scenario: s.Name, Message: "buffer: " + err.Error()})
	}
	if _, _, err := ParseMarked(s.Expect); err != nil {
		errs = append(errs, &ValidationError{Scenario: s.Name, Message: "expect: " + err.Error()})
	}
	if len(s.Steps) == 0 {
		errs = append(errs, &ValidationError{Scenario: s.Name, Message: "no steps"})
	}
	for idx, step := range s.Steps {
		if step.Backspace == (step.Insert != "") {
			errs = append(errs, &ValidationError{
				Scenario: s.Name,
				Message:  fmt.Sprintf("step %d: exactly one of insert or backspace is required", idx+1),
			})
		}
	}
	if s.TabSize < 0 {
		errs = append(errs, &ValidationError{Scenario: s.Name, Message: "tab_size must not be negative"})
	}

	return errors.Join(errs...)
}

// trimBlock drops the single newline a YAML literal block adds.
func trimBlock(s string) string {
	return strings.TrimSuffix(s, "\n")
}
