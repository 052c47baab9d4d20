// Package script replays scripted sessions. A script is a YAML list of
// inputs fed through a session dispatcher, each optionally checked against
// an expected output.
package script

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/bintree/internal/session"
)

// ErrExpectation is returned when a step's output differs from its expect
// field.
var ErrExpectation = errors.New("script: unexpected output")

// Script defines a scripted session
type Script struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Strict      bool   `yaml:"strict"`
	Steps       []Step `yaml:"steps"`
}

// Step is one line of input. Expect is compared only when set; a pointer
// distinguishes "expect empty output" from "no expectation".
type Step struct {
	Input  string  `yaml:"input"`
	Expect *string `yaml:"expect,omitempty"`
}

// StepResult pairs a step with what the dispatcher did.
type StepResult struct {
	Step   Step
	Result session.Result
	Err    error
}

// Load reads a script from a YAML file
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read script")
	}
	return Parse(data)
}

func Parse(data []byte) (*Script, error) {
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, errors.Wrap(err, "parse script")
	}
	if len(sc.Steps) == 0 {
		return nil, errors.Newf("script %q has no steps", sc.Name)
	}
	return &sc, nil
}

// Run dispatches every step on a fresh session. It stops at the first
// dispatch error or failed expectation and returns the results so far along
// with the error. A strict-mode build failure is recorded on its step and
// does not stop the run unless the step carries an expectation.
func Run(sc *Script, opts ...session.Option) ([]StepResult, error) {
	opts = append([]session.Option{session.WithStrict(sc.Strict)}, opts...)
	s := session.New(opts...)

	results := make([]StepResult, 0, len(sc.Steps))
	for i, step := range sc.Steps {
		res, err := s.Dispatch(step.Input)
		results = append(results, StepResult{Step: step, Result: res, Err: err})

		if err != nil {
			if s.Ended() || step.Expect != nil {
				return results, errors.Wrapf(err, "step %d", i+1)
			}
			continue
		}
		if step.Expect != nil && res.Output != *step.Expect {
			return results, errors.Wrapf(ErrExpectation, "step %d (%s): want %q, got %q",
				i+1, step.Input, *step.Expect, res.Output)
		}
	}
	return results, nil
}
