// Package script runs YAML scenarios against a heap of numeric cells.
//
// A scenario names handles and walks them through create, dup, write,
// expect and free steps:
//
//	name: aliasing
//	steps:
//	  - create: v
//	    value: 5
//	  - dup: k
//	    from: v
//	  - write: k
//	    value: 30
//	  - expect: v
//	    value: 30
//	  - free: k
package script

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrBadStep indicates a step that names no operation, several, or is
	// missing an operand.
	ErrBadStep = errors.New("script: malformed step")

	// ErrUnknownHandle indicates a step naming a handle no earlier step created.
	ErrUnknownHandle = errors.New("script: unknown handle")

	// ErrDuplicateHandle indicates create or dup reusing a handle name.
	ErrDuplicateHandle = errors.New("script: handle already defined")

	// ErrMismatch indicates an expect step that observed a different value.
	ErrMismatch = errors.New("script: value mismatch")
)

// Op names a step kind.
type Op string

const (
	OpCreate Op = "create"
	OpDup    Op = "dup"
	OpWrite  Op = "write"
	OpExpect Op = "expect"
	OpFree   Op = "free"
)

// Script is a parsed scenario.
type Script struct {
	Name        string `yaml:"name"`
	Generations bool   `yaml:"generations"`
	PageSlots   int    `yaml:"page_slots"`
	Steps       []Step `yaml:"steps"`
}

// Step is one scenario line. Exactly one of the operation fields is set.
type Step struct {
	Create string   `yaml:"create,omitempty"`
	Dup    string   `yaml:"dup,omitempty"`
	Write  string   `yaml:"write,omitempty"`
	Expect string   `yaml:"expect,omitempty"`
	Free   string   `yaml:"free,omitempty"`
	From   string   `yaml:"from,omitempty"`
	Value  *float64 `yaml:"value,omitempty"`
}

// Op returns the step kind and the handle it names.
func (s Step) Op() (Op, string, error) {
	var (
		op     Op
		handle string
		n      int
	)
	for _, c := range []struct {
		op   Op
		name string
	}{
		{OpCreate, s.Create},
		{OpDup, s.Dup},
		{OpWrite, s.Write},
		{OpExpect, s.Expect},
		{OpFree, s.Free},
	} {
		if c.name != "" {
			op, handle = c.op, c.name
			n++
		}
	}
	switch {
	case n == 0:
		return "", "", fmt.Errorf("%w: no operation", ErrBadStep)
	case n > 1:
		return "", "", fmt.Errorf("%w: %d operations in one step", ErrBadStep, n)
	}

	switch op {
	case OpCreate, OpWrite, OpExpect:
		if s.Value == nil {
			return "", "", fmt.Errorf("%w: %s %s needs a value", ErrBadStep, op, handle)
		}
	case OpDup:
		if s.From == "" {
			return "", "", fmt.Errorf("%w: dup %s needs from", ErrBadStep, handle)
		}
	}
	return op, handle, nil
}

// Parse decodes and validates a scenario. Unknown keys are rejected.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("script: decode: %w", err)
	}
	for i, st := range s.Steps {
		if _, _, err := st.Op(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return &s, nil
}

// Load reads and parses the scenario at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
