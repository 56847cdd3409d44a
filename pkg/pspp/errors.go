package pspp

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a missing input file. Callers can match it with
// errors.Is to distinguish missing files from structural problems.
var ErrNotFound = errors.New("pspp: input file not found")

// Input names which of the three export files an error refers to.
type Input string

const (
	InputValues    Input = "values"
	InputLabels    Input = "labels"
	InputVariables Input = "variables"
)

// ParseError reports a structural mismatch between the export files, or a
// malformed file. It aborts the run; there is no recovery path.
type ParseError struct {
	Input Input
	Msg   string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pspp: parse %s: %s: %v", e.Input, e.Msg, e.Err)
	}
	return fmt.Sprintf("pspp: parse %s: %s", e.Input, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError constructs a ParseError for the given input file.
func NewParseError(input Input, msg string, err error) *ParseError {
	return &ParseError{Input: input, Msg: msg, Err: err}
}
