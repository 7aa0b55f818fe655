package pegrat

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError is returned when a parse fails to produce a root match,
// or consume-all was required and the match did not cover the input.
// It is non-fatal: the caller may retry with a different root, a
// different offset, or different input.
type ParseError struct {
	Input *Input

	// Message is a short human-readable summary. When empty,
	// Error() derives one from the Input's furthest offset.
	Message string
}

// InputString returns the original input string the failed parse ran
// against.
func (e *ParseError) InputString() string { return e.Input.String() }

func (e *ParseError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	in := e.Input
	prefix := in.ConsumedPrefix()
	if len(prefix) > 40 {
		prefix = prefix[len(prefix)-40:]
	}
	return fmt.Sprintf("Failed to parse input at offset %d, just after %q", in.MaxOffset(), prefix)
}

// newParseError builds the standard-form ParseError for a failed
// parse at the input's current furthest offset.
func newParseError(in *Input) *ParseError {
	return &ParseError{Input: in}
}

// GrammarError signals a programmer error in how a grammar was put
// together: an unresolved alias/super reference, a missing root, an
// invalid rule-definition value, or min > max in a repetition. It is
// fatal: the engine makes no attempt to recover from it. Parse returns
// it as its error value, a type distinct from ParseError; Rep panics
// with it at construction time.
type GrammarError struct {
	cause error
}

func (e *GrammarError) Error() string { return e.cause.Error() }
func (e *GrammarError) Unwrap() error { return e.cause }

func newGrammarError(format string, args ...interface{}) *GrammarError {
	return &GrammarError{cause: errors.Errorf(format, args...)}
}

func wrapGrammarError(err error, format string, args ...interface{}) *GrammarError {
	return &GrammarError{cause: errors.Wrapf(err, format, args...)}
}

// wrapHostError attaches the name of the rule whose host-language
// collaborator (a regex compiler, for instance) failed.
func wrapHostError(err error, ruleName string) error {
	if ruleName == "" {
		return errors.Wrap(err, "host error")
	}
	return errors.Wrapf(err, "host error compiling rule %q", ruleName)
}
