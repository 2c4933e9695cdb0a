package glint

import (
	"fmt"

	"github.com/czepluch/glint/internal/fuzzy"
)

// ErrorType categorizes resolution failures. Categories drive suggestion
// logic and exit-code mapping (see exit.go).
type ErrorType string

const (
	ErrorTypeUnknownCommand  ErrorType = "unknown_command"
	ErrorTypeUnknownFlag     ErrorType = "unknown_flag"
	ErrorTypeInvalidValue    ErrorType = "invalid_value"
	ErrorTypeMissingValue    ErrorType = "missing_value"
	ErrorTypeConstraint      ErrorType = "constraint_violation"
	ErrorTypeArityMismatch   ErrorType = "arity_mismatch"
	ErrorTypeMissingArgument ErrorType = "missing_argument"
)

// maxSuggestDistance is the edit distance bound for "did you mean" matches
const maxSuggestDistance = 2

// Error is the structured, recoverable outcome of a failed resolution.
// Every failure Execute returns is of this type; nothing in the core
// terminates the process.
type Error struct {
	Type       ErrorType
	Message    string
	Flag       string // offending flag name, when applicable
	Command    string // offending command token, when applicable
	Suggestion string // fuzzy-matched alternative, empty when none found
	Cause      error
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is / errors.As
func (e *Error) Unwrap() error {
	return e.Cause
}

// constraintViolation marks an update failure as coming from a constraint
// rather than a parse
type constraintViolation struct {
	cause error
}

func (c constraintViolation) Error() string {
	return c.cause.Error()
}

func (c constraintViolation) Unwrap() error {
	return c.cause
}

// contextualize wraps err with a stage description, preserving the original
// error (and its category) as the cause.
func contextualize(context string, err error) error {
	inner, ok := err.(*Error)
	if !ok {
		return &Error{Message: fmt.Sprintf("%s: %v", context, err), Cause: err}
	}
	return &Error{
		Type:       inner.Type,
		Message:    fmt.Sprintf("%s: %s", context, inner.Message),
		Flag:       inner.Flag,
		Command:    inner.Command,
		Suggestion: inner.Suggestion,
		Cause:      inner,
	}
}

// unknownFlagError builds an unknown-flag error with a fuzzy-matched
// suggestion from the merged flag map.
func unknownFlagError(name string, available FlagMap) *Error {
	candidates := make([]string, 0, len(available)+1)
	for flagName := range available {
		candidates = append(candidates, flagName)
	}
	candidates = append(candidates, helpFlagName)
	suggestion := fuzzy.Closest(name, candidates, maxSuggestDistance)
	if suggestion != "" {
		suggestion = "--" + suggestion
	}
	return &Error{
		Type:       ErrorTypeUnknownFlag,
		Message:    "unknown flag: --" + name,
		Flag:       name,
		Suggestion: suggestion,
	}
}

// commandNotFoundError reports a walk that ended on a routing node with no
// runnable payload. When the walk halted on an unmatched token, that token
// is fuzzy-matched against the node's subcommands.
func commandNotFoundError[T any](token string, current node[T]) *Error {
	err := &Error{
		Type:    ErrorTypeUnknownCommand,
		Message: "command not found",
		Command: token,
	}
	if token != "" {
		candidates := make([]string, 0, len(current.children))
		for name := range current.children {
			candidates = append(candidates, name)
		}
		err.Suggestion = fuzzy.Closest(token, candidates, maxSuggestDistance)
	}
	return err
}

// invalidFlagError wraps a parse or constraint failure for a named flag
func invalidFlagError(typ ErrorType, name string, cause error) *Error {
	return &Error{
		Type:    typ,
		Message: fmt.Sprintf("invalid value for flag --%s: %v", name, cause),
		Flag:    name,
		Cause:   cause,
	}
}

// missingValueError reports a non-boolean flag token without a value
func missingValueError(name string) *Error {
	return &Error{
		Type:    ErrorTypeMissingValue,
		Message: "flag requires a value: --" + name,
		Flag:    name,
	}
}

// arityError reports a positional count that does not satisfy the rule
func arityError(count ArgsCount, got int) *Error {
	return &Error{
		Type:    ErrorTypeArityMismatch,
		Message: fmt.Sprintf("expected %s argument(s), got %d", count.expectation(), got),
	}
}

// namedArgsError reports fewer positionals than declared named arguments
func namedArgsError(named []string, got int) *Error {
	return &Error{
		Type:    ErrorTypeMissingArgument,
		Message: fmt.Sprintf("not enough arguments: %d named argument(s) declared, got %d", len(named), got),
	}
}
