package glint

import "errors"

// Conventional process exit codes reported by Run and RunAndExit. The core
// resolver only ever returns data; mapping to codes happens at this
// boundary.
const (
	exitSuccess      = 0
	exitGeneralError = 1
	exitMisusage     = 2
	exitValidation   = 3
	exitNotFound     = 127
)

// ExitCode maps a resolution error to its process exit code. Unknown
// commands report 127, misusage (unknown flags, wrong argument counts)
// reports 2, and value or constraint failures report 3.
func ExitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var e *Error
	if !errors.As(err, &e) {
		return exitGeneralError
	}
	switch e.Type {
	case ErrorTypeUnknownCommand:
		return exitNotFound
	case ErrorTypeUnknownFlag, ErrorTypeMissingValue, ErrorTypeArityMismatch, ErrorTypeMissingArgument:
		return exitMisusage
	case ErrorTypeInvalidValue, ErrorTypeConstraint:
		return exitValidation
	default:
		return exitGeneralError
	}
}
