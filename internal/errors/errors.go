// Package errors carries the plugin's failure taxonomy. Every fatal
// condition maps to a distinct process exit code; the code is attached to the
// error where the failure is detected and acted on in exactly one place, the
// CLI dispatcher.
package errors

import (
	"errors"
	"fmt"
)

// ExitCode is the process exit status for one plugin invocation.
type ExitCode int

const (
	// ExitOK covers success, intentionally empty results, and the
	// "not fully named yet" usage path.
	ExitOK ExitCode = 0

	// ExitProtocol covers the SNMP transport being unavailable at startup
	// and any query failing mid-run. The next scheduled poll is the retry.
	ExitProtocol ExitCode = 1

	// ExitUnknownMetric means the symlink name requested a metric outside
	// the closed set.
	ExitUnknownMetric ExitCode = 2

	// ExitNoWANInterface means the uplink was absent from the device's
	// interface table. Nothing downstream can proceed without its index.
	ExitNoWANInterface ExitCode = 3

	// ExitBadDecode means the device returned a table that does not match
	// the expected layout. Treated as an environment defect, not retried.
	ExitBadDecode ExitCode = 4
)

// Error is a failure annotated with its exit code.
type Error struct {
	Code    ExitCode
	Message string
	Cause   error
}

// Newf creates an Error with a formatted message.
func Newf(code ExitCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrapf annotates an underlying cause with an exit code and context.
func Wrapf(cause error, code ExitCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// CodeOf selects the exit code for an error: ExitOK for nil, the carried
// code for a plugin Error anywhere in the chain, ExitProtocol for anything
// unclassified.
func CodeOf(err error) ExitCode {
	if err == nil {
		return ExitOK
	}
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ExitProtocol
}
