// Package errors provides structured error types for conv1080 operations.
package errors

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// KindPrerequisite means a required external tool is missing.
	// This is the only kind fatal to a whole run.
	KindPrerequisite ErrorKind = iota
	// KindProbe means stream metadata could not be read for one file.
	KindProbe
	// KindEncode means the external encode process exited non-zero.
	KindEncode
	// KindConfig represents configuration validation errors.
	KindConfig
	// KindNoFilesFound means no suitable video files were found.
	KindNoFilesFound
	// KindIO represents I/O errors.
	KindIO
	// KindCancelled represents user-cancelled operations.
	KindCancelled
)

// String returns a string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindPrerequisite:
		return "Prerequisite missing"
	case KindProbe:
		return "Probe error"
	case KindEncode:
		return "Encode error"
	case KindConfig:
		return "Configuration error"
	case KindNoFilesFound:
		return "No files found"
	case KindIO:
		return "I/O error"
	case KindCancelled:
		return "Operation cancelled"
	default:
		return "Unknown error"
	}
}

// CoreError is the main error type for conv1080 operations.
type CoreError struct {
	Kind       ErrorKind
	Message    string
	Underlying error
}

func (e *CoreError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CoreError) Unwrap() error {
	return e.Underlying
}

// Is reports whether target matches this error's kind.
func (e *CoreError) Is(target error) bool {
	t, ok := target.(*CoreError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewPrerequisiteError creates an error for a missing external tool.
func NewPrerequisiteError(tool string, underlying error) *CoreError {
	return &CoreError{
		Kind:       KindPrerequisite,
		Message:    fmt.Sprintf("%s not found on this system", tool),
		Underlying: underlying,
	}
}

// NewProbeError creates an error for unreadable stream metadata.
func NewProbeError(message string, underlying error) *CoreError {
	return &CoreError{Kind: KindProbe, Message: message, Underlying: underlying}
}

// NewEncodeError creates an error for a failed encode process.
func NewEncodeError(message string, underlying error) *CoreError {
	return &CoreError{Kind: KindEncode, Message: message, Underlying: underlying}
}

// NewConfigError creates a new configuration error. underlying is
// typically a validation sentinel so callers can still match it with
// errors.Is.
func NewConfigError(message string, underlying error) *CoreError {
	return &CoreError{Kind: KindConfig, Message: message, Underlying: underlying}
}

// NewNoFilesFoundError creates an error for when no video files are found.
func NewNoFilesFoundError(dir string) *CoreError {
	return &CoreError{Kind: KindNoFilesFound, Message: fmt.Sprintf("no supported video files found in %s", dir)}
}

// NewIOError creates a new I/O error.
func NewIOError(message string, underlying error) *CoreError {
	return &CoreError{Kind: KindIO, Message: message, Underlying: underlying}
}

// NewCancelledError creates an error for user-cancelled operations.
func NewCancelledError() *CoreError {
	return &CoreError{Kind: KindCancelled, Message: "operation was cancelled by the user"}
}

// IsKind checks if the error has the specified kind.
func IsKind(err error, kind ErrorKind) bool {
	var coreErr *CoreError
	if errors.As(err, &coreErr) {
		return coreErr.Kind == kind
	}
	return false
}

// IsPrerequisite checks if the error is a missing-prerequisite error.
func IsPrerequisite(err error) bool {
	return IsKind(err, KindPrerequisite)
}

// IsCancelled checks if the error is a cancellation error.
func IsCancelled(err error) bool {
	return IsKind(err, KindCancelled)
}

// IsNoFilesFound checks if the error is a no-files-found error.
func IsNoFilesFound(err error) bool {
	return IsKind(err, KindNoFilesFound)
}

// WrapExecError wraps a failed external command into an encode error,
// preserving the exit code and captured stderr when available.
func WrapExecError(cmd string, err error, stderr string) *CoreError {
	if exitErr, ok := err.(*exec.ExitError); ok {
		msg := fmt.Sprintf("%s failed with exit code %d", cmd, exitErr.ExitCode())
		if stderr != "" {
			msg = fmt.Sprintf("%s: %s", msg, stderr)
		}
		return NewEncodeError(msg, err)
	}
	return NewEncodeError(fmt.Sprintf("failed to execute %s", cmd), err)
}
