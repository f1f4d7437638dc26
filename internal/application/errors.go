package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNoElementFocused = errors.New("no editable element focused")
	ErrElementVanished  = errors.New("element vanished while editing")
)

// ProcessErrorKind enumerates the ways the external editor process can
// fail independently of exit-code reporting. The zero value means no
// process error occurred.
type ProcessErrorKind int

const (
	ProcessFailedToStart ProcessErrorKind = iota + 1
	ProcessCrashed
	ProcessTimedOut
	ProcessWriteError
	ProcessReadError
	ProcessUnknown
)

var processErrorMessages = map[ProcessErrorKind]string{
	ProcessFailedToStart: "the process failed to start",
	ProcessCrashed:       "the process crashed",
	ProcessTimedOut:      "waiting for the process timed out",
	ProcessWriteError:    "an error occurred when attempting to write to the process",
	ProcessReadError:     "an error occurred when attempting to read from the process",
	ProcessUnknown:       "an unknown error occurred",
}

func (k ProcessErrorKind) String() string {
	if msg, ok := processErrorMessages[k]; ok {
		return msg
	}
	return processErrorMessages[ProcessUnknown]
}

// ProcessError represents an editor process failure outside exit-code
// reporting
type ProcessError struct {
	Kind ProcessErrorKind
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("error while calling editor: %s", e.Kind)
}

// AbnormalExitError represents an editor that exited with a non-zero
// status
type AbnormalExitError struct {
	Code int
}

func (e *AbnormalExitError) Error() string {
	return fmt.Sprintf("editor quit abnormally (status %d)", e.Code)
}

// TempFileError represents a temp file creation, write, or read failure
type TempFileError struct {
	Op  string
	Err error
}

func (e *TempFileError) Error() string {
	return fmt.Sprintf("tempfile %s failed: %v", e.Op, e.Err)
}

func (e *TempFileError) Unwrap() error {
	return e.Err
}

// CleanupError represents a temp file that could not be deleted after
// the session ended
type CleanupError struct {
	Path string
	Err  error
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("failed to delete tempfile %s: %v", e.Path, e.Err)
}

func (e *CleanupError) Unwrap() error {
	return e.Err
}
