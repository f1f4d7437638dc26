package application

import (
	"errors"
	"os/exec"
)

// ExitState describes how the external editor terminated. Kind is set
// when the process failed outside exit-code reporting; otherwise Code
// and Crashed carry the wait result.
type ExitState struct {
	Code    int
	Crashed bool
	Kind    ProcessErrorKind
}

// ExitStateFromError maps the error returned by the host's process
// wait (tea.ExecProcess callback, exec.Cmd.Run) to an ExitState.
func ExitStateFromError(err error) ExitState {
	if err == nil {
		return ExitState{}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.ProcessState != nil && exitErr.ProcessState.Exited() {
			return ExitState{Code: exitErr.ExitCode()}
		}
		// Signalled or otherwise abnormal termination.
		return ExitState{Code: exitErr.ExitCode(), Crashed: true}
	}

	var execErr *exec.Error
	if errors.As(err, &execErr) || errors.Is(err, exec.ErrNotFound) {
		return ExitState{Kind: ProcessFailedToStart}
	}

	return ExitState{Kind: ProcessUnknown}
}
