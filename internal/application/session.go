package application

import (
	"os"
	"os/exec"

	"fieldedit/internal/ports"
)

// SessionState tracks where a session is in its lifecycle:
// Running -> {Completed | Crashed | Failed} -> CleanedUp.
type SessionState int

const (
	// StateRunning means the editor has been handed the temp file and
	// has not finished yet.
	StateRunning SessionState = iota
	// StateCompleted means the editor reported a normal exit, with any
	// exit code.
	StateCompleted
	// StateCrashed means the editor terminated abnormally.
	StateCrashed
	// StateFailed means the editor failed outside exit-code reporting
	// (failed to start, timed out, process I/O error).
	StateFailed
	// StateCleanedUp is terminal: the outcome has been reported and
	// the temp file released.
	StateCleanedUp
)

// Session is one in-flight external-edit attempt, from temp file
// creation to cleanup. It owns its temp file and editor command
// exclusively; concurrent sessions never share state.
type Session struct {
	element  ports.Element
	file     *os.File
	tempPath string
	cmd      *exec.Cmd
	state    SessionState
}

// Cmd returns the prepared editor command. It has not been started;
// the host launches it through its own event loop.
func (s *Session) Cmd() *exec.Cmd {
	return s.cmd
}

// TempPath returns the path of the session's temp file.
func (s *Session) TempPath() string {
	return s.tempPath
}

// State returns the session's lifecycle state.
func (s *Session) State() SessionState {
	return s.state
}
