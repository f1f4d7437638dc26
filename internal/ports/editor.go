package ports

import "os/exec"

// EditorOpener resolves the user's external editor command.
type EditorOpener interface {
	// Command returns an exec.Cmd that opens path in the configured
	// editor, with the {} placeholder substituted by path in every
	// argument containing it (or path appended when the command has no
	// placeholder). The returned Cmd has not been started; this makes
	// it usable with bubbletea's ExecProcess.
	Command(path string) (*exec.Cmd, error)
}
