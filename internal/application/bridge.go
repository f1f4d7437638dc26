package application

import (
	"os"

	"go.uber.org/zap"

	"fieldedit/internal/domain"
	"fieldedit/internal/ports"
)

// Bridge connects a page's editable elements to the user's external
// editor. It owns the session lifecycle: it seeds a temp file with the
// element text, prepares the editor command, and after the editor
// finishes writes the edited text back into the element and releases
// the temp file on every path.
//
// The bridge never blocks on the editor and never spawns threads of
// its own: StartEdit returns before the process is launched, and
// Finish is expected to run on the host's event loop.
type Bridge struct {
	opener   ports.EditorOpener
	temps    ports.TempFileProvider
	reporter ports.MessageReporter
	log      *zap.Logger
}

// NewBridge creates a Bridge. A nil logger disables logging.
func NewBridge(opener ports.EditorOpener, temps ports.TempFileProvider, reporter ports.MessageReporter, log *zap.Logger) *Bridge {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bridge{
		opener:   opener,
		temps:    temps,
		reporter: reporter,
		log:      log,
	}
}

// StartEdit begins an edit session for elem: it creates a temp file,
// seeds it with the element's current text, and prepares the editor
// command with the temp path substituted into its arguments. The
// caller launches session.Cmd() through the host event loop and hands
// the wait result to Finish.
//
// Returns ErrNoElementFocused when elem is absent or not editable,
// and a TempFileError when the temp file cannot be created or seeded.
// On error no session is left behind: any file already created has
// been released again.
func (b *Bridge) StartEdit(elem ports.Element) (*Session, error) {
	if elem == nil || !elem.IsValid() {
		return nil, ErrNoElementFocused
	}
	text := elem.Text()

	file, path, err := b.temps.Create()
	if err != nil {
		return nil, &TempFileError{Op: "create", Err: err}
	}
	s := &Session{
		element:  elem,
		file:     file,
		tempPath: path,
		state:    StateRunning,
	}

	if text != "" {
		if _, err := file.WriteString(text); err != nil {
			b.Cleanup(s)
			return nil, &TempFileError{Op: "write", Err: err}
		}
	}

	cmd, err := b.opener.Command(path)
	if err != nil {
		b.Cleanup(s)
		return nil, err
	}
	s.cmd = cmd

	b.log.Debug("calling editor",
		zap.String("executable", cmd.Path),
		zap.Strings("args", cmd.Args[1:]),
		zap.String("tempfile", path))
	return s, nil
}

// Finish applies the editor's exit state to the session: it reports
// the outcome, writes the edited text back into the element when the
// exit was clean, and always cleans up. The second call for a session
// is a no-op. Run it on the host's event loop so element access stays
// single-threaded.
func (b *Bridge) Finish(s *Session, exit ExitState) {
	if s == nil || s.state != StateRunning {
		return
	}
	b.log.Debug("editor finished",
		zap.Int("code", exit.Code),
		zap.Bool("crashed", exit.Crashed),
		zap.String("tempfile", s.tempPath))

	switch {
	case exit.Kind != 0:
		s.state = StateFailed
		b.reporter.Error(&ProcessError{Kind: exit.Kind})
	case exit.Crashed:
		// A crash surfaces exactly once, as a process error.
		s.state = StateCrashed
		b.reporter.Error(&ProcessError{Kind: ProcessCrashed})
	case exit.Code != 0:
		s.state = StateCompleted
		b.reporter.Error(&AbnormalExitError{Code: exit.Code})
	default:
		s.state = StateCompleted
		b.writeBack(s)
	}

	b.Cleanup(s)
}

// writeBack reads the edited temp file and injects its contents into
// the element. The element reference is re-checked first: the page may
// have dropped it while the editor was open.
func (b *Bridge) writeBack(s *Session) {
	if !s.element.IsValid() {
		b.reporter.Error(ErrElementVanished)
		return
	}

	data, err := os.ReadFile(s.tempPath)
	if err != nil {
		b.reporter.Error(&TempFileError{Op: "read", Err: err})
		return
	}

	b.log.Debug("read back", zap.Int("bytes", len(data)))
	s.element.SetText(domain.Escape(string(data)))
	b.reporter.Info("field updated from external editor")
}

// Cleanup releases the session's temp file: it closes the seed handle
// if still open and deletes the file. Idempotent; only the first call
// does anything. A failed deletion is reported but never reverses the
// outcome already reported for the session.
func (b *Bridge) Cleanup(s *Session) {
	if s == nil || s.state == StateCleanedUp {
		return
	}
	if s.file != nil {
		s.file.Close()
		s.file = nil
	}
	if err := b.temps.Remove(s.tempPath); err != nil {
		b.reporter.Error(&CleanupError{Path: s.tempPath, Err: err})
	}
	s.state = StateCleanedUp
}
