package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Placeholder is the token in a configured editor command that gets
// replaced by the file to edit.
const Placeholder = "{}"

// Opener implements ports.EditorOpener. It resolves the editor from an
// explicit command template first, then $EDITOR, $VISUAL, and a list
// of common editors.
type Opener struct {
	template string
}

// NewOpener creates an editor opener. template is the configured
// editor command, e.g. "gvim -f {}"; pass "" to fall back to the
// environment.
func NewOpener(template string) *Opener {
	return &Opener{template: template}
}

// Command returns an exec.Cmd that opens path in the resolved editor.
// Every argument containing the placeholder has it substituted with
// path; a command without any placeholder gets path appended.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	words := strings.Fields(o.resolve())
	if len(words) == 0 {
		return nil, fmt.Errorf("no editor found: set $EDITOR or configure one")
	}

	executable := words[0]
	args := words[1:]
	substituted := false
	for i, arg := range args {
		if strings.Contains(arg, Placeholder) {
			args[i] = strings.ReplaceAll(arg, Placeholder, path)
			substituted = true
		}
	}
	if !substituted {
		args = append(args, path)
	}

	cmd := exec.Command(executable, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// resolve returns the editor command template to use
func (o *Opener) resolve() string {
	if o.template != "" {
		return o.template
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	// Try common editors
	editors := []string{"nvim", "vim", "vi", "nano", "code"}
	for _, editor := range editors {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}
	return ""
}
