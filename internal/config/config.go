package config

import "os"

// EditorCommand returns the editor command template from
// FIELDEDIT_EDITOR, e.g. "gvim -f {}". Empty means resolve through
// $EDITOR, $VISUAL and the common-editor fallbacks.
func EditorCommand() string {
	return os.Getenv("FIELDEDIT_EDITOR")
}

// LogFile returns the debug log path from FIELDEDIT_LOG, falling back
// to no log file.
func LogFile() string {
	return os.Getenv("FIELDEDIT_LOG")
}
