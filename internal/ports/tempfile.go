package ports

import "os"

// TempFileProvider creates and deletes the temporary files an edit
// session hands to the external editor.
type TempFileProvider interface {
	// Create makes a new, uniquely named temporary file and returns
	// the open handle together with its path.
	Create() (*os.File, string, error)

	// Remove deletes the file at path.
	Remove(path string) error
}
