package tempfile

import "os"

// Provider implements ports.TempFileProvider on the OS temp directory.
type Provider struct{}

// NewProvider creates a temp file provider
func NewProvider() *Provider {
	return &Provider{}
}

// Create makes a uniquely named temp file and returns the open handle
// and its path.
func (p *Provider) Create() (*os.File, string, error) {
	f, err := os.CreateTemp("", "fieldedit-*.txt")
	if err != nil {
		return nil, "", err
	}
	return f, f.Name(), nil
}

// Remove deletes the file at path.
func (p *Provider) Remove(path string) error {
	return os.Remove(path)
}
