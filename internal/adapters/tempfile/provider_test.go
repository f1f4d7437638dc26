package tempfile

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestCreateAndRemove(t *testing.T) {
	p := NewProvider()

	f, path, err := p.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	defer f.Close()

	if !strings.Contains(path, "fieldedit-") {
		t.Errorf("path %q missing fieldedit prefix", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("created file not on disk: %v", err)
	}

	if err := p.Remove(path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("file still exists after Remove, stat err = %v", err)
	}
}

func TestCreateUniquePaths(t *testing.T) {
	p := NewProvider()

	f1, path1, err := p.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	f2, path2, err := p.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	f1.Close()
	f2.Close()
	defer p.Remove(path1)
	defer p.Remove(path2)

	if path1 == path2 {
		t.Errorf("two sessions got the same temp file %q", path1)
	}
}
