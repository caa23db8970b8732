// Package local implements scratch storage on the local filesystem.
package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/subha-ilamathy/kyc-document-extraction/internal/port"
)

type store struct {
	dir string
}

// NewStore creates a filesystem-backed ScratchStore rooted at dir. An empty
// dir falls back to the system temp directory. The directory is created if
// it does not exist.
func NewStore(dir string) (port.ScratchStore, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating scratch dir %s: %w", dir, err)
	}
	return &store{dir: dir}, nil
}

func (s *store) path(name string) string {
	// Strip any path components so keys cannot escape the scratch dir.
	return filepath.Join(s.dir, filepath.Base(name))
}

func (s *store) Write(_ context.Context, name string, data []byte) error {
	if err := os.WriteFile(s.path(name), data, 0o600); err != nil {
		return fmt.Errorf("writing scratch file: %w", err)
	}
	return nil
}

func (s *store) Read(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("reading scratch file: %w", err)
	}
	return data, nil
}

func (s *store) Exists(_ context.Context, name string) (bool, error) {
	_, err := os.Stat(s.path(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("checking scratch file: %w", err)
}

func (s *store) Remove(_ context.Context, name string) error {
	if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing scratch file: %w", err)
	}
	return nil
}
