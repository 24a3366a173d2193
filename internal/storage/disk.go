package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Disk stores objects as files under a base directory and serves them
// from the /media route of the API.
type Disk struct {
	baseDir string
	baseURL string
}

// NewDisk creates a disk storage rooted at baseDir. URLs are formed as
// baseURL + "/media/" + path.
func NewDisk(baseDir, baseURL string) (*Disk, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Disk{baseDir: baseDir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save writes the object to disk, creating intermediate directories.
func (d *Disk) Save(path string, r io.Reader) (string, error) {
	full := filepath.Join(d.baseDir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return d.baseURL + "/media/" + path, nil
}

// Remove deletes the object file. A missing file is treated as success.
func (d *Disk) Remove(path string) error {
	full := filepath.Join(d.baseDir, filepath.FromSlash(path))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}
