package storage

import (
	"io"
	"sync"
)

// Memory is an in-memory Storage used by tests. SaveErr and RemoveErr can
// be set to simulate storage failures.
type Memory struct {
	mu        sync.Mutex
	objects   map[string][]byte
	SaveErr   error
	RemoveErr error
}

// NewMemory creates an empty in-memory storage.
func NewMemory() *Memory {
	return &Memory{objects: make(map[string][]byte)}
}

// Save records the object bytes under the given path.
func (m *Memory) Save(path string, r io.Reader) (string, error) {
	if m.SaveErr != nil {
		return "", m.SaveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	m.objects[path] = data
	m.mu.Unlock()
	return "memory://" + path, nil
}

// Remove deletes the object if present.
func (m *Memory) Remove(path string) error {
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	m.mu.Lock()
	delete(m.objects, path)
	m.mu.Unlock()
	return nil
}

// Has reports whether an object exists at the given path.
func (m *Memory) Has(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[path]
	return ok
}

// Len returns the number of stored objects.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
