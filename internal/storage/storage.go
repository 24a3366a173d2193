// Package storage abstracts where gallery media lives. The gallery
// service performs a storage write followed by a database write; keeping
// the storage behind an interface lets tests run against the in-memory
// implementation.
package storage

import "io"

// Storage persists uploaded files under a path-like key and serves them
// back via a public URL.
type Storage interface {
	// Save writes the object and returns its public URL.
	Save(path string, r io.Reader) (string, error)
	// Remove deletes the object. Removing a missing object is not an error.
	Remove(path string) error
}
