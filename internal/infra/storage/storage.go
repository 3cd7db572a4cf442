// Package storage is the file-storage boundary: hand it bytes, get a
// durable public URL back. The rest of the app only depends on Store
// and Delete, so swapping the local-disk implementation for an object
// store changes nothing upstream.
package storage

import "io"

type Store interface {
	// Store persists the content under a generated name inside dir
	// (a logical subfolder such as "artworks" or "qr") and returns the
	// public URL.
	Store(dir, filename string, content io.Reader) (string, error)
	// Delete removes the artifact a previous Store returned.
	Delete(url string) error
}
