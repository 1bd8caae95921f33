//go:build !unix

// Package mmap obtains and returns anonymous memory regions from the OS.
package mmap

import "fmt"

// Anon allocates a zeroed region from the Go heap when mmap is not available.
// The Go collector does not move heap objects, so addresses stay stable for
// as long as the caller keeps the slice reachable.
func Anon(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmap: invalid size %d", size)
	}
	return make([]byte, size), nil
}

// Release drops a region returned by Anon.
func Release(data []byte) error {
	return nil
}
