//go:build unix

// Package mmap obtains and returns anonymous memory regions from the OS.
package mmap

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Syscall hooks; tests swap these to simulate resource exhaustion.
var (
	sysMmap   = unix.Mmap
	sysMunmap = unix.Munmap
)

// Anon maps a zero-filled, private, read/write region of size bytes.
func Anon(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmap: invalid size %d", size)
	}
	data, err := sysMmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap: map %d bytes: %w", size, err)
	}
	return data, nil
}

// Release unmaps a region returned by Anon.
func Release(data []byte) error {
	if data == nil {
		return nil
	}
	err := sysMunmap(data)
	if errors.Is(err, unix.EINVAL) {
		// Treat double-unmap as no-op for callers.
		return nil
	}
	if err != nil {
		return fmt.Errorf("mmap: unmap %d bytes: %w", len(data), err)
	}
	return nil
}
