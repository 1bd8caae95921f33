package arena

import (
	"fmt"

	"github.com/joshuapare/buddykit/internal/mmap"
)

// Source obtains and releases the raw regions backing arenas.
type Source interface {
	// Map returns a zero-filled region of exactly size bytes.
	Map(size int) ([]byte, error)

	// Unmap returns a region obtained from Map. It is called at most once per region.
	Unmap(data []byte) error
}

// MmapSource maps anonymous, private, read/write memory from the OS.
type MmapSource struct{}

// Map implements Source.
func (MmapSource) Map(size int) ([]byte, error) {
	data, err := mmap.Anon(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExhausted, err)
	}
	return data, nil
}

// Unmap implements Source.
func (MmapSource) Unmap(data []byte) error {
	return mmap.Release(data)
}

// HeapSource serves regions from the Go heap. Limit caps the number of
// regions alive at once (0 = unlimited), which makes exhaustion easy to
// reproduce.
type HeapSource struct {
	Limit int

	live   int
	maps   int
	unmaps int
}

// Map implements Source.
func (s *HeapSource) Map(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("arena: invalid region size %d", size)
	}
	if s.Limit > 0 && s.live >= s.Limit {
		return nil, fmt.Errorf("%w: %d regions live", ErrExhausted, s.live)
	}
	s.live++
	s.maps++
	return make([]byte, size), nil
}

// Unmap implements Source.
func (s *HeapSource) Unmap(data []byte) error {
	if data == nil {
		return nil
	}
	s.live--
	s.unmaps++
	return nil
}

// Live returns the number of regions handed out and not yet returned.
func (s *HeapSource) Live() int { return s.live }

// Calls returns how many times Map succeeded and Unmap was called.
func (s *HeapSource) Calls() (maps, unmaps int) { return s.maps, s.unmaps }
