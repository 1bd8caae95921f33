package bmalloc

import (
	"io"
	"sync"

	"github.com/joshuapare/buddykit/buddy/alloc"
	"github.com/joshuapare/buddykit/buddy/printer"
)

var (
	once   sync.Once
	def    *alloc.Allocator
	defErr error
)

// Default returns the process-wide allocator, creating it on first use.
func Default() (*alloc.Allocator, error) {
	once.Do(func() {
		def, defErr = alloc.New(nil)
	})
	return def, defErr
}

// Malloc allocates n bytes from the default allocator.
func Malloc(n int) (alloc.Ptr, []byte, error) {
	a, err := Default()
	if err != nil {
		return alloc.Nil, nil, err
	}
	return a.Alloc(n)
}

// Free returns p to the default allocator. Free(alloc.Nil) is a no-op.
func Free(p alloc.Ptr) error {
	a, err := Default()
	if err != nil {
		return err
	}
	return a.Free(p)
}

// Realloc resizes p within the default allocator.
func Realloc(p alloc.Ptr, n int) (alloc.Ptr, []byte, error) {
	a, err := Default()
	if err != nil {
		return alloc.Nil, nil, err
	}
	return a.Realloc(p, n)
}

// Config selects the placement policy for later allocations.
func Config(policy alloc.Policy) error {
	a, err := Default()
	if err != nil {
		return err
	}
	return a.SetPolicy(policy)
}

// Print writes the default allocator's registry and totals to w.
func Print(w io.Writer) error {
	a, err := Default()
	if err != nil {
		return err
	}
	return printer.Fprint(w, a.Dump(), printer.DefaultOptions())
}

// Reset closes the default allocator, returning every arena to the OS.
// The next call creates a fresh one. Pointers obtained earlier become invalid.
func Reset() error {
	var err error
	if def != nil {
		err = def.Close()
	}
	def, defErr = nil, nil
	once = sync.Once{}
	return err
}
