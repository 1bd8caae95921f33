package alloc

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/joshuapare/buddykit/buddy/arena"
)

// Allocator is a buddy allocator over a chain of arenas.
//
// Blocks of every arena are threaded into a single registry through their
// headers; head and tail hold the header addresses of its first and last
// block (0 when empty). The arena index maps any address back to the arena
// record that owns it.
type Allocator struct {
	cfg    Config
	src    arena.Source
	arenas *arena.Index
	log    *slog.Logger

	head uintptr
	tail uintptr

	policy Policy
	stats  Stats
	closed bool

	// Test hook: called after a new arena is registered (nil in production)
	onGrow func(*arena.Arena)
}

// New creates an allocator. A nil config selects DefaultConfig. No memory
// is mapped until the first allocation.
func New(cfg *Config) (*Allocator, error) {
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	src := c.Source
	if src == nil {
		src = arena.MmapSource{}
	}
	return &Allocator{
		cfg:    c,
		src:    src,
		arenas: arena.NewIndex(),
		log:    c.logger(),
		policy: c.Policy,
	}, nil
}

// Config returns the configuration the allocator was built with.
func (a *Allocator) Config() Config {
	return a.cfg
}

// Policy returns the current placement policy.
func (a *Allocator) Policy() Policy {
	return a.policy
}

// SetPolicy changes the placement policy for subsequent allocations.
// Existing blocks are not moved.
func (a *Allocator) SetPolicy(p Policy) error {
	if !p.valid() {
		return a.reject("set policy", fmt.Errorf("%w: %v", ErrBadConfig, p))
	}
	a.policy = p
	return nil
}

// Arenas returns the number of arenas currently mapped.
func (a *Allocator) Arenas() int {
	return a.arenas.Len()
}

// Alloc returns a block able to hold n bytes. The returned slice aliases
// the payload, is zero-filled and has len and cap equal to n.
func (a *Allocator) Alloc(n int) (Ptr, []byte, error) {
	if a.closed {
		return Nil, nil, a.reject("alloc", ErrClosed)
	}
	a.stats.AllocCalls++
	b, err := a.allocBlock(n)
	if err != nil {
		return Nil, nil, a.reject("alloc", err, "size", n)
	}
	return b.ptr(), b.payload(n), nil
}

// allocBlock carves a used block for n bytes. It fails without side
// effects on the registry.
func (a *Allocator) allocBlock(n int) (block, error) {
	order, ok := FittingOrder(n, a.cfg.MinOrder, a.cfg.MaxOrder)
	if !ok {
		return block{}, fmt.Errorf("%w: %d bytes (payload range 1..%d)", ErrInvalidSize, n, a.cfg.PayloadCap())
	}

	b, found := a.findFree(order)
	if found {
		a.stats.AllocFastPath++
	} else {
		a.stats.AllocSlowPath++
		var err error
		if b, err = a.grow(); err != nil {
			return block{}, err
		}
	}

	a.split(&b, order)
	b.hdr.Used = true
	b.hdr.Length = uint32(n)
	b.store()
	a.stats.BytesAllocated += b.hdr.Capacity()
	return b, nil
}

// Bytes returns the payload of a live allocation, sized to the length it
// was last allocated or reallocated with.
func (a *Allocator) Bytes(p Ptr) ([]byte, error) {
	if a.closed {
		return nil, ErrClosed
	}
	b, err := a.lookup(p)
	if err != nil {
		return nil, err
	}
	if !b.hdr.Used {
		return nil, fmt.Errorf("%w: %v is not allocated", ErrUnknownPointer, p)
	}
	return b.payload(int(b.hdr.Length)), nil
}

// Close returns every arena to its source, live allocations included.
// The allocator cannot be used afterwards. Closing twice is a no-op.
func (a *Allocator) Close() error {
	if a.closed {
		return nil
	}
	var errs []error
	for _, ar := range a.arenas.All() {
		if err := a.src.Unmap(ar.Bytes()); err != nil {
			errs = append(errs, fmt.Errorf("release %v: %w", ar, err))
		}
		a.arenas.Remove(ar)
	}
	a.head, a.tail = 0, 0
	a.closed = true
	return errors.Join(errs...)
}

// reject logs a failed call and counts it. It returns err unchanged.
func (a *Allocator) reject(op string, err error, attrs ...any) error {
	a.stats.Rejected++
	a.log.Warn(op+" rejected", append(attrs, "error", err)...)
	return err
}
