package arena

import (
	"fmt"
	"unsafe"

	"github.com/RoaringBitmap/roaring"

	"github.com/joshuapare/buddykit/internal/buf"
	"github.com/joshuapare/buddykit/internal/format"
)

// Arena is one region carved into buddy blocks.
type Arena struct {
	base  uintptr
	data  []byte
	order int

	// headers holds the offsets of every block header currently inside the arena.
	headers *roaring.Bitmap
}

// New wraps data, which must be exactly 2^order bytes, as an arena with no
// tracked blocks.
func New(data []byte, order int) (*Arena, error) {
	if order < 0 || order > format.MaxOrder || len(data) != 1<<order {
		return nil, fmt.Errorf("%w: len=%d order=%d", ErrBadRegion, len(data), order)
	}
	return &Arena{
		base:    uintptr(unsafe.Pointer(unsafe.SliceData(data))),
		data:    data,
		order:   order,
		headers: roaring.New(),
	}, nil
}

// Base returns the address of the first byte of the arena.
func (a *Arena) Base() uintptr { return a.base }

// End returns the address one past the last byte of the arena.
func (a *Arena) End() uintptr { return a.base + uintptr(len(a.data)) }

// Size returns the arena size in bytes.
func (a *Arena) Size() int { return len(a.data) }

// Order returns log2 of the arena size.
func (a *Arena) Order() int { return a.order }

// Bytes returns the backing region.
func (a *Arena) Bytes() []byte { return a.data }

// Contains reports whether addr falls inside the arena.
func (a *Arena) Contains(addr uintptr) bool {
	return addr >= a.base && addr < a.End()
}

// Offset converts an address inside the arena to an offset from its base.
func (a *Arena) Offset(addr uintptr) int { return int(addr - a.base) }

// Addr converts an offset to an absolute address.
func (a *Arena) Addr(off int) uintptr { return a.base + uintptr(off) }

// Slice returns data[off:off+n], or false when the range leaves the arena.
func (a *Arena) Slice(off, n int) ([]byte, bool) {
	return buf.Slice(a.data, off, n)
}

// Header returns the header bytes of the block at off.
func (a *Arena) Header(off int) []byte {
	return a.data[off : off+format.HeaderSize]
}

// Track records a block header at off.
func (a *Arena) Track(off int) { a.headers.Add(uint32(off)) }

// Untrack forgets the block header at off.
func (a *Arena) Untrack(off int) { a.headers.Remove(uint32(off)) }

// Tracked reports whether a block header lives at off.
func (a *Arena) Tracked(off int) bool {
	if off < 0 || off >= len(a.data) {
		return false
	}
	return a.headers.Contains(uint32(off))
}

// Live returns the number of blocks the arena is currently divided into.
func (a *Arena) Live() int { return int(a.headers.GetCardinality()) }

// Offsets returns the tracked header offsets in ascending order.
func (a *Arena) Offsets() []int {
	raw := a.headers.ToArray()
	out := make([]int, len(raw))
	for i, off := range raw {
		out[i] = int(off)
	}
	return out
}

// String implements fmt.Stringer.
func (a *Arena) String() string {
	return fmt.Sprintf("arena[0x%x+%d, %d blocks]", a.base, len(a.data), a.Live())
}
