package alloc

import (
	"fmt"

	"github.com/joshuapare/buddykit/internal/format"
)

// Realloc resizes the allocation at p to n bytes and returns the (possibly
// moved) pointer with a payload slice of length n.
//
//   - Realloc(Nil, n) behaves like Alloc(n).
//   - Realloc(p, 0) frees p and returns Nil.
//   - If the block still fits but is at least twice as large as needed, the
//     data moves to a smaller block. Should that allocation fail the block
//     is kept.
//   - If the block is too small, the data moves to a new block. Should that
//     allocation fail the old block is left untouched and the error returned.
//
// Content is preserved up to the smaller of the old and new lengths.
func (a *Allocator) Realloc(p Ptr, n int) (Ptr, []byte, error) {
	if a.closed {
		return Nil, nil, a.reject("realloc", ErrClosed)
	}
	if p == Nil {
		return a.Alloc(n)
	}
	if n == 0 {
		return Nil, nil, a.Free(p)
	}
	a.stats.ReallocCalls++

	b, err := a.lookup(p)
	if err != nil {
		return Nil, nil, a.reject("realloc", err)
	}
	if !b.hdr.Used {
		return Nil, nil, a.reject("realloc", fmt.Errorf("%w: %v is not allocated", ErrUnknownPointer, p))
	}
	if _, ok := FittingOrder(n, a.cfg.MinOrder, a.cfg.MaxOrder); !ok {
		return Nil, nil, a.reject("realloc", fmt.Errorf("%w: %d bytes (payload range 1..%d)",
			ErrInvalidSize, n, a.cfg.PayloadCap()), "ptr", p)
	}

	if n <= b.hdr.Payload() {
		if b.hdr.Capacity() >= 2*(n+format.HeaderSize)+format.HeaderSize {
			if moved, err := a.move(b, n); err == nil {
				return moved.ptr(), moved.payload(n), nil
			}
		}
		return a.resizeInPlace(b, n)
	}

	moved, err := a.move(b, n)
	if err != nil {
		return Nil, nil, a.reject("realloc", err, "ptr", p, "size", n)
	}
	return moved.ptr(), moved.payload(n), nil
}

// move copies b into a fresh block of n bytes and frees b. When no block
// can be obtained b is left as it was.
func (a *Allocator) move(b block, n int) (block, error) {
	a.stats.AllocCalls++
	nb, err := a.allocBlock(n)
	if err != nil {
		a.log.Debug("realloc move failed", "ptr", b.ptr(), "size", n, "error", err)
		return block{}, err
	}
	copy(nb.payload(n), b.payload(min(int(b.hdr.Length), n)))

	// Growing may have linked a new arena after b.
	old, ok := blockAt(b.ar, b.off)
	if !ok {
		old = b
	}
	a.freeBlock(old)
	a.stats.ReallocMoved++
	return nb, nil
}

// resizeInPlace updates the recorded length. Bytes beyond the new length
// are zeroed so a later growth exposes clean memory.
func (a *Allocator) resizeInPlace(b block, n int) (Ptr, []byte, error) {
	old := int(b.hdr.Length)
	if n < old {
		clear(b.payload(old)[n:])
	}
	b.hdr.Length = uint32(n)
	b.store()
	return b.ptr(), b.payload(n), nil
}
