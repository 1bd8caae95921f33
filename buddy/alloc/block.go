package alloc

import (
	"fmt"

	"github.com/joshuapare/buddykit/buddy/arena"
	"github.com/joshuapare/buddykit/internal/format"
)

// block is a decoded header together with its location.
type block struct {
	ar  *arena.Arena
	off int
	hdr format.Header
}

// addr returns the absolute header address.
func (b block) addr() uintptr { return b.ar.Addr(b.off) }

// ptr returns the payload address handed to callers.
func (b block) ptr() Ptr { return Ptr(b.ar.Addr(b.off + format.HeaderSize)) }

// payload returns the first n payload bytes.
func (b block) payload(n int) []byte {
	s, _ := b.ar.Slice(b.off+format.HeaderSize, n)
	return s
}

// store writes the header back to arena memory.
func (b *block) store() {
	format.PutHeader(b.ar.Header(b.off), b.hdr)
}

// blockAt decodes the tracked header at off.
func blockAt(ar *arena.Arena, off int) (block, bool) {
	if !ar.Tracked(off) {
		return block{}, false
	}
	hdr, err := format.ParseHeader(ar.Header(off))
	if err != nil {
		return block{}, false
	}
	return block{ar: ar, off: off, hdr: hdr}, true
}

// blockAtAddr decodes the tracked header at an absolute address.
func (a *Allocator) blockAtAddr(addr uintptr) (block, bool) {
	ar, ok := a.arenas.Find(addr)
	if !ok {
		return block{}, false
	}
	return blockAt(ar, ar.Offset(addr))
}

// lookup maps a caller pointer to its block.
func (a *Allocator) lookup(p Ptr) (block, error) {
	if uintptr(p) < format.HeaderSize {
		return block{}, fmt.Errorf("%w: %v", ErrUnknownPointer, p)
	}
	b, ok := a.blockAtAddr(uintptr(p) - format.HeaderSize)
	if !ok {
		return block{}, fmt.Errorf("%w: %v", ErrUnknownPointer, p)
	}
	return b, nil
}
