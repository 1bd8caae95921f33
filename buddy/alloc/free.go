package alloc

import (
	"fmt"

	"github.com/joshuapare/buddykit/internal/format"
)

// Free returns a block to the allocator. Freeing Nil does nothing. Unknown
// pointers and blocks that are already free are rejected without touching
// any state.
func (a *Allocator) Free(p Ptr) error {
	if p == Nil {
		return nil
	}
	if a.closed {
		return a.reject("free", ErrClosed)
	}
	a.stats.FreeCalls++

	b, err := a.lookup(p)
	if err != nil {
		return a.reject("free", err)
	}
	if !b.hdr.Used {
		return a.reject("free", fmt.Errorf("%w: %v", ErrDoubleFree, p))
	}
	a.freeBlock(b)
	return nil
}

// freeBlock marks b free, zeroes its payload, merges it with free buddies
// and releases the arena once it is whole again.
func (a *Allocator) freeBlock(b block) {
	a.stats.BytesFreed += b.hdr.Capacity()
	b.hdr.Used = false
	b.hdr.Length = 0
	b.store()
	clear(b.payload(b.hdr.Payload()))

	a.coalesce(&b)

	if b.hdr.Order == a.cfg.MaxOrder && b.ar.Live() == 1 {
		a.release(b)
	}
}

// coalesce merges b with its buddy for as long as the buddy is free and of
// the same order. The merged block keeps the lower address and its registry
// position; the upper header is unlinked and wiped.
func (a *Allocator) coalesce(b *block) {
	for b.hdr.Order < a.cfg.MaxOrder {
		buddy, ok := blockAt(b.ar, buddyOffset(b.off, b.hdr.Order))
		if !ok || buddy.hdr.Used || buddy.hdr.Order != b.hdr.Order {
			return
		}

		lo, hi := *b, buddy
		if buddy.off < b.off {
			lo, hi = buddy, *b
		}
		a.unlink(hi)
		hi.ar.Untrack(hi.off)
		format.ClearHeader(hi.ar.Header(hi.off))

		// unlink may have rewritten lo's link.
		merged, ok := blockAt(lo.ar, lo.off)
		if !ok {
			a.log.Error("coalesce lost lower half", "arena", lo.ar.String(), "off", lo.off)
			return
		}
		merged.hdr.Order++
		merged.store()
		*b = merged
		a.stats.CoalesceCount++
	}
}
