package alloc

import (
	"fmt"

	"github.com/joshuapare/buddykit/buddy/arena"
)

// Verify walks the registry and every arena and checks that:
//   - every linked header is tracked and appears once
//   - the tail is the last linked block
//   - each arena is partitioned exactly by its tracked blocks
//   - each block is aligned to its own size and within the order range
//   - recorded lengths fit their blocks (0 for free blocks)
//
// It returns nil or an error wrapping ErrCorrupt.
func (a *Allocator) Verify() error {
	seen := make(map[uintptr]bool)
	perArena := make(map[*arena.Arena]int)
	var last uintptr

	for addr := a.head; addr != 0; {
		if seen[addr] {
			return fmt.Errorf("%w: cycle at 0x%x", ErrCorrupt, addr)
		}
		b, ok := a.blockAtAddr(addr)
		if !ok {
			return fmt.Errorf("%w: link to untracked header 0x%x", ErrCorrupt, addr)
		}
		seen[addr] = true
		perArena[b.ar]++
		last = addr
		addr = uintptr(b.hdr.Next)
	}
	if last != a.tail {
		return fmt.Errorf("%w: tail 0x%x, last block 0x%x", ErrCorrupt, a.tail, last)
	}

	var err error
	a.arenas.Ascend(func(ar *arena.Arena) bool {
		if perArena[ar] != ar.Live() {
			err = fmt.Errorf("%w: %v has %d linked blocks", ErrCorrupt, ar, perArena[ar])
			return false
		}
		err = a.verifyArena(ar)
		return err == nil
	})
	if err != nil {
		return err
	}
	if len(perArena) != a.arenas.Len() {
		return fmt.Errorf("%w: %d arenas linked, %d indexed", ErrCorrupt, len(perArena), a.arenas.Len())
	}
	return nil
}

func (a *Allocator) verifyArena(ar *arena.Arena) error {
	next := 0
	for _, off := range ar.Offsets() {
		if off != next {
			return fmt.Errorf("%w: %v gap or overlap at %d (expected %d)", ErrCorrupt, ar, off, next)
		}
		b, ok := blockAt(ar, off)
		if !ok {
			return fmt.Errorf("%w: %v unreadable header at %d", ErrCorrupt, ar, off)
		}
		if b.hdr.Order < a.cfg.MinOrder || b.hdr.Order > a.cfg.MaxOrder {
			return fmt.Errorf("%w: %v order %d at %d", ErrCorrupt, ar, b.hdr.Order, off)
		}
		if off%b.hdr.Capacity() != 0 {
			return fmt.Errorf("%w: %v misaligned order-%d block at %d", ErrCorrupt, ar, b.hdr.Order, off)
		}
		switch {
		case b.hdr.Used && (b.hdr.Length == 0 || int(b.hdr.Length) > b.hdr.Payload()):
			return fmt.Errorf("%w: %v used block at %d records %d bytes", ErrCorrupt, ar, off, b.hdr.Length)
		case !b.hdr.Used && b.hdr.Length != 0:
			return fmt.Errorf("%w: %v free block at %d records %d bytes", ErrCorrupt, ar, off, b.hdr.Length)
		}
		next = off + b.hdr.Capacity()
	}
	if next != ar.Size() {
		return fmt.Errorf("%w: %v partition ends at %d", ErrCorrupt, ar, next)
	}
	return nil
}
