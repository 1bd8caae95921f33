package alloc

import "github.com/joshuapare/buddykit/internal/format"

// each walks the registry in link order until fn returns false.
func (a *Allocator) each(fn func(b block) bool) {
	for addr := a.head; addr != 0; {
		b, ok := a.blockAtAddr(addr)
		if !ok {
			a.log.Error("registry link to untracked header", "addr", addr)
			return
		}
		if !fn(b) {
			return
		}
		addr = uintptr(b.hdr.Next)
	}
}

// appendBlock links b at the registry tail.
func (a *Allocator) appendBlock(b *block) {
	b.hdr.Next = 0
	b.store()
	addr := b.addr()
	if a.tail == 0 {
		a.head, a.tail = addr, addr
		return
	}
	last, ok := a.blockAtAddr(a.tail)
	if ok {
		format.PutNext(last.ar.Header(last.off), uint64(addr))
	}
	a.tail = addr
}

// insertAfter links child directly after parent.
func (a *Allocator) insertAfter(parent, child *block) {
	child.hdr.Next = parent.hdr.Next
	child.store()
	parent.hdr.Next = uint64(child.addr())
	parent.store()
	if a.tail == parent.addr() {
		a.tail = child.addr()
	}
}

// unlink removes b from the registry. Only the predecessor's header is
// written; b's own memory is not touched, so b may already be unmapped.
func (a *Allocator) unlink(b block) {
	addr := b.addr()
	if a.head == addr {
		a.head = uintptr(b.hdr.Next)
		if a.tail == addr {
			a.tail = 0
		}
		return
	}

	var prev block
	found := false
	a.each(func(c block) bool {
		if uintptr(c.hdr.Next) == addr {
			prev, found = c, true
			return false
		}
		return true
	})
	if !found {
		return
	}
	format.PutNext(prev.ar.Header(prev.off), b.hdr.Next)
	if a.tail == addr {
		a.tail = prev.addr()
	}
}
