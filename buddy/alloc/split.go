package alloc

import "github.com/joshuapare/buddykit/internal/format"

// split halves b until it reaches the target order. Each upper half becomes
// a free block linked right after b. If an upper half would extend past the
// arena the reduction stops and b keeps its current order.
func (a *Allocator) split(b *block, target int) {
	for b.hdr.Order > target {
		k := b.hdr.Order - 1
		sibOff := b.off + 1<<k
		if sibOff+1<<k > b.ar.Size() {
			a.stats.SplitAborted++
			a.log.Debug("split aborted", "arena", b.ar.String(), "off", b.off, "order", b.hdr.Order, "target", target)
			return
		}

		b.hdr.Order = k
		sib := block{ar: b.ar, off: sibOff, hdr: format.Header{Order: k}}
		b.ar.Track(sibOff)
		a.insertAfter(b, &sib)
		a.stats.SplitCount++
	}
}
