package alloc

// findFree selects a free block of at least the given order according to
// the current policy.
func (a *Allocator) findFree(order int) (block, bool) {
	var best block
	found := false
	a.each(func(b block) bool {
		if b.hdr.Used || b.hdr.Order < order {
			return true
		}
		if a.policy == FirstFit {
			best, found = b, true
			return false
		}
		if !found || b.hdr.Order < best.hdr.Order {
			best, found = b, true
		}
		// Nothing beats an exact fit, and later ties lose.
		return b.hdr.Order != order
	})
	return best, found
}
