package alloc

// buddyOffset returns the arena offset of the buddy of the order-k block at off.
func buddyOffset(off, order int) int {
	return off ^ (1 << order)
}
