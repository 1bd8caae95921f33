package alloc

// Stats counts allocator activity since New. Counters never decrease.
type Stats struct {
	AllocCalls    int // Alloc calls, including those made on behalf of Realloc
	AllocFastPath int // Served from an existing free block
	AllocSlowPath int // Needed a new arena first

	FreeCalls    int // Free calls with a non-nil pointer
	ReallocCalls int // Realloc calls that reached an existing block
	ReallocMoved int // Realloc calls that returned a different pointer

	GrowCalls     int // Arenas mapped
	GrowBytes     int // Bytes mapped in total
	ReleaseCalls  int // Attempts to return a reclaimed arena
	ReleaseErrors int // Release attempts the source refused

	SplitCount    int // Halvings performed
	SplitAborted  int // Reductions stopped because a sibling would leave its arena
	CoalesceCount int // Buddy merges performed

	BytesAllocated int // Block capacity handed out (headers included)
	BytesFreed     int // Block capacity returned (headers included)
	Rejected       int // Calls that failed without changing state
}

// Stats returns a copy of the counters.
func (a *Allocator) Stats() Stats {
	return a.stats
}
