// Package arena manages the OS-backed regions a buddy allocator carves into
// blocks.
//
// # Sources
//
// A Source hands out raw regions and takes them back:
//
//   - MmapSource: anonymous private mappings (mmap/munmap on unix)
//   - HeapSource: Go heap slices, with an optional cap on live regions
//
// Every region is exactly 2^order bytes, where order is the allocator's
// maximum block order.
//
// # Arena Records
//
// An Arena wraps one region and remembers which offsets inside it currently
// hold a block header. The allocator updates that set whenever it splits or
// merges, so Tracked answers "is this a live block" in O(1) and Live reports
// how many blocks the arena is divided into. An arena whose only block is a
// free max-order block can be handed back to its Source.
//
// # Index
//
// Index orders arenas by base address so any address can be mapped back to
// the arena containing it in O(log A).
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use.
package arena
