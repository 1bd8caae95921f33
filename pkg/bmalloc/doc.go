// Package bmalloc offers a process-wide buddy allocator with a malloc-style
// API.
//
// The default allocator is created on first use with alloc.DefaultConfig
// (16B minimum block, 4KB mmap arenas, best fit). Code that wants its own
// geometry, source or logger should use buddy/alloc directly.
//
// Example:
//
//	p, buf, err := bmalloc.Malloc(2000)
//	if err != nil {
//	    return err
//	}
//	copy(buf, data)
//	defer bmalloc.Free(p)
//
// Like the allocator itself, these functions are not safe for concurrent use.
package bmalloc
