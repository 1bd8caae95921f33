package alloc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/buddykit/buddy/arena"
)

// ============================================================================
// Allocator Construction
// ============================================================================

// newTestAllocator builds an allocator over a HeapSource with the default
// geometry (16B minimum block, 4KB arenas). mutate, when non-nil, adjusts
// the config before construction. The allocator is closed on cleanup.
func newTestAllocator(t testing.TB, mutate func(*Config)) (*Allocator, *arena.HeapSource) {
	t.Helper()

	src := &arena.HeapSource{}
	cfg := DefaultConfig()
	cfg.Source = src
	if mutate != nil {
		mutate(&cfg)
	}
	a, err := New(&cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a, src
}

// mustAlloc allocates n bytes and fails the test on error.
func mustAlloc(t testing.TB, a *Allocator, n int) (Ptr, []byte) {
	t.Helper()
	p, b, err := a.Alloc(n)
	require.NoError(t, err, "Alloc(%d)", n)
	require.Len(t, b, n)
	return p, b
}

// fill writes v into every byte of b.
func fill(b []byte, v byte) {
	for i := range b {
		b[i] = v
	}
}

// ============================================================================
// Invariant Checks
// ============================================================================

// assertInvariants verifies registry consistency after a mutation.
func assertInvariants(t testing.TB, a *Allocator) {
	t.Helper()
	require.NoError(t, a.Verify(), "registry invariants")
}

// assertUnchanged runs fn and verifies the registry snapshot did not move.
func assertUnchanged(t testing.TB, a *Allocator, fn func()) {
	t.Helper()
	before := a.Dump()
	fn()
	require.Equal(t, before, a.Dump(), "failed call must not mutate the registry")
	assertInvariants(t, a)
}

// blockOrders returns the (used, order) pairs of the registry in link order.
func blockOrders(a *Allocator) []blockShape {
	var out []blockShape
	for _, b := range a.Dump().Blocks {
		out = append(out, blockShape{used: b.Used, order: b.Order})
	}
	return out
}

type blockShape struct {
	used  bool
	order int
}

// ============================================================================
// Sources
// ============================================================================

var errUnmapRefused = errors.New("unmap refused")

// stickySource maps from the heap but refuses to unmap while sticky is set.
type stickySource struct {
	arena.HeapSource
	sticky bool
}

func (s *stickySource) Unmap(data []byte) error {
	if s.sticky {
		return errUnmapRefused
	}
	return s.HeapSource.Unmap(data)
}
