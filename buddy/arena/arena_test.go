package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/buddykit/internal/format"
)

func newTestArena(t testing.TB, order int) *Arena {
	t.Helper()
	a, err := New(make([]byte, 1<<order), order)
	require.NoError(t, err)
	return a
}

func TestNew_RejectsSizeMismatch(t *testing.T) {
	_, err := New(make([]byte, 4000), 12)
	require.ErrorIs(t, err, ErrBadRegion)

	_, err = New(make([]byte, 16), format.MaxOrder+1)
	require.ErrorIs(t, err, ErrBadRegion)
}

func TestArena_AddressMath(t *testing.T) {
	a := newTestArena(t, 12)

	assert.Equal(t, 4096, a.Size())
	assert.Equal(t, 12, a.Order())
	assert.Equal(t, a.Base()+4096, a.End())

	assert.True(t, a.Contains(a.Base()))
	assert.True(t, a.Contains(a.End()-1))
	assert.False(t, a.Contains(a.End()))
	assert.False(t, a.Contains(a.Base()-1))

	assert.Equal(t, 2048, a.Offset(a.Addr(2048)))
}

func TestArena_TrackedOffsets(t *testing.T) {
	a := newTestArena(t, 12)
	require.Equal(t, 0, a.Live())

	a.Track(0)
	a.Track(2048)
	a.Track(1024)
	assert.Equal(t, 3, a.Live())
	assert.Equal(t, []int{0, 1024, 2048}, a.Offsets())
	assert.True(t, a.Tracked(1024))
	assert.False(t, a.Tracked(512))
	assert.False(t, a.Tracked(-16))
	assert.False(t, a.Tracked(4096))

	a.Untrack(1024)
	assert.False(t, a.Tracked(1024))
	assert.Equal(t, 2, a.Live())
}

func TestArena_Slice(t *testing.T) {
	a := newTestArena(t, 6)

	b, ok := a.Slice(format.HeaderSize, 64-format.HeaderSize)
	require.True(t, ok)
	assert.Len(t, b, 48)

	_, ok = a.Slice(32, 64)
	assert.False(t, ok, "slice past the arena end must fail")

	assert.Len(t, a.Header(32), format.HeaderSize)
}
