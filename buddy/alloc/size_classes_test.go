package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderOf(t *testing.T) {
	tests := []struct {
		n     int
		order int
		ok    bool
	}{
		{1, 0, true},
		{16, 4, true},
		{4096, 12, true},
		{1 << 30, 30, true},
		{0, 0, false},
		{-16, 0, false},
		{48, 0, false},
		{4095, 0, false},
	}
	for _, tt := range tests {
		order, ok := OrderOf(tt.n)
		assert.Equal(t, tt.ok, ok, "OrderOf(%d) ok", tt.n)
		if tt.ok {
			assert.Equal(t, tt.order, order, "OrderOf(%d)", tt.n)
		}
	}
}

func TestFittingOrder(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		order     int
		ok        bool
	}{
		{"one byte", 1, 5, true},
		{"fills order 5", 16, 5, true},
		{"spills to order 6", 17, 6, true},
		{"driver p1", 2000, 11, true},
		{"fills order 11", 2032, 11, true},
		{"spills to order 12", 2033, 12, true},
		{"driver p2", 2500, 12, true},
		{"largest payload", 4080, 12, true},
		{"driver p3 too large", 4081, 0, false},
		{"zero", 0, 0, false},
		{"negative", -1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, ok := FittingOrder(tt.requested, DefaultMinOrder, DefaultMaxOrder)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.order, order)
				assert.GreaterOrEqual(t, PayloadOf(order), tt.requested, "payload must hold the request")
				if order > DefaultMinOrder {
					assert.Less(t, PayloadOf(order-1), tt.requested, "order must be minimal")
				}
			}
		})
	}
}

func TestFittingOrder_RespectsMinOrder(t *testing.T) {
	order, ok := FittingOrder(1, 7, 12)
	assert.True(t, ok)
	assert.Equal(t, 7, order)

	order, ok = FittingOrder(200, 7, 12)
	assert.True(t, ok)
	assert.Equal(t, 8, order)
}

func TestPayloadOf(t *testing.T) {
	assert.Equal(t, 16, PayloadOf(5))
	assert.Equal(t, 2032, PayloadOf(11))
	assert.Equal(t, 4080, PayloadOf(12))
}

func TestBuddyOffset(t *testing.T) {
	assert.Equal(t, 2048, buddyOffset(0, 11))
	assert.Equal(t, 0, buddyOffset(2048, 11))
	assert.Equal(t, 96, buddyOffset(64, 5))
	assert.Equal(t, 64, buddyOffset(96, 5))
	assert.Equal(t, 1024+512, buddyOffset(1024, 9))
}
