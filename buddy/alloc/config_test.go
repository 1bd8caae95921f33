package alloc

import (
	"context"
	"log/slog"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4096, cfg.ArenaSize())
	assert.Equal(t, 4080, cfg.PayloadCap())
	assert.Equal(t, BestFit, cfg.Policy)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"min order below header", Config{MinOrder: 3, MaxOrder: 12}},
		{"negative min order", Config{MinOrder: -1, MaxOrder: 12}},
		{"max not above min", Config{MinOrder: 6, MaxOrder: 6}},
		{"max order too large", Config{MinOrder: 4, MaxOrder: 31}},
		{"unknown policy", Config{MinOrder: 4, MaxOrder: 12, Policy: Policy(9)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.ErrorIs(t, err, ErrBadConfig)

			_, err = New(&tt.cfg)
			require.ErrorIs(t, err, ErrBadConfig)
		})
	}
}

func TestParsePolicy(t *testing.T) {
	for _, s := range []string{"best", "Best-Fit", " bestfit "} {
		p, err := ParsePolicy(s)
		require.NoError(t, err, s)
		assert.Equal(t, BestFit, p, s)
	}
	for _, s := range []string{"first", "FIRST-FIT", "firstfit"} {
		p, err := ParsePolicy(s)
		require.NoError(t, err, s)
		assert.Equal(t, FirstFit, p, s)
	}
	_, err := ParsePolicy("worst")
	require.ErrorIs(t, err, ErrBadConfig)
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "best-fit", BestFit.String())
	assert.Equal(t, "first-fit", FirstFit.String())
	assert.Equal(t, "Policy(7)", Policy(7).String())
}

func TestPtrString(t *testing.T) {
	assert.Equal(t, "0x0", Nil.String())
	assert.Equal(t, "0x1f40", Ptr(8000).String())
}

func TestDefaultLoggerDiscards(t *testing.T) {
	stubs := gostub.Stub(&logAlloc, false)
	defer stubs.Reset()

	a, err := New(&Config{MinOrder: 4, MaxOrder: 12})
	require.NoError(t, err)
	assert.False(t, a.log.Enabled(context.Background(), slog.LevelError),
		"rejections must not build records nobody reads")

	stubs.Stub(&logAlloc, true)
	assert.True(t, DefaultConfig().logger().Enabled(context.Background(), slog.LevelDebug))
}
