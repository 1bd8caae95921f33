package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	resetFlags(t)

	out, err := captureOutput(t, runVersion)
	require.NoError(t, err)
	assert.Contains(t, out, "bmctl dev\n")
	assert.Contains(t, out, "geometry: 16B header, 16B min block, 4096B arena, 4080B max request\n")

	jsonOut = true
	out, err = captureOutput(t, runVersion)
	require.NoError(t, err)
	var info versionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, 4080, info.PayloadCap)
}
