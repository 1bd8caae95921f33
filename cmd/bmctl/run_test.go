package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDriver(t *testing.T) {
	resetFlags(t)

	out, err := captureOutput(t, func() error { return runRun(nil) })
	require.NoError(t, err, "failing steps do not fail the run")

	assert.Contains(t, out, "[1] p1 = alloc(2000) -> 0x")
	assert.Contains(t, out, "[3] p3 = alloc(4081): alloc: invalid size")
	assert.Contains(t, out, "[5] free(p1-5): alloc: unknown pointer")
	assert.Equal(t, 6, strings.Count(out, "bm_list"), "one report per step")

	// After the last free nothing is left.
	last := out[strings.LastIndex(out, "[6]"):]
	assert.Contains(t, last, "total given memory:             0\n")
}

func TestRunStrictStopsAtFailure(t *testing.T) {
	resetFlags(t)
	runStrict = true

	out, err := captureOutput(t, func() error { return runRun(nil) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 3")
	assert.NotContains(t, out, "[4]")
}

func TestRunScenarioFile(t *testing.T) {
	resetFlags(t)
	path := writeScenario(t, `
[[step]]
op = "alloc"
name = "x"
size = 2000

[[step]]
op = "alloc"
name = "y"
size = 16

[[step]]
op = "free"
target = "x"

[[step]]
op = "policy"
policy = "first"

[[step]]
op = "alloc"
name = "z"
size = 100
`)
	runFinalOnly = true
	jsonOut = true

	out, err := captureOutput(t, func() error { return runRun([]string{path}) })
	require.NoError(t, err)

	var got jsonStep
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "first-fit", got.Report.Policy)
	require.NotEmpty(t, got.Report.Blocks)
	assert.True(t, got.Report.Blocks[0].Used, "first fit reuses the freed block at the arena start")
	assert.Equal(t, 7, got.Report.Blocks[0].Order)
}

func TestRunUnboundTarget(t *testing.T) {
	resetFlags(t)
	runStrict = true
	path := writeScenario(t, "[[step]]\nop = \"free\"\ntarget = \"ghost\"\n")

	_, err := captureOutput(t, func() error { return runRun([]string{path}) })
	require.ErrorIs(t, err, errUnboundName)
}

func TestSizes(t *testing.T) {
	resetFlags(t)

	out, err := captureOutput(t, runSizes)
	require.NoError(t, err)
	assert.NotContains(t, out, "\n    4 ", "order 4 is all header")
	assert.Contains(t, out, "    5         32         16  1..16\n")
	assert.Contains(t, out, "   12       4096       4080  2033..4080\n")

	jsonOut = true
	out, err = captureOutput(t, runSizes)
	require.NoError(t, err)
	var classes []sizeClass
	require.NoError(t, json.Unmarshal([]byte(out), &classes))
	require.Len(t, classes, 8)
	assert.Equal(t, sizeClass{Order: 5, Block: 32, Payload: 16, MinReq: 1}, classes[0])
	assert.Equal(t, 2033, classes[7].MinReq)
}
