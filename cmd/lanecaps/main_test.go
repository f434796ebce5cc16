package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lanes/lanes"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCaps(t *testing.T) {
	out, err := run(t, "caps")
	require.NoError(t, err)
	assert.Contains(t, out, "Dispatch level: "+lanes.CurrentName())
	for _, c := range lanes.Capabilities() {
		assert.Contains(t, out, c.String())
	}
}

func TestRoutesFilter(t *testing.T) {
	out, err := run(t, "routes", "--op", "rsqrt", "--kind", "f32")
	require.NoError(t, err)
	assert.Contains(t, out, "f32x4")
	assert.Contains(t, out, "f32x16")
	assert.NotContains(t, out, "f64x2")
	assert.Regexp(t, `\d+ of 4 routes accelerated`, out)

	_, err = run(t, "routes", "--op", "sqrt")
	assert.Error(t, err)
	_, err = run(t, "routes", "--kind", "f16")
	assert.Error(t, err)
}

func TestFilterRoutes(t *testing.T) {
	routes := []lanes.Route{
		{Op: lanes.OpMin, Shape: lanes.Shape{Kind: lanes.KindInt8, Lanes: 16}, Accelerated: true},
		{Op: lanes.OpMin, Shape: lanes.Shape{Kind: lanes.KindUint8, Lanes: 16}},
		{Op: lanes.OpEq, Shape: lanes.Shape{Kind: lanes.KindInt8, Lanes: 1}},
	}
	got, err := filterRoutes(routes, routesOptions{op: "min"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = filterRoutes(routes, routesOptions{kind: "i8"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = filterRoutes(routes, routesOptions{accelerated: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, lanes.KindInt8, got[0].Shape.Kind)
}

func TestEvalMax(t *testing.T) {
	out, err := run(t, "eval", "max", "i8x16",
		"1,1,1,1,1,1,1,1,0,0,0,0,0,0,0,0",
		"2,2,2,2,2,2,2,2,-1,-1,-1,-1,-1,-1,-1,-1")
	require.NoError(t, err)
	assert.Contains(t, out, "result:   [2 2 2 2 2 2 2 2 0 0 0 0 0 0 0 0]")
}

func TestEvalEqPrintsMask(t *testing.T) {
	out, err := run(t, "eval", "eq", "u16x8", "1,2,3,4,5,6,7,8", "1,0,3,0,5,0,7,0")
	require.NoError(t, err)
	assert.Contains(t, out, "result:   [0xffff 0x0000 0xffff 0x0000 0xffff 0x0000 0xffff 0x0000]")
}

func TestEvalSplatAndRSqrt(t *testing.T) {
	out, err := run(t, "eval", "rsqrt", "f64x2", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "result:   [0.5 0.5]")
}

func TestEvalErrors(t *testing.T) {
	tests := [][]string{
		{"eval", "rsqrt", "i32x4", "1"},
		{"eval", "min", "i32x4", "1"},
		{"eval", "min", "i32x3", "1", "2"},
		{"eval", "min", "i32x4", "1,2", "3"},
		{"eval", "min", "u8x16", "256", "1"},
		{"eval", "avg", "u8x16", "1", "1"},
		{"eval", "min"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := run(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestFormatLanes(t *testing.T) {
	v := lanes.MustLoad[int8](-1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14)
	assert.True(t, strings.HasPrefix(formatLanes(v, true), "[0xff 0x00 0x01 "))
	assert.True(t, strings.HasPrefix(formatLanes(v, false), "[-1 0 1 "))
}
