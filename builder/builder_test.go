// Package builder_test verifies generator shapes, semantics, determinism,
// and validation errors.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lutmap/builder"
	"github.com/katalvlaran/lutmap/netlist"
)

// gateCount reports the number of gate nodes in n.
func gateCount(n *netlist.Network) int {
	return n.Len() - n.NumInputs() - 1
}

// ceilLog2 returns the smallest d with 2^d >= v.
func ceilLog2(v int) int {
	d := 0
	for 1<<d < v {
		d++
	}
	return d
}

// TestMuxSemantics evaluates every multiplexer row against the expected
// data-line selection.
func TestMuxSemantics(t *testing.T) {
	t.Parallel()
	for _, ways := range []int{2, 4, 8} {
		n, err := builder.Mux(ways)
		require.NoError(t, err)
		bits := ceilLog2(ways)
		require.Equal(t, bits+ways, n.NumInputs(), "ways=%d", ways)

		assign := make([]bool, n.NumInputs())
		for r := 0; r < 1<<n.NumInputs(); r++ {
			sel := 0
			for i := range assign {
				assign[i] = r&(1<<i) != 0
				if assign[i] && i < bits {
					sel |= 1 << i
				}
			}
			got, err := n.Eval(assign)
			require.NoError(t, err)
			require.Equal(t, assign[bits+sel], got, "ways=%d row=%d", ways, r)
		}
	}
}

// TestMuxShape pins the gate count, gate depth, and input ordering of the
// 4:1 multiplexer.
func TestMuxShape(t *testing.T) {
	t.Parallel()
	n, err := builder.Mux(4)
	require.NoError(t, err)
	require.Equal(t, 11, gateCount(n))
	require.Equal(t, 4, n.GateDepth())

	got := make([]string, 0, n.NumInputs())
	for _, id := range n.Inputs() {
		got = append(got, n.NodeName(id))
	}
	require.Equal(t, []string{"s0", "s1", "d0", "d1", "d2", "d3"}, got)
}

// TestOrTree checks disjunction semantics and logarithmic depth,
// including widths that leave a carry term on some level.
func TestOrTree(t *testing.T) {
	t.Parallel()
	for _, width := range []int{2, 3, 5, 8} {
		n, err := builder.OrTree(width)
		require.NoError(t, err)
		require.Equal(t, ceilLog2(width), n.GateDepth(), "width=%d", width)

		assign := make([]bool, width)
		for r := 0; r < 1<<width; r++ {
			any := false
			for i := range assign {
				assign[i] = r&(1<<i) != 0
				any = any || assign[i]
			}
			got, err := n.Eval(assign)
			require.NoError(t, err)
			require.Equal(t, any, got, "width=%d row=%d", width, r)
		}
	}
}

// TestRandomDAGValidity relies on Build's structural checks: a generator
// bug (dangling signal, cycle) would surface as a build error.
func TestRandomDAGValidity(t *testing.T) {
	t.Parallel()
	for seed := int64(1); seed <= 5; seed++ {
		n, err := builder.RandomDAG(40, 6, builder.WithSeed(seed))
		require.NoError(t, err, "seed=%d", seed)
		require.Equal(t, 40, gateCount(n))
		require.Equal(t, 6, n.NumInputs())
	}
}

// TestRandomDAGDeterminism: equal seeds reproduce the network, different
// seeds diverge.
func TestRandomDAGDeterminism(t *testing.T) {
	t.Parallel()
	a, err := builder.RandomDAG(60, 8, builder.WithSeed(9))
	require.NoError(t, err)
	b, err := builder.RandomDAG(60, 8, builder.WithSeed(9))
	require.NoError(t, err)
	require.Equal(t, a.Def(), b.Def())

	c, err := builder.RandomDAG(60, 8, builder.WithSeed(10))
	require.NoError(t, err)
	require.NotEqual(t, a.Def(), c.Def())
}

// TestNamePrefix: every generated signal carries the prefix.
func TestNamePrefix(t *testing.T) {
	t.Parallel()
	n, err := builder.Mux(2, builder.WithNamePrefix("u_"))
	require.NoError(t, err)
	for _, want := range []string{"u_s0", "u_d0", "u_d1", "u_p0", "u_p1"} {
		_, ok := n.Lookup(want)
		require.True(t, ok, "missing signal %s", want)
	}
}

// TestShapeErrors covers the validation sentinels.
func TestShapeErrors(t *testing.T) {
	t.Parallel()
	_, err := builder.Mux(3)
	require.ErrorIs(t, err, builder.ErrBadShape)
	_, err = builder.Mux(0)
	require.ErrorIs(t, err, builder.ErrBadShape)
	_, err = builder.OrTree(1)
	require.ErrorIs(t, err, builder.ErrBadShape)
	_, err = builder.RandomDAG(2, 3, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrBadShape)
	_, err = builder.RandomDAG(5, 2)
	require.ErrorIs(t, err, builder.ErrNeedRand)
}

// TestOptionPanics: programmer errors in options fail fast.
func TestOptionPanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { _, _ = builder.Mux(2, nil) })
}
