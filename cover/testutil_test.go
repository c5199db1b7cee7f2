package cover_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lutmap/cover"
	"github.com/katalvlaran/lutmap/label"
	"github.com/katalvlaran/lutmap/netlist"
)

// reconvergentDef is the shared five-gate fixture with reconvergent
// fan-out through and1.
func reconvergentDef() netlist.Def {
	return netlist.Def{
		Name:   "reconv",
		Inputs: []string{"a", "b", "c", "d"},
		Gates: []netlist.GateDef{
			{Name: "and1", Fn: netlist.FuncAnd, Fanin: [2]string{"a", "b"}},
			{Name: "and2", Fn: netlist.FuncAnd, Fanin: [2]string{"c", "d"}},
			{Name: "xor1", Fn: netlist.FuncXor, Fanin: [2]string{"and1", "and2"}},
			{Name: "or1", Fn: netlist.FuncOr, Fanin: [2]string{"and1", "c"}},
			{Name: "out", Fn: netlist.FuncOr, Fanin: [2]string{"xor1", "or1"}},
		},
		Output: "out",
	}
}

// wireDef is the gateless pass-through network.
func wireDef() netlist.Def {
	return netlist.Def{Inputs: []string{"a"}, Output: "a"}
}

func mustBuild(t *testing.T, def netlist.Def) *netlist.Network {
	t.Helper()
	n, err := netlist.Build(def)
	require.NoError(t, err)
	return n
}

func mustLabel(t *testing.T, n *netlist.Network, k int) *label.Result {
	t.Helper()
	o := label.DefaultOptions()
	o.K = k
	res, err := label.Compute(n, o)
	require.NoError(t, err)
	return res
}

func mustEmit(t *testing.T, n *netlist.Network, k int) *cover.Mapping {
	t.Helper()
	m, err := cover.Emit(n, mustLabel(t, n, k), cover.DefaultOptions())
	require.NoError(t, err)
	return m
}

// requireEquivalent replays every input assignment through both the gate
// network and the LUT circuit.
func requireEquivalent(t *testing.T, n *netlist.Network, m *cover.Mapping) {
	t.Helper()
	require.LessOrEqual(t, n.NumInputs(), 12, "fixture too wide for exhaustive replay")
	assign := make([]bool, n.NumInputs())
	for r := 0; r < 1<<n.NumInputs(); r++ {
		for i := range assign {
			assign[i] = r&(1<<i) != 0
		}
		want, err := n.Eval(assign)
		require.NoError(t, err)
		got, err := m.Eval(assign)
		require.NoError(t, err)
		require.Equal(t, want, got, "row %d", r)
	}
}

// cellNames maps a cell's input IDs to node names.
func cellNames(n *netlist.Network, ids []netlist.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = n.NodeName(id)
	}
	return out
}

// levelHistogram counts cells per level.
func levelHistogram(m *cover.Mapping) map[int]int {
	h := make(map[int]int)
	for _, c := range m.Cells() {
		h[c.Level]++
	}
	return h
}
