package label_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lutmap/label"
	"github.com/katalvlaran/lutmap/netlist"
)

// reconvergentDef is a five-gate network with reconvergent fan-out:
//
//	and1 = a AND b
//	and2 = c AND d
//	xor1 = and1 XOR and2
//	or1  = and1 OR c
//	out  = xor1 OR or1
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

func mustBuild(t *testing.T, def netlist.Def) *netlist.Network {
	t.Helper()
	n, err := netlist.Build(def)
	require.NoError(t, err)
	return n
}

// names maps IDs to node names, preserving order.
func names(n *netlist.Network, ids []netlist.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = n.NodeName(id)
	}
	return out
}

// refLabels recomputes every label by explicit K-feasible cut enumeration,
// entirely independent of the flow-based engine. Each gate's cut family is
// the K-bounded cross product of its fan-in families plus the trivial self
// cut; the label is the best cut height plus one.
func refLabels(t *testing.T, n *netlist.Network, k int) []int {
	t.Helper()
	labels := make([]int, n.Len())
	cuts := make([][][]netlist.ID, n.Len())
	for _, v := range n.TopoOrder() {
		switch n.Kind(v) {
		case netlist.KindInput:
			cuts[v] = [][]netlist.ID{{v}}
		case netlist.KindGate:
			f := n.Fanin(v)
			seen := make(map[string]bool)
			var all [][]netlist.ID
			for _, ca := range cuts[f[0]] {
				for _, cb := range cuts[f[1]] {
					c := unionIDs(ca, cb)
					if len(c) > k || seen[fmt.Sprint(c)] {
						continue
					}
					seen[fmt.Sprint(c)] = true
					all = append(all, c)
				}
			}
			require.NotEmpty(t, all, "gate %s has no %d-feasible cut", n.NodeName(v), k)
			best := -1
			for _, c := range all {
				h := 0
				for _, u := range c {
					if labels[u] > h {
						h = labels[u]
					}
				}
				if best < 0 || h+1 < best {
					best = h + 1
				}
			}
			labels[v] = best
			cuts[v] = append(all, []netlist.ID{v})
		case netlist.KindOutput:
			labels[v] = labels[n.Driver()]
		}
	}
	return labels
}

// unionIDs merges two ascending ID slices without duplicates.
func unionIDs(a, b []netlist.ID) []netlist.ID {
	out := make([]netlist.ID, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j == len(b) || (i < len(a) && a[i] < b[j]):
			out = append(out, a[i])
			i++
		case i == len(a) || b[j] < a[i]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// requireCutInvariants asserts the structural cut contract for every gate:
// at most K nodes, root excluded, ascending order, every input path
// blocked, and a cut height consistent with the label.
func requireCutInvariants(t *testing.T, n *netlist.Network, res *label.Result) {
	t.Helper()
	for id := 0; id < n.Len(); id++ {
		v := netlist.ID(id)
		if n.Kind(v) != netlist.KindGate {
			require.Nil(t, res.Cut(v), "non-gate %s must carry no cut", n.NodeName(v))
			continue
		}
		cut := res.Cut(v)
		require.NotEmpty(t, cut, "gate %s", n.NodeName(v))
		require.LessOrEqual(t, len(cut), res.K(), "cut of %s too wide", n.NodeName(v))
		require.True(t, sort.SliceIsSorted(cut, func(i, j int) bool { return cut[i] < cut[j] }),
			"cut of %s not ascending", n.NodeName(v))
		height := 0
		for _, u := range cut {
			require.NotEqual(t, v, u, "cut of %s contains its own root", n.NodeName(v))
			if res.Label(u) > height {
				height = res.Label(u)
			}
		}
		require.LessOrEqual(t, height+1, res.Label(v), "cut height exceeds label of %s", n.NodeName(v))
		requireSeparates(t, n, v, cut)
	}
}

// requireSeparates walks backward from v, refusing to descend through cut
// nodes; reaching a primary input means some input path avoids the cut.
func requireSeparates(t *testing.T, n *netlist.Network, v netlist.ID, cut []netlist.ID) {
	t.Helper()
	blocked := make(map[netlist.ID]bool, len(cut))
	for _, u := range cut {
		blocked[u] = true
	}
	seen := map[netlist.ID]bool{v: true}
	stack := []netlist.ID{v}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		require.NotEqual(t, netlist.KindInput, n.Kind(u),
			"cut of %s misses input %s", n.NodeName(v), n.NodeName(u))
		for _, w := range n.Fanin(u) {
			if blocked[w] || seen[w] {
				continue
			}
			seen[w] = true
			stack = append(stack, w)
		}
	}
}
