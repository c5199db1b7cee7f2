package cover

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/lutmap/netlist"
)

// enumerateCuts returns, for every gate, its K-feasible cuts excluding the
// trivial self cut: ascending node lists, minimal under inclusion, capped
// at limit with smallest-first preference. Families compose bottom-up as
// the K-bounded cross product of the fan-in families, each fan-in
// contributing its own self cut. The merge of the two self cuts is either
// kept or dominated by a smaller member, so any gate with a K-feasible cut
// has a non-empty family.
func enumerateCuts(ctx context.Context, n *netlist.Network, k, limit int) ([][][]netlist.ID, error) {
	comp := make([][][]netlist.ID, n.Len()) // with self cut, for composition
	sel := make([][][]netlist.ID, n.Len())  // without self cut, for selection
	for _, v := range n.TopoOrder() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch n.Kind(v) {
		case netlist.KindInput:
			comp[v] = [][]netlist.ID{{v}}
		case netlist.KindGate:
			f := n.Fanin(v)
			cuts := crossCuts(comp[f[0]], comp[f[1]], k)
			cuts = minimalCuts(cuts)
			sortCuts(cuts)
			if len(cuts) > limit {
				cuts = cuts[:limit]
			}
			sel[v] = cuts
			comp[v] = append([][]netlist.ID{{v}}, cuts...)
		}
	}
	return sel, nil
}

// crossCuts merges every pair of fan-in cuts, dropping oversized and
// duplicate unions while preserving first-seen order.
func crossCuts(a, b [][]netlist.ID, k int) [][]netlist.ID {
	seen := make(map[string]bool, len(a)*len(b))
	var out [][]netlist.ID
	for _, ca := range a {
		for _, cb := range b {
			c := mergeIDs(ca, cb)
			if len(c) > k || seen[fmt.Sprint(c)] {
				continue
			}
			seen[fmt.Sprint(c)] = true
			out = append(out, c)
		}
	}
	return out
}

// mergeIDs unions two ascending ID slices.
func mergeIDs(a, b []netlist.ID) []netlist.ID {
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

// minimalCuts drops every cut that contains a smaller cut.
func minimalCuts(cuts [][]netlist.ID) [][]netlist.ID {
	sort.SliceStable(cuts, func(i, j int) bool { return len(cuts[i]) < len(cuts[j]) })
	out := cuts[:0:0]
	for _, c := range cuts {
		keep := true
		for _, m := range out {
			if containsAll(c, m) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, c)
		}
	}
	return out
}

// containsAll reports whether ascending slice big contains every element
// of ascending slice small.
func containsAll(big, small []netlist.ID) bool {
	i := 0
	for _, s := range small {
		for i < len(big) && big[i] < s {
			i++
		}
		if i == len(big) || big[i] != s {
			return false
		}
		i++
	}
	return true
}

// sortCuts orders by size, then lexicographically by node IDs.
func sortCuts(cuts [][]netlist.ID) {
	sort.Slice(cuts, func(i, j int) bool {
		a, b := cuts[i], cuts[j]
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		for x := range a {
			if a[x] != b[x] {
				return a[x] < b[x]
			}
		}
		return false
	})
}
