package cover

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lutmap/netlist"
)

// Recover shrinks the mapping's LUT count without increasing its depth.
// Each pass scores candidate cuts by area flow under the current cover's
// reference counts, rebuilds the cover from the output, and adopts the
// rebuild only when it is strictly smaller at no depth cost; recovery
// stops at the first pass that fails to improve. The input mapping is
// never modified; when nothing improves, the returned mapping is m
// itself, which also makes Recover a fixed point on its own output.
func Recover(m *Mapping, opts Options) (*Mapping, error) {
	if m == nil {
		return nil, ErrNilMapping
	}
	o := opts.normalized()
	if len(m.cells) == 0 {
		return m, nil // wire cover, nothing to shrink
	}

	families, err := enumerateCuts(o.Ctx, m.net, m.k, o.CutLimit)
	if err != nil {
		return nil, err
	}

	cur := m
	for pass := 1; o.MaxPasses == 0 || pass <= o.MaxPasses; pass++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		next := rebuild(cur, families)
		accepted := next.depth <= cur.depth && next.LUTCount() < cur.LUTCount()
		o.Logger.WithFields(logrus.Fields{
			"pass":     pass,
			"cells":    next.LUTCount(),
			"depth":    next.depth,
			"accepted": accepted,
		}).Debug("cover: recovery pass")
		if !accepted {
			break
		}
		cur = next
	}
	return cur, nil
}

// rebuild selects one cut per gate by slack-gated area flow, then emits
// the cover those choices induce. It is deterministic in (cur, families),
// which is what makes accepted-only iteration idempotent.
func rebuild(cur *Mapping, families [][][]netlist.ID) *Mapping {
	n := cur.net
	target := cur.depth

	// 1) Reference counts and required times from the current cover.
	//    Cells run in reverse level order, so every consumer constrains
	//    its inputs before those are visited.
	refs := make([]int, n.Len())
	req := make([]int, n.Len())
	for i := range req {
		req[i] = math.MaxInt32
	}
	req[n.Driver()] = target
	refs[n.Driver()] = 1 // the primary output
	for i := len(cur.cells) - 1; i >= 0; i-- {
		c := cur.cells[i]
		r := req[c.Root] - 1
		for _, u := range c.Inputs {
			if r < req[u] {
				req[u] = r
			}
			refs[u]++
		}
	}

	// 2) Best cut per gate, bottom-up. Among cuts meeting the node's
	//    deadline the cheapest area flow wins; when none does, the
	//    earliest arrival keeps the choice sane. The acceptance check in
	//    Recover guards the depth, so stale slack can only cost quality,
	//    never correctness.
	arr := make([]int, n.Len())
	aflow := make([]float64, n.Len())
	choice := make([][]netlist.ID, n.Len())
	for _, v := range n.TopoOrder() {
		if n.Kind(v) != netlist.KindGate {
			continue
		}
		deadline := req[v]
		if deadline == math.MaxInt32 {
			deadline = target // node absent from the current cover
		}
		var best []netlist.ID
		bestArr, bestFlow := 0, 0.0
		bestOK := false
		for _, cut := range families[v] {
			a := 0
			f := 1.0
			for _, u := range cut {
				if arr[u]+1 > a {
					a = arr[u] + 1
				}
				share := refs[u]
				if share < 1 {
					share = 1
				}
				f += aflow[u] / float64(share)
			}
			ok := a <= deadline
			var replace bool
			switch {
			case best == nil:
				replace = true
			case ok != bestOK:
				replace = ok
			case ok:
				replace = flowLess(f, a, len(cut), bestFlow, bestArr, len(best))
			default:
				replace = a < bestArr || (a == bestArr && f < bestFlow)
			}
			if replace {
				best, bestArr, bestFlow, bestOK = cut, a, f, ok
			}
		}
		arr[v] = bestArr
		aflow[v] = bestFlow
		choice[v] = best
	}

	// 3) Emit the induced cover.
	cells, depth := emitCells(n, func(v netlist.ID) []netlist.ID { return choice[v] })
	return newMapping(n, cur.k, depth, cells)
}

// flowLess orders admissible candidates: area flow, then arrival, then
// cut size; remaining ties keep the earlier, smallest-first candidate.
func flowLess(f1 float64, a1, s1 int, f2 float64, a2, s2 int) bool {
	if f1 != f2 {
		return f1 < f2
	}
	if a1 != a2 {
		return a1 < a2
	}
	return s1 < s2
}
