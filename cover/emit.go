package cover

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lutmap/label"
	"github.com/katalvlaran/lutmap/netlist"
)

// Emit builds the LUT cover selected by a labeling result: one cell per
// gate reachable from the output driver through cut membership. The
// resulting depth equals res.Depth(), the proven optimum for res.K().
func Emit(n *netlist.Network, res *label.Result, opts Options) (*Mapping, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	if res == nil {
		return nil, ErrNilLabels
	}
	if res.Len() != n.Len() {
		return nil, fmt.Errorf("%w: %d labeled nodes, %d network nodes",
			ErrLabelMismatch, res.Len(), n.Len())
	}
	if res.K() > netlist.MaxTruthInputs {
		return nil, fmt.Errorf("%w: K=%d, limit %d", ErrWideLUT, res.K(), netlist.MaxTruthInputs)
	}
	o := opts.normalized()

	cells, depth := emitCells(n, res.Cut)
	o.Logger.WithFields(logrus.Fields{
		"k":     res.K(),
		"cells": len(cells),
		"depth": depth,
	}).Debug("cover: emitted")
	return newMapping(n, res.K(), depth, cells), nil
}

// emitCells materializes the cover defined by pick, which must return a
// valid cut for every gate. A worklist from the output driver marks the
// needed roots at most once each; cells are then assembled in topological
// order so input levels are ready when a root is reached. A driver that
// is itself a primary input yields an empty, depth-zero cover.
func emitCells(n *netlist.Network, pick func(netlist.ID) []netlist.ID) ([]Cell, int) {
	driver := n.Driver()
	if n.Kind(driver) == netlist.KindInput {
		return nil, 0
	}

	needed := make([]bool, n.Len())
	needed[driver] = true
	stack := []netlist.ID{driver}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, u := range pick(v) {
			if n.Kind(u) == netlist.KindInput || needed[u] {
				continue
			}
			needed[u] = true
			stack = append(stack, u)
		}
	}

	pos := topoPositions(n)
	level := make([]int, n.Len())
	val := make([]bool, n.Len())
	var cells []Cell
	depth := 0
	for _, v := range n.TopoOrder() {
		if !needed[v] {
			continue
		}
		cut := pick(v)
		lv := 0
		for _, u := range cut {
			if level[u]+1 > lv {
				lv = level[u] + 1
			}
		}
		level[v] = lv
		if lv > depth {
			depth = lv
		}
		cells = append(cells, Cell{
			Root:   v,
			Inputs: append([]netlist.ID(nil), cut...),
			Level:  lv,
			Truth:  clusterTruth(n, pos, val, v, cut),
		})
	}
	return cells, depth
}

// clusterTruth evaluates the logic cluster between cut and root over all
// 2^|cut| assignments; cut input i is bit i of the row index. The val
// arena is reused across calls, only cluster and cut slots are written.
func clusterTruth(n *netlist.Network, pos []int, val []bool, root netlist.ID, cut []netlist.ID) netlist.Truth {
	inCut := func(u netlist.ID) bool {
		for _, c := range cut {
			if c == u {
				return true
			}
		}
		return false
	}

	// Gather the cluster: root plus everything strictly between root and
	// the cut. The cut separates root from the inputs, so the walk only
	// meets gates.
	cluster := []netlist.ID{root}
	seen := map[netlist.ID]bool{root: true}
	stack := []netlist.ID{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, u := range n.Fanin(v) {
			if seen[u] || inCut(u) {
				continue
			}
			seen[u] = true
			cluster = append(cluster, u)
			stack = append(stack, u)
		}
	}
	sort.Slice(cluster, func(i, j int) bool { return pos[cluster[i]] < pos[cluster[j]] })

	t := netlist.NewTruth(len(cut))
	for r := 0; r < t.Rows(); r++ {
		for i, u := range cut {
			val[u] = r&(1<<i) != 0
		}
		for _, w := range cluster {
			f := n.Fanin(w)
			val[w] = n.Fn(w).Eval(val[f[0]], val[f[1]])
		}
		t.Set(r, val[root])
	}
	return t
}

// topoPositions maps each node ID to its topological rank.
func topoPositions(n *netlist.Network) []int {
	pos := make([]int, n.Len())
	for i, id := range n.TopoOrder() {
		pos[id] = i
	}
	return pos
}
