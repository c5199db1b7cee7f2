package cover

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lutmap/netlist"
)

// DefaultCutLimit bounds the per-gate cut family kept during recovery.
const DefaultCutLimit = 16

// Options configures emission and recovery.
//   - CutLimit: cuts kept per gate during recovery, smallest first
//     (default 16). Larger values explore more candidates at more cost.
//   - MaxPasses: cap on accepted recovery passes; 0 means run until no
//     pass improves the mapping (always terminates, every accepted pass
//     removes at least one LUT).
//   - Ctx: optional cancellation context checked between passes and
//     during cut enumeration.
//   - Logger: optional structured logger; nil discards all output.
type Options struct {
	CutLimit  int
	MaxPasses int
	Ctx       context.Context
	Logger    logrus.FieldLogger
}

// DefaultOptions returns the canonical defaults: 16 cuts per gate,
// recovery to fixpoint, no cancellation, silent logger.
func DefaultOptions() Options {
	return Options{CutLimit: DefaultCutLimit}
}

// normalized fills zero-valued fields with their defaults.
func (o Options) normalized() Options {
	if o.CutLimit <= 0 {
		o.CutLimit = DefaultCutLimit
	}
	if o.MaxPasses < 0 {
		o.MaxPasses = 0
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.Logger = l
	}
	return o
}

// Cell is one LUT: it computes Truth over Inputs and drives the signal
// that node Root drove in the source network. Inputs are other cell
// roots or primary inputs, ascending by ID; input i is bit i of the
// truth-table row index. Level is 1 plus the maximum input level, with
// primary inputs at level 0.
type Cell struct {
	Root   netlist.ID
	Inputs []netlist.ID
	Level  int
	Truth  netlist.Truth
}

// Mapping is a complete LUT cover of one network: cells sorted by
// (Level, Root), exactly one per covered gate, with the output driver
// covered last. All fields are written once during construction and
// read-only afterwards.
type Mapping struct {
	net   *netlist.Network
	k     int
	depth int
	cells []Cell
	index map[netlist.ID]int
}

// newMapping orders cells by (Level, Root) and indexes them by root.
func newMapping(n *netlist.Network, k, depth int, cells []Cell) *Mapping {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Level != cells[j].Level {
			return cells[i].Level < cells[j].Level
		}
		return cells[i].Root < cells[j].Root
	})
	index := make(map[netlist.ID]int, len(cells))
	for i, c := range cells {
		index[c.Root] = i
	}
	return &Mapping{net: n, k: k, depth: depth, cells: cells, index: index}
}

// Network returns the source network the mapping covers.
func (m *Mapping) Network() *netlist.Network { return m.net }

// K reports the LUT input width.
func (m *Mapping) K() int { return m.k }

// Depth reports the number of LUT levels on the longest path.
func (m *Mapping) Depth() int { return m.depth }

// LUTCount reports the number of cells.
func (m *Mapping) LUTCount() int { return len(m.cells) }

// Cells returns the cells sorted by (Level, Root). The slice is internal
// storage; callers must not modify it.
func (m *Mapping) Cells() []Cell { return m.cells }

// Cell returns the cell rooted at the given node, if any.
func (m *Mapping) Cell(root netlist.ID) (Cell, bool) {
	i, ok := m.index[root]
	if !ok {
		return Cell{}, false
	}
	return m.cells[i], true
}

// Eval runs the LUT circuit on one input assignment, ordered like
// Network().Inputs(). It never consults the source gates, so it checks
// what was actually emitted.
func (m *Mapping) Eval(assign []bool) (bool, error) {
	if len(assign) != m.net.NumInputs() {
		return false, fmt.Errorf("cover: want %d assignments, got %d: %w",
			m.net.NumInputs(), len(assign), netlist.ErrBadAssignment)
	}
	val := make([]bool, m.net.Len())
	for i, id := range m.net.Inputs() {
		val[id] = assign[i]
	}
	// Level order guarantees every cell input is already computed.
	for _, c := range m.cells {
		row := 0
		for i, u := range c.Inputs {
			if val[u] {
				row |= 1 << i
			}
		}
		val[c.Root] = c.Truth.Get(row)
	}
	return val[m.net.Driver()], nil
}
