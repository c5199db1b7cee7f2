package blif

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/lutmap/cover"
	"github.com/katalvlaran/lutmap/netlist"
)

// Write serializes the network in the package subset: the model frame,
// then one two-input .names table per gate in construction order, with one
// ON-set row per true truth-table row.
func Write(w io.Writer, n *netlist.Network) error {
	if n == nil {
		return ErrNilNetwork
	}
	bw := bufio.NewWriter(w)
	writeFrame(bw, n)
	for _, g := range n.Def().Gates {
		fmt.Fprintf(bw, ".names %s %s %s\n", g.Fanin[0], g.Fanin[1], g.Name)
		for r := 0; r < 4; r++ {
			if g.Fn&(1<<r) == 0 {
				continue
			}
			bw.WriteByte(byte('0' + r&1))
			bw.WriteByte(byte('0' + r>>1&1))
			bw.WriteString(" 1\n")
		}
	}
	bw.WriteString(".end\n")
	return bw.Flush()
}

// WriteMapping serializes a mapped network: the same model frame, one
// K-input .names table per LUT cell in level order.
func WriteMapping(w io.Writer, m *cover.Mapping) error {
	if m == nil {
		return ErrNilMapping
	}
	n := m.Network()
	bw := bufio.NewWriter(w)
	writeFrame(bw, n)
	for _, c := range m.Cells() {
		bw.WriteString(".names")
		for _, in := range c.Inputs {
			bw.WriteByte(' ')
			bw.WriteString(n.NodeName(in))
		}
		bw.WriteByte(' ')
		bw.WriteString(n.NodeName(c.Root))
		bw.WriteByte('\n')
		writeTruthRows(bw, c.Truth)
	}
	bw.WriteString(".end\n")
	return bw.Flush()
}

// writeFrame emits the .model/.inputs/.outputs preamble.
func writeFrame(bw *bufio.Writer, n *netlist.Network) {
	fmt.Fprintf(bw, ".model %s\n", n.Name())
	bw.WriteString(".inputs")
	for _, id := range n.Inputs() {
		bw.WriteByte(' ')
		bw.WriteString(n.NodeName(id))
	}
	bw.WriteByte('\n')
	fmt.Fprintf(bw, ".outputs %s\n", n.NodeName(n.Output()))
}

// writeTruthRows lists the ON-set of a cell table, one minterm per row,
// input 0 in the leftmost pattern column.
func writeTruthRows(bw *bufio.Writer, t netlist.Truth) {
	for r := 0; r < t.Rows(); r++ {
		if !t.Get(r) {
			continue
		}
		for i := 0; i < t.Inputs(); i++ {
			bw.WriteByte(byte('0' + r>>i&1))
		}
		bw.WriteString(" 1\n")
	}
}
