package cover_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lutmap/builder"
	"github.com/katalvlaran/lutmap/cover"
	"github.com/katalvlaran/lutmap/label"
	"github.com/katalvlaran/lutmap/netlist"
)

// EmitSuite groups the LUT emission tests.
type EmitSuite struct {
	suite.Suite
}

// TestReconvergent: two cells suffice at K=3; the root LUT swallows
// xor1, or1, and and2 behind the cut {c, d, and1}.
func (s *EmitSuite) TestReconvergent() {
	n := mustBuild(s.T(), reconvergentDef())
	m := mustEmit(s.T(), n, 3)

	require.Equal(s.T(), 2, m.LUTCount())
	require.Equal(s.T(), 2, m.Depth())

	and1, _ := n.Lookup("and1")
	c1, ok := m.Cell(and1)
	require.True(s.T(), ok)
	require.Equal(s.T(), []string{"a", "b"}, cellNames(n, c1.Inputs))
	require.Equal(s.T(), 1, c1.Level)
	require.Equal(s.T(), "1000", c1.Truth.String(), "cell must compute AND")

	root, ok := m.Cell(n.Driver())
	require.True(s.T(), ok)
	require.Equal(s.T(), []string{"c", "d", "and1"}, cellNames(n, root.Inputs))
	require.Equal(s.T(), 2, root.Level)

	requireEquivalent(s.T(), n, m)
}

// TestMux pins the classic 4:1 multiplexer shape at K=3: four data-select
// LUTs, two pair ORs, one final OR.
func (s *EmitSuite) TestMux() {
	n, err := builder.Mux(4)
	require.NoError(s.T(), err)
	m := mustEmit(s.T(), n, 3)

	require.Equal(s.T(), 7, m.LUTCount())
	require.Equal(s.T(), 3, m.Depth())
	require.Equal(s.T(), map[int]int{1: 4, 2: 2, 3: 1}, levelHistogram(m))

	// Every level-1 cell reads both selects and one data line.
	for _, c := range m.Cells() {
		if c.Level != 1 {
			continue
		}
		names := cellNames(n, c.Inputs)
		require.Len(s.T(), names, 3)
		require.Equal(s.T(), []string{"s0", "s1"}, names[:2])
	}

	requireEquivalent(s.T(), n, m)
}

// TestWire: a pass-through network maps to zero LUTs at depth zero, and
// the mapping still evaluates.
func (s *EmitSuite) TestWire() {
	n := mustBuild(s.T(), wireDef())
	m := mustEmit(s.T(), n, 4)

	require.Equal(s.T(), 0, m.LUTCount())
	require.Equal(s.T(), 0, m.Depth())
	got, err := m.Eval([]bool{true})
	require.NoError(s.T(), err)
	require.True(s.T(), got)
}

// TestSingleLUT: K covering all inputs folds the network into one cell
// whose truth table is the network's own.
func (s *EmitSuite) TestSingleLUT() {
	n := mustBuild(s.T(), reconvergentDef())
	m := mustEmit(s.T(), n, 4)

	require.Equal(s.T(), 1, m.LUTCount())
	require.Equal(s.T(), 1, m.Depth())
	root, ok := m.Cell(n.Driver())
	require.True(s.T(), ok)
	require.Equal(s.T(), []string{"a", "b", "c", "d"}, cellNames(n, root.Inputs))
	require.True(s.T(), n.TruthTable().Equal(root.Truth))
}

// TestCellOrder: cells are sorted by level, then root.
func (s *EmitSuite) TestCellOrder() {
	n, err := builder.RandomDAG(30, 6, builder.WithSeed(4))
	require.NoError(s.T(), err)
	m := mustEmit(s.T(), n, 4)

	cells := m.Cells()
	for i := 1; i < len(cells); i++ {
		a, b := cells[i-1], cells[i]
		require.True(s.T(), a.Level < b.Level || (a.Level == b.Level && a.Root < b.Root),
			"cells out of order at %d", i)
	}
	requireEquivalent(s.T(), n, m)
}

// TestErrors covers nil and mismatched arguments.
func (s *EmitSuite) TestErrors() {
	n := mustBuild(s.T(), reconvergentDef())
	res := mustLabel(s.T(), n, 3)

	_, err := cover.Emit(nil, res, cover.DefaultOptions())
	require.ErrorIs(s.T(), err, cover.ErrNilNetwork)

	_, err = cover.Emit(n, nil, cover.DefaultOptions())
	require.ErrorIs(s.T(), err, cover.ErrNilLabels)

	other, err := builder.Mux(4)
	require.NoError(s.T(), err)
	_, err = cover.Emit(other, res, cover.DefaultOptions())
	require.ErrorIs(s.T(), err, cover.ErrLabelMismatch)
}

// TestEvalArity: a short assignment is rejected with the netlist
// sentinel.
func (s *EmitSuite) TestEvalArity() {
	n := mustBuild(s.T(), reconvergentDef())
	m := mustEmit(s.T(), n, 3)

	_, err := m.Eval([]bool{true})
	require.ErrorIs(s.T(), err, netlist.ErrBadAssignment)
}

// TestMissingCell: looking up a node that is not a cell root.
func (s *EmitSuite) TestMissingCell() {
	n := mustBuild(s.T(), reconvergentDef())
	m := mustEmit(s.T(), n, 3)

	xor1, _ := n.Lookup("xor1") // absorbed into the root LUT
	_, ok := m.Cell(xor1)
	require.False(s.T(), ok)

	require.Equal(s.T(), n, m.Network())
	require.Equal(s.T(), 3, m.K())
}

func TestEmitSuite(t *testing.T) {
	suite.Run(t, new(EmitSuite))
}

// TestWideLUT guards the truth-table width limit without building an
// impossible fixture: the labeling itself is cheap, emission must refuse.
func TestWideLUT(t *testing.T) {
	inputs := make([]string, 32)
	names := make([]string, 32)
	for i := range inputs {
		inputs[i] = string(rune('a'+i%26)) + string(rune('0'+i/26))
		names[i] = inputs[i]
	}
	def := netlist.Def{Inputs: inputs, Gates: []netlist.GateDef{
		{Name: "g0", Fn: netlist.FuncOr, Fanin: [2]string{names[0], names[1]}},
	}, Output: "g0"}
	for i := 2; i < 32; i++ {
		def.Gates = append(def.Gates, netlist.GateDef{
			Name:  "g" + names[i],
			Fn:    netlist.FuncOr,
			Fanin: [2]string{def.Gates[len(def.Gates)-1].Name, names[i]},
		})
	}
	def.Output = def.Gates[len(def.Gates)-1].Name

	n, err := netlist.Build(def)
	require.NoError(t, err)
	o := label.DefaultOptions()
	o.K = 32
	res, err := label.Compute(n, o)
	require.NoError(t, err)

	_, err = cover.Emit(n, res, cover.DefaultOptions())
	require.ErrorIs(t, err, cover.ErrWideLUT)
}
