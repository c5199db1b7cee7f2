package blif_test

import (
	"os"

	"github.com/katalvlaran/lutmap/blif"
	"github.com/katalvlaran/lutmap/netlist"
)

// ExampleWrite serializes a one-gate network.
func ExampleWrite() {
	n, err := netlist.Build(netlist.Def{
		Name:   "demo",
		Inputs: []string{"a", "b"},
		Gates: []netlist.GateDef{
			{Name: "y", Fn: netlist.FuncAnd, Fanin: [2]string{"a", "b"}},
		},
		Output: "y",
	})
	if err != nil {
		panic(err)
	}
	if err := blif.Write(os.Stdout, n); err != nil {
		panic(err)
	}
	// Output:
	// .model demo
	// .inputs a b
	// .outputs y
	// .names a b y
	// 11 1
	// .end
}
