package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lutmap/blif"
	"github.com/katalvlaran/lutmap/builder"
	"github.com/katalvlaran/lutmap/netlist"
)

// randInputs fixes the primary input count of generated random DAGs, so a
// kind string only needs to carry the gate count and the seed.
const randInputs = 8

var genOutPath string

func newGenCmd() *cobra.Command {
	genCmd := &cobra.Command{
		Use:   "gen <kind>",
		Short: "Generate a benchmark network as BLIF",
		Long: `Emit one of the built-in benchmark networks:

    mux4, mux8          4:1 and 8:1 multiplexers
    ortree16            16-input balanced OR tree
    rand:<gates>:<seed> seeded random DAG over 8 inputs (gates >= 8)`,
		Args: cobra.ExactArgs(1),
		RunE: genFunc,
	}
	genCmd.Flags().StringVarP(&genOutPath, "output", "o", "", "output BLIF file (default stdout)")
	return genCmd
}

func genFunc(cmd *cobra.Command, args []string) error {
	n, err := generate(args[0])
	if err != nil {
		return err
	}
	return withOutput(genOutPath, func(w io.Writer) error {
		return blif.Write(w, n)
	})
}

// generate resolves a kind argument to a built network.
func generate(kind string) (*netlist.Network, error) {
	switch kind {
	case "mux4":
		return builder.Mux(4)
	case "mux8":
		return builder.Mux(8)
	case "ortree16":
		return builder.OrTree(16)
	}
	rest, ok := strings.CutPrefix(kind, "rand:")
	if !ok {
		return nil, fmt.Errorf("unknown kind %q (want mux4, mux8, ortree16 or rand:<gates>:<seed>)", kind)
	}
	parts := strings.Split(rest, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("rand kind wants rand:<gates>:<seed>, got %q", kind)
	}
	gates, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("rand gate count %q: %w", parts[0], err)
	}
	seed, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("rand seed %q: %w", parts[1], err)
	}
	return builder.RandomDAG(gates, randInputs, builder.WithSeed(seed))
}
