package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lutmap/blif"
	"github.com/katalvlaran/lutmap/cover"
	"github.com/katalvlaran/lutmap/flowmap"
	"github.com/katalvlaran/lutmap/label"
	"github.com/katalvlaran/lutmap/netlist"
	"github.com/katalvlaran/lutmap/verify"
)

var (
	mapK          int
	mapInPath     string
	mapOutPath    string
	mapReportPath string
	mapVerify     bool
	mapNoRecover  bool
	mapWorkers    int
	mapCutLimit   int
	mapMaxPasses  int
	mapWatch      bool
)

func newMapCmd() *cobra.Command {
	mapCmd := &cobra.Command{
		Use:   "map",
		Short: "Map a BLIF network onto K-input LUTs",
		Long: `Read a network in the BLIF subset, compute a depth-optimal K-LUT
mapping with area recovery, and write the mapped netlist back out as BLIF.

    $ lutmap gen mux8 | lutmap map -k 4 --report report.yaml

With --watch the input file is remapped every time it changes.`,
		Args: cobra.NoArgs,
		RunE: mapFunc,
	}

	mapCmd.Flags().IntVarP(&mapK, "k", "k", label.DefaultK, "LUT input width")
	mapCmd.Flags().StringVarP(&mapInPath, "input", "i", "", "input BLIF file (default stdin)")
	mapCmd.Flags().StringVarP(&mapOutPath, "output", "o", "", "output BLIF file (default stdout)")
	mapCmd.Flags().StringVar(&mapReportPath, "report", "", "write a YAML mapping report to this path")
	mapCmd.Flags().BoolVar(&mapVerify, "verify", false, "prove network/mapping equivalence with a SAT miter")
	mapCmd.Flags().BoolVar(&mapNoRecover, "no-recovery", false, "keep the raw depth-optimal cover, skip area recovery")
	mapCmd.Flags().IntVar(&mapWorkers, "workers", 1, "parallel labeling workers")
	mapCmd.Flags().IntVar(&mapCutLimit, "cut-limit", cover.DefaultCutLimit, "cuts kept per node during recovery")
	mapCmd.Flags().IntVar(&mapMaxPasses, "max-passes", 0, "recovery pass cap, 0 runs to a fixpoint")
	mapCmd.Flags().BoolVar(&mapWatch, "watch", false, "remap whenever the input file changes")
	return mapCmd
}

func mapFunc(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if !mapWatch {
		return runMap(ctx)
	}
	if mapInPath == "" {
		return errors.New("--watch requires --input")
	}
	return watchLoop(ctx, mapInPath, func() error { return runMap(ctx) })
}

// runMap performs one read → map → verify → write cycle.
func runMap(ctx context.Context) error {
	var n *netlist.Network
	err := withInput(mapInPath, func(r io.Reader) error {
		var rerr error
		n, rerr = blif.Read(r)
		return rerr
	})
	if err != nil {
		return err
	}

	m, err := flowmap.Map(n, flowmap.Options{
		K:               mapK,
		Workers:         mapWorkers,
		CutLimit:        mapCutLimit,
		MaxPasses:       mapMaxPasses,
		DisableRecovery: mapNoRecover,
		Ctx:             ctx,
		Logger:          log.StandardLogger(),
	})
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"model": n.Name(),
		"k":     m.K(),
		"depth": m.Depth(),
		"luts":  m.LUTCount(),
	}).Info("mapped")

	verdict := ""
	if mapVerify {
		ok, cex, verr := verify.Equivalent(n, m)
		if verr != nil {
			return verr
		}
		if !ok {
			return fmt.Errorf("verification failed: counterexample %v", cex)
		}
		verdict = "equivalent"
		log.Info("verified")
	}

	if mapReportPath != "" {
		if err := writeReport(mapReportPath, n, m, verdict); err != nil {
			return err
		}
	}
	return withOutput(mapOutPath, func(w io.Writer) error {
		return blif.WriteMapping(w, m)
	})
}
