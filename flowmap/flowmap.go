package flowmap

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lutmap/cover"
	"github.com/katalvlaran/lutmap/label"
	"github.com/katalvlaran/lutmap/netlist"
)

// Options bundles the knobs of every pipeline stage. The zero value is
// usable: K defaults to label.DefaultK, labeling runs sequentially and
// recovery iterates until no pass improves.
type Options struct {
	// K is the LUT input width. Zero selects label.DefaultK; negative
	// values are rejected with label.ErrInvalidK.
	K int

	// Workers bounds labeling parallelism. Values below 1 run sequentially.
	Workers int

	// CutLimit caps the per-node cut family during recovery.
	// Zero selects cover.DefaultCutLimit.
	CutLimit int

	// MaxPasses caps recovery passes; zero runs to a fixpoint.
	MaxPasses int

	// DisableRecovery stops the pipeline after emission, keeping the raw
	// depth-optimal cover.
	DisableRecovery bool

	// Ctx is consulted between labeling waves and recovery passes.
	// Nil means context.Background().
	Ctx context.Context

	// Logger receives per-stage diagnostics. Nil discards them.
	Logger logrus.FieldLogger
}

// DefaultOptions returns the standard pipeline: 4-input LUTs, sequential
// labeling, recovery until fixpoint.
func DefaultOptions() Options {
	return Options{K: label.DefaultK, Workers: 1, CutLimit: cover.DefaultCutLimit}
}

// Map runs label → emit → recover over n and returns the final mapping.
// The mapped depth always equals the optimum proven by the labeling stage;
// recovery may only reduce the LUT count.
//
// Stage errors pass through unchanged: label.ErrNilNetwork, label.ErrInvalidK,
// label.ErrDisconnected, label.ErrInfeasible, cover.ErrWideLUT and the
// netlist sentinels all remain matchable with errors.Is.
func Map(n *netlist.Network, opts Options) (*cover.Mapping, error) {
	// 1) Depth-optimal labels.
	res, err := label.Compute(n, label.Options{
		K:       opts.K,
		Workers: opts.Workers,
		Ctx:     opts.Ctx,
		Logger:  opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	// 2) Cover emission from the label cuts.
	co := cover.Options{
		CutLimit:  opts.CutLimit,
		MaxPasses: opts.MaxPasses,
		Ctx:       opts.Ctx,
		Logger:    opts.Logger,
	}
	m, err := cover.Emit(n, res, co)
	if err != nil {
		return nil, err
	}
	if opts.DisableRecovery {
		return m, nil
	}

	// 3) Depth-preserving area recovery.
	return cover.Recover(m, co)
}
