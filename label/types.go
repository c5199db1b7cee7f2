package label

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lutmap/netlist"
)

// DefaultK is the LUT input width assumed when Options.K is zero.
const DefaultK = 4

// Options configures a labeling run.
//   - K: LUT input width; every chosen cut has at most K nodes (default 4).
//   - Workers: goroutines labeling each topological wave; values below 1
//     mean sequential (default 1). Results do not depend on Workers.
//   - Ctx: optional cancellation context checked between nodes.
//   - Logger: optional structured logger for per-wave and per-node traces;
//     nil discards all output.
type Options struct {
	K       int
	Workers int
	Ctx     context.Context
	Logger  logrus.FieldLogger
}

// DefaultOptions returns the canonical defaults: 4-input LUTs, sequential
// labeling, no cancellation, silent logger.
func DefaultOptions() Options {
	return Options{K: DefaultK, Workers: 1}
}

// normalized fills zero-valued fields with their defaults.
func (o Options) normalized() Options {
	if o.K == 0 {
		o.K = DefaultK
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = nopLogger()
	}
	return o
}

// nopLogger builds a logrus instance that writes nowhere.
func nopLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Result holds the labels and cuts computed for one network. All slices are
// written exactly once during Compute and are read-only afterwards; Cut
// returns internal storage that callers must not modify.
type Result struct {
	k      int
	depth  int
	labels []int
	cuts   [][]netlist.ID
}

// K reports the LUT input width the labels were computed for.
func (r *Result) K() int { return r.k }

// Len reports the node count of the labeled network.
func (r *Result) Len() int { return len(r.labels) }

// Depth reports the label of the output node: the minimum number of LUT
// levels any K-feasible mapping of the network can achieve.
func (r *Result) Depth() int { return r.depth }

// Label reports the label of node v. Primary inputs carry label 0; the
// output node carries its driver's label.
func (r *Result) Label(v netlist.ID) int { return r.labels[v] }

// Cut reports the chosen cut for gate v, in ascending ID order. The cut has
// at most K nodes, none of them v, and every path from a primary input to v
// passes through it. Inputs and the output node have no cut (nil).
func (r *Result) Cut(v netlist.ID) []netlist.ID { return r.cuts[v] }
