package label

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lutmap/netlist"
)

// Compute labels every node of n for K-input LUTs and records one optimal
// cut per gate. The returned depth is provably minimal: no valid K-LUT
// mapping of n can be shallower. See the package documentation for the
// algorithm and the error conditions.
func Compute(n *netlist.Network, opts Options) (*Result, error) {
	// 1) Validate the network and the options.
	if n == nil {
		return nil, ErrNilNetwork
	}
	o := opts.normalized()
	if o.K < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidK, o.K)
	}
	driver := n.Driver()
	connected := false
	for _, u := range n.Cone(driver) {
		if n.Kind(u) == netlist.KindInput {
			connected = true
			break
		}
	}
	if !connected {
		return nil, fmt.Errorf("%w: output %q", ErrDisconnected, n.NodeName(n.Output()))
	}

	res := &Result{
		k:      o.K,
		labels: make([]int, n.Len()),
		cuts:   make([][]netlist.ID, n.Len()),
	}
	lb := &labeler{net: n, res: res, k: o.K, log: o.Logger}

	// 2) Label gates wave by wave. Gates sharing a longest-path level are
	//    never in each other's cones, so a wave can run in parallel; the
	//    Wait barrier publishes its labels to the next wave.
	levels := n.Levels()
	for depth := 1; depth < len(levels); depth++ {
		wave := levels[depth]
		o.Logger.WithFields(logrus.Fields{"level": depth, "gates": len(wave)}).Debug("label: wave")
		if o.Workers == 1 {
			for _, v := range wave {
				if err := o.Ctx.Err(); err != nil {
					return nil, err
				}
				if err := lb.labelNode(v); err != nil {
					return nil, err
				}
			}
			continue
		}
		g, ctx := errgroup.WithContext(o.Ctx)
		g.SetLimit(o.Workers)
		for _, v := range wave {
			v := v
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				return lb.labelNode(v)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	// 3) The output mirrors its driver; primary inputs stay at label 0.
	res.labels[n.Output()] = res.labels[driver]
	res.depth = res.labels[driver]
	o.Logger.WithFields(logrus.Fields{"k": o.K, "depth": res.depth}).Debug("label: done")
	return res, nil
}

// labeler bundles the shared read-only inputs and the write-once output
// slots of one Compute run. Each slot is written by exactly one goroutine
// and only read by later waves, so no locking is needed.
type labeler struct {
	net *netlist.Network
	res *Result
	k   int
	log logrus.FieldLogger
}

// labelNode decides label(v) and stores the matching cut.
func (l *labeler) labelNode(v netlist.ID) error {
	// 1) Fan-in label ceiling p and the trivial fan-in cut.
	fanin := l.net.Fanin(v)
	p := 0
	for _, u := range fanin {
		if lu := l.res.labels[u]; lu > p {
			p = lu
		}
	}
	trivial := distinct(fanin)

	// 2) p == 0 means every fan-in is a primary input, so the fan-ins are
	//    the only candidate cut and the label is 1.
	if p == 0 {
		if len(trivial) > l.k {
			return l.infeasible(v, len(trivial))
		}
		l.store(v, 1, trivial)
		return nil
	}

	// 3) Flow test: collapse v and the label-p part of its cone into the
	//    sink, then ask for a cut of at most K nodes below it.
	cone := l.net.Cone(v)
	fn := buildConeNet(l.net, cone, func(u netlist.ID) bool {
		return u == v || l.res.labels[u] == p
	})
	if fn.maxflow(int32(l.k)) <= int32(l.k) {
		l.store(v, p, fn.mincut())
		return nil
	}

	// 4) No such cut exists: the label grows by one and the fan-ins,
	//    all labeled at most p, form the cut.
	if len(trivial) > l.k {
		return l.infeasible(v, len(trivial))
	}
	l.store(v, p+1, trivial)
	return nil
}

// store writes the write-once label and cut slots for v.
func (l *labeler) store(v netlist.ID, lab int, cut []netlist.ID) {
	l.res.labels[v] = lab
	l.res.cuts[v] = cut
	l.log.WithFields(logrus.Fields{
		"node":  l.net.NodeName(v),
		"label": lab,
		"cut":   len(cut),
	}).Debug("label: node")
}

func (l *labeler) infeasible(v netlist.ID, need int) error {
	return fmt.Errorf("%w: gate %q needs %d distinct inputs, K=%d",
		ErrInfeasible, l.net.NodeName(v), need, l.k)
}

// distinct returns the unique fan-in IDs in ascending order. Gates carry
// exactly two fan-ins, which may coincide.
func distinct(fanin []netlist.ID) []netlist.ID {
	out := make([]netlist.ID, 0, len(fanin))
	for _, u := range fanin {
		dup := false
		for _, w := range out {
			if w == u {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
