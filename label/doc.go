// Package label computes, for every node of a Boolean network, the minimum
// number of K-input LUT levels needed to implement the logic cone rooted at
// that node (the node's "label"), together with the cut of at most K nodes
// that realizes it. This is the FlowMap labeling phase; the cover package
// turns its Result into an actual LUT netlist.
//
// # Algorithm
//
// Nodes are visited in topological waves. For a gate v whose fan-ins carry
// labels at most p, the label is either p or p+1, decided by a max-flow
// test on v's fan-in cone:
//
//  1. v and every cone node labeled p collapse into the sink; every other
//     cone node splits into an in/out vertex pair joined by a unit-capacity
//     arc; remaining arcs are effectively infinite; a super source feeds
//     the cone's primary inputs.
//  2. If the max flow is at most K, a cut of at most K nodes separates v
//     from the inputs below level p, so label(v) = p. The cut is read off
//     the residual graph as the saturated frontier of source-side
//     reachability, which is the min-cut pushed furthest toward the
//     inputs (largest LUT cluster).
//  3. Otherwise label(v) = p+1 and the cut is v's distinct fan-ins, always
//     feasible for K >= 2.
//
// Augmentation stops as soon as the flow exceeds K, so each node costs at
// most K+1 breadth-first searches over its cone.
//
// The result is exact: label(output) equals the minimum depth achievable by
// any valid K-LUT mapping of the network.
//
// # Concurrency
//
// Gates sharing a longest-path level never appear in each other's cones, so
// a wave may be labeled in parallel. With Options.Workers > 1 each wave runs
// under an errgroup with that concurrency limit; wave barriers order the
// label writes, each slot is written by exactly one goroutine, and results
// are bit-identical to the sequential run.
//
// # Errors
//
//   - ErrNilNetwork: Compute(nil, ...).
//   - ErrInvalidK: K < 1.
//   - ErrInfeasible: K = 1 and some gate needs two distinct fan-ins.
//   - ErrDisconnected: the output cone contains no primary input.
//
// Complexity: O(K * E_cone) per gate, where E_cone is the arc count of the
// gate's cone network; memory is O(V) for the result plus transient cone
// structures.
package label
