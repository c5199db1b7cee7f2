package label

import "github.com/katalvlaran/lutmap/netlist"

// infCap marks arcs that must never be saturated by a K-bounded flow.
const infCap = int32(1) << 30

// arc is one directed residual arc. rev indexes the reciprocal arc inside
// adj[to], so pushing flow updates exactly two capacities.
type arc struct {
	to  int32
	rev int32
	cap int32
}

// coneNet is the unit-capacity network that tests whether a gate's cone
// admits a cut of at most K nodes below the collapsed sink region.
//
// Every non-collapsed cone node u becomes a vertex pair in(u) = 2k and
// out(u) = 2k+1 joined by a unit arc, where k is u's dense local index.
// The super source feeds in(u) of each primary input; arcs between cone
// nodes and arcs into the collapsed region carry infCap. The collapsed
// region itself is contracted into the sink and owns no vertices.
type coneNet struct {
	adj    [][]arc
	member []netlist.ID         // local index k -> cone node
	local  map[netlist.ID]int32 // cone node -> local index k
	src    int32
	sink   int32
}

// buildConeNet assembles the flow network for one labeling test. The cone
// slice is ascending, so local indices and arc order are deterministic.
func buildConeNet(n *netlist.Network, cone []netlist.ID, collapsed func(netlist.ID) bool) *coneNet {
	// 1) Dense local indices for the non-collapsed cone nodes.
	f := &coneNet{local: make(map[netlist.ID]int32, len(cone))}
	for _, u := range cone {
		if collapsed(u) {
			continue
		}
		f.local[u] = int32(len(f.member))
		f.member = append(f.member, u)
	}
	nv := 2*len(f.member) + 2
	f.src = int32(nv - 2)
	f.sink = int32(nv - 1)
	f.adj = make([][]arc, nv)

	// 2) Unit split arcs, plus source arcs for primary inputs.
	for k, u := range f.member {
		f.addArc(int32(2*k), int32(2*k+1), 1)
		if n.Kind(u) == netlist.KindInput {
			f.addArc(f.src, int32(2*k), infCap)
		}
	}

	// 3) Cone wiring. Visiting each cone node's fan-ins covers every arc
	//    of the cone exactly once.
	for _, w := range cone {
		for _, u := range n.Fanin(w) {
			if collapsed(u) {
				// Arcs leaving the sink region cannot carry source flow.
				continue
			}
			uo := 2*f.local[u] + 1
			if collapsed(w) {
				f.addArc(uo, f.sink, infCap)
			} else {
				f.addArc(uo, 2*f.local[w], infCap)
			}
		}
	}
	return f
}

// addArc appends a forward arc and its zero-capacity reciprocal.
func (f *coneNet) addArc(from, to, c int32) {
	f.adj[from] = append(f.adj[from], arc{to: to, rev: int32(len(f.adj[to])), cap: c})
	f.adj[to] = append(f.adj[to], arc{to: from, rev: int32(len(f.adj[from]) - 1), cap: 0})
}

// maxflow runs breadth-first augmentation until no path remains or the
// total flow exceeds limit, and returns that total. Every augmenting path
// enters the network through a fresh unit split arc, so each round adds
// exactly one unit and at most limit+1 searches run.
func (f *coneNet) maxflow(limit int32) int32 {
	nv := len(f.adj)
	parentV := make([]int32, nv) // previous vertex on the BFS path
	parentA := make([]int32, nv) // arc index within adj[parentV]
	queue := make([]int32, 0, nv)

	var flow int32
	for flow <= limit {
		// 1) BFS over residual arcs from the source.
		for i := range parentV {
			parentV[i] = -1
		}
		parentV[f.src] = f.src
		queue = append(queue[:0], f.src)
		found := false
		for qi := 0; qi < len(queue) && !found; qi++ {
			u := queue[qi]
			for ai, a := range f.adj[u] {
				if a.cap <= 0 || parentV[a.to] >= 0 {
					continue
				}
				parentV[a.to] = u
				parentA[a.to] = int32(ai)
				if a.to == f.sink {
					found = true
					break
				}
				queue = append(queue, a.to)
			}
		}
		if !found {
			break
		}

		// 2) Bottleneck along the recorded parents.
		bottleneck := infCap
		for x := f.sink; x != f.src; x = parentV[x] {
			if c := f.adj[parentV[x]][parentA[x]].cap; c < bottleneck {
				bottleneck = c
			}
		}

		// 3) Push: forward capacity down, reciprocal capacity up.
		for x := f.sink; x != f.src; x = parentV[x] {
			a := &f.adj[parentV[x]][parentA[x]]
			a.cap -= bottleneck
			f.adj[a.to][a.rev].cap += bottleneck
		}
		flow += bottleneck
	}
	return flow
}

// mincut extracts the chosen cut after maxflow stayed within the limit:
// the cone nodes whose split arc crosses the residual source-reachable
// frontier. That frontier is the min cut pushed furthest toward the
// inputs, so the LUT cluster above it is as large as possible. Ascending
// ID order falls out of the member ordering.
func (f *coneNet) mincut() []netlist.ID {
	reach := make([]bool, len(f.adj))
	reach[f.src] = true
	queue := []int32{f.src}
	for qi := 0; qi < len(queue); qi++ {
		for _, a := range f.adj[queue[qi]] {
			if a.cap > 0 && !reach[a.to] {
				reach[a.to] = true
				queue = append(queue, a.to)
			}
		}
	}
	var cut []netlist.ID
	for k, u := range f.member {
		if reach[2*k] && !reach[2*k+1] {
			cut = append(cut, u)
		}
	}
	return cut
}
