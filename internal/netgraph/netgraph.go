// Package netgraph builds the random connected peer-connectivity graph. It
// is an external collaborator of the engine — construction consumes no core
// state and imposes no design constraint on it — but is specified fully
// since it is part of the complete program.
//
// Graph storage and the connectivity check are built on
// gonum.org/v1/gonum/graph/simple and gonum.org/v1/gonum/graph/topo — a real
// dependency of the example pack (see shubhamdubey02-coreth/go.mod,
// Klingon-tech-klingnet/go.mod) — rather than a hand-rolled adjacency-list
// connectivity check.
package netgraph

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/klaytn-labs/p2psim/internal/simlog"
	"github.com/klaytn-labs/p2psim/internal/simrand"
)

var logger = simlog.NewModuleLogger(simlog.ModuleNetGraph)

// Graph is the built network: n nodes, every pair (Edges) connected by an
// undirected link, every node's degree within [minDegree, maxDegree].
type Graph struct {
	N     int
	Edges [][2]int
}

const (
	minDegree = 3
	maxDegree = 6
)

// Build constructs a connected Watts-Strogatz small-world graph over n
// peers, retrying with a freshly chosen ring degree until every node's
// degree lands in [3,6] — mirroring original_source/main.py's
// `while not all(3 <= degree <= 6 ...)` retry loop.
func Build(rng *simrand.Source, n int) Graph {
	for attempt := 1; ; attempt++ {
		k := 2 * rng.IntRangeInclusive(2, 3) // ring degree, even, drawn like randint(3,6) rounded to an even lattice degree
		edges := wattsStrogatz(rng, n, k, 0.5)
		if connected(n, edges) && degreesInBounds(n, edges) {
			return Graph{N: n, Edges: edges}
		}
		logger.Debugw("rejecting candidate graph, retrying", "n", n, "k", k, "attempt", attempt)
	}
}

// wattsStrogatz builds a ring lattice of degree k (each node joined to its
// k/2 nearest neighbors on each side) and rewires each lattice edge with
// probability p, the standard Watts-Strogatz construction.
func wattsStrogatz(rng *simrand.Source, n, k int, p float64) [][2]int {
	type pair struct{ a, b int }
	edgeSet := make(map[pair]bool)

	norm := func(a, b int) pair {
		if a > b {
			a, b = b, a
		}
		return pair{a, b}
	}

	for i := 0; i < n; i++ {
		for j := 1; j <= k/2; j++ {
			edgeSet[norm(i, (i+j)%n)] = true
		}
	}

	for i := 0; i < n; i++ {
		for j := 1; j <= k/2; j++ {
			a, b := i, (i+j)%n
			if rng.Uniform(0, 1) >= p {
				continue
			}
			// Rewire a-b to a-w for a random w that doesn't already create
			// a self-loop or duplicate edge.
			for attempt := 0; attempt < n; attempt++ {
				w := rng.Intn(n)
				if w == a {
					continue
				}
				cand := norm(a, w)
				if edgeSet[cand] {
					continue
				}
				delete(edgeSet, norm(a, b))
				edgeSet[cand] = true
				break
			}
		}
	}

	edges := make([][2]int, 0, len(edgeSet))
	for e := range edgeSet {
		edges = append(edges, [2]int{e.a, e.b})
	}
	// Map iteration order is random; sort so the same seed yields the same
	// edge list.
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	return edges
}

func toGonum(n int, edges [][2]int) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for _, e := range edges {
		g.SetEdge(simple.Edge{F: simple.Node(int64(e[0])), T: simple.Node(int64(e[1]))})
	}
	return g
}

func connected(n int, edges [][2]int) bool {
	g := toGonum(n, edges)
	components := topo.ConnectedComponents(graph.Undirected(g))
	return len(components) == 1
}

func degreesInBounds(n int, edges [][2]int) bool {
	degree := make([]int, n)
	for _, e := range edges {
		degree[e[0]]++
		degree[e[1]]++
	}
	for _, d := range degree {
		if d < minDegree || d > maxDegree {
			return false
		}
	}
	return true
}
