// Package render draws the two categories of output figure: the peer
// connectivity graph and each peer's local block tree. It uses
// gonum.org/v1/plot — the sibling plotting module of gonum.org/v1/gonum,
// which internal/netgraph and internal/simrand already depend on for graph
// and distribution support — rather than the standard library's image/draw,
// since no example repo imports a plotting library directly (see
// DESIGN.md).
package render

import "github.com/klaytn-labs/p2psim/internal/chain"

// BlockGraph is a peer's local view of its accepted block DAG, used only to
// drive figure rendering — it mirrors original_source/peer.py's
// self.g = nx.DiGraph(), which the core engine never reads.
type BlockGraph struct {
	edges [][2]chain.BlockID // (child, parent)
	nodes []chain.BlockID
}

// NewBlockGraph returns an empty graph.
func NewBlockGraph() *BlockGraph {
	return &BlockGraph{}
}

// AddNode registers a block id as present in the graph, even if it has no
// parent edge yet (e.g. genesis).
func (g *BlockGraph) AddNode(id chain.BlockID) {
	g.nodes = append(g.nodes, id)
}

// AddEdge records that child's parent is parent.
func (g *BlockGraph) AddEdge(child, parent chain.BlockID) {
	g.edges = append(g.edges, [2]chain.BlockID{child, parent})
}

// Nodes returns the node ids in insertion order.
func (g *BlockGraph) Nodes() []chain.BlockID {
	return g.nodes
}

// Edges returns the (child, parent) pairs in insertion order.
func (g *BlockGraph) Edges() [][2]chain.BlockID {
	return g.edges
}
