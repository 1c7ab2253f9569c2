package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klaytn-labs/p2psim/internal/chain"
)

func TestBlockGraph_NodesAndEdgesPreserveInsertionOrder(t *testing.T) {
	g := NewBlockGraph()
	g.AddNode(1)
	g.AddNode(2)
	g.AddNode(3)
	g.AddEdge(2, 1)
	g.AddEdge(3, 1)

	require.Equal(t, []chain.BlockID{1, 2, 3}, g.Nodes())
	require.Equal(t, [][2]chain.BlockID{{2, 1}, {3, 1}}, g.Edges())
}

func TestWriteNetworkGraph_WritesFileForSmallGraph(t *testing.T) {
	path := t.TempDir() + "/network_graph.png"
	err := WriteNetworkGraph(path, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	require.NoError(t, err)
}

func TestWritePeerTree_WritesFileForSmallTree(t *testing.T) {
	g := NewBlockGraph()
	g.AddNode(1)
	g.AddNode(2)
	g.AddNode(3)
	g.AddEdge(2, 1)
	g.AddEdge(3, 2)

	path := t.TempDir() + "/blockchain_0.png"
	err := WritePeerTree(path, g)
	require.NoError(t, err)
}
