package netgraph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klaytn-labs/p2psim/internal/simrand"
)

func TestBuild_ProducesConnectedGraph(t *testing.T) {
	rng := simrand.New(69)
	g := Build(rng, 12)

	require.True(t, connected(g.N, g.Edges))
}

func TestBuild_DegreesWithinBounds(t *testing.T) {
	rng := simrand.New(69)
	g := Build(rng, 12)

	require.True(t, degreesInBounds(g.N, g.Edges))
}

func TestBuild_NoSelfLoopsOrDuplicateEdges(t *testing.T) {
	rng := simrand.New(3)
	g := Build(rng, 10)

	seen := make(map[[2]int]bool)
	for _, e := range g.Edges {
		require.NotEqual(t, e[0], e[1], "no self-loops")
		a, b := e[0], e[1]
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		require.False(t, seen[key], "no duplicate edges")
		seen[key] = true
	}
}

func TestBuild_DeterministicUnderFixedSeed(t *testing.T) {
	g1 := Build(simrand.New(42), 8)
	g2 := Build(simrand.New(42), 8)

	require.Equal(t, len(g1.Edges), len(g2.Edges))
	require.ElementsMatch(t, g1.Edges, g2.Edges)
}
