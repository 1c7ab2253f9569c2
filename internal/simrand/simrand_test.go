package simrand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_SameSeedReproducesStream(t *testing.T) {
	a := New(123)
	b := New(123)

	for i := 0; i < 10; i++ {
		require.Equal(t, a.Uniform(0, 100), b.Uniform(0, 100))
	}
}

func TestUniform_Bounds(t *testing.T) {
	rng := New(5)
	for i := 0; i < 200; i++ {
		v := rng.Uniform(10, 20)
		require.GreaterOrEqual(t, v, 10.0)
		require.Less(t, v, 20.0)
	}
}

func TestExponential_ZeroMeanIsZero(t *testing.T) {
	rng := New(1)
	require.Equal(t, 0.0, rng.Exponential(0))
	require.Equal(t, 0.0, rng.Exponential(-5))
}

func TestIntRange_Bounds(t *testing.T) {
	rng := New(9)
	for i := 0; i < 200; i++ {
		v := rng.IntRange(3, 8)
		require.GreaterOrEqual(t, v, 3)
		require.Less(t, v, 8)
	}
}

func TestIntRange_DegenerateReturnsLo(t *testing.T) {
	rng := New(9)
	require.Equal(t, 4, rng.IntRange(4, 4))
	require.Equal(t, 4, rng.IntRange(4, 2))
}

func TestChooseDistinct_ReturnsDistinctIndicesInRange(t *testing.T) {
	rng := New(11)
	out := rng.ChooseDistinct(10, 4)
	require.Len(t, out, 4)

	seen := make(map[int]bool)
	for _, v := range out {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 10)
		require.False(t, seen[v], "must not repeat an index")
		seen[v] = true
	}
}

func TestChooseDistinct_KLargerThanNClampsToN(t *testing.T) {
	rng := New(11)
	out := rng.ChooseDistinct(3, 10)
	require.Len(t, out, 3)
}

func TestChooseDistinct_NonPositiveKReturnsNil(t *testing.T) {
	rng := New(11)
	require.Nil(t, rng.ChooseDistinct(10, 0))
	require.Nil(t, rng.ChooseDistinct(10, -1))
}
