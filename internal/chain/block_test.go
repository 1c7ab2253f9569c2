package chain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGenesis(t *testing.T) {
	g := NewGenesis(4, 1000)

	require.EqualValues(t, 1, g.ID)
	require.True(t, g.Parent.IsGenesis)
	require.Equal(t, 1, g.ChainLength)
	require.Empty(t, g.Included)
	require.Equal(t, NoPeer, g.Miner)
	require.Equal(t, []int64{1000, 1000, 1000, 1000}, g.Balances)
	require.False(t, g.InMempool(42))
}

func TestNewChild_BalancesAndMempool(t *testing.T) {
	ids := NewIDAllocator()
	genesis := NewGenesis(3, 1000)

	txn := NewTransaction(ids, 0, 1, 100)
	coinbase := NewCoinbase(ids, 2)

	child := NewChild(ids, 2, genesis, []*Transaction{txn, coinbase})

	require.Equal(t, genesis.ChainLength+1, child.ChainLength)
	require.Equal(t, int64(900), child.Balances[0])
	require.Equal(t, int64(1100), child.Balances[1])
	require.Equal(t, int64(1050), child.Balances[2])

	require.True(t, child.InMempool(txn.ID))
	require.True(t, child.InMempool(coinbase.ID))
	require.False(t, genesis.InMempool(txn.ID), "child's mempool snapshot must not alias the parent's")
}

func TestNewChild_MempoolNeverAliasesParent(t *testing.T) {
	ids := NewIDAllocator()
	genesis := NewGenesis(2, 1000)

	first := NewChild(ids, 0, genesis, []*Transaction{NewCoinbase(ids, 0)})
	second := NewChild(ids, 1, first, []*Transaction{NewCoinbase(ids, 1)})

	require.Len(t, first.Mempool, 1)
	require.Len(t, second.Mempool, 2, "second's snapshot is first's plus its own, computed fresh")
}

func TestNewChild_IDsMonotonicallyIncrease(t *testing.T) {
	ids := NewIDAllocator()
	genesis := NewGenesis(2, 1000)

	a := NewChild(ids, 0, genesis, nil)
	b := NewChild(ids, 1, a, nil)

	require.Equal(t, BlockID(2), a.ID)
	require.Equal(t, BlockID(3), b.ID)
}
