package peer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klaytn-labs/p2psim/internal/chain"
)

func TestOnBlockRecv_AcceptsDirectChild(t *testing.T) {
	genesis := chain.NewGenesis(2, 1000)
	reg := newLinearRegistry(2, genesis)
	eng := newTestEngine(10)

	p1 := reg.ByID(1)
	blk := chain.NewChild(eng.IDs, 0, genesis, []*chain.Transaction{chain.NewCoinbase(eng.IDs, 0)})

	p1.OnBlockRecv(eng, 3, blk)

	require.Equal(t, blk.ID, p1.TipID)
	require.Contains(t, p1.BlockTree, blk.ID)
	require.Equal(t, 3.0, p1.ArrivalTime[blk.ID])
}

func TestOnBlockRecv_DropsAlreadySeenBlock(t *testing.T) {
	genesis := chain.NewGenesis(2, 1000)
	reg := newLinearRegistry(2, genesis)
	eng := newTestEngine(11)

	p1 := reg.ByID(1)
	blk := chain.NewChild(eng.IDs, 0, genesis, nil)

	p1.OnBlockRecv(eng, 1, blk)
	initialQueueLen := eng.Queue.Len()

	p1.OnBlockRecv(eng, 2, blk)
	require.Equal(t, initialQueueLen, eng.Queue.Len(), "re-delivery of a known block must be a no-op")
}

func TestOnBlockRecv_BuffersOrphanUntilParentArrives(t *testing.T) {
	genesis := chain.NewGenesis(2, 1000)
	reg := newLinearRegistry(2, genesis)
	eng := newTestEngine(12)

	p1 := reg.ByID(1)
	parent := chain.NewChild(eng.IDs, 0, genesis, nil)
	child := chain.NewChild(eng.IDs, 0, parent, nil)

	// Child arrives before its parent: buffered as an orphan, not yet in
	// the tree, and the tip must not move.
	p1.OnBlockRecv(eng, 5, child)
	require.Len(t, p1.Orphans, 1)
	require.NotContains(t, p1.BlockTree, child.ID)
	require.Equal(t, genesis.ID, p1.TipID)

	// Parent arrives: both parent and the now-unblocked child are accepted
	// in one resolution wave, and the tip advances to the deepest block.
	p1.OnBlockRecv(eng, 7, parent)

	require.Contains(t, p1.BlockTree, parent.ID)
	require.Contains(t, p1.BlockTree, child.ID)
	require.Empty(t, p1.Orphans)
	require.Equal(t, child.ID, p1.TipID)
	require.Equal(t, 7.0, p1.ArrivalTime[parent.ID])
	require.Equal(t, 7.0, p1.ArrivalTime[child.ID], "both blocks in the wave share the resolution's now")
}

func TestOnBlockRecv_RejectsInvalidBlockWithoutPanicking(t *testing.T) {
	genesis := chain.NewGenesis(2, 1000)
	reg := newLinearRegistry(2, genesis)
	eng := newTestEngine(13)

	p1 := reg.ByID(1)
	txn := chain.NewTransaction(eng.IDs, 0, 1, 100)
	blk := chain.NewChild(eng.IDs, 0, genesis, []*chain.Transaction{txn})
	blk.Balances[0] += 1 // corrupt the debited sender balance

	p1.OnBlockRecv(eng, 4, blk)

	require.NotContains(t, p1.BlockTree, blk.ID)
	require.Equal(t, genesis.ID, p1.TipID)
}

func TestOnBlockRecv_DoesNotLowerTipOnShorterBranch(t *testing.T) {
	genesis := chain.NewGenesis(2, 1000)
	reg := newLinearRegistry(2, genesis)
	eng := newTestEngine(14)

	p1 := reg.ByID(1)
	tall := chain.NewChild(eng.IDs, 0, genesis, nil)
	taller := chain.NewChild(eng.IDs, 0, tall, nil)
	p1.OnBlockRecv(eng, 1, tall)
	p1.OnBlockRecv(eng, 2, taller)
	require.Equal(t, taller.ID, p1.TipID)

	// A second, equally-short branch off genesis must not move the tip back.
	shortBranch := chain.NewChild(eng.IDs, 0, genesis, nil)
	p1.OnBlockRecv(eng, 3, shortBranch)

	require.Equal(t, taller.ID, p1.TipID)
	require.Contains(t, p1.BlockTree, shortBranch.ID, "the shorter branch is still accepted into the tree")
}
