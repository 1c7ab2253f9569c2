package peer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klaytn-labs/p2psim/internal/chain"
	"github.com/klaytn-labs/p2psim/internal/eventqueue"
	"github.com/klaytn-labs/p2psim/internal/event"
	"github.com/klaytn-labs/p2psim/internal/simrand"
)

func newTestEngine(seed uint64) *Engine {
	return &Engine{
		Rng:   simrand.New(seed),
		IDs:   chain.NewIDAllocator(),
		Queue: eventqueue.New(),
	}
}

func newLinearRegistry(n int, genesis *chain.Block) *Registry {
	reg := NewRegistry()
	for i := 0; i < n; i++ {
		reg.NewPeer(false, false, genesis, 10)
	}
	var edges [][2]chain.PeerID
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]chain.PeerID{chain.PeerID(i), chain.PeerID(i + 1)})
	}
	reg.ConnectAll(edges)
	return reg
}

func TestOnTxnGen_BoundsCoinsByBalanceAndBroadcasts(t *testing.T) {
	genesis := chain.NewGenesis(3, 1000)
	reg := newLinearRegistry(3, genesis)
	eng := newTestEngine(1)

	p0 := reg.ByID(0)
	txn := chain.NewTransaction(eng.IDs, 0, 1, 0)
	p0.OnTxnGen(eng, 0, txn)

	require.Greater(t, txn.Coins, int64(0))
	require.LessOrEqual(t, txn.Coins, genesis.Balances[0])
	require.True(t, p0.hasSeenTxn(txn))
	require.Equal(t, 1, eng.Queue.Len(), "broadcast to the single neighbor")
}

func TestOnTxnRecv_DropsDuplicate(t *testing.T) {
	genesis := chain.NewGenesis(2, 1000)
	reg := newLinearRegistry(2, genesis)
	eng := newTestEngine(2)

	p1 := reg.ByID(1)
	txn := chain.NewTransaction(eng.IDs, 0, 1, 10)

	p1.OnTxnRecv(eng, 1, txn)
	require.Equal(t, 1, eng.Queue.Len())

	p1.OnTxnRecv(eng, 2, txn)
	require.Equal(t, 1, eng.Queue.Len(), "a previously seen txn must not be rebroadcast")
}

func TestOnTxnRecv_RebroadcastsToOtherNeighbors(t *testing.T) {
	genesis := chain.NewGenesis(3, 1000)
	reg := newLinearRegistry(3, genesis)
	eng := newTestEngine(3)

	p1 := reg.ByID(1) // middle peer, two neighbors (0 and 2)
	txn := chain.NewTransaction(eng.IDs, 0, 2, 10)
	p1.OnTxnRecv(eng, 0, txn)

	require.Equal(t, 2, eng.Queue.Len(), "broadcasts to both neighbors, including the sender")
	ev1, _ := eng.Queue.PopMin()
	ev2, _ := eng.Queue.PopMin()
	require.Equal(t, event.TxnRecv, ev1.Kind)
	require.Equal(t, event.TxnRecv, ev2.Kind)
}
