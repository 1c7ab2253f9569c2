package peer

import (
	"github.com/klaytn-labs/p2psim/internal/chain"
	"github.com/klaytn-labs/p2psim/internal/event"
	"github.com/klaytn-labs/p2psim/internal/latency"
)

// OnTxnGen handles a locally generated transaction: set txn.Coins to a
// random amount bounded by the peer's balance at its current tip, remember
// it, and broadcast.
func (p *Peer) OnTxnGen(eng *Engine, now float64, txn *chain.Transaction) {
	balance := p.Tip().Balances[p.ID]
	coins := 1
	if balance > 1 {
		coins = eng.Rng.IntRangeInclusive(1, int(balance))
	}
	txn.Coins = int64(coins)

	p.rememberTxn(txn)
	p.broadcastTxn(eng, now, txn)
}

// OnTxnRecv handles a transaction arriving from a neighbor: drop duplicates,
// otherwise remember and rebroadcast. There is no explicit re-send
// suppression beyond this check.
func (p *Peer) OnTxnRecv(eng *Engine, now float64, txn *chain.Transaction) {
	if p.hasSeenTxn(txn) {
		return
	}
	p.rememberTxn(txn)
	p.broadcastTxn(eng, now, txn)
}

// broadcastTxn enqueues a TxnRecv event to every neighbor, each delayed by
// the link latency model.
func (p *Peer) broadcastTxn(eng *Engine, now float64, txn *chain.Transaction) {
	for _, nbr := range p.Neighbors {
		delay := latency.Compute(eng.Rng, p.IsSlow, nbr.IsSlow, txn.Size)
		eng.Queue.Enqueue(&event.Event{
			Kind:     event.TxnRecv,
			FireTime: now + delay,
			Sender:   p.ID,
			Receiver: nbr.ID,
			Txn:      txn,
		})
	}
}

// broadcastBlock enqueues a BlockRecv event to every neighbor, each delayed
// by the link latency model keyed on the block's size.
func (p *Peer) broadcastBlock(eng *Engine, now float64, blk *chain.Block) {
	for _, nbr := range p.Neighbors {
		delay := latency.Compute(eng.Rng, p.IsSlow, nbr.IsSlow, blk.Size)
		eng.Queue.Enqueue(&event.Event{
			Kind:     event.BlockRecv,
			FireTime: now + delay,
			Sender:   p.ID,
			Receiver: nbr.ID,
			Blk:      blk,
		})
	}
}
