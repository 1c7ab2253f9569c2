package peer

import (
	"github.com/klaytn-labs/p2psim/internal/chain"
	"github.com/klaytn-labs/p2psim/internal/event"
)

// scheduleMine builds a candidate block on top of base and enqueues a
// BlockMined event at now + Exp(miningMean).
func (p *Peer) scheduleMine(eng *Engine, base *chain.Block, now float64) {
	candidate := chain.BuildCandidate(eng.IDs, eng.Rng, p.ID, base, p.seenTxnsOrdered())
	fireTime := now + eng.Rng.Exponential(p.MiningMean)
	eng.Queue.Enqueue(&event.Event{
		Kind:     event.BlockMined,
		FireTime: fireTime,
		Blk:      candidate,
	})
}

// OnSelfMined handles the BlockMined event: discard a stale candidate whose
// chain did not outgrow the current tip while it was being mined; otherwise
// adopt it, broadcast it, and immediately start mining on top of it.
func (p *Peer) OnSelfMined(eng *Engine, now float64, blk *chain.Block) {
	if blk.ChainLength <= p.Tip().ChainLength {
		logger.Debugw("discarding stale self-mined block", "peer", p.ID, "block", blk.ID, "chainLength", blk.ChainLength, "tipLength", p.Tip().ChainLength)
		return // a rival chain grew during mining; silently discard
	}

	eng.BlocksMinedCount++
	p.BlocksMinedCount++

	p.addToTree(now, blk)
	p.TipID = blk.ID

	p.broadcastBlock(eng, now, blk)
	p.scheduleMine(eng, blk, now)
}
