package peer

import (
	"github.com/klaytn-labs/p2psim/internal/chain"
	"github.com/klaytn-labs/p2psim/internal/simlog"
)

var logger = simlog.NewModuleLogger(simlog.ModulePeer)

// OnBlockRecv handles a block arriving from a neighbor. Blocks are
// shared-immutable values: the same *chain.Block is passed by reference
// through every event it appears in, so its Balances/Mempool were already
// computed once, at mint time, against whichever parent the minting peer
// had. Verifying it here means checking that cached result against this
// receiver's own local copy of the same parent (resolved by id) — which is
// only possible once that parent is actually in this peer's tree. A block
// whose parent has not arrived yet is therefore buffered as an orphan with
// verification deferred, and checked the moment its parent resolves: an
// orphan is not an error, just a block buffered until its parent arrives.
func (p *Peer) OnBlockRecv(eng *Engine, now float64, blk *chain.Block) {
	if p.hasSeenBlock(blk.ID) {
		return
	}
	p.seenBlockIDs.Add(blk.ID)

	if _, haveParent := p.resolveParent(blk); !haveParent {
		p.Orphans = append(p.Orphans, blk)
		logger.Debugw("buffering orphan block", "peer", p.ID, "block", blk.ID, "parent", blk.Parent.ID)
		return
	}

	deepest, accepted := p.resolveOrphans(eng, now, blk)
	if !accepted {
		logger.Debugw("rejecting invalid block", "peer", p.ID, "block", blk.ID)
		return // invalid block: local, silent, permanent drop
	}

	if deepest.ChainLength > p.Tip().ChainLength {
		p.TipID = deepest.ID
		p.scheduleMine(eng, deepest, now)
	}
}

func (p *Peer) resolveParent(blk *chain.Block) (*chain.Block, bool) {
	if blk.Parent.IsGenesis {
		return nil, true // unreachable for any block actually sent over the wire
	}
	parent, ok := p.BlockTree[blk.Parent.ID]
	return parent, ok
}

// resolveOrphans runs a BFS that verifies blk against its now-known parent,
// accepts it, then repeats for any buffered orphan whose parent just
// arrived — propagating each acceptance to neighbors and tracking the
// deepest block seen in the wave. All propagated BlockRecv events in the
// wave share now as their base time; each block's own arrival time is still
// recorded individually. Returns (deepest accepted block, whether the
// originally-requested blk itself was accepted).
func (p *Peer) resolveOrphans(eng *Engine, now float64, blk *chain.Block) (*chain.Block, bool) {
	queue := []*chain.Block{blk}
	deepest := p.Tip()
	rootAccepted := false

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		parent, ok := p.resolveParent(current)
		if !ok || !chain.Verify(current, parent) {
			continue // invalid, or its parent vanished from under it: drop, don't propagate
		}

		p.addToTree(now, current)
		p.broadcastBlock(eng, now, current)

		if current.ID == blk.ID {
			rootAccepted = true
		}
		if current.ChainLength > deepest.ChainLength {
			deepest = current
		}

		queue = append(queue, p.detachOrphanChildrenOf(current.ID)...)
	}

	return deepest, rootAccepted
}

// detachOrphanChildrenOf removes, and returns, every buffered orphan whose
// parent is parentID. Orphans is scanned in insertion order to keep runs
// reproducible.
func (p *Peer) detachOrphanChildrenOf(parentID chain.BlockID) []*chain.Block {
	var children []*chain.Block
	remaining := p.Orphans[:0]
	for _, o := range p.Orphans {
		if !o.Parent.IsGenesis && o.Parent.ID == parentID {
			children = append(children, o)
		} else {
			remaining = append(remaining, o)
		}
	}
	p.Orphans = remaining
	return children
}
