// Package peer implements the per-peer state machine: local mempool, block
// tree, orphan pool, tip pointer, neighbor list and the four event handlers
// (transaction generation/receipt, self-mining, block receipt). This is the
// hardest part of the engine — it encodes the concurrency model of an
// asynchronous distributed ledger inside a single-threaded simulator.
package peer

import (
	"sort"

	set "gopkg.in/fatih/set.v0"

	"github.com/klaytn-labs/p2psim/internal/chain"
	"github.com/klaytn-labs/p2psim/internal/render"
)

// Peer holds a simulated node's full local state. Transactions and blocks
// never own a Peer back — they only carry a chain.PeerID, resolved through
// Registry.ByID — so there is no reference cycle between this package and
// internal/chain.
type Peer struct {
	ID       chain.PeerID
	IsSlow   bool
	IsLowCPU bool

	Neighbors []*Peer // sorted by ID for deterministic broadcast order

	// seenTxnSet is for O(1) membership checks only; seenOrder is the
	// insertion-ordered view used whenever iteration order matters (mining
	// candidate selection), since set iteration order is not guaranteed and
	// reproducible runs depend on a stable order.
	seenTxnSet *set.Set
	seenOrder  []*chain.Transaction

	BlockTree    map[chain.BlockID]*chain.Block
	blockOrder   []chain.BlockID // insertion order, for deterministic log output
	seenBlockIDs *set.Set
	ArrivalTime  map[chain.BlockID]float64

	// Orphans is scanned linearly in insertion order for the same
	// determinism reason as seenOrder above.
	Orphans []*chain.Block

	TipID chain.BlockID

	MiningMean       float64
	BlocksMinedCount int

	Graph *render.BlockGraph // supplemental, rendering-only
}

func newPeer(id chain.PeerID, isSlow, isLowCPU bool, genesis *chain.Block, miningMean float64) *Peer {
	p := &Peer{
		ID:           id,
		IsSlow:       isSlow,
		IsLowCPU:     isLowCPU,
		seenTxnSet:   set.NewNonTS(),
		BlockTree:    map[chain.BlockID]*chain.Block{genesis.ID: genesis},
		blockOrder:   []chain.BlockID{genesis.ID},
		seenBlockIDs: set.NewNonTS(),
		ArrivalTime:  map[chain.BlockID]float64{genesis.ID: 0},
		TipID:        genesis.ID,
		MiningMean:   miningMean,
		Graph:        render.NewBlockGraph(),
	}
	p.seenBlockIDs.Add(genesis.ID)
	p.Graph.AddNode(genesis.ID)
	return p
}

// Tip returns the block at the peer's locally preferred chain head.
func (p *Peer) Tip() *chain.Block {
	return p.BlockTree[p.TipID]
}

// Class returns one of the four peer classes of the GLOSSARY.
func (p *Peer) Class() string {
	speed, cpu := "fast", "high"
	if p.IsSlow {
		speed = "slow"
	}
	if p.IsLowCPU {
		cpu = "low"
	}
	return speed + "_" + cpu
}

// BlockOrder returns accepted block ids in the order this peer first saw
// them — the order the per-peer log is written in.
func (p *Peer) BlockOrder() []chain.BlockID {
	return p.blockOrder
}

func (p *Peer) addToTree(now float64, blk *chain.Block) {
	p.BlockTree[blk.ID] = blk
	p.blockOrder = append(p.blockOrder, blk.ID)
	p.ArrivalTime[blk.ID] = now
	p.seenBlockIDs.Add(blk.ID)
	p.Graph.AddNode(blk.ID)
	if !blk.Parent.IsGenesis {
		p.Graph.AddEdge(blk.ID, blk.Parent.ID)
	}
}

func (p *Peer) hasSeenTxn(t *chain.Transaction) bool {
	return p.seenTxnSet.Has(t)
}

func (p *Peer) rememberTxn(t *chain.Transaction) {
	p.seenTxnSet.Add(t)
	p.seenOrder = append(p.seenOrder, t)
}

func (p *Peer) seenTxnsOrdered() []*chain.Transaction {
	return p.seenOrder
}

func (p *Peer) hasSeenBlock(id chain.BlockID) bool {
	return p.seenBlockIDs.Has(id)
}

// connectNeighbors wires p's neighbor list from an adjacency list, sorted by
// id for reproducible broadcast ordering.
func connectNeighbors(p *Peer, all []*Peer, adjacency map[chain.PeerID][]chain.PeerID) {
	ids := adjacency[p.ID]
	sorted := make([]chain.PeerID, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for _, nid := range sorted {
		p.Neighbors = append(p.Neighbors, all[nid])
	}
}
