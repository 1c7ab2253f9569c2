package chain

import "github.com/klaytn-labs/p2psim/internal/simrand"

// maxBlockTxns reserves slots for the coinbase transaction within a soft
// block-size limit of 1024.
const maxBlockTxns = 1022

// maxCandidateAttempts bounds the source's `while True: ... if verify_block
// break` retry loop. An unbounded retry could loop forever if verify always
// failed. Every candidate transaction is pre-filtered against the base
// block's balances (step 2 below), but Verify checks each transaction against
// the parent balance on its own, so a candidate still fails whenever one peer
// appears in more than one of its transactions — including the miner, whom
// the coinbase credits, when it is party to a picked transaction. Each retry
// draws a fresh subset; once the bound is used up, BuildCandidate returns a
// coinbase-only block.
const maxCandidateAttempts = 8

// BuildCandidate constructs a valid candidate block for miner on top of
// base:
//  1. available = seen \ base.Mempool
//  2. drop any transaction whose sender lacks funds in base.Balances
//  3. pick k transactions, k uniform in [1, min(|available|, 1022)]
//  4. add a coinbase transaction paying 50 coins to miner
//  5. verify; retry (bounded) until valid
func BuildCandidate(ids *IDAllocator, rng *simrand.Source, miner PeerID, base *Block, seen []*Transaction) *Block {
	available := make([]*Transaction, 0, len(seen))
	for _, t := range seen {
		if base.InMempool(t.ID) {
			continue
		}
		if !t.Coinbase && t.Coins > base.Balances[t.Sender] {
			continue
		}
		available = append(available, t)
	}

	for attempt := 0; attempt < maxCandidateAttempts; attempt++ {
		n := len(available)
		k := 0
		if n > 0 {
			upper := n
			if upper > maxBlockTxns {
				upper = maxBlockTxns
			}
			k = rng.IntRangeInclusive(1, upper)
		}
		idxs := rng.ChooseDistinct(n, k)

		included := make([]*Transaction, 0, k+1)
		for _, i := range idxs {
			included = append(included, available[i])
		}
		included = append(included, NewCoinbase(ids, miner))

		candidate := NewChild(ids, miner, base, included)
		if Verify(candidate, base) {
			return candidate
		}
	}

	// Exhausted the retry budget: fall back to a coinbase-only block, which
	// is always valid regardless of what else is in the mempool.
	return NewChild(ids, miner, base, []*Transaction{NewCoinbase(ids, miner)})
}
