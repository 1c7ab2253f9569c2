package chain

// Block is immutable once constructed. It never holds a parent pointer —
// only a ParentRef resolved by id within the peer's own block tree — so the
// tree is a DAG indexed by id with no reference cycles.
type Block struct {
	ID          BlockID
	Parent      ParentRef
	Included    []*Transaction
	Mempool     map[TxnID]struct{} // mempool snapshot: parent.Mempool ∪ Included, copied fresh
	ChainLength int
	Balances    []int64
	Miner       PeerID // NoPeer for genesis
	Size        int
}

// ParentRef is a tagged variant of {Genesis | Child(parent_id)}, replacing
// the source's use of the integer 0 as a "no parent" sentinel.
type ParentRef struct {
	IsGenesis bool
	ID        BlockID
}

// GenesisParent is the tagged Genesis variant.
var GenesisParent = ParentRef{IsGenesis: true}

// ChildOf builds the Child(parent_id) variant.
func ChildOf(id BlockID) ParentRef {
	return ParentRef{IsGenesis: false, ID: id}
}

// NewGenesis constructs the root block: id 1, chain length 1, no parent, no
// transactions, balances initialized uniformly.
func NewGenesis(numPeers int, initialBalance int64) *Block {
	balances := make([]int64, numPeers)
	for i := range balances {
		balances[i] = initialBalance
	}
	return &Block{
		ID:          1,
		Parent:      GenesisParent,
		Included:    nil,
		Mempool:     make(map[TxnID]struct{}),
		ChainLength: 1,
		Balances:    balances,
		Miner:       NoPeer,
		Size:        1,
	}
}

// NewChild builds a candidate block on top of parent. Balances are derived
// by cloning the parent's balances and applying included transactions
// (debit sender except coinbase, credit receiver). The mempool snapshot is
// computed fresh as parent.Mempool ∪ included — never aliased, which fixes
// the source's latent aliasing bug where a child block mutated its parent's
// shared mempool set in place.
func NewChild(ids *IDAllocator, miner PeerID, parent *Block, included []*Transaction) *Block {
	balances := make([]int64, len(parent.Balances))
	copy(balances, parent.Balances)

	mempool := make(map[TxnID]struct{}, len(parent.Mempool)+len(included))
	for id := range parent.Mempool {
		mempool[id] = struct{}{}
	}

	for _, txn := range included {
		if !txn.Coinbase {
			balances[txn.Sender] -= txn.Coins
		}
		balances[txn.Receiver] += txn.Coins
		mempool[txn.ID] = struct{}{}
	}

	return &Block{
		ID:          ids.NextBlockID(),
		Parent:      ChildOf(parent.ID),
		Included:    included,
		Mempool:     mempool,
		ChainLength: parent.ChainLength + 1,
		Balances:    balances,
		Miner:       miner,
		Size:        1 + len(included),
	}
}

// InMempool reports whether a transaction is already accounted for on this
// block's chain (included in this block or an ancestor).
func (b *Block) InMempool(id TxnID) bool {
	_, ok := b.Mempool[id]
	return ok
}
