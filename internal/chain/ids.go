package chain

// PeerID is a stable, non-owning back-reference to a peer. Transactions and
// blocks name peers this way instead of holding a pointer, so the chain
// package never needs to import the peer package, avoiding a cyclic
// sender/receiver/miner reference.
type PeerID int

// NoPeer marks a field as having no associated peer (coinbase sender,
// genesis miner).
const NoPeer PeerID = -1

// BlockID uniquely and monotonically identifies a block. Genesis is 1.
type BlockID uint64

// TxnID uniquely and monotonically identifies a transaction.
type TxnID uint64

// IDAllocator is the driver-owned factory for transaction and block ids,
// replacing the source's package-level mutable counters (Transaction.txn_ctr,
// Block.blk_ctr) with counters threaded explicitly through construction.
type IDAllocator struct {
	nextTxnID   TxnID
	nextBlockID BlockID
}

// NewIDAllocator returns an allocator primed so the first minted block is
// id 2 (genesis is constructed directly with id 1, mirroring
// original_source/block.py's blk_ctr starting at 2).
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{nextTxnID: 0, nextBlockID: 2}
}

func (a *IDAllocator) NextTxnID() TxnID {
	id := a.nextTxnID
	a.nextTxnID++
	return id
}

func (a *IDAllocator) NextBlockID() BlockID {
	id := a.nextBlockID
	a.nextBlockID++
	return id
}
