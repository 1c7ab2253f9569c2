// Package event defines the tagged event record dispatched by the
// simulator's scheduler. There is no callback registry: the dispatch table
// is exhaustive and lives in internal/driver.
package event

import "github.com/klaytn-labs/p2psim/internal/chain"

// Kind tags an event's type.
type Kind int

const (
	TxnGen Kind = iota
	TxnRecv
	BlockMined
	BlockRecv
)

func (k Kind) String() string {
	switch k {
	case TxnGen:
		return "TxnGen"
	case TxnRecv:
		return "TxnRecv"
	case BlockMined:
		return "BlockMined"
	case BlockRecv:
		return "BlockRecv"
	default:
		return "Unknown"
	}
}

// Event is the record the min-heap orders and the driver dispatches.
// Sender/Receiver are stable peer ids, not pointers — the event carries only
// references to immutable records plus peer identities.
type Event struct {
	Kind     Kind
	FireTime float64
	// Seq is the insertion sequence number, used only to break ties between
	// events with identical FireTime in FIFO order.
	Seq uint64

	Sender   chain.PeerID
	Receiver chain.PeerID
	Txn      *chain.Transaction
	Blk      *chain.Block
}
