package chain

import "fmt"

// Transaction is an immutable value carrying a coin transfer between two
// peers, identified by id. Coinbase transactions have no sender and always
// credit 50 coins.
type Transaction struct {
	ID       TxnID
	Sender   PeerID // NoPeer for coinbase
	Receiver PeerID
	Coins    int64
	Coinbase bool
	Size     int
}

// CoinbaseReward is the fixed reward a miner pays itself per mined block.
const CoinbaseReward = 50

// NewTransaction mints a regular transaction. Coins is filled in by the
// caller (the sending peer) at generation time.
func NewTransaction(ids *IDAllocator, sender, receiver PeerID, coins int64) *Transaction {
	return &Transaction{
		ID:       ids.NextTxnID(),
		Sender:   sender,
		Receiver: receiver,
		Coins:    coins,
		Coinbase: false,
		Size:     1,
	}
}

// NewCoinbase mints a block's self-issued mining reward.
func NewCoinbase(ids *IDAllocator, miner PeerID) *Transaction {
	return &Transaction{
		ID:       ids.NextTxnID(),
		Sender:   NoPeer,
		Receiver: miner,
		Coins:    CoinbaseReward,
		Coinbase: true,
		Size:     1,
	}
}

func (t *Transaction) String() string {
	if t.Coinbase {
		return fmt.Sprintf("TxnID %d : peer %d mines %d coins", t.ID, t.Receiver, t.Coins)
	}
	return fmt.Sprintf("TxnID %d : peer %d pays peer %d %d coins", t.ID, t.Sender, t.Receiver, t.Coins)
}
