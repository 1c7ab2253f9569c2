package chain

// Verify checks blk against its parent: for every non-coinbase transaction
// t in blk.Included, blk.Balances[t.Sender] must equal
// parent.Balances[t.Sender] - t.Coins, blk.Balances[t.Receiver] must equal
// parent.Balances[t.Receiver] + t.Coins, and the resulting sender balance
// must be non-negative.
//
// original_source/peer.py's verify_block checks `balance[sender] < 0` and
// returns False only when that condition is false alongside the other two —
// i.e. it requires the sender balance to be negative for a block to pass,
// which is inverted. This implementation adopts the corrected `>= 0`
// semantics instead.
func Verify(blk, parent *Block) bool {
	for _, txn := range blk.Included {
		if txn.Coinbase {
			continue
		}
		wantSender := parent.Balances[txn.Sender] - txn.Coins
		wantReceiver := parent.Balances[txn.Receiver] + txn.Coins
		if blk.Balances[txn.Sender] != wantSender {
			return false
		}
		if blk.Balances[txn.Receiver] != wantReceiver {
			return false
		}
		if blk.Balances[txn.Sender] < 0 {
			return false
		}
	}
	return true
}
