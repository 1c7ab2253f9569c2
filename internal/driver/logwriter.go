package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/klaytn-labs/p2psim/internal/peer"
)

// writeLogs emits one ./logs/log_tree_<id>.txt per peer, reproducing
// original_source/main.py's per-peer block-tree dump: one line per accepted
// block, in the order the peer first saw it, naming its parent, miner,
// included-transaction count and local arrival time. Genesis has no parent
// or miner, printed as "None" to match the original's literal output for
// block.parent_blk == 0.
func writeLogs(outDir string, reg *peer.Registry) error {
	for _, p := range reg.Peers() {
		if err := writePeerLog(outDir, p); err != nil {
			return err
		}
	}
	return nil
}

func writePeerLog(outDir string, p *peer.Peer) error {
	path := filepath.Join(outDir, "logs", fmt.Sprintf("log_tree_%d.txt", p.ID))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "Data For Node Id: %d\n", p.ID)
	for _, id := range p.BlockOrder() {
		blk := p.BlockTree[id]
		var parent, miner interface{} = "None", "None"
		if !blk.Parent.IsGenesis {
			parent = blk.Parent.ID
			miner = blk.Miner
		}
		fmt.Fprintf(f, "Block Id:%d, Parent ID:%v, Miner ID:%v, Txns:%d, Time:%v\n",
			blk.ID, parent, miner, len(blk.Included), p.ArrivalTime[id])
	}
	return nil
}
