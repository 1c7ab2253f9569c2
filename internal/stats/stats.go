// Package stats aggregates end-of-run network statistics from a single
// reference peer's local view, reproducing original_source/main.py's
// print_network_stats report.
package stats

import (
	"fmt"
	"io"
	"math"

	"github.com/klaytn-labs/p2psim/internal/chain"
	"github.com/klaytn-labs/p2psim/internal/peer"
)

var classOrder = []string{"slow_low", "slow_high", "fast_low", "fast_high"}

// ClassTally counts, for one of the four peer classes, how many of its
// blocks made it into the reference peer's longest chain versus how many it
// mined in total (whether or not they survived).
type ClassTally struct {
	Successful  int
	BlocksMined int
}

// Report is the fully computed set of figures print_network_stats reports.
type Report struct {
	LongestChainLength int
	TotalMined         int
	HasRetention       bool
	RetentionFraction  float64
	ClassStats         map[string]*ClassTally
	BranchLengths      []int
}

const genesisID = chain.BlockID(1)

// Compute derives a Report from peer 0's local block tree, matching
// original_source/main.py's choice of peers_net[0] as the reporting node.
func Compute(reg *peer.Registry) Report {
	reference := reg.ByID(0)
	children := buildChildren(reference)

	depth := map[chain.BlockID]int{}
	maxDepth := map[chain.BlockID]int{}
	parentOf := map[chain.BlockID]chain.BlockID{}
	deepest := genesisID

	var walk func(id chain.BlockID, parent chain.BlockID, d int)
	walk = func(id chain.BlockID, parent chain.BlockID, d int) {
		depth[id] = d
		maxDepth[id] = d
		parentOf[id] = parent
		if d > depth[deepest] {
			deepest = id
		}
		for _, child := range children[id] {
			walk(child, id, d+1)
			if maxDepth[child] > maxDepth[id] {
				maxDepth[id] = maxDepth[child]
			}
		}
	}
	walk(genesisID, genesisID, 0)

	var branchLengths []int
	current := deepest
	for current != genesisID {
		child := current
		current = parentOf[current]
		for _, sibling := range children[current] {
			if sibling != child {
				branchLengths = append(branchLengths, maxDepth[sibling]-depth[current])
			}
		}
	}

	classStats := make(map[string]*ClassTally, len(classOrder))
	for _, c := range classOrder {
		classStats[c] = &ClassTally{}
	}
	totalMined := 0
	for _, p := range reg.Peers() {
		classStats[p.Class()].BlocksMined += p.BlocksMinedCount
		totalMined += p.BlocksMinedCount
	}

	tip := reference.Tip()
	longestLen := tip.ChainLength
	block := tip
	for block.ID != genesisID {
		miner := reg.ByID(block.Miner)
		classStats[miner.Class()].Successful++
		block = reference.BlockTree[block.Parent.ID]
	}

	report := Report{
		LongestChainLength: longestLen,
		TotalMined:         totalMined,
		ClassStats:         classStats,
		BranchLengths:      branchLengths,
	}
	if totalMined > 0 {
		report.HasRetention = true
		report.RetentionFraction = float64(longestLen-1) / float64(totalMined)
	}
	return report
}

func buildChildren(p *peer.Peer) map[chain.BlockID][]chain.BlockID {
	children := make(map[chain.BlockID][]chain.BlockID)
	for _, id := range p.BlockOrder() {
		blk := p.BlockTree[id]
		if blk.Parent.IsGenesis {
			continue
		}
		children[blk.Parent.ID] = append(children[blk.Parent.ID], id)
	}
	return children
}

func round(x float64, prec int) float64 {
	mult := math.Pow(10, float64(prec))
	return math.Round(x*mult) / mult
}

// Print writes the report to w in original_source/main.py's print order and
// wording.
func (r Report) Print(w io.Writer) {
	fmt.Fprintln(w, "Length of longest chain (including genesis block):", r.LongestChainLength)
	fmt.Fprintln(w, "Total number of blocks mined:", r.TotalMined)
	if r.HasRetention {
		fmt.Fprintln(w, "Fraction of mined blocks present in longest chain:", round(r.RetentionFraction, 3))
	} else {
		fmt.Fprintln(w, "Fraction of mined blocks present in longest chain: N/A")
	}
	fmt.Fprintln(w)

	for _, c := range classOrder {
		st := r.ClassStats[c]
		if r.LongestChainLength-1 > 0 {
			fmt.Fprintf(w, "%% blocks in longest chain mined by %s node: %v\n", c, round(float64(st.Successful)/float64(r.LongestChainLength-1), 2))
		} else {
			fmt.Fprintf(w, "%% blocks in longest chain mined by %s node: N/A\n", c)
		}
	}
	fmt.Fprintln(w)

	for _, c := range classOrder {
		st := r.ClassStats[c]
		if st.BlocksMined > 0 {
			fmt.Fprintf(w, "%% blocks mined by %s node that made it to longest chain: %v\n", c, round(float64(st.Successful)/float64(st.BlocksMined), 2))
		} else {
			fmt.Fprintf(w, "%% blocks mined by %s node that made it to longest chain: N/A\n", c)
		}
	}
	fmt.Fprintln(w)

	if len(r.BranchLengths) > 0 {
		fmt.Fprintln(w, "Lengths of branches:", r.BranchLengths)
		fmt.Fprintln(w, "Average length of branch:", round(average(r.BranchLengths), 3))
	} else {
		fmt.Fprintln(w, "No branches were formed!")
	}
}

func average(xs []int) float64 {
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}
