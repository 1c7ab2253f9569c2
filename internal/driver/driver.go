// Package driver owns everything outside the simulation core: configuration
// validation, peer-set and graph construction, seeding the initial event
// stream, running the two-phase dispatch loop, and invoking log/figure/stat
// output at the end of a run.
package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/klaytn-labs/p2psim/internal/chain"
	"github.com/klaytn-labs/p2psim/internal/event"
	"github.com/klaytn-labs/p2psim/internal/eventqueue"
	"github.com/klaytn-labs/p2psim/internal/netgraph"
	"github.com/klaytn-labs/p2psim/internal/peer"
	"github.com/klaytn-labs/p2psim/internal/render"
	"github.com/klaytn-labs/p2psim/internal/simlog"
	"github.com/klaytn-labs/p2psim/internal/simrand"
	"github.com/klaytn-labs/p2psim/internal/stats"
)

var logger = simlog.NewModuleLogger(simlog.ModuleDriver)

// initialBalance is every peer's starting coin balance in the genesis block.
const initialBalance = 1000

// interarrivalScale matches original_source/main.py's `I = 1000` constant
// used to turn the hash-power ratio into a mean mining inter-arrival time.
const interarrivalScale = 1000

// Config holds the fully-parsed, validated simulation parameters.
type Config struct {
	NumPeers int
	Z0       float64 // percent slow, in [0,100]
	Z1       float64 // percent low-CPU, in [0,100]
	TxnMean  float64
	SimTime  float64
	Seed     uint64
	OutDir   string
}

// Validate rejects out-of-range configuration before any simulation state
// is built.
func (c Config) Validate() error {
	if c.NumPeers < 3 {
		return fmt.Errorf("n must be >= 3, got %d", c.NumPeers)
	}
	if c.Z0 < 0 || c.Z0 > 100 {
		return fmt.Errorf("z0 must be in [0,100], got %v", c.Z0)
	}
	if c.Z1 < 0 || c.Z1 > 100 {
		return fmt.Errorf("z1 must be in [0,100], got %v", c.Z1)
	}
	return nil
}

// Result is everything a caller might want to inspect after a run.
type Result struct {
	Registry *peer.Registry
	Graph    netgraph.Graph
	Report   stats.Report
}

// Run executes one full simulation: builds the peer set and connectivity
// graph, seeds the initial mining race and transaction stream for every
// peer, drives the event queue to completion, and writes logs, figures and
// the statistics report.
func Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := resetDir(filepath.Join(cfg.OutDir, "logs")); err != nil {
		return nil, fmt.Errorf("prepare logs dir: %w", err)
	}
	if err := resetDir(filepath.Join(cfg.OutDir, "figures")); err != nil {
		return nil, fmt.Errorf("prepare figures dir: %w", err)
	}

	rng := simrand.New(cfg.Seed)
	ids := chain.NewIDAllocator()
	queue := eventqueue.New()
	eng := &peer.Engine{Rng: rng, IDs: ids, Queue: queue}

	genesis := chain.NewGenesis(cfg.NumPeers, initialBalance)

	z0, z1 := cfg.Z0/100.0, cfg.Z1/100.0
	slowSet := toSet(rng.ChooseDistinct(cfg.NumPeers, int(z0*float64(cfg.NumPeers))))
	lowCPUSet := toSet(rng.ChooseDistinct(cfg.NumPeers, int(z1*float64(cfg.NumPeers))))

	invH0 := float64(cfg.NumPeers) * (10 - 9*z1)
	invH1 := invH0 / 10

	reg := peer.NewRegistry()
	for i := 0; i < cfg.NumPeers; i++ {
		isSlow, isLowCPU := slowSet[i], lowCPUSet[i]
		miningMean := interarrivalScale * invH1
		if isLowCPU {
			miningMean = interarrivalScale * invH0
		}
		reg.NewPeer(isSlow, isLowCPU, genesis, miningMean)
	}

	graph := netgraph.Build(rng, cfg.NumPeers)
	edges := make([][2]chain.PeerID, len(graph.Edges))
	for i, e := range graph.Edges {
		edges[i] = [2]chain.PeerID{chain.PeerID(e[0]), chain.PeerID(e[1])}
	}
	reg.ConnectAll(edges)

	if err := render.WriteNetworkGraph(filepath.Join(cfg.OutDir, "figures", "network_graph.png"), graph.N, graph.Edges); err != nil {
		logger.Errorw("write network graph figure", "err", err)
	}

	seedInitialEvents(eng, reg, genesis, cfg)

	dispatch(eng, reg, cfg.SimTime)

	if err := writeLogs(cfg.OutDir, reg); err != nil {
		return nil, fmt.Errorf("write logs: %w", err)
	}

	report := stats.Compute(reg)

	for _, p := range reg.Peers() {
		path := filepath.Join(cfg.OutDir, "figures", fmt.Sprintf("blockchain_%d.png", p.ID))
		if err := render.WritePeerTree(path, p.Graph); err != nil {
			logger.Errorw("write peer tree figure", "peer", p.ID, "err", err)
		}
	}

	return &Result{Registry: reg, Graph: graph, Report: report}, nil
}

// seedInitialEvents enqueues, for every peer, an initial BlockMined race
// against genesis and its full stream of TxnGen events up to cfg.SimTime —
// original_source/main.py's per-peer setup loop before the dispatch loop
// begins.
func seedInitialEvents(eng *peer.Engine, reg *peer.Registry, genesis *chain.Block, cfg Config) {
	for _, p := range reg.Peers() {
		mineTime := eng.Rng.Exponential(p.MiningMean)
		candidate := chain.NewChild(eng.IDs, p.ID, genesis, []*chain.Transaction{chain.NewCoinbase(eng.IDs, p.ID)})
		eng.Queue.Enqueue(&event.Event{Kind: event.BlockMined, FireTime: mineTime, Blk: candidate})

		t := eng.Rng.Exponential(cfg.TxnMean)
		for t < cfg.SimTime {
			receiver := reg.ByID(chain.PeerID(eng.Rng.IntRange(0, cfg.NumPeers)))
			txn := chain.NewTransaction(eng.IDs, p.ID, receiver.ID, 0)
			eng.Queue.Enqueue(&event.Event{Kind: event.TxnGen, FireTime: t, Txn: txn})
			t += eng.Rng.Exponential(cfg.TxnMean)
		}
	}
}

// dispatch runs the active phase (bounded by simTime) followed by the drain
// phase (TxnRecv/BlockRecv only), reproducing original_source/main.py's
// two-loop structure exactly — including its use of the previously popped
// event's fire time, not the next one, to decide whether the active phase
// continues, which lets exactly one event past simTime through before the
// phase switches.
func dispatch(eng *peer.Engine, reg *peer.Registry, simTime float64) {
	lastTime := 0.0
	for lastTime < simTime {
		ev, ok := eng.Queue.PopMin()
		if !ok {
			return
		}
		lastTime = ev.FireTime
		handle(eng, reg, ev)
	}
	for {
		ev, ok := eng.Queue.PopMin()
		if !ok {
			return
		}
		if ev.Kind == event.TxnRecv || ev.Kind == event.BlockRecv {
			handle(eng, reg, ev)
		}
	}
}

func handle(eng *peer.Engine, reg *peer.Registry, ev *event.Event) {
	switch ev.Kind {
	case event.TxnGen:
		reg.ByID(ev.Txn.Sender).OnTxnGen(eng, ev.FireTime, ev.Txn)
	case event.TxnRecv:
		reg.ByID(ev.Receiver).OnTxnRecv(eng, ev.FireTime, ev.Txn)
	case event.BlockMined:
		reg.ByID(ev.Blk.Miner).OnSelfMined(eng, ev.FireTime, ev.Blk)
	case event.BlockRecv:
		reg.ByID(ev.Receiver).OnBlockRecv(eng, ev.FireTime, ev.Blk)
	default:
		logger.Warnw("dropping event of unknown kind", "kind", ev.Kind)
	}
}

func toSet(idxs []int) map[int]bool {
	s := make(map[int]bool, len(idxs))
	for _, i := range idxs {
		s[i] = true
	}
	return s
}

func resetDir(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return err
	}
	return os.MkdirAll(path, 0o755)
}
