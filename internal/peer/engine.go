package peer

import (
	"github.com/klaytn-labs/p2psim/internal/chain"
	"github.com/klaytn-labs/p2psim/internal/eventqueue"
	"github.com/klaytn-labs/p2psim/internal/simrand"
)

// Engine bundles the shared, driver-owned collaborators every handler needs:
// the deterministic rng, the id allocator, and the event queue to enqueue
// into. None of these are package-level globals — they are threaded
// explicitly into every call, and the rng must be consumed deterministically
// in the order events fire.
type Engine struct {
	Rng   *simrand.Source
	IDs   *chain.IDAllocator
	Queue *eventqueue.Queue

	// BlocksMinedCount is the global count of blocks accepted from
	// self-mining, incremented whenever a self-mined block survives the
	// stale check.
	BlocksMinedCount int
}
