package peer

import "github.com/klaytn-labs/p2psim/internal/chain"

// Registry is the driver-owned peer set for the simulation's lifetime. Peer
// ids are allocated here rather than by a package-level counter.
type Registry struct {
	peers []*Peer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// NewPeer mints the next peer id and constructs a Peer rooted at genesis.
func (r *Registry) NewPeer(isSlow, isLowCPU bool, genesis *chain.Block, miningMean float64) *Peer {
	id := chain.PeerID(len(r.peers))
	p := newPeer(id, isSlow, isLowCPU, genesis, miningMean)
	r.peers = append(r.peers, p)
	return p
}

// Peers returns all registered peers in id order.
func (r *Registry) Peers() []*Peer {
	return r.peers
}

// ByID resolves a stable peer id back to its Peer, the non-owning
// back-reference lookup used throughout this package.
func (r *Registry) ByID(id chain.PeerID) *Peer {
	return r.peers[id]
}

// Len returns the number of registered peers.
func (r *Registry) Len() int {
	return len(r.peers)
}

// ConnectAll wires every peer's neighbor list from an undirected edge list.
func (r *Registry) ConnectAll(edges [][2]chain.PeerID) {
	adjacency := make(map[chain.PeerID][]chain.PeerID, len(r.peers))
	for _, e := range edges {
		a, b := e[0], e[1]
		adjacency[a] = append(adjacency[a], b)
		adjacency[b] = append(adjacency[b], a)
	}
	for _, p := range r.peers {
		connectNeighbors(p, r.peers, adjacency)
	}
}
