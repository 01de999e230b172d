package node

// publishLatestBlock tells every connected peer about this node's current
// tip. Each peer's own known-check (GetIntroducedToNewBlock) prevents this
// from causing a notification storm: a peer that already has the tip, or
// that already received it from someone else, does nothing further.
func (n *Node) publishLatestBlock() {
	n.mu.Lock()
	peers := make([]Peer, 0, len(n.peers))
	for _, p := range n.peers {
		peers = append(peers, p)
	}
	tip := n.state.Tip()
	n.mu.Unlock()

	for _, p := range peers {
		p.GetIntroducedToNewBlock(tip, n)
	}
}
