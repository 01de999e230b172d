package node

// Connect adds other to this node's peer set and introduces it to our
// current tip, so it can catch up if our chain is ahead of its own.
//
// Connection is symmetric: connecting to other also connects other back
// to us. other.Connect(n) adds us to other's peers and calls back into
// n.Connect, which returns at once via the already-connected branch
// below, so the handshake cannot recurse further. Each side introduces
// its own tip to the other. Mempool is deliberately not synchronized
// here — only the tip hash is, per spec §4.4.
func (n *Node) Connect(other Peer) error {
	if other.Address() == n.Address() {
		return ErrSelfConnect
	}

	n.mu.Lock()
	_, already := n.peers[other.Address()]
	if !already {
		n.peers[other.Address()] = other
	}
	n.mu.Unlock()

	if already {
		return nil
	}

	n.logger.Debug().Str("peer", other.Address().String()[:12]).Msg("connected to peer")

	if err := other.Connect(n); err != nil {
		return err
	}

	other.GetIntroducedToNewBlock(n.LatestHash(), n)
	return nil
}

// DisconnectFrom symmetrically removes other from this node's peer set
// (and itself from other's). It is idempotent and sends no notifications.
func (n *Node) DisconnectFrom(other Peer) {
	n.mu.Lock()
	_, was := n.peers[other.Address()]
	delete(n.peers, other.Address())
	n.mu.Unlock()

	if was {
		other.DisconnectFrom(n)
	}
}
