package node

import (
	"github.com/coinmesh-network/coinmesh-core/pkg/block"
	"github.com/coinmesh-network/coinmesh-core/pkg/types"
)

// GetIntroducedToNewBlock is how a peer tells this node about a block it
// has just adopted or mined. If the block is already part of this node's
// chain, nothing happens — that known-check is what keeps gossip from
// recursing forever. Otherwise this node walks the new block's ancestry
// back through sender until it meets its own chain, and — only if the
// resulting candidate branch would make for a strictly longer chain than
// its own — speculatively replays it on a copy of its state and adopts
// that copy if the replay produces a longer chain than it started with.
func (n *Node) GetIntroducedToNewBlock(ref block.PrevRef, sender Peer) {
	n.mu.Lock()
	refs := n.state.Refs()
	n.mu.Unlock()

	if _, known := indexOfRef(refs, ref); known {
		return
	}

	// ref cannot be the genesis sentinel here: genesis is always refs[0],
	// and that case was just handled by the known-check above.
	hash, _ := ref.Hash()

	branch, forkIndex, ok := discoverBranch(hash, sender, refs)
	if !ok {
		// sender's chain is inconsistent with the branch it advertised
		// (a GetBlock call failed mid-walk); abandon silently.
		return
	}

	// potentialLen and len(refs) are both lengths of a chain-hash sequence
	// that includes the leading genesis sentinel, so they compare
	// apples-to-apples: (forkIndex+1) is how many entries of our own
	// sequence survive up to and including the fork point, plus the
	// branch's own new blocks.
	potentialLen := (forkIndex + 1) + len(branch)
	if potentialLen <= len(refs) {
		// Not longer than what we already have; ties do not adopt.
		return
	}

	adopted := false
	n.mu.Lock()
	candidate := n.state.Clone()
	rollbackTo(candidate, refs[forkIndex], n.txIndex)
	for _, b := range branch {
		if !tryApplyBlock(candidate, n.txIndex, b, b.Hash()) {
			// Stop at the first invalid block, keeping whatever valid
			// prefix was already applied; it may still be adopted below
			// if that prefix alone is longer than the incumbent.
			break
		}
	}
	if len(candidate.Chain) > len(n.state.Chain) {
		n.state = candidate
		adopted = true
	}
	latest := n.state.Tip()
	n.mu.Unlock()

	if adopted {
		n.logger.Info().Str("tip", refOrSentinel(latest)).Msg("reorg: adopted longer chain")
		n.publishLatestBlock()
	}
}

// discoverBranch walks backward from startHash by repeatedly calling
// sender.GetBlock and following each block's PrevBlockHash, accumulating
// the branch earliest-first, until it reaches a hash already present in
// refs (the fork point). It reports the branch and the index of the fork
// point within refs, or ok=false if the walk could not complete because
// sender returned an unknown-block error partway through.
func discoverBranch(startHash types.Hash, sender Peer, refs []block.PrevRef) (branch []*block.Block, forkIndex int, ok bool) {
	h := startHash
	for {
		b, err := sender.GetBlock(h)
		if err != nil {
			return nil, 0, false
		}
		branch = append([]*block.Block{b}, branch...)

		if idx, found := indexOfRef(refs, b.PrevBlockHash); found {
			return branch, idx, true
		}
		// b.PrevBlockHash is not yet known to us and is not genesis
		// (genesis is always in refs), so keep walking backward.
		ph, _ := b.PrevBlockHash.Hash()
		h = ph
	}
}

func indexOfRef(refs []block.PrevRef, ref block.PrevRef) (int, bool) {
	for i, r := range refs {
		if r.Equal(ref) {
			return i, true
		}
	}
	return 0, false
}

func refOrSentinel(ref block.PrevRef) string {
	if ref.IsGenesis() {
		return "Genesis"
	}
	h, _ := ref.Hash()
	return h.String()[:12]
}
