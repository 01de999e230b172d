package node

import "errors"

// ErrSelfConnect is returned by Connect when a node is asked to connect to
// itself.
var ErrSelfConnect = errors.New("node: cannot connect to self")

// ErrUnknownBlock is returned by GetBlock when the requested hash is not
// present in this node's chain.
var ErrUnknownBlock = errors.New("node: unknown block")
