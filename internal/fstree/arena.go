package fstree

import (
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
)

// arena owns every node in a tree and hands out stable handles for them.
// Handles stay valid until the slot is evicted; a stale handle simply fails
// to load.
type arena struct {
	slots      *xsync.MapOf[Handle, *Node] // maps handles to live nodes
	lastHandle atomic.Uint64             // last handle assigned; incremented per alloc
}

func newArena() *arena {
	return &arena{slots: xsync.NewMapOf[Handle, *Node]()}
}

// alloc stores node in a fresh slot and returns its handle.
func (a *arena) alloc(node *Node) Handle {
	h := Handle(a.lastHandle.Add(1))
	a.slots.Store(h, node)
	return h
}

// get returns the node for h, or nil for the null handle and evicted slots.
func (a *arena) get(h Handle) *Node {
	if h == NilHandle {
		return nil
	}
	node, ok := a.slots.Load(h)
	if !ok {
		return nil
	}
	return node
}

// evict drops the slot for h. The caller must have already unlinked the
// node from its owning chain.
func (a *arena) evict(h Handle) {
	a.slots.Delete(h)
}

// size returns the number of live slots, root included.
func (a *arena) size() int {
	return a.slots.Size()
}
