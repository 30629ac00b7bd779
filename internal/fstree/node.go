package fstree

// Kind distinguishes the two node types in the namespace.
type Kind int

const (
	KindDirectory Kind = iota
	KindFile
)

// String returns the persisted-format tag for the kind.
func (k Kind) String() string {
	if k == KindDirectory {
		return "DIR"
	}
	return "REG"
}

// Handle addresses a node slot in the arena. The zero Handle is null and
// never refers to a live node.
type Handle uint64

// NilHandle is the null arena handle.
const NilHandle Handle = 0

// Node is one entry in the namespace. Children of a directory form a singly
// linked chain through nextSibling, anchored at the directory's firstChild.
// parent is a plain back-reference and is never followed to free anything;
// removal relinks the owning chain and evicts the slot explicitly.
type Node struct {
	name        string
	kind        Kind
	firstChild  Handle
	nextSibling Handle
	parent      Handle
}

// Name returns the node's name, the last segment of its path.
func (n *Node) Name() string { return n.name }

// Kind returns whether the node is a directory or a file.
func (n *Node) Kind() Kind { return n.kind }

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool { return n.kind == KindDirectory }
