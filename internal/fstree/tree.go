package fstree

import (
	"fmt"
	"strings"
)

// Tree is one in-memory namespace: an arena of nodes, the root directory,
// and the cursor acting as working directory. A Tree is owned by a single
// session; operations are synchronous and run to completion.
type Tree struct {
	arena  *arena
	root   Handle
	cursor Handle
}

// Entry is one row of a directory listing.
type Entry struct {
	Name string
	Kind Kind
}

// New returns an empty namespace: a root directory with no children and the
// cursor parked on it.
func New() *Tree {
	t := &Tree{arena: newArena()}
	t.root = t.arena.alloc(&Node{name: "", kind: KindDirectory})
	t.cursor = t.root
	return t
}

// Reset drops every node and rebuilds a fresh root with the cursor on it.
// The loader calls this before replaying a persisted namespace.
func (t *Tree) Reset() {
	t.arena = newArena()
	t.root = t.arena.alloc(&Node{name: "", kind: KindDirectory})
	t.cursor = t.root
}

// Node returns the live node for h, or nil.
func (t *Tree) Node(h Handle) *Node { return t.arena.get(h) }

// Root returns the root directory's handle.
func (t *Tree) Root() Handle { return t.root }

// Cursor returns the current working directory's handle.
func (t *Tree) Cursor() Handle { return t.cursor }

// Len returns the number of live nodes, root included.
func (t *Tree) Len() int { return t.arena.size() }

// insert appends child at the tail of parentDir's child chain and sets its
// parent back-reference. Appending keeps creation order, which the
// serializer relies on for deterministic output. parentDir must be a live
// directory and the name must be free; callers check both.
func (t *Tree) insert(parentDir Handle, child *Node) Handle {
	p := t.arena.get(parentDir)
	child.parent = parentDir
	h := t.arena.alloc(child)
	if p.firstChild == NilHandle {
		p.firstChild = h
		return h
	}
	tail := p.firstChild
	for {
		n := t.arena.get(tail)
		if n.nextSibling == NilHandle {
			n.nextSibling = h
			return h
		}
		tail = n.nextSibling
	}
}

// remove unlinks target from parentDir's child chain and evicts its arena
// slot. target must currently be a child of parentDir.
func (t *Tree) remove(parentDir, target Handle) {
	p := t.arena.get(parentDir)
	n := t.arena.get(target)
	if p.firstChild == target {
		p.firstChild = n.nextSibling
	} else {
		for h := p.firstChild; h != NilHandle; {
			prev := t.arena.get(h)
			if prev.nextSibling == target {
				prev.nextSibling = n.nextSibling
				break
			}
			h = prev.nextSibling
		}
	}
	t.arena.evict(target)
}

// resolveParent locates the directory a creation or removal path nests
// under. The ordering is part of the contract: a missing or non-directory
// parent reports ErrNotADirectory before the leaf is ever considered.
func (t *Tree) resolveParent(path string) (Handle, string, error) {
	parentPath, leaf, err := SplitPath(path)
	if err != nil {
		return NilHandle, "", fmt.Errorf("%w: %q", ErrInvalidPathname, path)
	}
	parent, ok := t.Resolve(parentPath)
	if !ok || !t.arena.get(parent).IsDir() {
		return NilHandle, "", fmt.Errorf("%w: %s", ErrNotADirectory, parentPath)
	}
	return parent, leaf, nil
}

// MakeDirectory creates an empty directory at path. The parent must already
// exist and be a directory, and the leaf name must be free.
func (t *Tree) MakeDirectory(path string) error {
	return t.create(path, KindDirectory)
}

// CreateFile creates an empty file placeholder at path under the same rules
// as MakeDirectory.
func (t *Tree) CreateFile(path string) error {
	return t.create(path, KindFile)
}

func (t *Tree) create(path string, kind Kind) error {
	parent, leaf, err := t.resolveParent(path)
	if err != nil {
		return err
	}
	if t.findChild(parent, leaf) != NilHandle {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, path)
	}
	t.insert(parent, &Node{name: leaf, kind: kind})
	return nil
}

// RemoveDirectory removes the empty directory at path. The root is never
// removable.
func (t *Tree) RemoveDirectory(path string) error {
	target, node, err := t.resolveTarget(path)
	if err != nil {
		return err
	}
	if !node.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrTypeMismatch, path)
	}
	if node.firstChild != NilHandle {
		return fmt.Errorf("%w: %s", ErrNotEmpty, path)
	}
	if target == t.cursor {
		t.cursor = node.parent
	}
	t.remove(node.parent, target)
	return nil
}

// RemoveFile removes the file at path. Directories are rejected with
// ErrTypeMismatch.
func (t *Tree) RemoveFile(path string) error {
	target, node, err := t.resolveTarget(path)
	if err != nil {
		return err
	}
	if node.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrTypeMismatch, path)
	}
	t.remove(node.parent, target)
	return nil
}

// resolveTarget locates a removal target as a child of its resolved parent.
// Parent problems surface as ErrNotADirectory, an absent leaf as
// ErrNotFound; kind checks are the caller's.
func (t *Tree) resolveTarget(path string) (Handle, *Node, error) {
	parent, leaf, err := t.resolveParent(path)
	if err != nil {
		return NilHandle, nil, err
	}
	target := t.findChild(parent, leaf)
	if target == NilHandle {
		return NilHandle, nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return target, t.arena.get(target), nil
}

// ChangeDirectory moves the cursor to the directory at path.
func (t *Tree) ChangeDirectory(path string) error {
	h, ok := t.Resolve(path)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if !t.arena.get(h).IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrTypeMismatch, path)
	}
	t.cursor = h
	return nil
}

// List returns the (name, kind) of each immediate child of the directory at
// path, in child-chain order. The empty path lists the working directory.
func (t *Tree) List(path string) ([]Entry, error) {
	h, ok := t.Resolve(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	dir := t.arena.get(h)
	if !dir.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrTypeMismatch, path)
	}
	var entries []Entry
	for c := dir.firstChild; c != NilHandle; {
		n := t.arena.get(c)
		entries = append(entries, Entry{Name: n.name, Kind: n.kind})
		c = n.nextSibling
	}
	return entries, nil
}

// WorkingPath renders the cursor's absolute path. The root renders as "/".
func (t *Tree) WorkingPath() string {
	return t.PathOf(t.cursor)
}

// PathOf renders the absolute path of the node at h by walking parent
// back-references up to the root.
func (t *Tree) PathOf(h Handle) string {
	var names []string
	for h != t.root {
		n := t.arena.get(h)
		if n == nil {
			return ""
		}
		names = append(names, n.name)
		h = n.parent
	}
	if len(names) == 0 {
		return "/"
	}
	// reverse the child-to-root order
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return "/" + strings.Join(names, "/")
}

// Walk visits every node except the root in preorder depth-first order: a
// directory's line is emitted before any of its descendants', and a node's
// whole subtree before its next sibling. fn receives each node's absolute
// path.
func (t *Tree) Walk(fn func(path string, n *Node)) {
	root := t.arena.get(t.root)
	t.walkChain(root.firstChild, "", fn)
}

func (t *Tree) walkChain(h Handle, prefix string, fn func(string, *Node)) {
	for h != NilHandle {
		n := t.arena.get(h)
		path := prefix + "/" + n.name
		fn(path, n)
		if n.firstChild != NilHandle {
			t.walkChain(n.firstChild, path, fn)
		}
		h = n.nextSibling
	}
}
