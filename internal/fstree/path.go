package fstree

import "strings"

// segments splits path on "/" and drops empty pieces, which absorbs a
// leading slash, doubled separators, and trailing slashes in one pass.
func segments(path string) []string {
	parts := strings.Split(path, "/")
	segs := parts[:0]
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

// SplitPath splits a pathname into the path of its parent directory and the
// leaf name. Trailing separators are ignored, so "/a/b/" splits the same as
// "/a/b". A path with no non-empty segment (empty, "/", "///") cannot name a
// creatable entry and fails with ErrInvalidPathname.
//
// The parent path keeps the flavor of the input: absolute paths yield an
// absolute parent ("/a/b" -> "/a", "/a" -> "/"), relative paths a relative
// one ("a/b" -> "a", "b" -> ""), so resolving the parent starts from the
// same place the full path would have.
func SplitPath(path string) (parentPath, leafName string, err error) {
	segs := segments(path)
	if len(segs) == 0 {
		return "", "", ErrInvalidPathname
	}
	leafName = segs[len(segs)-1]
	parentPath = strings.Join(segs[:len(segs)-1], "/")
	if strings.HasPrefix(path, "/") {
		parentPath = "/" + parentPath
	}
	return parentPath, leafName, nil
}

// Resolve walks path to a node handle. The empty path and "." name the
// cursor, "/" names the root. Anything else is split into segments and
// walked from the root (absolute) or the cursor (relative), matching each
// segment against the current directory's child chain by exact name. A miss
// at any segment resolves nothing; there is no partial result.
func (t *Tree) Resolve(path string) (Handle, bool) {
	if path == "" || path == "." {
		return t.cursor, true
	}
	if path == "/" {
		return t.root, true
	}
	cur := t.cursor
	if strings.HasPrefix(path, "/") {
		cur = t.root
	}
	for _, seg := range segments(path) {
		child := t.findChild(cur, seg)
		if child == NilHandle {
			return NilHandle, false
		}
		cur = child
	}
	return cur, true
}

// findChild scans dir's child chain for an exact, case-sensitive name match.
// Returns the null handle when dir is not a live directory or has no such
// child. Cost is linear in the number of children.
func (t *Tree) findChild(dir Handle, name string) Handle {
	d := t.arena.get(dir)
	if d == nil {
		return NilHandle
	}
	for h := d.firstChild; h != NilHandle; {
		n := t.arena.get(h)
		if n == nil {
			return NilHandle
		}
		if n.name == name {
			return h
		}
		h = n.nextSibling
	}
	return NilHandle
}
