package persist

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shellfs/internal/fstree"
)

// buildTestTree creates a small namespace with nesting, siblings, and both
// node kinds.
func buildTestTree(t *testing.T) *fstree.Tree {
	t.Helper()
	tr := fstree.New()
	for _, p := range []string{"/docs", "/docs/drafts", "/bin"} {
		require.NoError(t, tr.MakeDirectory(p))
	}
	for _, p := range []string{"/docs/readme", "/docs/drafts/wip", "/bin/tool"} {
		require.NoError(t, tr.CreateFile(p))
	}
	return tr
}

// records maps every path in the tree to its kind, for isomorphism checks.
func records(t *fstree.Tree) map[string]fstree.Kind {
	out := make(map[string]fstree.Kind)
	t.Walk(func(path string, n *fstree.Node) {
		out[path] = n.Kind()
	})
	return out
}

func TestWrite_Format(t *testing.T) {
	t.Parallel()

	tr := buildTestTree(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tr))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"DIR\t/docs",
		"DIR\t/docs/drafts",
		"REG\t/docs/drafts/wip",
		"REG\t/docs/readme",
		"DIR\t/bin",
		"REG\t/bin/tool",
	}, lines, "records must be preorder depth-first with a single tab separator")
}

func TestWrite_RootHasNoRecord(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, fstree.New()))
	assert.Empty(t, buf.String())
}

func TestWrite_ParentsPrecedeChildren(t *testing.T) {
	t.Parallel()

	tr := buildTestTree(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tr))

	seen := map[string]bool{"/": true}
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		_, path, ok := strings.Cut(line, "\t")
		require.True(t, ok)
		parent := path[:strings.LastIndex(path, "/")]
		if parent == "" {
			parent = "/"
		}
		assert.True(t, seen[parent], "parent of %s must be written first", path)
		seen[path] = true
	}
}

func TestRoundTrip_Isomorphic(t *testing.T) {
	t.Parallel()

	orig := buildTestTree(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, orig))

	loaded := fstree.New()
	require.NoError(t, Read(&buf, loaded))

	assert.Equal(t, records(orig), records(loaded), "same paths with the same kind at each")
	assert.Equal(t, orig.Len(), loaded.Len())

	// sibling order survives too since insert always appends
	origLs, err := orig.List("/docs")
	require.NoError(t, err)
	loadedLs, err := loaded.List("/docs")
	require.NoError(t, err)
	assert.Equal(t, origLs, loadedLs)
}

func TestRead_ReplacesExistingTree(t *testing.T) {
	t.Parallel()

	tr := fstree.New()
	require.NoError(t, tr.MakeDirectory("/old"))
	require.NoError(t, tr.ChangeDirectory("/old"))

	require.NoError(t, Read(strings.NewReader("DIR\t/new\n"), tr))

	_, ok := tr.Resolve("/old")
	assert.False(t, ok, "load replaces the whole namespace")
	_, ok = tr.Resolve("/new")
	assert.True(t, ok)
	assert.Equal(t, "/", tr.WorkingPath(), "cursor resets to the fresh root")
}

func TestRead_SkipsMalformedLines(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"DIR\t/a",
		"",                 // blank line ignored
		"no tab here",      // no separator
		"LNK\t/a/link",     // unknown kind
		"REG\t/a/ok",       // fine
		"REG\t/missing/f",  // parent never created
		"REG\t/a/ok",       // duplicate
		"DIR\t/b",          // fine, later lines unaffected by earlier skips
	}, "\n") + "\n"

	tr := fstree.New()
	require.NoError(t, Read(strings.NewReader(input), tr))

	var paths []string
	tr.Walk(func(path string, n *fstree.Node) {
		paths = append(paths, path)
	})
	sort.Strings(paths)
	assert.Equal(t, []string{"/a", "/a/ok", "/b"}, paths)
}

// A child line written before its parent's line is the corruption case the
// loader must survive: the orphan is dropped, correctly ordered lines load.
func TestRead_OutOfOrderParent(t *testing.T) {
	t.Parallel()

	input := "REG\t/lost/child\nDIR\t/lost\nDIR\t/ok\nREG\t/ok/f\n"

	tr := fstree.New()
	require.NoError(t, Read(strings.NewReader(input), tr))

	_, ok := tr.Resolve("/lost/child")
	assert.False(t, ok, "the orphan record is skipped")
	_, ok = tr.Resolve("/lost")
	assert.True(t, ok, "the late parent itself still loads")
	_, ok = tr.Resolve("/ok/f")
	assert.True(t, ok, "unrelated ordered records load")
}
