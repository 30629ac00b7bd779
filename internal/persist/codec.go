// Package persist converts a namespace tree to its line-oriented text form
// and reconstructs trees from it. One record per line, KIND and absolute
// path separated by a single tab, parents always written before children.
package persist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"shellfs/internal/fstree"
	"shellfs/internal/util"
)

const (
	kindDir  = "DIR"
	kindFile = "REG"
)

// Write serializes t in preorder depth-first order, one line per node, the
// root itself excluded. Because a directory's line precedes every
// descendant's line, replaying the output in file order recreates the tree.
func Write(w io.Writer, t *fstree.Tree) error {
	var werr error
	t.Walk(func(path string, n *fstree.Node) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(w, "%s\t%s\n", n.Kind(), path)
	})
	return werr
}

// Read resets t and replays every record from r through the same creation
// routines interactive commands use, so a persisted file is exactly a
// command script. Lines that cannot be parsed or created are logged and
// skipped; a truncated or partly corrupted file still loads the subtrees
// whose parents survived.
func Read(r io.Reader, t *fstree.Tree) error {
	logger := util.GetLogger("persist.Read")

	t.Reset()
	scanner := bufio.NewScanner(r)
	lineno := 0
	loaded := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		kind, path, ok := strings.Cut(line, "\t")
		if !ok {
			logger.Warn().Int("line", lineno).Str("record", line).Msg("Skipping record without tab separator")
			continue
		}
		var err error
		switch kind {
		case kindDir:
			err = t.MakeDirectory(path)
		case kindFile:
			err = t.CreateFile(path)
		default:
			logger.Warn().Int("line", lineno).Str("kind", kind).Msg("Skipping record with unknown kind")
			continue
		}
		if err != nil {
			logger.Warn().Err(err).Int("line", lineno).Str("path", path).Msg("Skipping record that cannot be created")
			continue
		}
		loaded++
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	logger.Debug().Int("nodes", loaded).Msg("Namespace replayed")
	return nil
}
