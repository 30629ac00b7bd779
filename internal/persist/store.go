package persist

import (
	"os"

	"github.com/pkg/errors"

	"shellfs/internal/fstree"
	"shellfs/internal/util"
)

// ErrPersistence marks failures of the underlying save-file read or write.
// Callers classify with errors.Is; the wrapped message carries the path and
// the OS error.
var ErrPersistence = errors.New("persistence failure")

// Save writes t's serialized form to the file at path, replacing any
// previous contents. The write is not transactional; a crash mid-write can
// leave a truncated file, which Load tolerates by skipping broken records.
func Save(path string, t *fstree.Tree) error {
	logger := util.GetLogger("persist.Save")

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(ErrPersistence, "create %s: %v", path, err)
	}
	if err := Write(f, t); err != nil {
		f.Close()
		return errors.Wrapf(ErrPersistence, "write %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(ErrPersistence, "close %s: %v", path, err)
	}
	logger.Info().Str("path", path).Int("nodes", t.Len()-1).Msg("Namespace saved")
	return nil
}

// Load replaces t's contents with the namespace persisted at path. The file
// is opened before the tree is touched, so a missing or unreadable file
// leaves the in-memory namespace unchanged.
func Load(path string, t *fstree.Tree) error {
	logger := util.GetLogger("persist.Load")

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(ErrPersistence, "open %s: %v", path, err)
	}
	defer f.Close()

	if err := Read(f, t); err != nil {
		return errors.Wrapf(ErrPersistence, "read %s: %v", path, err)
	}
	logger.Info().Str("path", path).Int("nodes", t.Len()-1).Msg("Namespace reloaded")
	return nil
}
