package fstree

import "errors"

// Operation failures wrap one of these sentinels so callers can classify
// with errors.Is while still seeing the offending path in the message.
var (
	// ErrInvalidPathname is returned for an empty or unparsable path.
	ErrInvalidPathname = errors.New("invalid pathname")

	// ErrNotADirectory is returned when the resolved parent of a creation
	// path is missing or is a file.
	ErrNotADirectory = errors.New("not a directory")

	// ErrAlreadyExists is returned when a creation target name is already
	// taken among its siblings.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotFound is returned when path resolution fails at any segment.
	ErrNotFound = errors.New("no such file or directory")

	// ErrNotEmpty is returned when removing a directory that still has
	// children.
	ErrNotEmpty = errors.New("directory not empty")

	// ErrTypeMismatch is returned when an operation targets the wrong node
	// kind, e.g. removing a directory with RemoveFile.
	ErrTypeMismatch = errors.New("wrong node type")
)
