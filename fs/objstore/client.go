package objstore

import (
	"context"
	"time"

	"github.com/ljodea/arrow/fs/core"
)

// EntryClass tags a listing entry with the role the store assigned it.
type EntryClass int

const (
	// ClassObject is a stored object, presented as a file.
	ClassObject EntryClass = iota
	// ClassDirectory is a directory marker or common prefix.
	ClassDirectory
	// ClassBucket is a bucket or root marker. Some stores surface one in
	// listings; it is never part of a reconstructed tree.
	ClassBucket
)

// Entry is one result of a detailed listing. Keys are bare, without a
// scheme prefix or trailing slash, so entries of different classes compare
// directly.
type Entry struct {
	Key     string
	Class   EntryClass
	Size    int64
	ModTime time.Time
}

// Client is the narrow store surface the backend consumes. Paths are bare
// keys. Implementations return plain errors (sentinel-wrapped where a
// taxonomy applies); the backend adds the operation and path.
//
// Implementations must be safe for concurrent use.
type Client interface {
	// List returns the keys visible one level under path: the children of
	// a directory-like prefix (directory markers keep their trailing
	// slash), or the key itself if path is a plain object. A missing path
	// lists empty.
	List(ctx context.Context, path string) ([]string, error)

	// ListDetail lists one level under path with marker classification.
	// The path's own marker is not included.
	ListDetail(ctx context.Context, path string) ([]Entry, error)

	// Exists reports whether path exists as an object or as a non-empty
	// directory-like prefix.
	Exists(ctx context.Context, path string) (bool, error)

	// Remove deletes the object at path; with recursive set it deletes
	// every key under path as well.
	Remove(ctx context.Context, path string, recursive bool) error

	// Mkdir records a directory marker for path. With parents set,
	// markers for missing ancestors are recorded too.
	Mkdir(ctx context.Context, path string, parents bool) error

	// Open returns a handle to the object at path in the given mode.
	Open(ctx context.Context, path string, mode core.OpenMode) (core.File, error)
}
