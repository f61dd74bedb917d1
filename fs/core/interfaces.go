package core

import (
	"context"
	"io"
	"iter"
	"time"
)

// Kind classifies a filesystem entry.
type Kind int

const (
	// KindFile is a regular file (or object, on flat stores).
	KindFile Kind = iota
	// KindDirectory is a directory.
	KindDirectory
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// OpenMode selects how Open positions and uses a file handle.
type OpenMode int

const (
	// ModeRead opens an existing file for reading.
	ModeRead OpenMode = iota
	// ModeWrite creates or truncates a file for writing.
	ModeWrite
	// ModeAppend opens a file for writing at its end, creating it if
	// missing. Backends without append semantics reject it.
	ModeAppend
)

// String returns the conventional binary mode string ("rb", "wb", "ab").
func (m OpenMode) String() string {
	switch m {
	case ModeRead:
		return "rb"
	case ModeWrite:
		return "wb"
	case ModeAppend:
		return "ab"
	default:
		return "invalid"
	}
}

// StatInfo is the metadata record returned by Stat.
type StatInfo struct {
	// Path is the path the record describes, as given to Stat.
	Path string
	// Kind classifies the entry as a file or directory.
	Kind Kind
	// Size is the size in bytes. Meaningful only for files.
	Size int64
	// ModTime is the last modification time, when the backend tracks one.
	ModTime time.Time
	// Sys holds the backend-specific source record, if any.
	Sys any
}

// IsDir reports whether the record describes a directory.
func (s *StatInfo) IsDir() bool { return s.Kind == KindDirectory }

// WalkEntry is one level of a directory walk: the directory visited and the
// names (not full paths) of its immediate subdirectories and files, each
// sorted lexicographically.
type WalkEntry struct {
	Dir   string
	Dirs  []string
	Files []string
}

// File is an open handle returned by FileSystem.Open. Handles are
// mode-checked: reading a write handle or writing a read handle fails with
// ErrInvalid. The caller owns the handle and must Close it; for write
// handles Close also reports whether the content was durably stored.
//
// Handles opened for reading may additionally implement io.Seeker and
// io.ReaderAt; callers discover those capabilities by type assertion.
type File interface {
	io.Reader
	io.Writer
	io.Closer

	// Name returns the path the handle was opened with.
	Name() string
}

// FileSystem is the contract every storage backend implements. A handle is
// obtained from a backend constructor or from the resolver in the module
// root, and is safe for concurrent use.
//
// Paths are interpreted by the backend that receives them: host paths on
// local disk, absolute slash paths on distributed filesystems, bare keys
// (with an optional scheme prefix) on object stores. Errors are
// *io/fs.PathError values wrapping the package sentinels.
type FileSystem interface {
	// Stat returns the metadata record for path. It fails with ErrNotExist
	// for missing paths and ErrNotSupported on backends that cannot
	// introspect metadata.
	Stat(ctx context.Context, path string) (*StatInfo, error)

	// List returns the immediate children of path as full paths, sorted
	// lexicographically.
	List(ctx context.Context, path string) ([]string, error)

	// Walk traverses the tree rooted at path lazily in pre-order,
	// yielding one WalkEntry per directory. The first error terminates
	// the sequence.
	Walk(ctx context.Context, path string) iter.Seq2[WalkEntry, error]

	// Mkdir creates a single directory. It fails with ErrExist if path
	// already exists and ErrNotExist if the parent is missing.
	Mkdir(ctx context.Context, path string) error

	// MkdirAll creates a directory along with any missing parents. It
	// succeeds if path already exists.
	MkdirAll(ctx context.Context, path string) error

	// Delete removes path. Removing a missing path fails with
	// ErrNotExist; removing a non-empty directory without recursive
	// fails with ErrNotEmpty.
	Delete(ctx context.Context, path string, recursive bool) error

	// Rename moves oldpath to newpath within the same backend.
	Rename(ctx context.Context, oldpath, newpath string) error

	// Exists reports whether path exists.
	Exists(ctx context.Context, path string) (bool, error)

	// IsDir reports whether path is a directory. On flat stores this is
	// a listing probe and probe failures classify as false.
	IsDir(ctx context.Context, path string) (bool, error)

	// IsFile reports whether path is a regular file.
	IsFile(ctx context.Context, path string) (bool, error)

	// Open returns a handle to path in the given mode.
	Open(ctx context.Context, path string, mode OpenMode) (File, error)

	// ReadFile returns the entire content of path.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// DiskUsage returns the total size in bytes of the tree rooted at
	// path: a file's own size, or the sum of file sizes below a
	// directory.
	DiskUsage(ctx context.Context, path string) (int64, error)

	// IsFileStore reports whether the backend has genuine hierarchical
	// directories with Unix-like semantics. Flat object stores, which
	// only emulate directories, report false.
	IsFileStore() bool

	// PathSeparator returns the separator used to join paths on this
	// backend.
	PathSeparator() string
}
