package core

import (
	"context"
	"iter"
)

// Unimplemented fails every contract operation with ErrNotImplemented.
// Partial backends embed it so operations they do not provide fail uniformly
// with the operation name and path instead of a missing method.
type Unimplemented struct{}

var _ FileSystem = Unimplemented{}

func (Unimplemented) Stat(ctx context.Context, path string) (*StatInfo, error) {
	return nil, PathError("stat", path, ErrNotImplemented)
}

func (Unimplemented) List(ctx context.Context, path string) ([]string, error) {
	return nil, PathError("list", path, ErrNotImplemented)
}

func (Unimplemented) Walk(ctx context.Context, path string) iter.Seq2[WalkEntry, error] {
	return func(yield func(WalkEntry, error) bool) {
		yield(WalkEntry{}, PathError("walk", path, ErrNotImplemented))
	}
}

func (Unimplemented) Mkdir(ctx context.Context, path string) error {
	return PathError("mkdir", path, ErrNotImplemented)
}

func (Unimplemented) MkdirAll(ctx context.Context, path string) error {
	return PathError("mkdir", path, ErrNotImplemented)
}

func (Unimplemented) Delete(ctx context.Context, path string, recursive bool) error {
	return PathError("delete", path, ErrNotImplemented)
}

func (Unimplemented) Rename(ctx context.Context, oldpath, newpath string) error {
	return PathError("rename", oldpath, ErrNotImplemented)
}

func (Unimplemented) Exists(ctx context.Context, path string) (bool, error) {
	return false, PathError("exists", path, ErrNotImplemented)
}

func (Unimplemented) IsDir(ctx context.Context, path string) (bool, error) {
	return false, PathError("isdir", path, ErrNotImplemented)
}

func (Unimplemented) IsFile(ctx context.Context, path string) (bool, error) {
	return false, PathError("isfile", path, ErrNotImplemented)
}

func (Unimplemented) Open(ctx context.Context, path string, mode OpenMode) (File, error) {
	return nil, PathError("open", path, ErrNotImplemented)
}

func (Unimplemented) ReadFile(ctx context.Context, path string) ([]byte, error) {
	return nil, PathError("read", path, ErrNotImplemented)
}

func (Unimplemented) DiskUsage(ctx context.Context, path string) (int64, error) {
	return 0, PathError("diskusage", path, ErrNotImplemented)
}

func (Unimplemented) IsFileStore() bool { return false }

func (Unimplemented) PathSeparator() string { return "/" }
