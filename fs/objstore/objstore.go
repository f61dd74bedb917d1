package objstore

import (
	"context"
	"iter"
	"sort"

	"github.com/ljodea/arrow/fs/core"
	"github.com/ljodea/arrow/fs/internal/pathutil"
)

// FS adapts a flat object store to the filesystem contract. Directories are
// an emulation: the store only knows keys, and FS reconstructs a tree from
// marker entries level by level. Operations foreign to a flat namespace
// (Stat, Rename) fail with the corresponding taxonomy error; everything a
// backend does not override falls through to core.Unimplemented.
type FS struct {
	core.Unimplemented
	client Client
}

var _ core.FileSystem = (*FS)(nil)

// New wraps client in the directory-emulating adapter. The client must be
// non-nil.
func New(client Client) *FS {
	return &FS{client: client}
}

// Client returns the underlying store client, for callers that need to
// reach past the emulation.
func (o *FS) Client() Client { return o.client }

// Stat fails with ErrNotSupported: a flat store has no metadata record for
// emulated directories, and object metadata alone cannot honor the stat
// contract.
func (o *FS) Stat(ctx context.Context, path string) (*core.StatInfo, error) {
	return nil, core.PathError("stat", path, core.ErrNotSupported)
}

func (o *FS) List(ctx context.Context, path string) ([]string, error) {
	keys, err := o.client.List(ctx, pathutil.NormalizeKey(path))
	if err != nil {
		return nil, core.PathError("list", path, err)
	}
	sort.Strings(keys)
	return keys, nil
}

// Walk reconstructs the directory tree lazily, one listing per level, in
// pre-order. Duplicate directory markers collapse via set membership, a
// file whose key doubles as a directory marker counts as the directory,
// and bucket markers are skipped entirely. Recursion descends into child
// prefixes in sorted order.
func (o *FS) Walk(ctx context.Context, path string) iter.Seq2[core.WalkEntry, error] {
	root := pathutil.NormalizeKey(path)
	return func(yield func(core.WalkEntry, error) bool) {
		o.walk(ctx, root, yield)
	}
}

func (o *FS) walk(ctx context.Context, prefix string, yield func(core.WalkEntry, error) bool) bool {
	if err := ctx.Err(); err != nil {
		yield(core.WalkEntry{}, core.PathError("walk", prefix, err))
		return false
	}

	entries, err := o.client.ListDetail(ctx, prefix)
	if err != nil {
		yield(core.WalkEntry{}, core.PathError("walk", prefix, err))
		return false
	}

	dirKeys := make(map[string]struct{})
	fileKeys := make(map[string]struct{})
	for _, e := range entries {
		switch e.Class {
		case ClassDirectory:
			dirKeys[e.Key] = struct{}{}
		case ClassBucket:
			// Root markers never join the tree.
		default:
			fileKeys[e.Key] = struct{}{}
		}
	}

	// Full-key comparison happens before reduction to names: an object
	// whose key is also a directory marker is the directory.
	files := make([]string, 0, len(fileKeys))
	for k := range fileKeys {
		if _, ok := dirKeys[k]; ok {
			continue
		}
		files = append(files, pathutil.Base(k))
	}
	sort.Strings(files)

	children := make([]string, 0, len(dirKeys))
	for k := range dirKeys {
		children = append(children, k)
	}
	sort.Strings(children)

	dirs := make([]string, len(children))
	for i, k := range children {
		dirs[i] = pathutil.Base(k)
	}

	if !yield(core.WalkEntry{Dir: prefix, Dirs: dirs, Files: files}, nil) {
		return false
	}
	for _, child := range children {
		if !o.walk(ctx, child, yield) {
			return false
		}
	}
	return true
}

func (o *FS) Mkdir(ctx context.Context, path string) error {
	if err := o.client.Mkdir(ctx, pathutil.NormalizeKey(path), false); err != nil {
		return core.PathError("mkdir", path, err)
	}
	return nil
}

func (o *FS) MkdirAll(ctx context.Context, path string) error {
	if err := o.client.Mkdir(ctx, pathutil.NormalizeKey(path), true); err != nil {
		return core.PathError("mkdir", path, err)
	}
	return nil
}

func (o *FS) Delete(ctx context.Context, path string, recursive bool) error {
	if err := o.client.Remove(ctx, pathutil.NormalizeKey(path), recursive); err != nil {
		return core.PathError("delete", path, err)
	}
	return nil
}

func (o *FS) Exists(ctx context.Context, path string) (bool, error) {
	ok, err := o.client.Exists(ctx, pathutil.NormalizeKey(path))
	if err != nil {
		return false, core.PathError("exists", path, err)
	}
	return ok, nil
}

// IsDir probes with a listing: an empty result, or exactly one entry equal
// to the key itself, is not a directory; any other non-empty listing is.
// A listing failure classifies as false rather than propagating, the one
// sanctioned exception to the error taxonomy.
func (o *FS) IsDir(ctx context.Context, path string) (bool, error) {
	key := pathutil.NormalizeKey(path)
	contents, err := o.client.List(ctx, key)
	if err != nil {
		return false, nil
	}
	if len(contents) == 0 {
		return false, nil
	}
	if len(contents) == 1 && contents[0] == key {
		return false, nil
	}
	return true, nil
}

// IsFile is the inverse probe: exactly one listing entry equal to the key
// itself. Listing failures classify as false.
func (o *FS) IsFile(ctx context.Context, path string) (bool, error) {
	key := pathutil.NormalizeKey(path)
	contents, err := o.client.List(ctx, key)
	if err != nil {
		return false, nil
	}
	return len(contents) == 1 && contents[0] == key, nil
}

func (o *FS) Open(ctx context.Context, path string, mode core.OpenMode) (core.File, error) {
	switch mode {
	case core.ModeRead, core.ModeWrite, core.ModeAppend:
	default:
		return nil, core.PathErrorf("open", path, "invalid mode %d: %w", mode, core.ErrInvalid)
	}

	f, err := o.client.Open(ctx, pathutil.NormalizeKey(path), mode)
	if err != nil {
		return nil, core.PathError("open", path, err)
	}
	return f, nil
}

func (o *FS) ReadFile(ctx context.Context, path string) ([]byte, error) {
	return core.ReadAll(ctx, o, path)
}

// DiskUsage keeps the composed default; on this backend it surfaces Stat's
// ErrNotSupported, since sizes cannot be attributed without metadata stats.
func (o *FS) DiskUsage(ctx context.Context, path string) (int64, error) {
	return core.DiskUsage(ctx, o, path)
}

func (o *FS) IsFileStore() bool { return false }

func (o *FS) PathSeparator() string { return "/" }
