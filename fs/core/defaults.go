package core

import (
	"context"
	"io"
	"iter"
	"strings"
)

// ReadAll is the default ReadFile implementation: it opens path for reading,
// drains the handle, and closes it. Backends without a native bulk read
// delegate to it.
func ReadAll(ctx context.Context, fsys FileSystem, path string) ([]byte, error) {
	f, err := fsys.Open(ctx, path, ModeRead)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, PathError("read", path, err)
	}
	return data, nil
}

// DiskUsage is the default DiskUsage implementation, composed from Stat and
// Walk: a file contributes its own size, a directory the sum of per-file
// Stat sizes across its walk. Backends whose Stat cannot report sizes
// surface that error here.
func DiskUsage(ctx context.Context, fsys FileSystem, path string) (int64, error) {
	st, err := fsys.Stat(ctx, path)
	if err != nil {
		return 0, err
	}
	if st.Kind == KindFile {
		return st.Size, nil
	}

	var total int64
	for entry, err := range fsys.Walk(ctx, path) {
		if err != nil {
			return 0, err
		}
		for _, name := range entry.Files {
			st, err := fsys.Stat(ctx, Join(fsys, entry.Dir, name))
			if err != nil {
				return 0, err
			}
			total += st.Size
		}
	}
	return total, nil
}

// Join joins path elements with the filesystem's separator. Elements are
// joined verbatim; no cleaning is applied.
func Join(fsys FileSystem, elem ...string) string {
	return strings.Join(elem, fsys.PathSeparator())
}

// DirLister lists one directory, returning the names (not full paths) of its
// immediate subdirectories and files, each sorted lexicographically.
type DirLister func(ctx context.Context, dir string) (dirs, files []string, err error)

// WalkDirs builds the lazy pre-order walk sequence for a backend from its
// per-directory lister. The triple for a directory is yielded before any of
// its children are listed; recursion descends into subdirectories in the
// order the lister returned them. The first lister error is yielded and
// terminates the sequence.
func WalkDirs(ctx context.Context, root string, sep string, list DirLister) iter.Seq2[WalkEntry, error] {
	return func(yield func(WalkEntry, error) bool) {
		walkDirs(ctx, root, sep, list, yield)
	}
}

func walkDirs(ctx context.Context, dir, sep string, list DirLister, yield func(WalkEntry, error) bool) bool {
	if err := ctx.Err(); err != nil {
		yield(WalkEntry{}, PathError("walk", dir, err))
		return false
	}

	dirs, files, err := list(ctx, dir)
	if err != nil {
		yield(WalkEntry{}, err)
		return false
	}
	if !yield(WalkEntry{Dir: dir, Dirs: dirs, Files: files}, nil) {
		return false
	}

	for _, name := range dirs {
		child := dir + sep + name
		if strings.HasSuffix(dir, sep) {
			child = dir + name
		}
		if !walkDirs(ctx, child, sep, list, yield) {
			return false
		}
	}
	return true
}
