package local

import (
	"context"
	"errors"
	"iter"
	"os"
	"path/filepath"
	"sync"

	"github.com/ljodea/arrow/fs/core"
)

const (
	defaultDirPerm  = 0o755
	defaultFilePerm = 0o644
)

// FS is the local-disk backend. Obtain one from Instance or New.
type FS struct{}

var _ core.FileSystem = (*FS)(nil)

var (
	instance *FS
	once     sync.Once
)

// Instance returns the process-wide shared instance, created lazily on
// first use. Handle identity is part of the contract: every scheme-less
// resolution lands on this instance.
func Instance() *FS {
	once.Do(func() {
		instance = New()
	})
	return instance
}

// New returns a fresh local backend. Most callers want Instance; New exists
// for code that must not share handle identity with the resolver.
func New() *FS {
	return &FS{}
}

func (l *FS) Stat(ctx context.Context, path string) (*core.StatInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return statInfo(path, info), nil
}

func (l *FS) List(ctx context.Context, path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	// os.ReadDir sorts by name; joining a common parent preserves order.
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, filepath.Join(path, entry.Name()))
	}
	return out, nil
}

func (l *FS) Walk(ctx context.Context, path string) iter.Seq2[core.WalkEntry, error] {
	return core.WalkDirs(ctx, path, l.PathSeparator(), func(ctx context.Context, dir string) ([]string, []string, error) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, nil, err
		}
		var dirs, files []string
		for _, entry := range entries {
			if entry.IsDir() {
				dirs = append(dirs, entry.Name())
			} else {
				files = append(files, entry.Name())
			}
		}
		return dirs, files, nil
	})
}

func (l *FS) Mkdir(ctx context.Context, path string) error {
	return os.Mkdir(path, defaultDirPerm)
}

func (l *FS) MkdirAll(ctx context.Context, path string) error {
	return os.MkdirAll(path, defaultDirPerm)
}

func (l *FS) Delete(ctx context.Context, path string, recursive bool) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, core.ErrNotExist) {
			return core.PathError("delete", path, core.ErrNotExist)
		}
		return err
	}

	if !info.IsDir() {
		return os.Remove(path)
	}
	if recursive {
		return os.RemoveAll(path)
	}

	// Check emptiness ourselves so the error is portable instead of a
	// platform errno.
	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return core.PathError("delete", path, core.ErrNotEmpty)
	}
	return os.Remove(path)
}

func (l *FS) Rename(ctx context.Context, oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (l *FS) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, core.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (l *FS) IsDir(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	if errors.Is(err, core.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (l *FS) IsFile(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.Mode().IsRegular(), nil
	}
	if errors.Is(err, core.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (l *FS) Open(ctx context.Context, path string, mode core.OpenMode) (core.File, error) {
	var (
		f   *os.File
		err error
	)
	switch mode {
	case core.ModeRead:
		f, err = os.Open(path)
	case core.ModeWrite:
		f, err = os.Create(path)
	case core.ModeAppend:
		f, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, defaultFilePerm)
	default:
		return nil, core.PathErrorf("open", path, "invalid mode %d: %w", mode, core.ErrInvalid)
	}
	if err != nil {
		return nil, err
	}
	return &file{File: f, mode: mode}, nil
}

func (l *FS) ReadFile(ctx context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (l *FS) DiskUsage(ctx context.Context, path string) (int64, error) {
	return core.DiskUsage(ctx, l, path)
}

func (l *FS) IsFileStore() bool { return true }

func (l *FS) PathSeparator() string { return string(os.PathSeparator) }

// file wraps *os.File with mode checks so misuse fails with ErrInvalid
// instead of a platform errno. Seek and ReadAt remain available through the
// embedded handle.
type file struct {
	*os.File
	mode core.OpenMode
}

var _ core.File = (*file)(nil)

func (f *file) Read(p []byte) (int, error) {
	if f.mode != core.ModeRead {
		return 0, core.PathError("read", f.File.Name(), core.ErrInvalid)
	}
	return f.File.Read(p)
}

func (f *file) Write(p []byte) (int, error) {
	if f.mode == core.ModeRead {
		return 0, core.PathError("write", f.File.Name(), core.ErrInvalid)
	}
	return f.File.Write(p)
}

func statInfo(path string, info os.FileInfo) *core.StatInfo {
	kind := core.KindFile
	if info.IsDir() {
		kind = core.KindDirectory
	}
	return &core.StatInfo{
		Path:    path,
		Kind:    kind,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Sys:     info,
	}
}
