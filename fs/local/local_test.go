package local_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ljodea/arrow/fs/core"
	"github.com/ljodea/arrow/fs/local"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// TestInstance_SharedIdentity verifies the singleton: every call, including
// concurrent ones, returns the same handle.
func TestInstance_SharedIdentity(t *testing.T) {
	first := local.Instance()

	handles := make([]*local.FS, 8)
	var g errgroup.Group
	for i := range handles {
		g.Go(func() error {
			handles[i] = local.Instance()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, h := range handles {
		assert.Same(t, first, h)
	}
}

func TestStat(t *testing.T) {
	ctx := context.Background()
	fsys := local.New()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "a.txt"), "hello")

	st, err := fsys.Stat(ctx, filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, core.KindFile, st.Kind)
	assert.Equal(t, int64(5), st.Size)
	assert.False(t, st.ModTime.IsZero())

	st, err = fsys.Stat(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, core.KindDirectory, st.Kind)
	assert.True(t, st.IsDir())

	_, err = fsys.Stat(ctx, filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, core.ErrNotExist)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	fsys := local.New()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "b.txt"), "b")
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "c"), 0o755))

	got, err := fsys.List(ctx, dir)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "c"),
	}
	assert.Equal(t, want, got)

	_, err = fsys.List(ctx, filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, core.ErrNotExist)
}

func TestWalk(t *testing.T) {
	ctx := context.Background()
	fsys := local.New()
	dir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a", "c"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "b"), 0o755))
	writeFile(t, filepath.Join(dir, "f1.txt"), "1")
	writeFile(t, filepath.Join(dir, "a", "f2.txt"), "22")
	writeFile(t, filepath.Join(dir, "b", "f3.txt"), "333")

	var entries []core.WalkEntry
	for entry, err := range fsys.Walk(ctx, dir) {
		require.NoError(t, err)
		entries = append(entries, entry)
	}

	require.Len(t, entries, 4)

	assert.Equal(t, dir, entries[0].Dir)
	assert.Equal(t, []string{"a", "b"}, entries[0].Dirs)
	assert.Equal(t, []string{"f1.txt"}, entries[0].Files)

	assert.Equal(t, filepath.Join(dir, "a"), entries[1].Dir)
	assert.Equal(t, []string{"c"}, entries[1].Dirs)
	assert.Equal(t, []string{"f2.txt"}, entries[1].Files)

	assert.Equal(t, filepath.Join(dir, "a", "c"), entries[2].Dir)
	assert.Empty(t, entries[2].Dirs)
	assert.Empty(t, entries[2].Files)

	assert.Equal(t, filepath.Join(dir, "b"), entries[3].Dir)
	assert.Equal(t, []string{"f3.txt"}, entries[3].Files)
}

func TestMkdir(t *testing.T) {
	ctx := context.Background()
	fsys := local.New()
	dir := t.TempDir()

	target := filepath.Join(dir, "sub")
	require.NoError(t, fsys.Mkdir(ctx, target))

	err := fsys.Mkdir(ctx, target)
	assert.ErrorIs(t, err, core.ErrExist, "existing target")

	err = fsys.Mkdir(ctx, filepath.Join(dir, "no", "parent"))
	assert.ErrorIs(t, err, core.ErrNotExist, "missing parent")
}

func TestMkdirAll(t *testing.T) {
	ctx := context.Background()
	fsys := local.New()
	dir := t.TempDir()

	target := filepath.Join(dir, "x", "y", "z")
	require.NoError(t, fsys.MkdirAll(ctx, target))

	ok, err := fsys.IsDir(ctx, target)
	require.NoError(t, err)
	assert.True(t, ok)

	// Idempotent on existing paths.
	assert.NoError(t, fsys.MkdirAll(ctx, target))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	fsys := local.New()

	tests := []struct {
		name      string
		setup     func(t *testing.T, dir string) string
		recursive bool
		wantErr   error
	}{
		{
			name: "missing path",
			setup: func(t *testing.T, dir string) string {
				return filepath.Join(dir, "missing")
			},
			wantErr: core.ErrNotExist,
		},
		{
			name: "missing path recursive",
			setup: func(t *testing.T, dir string) string {
				return filepath.Join(dir, "missing")
			},
			recursive: true,
			wantErr:   core.ErrNotExist,
		},
		{
			name: "file",
			setup: func(t *testing.T, dir string) string {
				p := filepath.Join(dir, "f.txt")
				writeFile(t, p, "x")
				return p
			},
		},
		{
			name: "empty directory",
			setup: func(t *testing.T, dir string) string {
				p := filepath.Join(dir, "empty")
				require.NoError(t, os.Mkdir(p, 0o755))
				return p
			},
		},
		{
			name: "non-empty directory",
			setup: func(t *testing.T, dir string) string {
				p := filepath.Join(dir, "full")
				require.NoError(t, os.Mkdir(p, 0o755))
				writeFile(t, filepath.Join(p, "f.txt"), "x")
				return p
			},
			wantErr: core.ErrNotEmpty,
		},
		{
			name: "non-empty directory recursive",
			setup: func(t *testing.T, dir string) string {
				p := filepath.Join(dir, "full")
				require.NoError(t, os.MkdirAll(filepath.Join(p, "sub"), 0o755))
				writeFile(t, filepath.Join(p, "sub", "f.txt"), "x")
				return p
			},
			recursive: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := tt.setup(t, t.TempDir())

			err := fsys.Delete(ctx, target, tt.recursive)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			exists, err := fsys.Exists(ctx, target)
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestRename(t *testing.T) {
	ctx := context.Background()
	fsys := local.New()
	dir := t.TempDir()

	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	writeFile(t, src, "content")

	require.NoError(t, fsys.Rename(ctx, src, dst))

	data, err := fsys.ReadFile(ctx, dst)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	exists, err := fsys.Exists(ctx, src)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestProbes(t *testing.T) {
	ctx := context.Background()
	fsys := local.New()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "f.txt"), "x")

	tests := []struct {
		name   string
		path   string
		exists bool
		isDir  bool
		isFile bool
	}{
		{"directory", dir, true, true, false},
		{"file", filepath.Join(dir, "f.txt"), true, false, true},
		{"missing", filepath.Join(dir, "missing"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := fsys.Exists(ctx, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.exists, exists, "Exists")

			isDir, err := fsys.IsDir(ctx, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.isDir, isDir, "IsDir")

			isFile, err := fsys.IsFile(ctx, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.isFile, isFile, "IsFile")
		})
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	fsys := local.New()
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")

	w, err := fsys.Open(ctx, path, core.ModeWrite)
	require.NoError(t, err)
	_, err = w.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	a, err := fsys.Open(ctx, path, core.ModeAppend)
	require.NoError(t, err)
	_, err = a.Write([]byte(" world"))
	require.NoError(t, err)
	require.NoError(t, a.Close())

	data, err := fsys.ReadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	_, err = fsys.Open(ctx, filepath.Join(dir, "missing"), core.ModeRead)
	assert.ErrorIs(t, err, core.ErrNotExist)

	_, err = fsys.Open(ctx, path, core.OpenMode(42))
	assert.ErrorIs(t, err, core.ErrInvalid)
}

func TestOpen_ModeChecked(t *testing.T) {
	ctx := context.Background()
	fsys := local.New()
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	writeFile(t, path, "content")

	r, err := fsys.Open(ctx, path, core.ModeRead)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Write([]byte("nope"))
	assert.ErrorIs(t, err, core.ErrInvalid, "write on read handle")

	w, err := fsys.Open(ctx, path, core.ModeWrite)
	require.NoError(t, err)
	defer w.Close()

	buf := make([]byte, 4)
	_, err = w.Read(buf)
	assert.ErrorIs(t, err, core.ErrInvalid, "read on write handle")
}

func TestDiskUsage(t *testing.T) {
	ctx := context.Background()
	fsys := local.New()
	dir := t.TempDir()

	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	writeFile(t, filepath.Join(dir, "a.txt"), "aaa")
	writeFile(t, filepath.Join(dir, "sub", "b.txt"), "bbbbb")

	st, err := fsys.Stat(ctx, filepath.Join(dir, "a.txt"))
	require.NoError(t, err)

	usage, err := fsys.DiskUsage(ctx, filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, st.Size, usage, "file usage equals stat size")

	usage, err = fsys.DiskUsage(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, int64(3+5), usage, "directory usage sums the subtree")
}

func TestCapabilities(t *testing.T) {
	fsys := local.New()

	assert.True(t, fsys.IsFileStore())
	assert.Equal(t, string(os.PathSeparator), fsys.PathSeparator())
}
