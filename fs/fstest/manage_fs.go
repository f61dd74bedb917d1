package fstest

import (
	"context"
	"errors"
	"testing"

	"github.com/ljodea/arrow/fs/core"
)

// TestManage verifies the directory management taxonomy: Mkdir,
// MkdirAll, and Delete.
func TestManage(t *testing.T, setup Setup, cfg Config) {
	ctx := context.Background()
	fsys, root := setup(t)

	t.Run("MkdirAllCreatesTree", func(t *testing.T) {
		deep := pjoin(fsys, root, "m1", "a", "b", "c")
		if err := fsys.MkdirAll(ctx, deep); err != nil {
			t.Fatalf("MkdirAll(%q): got error %v, want nil", deep, err)
		}
		isDir, err := fsys.IsDir(ctx, deep)
		if err != nil {
			t.Fatalf("IsDir(%q): got error %v, want nil", deep, err)
		}
		if !isDir {
			t.Errorf("IsDir(%q): got false after MkdirAll, want true", deep)
		}
		if err := fsys.MkdirAll(ctx, deep); err != nil {
			t.Errorf("MkdirAll(%q): second call got error %v, want nil", deep, err)
		}
	})

	t.Run("MkdirMissingParent", func(t *testing.T) {
		if cfg.VirtualDirectories {
			t.Skip("flat stores create markers without parent checks")
			return
		}
		path := pjoin(fsys, root, "m2-missing", "child")
		if err := fsys.Mkdir(ctx, path); !errors.Is(err, core.ErrNotExist) {
			t.Errorf("Mkdir(%q): got error %v, want ErrNotExist", path, err)
		}
	})

	t.Run("MkdirExisting", func(t *testing.T) {
		if cfg.VirtualDirectories {
			t.Skip("flat stores overwrite markers without existence checks")
			return
		}
		dir := pjoin(fsys, root, "m3")
		if err := fsys.Mkdir(ctx, dir); err != nil {
			t.Fatalf("Mkdir(%q): setup failed: %v", dir, err)
		}
		if err := fsys.Mkdir(ctx, dir); !errors.Is(err, core.ErrExist) {
			t.Errorf("Mkdir(%q): second call got error %v, want ErrExist", dir, err)
		}
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		path := pjoin(fsys, root, "m4-none")
		if err := fsys.Delete(ctx, path, false); !errors.Is(err, core.ErrNotExist) {
			t.Errorf("Delete(%q, false): got error %v, want ErrNotExist", path, err)
		}
		if err := fsys.Delete(ctx, path, true); !errors.Is(err, core.ErrNotExist) {
			t.Errorf("Delete(%q, true): got error %v, want ErrNotExist", path, err)
		}
	})

	t.Run("DeleteFile", func(t *testing.T) {
		dir := pjoin(fsys, root, "m5")
		file := pjoin(fsys, dir, "f.txt")
		mkdirAll(t, ctx, fsys, dir)
		write(t, ctx, fsys, file, []byte("doomed"))

		if err := fsys.Delete(ctx, file, false); err != nil {
			t.Fatalf("Delete(%q, false): got error %v, want nil", file, err)
		}
		exists, err := fsys.Exists(ctx, file)
		if err != nil {
			t.Fatalf("Exists(%q): got error %v, want nil", file, err)
		}
		if exists {
			t.Errorf("Exists(%q): got true after delete, want false", file)
		}
	})

	t.Run("DeleteEmptyDir", func(t *testing.T) {
		dir := pjoin(fsys, root, "m6", "empty")
		mkdirAll(t, ctx, fsys, dir)

		if err := fsys.Delete(ctx, dir, false); err != nil {
			t.Fatalf("Delete(%q, false): got error %v, want nil", dir, err)
		}
		exists, err := fsys.Exists(ctx, dir)
		if err != nil {
			t.Fatalf("Exists(%q): got error %v, want nil", dir, err)
		}
		if exists {
			t.Errorf("Exists(%q): got true after delete, want false", dir)
		}
	})

	t.Run("DeleteNonEmptyDir", func(t *testing.T) {
		dir := pjoin(fsys, root, "m7")
		file := pjoin(fsys, dir, "child.txt")
		mkdirAll(t, ctx, fsys, dir)
		write(t, ctx, fsys, file, []byte("keep me"))

		if err := fsys.Delete(ctx, dir, false); !errors.Is(err, core.ErrNotEmpty) {
			t.Errorf("Delete(%q, false): got error %v, want ErrNotEmpty", dir, err)
		}
		exists, err := fsys.Exists(ctx, file)
		if err != nil {
			t.Fatalf("Exists(%q): got error %v, want nil", file, err)
		}
		if !exists {
			t.Fatalf("Exists(%q): got false after refused delete, want true", file)
		}

		if err := fsys.Delete(ctx, dir, true); err != nil {
			t.Fatalf("Delete(%q, true): got error %v, want nil", dir, err)
		}
		for _, path := range []string{file, dir} {
			exists, err := fsys.Exists(ctx, path)
			if err != nil {
				t.Fatalf("Exists(%q): got error %v, want nil", path, err)
			}
			if exists {
				t.Errorf("Exists(%q): got true after recursive delete, want false", path)
			}
		}
	})
}

// TestRename verifies Rename moves content, or fails with the
// documented taxonomy error on backends without it.
func TestRename(t *testing.T, setup Setup, cfg Config) {
	ctx := context.Background()
	fsys, root := setup(t)

	if cfg.RenameUnsupported {
		src := pjoin(fsys, root, "r-src")
		dst := pjoin(fsys, root, "r-dst")
		if err := fsys.Rename(ctx, src, dst); !errors.Is(err, core.ErrNotImplemented) {
			t.Errorf("Rename(%q, %q): got error %v, want ErrNotImplemented", src, dst, err)
		}
		return
	}

	dir := pjoin(fsys, root, "renamedir")
	src := pjoin(fsys, dir, "src.txt")
	dst := pjoin(fsys, dir, "dst.txt")
	mkdirAll(t, ctx, fsys, dir)
	write(t, ctx, fsys, src, []byte("payload"))

	if err := fsys.Rename(ctx, src, dst); err != nil {
		t.Fatalf("Rename(%q, %q): got error %v, want nil", src, dst, err)
	}

	exists, err := fsys.Exists(ctx, src)
	if err != nil {
		t.Fatalf("Exists(%q): got error %v, want nil", src, err)
	}
	if exists {
		t.Errorf("Exists(%q): got true after rename, want false", src)
	}

	data, err := fsys.ReadFile(ctx, dst)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", dst, err)
	}
	if string(data) != "payload" {
		t.Errorf("ReadFile(%q): got %q, want %q", dst, data, "payload")
	}

	missing := pjoin(fsys, root, "r-none")
	if err := fsys.Rename(ctx, missing, pjoin(fsys, root, "r-none2")); !errors.Is(err, core.ErrNotExist) {
		t.Errorf("Rename(%q, ...): got error %v, want ErrNotExist", missing, err)
	}
}
