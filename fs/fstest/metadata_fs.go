package fstest

import (
	"context"
	"errors"
	"testing"

	"github.com/ljodea/arrow/fs/core"
)

// TestStat verifies Stat metadata, or the ErrNotSupported taxonomy on
// flat stores.
func TestStat(t *testing.T, setup Setup, cfg Config) {
	ctx := context.Background()
	fsys, root := setup(t)

	dir := pjoin(fsys, root, "statdir")
	file := pjoin(fsys, dir, "file.txt")
	content := []byte("stat content")

	if cfg.StatUnsupported {
		if _, err := fsys.Stat(ctx, file); !errors.Is(err, core.ErrNotSupported) {
			t.Errorf("Stat(%q): got error %v, want ErrNotSupported", file, err)
		}
		return
	}

	mkdirAll(t, ctx, fsys, dir)
	write(t, ctx, fsys, file, content)

	t.Run("File", func(t *testing.T) {
		info, err := fsys.Stat(ctx, file)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", file, err)
		}
		if info.Kind != core.KindFile {
			t.Errorf("Stat(%q): Kind = %v, want %v", file, info.Kind, core.KindFile)
		}
		if info.Size != int64(len(content)) {
			t.Errorf("Stat(%q): Size = %d, want %d", file, info.Size, len(content))
		}
		if info.Path != file {
			t.Errorf("Stat(%q): Path = %q, want the queried path", file, info.Path)
		}
		if info.ModTime.IsZero() {
			t.Errorf("Stat(%q): ModTime is zero", file)
		}
	})

	t.Run("Directory", func(t *testing.T) {
		info, err := fsys.Stat(ctx, dir)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", dir, err)
		}
		if info.Kind != core.KindDirectory {
			t.Errorf("Stat(%q): Kind = %v, want %v", dir, info.Kind, core.KindDirectory)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = false, want true", dir)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		missing := pjoin(fsys, root, "statnone")
		if _, err := fsys.Stat(ctx, missing); !errors.Is(err, core.ErrNotExist) {
			t.Errorf("Stat(%q): got error %v, want ErrNotExist", missing, err)
		}
	})
}

// TestProbes verifies the Exists, IsDir, and IsFile classification
// queries, including that they stay error-free on missing paths.
func TestProbes(t *testing.T, setup Setup, cfg Config) {
	ctx := context.Background()
	fsys, root := setup(t)

	dir := pjoin(fsys, root, "probedir")
	file := pjoin(fsys, dir, "file.txt")
	missing := pjoin(fsys, root, "probenone")
	mkdirAll(t, ctx, fsys, dir)
	write(t, ctx, fsys, file, []byte("content"))

	tests := []struct {
		name   string
		path   string
		exists bool
		isDir  bool
		isFile bool
	}{
		{"file", file, true, false, true},
		{"directory", dir, true, true, false},
		{"missing", missing, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := fsys.Exists(ctx, tt.path)
			if err != nil {
				t.Fatalf("Exists(%q): got error %v, want nil", tt.path, err)
			}
			if exists != tt.exists {
				t.Errorf("Exists(%q): got %t, want %t", tt.path, exists, tt.exists)
			}

			isDir, err := fsys.IsDir(ctx, tt.path)
			if err != nil {
				t.Fatalf("IsDir(%q): got error %v, want nil", tt.path, err)
			}
			if isDir != tt.isDir {
				t.Errorf("IsDir(%q): got %t, want %t", tt.path, isDir, tt.isDir)
			}

			isFile, err := fsys.IsFile(ctx, tt.path)
			if err != nil {
				t.Fatalf("IsFile(%q): got error %v, want nil", tt.path, err)
			}
			if isFile != tt.isFile {
				t.Errorf("IsFile(%q): got %t, want %t", tt.path, isFile, tt.isFile)
			}
		})
	}
}

// TestDiskUsage verifies the stat-plus-walk size composition, or its
// inherited ErrNotSupported on flat stores.
func TestDiskUsage(t *testing.T, setup Setup, cfg Config) {
	ctx := context.Background()
	fsys, root := setup(t)

	base := pjoin(fsys, root, "dudir")

	if cfg.StatUnsupported {
		if _, err := fsys.DiskUsage(ctx, base); !errors.Is(err, core.ErrNotSupported) {
			t.Errorf("DiskUsage(%q): got error %v, want ErrNotSupported", base, err)
		}
		return
	}

	sub := pjoin(fsys, base, "sub")
	fileA := pjoin(fsys, base, "a.txt")
	fileB := pjoin(fsys, sub, "b.txt")
	mkdirAll(t, ctx, fsys, sub)
	write(t, ctx, fsys, fileA, []byte("aa"))
	write(t, ctx, fsys, fileB, []byte("bbb"))

	usage, err := fsys.DiskUsage(ctx, fileA)
	if err != nil {
		t.Fatalf("DiskUsage(%q): got error %v, want nil", fileA, err)
	}
	if usage != 2 {
		t.Errorf("DiskUsage(%q): got %d, want 2", fileA, usage)
	}

	usage, err = fsys.DiskUsage(ctx, base)
	if err != nil {
		t.Fatalf("DiskUsage(%q): got error %v, want nil", base, err)
	}
	if usage != 5 {
		t.Errorf("DiskUsage(%q): got %d, want 5", base, usage)
	}
}
