package fstest

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/ljodea/arrow/fs/core"
)

// TestOpenModes verifies Open across the three modes and rejects
// misuse of handles.
func TestOpenModes(t *testing.T, setup Setup, cfg Config) {
	ctx := context.Background()
	fsys, root := setup(t)

	dir := pjoin(fsys, root, "opendir")
	mkdirAll(t, ctx, fsys, dir)

	t.Run("WriteThenRead", func(t *testing.T) {
		path := pjoin(fsys, dir, "roundtrip.txt")
		content := []byte("hello world")

		f, err := fsys.Open(ctx, path, core.ModeWrite)
		if err != nil {
			t.Fatalf("Open(%q, write): got error %v, want nil", path, err)
		}
		if _, err := f.Write(content); err != nil {
			t.Fatalf("Write(%q): got error %v, want nil", path, err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close(%q): got error %v, want nil", path, err)
		}

		r, err := fsys.Open(ctx, path, core.ModeRead)
		if err != nil {
			t.Fatalf("Open(%q, read): got error %v, want nil", path, err)
		}
		defer r.Close()
		data, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("ReadAll(%q): got error %v, want nil", path, err)
		}
		if string(data) != string(content) {
			t.Errorf("ReadAll(%q): got %q, want %q", path, data, content)
		}
	})

	t.Run("Append", func(t *testing.T) {
		path := pjoin(fsys, dir, "append.txt")
		write(t, ctx, fsys, path, []byte("hello"))

		f, err := fsys.Open(ctx, path, core.ModeAppend)
		if cfg.AppendUnsupported {
			if !errors.Is(err, core.ErrNotSupported) {
				t.Fatalf("Open(%q, append): got error %v, want ErrNotSupported", path, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Open(%q, append): got error %v, want nil", path, err)
		}
		if _, err := f.Write([]byte(" world")); err != nil {
			t.Fatalf("Write(%q): got error %v, want nil", path, err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close(%q): got error %v, want nil", path, err)
		}

		data, err := fsys.ReadFile(ctx, path)
		if err != nil {
			t.Fatalf("ReadFile(%q): got error %v, want nil", path, err)
		}
		if string(data) != "hello world" {
			t.Errorf("ReadFile(%q): got %q, want %q", path, data, "hello world")
		}
	})

	t.Run("ReadMissing", func(t *testing.T) {
		path := pjoin(fsys, root, "opennone.txt")
		if _, err := fsys.Open(ctx, path, core.ModeRead); !errors.Is(err, core.ErrNotExist) {
			t.Errorf("Open(%q, read): got error %v, want ErrNotExist", path, err)
		}
	})

	t.Run("InvalidMode", func(t *testing.T) {
		path := pjoin(fsys, dir, "any.txt")
		if _, err := fsys.Open(ctx, path, core.OpenMode(42)); !errors.Is(err, core.ErrInvalid) {
			t.Errorf("Open(%q, 42): got error %v, want ErrInvalid", path, err)
		}
	})

	t.Run("ModeMisuse", func(t *testing.T) {
		path := pjoin(fsys, dir, "misuse.txt")
		write(t, ctx, fsys, path, []byte("content"))

		r, err := fsys.Open(ctx, path, core.ModeRead)
		if err != nil {
			t.Fatalf("Open(%q, read): got error %v, want nil", path, err)
		}
		defer r.Close()
		if _, err := r.Write([]byte("nope")); !errors.Is(err, core.ErrInvalid) {
			t.Errorf("Write on read handle: got error %v, want ErrInvalid", err)
		}

		w, err := fsys.Open(ctx, pjoin(fsys, dir, "misuse2.txt"), core.ModeWrite)
		if err != nil {
			t.Fatalf("Open(write): got error %v, want nil", err)
		}
		defer w.Close()
		if _, err := w.Read(make([]byte, 4)); !errors.Is(err, core.ErrInvalid) {
			t.Errorf("Read on write handle: got error %v, want ErrInvalid", err)
		}
	})
}
