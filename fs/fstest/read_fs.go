package fstest

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/ljodea/arrow/fs/core"
)

// TestReadFile verifies whole-file reads and the errors they carry.
func TestReadFile(t *testing.T, setup Setup, cfg Config) {
	ctx := context.Background()
	fsys, root := setup(t)

	dir := pjoin(fsys, root, "readdir")
	file := pjoin(fsys, dir, "file.txt")
	content := []byte("read file content")
	mkdirAll(t, ctx, fsys, dir)
	write(t, ctx, fsys, file, content)

	t.Run("RoundTrip", func(t *testing.T) {
		data, err := fsys.ReadFile(ctx, file)
		if err != nil {
			t.Fatalf("ReadFile(%q): got error %v, want nil", file, err)
		}
		if string(data) != string(content) {
			t.Errorf("ReadFile(%q): got %q, want %q", file, data, content)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		missing := pjoin(fsys, root, "readnone.txt")
		_, err := fsys.ReadFile(ctx, missing)
		if !errors.Is(err, core.ErrNotExist) {
			t.Fatalf("ReadFile(%q): got error %v, want ErrNotExist", missing, err)
		}

		// Failures carry the operation and offending path.
		var pe *fs.PathError
		if !errors.As(err, &pe) {
			t.Fatalf("ReadFile(%q): error %T does not carry a path", missing, err)
		}
		if pe.Op == "" {
			t.Errorf("ReadFile(%q): error has empty Op", missing)
		}
		if pe.Path == "" {
			t.Errorf("ReadFile(%q): error has empty Path", missing)
		}
	})
}
