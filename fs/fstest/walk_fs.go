package fstest

import (
	"context"
	"sort"
	"strings"
	"testing"
)

// TestList verifies that List returns sorted full paths for every
// child of a directory.
func TestList(t *testing.T, setup Setup, cfg Config) {
	ctx := context.Background()
	fsys, root := setup(t)

	dir := pjoin(fsys, root, "listdir")
	mkdirAll(t, ctx, fsys, dir)
	mkdirAll(t, ctx, fsys, pjoin(fsys, dir, "sub"))
	write(t, ctx, fsys, pjoin(fsys, dir, "b.txt"), []byte("bb"))
	write(t, ctx, fsys, pjoin(fsys, dir, "a.txt"), []byte("aa"))

	entries, err := fsys.List(ctx, dir)
	if err != nil {
		t.Fatalf("List(%q): got error %v, want nil", dir, err)
	}

	if !sort.StringsAreSorted(entries) {
		t.Errorf("List(%q): entries not sorted: %v", dir, entries)
	}

	got := make(map[string]bool, len(entries))
	for _, entry := range entries {
		got[trimMarker(entry)] = true
	}
	for _, want := range []string{
		pjoin(fsys, dir, "a.txt"),
		pjoin(fsys, dir, "b.txt"),
		pjoin(fsys, dir, "sub"),
	} {
		if !got[want] {
			t.Errorf("List(%q): missing entry %q in %v", dir, want, entries)
		}
	}

	// Entries must be full paths. Flat stores may additionally surface
	// the directory's own marker.
	sep := fsys.PathSeparator()
	for entry := range got {
		if entry != dir && !strings.HasPrefix(entry, dir+sep) {
			t.Errorf("List(%q): entry %q is not a full path under the directory", dir, entry)
		}
	}
}

// TestWalk verifies lazy pre-order traversal: every level is yielded
// exactly once with its immediate children split into directory and
// file names, parents before children, siblings in sorted order.
func TestWalk(t *testing.T, setup Setup, cfg Config) {
	ctx := context.Background()
	fsys, root := setup(t)

	base := pjoin(fsys, root, "walkdir")
	mkdirAll(t, ctx, fsys, pjoin(fsys, base, "b", "d"))
	mkdirAll(t, ctx, fsys, pjoin(fsys, base, "empty"))
	write(t, ctx, fsys, pjoin(fsys, base, "a.txt"), []byte("aa"))
	write(t, ctx, fsys, pjoin(fsys, base, "b", "c.txt"), []byte("ccc"))
	write(t, ctx, fsys, pjoin(fsys, base, "b", "d", "e.txt"), []byte("eeee"))

	type level struct {
		dir   string
		dirs  []string
		files []string
	}
	want := []level{
		{base, []string{"b", "empty"}, []string{"a.txt"}},
		{pjoin(fsys, base, "b"), []string{"d"}, []string{"c.txt"}},
		{pjoin(fsys, base, "b", "d"), nil, []string{"e.txt"}},
		{pjoin(fsys, base, "empty"), nil, nil},
	}

	var got []level
	for entry, err := range fsys.Walk(ctx, base) {
		if err != nil {
			t.Fatalf("Walk(%q): got error %v, want nil", base, err)
		}
		got = append(got, level{entry.Dir, entry.Dirs, entry.Files})
	}

	if len(got) != len(want) {
		t.Fatalf("Walk(%q): got %d levels %+v, want %d", base, len(got), got, len(want))
	}
	for i := range want {
		if got[i].dir != want[i].dir {
			t.Errorf("Walk(%q): level %d dir = %q, want %q", base, i, got[i].dir, want[i].dir)
		}
		if !equalNames(got[i].dirs, want[i].dirs) {
			t.Errorf("Walk(%q): level %d dirs = %v, want %v", base, i, got[i].dirs, want[i].dirs)
		}
		if !equalNames(got[i].files, want[i].files) {
			t.Errorf("Walk(%q): level %d files = %v, want %v", base, i, got[i].files, want[i].files)
		}
	}
}

// equalNames compares name lists treating nil and empty as equal.
func equalNames(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
