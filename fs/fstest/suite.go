// Package fstest provides a conformance suite for validating backend
// implementations of the filesystem contract in
// [github.com/ljodea/arrow/fs/core].
//
// Backend packages import the suite and run it against a fresh
// filesystem:
//
//	func TestConformance(t *testing.T) {
//	    fstest.Run(t, func(t *testing.T) (core.FileSystem, string) {
//	        return local.New(), t.TempDir()
//	    }, fstest.POSIXConfig())
//	}
//
// The suite validates the shared contract, not backend-specific
// behavior. Backends differ in what they can support (flat stores have
// no Stat, no Rename, no append), so a Config describes the backend's
// capabilities and the suite adapts: unsupported operations are still
// exercised, but the expectation flips to the documented taxonomy
// error.
package fstest

import (
	"context"
	"strings"
	"testing"

	"github.com/ljodea/arrow/fs/core"
)

// Setup returns a fresh filesystem and a writable root path for one
// test group. It is called once per group so state never leaks between
// groups. The suite only touches paths under the returned root.
type Setup func(t *testing.T) (core.FileSystem, string)

// Config describes backend capabilities so the suite can flip
// expectations where the contract legitimately differs.
type Config struct {
	// VirtualDirectories indicates directories are reconstructed from
	// key prefixes and markers rather than stored natively. Mkdir on
	// such backends performs no existence or parent checks.
	VirtualDirectories bool

	// StatUnsupported indicates Stat fails with ErrNotSupported, as on
	// flat stores with no directory metadata. DiskUsage inherits the
	// failure through its stat-then-walk composition.
	StatUnsupported bool

	// RenameUnsupported indicates Rename fails with ErrNotImplemented.
	RenameUnsupported bool

	// AppendUnsupported indicates Open in append mode fails with
	// ErrNotSupported.
	AppendUnsupported bool

	// SkipTests lists group names to skip entirely, for backends with
	// known divergences beyond what the flags above describe.
	SkipTests []string
}

// POSIXConfig returns the configuration for hierarchical filesystems
// with native directories (local disk, HDFS).
func POSIXConfig() Config {
	return Config{}
}

// ObjectStoreConfig returns the configuration for flat key-value
// stores with emulated directories.
func ObjectStoreConfig() Config {
	return Config{
		VirtualDirectories: true,
		StatUnsupported:    true,
		RenameUnsupported:  true,
		AppendUnsupported:  true,
	}
}

// Run executes every conformance group against filesystems produced by
// setup.
func Run(t *testing.T, setup Setup, cfg Config) {
	groups := []struct {
		name string
		fn   func(*testing.T, Setup, Config)
	}{
		{"List", TestList},
		{"Walk", TestWalk},
		{"Probes", TestProbes},
		{"Manage", TestManage},
		{"Rename", TestRename},
		{"OpenModes", TestOpenModes},
		{"ReadFile", TestReadFile},
		{"Stat", TestStat},
		{"DiskUsage", TestDiskUsage},
	}

	shouldSkip := func(name string) bool {
		for _, skip := range cfg.SkipTests {
			if skip == name {
				return true
			}
		}
		return false
	}

	for _, group := range groups {
		t.Run(group.name, func(t *testing.T) {
			if shouldSkip(group.name) {
				t.Skip("skipped by backend configuration")
				return
			}
			group.fn(t, setup, cfg)
		})
	}
}

// pjoin joins elements with the filesystem separator, skipping empties
// so a bucket-root base composes cleanly.
func pjoin(fsys core.FileSystem, elem ...string) string {
	parts := make([]string, 0, len(elem))
	for _, e := range elem {
		if e != "" {
			parts = append(parts, e)
		}
	}
	return core.Join(fsys, parts...)
}

// trimMarker reduces a listing entry to its bare path. Flat stores
// surface emulated directories with a trailing separator.
func trimMarker(entry string) string {
	return strings.TrimSuffix(entry, "/")
}

// mkdirAll is a setup helper that fails the test on error.
func mkdirAll(t *testing.T, ctx context.Context, fsys core.FileSystem, path string) {
	t.Helper()
	if err := fsys.MkdirAll(ctx, path); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", path, err)
	}
}

// write is a setup helper that creates a file with the given content,
// failing the test on error.
func write(t *testing.T, ctx context.Context, fsys core.FileSystem, path string, content []byte) {
	t.Helper()
	f, err := fsys.Open(ctx, path, core.ModeWrite)
	if err != nil {
		t.Fatalf("Open(%q, write): setup failed: %v", path, err)
	}
	if _, err := f.Write(content); err != nil {
		t.Fatalf("Write(%q): setup failed: %v", path, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(%q): setup failed: %v", path, err)
	}
}
