package core_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/ljodea/arrow/fs/core"
)

// TestReexportedErrorsMatchStdlib verifies re-exported errors match stdlib,
// so callers can keep using os/io-fs style checks.
func TestReexportedErrorsMatchStdlib(t *testing.T) {
	tests := []struct {
		name      string
		coreErr   error
		stdlibErr error
	}{
		{"ErrNotExist", core.ErrNotExist, fs.ErrNotExist},
		{"ErrExist", core.ErrExist, fs.ErrExist},
		{"ErrInvalid", core.ErrInvalid, fs.ErrInvalid},
		{"ErrPermission", core.ErrPermission, fs.ErrPermission},
		{"ErrClosed", core.ErrClosed, fs.ErrClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.coreErr, tt.stdlibErr) || !errors.Is(tt.stdlibErr, tt.coreErr) {
				t.Errorf("%s does not match stdlib: core=%v, stdlib=%v",
					tt.name, tt.coreErr, tt.stdlibErr)
			}
		})
	}
}

// TestSentinelsAreDistinct verifies the package sentinels never match each
// other, so taxonomy checks cannot cross wires.
func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrNotExist", core.ErrNotExist},
		{"ErrExist", core.ErrExist},
		{"ErrInvalid", core.ErrInvalid},
		{"ErrPermission", core.ErrPermission},
		{"ErrClosed", core.ErrClosed},
		{"ErrNotEmpty", core.ErrNotEmpty},
		{"ErrNotSupported", core.ErrNotSupported},
		{"ErrNotImplemented", core.ErrNotImplemented},
		{"ErrUnknownFilesystem", core.ErrUnknownFilesystem},
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				if !errors.Is(a.err, b.err) {
					t.Errorf("%s is not equal to itself", a.name)
				}
				continue
			}
			if errors.Is(a.err, b.err) {
				t.Errorf("%s should not match %s", a.name, b.name)
			}
		}
	}
}

// TestPathError verifies the carrier wraps the sentinel and names the
// operation and path.
func TestPathError(t *testing.T) {
	err := core.PathError("stat", "data/x.parquet", core.ErrNotExist)

	var pe *fs.PathError
	if !errors.As(err, &pe) {
		t.Fatalf("PathError() = %T, want *fs.PathError", err)
	}
	if pe.Op != "stat" {
		t.Errorf("Op = %q, want %q", pe.Op, "stat")
	}
	if pe.Path != "data/x.parquet" {
		t.Errorf("Path = %q, want %q", pe.Path, "data/x.parquet")
	}
	if !errors.Is(err, core.ErrNotExist) {
		t.Errorf("errors.Is(err, ErrNotExist) = false, want true")
	}
}

// TestPathErrorf verifies %w formatting preserves the sentinel chain.
func TestPathErrorf(t *testing.T) {
	err := core.PathErrorf("open", "bucket/key", "mode %q: %w", "xx", core.ErrInvalid)

	if !errors.Is(err, core.ErrInvalid) {
		t.Errorf("errors.Is(err, ErrInvalid) = false, want true")
	}

	var pe *fs.PathError
	if !errors.As(err, &pe) {
		t.Fatalf("PathErrorf() = %T, want *fs.PathError", err)
	}
	if pe.Path != "bucket/key" {
		t.Errorf("Path = %q, want %q", pe.Path, "bucket/key")
	}
}
