// Package core defines the unified filesystem contract shared by every
// storage backend in this module.
//
// Application code written against [FileSystem] runs unchanged over local
// disk, HDFS-style distributed filesystems, and flat object stores. The
// contract is deliberately a single interface: the resolver in the module
// root hands out fully capable handles, and backends that cannot honor an
// operation fail it with a typed error rather than shrinking the surface.
//
// # Semantics
//
// A few operations carry semantics that differ from their closest stdlib
// relatives:
//
//   - List returns immediate children as full paths (parent joined with the
//     entry name using the backend separator), sorted lexicographically.
//   - Walk yields directory triples in pre-order, lazily: the triple for a
//     directory is produced before any of its children are fetched, and
//     abandoning the iterator stops all further listing.
//   - Delete of a missing path is an error even in recursive mode.
//   - MkdirAll is idempotent; Mkdir fails if the path exists or the parent
//     is missing.
//
// # Errors
//
// Every failure is a [io/fs.PathError] carrying the operation name and the
// offending path. Sentinels common with the standard library (ErrNotExist,
// ErrExist, ErrInvalid, ErrPermission) are re-exports, so errors.Is checks
// interoperate with os and io/fs code. Backend-specific conditions use the
// package sentinels (ErrNotEmpty, ErrNotSupported, ErrNotImplemented).
//
// # Defaults
//
// ReadFile and DiskUsage have portable default implementations ([ReadAll],
// [DiskUsage]) composed from the rest of the contract; backends delegate to
// them unless a native shortcut exists. [WalkDirs] builds the lazy walk
// sequence for any backend that can list one directory at a time.
//
// # Partial backends
//
// Embed [Unimplemented] to fail unprovided operations uniformly:
//
//	type narrowFS struct {
//	    core.Unimplemented
//	}
//
// Concrete backends live in sibling packages (local, objstore, hdfs); the
// module root resolves URIs and foreign filesystem values to handles.
package core
