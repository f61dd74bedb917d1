// Package objstore adapts flat key-value object stores to the
// filesystem contract of [github.com/ljodea/arrow/fs/core].
//
// Object stores have no native directories. This package reconstructs
// a directory tree from key prefixes and pseudo-directory markers, so
// Walk, List, and the directory probes behave like their counterparts
// on hierarchical filesystems.
//
// # Backends
//
// Any store reachable through the [Client] interface works. A MinIO
// backed client covering MinIO and S3 compatible stores ships with the
// package:
//
//	fsys, err := objstore.NewMinIO(objstore.Config{
//		Endpoint:  "localhost:9000",
//		Bucket:    "data",
//		AccessKey: "minioadmin",
//		SecretKey: "minioadmin",
//	})
//
// # Semantics
//
// Walk reconstructs one tree level per listing call, deduplicates
// repeated markers, and attributes every object to exactly one level.
// The IsDir and IsFile probes classify a path by listing it: they are
// heuristics over key shapes and report false on listing failures
// instead of returning an error. Stat is not supported, Rename is not
// implemented, Open rejects append mode, and DiskUsage inherits
// Stat's failure through its composition.
package objstore
