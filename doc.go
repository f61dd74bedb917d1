// Package arrow resolves user-supplied file locations onto concrete
// filesystem backends.
//
// The fs subpackages implement one filesystem contract over local disk
// (fs/local), HDFS namenodes (fs/hdfs), and flat object stores
// (fs/objstore). This package is the front door: Resolve classifies a
// string, a path-like value, or an already-open stream and returns the
// backend together with the path to hand it, while Ensure coerces
// foreign filesystem values into the contract.
//
//	loc, err := arrow.Resolve("hdfs://namenode:9000/data/part-0.parquet", nil)
//	if err != nil {
//		return err
//	}
//	f, err := loc.FS.Open(ctx, loc.Path, core.ModeRead)
//
// Plain paths and unrecognized schemes resolve to the process-wide
// local backend with the input preserved verbatim, so resolving
// "data/part-0.parquet" keeps its relative-path meaning.
package arrow
