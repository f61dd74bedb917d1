// Package local provides the local-disk backend, a thin adapter from the
// core filesystem contract onto the os package.
//
// Scheme-less and file:// paths resolve here. Resolution always hands out
// the process-wide shared instance, so two independently resolved handles
// compare identical:
//
//	loc, _ := arrow.Resolve("/data/x.parquet", nil)
//	loc.FS == local.Instance() // true
//
// Paths are host paths and the separator is the host separator. The backend
// holds no state of its own; tests sharing the instance isolate themselves
// by working under distinct temporary directories rather than resetting it.
//
// # Thread Safety
//
// FS instances are safe for concurrent use by multiple goroutines. File
// handles are not safe for concurrent use.
package local
