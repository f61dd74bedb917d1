package core

import (
	"context"
	"io"
)

// CopyFile copies a single file from one filesystem to another using only
// the abstract contract, streaming the content rather than buffering it.
// The source and destination may be the same backend. Parent directories of
// dst are not created; on backends without implicit parents they must exist.
func CopyFile(ctx context.Context, src FileSystem, srcPath string, dst FileSystem, dstPath string) error {
	in, err := src.Open(ctx, srcPath, ModeRead)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := dst.Open(ctx, dstPath, ModeWrite)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return PathError("copy", dstPath, err)
	}
	return out.Close()
}
