package objstore

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"

	"github.com/ljodea/arrow/fs/core"
)

// readFile streams object content. The SDK object supports range
// requests, so Seek and ReadAt work without buffering the whole body.
type readFile struct {
	name string
	obj  *minio.Object
}

var _ core.File = (*readFile)(nil)
var _ io.Seeker = (*readFile)(nil)
var _ io.ReaderAt = (*readFile)(nil)

func (f *readFile) Read(p []byte) (int, error) {
	n, err := f.obj.Read(p)
	if err != nil && err != io.EOF {
		return n, core.PathError("read", f.name, translate(err))
	}
	return n, err
}

func (f *readFile) ReadAt(p []byte, off int64) (int, error) {
	n, err := f.obj.ReadAt(p, off)
	if err != nil && err != io.EOF {
		return n, core.PathError("read", f.name, translate(err))
	}
	return n, err
}

func (f *readFile) Seek(offset int64, whence int) (int64, error) {
	pos, err := f.obj.Seek(offset, whence)
	if err != nil {
		return pos, core.PathError("seek", f.name, translate(err))
	}
	return pos, nil
}

func (f *readFile) Write(p []byte) (int, error) {
	return 0, core.PathError("write", f.name, core.ErrInvalid)
}

func (f *readFile) Close() error {
	if err := f.obj.Close(); err != nil {
		return core.PathError("close", f.name, translate(err))
	}
	return nil
}

func (f *readFile) Name() string {
	return f.name
}

// writeFile pipes writes into a background upload. The object becomes
// visible only after Close flushes the pipe and the upload completes.
type writeFile struct {
	name   string
	pw     *io.PipeWriter
	done   chan error
	closed bool
}

var _ core.File = (*writeFile)(nil)

func newWriteFile(ctx context.Context, c *MinioClient, key string) *writeFile {
	pr, pw := io.Pipe()
	done := make(chan error, 1)
	go func() {
		_, err := c.client.PutObject(ctx, c.bucket, key, pr, -1, minio.PutObjectOptions{})
		// Unblock any in-flight Write before reporting.
		pr.CloseWithError(err)
		done <- translate(err)
	}()
	return &writeFile{name: key, pw: pw, done: done}
}

func (f *writeFile) Write(p []byte) (int, error) {
	if f.closed {
		return 0, core.PathError("write", f.name, core.ErrClosed)
	}
	n, err := f.pw.Write(p)
	if err != nil {
		return n, core.PathError("write", f.name, err)
	}
	return n, nil
}

func (f *writeFile) Read(p []byte) (int, error) {
	return 0, core.PathError("read", f.name, core.ErrInvalid)
}

func (f *writeFile) Close() error {
	if f.closed {
		return core.PathError("close", f.name, core.ErrClosed)
	}
	f.closed = true
	f.pw.Close()
	if err := <-f.done; err != nil {
		return core.PathError("close", f.name, err)
	}
	return nil
}

func (f *writeFile) Name() string {
	return f.name
}
