package hdfs

import (
	"io"

	"github.com/ljodea/arrow/fs/core"
)

// readFile wraps a protocol read handle. Writes are rejected; Seek and
// ReadAt pass through to the block reader.
type readFile struct {
	name string
	r    fileReader
}

var _ core.File = (*readFile)(nil)
var _ io.Seeker = (*readFile)(nil)
var _ io.ReaderAt = (*readFile)(nil)

func (f *readFile) Read(p []byte) (int, error) {
	return f.r.Read(p)
}

func (f *readFile) ReadAt(p []byte, off int64) (int, error) {
	return f.r.ReadAt(p, off)
}

func (f *readFile) Seek(offset int64, whence int) (int64, error) {
	return f.r.Seek(offset, whence)
}

func (f *readFile) Write(p []byte) (int, error) {
	return 0, core.PathError("write", f.name, core.ErrInvalid)
}

func (f *readFile) Close() error {
	return f.r.Close()
}

func (f *readFile) Name() string {
	return f.name
}

// writeFile wraps a protocol write handle. HDFS buffers and
// acknowledges writes asynchronously, so data is durable only after
// Close.
type writeFile struct {
	name string
	w    io.WriteCloser
}

var _ core.File = (*writeFile)(nil)

func (f *writeFile) Write(p []byte) (int, error) {
	return f.w.Write(p)
}

func (f *writeFile) Read(p []byte) (int, error) {
	return 0, core.PathError("read", f.name, core.ErrInvalid)
}

func (f *writeFile) Close() error {
	return f.w.Close()
}

func (f *writeFile) Name() string {
	return f.name
}
