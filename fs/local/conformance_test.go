package local_test

import (
	"testing"

	"github.com/ljodea/arrow/fs/core"
	"github.com/ljodea/arrow/fs/fstest"
	"github.com/ljodea/arrow/fs/local"
)

func TestConformance(t *testing.T) {
	fstest.Run(t, func(t *testing.T) (core.FileSystem, string) {
		return local.New(), t.TempDir()
	}, fstest.POSIXConfig())
}
