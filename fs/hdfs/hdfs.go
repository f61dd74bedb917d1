package hdfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"log/slog"
	"net"
	"os"
	"sort"
	"strconv"
	"strings"

	hadoop "github.com/colinmarc/hdfs/v2"
	"github.com/colinmarc/hdfs/v2/hadoopconf"

	"github.com/ljodea/arrow/fs/core"
	"github.com/ljodea/arrow/fs/internal/pathutil"
)

// Config holds the configuration for connecting to an HDFS cluster.
type Config struct {
	// Host is the namenode host. A scheme prefix ("hdfs://host") is
	// accepted and stripped. Empty or "default" uses the namenode
	// addresses from the Hadoop environment configuration.
	Host string

	// Port is the namenode port. Zero omits the port from the address.
	Port int

	// User is the identity reported to the namenode. Empty uses the
	// current OS user.
	User string

	// Client is an optional pre-connected HDFS client. If provided,
	// Host, Port, and User are ignored.
	Client *hadoop.Client

	// Logger receives connection lifecycle events. Defaults to a
	// discarding logger.
	Logger *slog.Logger
}

// validate checks that the config is usable.
func (c *Config) validate() error {
	if c.Port < 0 {
		return fmt.Errorf("port must not be negative")
	}
	return nil
}

// client is the namenode surface FS needs. The production
// implementation wraps the protocol client; tests substitute an
// in-memory tree.
type client interface {
	Stat(name string) (os.FileInfo, error)
	ReadDir(dirname string) ([]os.FileInfo, error)
	Mkdir(dirname string, perm os.FileMode) error
	MkdirAll(dirname string, perm os.FileMode) error
	Remove(name string) error
	RemoveAll(name string) error
	Rename(oldpath, newpath string) error
	Open(name string) (fileReader, error)
	Create(name string) (io.WriteCloser, error)
	Append(name string) (io.WriteCloser, error)
	ReadFile(name string) ([]byte, error)
	Close() error
}

// fileReader is the read side of an HDFS file handle. The protocol
// client serves range reads, so Seek and ReadAt come for free.
type fileReader interface {
	io.Reader
	io.Seeker
	io.ReaderAt
	io.Closer
}

// hadoopClient adapts the protocol client's concrete handle types to
// the client interface.
type hadoopClient struct {
	*hadoop.Client
}

func (c *hadoopClient) Open(name string) (fileReader, error) {
	return c.Client.Open(name)
}

func (c *hadoopClient) Create(name string) (io.WriteCloser, error) {
	return c.Client.Create(name)
}

func (c *hadoopClient) Append(name string) (io.WriteCloser, error) {
	return c.Client.Append(name)
}

const defaultDirPerm = 0o755

// FS is a filesystem backed by an HDFS cluster.
type FS struct {
	client client
	logger *slog.Logger
}

var _ core.FileSystem = (*FS)(nil)

// Connect establishes a namenode connection and returns a filesystem
// over it. Close releases the connection.
func Connect(cfg Config) (*FS, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if cfg.Client != nil {
		return &FS{client: &hadoopClient{cfg.Client}, logger: logger}, nil
	}

	address := namenodeAddress(cfg.Host, cfg.Port)
	raw, err := dial(address, cfg.User)
	if err != nil {
		return nil, fmt.Errorf("connecting to namenode: %w", err)
	}
	logger.Debug("connected to namenode", "address", address, "user", cfg.User)

	return &FS{client: &hadoopClient{raw}, logger: logger}, nil
}

// namenodeAddress builds the dial address from a resolved host and
// port. "default" and empty hosts map to the empty address, which
// defers to the Hadoop environment configuration.
func namenodeAddress(host string, port int) string {
	host = pathutil.StripScheme(host)
	if host == "" || host == "default" {
		return ""
	}
	if port > 0 {
		return net.JoinHostPort(host, strconv.Itoa(port))
	}
	return host
}

func dial(address, username string) (*hadoop.Client, error) {
	if username == "" {
		return hadoop.New(address)
	}

	conf, err := hadoopconf.LoadFromEnvironment()
	if err != nil {
		return nil, fmt.Errorf("loading hadoop configuration: %w", err)
	}
	options := hadoop.ClientOptionsFromConf(conf)
	options.User = username
	if address != "" {
		options.Addresses = strings.Split(address, ",")
	}
	return hadoop.NewClient(options)
}

// Close releases the namenode connection.
func (h *FS) Close() error {
	h.logger.Debug("closing namenode connection")
	return h.client.Close()
}

func (h *FS) Stat(ctx context.Context, path string) (*core.StatInfo, error) {
	info, err := h.client.Stat(path)
	if err != nil {
		return nil, err
	}
	return statInfo(path, info), nil
}

func statInfo(path string, info os.FileInfo) *core.StatInfo {
	kind := core.KindFile
	if info.IsDir() {
		kind = core.KindDirectory
	}
	return &core.StatInfo{
		Path:    path,
		Kind:    kind,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Sys:     info,
	}
}

func (h *FS) List(ctx context.Context, path string) ([]string, error) {
	infos, err := h.client.ReadDir(path)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(infos))
	for i, info := range infos {
		paths[i] = joinPath(path, info.Name())
	}
	sort.Strings(paths)
	return paths, nil
}

func (h *FS) Walk(ctx context.Context, path string) iter.Seq2[core.WalkEntry, error] {
	return core.WalkDirs(ctx, path, "/", func(ctx context.Context, dir string) ([]string, []string, error) {
		infos, err := h.client.ReadDir(dir)
		if err != nil {
			return nil, nil, err
		}
		var dirs, files []string
		for _, info := range infos {
			if info.IsDir() {
				dirs = append(dirs, info.Name())
			} else {
				files = append(files, info.Name())
			}
		}
		sort.Strings(dirs)
		sort.Strings(files)
		return dirs, files, nil
	})
}

func (h *FS) Mkdir(ctx context.Context, path string) error {
	return h.client.Mkdir(path, defaultDirPerm)
}

func (h *FS) MkdirAll(ctx context.Context, path string) error {
	return h.client.MkdirAll(path, defaultDirPerm)
}

func (h *FS) Delete(ctx context.Context, path string, recursive bool) error {
	info, err := h.client.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return core.PathError("delete", path, core.ErrNotExist)
		}
		return err
	}

	if !info.IsDir() {
		return h.client.Remove(path)
	}
	if recursive {
		return h.client.RemoveAll(path)
	}

	// Check emptiness ourselves so the error is portable instead of a
	// namenode exception string.
	children, err := h.client.ReadDir(path)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return core.PathError("delete", path, core.ErrNotEmpty)
	}
	return h.client.Remove(path)
}

func (h *FS) Rename(ctx context.Context, from, to string) error {
	return h.client.Rename(from, to)
}

func (h *FS) Exists(ctx context.Context, path string) (bool, error) {
	if _, err := h.client.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (h *FS) IsDir(ctx context.Context, path string) (bool, error) {
	info, err := h.client.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

func (h *FS) IsFile(ctx context.Context, path string) (bool, error) {
	info, err := h.client.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

func (h *FS) Open(ctx context.Context, path string, mode core.OpenMode) (core.File, error) {
	switch mode {
	case core.ModeRead:
		r, err := h.client.Open(path)
		if err != nil {
			return nil, err
		}
		return &readFile{name: path, r: r}, nil
	case core.ModeWrite:
		// The namenode create call has no overwrite flag, so clear any
		// previous file first.
		if info, err := h.client.Stat(path); err == nil {
			if info.IsDir() {
				return nil, core.PathError("open", path, core.ErrInvalid)
			}
			if err := h.client.Remove(path); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		w, err := h.client.Create(path)
		if err != nil {
			return nil, err
		}
		return &writeFile{name: path, w: w}, nil
	case core.ModeAppend:
		w, err := h.client.Append(path)
		if errors.Is(err, fs.ErrNotExist) {
			w, err = h.client.Create(path)
		}
		if err != nil {
			return nil, err
		}
		return &writeFile{name: path, w: w}, nil
	default:
		return nil, core.PathErrorf("open", path, "invalid mode %d: %w", mode, core.ErrInvalid)
	}
}

func (h *FS) ReadFile(ctx context.Context, path string) ([]byte, error) {
	return h.client.ReadFile(path)
}

func (h *FS) DiskUsage(ctx context.Context, path string) (int64, error) {
	return core.DiskUsage(ctx, h, path)
}

func (h *FS) IsFileStore() bool { return true }

func (h *FS) PathSeparator() string { return "/" }

// joinPath joins an HDFS directory and a child name without cleaning.
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}
