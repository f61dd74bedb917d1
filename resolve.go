package arrow

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/ljodea/arrow/fs/core"
	"github.com/ljodea/arrow/fs/hdfs"
	"github.com/ljodea/arrow/fs/local"
)

// Schemes dispatched by Resolve. Anything else is handed to the local
// backend as a literal path.
const (
	schemeHDFS   = "hdfs"
	schemeViewFS = "viewfs"
	schemeFile   = "file"
)

// defaultHost is the sentinel passed to the distributed backend when a
// URI carries no authority, as in "hdfs:///data". The backend expands
// it from the client environment.
const defaultHost = "default"

// Location is a resolved source: a backend plus the path it serves, or
// an already-open stream when no backend applies.
type Location struct {
	// FS is the backend that serves Path. It is nil when Stream is set.
	FS core.FileSystem

	// Path is the location in the backend's native form.
	Path string

	// Stream is the original reader when the source was already open
	// rather than addressable by path.
	Stream io.Reader
}

// PathStringer renders a value as a filesystem path. Values that
// implement it are accepted by Resolve wherever a path string is.
type PathStringer interface {
	PathString() string
}

// hdfsConnect dials the distributed backend named by a URI authority.
// Tests swap it out to avoid a live namenode.
var hdfsConnect = func(host string, port int) (core.FileSystem, error) {
	return hdfs.Connect(hdfs.Config{Host: host, Port: port})
}

// Resolve turns a source into a backend and a path ready to open.
//
// The source may be a string, a PathStringer, or an io.Reader that is
// already open. Strings are classified by scheme: "hdfs://" and
// "viewfs://" URIs dial the distributed backend named by their
// authority, "file://" URIs map to the local backend with the decoded
// URI path, and anything else resolves to the local backend with the
// source string untouched. An already-open reader resolves to a
// Location holding only the stream.
//
// A non-nil filesystem pins the backend: the value is coerced through
// Ensure and the source is kept as a plain path with no URI
// inspection. Combining an explicit filesystem with a stream source
// fails with ErrInvalid, as there is nothing left to open.
func Resolve(where any, filesystem any) (*Location, error) {
	path, pathlike := pathString(where)
	if !pathlike {
		stream, ok := where.(io.Reader)
		if !ok {
			return nil, fmt.Errorf("resolve: unsupported source type %T: %w", where, core.ErrInvalid)
		}
		if filesystem != nil {
			return nil, fmt.Errorf("resolve: nothing to open, source is already a stream: %w", core.ErrInvalid)
		}
		return &Location{Stream: stream}, nil
	}

	if filesystem != nil {
		fsys, err := Ensure(filesystem)
		if err != nil {
			return nil, err
		}
		return &Location{FS: fsys, Path: path}, nil
	}
	return resolveURI(path)
}

// pathString normalizes path-like sources to a string.
func pathString(where any) (string, bool) {
	switch v := where.(type) {
	case string:
		return v, true
	case PathStringer:
		return v.PathString(), true
	default:
		return "", false
	}
}

// resolveURI classifies a source string by scheme.
func resolveURI(path string) (*Location, error) {
	switch {
	case hasScheme(path, schemeHDFS), hasScheme(path, schemeViewFS):
		return resolveRemote(path)
	case hasScheme(path, schemeFile):
		if u, err := url.Parse(path); err == nil {
			return &Location{FS: local.Instance(), Path: u.Path}, nil
		}
		// An unparseable file URI degrades to a literal local path.
		return &Location{FS: local.Instance(), Path: path}, nil
	default:
		// Unknown schemes and bare paths keep the input verbatim.
		// Reducing to a parsed path component would normalize relative
		// paths away.
		return &Location{FS: local.Instance(), Path: path}, nil
	}
}

func hasScheme(s, scheme string) bool {
	return strings.HasPrefix(s, scheme+"://")
}

// resolveRemote dials the namenode named by a distributed-filesystem
// URI. The authority is split by hand: a malformed port such as
// "hdfs://host:port/x" must fall back to port zero, and strict URL
// parsing rejects the whole string instead.
func resolveRemote(uri string) (*Location, error) {
	scheme, rest, _ := strings.Cut(uri, "://")
	authority, tail, found := strings.Cut(rest, "/")

	fsPath := ""
	if found {
		fsPath = "/" + tail
	}

	host, port := splitAuthority(scheme, authority)
	fsys, err := hdfsConnect(host, port)
	if err != nil {
		return nil, fmt.Errorf("resolve: connecting to %q: %w", host, err)
	}
	return &Location{FS: fsys, Path: fsPath}, nil
}

// splitAuthority extracts the connect host and port from a URI
// authority. An absent host becomes the default-host sentinel; a
// present one keeps its scheme prefix so the backend can tell plain
// hostnames from namespace addresses. The port survives only as a
// numeric second component, anything else means zero.
func splitAuthority(scheme, authority string) (string, int) {
	parts := strings.Split(authority, ":")

	host := parts[0]
	if host == "" {
		host = defaultHost
	} else {
		host = scheme + "://" + host
	}

	port := 0
	if len(parts) == 2 {
		if n, err := strconv.Atoi(parts[1]); err == nil && n >= 0 {
			port = n
		}
	}
	return host, port
}
