package objstore

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/sync/errgroup"

	"github.com/ljodea/arrow/fs/core"
)

// dirContentType marks zero-byte objects that stand in for directories.
const dirContentType = "application/x-directory"

// defaultRemoveConcurrency bounds parallel object deletion during
// recursive removes.
const defaultRemoveConcurrency = 10

// Config holds the configuration for connecting to a MinIO or S3
// compatible object store.
type Config struct {
	// Endpoint is the store endpoint (e.g., "localhost:9000").
	Endpoint string

	// Bucket is the bucket holding all keys served by this client.
	Bucket string

	// AccessKey is the access key for authentication.
	AccessKey string

	// SecretKey is the secret key for authentication.
	SecretKey string

	// UseSSL enables HTTPS connections.
	UseSSL bool

	// Client is an optional pre-configured MinIO client. If provided,
	// Endpoint, AccessKey, SecretKey, and UseSSL are ignored.
	Client *minio.Client

	// MaxRemoveConcurrency bounds parallel deletes during recursive
	// removal. Defaults to 10.
	MaxRemoveConcurrency int
}

// validate checks that the config is usable.
func (c *Config) validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}
	if c.Client == nil {
		if c.Endpoint == "" {
			return fmt.Errorf("endpoint is required when client is not provided")
		}
		if c.AccessKey == "" {
			return fmt.Errorf("access key is required when client is not provided")
		}
		if c.SecretKey == "" {
			return fmt.Errorf("secret key is required when client is not provided")
		}
	}
	if c.MaxRemoveConcurrency < 0 {
		return fmt.Errorf("max remove concurrency must not be negative")
	}
	return nil
}

// MinioClient implements Client against a MinIO or S3 compatible
// object store. All keys are relative to a single bucket.
type MinioClient struct {
	client            *minio.Client
	bucket            string
	removeConcurrency int
}

var _ Client = (*MinioClient)(nil)

// NewMinioClient creates a flat-namespace client from the given
// configuration, connecting to the store if no pre-configured client
// is supplied.
func NewMinioClient(cfg Config) (*MinioClient, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := cfg.Client
	if client == nil {
		var err error
		client, err = minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("creating minio client: %w", err)
		}
	}

	concurrency := cfg.MaxRemoveConcurrency
	if concurrency == 0 {
		concurrency = defaultRemoveConcurrency
	}

	return &MinioClient{
		client:            client,
		bucket:            cfg.Bucket,
		removeConcurrency: concurrency,
	}, nil
}

// NewMinIO creates a filesystem backed by a MinIO or S3 compatible
// object store.
func NewMinIO(cfg Config) (*FS, error) {
	client, err := NewMinioClient(cfg)
	if err != nil {
		return nil, err
	}
	return New(client), nil
}

// List returns the immediate children under path, including the
// path's own directory marker when one exists. A path naming an exact
// object lists as itself; a missing path lists empty.
func (c *MinioClient) List(ctx context.Context, path string) ([]string, error) {
	var keys []string

	prefix := ""
	if path != "" {
		prefix = path + "/"
	}
	for obj := range c.client.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{
		Prefix: prefix,
	}) {
		if obj.Err != nil {
			return nil, translate(obj.Err)
		}
		// Marker keys keep their trailing slash so they never compare
		// equal to the bare path in directory probes.
		keys = append(keys, obj.Key)
	}
	if len(keys) > 0 || path == "" {
		return keys, nil
	}

	// Nothing under the slashed prefix. The path may still name an
	// exact object.
	_, err := c.client.StatObject(ctx, c.bucket, path, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, nil
		}
		return nil, translate(err)
	}
	return []string{path}, nil
}

// ListDetail returns classified entries for the immediate children
// under path. The path's own marker is not included.
func (c *MinioClient) ListDetail(ctx context.Context, path string) ([]Entry, error) {
	prefix := ""
	if path != "" {
		prefix = path + "/"
	}

	var entries []Entry
	for obj := range c.client.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{
		Prefix: prefix,
	}) {
		if obj.Err != nil {
			return nil, translate(obj.Err)
		}
		if obj.Key == prefix {
			continue
		}
		entry := Entry{
			Key:     obj.Key,
			Class:   ClassObject,
			Size:    obj.Size,
			ModTime: obj.LastModified,
		}
		if strings.HasSuffix(obj.Key, "/") {
			entry.Key = strings.TrimSuffix(obj.Key, "/")
			entry.Class = ClassDirectory
			entry.Size = 0
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Exists reports whether path names an object, a directory marker, or
// a prefix with at least one key under it.
func (c *MinioClient) Exists(ctx context.Context, path string) (bool, error) {
	_, err := c.client.StatObject(ctx, c.bucket, path, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if minio.ToErrorResponse(err).Code != "NoSuchKey" {
		return false, translate(err)
	}

	for obj := range c.client.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{
		Prefix:  path + "/",
		MaxKeys: 1,
	}) {
		if obj.Err != nil {
			return false, translate(obj.Err)
		}
		return true, nil
	}
	return false, nil
}

// Remove deletes the object or subtree at path. Non-recursive removal
// refuses to delete a directory that still has children.
func (c *MinioClient) Remove(ctx context.Context, path string, recursive bool) error {
	exists, err := c.Exists(ctx, path)
	if err != nil {
		return err
	}
	if !exists {
		return core.ErrNotExist
	}

	if recursive {
		return c.removeAll(ctx, path)
	}

	entries, err := c.ListDetail(ctx, path)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return core.ErrNotEmpty
	}

	if err := c.client.RemoveObject(ctx, c.bucket, path, minio.RemoveObjectOptions{}); err != nil {
		return translate(err)
	}
	// Directory markers live under the slashed key.
	if err := c.client.RemoveObject(ctx, c.bucket, path+"/", minio.RemoveObjectOptions{}); err != nil {
		return translate(err)
	}
	return nil
}

// removeAll deletes every key at or under path with bounded
// concurrency.
func (c *MinioClient) removeAll(ctx context.Context, path string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.removeConcurrency)

	for obj := range c.client.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{
		Prefix:    path,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return translate(obj.Err)
		}
		// The raw prefix listing also surfaces siblings that merely
		// share leading characters ("data" must not take "database").
		key := strings.TrimSuffix(obj.Key, "/")
		if key != path && !strings.HasPrefix(obj.Key, path+"/") {
			continue
		}
		objKey := obj.Key
		g.Go(func() error {
			if err := c.client.RemoveObject(gctx, c.bucket, objKey, minio.RemoveObjectOptions{}); err != nil {
				return translate(err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Mkdir creates a zero-byte directory marker at path. With parents
// set, markers for every ancestor are created as well.
func (c *MinioClient) Mkdir(ctx context.Context, path string, parents bool) error {
	if path == "" {
		return nil
	}

	keys := []string{path}
	if parents {
		segments := strings.Split(path, "/")
		keys = keys[:0]
		for i := 1; i <= len(segments); i++ {
			keys = append(keys, strings.Join(segments[:i], "/"))
		}
	}

	for _, key := range keys {
		_, err := c.client.PutObject(ctx, c.bucket, key+"/", bytes.NewReader(nil), 0,
			minio.PutObjectOptions{ContentType: dirContentType})
		if err != nil {
			return translate(err)
		}
	}
	return nil
}

// Open opens the object at path. Reads stat the object up front so a
// missing key fails at open rather than at first read; writes stream
// through a background upload completed on Close. Append is not
// supported by flat object stores.
func (c *MinioClient) Open(ctx context.Context, path string, mode core.OpenMode) (core.File, error) {
	switch mode {
	case core.ModeRead:
		if _, err := c.client.StatObject(ctx, c.bucket, path, minio.StatObjectOptions{}); err != nil {
			return nil, translate(err)
		}
		obj, err := c.client.GetObject(ctx, c.bucket, path, minio.GetObjectOptions{})
		if err != nil {
			return nil, translate(err)
		}
		return &readFile{name: path, obj: obj}, nil
	case core.ModeWrite:
		return newWriteFile(ctx, c, path), nil
	case core.ModeAppend:
		return nil, fmt.Errorf("append mode: %w", core.ErrNotSupported)
	default:
		return nil, core.ErrInvalid
	}
}

// translate converts MinIO errors to the package error taxonomy.
func translate(err error) error {
	if err == nil {
		return nil
	}
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return core.ErrNotExist
	case "AccessDenied":
		return core.ErrPermission
	}
	return fmt.Errorf("minio: %w", err)
}
