package objstore

import (
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljodea/arrow/fs/core"
)

// TestConfigValidation tests Config.validate() with various scenarios.
func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid config with credentials",
			config: Config{
				Endpoint:  "localhost:9000",
				Bucket:    "test-bucket",
				AccessKey: "minioadmin",
				SecretKey: "minioadmin",
			},
			wantErr: false,
		},
		{
			name: "valid config with client",
			config: Config{
				Client: &minio.Client{},
				Bucket: "test-bucket",
			},
			wantErr: false,
		},
		{
			name: "missing bucket",
			config: Config{
				Endpoint:  "localhost:9000",
				AccessKey: "minioadmin",
				SecretKey: "minioadmin",
			},
			wantErr: true,
			errMsg:  "bucket is required",
		},
		{
			name: "missing endpoint without client",
			config: Config{
				Bucket:    "test-bucket",
				AccessKey: "minioadmin",
				SecretKey: "minioadmin",
			},
			wantErr: true,
			errMsg:  "endpoint is required when client is not provided",
		},
		{
			name: "missing access key without client",
			config: Config{
				Endpoint:  "localhost:9000",
				Bucket:    "test-bucket",
				SecretKey: "minioadmin",
			},
			wantErr: true,
			errMsg:  "access key is required when client is not provided",
		},
		{
			name: "missing secret key without client",
			config: Config{
				Endpoint:  "localhost:9000",
				Bucket:    "test-bucket",
				AccessKey: "minioadmin",
			},
			wantErr: true,
			errMsg:  "secret key is required when client is not provided",
		},
		{
			name: "negative remove concurrency",
			config: Config{
				Client:               &minio.Client{},
				Bucket:               "test-bucket",
				MaxRemoveConcurrency: -1,
			},
			wantErr: true,
			errMsg:  "max remove concurrency must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestNewMinioClient tests the client constructor.
func TestNewMinioClient(t *testing.T) {
	t.Run("invalid config returns error", func(t *testing.T) {
		client, err := NewMinioClient(Config{Endpoint: "localhost:9000"})
		require.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "invalid config")
	})

	t.Run("valid config with client", func(t *testing.T) {
		client, err := NewMinioClient(Config{
			Client: &minio.Client{},
			Bucket: "test-bucket",
		})
		require.NoError(t, err)
		require.NotNil(t, client)
		assert.Equal(t, "test-bucket", client.bucket)
		assert.Equal(t, defaultRemoveConcurrency, client.removeConcurrency)
	})

	t.Run("custom remove concurrency", func(t *testing.T) {
		client, err := NewMinioClient(Config{
			Client:               &minio.Client{},
			Bucket:               "test-bucket",
			MaxRemoveConcurrency: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, client.removeConcurrency)
	})
}

// TestNewMinIO tests the one-call filesystem constructor.
func TestNewMinIO(t *testing.T) {
	t.Run("invalid config returns error", func(t *testing.T) {
		fsys, err := NewMinIO(Config{})
		require.Error(t, err)
		assert.Nil(t, fsys)
	})

	t.Run("wraps a minio client", func(t *testing.T) {
		fsys, err := NewMinIO(Config{
			Client: &minio.Client{},
			Bucket: "test-bucket",
		})
		require.NoError(t, err)
		require.NotNil(t, fsys)

		_, ok := fsys.Client().(*MinioClient)
		assert.True(t, ok)
	})
}

// TestTranslate tests the MinIO error mapping.
func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"no such key", minio.ErrorResponse{Code: "NoSuchKey"}, core.ErrNotExist},
		{"no such bucket", minio.ErrorResponse{Code: "NoSuchBucket"}, core.ErrNotExist},
		{"access denied", minio.ErrorResponse{Code: "AccessDenied"}, core.ErrPermission},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	t.Run("unrecognized errors are wrapped", func(t *testing.T) {
		cause := errors.New("connection reset")
		got := translate(cause)
		assert.ErrorIs(t, got, cause)
		assert.Contains(t, got.Error(), "minio:")
	})
}
