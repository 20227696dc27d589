package mocks

import (
	"context"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

// WithObject returns a client serving body as bucket/objectName.
func WithObject(bucket, objectName, body string) *Client {
	m := new(Client)
	m.On("BucketExists", mock.Anything, bucket).Return(true, nil)
	m.On("GetObject", mock.Anything, bucket, objectName, mock.Anything).
		Return(io.NopCloser(strings.NewReader(body)), nil)
	return m
}

func (m *Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	args := m.Called(ctx, bucketName)
	return args.Bool(0), args.Error(1)
}

func (m *Client) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	args := m.Called(ctx, bucketName, objectName, opts)
	if obj, ok := args.Get(0).(io.ReadCloser); ok {
		return obj, args.Error(1)
	}
	return nil, args.Error(1)
}
