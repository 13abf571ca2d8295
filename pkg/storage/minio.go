// Package storage wraps the MinIO client behind the small blob interface the
// usecases need: upload, delete and presigned download URLs. Object keys
// follow the convention {category}/{ownerID}/{recordID}/{filename}.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Object categories used to build keys
const (
	CategoryCV         = "cv"
	CategoryContracts  = "contracts"
	CategorySignatures = "signatures"
	CategoryDocuments  = "documents"
)

// BlobStore is the storage contract consumed by the usecases.
type BlobStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// Config holds MinIO connection settings.
type Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	UseSSL          bool
	PublicBaseURL   string // base URL returned to clients for uploaded objects
}

// Client implements BlobStore on top of a MinIO bucket.
type Client struct {
	mc            *minio.Client
	bucket        string
	publicBaseURL string
}

// NewClient connects to MinIO and makes sure the bucket exists.
func NewClient(cfg Config) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := mc.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := mc.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("make bucket %q: %w", cfg.Bucket, err)
		}
	}

	return &Client{mc: mc, bucket: cfg.Bucket, publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/")}, nil
}

// ObjectKey builds the canonical key for a stored blob.
func ObjectKey(category, ownerID, recordID, filename string) string {
	return path.Join(category, ownerID, recordID, filename)
}

// Upload stores the blob and returns the URL the record should reference.
// The URL stays valid as long as the object exists under the same key.
func (c *Client) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := c.mc.PutObject(ctx, c.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", key, err)
	}
	return c.objectURL(key), nil
}

// Delete removes the blob. A missing key is treated as success so record
// deletion stays idempotent; any other storage failure is surfaced.
func (c *Client) Delete(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}
	if err := c.mc.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		if isNoSuchKey(err) {
			return nil
		}
		return fmt.Errorf("remove object %q: %w", key, err)
	}
	return nil
}

// PresignedURL generates a time-limited download link for a private object.
func (c *Client) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := c.mc.PresignedGetObject(ctx, c.bucket, key, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign object %q: %w", key, err)
	}
	return u.String(), nil
}

func (c *Client) objectURL(key string) string {
	if c.publicBaseURL != "" {
		return c.publicBaseURL + "/" + c.bucket + "/" + key
	}
	scheme := "http"
	if c.mc.EndpointURL() != nil && c.mc.EndpointURL().Scheme == "https" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, c.mc.EndpointURL().Host, c.bucket, key)
}

func isNoSuchKey(err error) bool {
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey", "NotFound":
		return true
	}
	return false
}
