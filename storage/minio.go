package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	log "github.com/acikkaynak/housing-api-go/pkg/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// MinioBucket talks to any S3 compatible store, Cloudflare R2 included.
type MinioBucket struct {
	client *minio.Client
	bucket string
}

type MinioOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
}

func NewMinioBucket(ctx context.Context, opts MinioOptions) (*MinioBucket, error) {
	host, secure, err := splitEndpoint(opts.Endpoint)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(host, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: secure,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", host, err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		// R2 tokens scoped to a single bucket may not be allowed to probe it.
		log.Logger().Warn("could not verify bucket", zap.String("bucket", opts.Bucket), zap.Error(err))
	} else if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{Region: opts.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", opts.Bucket, err)
		}
		log.Logger().Info("bucket created", zap.String("bucket", opts.Bucket))
	}

	return &MinioBucket{client: client, bucket: opts.Bucket}, nil
}

func (b *MinioBucket) Get(ctx context.Context, key string) (*Object, error) {
	obj, err := b.client.GetObject(ctx, b.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, b.translate(key, err)
	}
	defer obj.Close()

	info, err := obj.Stat()
	if err != nil {
		return nil, b.translate(key, err)
	}

	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, b.translate(key, err)
	}

	return &Object{Body: body, ContentType: info.ContentType}, nil
}

func (b *MinioBucket) Put(ctx context.Context, key string, obj Object) error {
	_, err := b.client.PutObject(ctx, b.bucket, key, bytes.NewReader(obj.Body), int64(len(obj.Body)), minio.PutObjectOptions{
		ContentType: obj.ContentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %s to bucket %s: %w", key, b.bucket, err)
	}
	return nil
}

func (b *MinioBucket) translate(key string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrObjectNotFound
	}
	return fmt.Errorf("failed to read object %s from bucket %s: %w", key, b.bucket, err)
}

// splitEndpoint accepts both "host:port" and "https://host" forms.
func splitEndpoint(endpoint string) (string, bool, error) {
	if !strings.Contains(endpoint, "://") {
		return strings.TrimSuffix(endpoint, "/"), true, nil
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return "", false, fmt.Errorf("invalid storage endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return "", false, fmt.Errorf("invalid storage endpoint %q", endpoint)
	}
	return u.Host, u.Scheme == "https", nil
}
