package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"baupanel/internal/domain/service"
	"baupanel/pkg/logger"
)

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, bucketName, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

func (c *CloudStorageClient) Upload(ctx context.Context, file io.Reader, contentType, folder string) (*service.UploadResult, error) {
	name := fmt.Sprintf("%s/%s-%s", strings.Trim(folder, "/"), uuid.New().String(), time.Now().Format("20060102150405"))

	switch contentType {
	case "image/jpeg", "image/jpg":
		name += ".jpg"
	case "image/png":
		name += ".png"
	case "application/pdf":
		name += ".pdf"
	default:
		name += ".bin"
	}

	obj := c.client.Bucket(c.bucketName).Object(name)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"

	size, err := io.Copy(wc, file)
	if err != nil {
		return nil, fmt.Errorf("failed to copy file to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %v", err)
	}

	return &service.UploadResult{
		URL:  fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, name),
		Name: name,
		Size: size,
	}, nil
}

func (c *CloudStorageClient) Destroy(ctx context.Context, objectName string) (service.DeleteOutcome, error) {
	err := c.client.Bucket(c.bucketName).Object(objectName).Delete(ctx)
	if err == nil {
		return service.DeleteOutcomeDeleted, nil
	}
	if errors.Is(err, storage.ErrObjectNotExist) {
		// Already gone, treat as success so retried cascades stay clean
		return service.DeleteOutcomeNotFound, nil
	}
	return service.DeleteOutcomeFailed, fmt.Errorf("failed to delete object %s: %v", objectName, err)
}

func (c *CloudStorageClient) ListByPrefix(ctx context.Context, prefix string) ([]string, error) {
	it := c.client.Bucket(c.bucketName).Objects(ctx, &storage.Query{Prefix: prefix})

	var names []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects with prefix %s: %v", prefix, err)
		}
		names = append(names, attrs.Name)
	}

	return names, nil
}

func (c *CloudStorageClient) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	names, err := c.ListByPrefix(ctx, prefix)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, name := range names {
		outcome, err := c.Destroy(ctx, name)
		if outcome == service.DeleteOutcomeFailed {
			logger.Warn("Failed to delete object %s during prefix cleanup: %v", name, err)
			continue
		}
		deleted++
	}

	return deleted, nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
