package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
	projectID  string
}

func NewCloudStorageClient(ctx context.Context, bucketName, projectID string, credentialsPath string) (*CloudStorageClient, error) {
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
		projectID:  projectID,
	}, nil
}

func extensionFor(fileType string) string {
	switch fileType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "application/pdf":
		return ".pdf"
	default:
		return ".bin"
	}
}

// UploadFile stores one medical file under the user's folder and returns
// its URL. Medical uploads are never public.
func (c *CloudStorageClient) UploadFile(ctx context.Context, file io.Reader, fileType, userID string) (string, error) {
	filename := fmt.Sprintf("uploads/%s/%s-%s%s",
		userID,
		uuid.New().String(),
		time.Now().Format("20060102150405"),
		extensionFor(fileType),
	)

	obj := c.client.Bucket(c.bucketName).Object(filename)
	wc := obj.NewWriter(ctx)
	wc.ContentType = fileType

	if _, err := io.Copy(wc, file); err != nil {
		return "", fmt.Errorf("failed to copy file to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, filename), nil
}

// DownloadFile reads a stored object back into memory for analysis,
// returning the payload and its content type. The whole object is
// buffered; analysis needs the full payload anyway.
func (c *CloudStorageClient) DownloadFile(ctx context.Context, fileURL string) ([]byte, string, error) {
	objectName, err := c.objectNameFromURL(fileURL)
	if err != nil {
		return nil, "", err
	}

	obj := c.client.Bucket(c.bucketName).Object(objectName)
	rc, err := obj.NewReader(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open object reader: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read object: %v", err)
	}

	return data, rc.Attrs.ContentType, nil
}

func (c *CloudStorageClient) DeleteFile(ctx context.Context, fileURL string) error {
	objectName, err := c.objectNameFromURL(fileURL)
	if err != nil {
		return err
	}

	obj := c.client.Bucket(c.bucketName).Object(objectName)
	if err := obj.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete file: %v", err)
	}

	return nil
}

// GenerateSignedDownloadURL gives the caller short-lived read access to a
// private upload.
func (c *CloudStorageClient) GenerateSignedDownloadURL(fileURL string) (string, error) {
	objectName, err := c.objectNameFromURL(fileURL)
	if err != nil {
		return "", err
	}

	opts := &storage.SignedURLOptions{
		Method:  http.MethodGet,
		Expires: time.Now().Add(15 * time.Minute),
	}

	url, err := storage.SignedURL(c.bucketName, objectName, opts)
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %v", err)
	}

	return url, nil
}

func (c *CloudStorageClient) objectNameFromURL(fileURL string) (string, error) {
	// Expected URL format: https://storage.googleapis.com/bucket-name/file-path
	const prefix = "https://storage.googleapis.com/"
	if !strings.HasPrefix(fileURL, prefix) {
		return "", fmt.Errorf("invalid GCS URL format")
	}

	path := fileURL[len(prefix):]
	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 || parts[0] != c.bucketName {
		return "", fmt.Errorf("invalid GCS URL format or bucket mismatch")
	}

	return parts[1], nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
