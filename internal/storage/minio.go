package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/nsu-ctrg/grant-review/internal/config"
)

var Client *minioSDK.Client
var BucketName string

func InitMinio() {
	BucketName = config.MinioBucket

	minioClient, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		log.Printf("Bucket created: %s", BucketName)
	}

	Client = minioClient
	log.Println("Successfully connected to MinIO")
}

// UploadProposalFile stores one uploaded document under a unique object key
// and returns the key. Keys group by proposal so a listing shows every
// document attached to it.
func UploadProposalFile(ctx context.Context, pid uint, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	objectKey := fmt.Sprintf("proposals/%d/%s%s", pid, uuid.New().String(), filepath.Ext(filename))

	_, err := Client.PutObject(ctx, BucketName, objectKey, reader, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", objectKey, err)
	}
	return objectKey, nil
}

// PresignedDownloadURL returns a short-lived URL for one stored document.
func PresignedDownloadURL(ctx context.Context, objectKey string) (string, error) {
	u, err := Client.PresignedGetObject(ctx, BucketName, objectKey, 15*time.Minute, nil)
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", objectKey, err)
	}
	return u.String(), nil
}

// DeleteObject removes one stored document, for draft deletion.
func DeleteObject(ctx context.Context, objectKey string) error {
	return Client.RemoveObject(ctx, BucketName, objectKey, minioSDK.RemoveObjectOptions{})
}
