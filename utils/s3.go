// utils/s3.go
package utils

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var backupClient *s3.Client
var backupBucket string

// InitBackupStore wires the S3 client used for snapshot backups. Works
// against AWS proper or any S3-compatible endpoint via BACKUP_S3_ENDPOINT.
func InitBackupStore() error {
	accessKeyID := os.Getenv("BACKUP_ACCESS_KEY_ID")
	accessKeySecret := os.Getenv("BACKUP_ACCESS_KEY_SECRET")
	backupBucket = os.Getenv("BACKUP_BUCKET_NAME")
	endpoint := os.Getenv("BACKUP_S3_ENDPOINT")
	region := os.Getenv("BACKUP_S3_REGION")
	if region == "" {
		region = "auto"
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKeyID, accessKeySecret, "",
		)),
	)
	if err != nil {
		return fmt.Errorf("failed to load backup store config: %w", err)
	}

	backupClient = s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return nil
}

// UploadSnapshot writes one JSON snapshot object to the backup bucket.
func UploadSnapshot(ctx context.Context, key string, body []byte) error {
	if backupClient == nil {
		return fmt.Errorf("backup store not initialized")
	}

	_, err := backupClient.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(backupBucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload snapshot: %w", err)
	}
	return nil
}
