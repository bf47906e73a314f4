package storage

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ConnectS3 creates an S3 client plus the bucket/region pair the upload
// store builds public URLs from.
//
// Supported env vars:
//   - AWS_REGION (default: us-east-1)
//   - UPLOADS_BUCKET (default: hopebridge-uploads)
func ConnectS3() (*s3.Client, string, string) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}

	bucket := os.Getenv("UPLOADS_BUCKET")
	if bucket == "" {
		bucket = "hopebridge-uploads"
	}

	cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		log.Fatalf("failed to load AWS config for S3: %v", err)
	}

	return s3.NewFromConfig(cfg), bucket, region
}
