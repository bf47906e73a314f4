package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"time"

	"hopebridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3UploadStore stores admin media uploads (hero images, program photos,
// team portraits) in S3 and returns the public object URL the content
// documents reference.

type S3UploadStore struct {
	client *s3.Client
	bucket string
	region string
}

var _ interfaces.IUploadStore = (*S3UploadStore)(nil)

func NewS3UploadStore(client *s3.Client, bucket, region string) *S3UploadStore {
	return &S3UploadStore{client: client, bucket: bucket, region: region}
}

func (s *S3UploadStore) Upload(ctx context.Context, filename string, contentType string, data []byte) (string, error) {
	// Object keys are uuid-prefixed so editors can re-upload files with the
	// same name without overwriting anything.
	key := fmt.Sprintf("uploads/%s-%d%s", uuid.NewString(), time.Now().Unix(), path.Ext(filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("[upload][store] put failed bucket=%s key=%s err=%v", s.bucket, key, err)
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	log.Printf("[upload][store] put success key=%s", key)
	return url, nil
}
