// Package blob archives avatar payloads to S3-compatible object storage.
// The archive is write-behind and optional: the authoritative copy of the
// avatar always lives inside the user record, the bucket just keeps history.
package blob

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Config carries the S3 connection settings, typically pointing at MinIO in
// development.
type Config struct {
	RootUser     string
	RootPassword string
	Bucket       string
	Region       string
	BaseEndpoint string
}

// objectPutter is the slice of the S3 API the archive needs; a seam for tests.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// AvatarArchive stores avatar payloads under per-user, per-day keys.
type AvatarArchive struct {
	client objectPutter
	bucket string
}

// NewAvatarArchive builds the S3 client from static credentials and a custom
// endpoint.
func NewAvatarArchive(ctx context.Context, c Config) (*AvatarArchive, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(c.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			c.RootUser, c.RootPassword, "",
		)))
	if err != nil {
		return nil, fmt.Errorf("s3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(c.BaseEndpoint)
		o.UsePathStyle = true
	})

	return &AvatarArchive{client: client, bucket: c.Bucket}, nil
}

func storageKey(userID string) string {
	d := time.Now()
	return fmt.Sprintf("avatars/%s/%d/%d/%d/%v", userID, d.Year(), d.Month(), d.Day(), uuid.New())
}

// Store writes one avatar payload (the data URL string) and returns the
// object key.
func (a *AvatarArchive) Store(ctx context.Context, userID, dataURL string) (string, error) {
	key := storageKey(userID)

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(dataURL),
		ContentType: aws.String("text/plain"),
	})
	if err != nil {
		return "", fmt.Errorf("archive avatar: %w", err)
	}
	return key, nil
}
