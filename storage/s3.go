package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mgrandjean/portfolio-backend/config"
	"github.com/mgrandjean/portfolio-backend/errs"
)

// UploadResult describes a blob freshly written to the object store.
type UploadResult struct {
	URL        string
	StoredName string
	Size       int64
}

// ObjectStore is the narrow object-storage contract the media catalog
// consumes: store a blob, delete it by its public URL, or sign a
// time-limited read URL.
type ObjectStore interface {
	Upload(ctx context.Context, data []byte, fileName, mimeType, folder string) (UploadResult, error)
	DeleteByURL(ctx context.Context, url string) error
	SignedURL(ctx context.Context, fileName, folder string, expiresIn time.Duration) (string, error)
}

// S3Store adapts uploads, deletions and URL signing to an S3 bucket.
type S3Store struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	region    string
	logger    zerolog.Logger
}

var _ ObjectStore = (*S3Store)(nil)

// NewS3Store builds an S3-backed object store from AWS_REGION and
// S3_BUCKET_NAME. Credentials are resolved through the SDK's default chain.
func NewS3Store(ctx context.Context) (*S3Store, error) {
	c := config.New()
	region := config.GetString(c, "AWS_REGION", "eu-west-3")
	bucket := config.GetString(c, "S3_BUCKET_NAME", "")
	if bucket == "" {
		return nil, errs.NewInternalError("S3_BUCKET_NAME is not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to load AWS configuration", err)
	}

	client := s3.NewFromConfig(awsCfg)
	logger := log.With().Str("component", "s3Store").Logger()
	logger.Info().Str("bucket", bucket).Str("region", region).Msg("S3 store initialized")

	return &S3Store{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
		region:    region,
		logger:    logger,
	}, nil
}

// Upload writes the blob under folder/fileName and returns its public URL.
func (s *S3Store) Upload(ctx context.Context, data []byte, fileName, mimeType, folder string) (UploadResult, error) {
	key := s.objectKey(fileName, folder)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &mimeType,
		Metadata: map[string]string{
			"original-name": fileName,
			"uploaded-at":   time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to upload object")
		return UploadResult{}, errs.NewStorageError("upload", key, err)
	}

	s.logger.Info().Str("key", key).Int("size", len(data)).Msg("object uploaded")

	return UploadResult{
		URL:        s.FileURL(fileName, folder),
		StoredName: key,
		Size:       int64(len(data)),
	}, nil
}

// DeleteByURL removes the object a public bucket URL points at.
func (s *S3Store) DeleteByURL(ctx context.Context, url string) error {
	key, err := s.keyFromURL(url)
	if err != nil {
		return err
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to delete object")
		return errs.NewStorageError("delete", key, err)
	}

	s.logger.Info().Str("key", key).Msg("object deleted")
	return nil
}

// SignedURL returns a presigned GET URL valid for expiresIn.
func (s *S3Store) SignedURL(ctx context.Context, fileName, folder string, expiresIn time.Duration) (string, error) {
	key := s.objectKey(fileName, folder)

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(expiresIn))
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to presign object URL")
		return "", errs.NewSignedURLError(key, err)
	}

	return req.URL, nil
}

// FileURL returns the public URL of an object without touching the store.
func (s *S3Store) FileURL(fileName, folder string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, s.objectKey(fileName, folder))
}

func (s *S3Store) objectKey(fileName, folder string) string {
	if folder == "" {
		return fileName
	}
	return folder + "/" + fileName
}

func (s *S3Store) keyFromURL(url string) (string, error) {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.bucket, s.region)
	if !strings.HasPrefix(url, prefix) || len(url) == len(prefix) {
		return "", errs.NewInvalidBlobURLError(url)
	}
	return strings.TrimPrefix(url, prefix), nil
}
