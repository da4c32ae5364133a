package facades

import (
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sbilibin2017/matchrimoney/internal/logger"
)

// S3Config describes the bucket profile pictures are stored in.
type S3Config struct {
	Endpoint  string // Custom endpoint, e.g. MinIO; empty for AWS
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	PublicURL string // Base URL objects are served from; defaults to endpoint/bucket
}

// S3Client is the subset of the S3 API used for pictures.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3PictureStorage stores profile pictures in an S3 compatible bucket.
type S3PictureStorage struct {
	client    S3Client
	bucket    string
	publicURL string
}

// NewS3PictureStorage builds the S3 client from static credentials.
func NewS3PictureStorage(ctx context.Context, cfg S3Config) (*S3PictureStorage, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return newS3PictureStorage(client, cfg.Bucket, publicURL), nil
}

func newS3PictureStorage(client S3Client, bucket, publicURL string) *S3PictureStorage {
	return &S3PictureStorage{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Put uploads the object and returns its public URL.
func (s *S3PictureStorage) Put(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          r,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		logger.Log.Errorw("failed to upload object", "bucket", s.bucket, "key", key, "error", err)
		return "", err
	}
	return s.publicURL + "/" + key, nil
}

// Delete removes the object behind a URL returned by Put. URLs outside the
// bucket are ignored.
func (s *S3PictureStorage) Delete(ctx context.Context, objectURL string) error {
	key, ok := strings.CutPrefix(objectURL, s.publicURL+"/")
	if !ok || key == "" {
		logger.Log.Warnw("object URL outside of bucket, skipping delete", "url", objectURL)
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
