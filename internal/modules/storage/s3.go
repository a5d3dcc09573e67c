package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	appcfg "github.com/yaritu/core/internal/config"
)

// s3Storage stores objects in an S3 bucket. The public URL is built
// deterministically from bucket, region and key (or a custom domain).
type s3Storage struct {
	client       *s3.Client
	bucket       string
	region       string
	customDomain string
}

func newS3Storage(opts appcfg.S3Config) (*s3Storage, error) {
	bucket := strings.TrimSpace(opts.Bucket)
	region := strings.TrimSpace(opts.Region)
	if bucket == "" || region == "" || opts.AccessKeyID == "" || opts.SecretAccessKey == "" {
		return nil, fmt.Errorf("incomplete s3 config: bucket/region/access_key_id/secret_access_key are required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &s3Storage{
		client:       s3.NewFromConfig(awsCfg),
		bucket:       bucket,
		region:       region,
		customDomain: strings.TrimRight(strings.TrimSpace(opts.CustomDomain), "/"),
	}, nil
}

func (s *s3Storage) Provider() string { return "s3" }

func (s *s3Storage) Put(ctx context.Context, obj Object) (string, error) {
	key := objectKey(obj.Folder, obj.Filename)
	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        obj.Body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put object: %w", err)
	}
	return s.publicURL(key), nil
}

func (s *s3Storage) publicURL(key string) string {
	encoded := encodeObjectKey(key)
	if s.customDomain != "" {
		return s.customDomain + "/" + encoded
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, encoded)
}

func encodeObjectKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
