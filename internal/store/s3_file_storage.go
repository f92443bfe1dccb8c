// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/MKhiriev/go-doc-portal/internal/config"
	"github.com/MKhiriev/go-doc-portal/internal/logger"
	"github.com/MKhiriev/go-doc-portal/models"
)

const defaultS3Region = "us-east-1"

// s3FileStorage keeps portal files in an S3-compatible bucket under the key
// <linkID>/<name>.
type s3FileStorage struct {
	client *s3.Client
	bucket string
	logger *logger.Logger
}

// NewS3FileStorage builds an S3 client from cfg and returns a [FileStorage]
// on cfg.Bucket. Static credentials are used when an access key is set;
// otherwise the default AWS credential chain applies.
func NewS3FileStorage(ctx context.Context, cfg config.S3, log *logger.Logger) (FileStorage, error) {
	region := cfg.Region
	if region == "" {
		region = defaultS3Region
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3FileStorage").Msg("error loading AWS config")
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
		// MinIO and most S3 clones reject the SDK's default streaming checksums.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	return newS3FileStorage(client, cfg.Bucket, log), nil
}

func newS3FileStorage(client *s3.Client, bucket string, log *logger.Logger) *s3FileStorage {
	return &s3FileStorage{client: client, bucket: bucket, logger: log}
}

func (s *s3FileStorage) List(ctx context.Context, linkID string) ([]models.PortalFile, error) {
	if err := validateObjectName(linkID); err != nil {
		return nil, err
	}

	prefix := linkID + "/"
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})

	files := []models.PortalFile{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "s3FileStorage.List").Str("link_id", linkID).Msg("error listing objects")
			return nil, fmt.Errorf("error listing objects: %w", err)
		}
		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), prefix)
			if name == "" || strings.Contains(name, "/") {
				continue
			}
			files = append(files, models.PortalFile{
				Name:       name,
				Size:       aws.ToInt64(obj.Size),
				UploadedAt: aws.ToTime(obj.LastModified).UTC(),
			})
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	return files, nil
}

func (s *s3FileStorage) Save(ctx context.Context, linkID, name string, size int64, r io.Reader) (models.PortalFile, error) {
	if err := validateObjectName(linkID); err != nil {
		return models.PortalFile{}, err
	}
	if err := validateObjectName(name); err != nil {
		return models.PortalFile{}, err
	}

	// PutObject needs a known length; buffer bodies that cannot seek.
	body, ok := r.(io.ReadSeeker)
	if !ok || size < 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return models.PortalFile{}, fmt.Errorf("error reading upload: %w", err)
		}
		body = bytes.NewReader(data)
		size = int64(len(data))
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(objectKey(linkID, name)),
		Body:          body,
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "s3FileStorage.Save").Str("link_id", linkID).Msg("error uploading object")
		return models.PortalFile{}, fmt.Errorf("error uploading object: %w", err)
	}

	return models.PortalFile{Name: name, Size: size, UploadedAt: time.Now().UTC()}, nil
}

func (s *s3FileStorage) Open(ctx context.Context, linkID, name string) (io.ReadCloser, models.PortalFile, error) {
	if err := validateObjectName(linkID); err != nil {
		return nil, models.PortalFile{}, err
	}
	if err := validateObjectName(name); err != nil {
		return nil, models.PortalFile{}, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey(linkID, name)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, models.PortalFile{}, ErrFileNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "s3FileStorage.Open").Str("link_id", linkID).Msg("error downloading object")
		return nil, models.PortalFile{}, fmt.Errorf("error downloading object: %w", err)
	}

	return out.Body, models.PortalFile{
		Name:       name,
		Size:       aws.ToInt64(out.ContentLength),
		UploadedAt: aws.ToTime(out.LastModified).UTC(),
	}, nil
}

func objectKey(linkID, name string) string {
	return path.Join(linkID, name)
}
