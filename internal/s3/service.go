package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/kethil/tempursarihubstore-sub000/internal/config"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
)

const defaultPresignExpiryDuration = 30 * time.Minute

// Service stores request attachments and product images. When storage
// is disabled in config the constructor returns nil and callers must
// treat document operations as unavailable.
type Service interface {
	Upload(ctx context.Context, object *Object) error
	GetPresignedUrl(ctx context.Context, path string) (string, error)
	PublicURL(path string) string
	Exists(ctx context.Context, path string) (bool, error)
}

type s3ServiceImpl struct {
	client *s3.Client
	config *config.StorageConfig
}

func NewService(cfg *config.Configuration) (Service, error) {
	if !cfg.Storage.Enabled {
		return nil, nil
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithRegion(cfg.Storage.Region),
	)
	if err != nil {
		return nil, ierr.WithError(err).WithHint("failed to load aws config").
			Mark(ierr.ErrHTTPClient)
	}

	return &s3ServiceImpl{
		config: &cfg.Storage,
		client: s3.NewFromConfig(awsCfg),
	}, nil
}

func (s *s3ServiceImpl) objectKey(path string) string {
	path = strings.TrimPrefix(path, "/")
	if s.config.KeyPrefix != "" {
		return fmt.Sprintf("%s/%s", s.config.KeyPrefix, path)
	}
	return path
}

func (s *s3ServiceImpl) Upload(ctx context.Context, object *Object) error {
	contentType := object.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.Bucket),
		Key:         aws.String(s.objectKey(object.Path)),
		Body:        bytes.NewReader(object.Data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return ierr.WithError(err).WithHint("failed to upload object").
			WithMessage(fmt.Sprintf("bucket:%s, key:%s", s.config.Bucket, s.objectKey(object.Path))).
			Mark(ierr.ErrHTTPClient)
	}

	return nil
}

func (s *s3ServiceImpl) GetPresignedUrl(ctx context.Context, path string) (string, error) {
	presigner := s3.NewPresignClient(s.client)
	result, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(s.objectKey(path)),
	}, s3.WithPresignExpires(defaultPresignExpiryDuration))
	if err != nil {
		return "", ierr.WithError(err).WithHint("failed to get presigned url").
			WithMessage(fmt.Sprintf("bucket:%s, key:%s", s.config.Bucket, s.objectKey(path))).
			Mark(ierr.ErrHTTPClient)
	}

	return result.URL, nil
}

// PublicURL builds the stable browsing URL for objects served from a
// public bucket or CDN in front of it.
func (s *s3ServiceImpl) PublicURL(path string) string {
	base := strings.TrimSuffix(s.config.PublicBaseURL, "/")
	if base == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s", base, s.objectKey(path))
}

func (s *s3ServiceImpl) Exists(ctx context.Context, path string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(s.objectKey(path)),
	})
	if err != nil {
		var nsk *s3types.NoSuchKey
		var nf *s3types.NotFound
		if errors.As(err, &nsk) || errors.As(err, &nf) {
			return false, nil
		}
		return false, ierr.WithError(err).WithHint("failed to check object").
			Mark(ierr.ErrHTTPClient)
	}

	return true, nil
}
