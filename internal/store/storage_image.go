package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
)

// ErrInvalidImageKey is returned for keys that are absolute or escape the
// storage root.
var ErrInvalidImageKey = errors.New("invalid image key")

var loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

// NewImageStorage builds the [ImageStorage] selected by cfg.Backend.
func NewImageStorage(ctx context.Context, cfg config.Images, log *logger.Logger) (ImageStorage, error) {
	switch cfg.Backend {
	case config.ImagesBackendS3:
		return NewS3ImageStorage(ctx, cfg.S3, log)
	default:
		return NewLocalImageStorage(cfg.MediaRoot, log), nil
	}
}

// localImageStorage keeps images as files below root. The key doubles as
// the path relative to root.
type localImageStorage struct {
	root   string
	logger *logger.Logger
}

// NewLocalImageStorage returns an [ImageStorage] writing under root.
func NewLocalImageStorage(root string, log *logger.Logger) ImageStorage {
	return &localImageStorage{root: root, logger: log}
}

func (s *localImageStorage) Save(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localImageStorage.Save").Msg("error creating image directory")
		return fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	if err = os.WriteFile(target, data, 0o644); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localImageStorage.Save").Msg("error writing image")
		return fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	return nil
}

// Delete removes the file. A missing file is not an error.
func (s *localImageStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err = os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "*localImageStorage.Delete").Msg("error removing image")
		return fmt.Errorf("%w: %w", ErrDeletingImage, err)
	}

	return nil
}

func (s *localImageStorage) resolve(key string) (string, error) {
	if !validKey(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidImageKey, key)
	}
	return filepath.Join(s.root, filepath.FromSlash(key)), nil
}

// s3API is the subset of the S3 client used by [s3ImageStorage].
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3ImageStorage keeps images as objects of a single bucket, keyed by the
// image path.
type s3ImageStorage struct {
	client s3API
	bucket string
	logger *logger.Logger
}

// NewS3ImageStorage builds an S3 client from the default AWS configuration
// chain, overridden by the static credentials and endpoint in cfg when set.
func NewS3ImageStorage(ctx context.Context, cfg config.S3, log *logger.Logger) (ImageStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3ImageStorage").Msg("error loading AWS config")
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return newS3ImageStorage(client, cfg.Bucket, log), nil
}

func newS3ImageStorage(client s3API, bucket string, log *logger.Logger) *s3ImageStorage {
	return &s3ImageStorage{client: client, bucket: bucket, logger: log}
}

func (s *s3ImageStorage) Save(ctx context.Context, key string, data []byte) error {
	if !validKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidImageKey, key)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(http.DetectContentType(data)),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3ImageStorage.Save").Str("key", key).Msg("error putting object")
		return fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	return nil
}

func (s *s3ImageStorage) Delete(ctx context.Context, key string) error {
	if !validKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidImageKey, key)
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3ImageStorage.Delete").Str("key", key).Msg("error deleting object")
		return fmt.Errorf("%w: %w", ErrDeletingImage, err)
	}

	return nil
}

// validKey accepts relative slash-separated keys that stay inside the root.
func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, `\`) {
		return false
	}
	cleaned := path.Clean(key)
	return cleaned == key && cleaned != "." && !strings.HasPrefix(cleaned, "../") && cleaned != ".."
}
