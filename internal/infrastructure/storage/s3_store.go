package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/fcamara/consultores-api/internal/domain/ports"
	"github.com/fcamara/consultores-api/internal/domain/valueobjects"
	"github.com/fcamara/consultores-api/internal/infrastructure/config"
)

// S3API é o subconjunto do cliente S3 usado pelo store
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store grava avatares em um bucket S3 compatível (AWS, Backblaze B2, MinIO)
type S3Store struct {
	client        S3API
	bucket        string
	publicBaseURL string
}

var _ ports.AvatarStorage = (*S3Store)(nil)

// NewS3Client monta o cliente S3 a partir da configuração
func NewS3Client(ctx context.Context, cfg *config.StorageConfig) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}

// NewS3Store cria um novo S3Store
func NewS3Store(client S3API, bucket, publicBaseURL string) *S3Store {
	return &S3Store{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *S3Store) Upload(ctx context.Context, key valueobjects.AvatarKey, data []byte, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key.String()),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to put object %s: %w", key, err)
	}

	return s.publicBaseURL + "/" + key.String(), nil
}

// Delete remove o objeto; o S3 não falha para chaves inexistentes
func (s *S3Store) Delete(ctx context.Context, key valueobjects.AvatarKey) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key.String()),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

// KeyFromURL remove a URL pública da chave; URLs no estilo path
// (host/bucket/chave) também têm o bucket removido
func (s *S3Store) KeyFromURL(rawURL string) (valueobjects.AvatarKey, error) {
	key, err := valueobjects.AvatarKeyFromURL(s.publicBaseURL, rawURL)
	if err != nil {
		return "", err
	}

	trimmed := strings.TrimPrefix(key.String(), s.bucket+"/")
	if trimmed == "" {
		return "", valueobjects.ErrInvalidAvatarURL
	}
	return valueobjects.AvatarKey(trimmed), nil
}
