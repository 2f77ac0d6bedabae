package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"studymate/resume-analyzer/internal/config"
	"studymate/resume-analyzer/internal/models"
)

// ObjectPutter is the subset of the S3 client the archive needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ResumeArchive keeps the raw uploaded bytes of persisted resumes.
type ResumeArchive interface {
	Enabled() bool
	Store(ctx context.Context, userID string, doc *models.UploadedDocument) (string, error)
}

type s3Archive struct {
	client ObjectPutter
	bucket string
}

type disabledArchive struct{}

// NewResumeArchive connects to an S3 compatible store (R2, MinIO, AWS) when
// the archive is configured, and returns a no-op archive otherwise.
func NewResumeArchive(ctx context.Context, cfg config.ArchiveConfig) (ResumeArchive, error) {
	if !cfg.Enabled() {
		log.Info("ℹ️  Upload archive not configured")
		return disabledArchive{}, nil
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load archive config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Infof("✅ Upload archive ready (bucket %s)", cfg.Bucket)
	return NewS3Archive(client, cfg.Bucket), nil
}

func NewS3Archive(client ObjectPutter, bucket string) ResumeArchive {
	return &s3Archive{
		client: client,
		bucket: bucket,
	}
}

func (a *s3Archive) Enabled() bool { return true }

// Store uploads the document under resumes/<user_id>/<uuid><ext> and returns
// the object key.
func (a *s3Archive) Store(ctx context.Context, userID string, doc *models.UploadedDocument) (string, error) {
	key := ArchiveKey(userID, uuid.New(), doc.Extension())

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(doc.Content),
		ContentType:   aws.String(doc.MediaType),
		ContentLength: aws.Int64(doc.Size()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload resume to archive: %w", err)
	}

	return key, nil
}

func ArchiveKey(userID string, id uuid.UUID, ext string) string {
	return fmt.Sprintf("resumes/%s/%s%s", userID, id.String(), ext)
}

func (disabledArchive) Enabled() bool { return false }

func (disabledArchive) Store(context.Context, string, *models.UploadedDocument) (string, error) {
	return "", nil
}
