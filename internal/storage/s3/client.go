package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"design-service/internal/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

const (
	emptyAWSSessionToken = ""
	defaultS3Region      = "us-east-1"

	errFailedCreateAWSSessionFmt  = "failed to create AWS session: %w"
	errFailedUploadObjectFmt      = "failed to upload object: %w"
	errFailedDownloadObjectFmt    = "failed to download object: %w"
	errFailedReadObjectBodyFmt    = "failed to read object body: %w"
	errFailedGeneratePresignedFmt = "failed to generate presigned download URL: %w"
	errFailedDeleteObjectFmt      = "failed to delete object: %w"
	errFailedCreateBucketFmt      = "failed to create bucket: %w"
	errFailedWaitBucketExistsFmt  = "failed to wait for bucket to exist: %w"
	errFailedDeleteBucketFmt      = "failed to delete bucket: %w"
)

type Client struct {
	svc                *s3.S3
	presignedURLExpiry time.Duration
}

func NewClient(cfg *config.AWSConfig, presignedURLExpiry time.Duration) (*Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			emptyAWSSessionToken,
		),
	})

	if err != nil {
		return nil, fmt.Errorf(errFailedCreateAWSSessionFmt, err)
	}

	return &Client{
		svc:                s3.New(sess),
		presignedURLExpiry: presignedURLExpiry,
	}, nil
}

func (c *Client) UploadObject(ctx context.Context, bucketName, objectKey string, data []byte, contentType string) error {
	_, err := c.svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucketName),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})

	if err != nil {
		return fmt.Errorf(errFailedUploadObjectFmt, err)
	}

	return nil
}

func (c *Client) DownloadObject(ctx context.Context, bucketName, objectKey string) ([]byte, error) {
	result, err := c.svc.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectKey),
	})

	if err != nil {
		return nil, fmt.Errorf(errFailedDownloadObjectFmt, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf(errFailedReadObjectBodyFmt, err)
	}

	return data, nil
}

func (c *Client) GeneratePresignedDownloadURL(ctx context.Context, bucketName, objectKey string) (string, error) {
	req, _ := c.svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectKey),
	})
	req.SetContext(ctx)

	url, err := req.Presign(c.presignedURLExpiry)
	if err != nil {
		return "", fmt.Errorf(errFailedGeneratePresignedFmt, err)
	}

	return url, nil
}

func (c *Client) DeleteObject(ctx context.Context, bucketName, objectKey string) error {
	_, err := c.svc.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectKey),
	})

	if err != nil {
		return fmt.Errorf(errFailedDeleteObjectFmt, err)
	}

	return nil
}

func (c *Client) CreateBucket(ctx context.Context, bucketName, region string) error {
	input := &s3.CreateBucketInput{
		Bucket: aws.String(bucketName),
	}

	if region != defaultS3Region {
		input.CreateBucketConfiguration = &s3.CreateBucketConfiguration{
			LocationConstraint: aws.String(region),
		}
	}

	_, err := c.svc.CreateBucketWithContext(ctx, input)
	if err != nil {
		return fmt.Errorf(errFailedCreateBucketFmt, err)
	}

	if err := c.svc.WaitUntilBucketExistsWithContext(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucketName),
	}); err != nil {
		return fmt.Errorf(errFailedWaitBucketExistsFmt, err)
	}

	return nil
}

func (c *Client) DeleteBucket(ctx context.Context, bucketName string) error {
	_, err := c.svc.DeleteBucketWithContext(ctx, &s3.DeleteBucketInput{
		Bucket: aws.String(bucketName),
	})

	if err != nil {
		return fmt.Errorf(errFailedDeleteBucketFmt, err)
	}

	return nil
}

// BuildObjectKey places image objects under their space prefix.
func BuildObjectKey(spaceID, imageID uuid.UUID, name string) string {
	return fmt.Sprintf("%s/%s/%s", spaceID, imageID, name)
}
