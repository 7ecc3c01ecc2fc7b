package awsadapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"forgescan/report-importer/internal/model"
)

type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Archive writes raw events to S3 with KMS server-side encryption.
type Archive struct {
	client s3API
}

func NewArchive(cfg aws.Config) *Archive {
	return &Archive{client: s3.NewFromConfig(cfg)}
}

func (a *Archive) Put(ctx context.Context, obj model.ArchiveObject) (string, error) {
	in := &s3.PutObjectInput{
		Bucket:      aws.String(obj.Bucket),
		Key:         aws.String(obj.Key),
		Body:        bytes.NewReader(obj.Body),
		ContentType: aws.String("application/json"),
	}
	if obj.Encrypt {
		in.ServerSideEncryption = s3types.ServerSideEncryptionAwsKms
	}
	if _, err := a.client.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", obj.Bucket, obj.Key, err)
	}
	return ConsoleURL(obj), nil
}

func ConsoleURL(obj model.ArchiveObject) string {
	return fmt.Sprintf("https://s3.console.aws.amazon.com/s3/object/%s/%s?region=%s",
		obj.Bucket, obj.Key, url.QueryEscape(obj.Region))
}
