package publish

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/toastui/internal/config"
	"github.com/vango-dev/toastui/internal/errors"
)

// ObjectPutter is the part of *s3.Client the publisher uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// EnvCredentials reads static credentials from the standard AWS variables.
func EnvCredentials(getenv func(string) string) aws.CredentialsProvider {
	if getenv == nil {
		getenv = os.Getenv
	}
	return aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
		creds := aws.Credentials{
			AccessKeyID:     getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: getenv("AWS_SECRET_ACCESS_KEY"),
			SessionToken:    getenv("AWS_SESSION_TOKEN"),
			Source:          "EnvCredentials",
		}
		if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
			return aws.Credentials{}, errors.New("E141").
				WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
		}
		return creds, nil
	})
}

// NewS3Client builds an S3 client for cfg. A custom endpoint switches to
// path-style addressing, which most S3 compatible stores expect.
func NewS3Client(cfg config.PublishConfig, creds aws.CredentialsProvider) (*s3.Client, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("E141").
			WithSuggestion("Set publish.bucket in " + config.ConfigFileName + " or pass --bucket")
	}
	if creds == nil {
		creds = EnvCredentials(nil)
	}

	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: aws.NewCredentialsCache(creds),
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
