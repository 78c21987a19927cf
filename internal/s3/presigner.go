package s3

import (
	"context"
	"fmt"
	"time"

	"logicore-tms-api-server/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// proofURLTTL bounds how long a presigned proof-image link stays valid.
const proofURLTTL = 15 * time.Minute

// Presigner resolves stored object keys (settlement proof images) into URLs a
// browser can fetch. Reads only; nothing here uploads.
type Presigner struct {
	client           *s3.PresignClient
	Bucket           string
	Region           string
	CloudFrontDomain string
}

func NewPresigner(cfg config.S3Config) (*Presigner, error) {
	sdkConfig, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(sdkConfig)

	return &Presigner{
		client:           s3.NewPresignClient(s3Client),
		Bucket:           cfg.Bucket,
		Region:           cfg.Region,
		CloudFrontDomain: cfg.CloudFrontDomain,
	}, nil
}

// ResolveURL turns an object key into a fetchable URL. With a CloudFront
// domain configured the URL is served through it; otherwise a presigned
// S3 GET is issued.
func (p *Presigner) ResolveURL(ctx context.Context, objectKey string) (string, error) {
	if p.CloudFrontDomain != "" {
		return fmt.Sprintf("https://%s/%s", p.CloudFrontDomain, objectKey), nil
	}

	req, err := p.client.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.Bucket),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(proofURLTTL))
	if err != nil {
		return "", fmt.Errorf("failed to presign object %q: %w", objectKey, err)
	}

	return req.URL, nil
}
