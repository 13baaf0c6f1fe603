package backup

import (
	"bytes"
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	appconfig "github.com/smaranika/core/internal/config"
)

// ObjectInfo describes one stored backup archive.
type ObjectInfo struct {
	Key          string `json:"key"`
	Size         int64  `json:"size"`
	LastModified string `json:"lastModified"`
}

// s3Store uploads and lists backup archives in one bucket under a prefix.
type s3Store struct {
	client *s3.Client
	bucket *string
	prefix string
}

func newS3Store(ctx context.Context, cfg appconfig.BackupConfig) (*s3Store, error) {
	awsConf, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		awsConf.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}
	awsConf.Region = cfg.Region

	client := s3.NewFromConfig(awsConf, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &s3Store{
		client: client,
		bucket: aws.String(cfg.Bucket),
		prefix: cfg.Prefix,
	}, nil
}

func (s *s3Store) put(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      s.bucket,
		Key:         aws.String(s.prefix + key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/zip"),
	})
	return err
}

// latest returns the newest archive under the prefix, or nil when empty.
func (s *s3Store) latest(ctx context.Context) (*ObjectInfo, error) {
	out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: s.bucket,
		Prefix: aws.String(s.prefix),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Contents) == 0 {
		return nil, nil
	}

	objects := out.Contents
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].LastModified.After(*objects[j].LastModified)
	})
	newest := objects[0]
	info := &ObjectInfo{
		Key:          aws.ToString(newest.Key),
		Size:         aws.ToInt64(newest.Size),
		LastModified: newest.LastModified.UTC().Format("2006-01-02T15:04:05Z"),
	}
	return info, nil
}
