// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

// Package blob provides managed access to S3-compatible object storage.
//
// # Architecture
//
// This package belongs to the Infrastructure layer. It hides every
// aws-sdk-go-v2 detail behind a small Store interface so upload and
// export services can be tested against in-memory fakes.
//
// The client works against AWS S3 proper as well as S3-compatible
// providers (Cloudflare R2, MinIO) by honoring a custom endpoint with
// path-style addressing.
package blob

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// # Interfaces

// Store abstracts object storage operations needed by the application.
type Store interface {
	// Put uploads an object under the given key with the given content type.
	Put(ctx context.Context, key string, contentType string, body io.Reader) error

	// Delete removes a single object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// DeleteBatch removes up to 1000 objects in one call and returns the
	// keys that could not be deleted.
	DeleteBatch(ctx context.Context, keys []string) ([]string, error)

	// PublicURL returns the public HTTP URL for a stored key.
	PublicURL(key string) string
}

// # Implementation

// Options configures the S3 client.
type Options struct {
	Bucket        string
	Region        string
	AccessKey     string
	SecretKey     string
	Endpoint      string // empty for AWS S3 proper
	PublicBaseURL string // base for public object URLs, e.g. https://cdn.example.com
}

// Client is an S3-backed Store.
type Client struct {
	s3            *s3.Client
	bucket        string
	publicBaseURL string
}

// Client implements Store.
var _ Store = (*Client)(nil)

/*
NewClient creates an S3 client from static credentials.

When opts.Endpoint is set, the client targets an S3-compatible provider
using path-style addressing (required by MinIO, harmless for R2).

# Parameters
  - ctx: Context used while loading the default AWS configuration.
  - opts: Bucket, credentials and endpoint settings.

# Returns
  - *Client: The managed storage client.
  - error: Configuration failure.
*/
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("blob: bucket is required")
	}
	if opts.PublicBaseURL == "" {
		return nil, fmt.Errorf("blob: public base URL is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(opts.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("blob: failed to load aws config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Client{
		s3:            s3Client,
		bucket:        opts.Bucket,
		publicBaseURL: strings.TrimRight(opts.PublicBaseURL, "/"),
	}, nil
}

// Put uploads an object.
func (client *Client) Put(ctx context.Context, key string, contentType string, body io.Reader) error {
	_, err := client.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(client.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("blob: put %q: %w", key, err)
	}
	return nil
}

// Delete removes a single object.
func (client *Client) Delete(ctx context.Context, key string) error {
	_, err := client.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(client.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("blob: delete %q: %w", key, err)
	}
	return nil
}

// DeleteBatch removes multiple objects in one request. S3 caps a single
// DeleteObjects call at 1000 keys, which is far beyond what a post or
// project references.
func (client *Client) DeleteBatch(ctx context.Context, keys []string) ([]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	objects := make([]types.ObjectIdentifier, 0, len(keys))
	for _, key := range keys {
		objects = append(objects, types.ObjectIdentifier{Key: aws.String(key)})
	}

	output, err := client.s3.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(client.bucket),
		Delete: &types.Delete{
			Objects: objects,
			Quiet:   aws.Bool(true),
		},
	})
	if err != nil {
		return keys, fmt.Errorf("blob: delete batch: %w", err)
	}

	var failed []string
	for _, e := range output.Errors {
		if e.Key != nil {
			failed = append(failed, *e.Key)
		}
	}
	return failed, nil
}

// PublicURL joins the public base URL with the object key.
func (client *Client) PublicURL(key string) string {
	return client.publicBaseURL + "/" + strings.TrimLeft(key, "/")
}
