// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"fmt"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/applicationinsights"
	"github.com/aws/aws-sdk-go-v2/service/health"
	"github.com/aws/aws-sdk-go-v2/service/managedblockchainquery"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/timestreamquery"
)

// HealthRegion is where the AWS Health global endpoint lives.
const HealthRegion = "us-east-1"

// options holds optional overrides for AWS config loading.
type options struct {
	profile     string
	region      string
	maxAttempts int
	retryer     func() awsv2.Retryer
}

// Option customizes how AWS config is loaded.
// Default behavior (no options) inherits the shell environment and shared
// config chain (AWS_PROFILE, ~/.aws/config, ~/.aws/credentials, IMDS, etc.).
type Option func(*options)

// WithProfile sets the shared config profile. Defaults to AWS_PROFILE/env chain.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override. Defaults to env/profile/metadata chain.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithMaxAttempts overrides the SDK retryer's attempt budget. Retries are the
// SDK's business; pagination never retries a page itself.
func WithMaxAttempts(n int) Option {
	return func(o *options) { o.maxAttempts = n }
}

// WithRetryer injects a custom retryer; if not set, SDK defaults are used.
func WithRetryer(newRetryer func() awsv2.Retryer) Option {
	return func(o *options) { o.retryer = newRetryer }
}

// RetryModes are the names accepted by NewRetryer.
var RetryModes = []string{"standard", "adaptive"}

// NewRetryer returns a retryer constructor for the named SDK retry mode.
// Adaptive mode adds client-side rate limiting on throttling errors.
func NewRetryer(mode string) (func() awsv2.Retryer, error) {
	switch strings.ToLower(mode) {
	case "standard":
		return func() awsv2.Retryer { return retry.NewStandard() }, nil
	case "adaptive":
		return func() awsv2.Retryer { return retry.NewAdaptiveMode() }, nil
	default:
		return nil, fmt.Errorf("unknown retry mode %q, must be one of %v", mode, RetryModes)
	}
}

// LoadAWSConfig loads AWS SDK v2 config. By default it inherits the shell's
// AWS setup (AWS_PROFILE, shared config, env, IMDS). Options can override
// profile, region, and retry behavior without changing callers.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.retryer != nil {
		loadOpts = append(loadOpts, config.WithRetryer(o.retryer))
	}
	if o.maxAttempts > 0 {
		loadOpts = append(loadOpts, config.WithRetryMaxAttempts(o.maxAttempts))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// NewHealth constructs an AWS Health client. The Health API is only served
// from its global endpoint region, which is used when none resolved.
func NewHealth(cfg awsv2.Config, optFns ...func(*health.Options)) *health.Client {
	if cfg.Region == "" {
		cfg.Region = HealthRegion
	}
	return health.NewFromConfig(cfg, optFns...)
}

// NewApplicationInsights constructs an Application Insights client.
func NewApplicationInsights(cfg awsv2.Config, optFns ...func(*applicationinsights.Options)) *applicationinsights.Client {
	return applicationinsights.NewFromConfig(cfg, optFns...)
}

// NewBlockchainQuery constructs a Managed Blockchain Query client.
func NewBlockchainQuery(cfg awsv2.Config, optFns ...func(*managedblockchainquery.Options)) *managedblockchainquery.Client {
	return managedblockchainquery.NewFromConfig(cfg, optFns...)
}

// NewTimestreamQuery constructs a Timestream Query client. Endpoint discovery
// is handled by the SDK.
func NewTimestreamQuery(cfg awsv2.Config, optFns ...func(*timestreamquery.Options)) *timestreamquery.Client {
	return timestreamquery.NewFromConfig(cfg, optFns...)
}

// NewS3 constructs a v2 S3 client from the provided config. Additional service
// options can be supplied via optFns.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	return s3v2.NewFromConfig(cfg, optFns...)
}

// WithS3Endpoint points the S3 client at an S3-compatible store. Path-style
// addressing is enabled since most of those stores (MinIO and similar) do not
// serve virtual-hosted buckets.
func WithS3Endpoint(endpoint string) func(*s3v2.Options) {
	return func(o *s3v2.Options) {
		if endpoint == "" {
			return
		}
		o.BaseEndpoint = awsv2.String(endpoint)
		o.UsePathStyle = true
	}
}
