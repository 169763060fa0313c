// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli/v3"

	awsx "github.com/staranto/awsqgo/internal/aws"
)

// Client factories. Tests swap these for fakes.
var (
	loadAWSConfig = awsx.LoadAWSConfig

	newHealthClient = func(cfg aws.Config) awsx.HealthAPI {
		return awsx.NewHealth(cfg)
	}
	newAppInsightsClient = func(cfg aws.Config) awsx.ApplicationInsightsAPI {
		return awsx.NewApplicationInsights(cfg)
	}
	newBlockchainQueryClient = func(cfg aws.Config) awsx.BlockchainQueryAPI {
		return awsx.NewBlockchainQuery(cfg)
	}
	newTimestreamQueryClient = func(cfg aws.Config) awsx.TimestreamQueryAPI {
		return awsx.NewTimestreamQuery(cfg)
	}
	newS3Client = func(cfg aws.Config, endpoint string) awsx.S3ListAPI {
		return awsx.NewS3(cfg, awsx.WithS3Endpoint(endpoint))
	}
)

// LoadAWSConfig resolves the SDK config from --profile, --region,
// --max-attempts and --retry-mode, falling back to the shell's AWS
// environment.
func LoadAWSConfig(ctx context.Context, cmd *cli.Command) (aws.Config, error) {
	var opts []awsx.Option
	if p := cmd.String("profile"); p != "" {
		opts = append(opts, awsx.WithProfile(p))
	}
	if r := cmd.String("region"); r != "" {
		opts = append(opts, awsx.WithRegion(r))
	}
	if n := cmd.Int("max-attempts"); n > 0 {
		opts = append(opts, awsx.WithMaxAttempts(n))
	}
	if m := cmd.String("retry-mode"); m != "" {
		newRetryer, err := awsx.NewRetryer(m)
		if err != nil {
			return aws.Config{}, err
		}
		opts = append(opts, awsx.WithRetryer(newRetryer))
	}
	return loadAWSConfig(ctx, opts...)
}
