// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/applicationinsights"
	"github.com/aws/aws-sdk-go-v2/service/health"
	"github.com/aws/aws-sdk-go-v2/service/managedblockchainquery"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/timestreamquery"
)

// HealthAPI is the subset of the AWS Health client used by awsq.
type HealthAPI interface {
	DescribeEvents(ctx context.Context, params *health.DescribeEventsInput, optFns ...func(*health.Options)) (*health.DescribeEventsOutput, error)
	DescribeAffectedEntities(ctx context.Context, params *health.DescribeAffectedEntitiesInput, optFns ...func(*health.Options)) (*health.DescribeAffectedEntitiesOutput, error)
	DescribeEventTypes(ctx context.Context, params *health.DescribeEventTypesInput, optFns ...func(*health.Options)) (*health.DescribeEventTypesOutput, error)
}

// ApplicationInsightsAPI is the subset of the Application Insights client
// used by awsq.
type ApplicationInsightsAPI interface {
	ListApplications(ctx context.Context, params *applicationinsights.ListApplicationsInput, optFns ...func(*applicationinsights.Options)) (*applicationinsights.ListApplicationsOutput, error)
	ListProblems(ctx context.Context, params *applicationinsights.ListProblemsInput, optFns ...func(*applicationinsights.Options)) (*applicationinsights.ListProblemsOutput, error)
	ListComponents(ctx context.Context, params *applicationinsights.ListComponentsInput, optFns ...func(*applicationinsights.Options)) (*applicationinsights.ListComponentsOutput, error)
}

// BlockchainQueryAPI is the subset of the Managed Blockchain Query client
// used by awsq.
type BlockchainQueryAPI interface {
	ListTransactions(ctx context.Context, params *managedblockchainquery.ListTransactionsInput, optFns ...func(*managedblockchainquery.Options)) (*managedblockchainquery.ListTransactionsOutput, error)
	ListTokenBalances(ctx context.Context, params *managedblockchainquery.ListTokenBalancesInput, optFns ...func(*managedblockchainquery.Options)) (*managedblockchainquery.ListTokenBalancesOutput, error)
	ListAssetContracts(ctx context.Context, params *managedblockchainquery.ListAssetContractsInput, optFns ...func(*managedblockchainquery.Options)) (*managedblockchainquery.ListAssetContractsOutput, error)
}

// TimestreamQueryAPI is the subset of the Timestream Query client used by
// awsq.
type TimestreamQueryAPI interface {
	Query(ctx context.Context, params *timestreamquery.QueryInput, optFns ...func(*timestreamquery.Options)) (*timestreamquery.QueryOutput, error)
	ListScheduledQueries(ctx context.Context, params *timestreamquery.ListScheduledQueriesInput, optFns ...func(*timestreamquery.Options)) (*timestreamquery.ListScheduledQueriesOutput, error)
	ListTagsForResource(ctx context.Context, params *timestreamquery.ListTagsForResourceInput, optFns ...func(*timestreamquery.Options)) (*timestreamquery.ListTagsForResourceOutput, error)
}

// S3ListAPI is the subset of the S3 client used by awsq.
type S3ListAPI interface {
	ListObjectsV2(ctx context.Context, params *s3v2.ListObjectsV2Input, optFns ...func(*s3v2.Options)) (*s3v2.ListObjectsV2Output, error)
}

// Compile-time checks that the SDK clients satisfy the interfaces.
var (
	_ HealthAPI              = (*health.Client)(nil)
	_ ApplicationInsightsAPI = (*applicationinsights.Client)(nil)
	_ BlockchainQueryAPI     = (*managedblockchainquery.Client)(nil)
	_ TimestreamQueryAPI     = (*timestreamquery.Client)(nil)
	_ S3ListAPI              = (*s3v2.Client)(nil)
)
