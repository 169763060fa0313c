// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package s3objects maps S3 ListObjectsV2 onto a pager operation.
package s3objects

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	awsx "github.com/staranto/awsqgo/internal/aws"
	"github.com/staranto/awsqgo/internal/pager"
)

// ObjectsParams filter ListObjectsV2. Bucket is required.
type ObjectsParams struct {
	Bucket     string
	Prefix     string
	Delimiter  string
	StartAfter string
}

func (p ObjectsParams) Input() *s3.ListObjectsV2Input {
	return &s3.ListObjectsV2Input{
		Bucket:     awsx.StringOrNil(p.Bucket),
		Prefix:     awsx.StringOrNil(p.Prefix),
		Delimiter:  awsx.StringOrNil(p.Delimiter),
		StartAfter: awsx.StringOrNil(p.StartAfter),
	}
}

// Objects returns the ListObjectsV2 operation. S3 names its cursor
// ContinuationToken on the request and NextContinuationToken on the response.
func Objects(c awsx.S3ListAPI) pager.Operation[s3.ListObjectsV2Input, s3.ListObjectsV2Output, types.Object] {
	return pager.Operation[s3.ListObjectsV2Input, s3.ListObjectsV2Output, types.Object]{
		Name: "s3:ListObjectsV2",
		Fetch: func(ctx context.Context, in *s3.ListObjectsV2Input) (*s3.ListObjectsV2Output, error) {
			return c.ListObjectsV2(ctx, in)
		},
		Items:       func(o *s3.ListObjectsV2Output) []types.Object { return o.Contents },
		NextToken:   func(o *s3.ListObjectsV2Output) *string { return o.NextContinuationToken },
		SetToken:    func(in *s3.ListObjectsV2Input, t *string) { in.ContinuationToken = t },
		SetPageSize: func(in *s3.ListObjectsV2Input, n *int32) { in.MaxKeys = n },
	}
}
