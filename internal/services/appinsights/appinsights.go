// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package appinsights maps CloudWatch Application Insights list operations
// onto pager operations.
package appinsights

import (
	"context"
	"time"

	ai "github.com/aws/aws-sdk-go-v2/service/applicationinsights"
	"github.com/aws/aws-sdk-go-v2/service/applicationinsights/types"

	awsx "github.com/staranto/awsqgo/internal/aws"
	"github.com/staranto/awsqgo/internal/pager"
)

type ApplicationsParams struct {
	AccountID string
}

func (p ApplicationsParams) Input() *ai.ListApplicationsInput {
	return &ai.ListApplicationsInput{AccountId: awsx.StringOrNil(p.AccountID)}
}

// ProblemsParams filter ListProblems. A zero StartTime or EndTime is left for
// the service to default.
type ProblemsParams struct {
	ResourceGroup string
	Component     string
	StartTime     time.Time
	EndTime       time.Time
	Visibility    string
	AccountID     string
}

func (p ProblemsParams) Input() *ai.ListProblemsInput {
	return &ai.ListProblemsInput{
		ResourceGroupName: awsx.StringOrNil(p.ResourceGroup),
		ComponentName:     awsx.StringOrNil(p.Component),
		StartTime:         awsx.TimeOrNil(p.StartTime),
		EndTime:           awsx.TimeOrNil(p.EndTime),
		Visibility:        types.Visibility(p.Visibility),
		AccountId:         awsx.StringOrNil(p.AccountID),
	}
}

// ComponentsParams filter ListComponents. ResourceGroup is required.
type ComponentsParams struct {
	ResourceGroup string
	AccountID     string
}

func (p ComponentsParams) Input() *ai.ListComponentsInput {
	return &ai.ListComponentsInput{
		ResourceGroupName: awsx.StringOrNil(p.ResourceGroup),
		AccountId:         awsx.StringOrNil(p.AccountID),
	}
}

func Applications(c awsx.ApplicationInsightsAPI) pager.Operation[ai.ListApplicationsInput, ai.ListApplicationsOutput, types.ApplicationInfo] {
	return pager.Operation[ai.ListApplicationsInput, ai.ListApplicationsOutput, types.ApplicationInfo]{
		Name: "applicationinsights:ListApplications",
		Fetch: func(ctx context.Context, in *ai.ListApplicationsInput) (*ai.ListApplicationsOutput, error) {
			return c.ListApplications(ctx, in)
		},
		Items:       func(o *ai.ListApplicationsOutput) []types.ApplicationInfo { return o.ApplicationInfoList },
		NextToken:   func(o *ai.ListApplicationsOutput) *string { return o.NextToken },
		SetToken:    func(in *ai.ListApplicationsInput, t *string) { in.NextToken = t },
		SetPageSize: func(in *ai.ListApplicationsInput, n *int32) { in.MaxResults = n },
	}
}

func Problems(c awsx.ApplicationInsightsAPI) pager.Operation[ai.ListProblemsInput, ai.ListProblemsOutput, types.Problem] {
	return pager.Operation[ai.ListProblemsInput, ai.ListProblemsOutput, types.Problem]{
		Name: "applicationinsights:ListProblems",
		Fetch: func(ctx context.Context, in *ai.ListProblemsInput) (*ai.ListProblemsOutput, error) {
			return c.ListProblems(ctx, in)
		},
		Items:       func(o *ai.ListProblemsOutput) []types.Problem { return o.ProblemList },
		NextToken:   func(o *ai.ListProblemsOutput) *string { return o.NextToken },
		SetToken:    func(in *ai.ListProblemsInput, t *string) { in.NextToken = t },
		SetPageSize: func(in *ai.ListProblemsInput, n *int32) { in.MaxResults = n },
	}
}

func Components(c awsx.ApplicationInsightsAPI) pager.Operation[ai.ListComponentsInput, ai.ListComponentsOutput, types.ApplicationComponent] {
	return pager.Operation[ai.ListComponentsInput, ai.ListComponentsOutput, types.ApplicationComponent]{
		Name: "applicationinsights:ListComponents",
		Fetch: func(ctx context.Context, in *ai.ListComponentsInput) (*ai.ListComponentsOutput, error) {
			return c.ListComponents(ctx, in)
		},
		Items:       func(o *ai.ListComponentsOutput) []types.ApplicationComponent { return o.ApplicationComponentList },
		NextToken:   func(o *ai.ListComponentsOutput) *string { return o.NextToken },
		SetToken:    func(in *ai.ListComponentsInput, t *string) { in.NextToken = t },
		SetPageSize: func(in *ai.ListComponentsInput, n *int32) { in.MaxResults = n },
	}
}
