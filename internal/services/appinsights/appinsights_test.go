// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package appinsights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	ai "github.com/aws/aws-sdk-go-v2/service/applicationinsights"
	"github.com/aws/aws-sdk-go-v2/service/applicationinsights/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/awsqgo/internal/pager"
)

type fakeInsights struct {
	problems  []*ai.ListProblemsOutput
	failAfter int
	calls     int
}

func (f *fakeInsights) ListApplications(context.Context, *ai.ListApplicationsInput, ...func(*ai.Options)) (*ai.ListApplicationsOutput, error) {
	return &ai.ListApplicationsOutput{
		ApplicationInfoList: []types.ApplicationInfo{{ResourceGroupName: aws.String("rg-1")}},
	}, nil
}

func (f *fakeInsights) ListProblems(context.Context, *ai.ListProblemsInput, ...func(*ai.Options)) (*ai.ListProblemsOutput, error) {
	f.calls++
	if f.failAfter > 0 && f.calls > f.failAfter {
		return nil, errors.New("service unavailable")
	}
	out := f.problems[0]
	f.problems = f.problems[1:]
	return out, nil
}

func (f *fakeInsights) ListComponents(_ context.Context, in *ai.ListComponentsInput, _ ...func(*ai.Options)) (*ai.ListComponentsOutput, error) {
	return &ai.ListComponentsOutput{
		ApplicationComponentList: []types.ApplicationComponent{{ComponentName: aws.String(aws.ToString(in.ResourceGroupName) + "-web")}},
	}, nil
}

func TestProblemsParams_Input(t *testing.T) {
	in := ProblemsParams{}.Input()
	assert.Nil(t, in.ResourceGroupName)
	assert.Nil(t, in.StartTime)
	assert.Empty(t, in.Visibility)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	in = ProblemsParams{ResourceGroup: "rg", StartTime: start, Visibility: "VISIBLE"}.Input()
	assert.Equal(t, "rg", aws.ToString(in.ResourceGroupName))
	assert.Equal(t, start, aws.ToTime(in.StartTime))
	assert.Nil(t, in.EndTime)
	assert.Equal(t, types.VisibilityVisible, in.Visibility)
}

func TestApplicationsParams_Input(t *testing.T) {
	assert.Nil(t, ApplicationsParams{}.Input().AccountId)
	assert.Equal(t, "123456789012", aws.ToString(ApplicationsParams{AccountID: "123456789012"}.Input().AccountId))
}

func TestProblems_FailureKeepsEarlierPages(t *testing.T) {
	fake := &fakeInsights{
		failAfter: 1,
		problems: []*ai.ListProblemsOutput{
			{ProblemList: []types.Problem{{Id: aws.String("p-1")}, {Id: aws.String("p-2")}}, NextToken: aws.String("t1")},
		},
	}

	var seen []string
	res, err := pager.Stream(context.Background(), Problems(fake), *ProblemsParams{}.Input(), pager.Options{},
		func(p pager.Page[types.Problem]) error {
			for _, it := range p.Items {
				seen = append(seen, aws.ToString(it.Id))
			}
			return nil
		})

	require.Error(t, err)
	var pe *pager.PageError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Page)
	assert.Equal(t, 2, pe.Emitted)
	assert.Equal(t, []string{"p-1", "p-2"}, seen)
	assert.Equal(t, "t1", res.NextToken)
	assert.Equal(t, 2, fake.calls)
}

func TestApplicationsAndComponents(t *testing.T) {
	fake := &fakeInsights{}

	apps, _, err := pager.Collect(context.Background(), Applications(fake), *ApplicationsParams{}.Input(), pager.Options{})
	require.NoError(t, err)
	require.Len(t, apps, 1)

	comps, _, err := pager.Collect(context.Background(), Components(fake), *ComponentsParams{ResourceGroup: "rg-1"}.Input(), pager.Options{})
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Equal(t, "rg-1-web", aws.ToString(comps[0].ComponentName))
}
