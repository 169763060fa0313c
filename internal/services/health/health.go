// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package health maps AWS Health describe operations onto pager operations.
package health

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/health"
	"github.com/aws/aws-sdk-go-v2/service/health/types"

	awsx "github.com/staranto/awsqgo/internal/aws"
	"github.com/staranto/awsqgo/internal/pager"
)

// TimeRange is an optional from/to window. Either end may be zero.
type TimeRange struct {
	From time.Time
	To   time.Time
}

func (r TimeRange) ranges() []types.DateTimeRange {
	if r.From.IsZero() && r.To.IsZero() {
		return nil
	}
	return []types.DateTimeRange{{
		From: awsx.TimeOrNil(r.From),
		To:   awsx.TimeOrNil(r.To),
	}}
}

// EventsParams are the filters accepted by DescribeEvents.
type EventsParams struct {
	Services          []string
	Regions           []string
	AvailabilityZones []string
	EventTypeCodes    []string
	Categories        []string
	StatusCodes       []string
	EventArns         []string
	EntityArns        []string
	EntityValues      []string
	StartTime         TimeRange
	EndTime           TimeRange
	LastUpdated       TimeRange
	Locale            string
}

// Input builds the DescribeEvents request. The filter is omitted entirely
// when no filter field is set.
func (p EventsParams) Input() *health.DescribeEventsInput {
	filter := &types.EventFilter{
		Services:            awsx.SliceOrNil(p.Services),
		Regions:             awsx.SliceOrNil(p.Regions),
		AvailabilityZones:   awsx.SliceOrNil(p.AvailabilityZones),
		EventTypeCodes:      awsx.SliceOrNil(p.EventTypeCodes),
		EventTypeCategories: awsx.MapSlice(p.Categories, toCategory),
		EventStatusCodes:    awsx.MapSlice(p.StatusCodes, toEventStatus),
		EventArns:           awsx.SliceOrNil(p.EventArns),
		EntityArns:          awsx.SliceOrNil(p.EntityArns),
		EntityValues:        awsx.SliceOrNil(p.EntityValues),
		StartTimes:          p.StartTime.ranges(),
		EndTimes:            p.EndTime.ranges(),
		LastUpdatedTimes:    p.LastUpdated.ranges(),
	}

	in := &health.DescribeEventsInput{Locale: awsx.StringOrNil(p.Locale)}
	if !eventFilterEmpty(filter) {
		in.Filter = filter
	}
	return in
}

func eventFilterEmpty(f *types.EventFilter) bool {
	return f.Services == nil && f.Regions == nil && f.AvailabilityZones == nil &&
		f.EventTypeCodes == nil && f.EventTypeCategories == nil &&
		f.EventStatusCodes == nil && f.EventArns == nil && f.EntityArns == nil &&
		f.EntityValues == nil && f.StartTimes == nil && f.EndTimes == nil &&
		f.LastUpdatedTimes == nil
}

// EntitiesParams are the filters accepted by DescribeAffectedEntities.
// EventArns is required by the service.
type EntitiesParams struct {
	EventArns    []string
	EntityArns   []string
	EntityValues []string
	StatusCodes  []string
	LastUpdated  TimeRange
	Locale       string
}

// Input builds the DescribeAffectedEntities request.
func (p EntitiesParams) Input() *health.DescribeAffectedEntitiesInput {
	return &health.DescribeAffectedEntitiesInput{
		Filter: &types.EntityFilter{
			EventArns:        p.EventArns,
			EntityArns:       awsx.SliceOrNil(p.EntityArns),
			EntityValues:     awsx.SliceOrNil(p.EntityValues),
			StatusCodes:      awsx.MapSlice(p.StatusCodes, toEntityStatus),
			LastUpdatedTimes: p.LastUpdated.ranges(),
		},
		Locale: awsx.StringOrNil(p.Locale),
	}
}

// EventTypesParams are the filters accepted by DescribeEventTypes.
type EventTypesParams struct {
	Services       []string
	EventTypeCodes []string
	Categories     []string
	Locale         string
}

// Input builds the DescribeEventTypes request.
func (p EventTypesParams) Input() *health.DescribeEventTypesInput {
	in := &health.DescribeEventTypesInput{Locale: awsx.StringOrNil(p.Locale)}
	if len(p.Services) > 0 || len(p.EventTypeCodes) > 0 || len(p.Categories) > 0 {
		in.Filter = &types.EventTypeFilter{
			Services:            awsx.SliceOrNil(p.Services),
			EventTypeCodes:      awsx.SliceOrNil(p.EventTypeCodes),
			EventTypeCategories: awsx.MapSlice(p.Categories, toCategory),
		}
	}
	return in
}

// Events returns the DescribeEvents operation.
func Events(c awsx.HealthAPI) pager.Operation[health.DescribeEventsInput, health.DescribeEventsOutput, types.Event] {
	return pager.Operation[health.DescribeEventsInput, health.DescribeEventsOutput, types.Event]{
		Name: "health:DescribeEvents",
		Fetch: func(ctx context.Context, in *health.DescribeEventsInput) (*health.DescribeEventsOutput, error) {
			return c.DescribeEvents(ctx, in)
		},
		Items:       func(o *health.DescribeEventsOutput) []types.Event { return o.Events },
		NextToken:   func(o *health.DescribeEventsOutput) *string { return o.NextToken },
		SetToken:    func(in *health.DescribeEventsInput, t *string) { in.NextToken = t },
		SetPageSize: func(in *health.DescribeEventsInput, n *int32) { in.MaxResults = n },
	}
}

// Entities returns the DescribeAffectedEntities operation.
func Entities(c awsx.HealthAPI) pager.Operation[health.DescribeAffectedEntitiesInput, health.DescribeAffectedEntitiesOutput, types.AffectedEntity] {
	return pager.Operation[health.DescribeAffectedEntitiesInput, health.DescribeAffectedEntitiesOutput, types.AffectedEntity]{
		Name: "health:DescribeAffectedEntities",
		Fetch: func(ctx context.Context, in *health.DescribeAffectedEntitiesInput) (*health.DescribeAffectedEntitiesOutput, error) {
			return c.DescribeAffectedEntities(ctx, in)
		},
		Items:       func(o *health.DescribeAffectedEntitiesOutput) []types.AffectedEntity { return o.Entities },
		NextToken:   func(o *health.DescribeAffectedEntitiesOutput) *string { return o.NextToken },
		SetToken:    func(in *health.DescribeAffectedEntitiesInput, t *string) { in.NextToken = t },
		SetPageSize: func(in *health.DescribeAffectedEntitiesInput, n *int32) { in.MaxResults = n },
	}
}

// EventTypes returns the DescribeEventTypes operation.
func EventTypes(c awsx.HealthAPI) pager.Operation[health.DescribeEventTypesInput, health.DescribeEventTypesOutput, types.EventType] {
	return pager.Operation[health.DescribeEventTypesInput, health.DescribeEventTypesOutput, types.EventType]{
		Name: "health:DescribeEventTypes",
		Fetch: func(ctx context.Context, in *health.DescribeEventTypesInput) (*health.DescribeEventTypesOutput, error) {
			return c.DescribeEventTypes(ctx, in)
		},
		Items:       func(o *health.DescribeEventTypesOutput) []types.EventType { return o.EventTypes },
		NextToken:   func(o *health.DescribeEventTypesOutput) *string { return o.NextToken },
		SetToken:    func(in *health.DescribeEventTypesInput, t *string) { in.NextToken = t },
		SetPageSize: func(in *health.DescribeEventTypesInput, n *int32) { in.MaxResults = n },
	}
}

// canonical returns the enum's own spelling of s, matched case-insensitively.
// Unknown values pass through for the service to reject.
func canonical[E ~string](s string, values []E) E {
	for _, v := range values {
		if strings.EqualFold(string(v), s) {
			return v
		}
	}
	return E(s)
}

func toCategory(s string) types.EventTypeCategory {
	return canonical(s, types.EventTypeCategory("").Values())
}

func toEventStatus(s string) types.EventStatusCode {
	return canonical(s, types.EventStatusCode("").Values())
}

func toEntityStatus(s string) types.EntityStatusCode {
	return canonical(s, types.EntityStatusCode("").Values())
}
