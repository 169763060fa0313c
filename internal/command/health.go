// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	hl "github.com/aws/aws-sdk-go-v2/service/health"
	"github.com/aws/aws-sdk-go-v2/service/health/types"
	"github.com/urfave/cli/v3"

	"github.com/staranto/awsqgo/internal/meta"
	"github.com/staranto/awsqgo/internal/pager"
	"github.com/staranto/awsqgo/internal/services/health"
)

const healthNS = "health"

func timeRange(cmd *cli.Command, prefix string) health.TimeRange {
	return health.TimeRange{
		From: cmd.Timestamp(prefix + "-from"),
		To:   cmd.Timestamp(prefix + "-to"),
	}
}

var eventsRunner = &QueryActionRunner[hl.DescribeEventsInput, hl.DescribeEventsOutput, types.Event]{
	Service:      healthNS,
	DefaultAttrs: []string{"Arn:arn:-48", "Service", "EventTypeCode:code", "Region", "StatusCode:status", "StartTime:start:t"},
	Examples: [][2]string{
		{"awsq health events --status open", "open events in all services"},
		{"awsq health events --service EC2 --category issue -o json", "EC2 issues as NDJSON"},
		{"awsq health events --start-from 2025-01-01 --max-items 100", "first 100 events started this year"},
	},
	Build: func(ctx context.Context, cmd *cli.Command, cfg aws.Config) (
		pager.Operation[hl.DescribeEventsInput, hl.DescribeEventsOutput, types.Event], *hl.DescribeEventsInput, error,
	) {
		p := health.EventsParams{
			Services:          cmd.StringSlice("service"),
			Regions:           cmd.StringSlice("event-region"),
			AvailabilityZones: cmd.StringSlice("az"),
			EventTypeCodes:    cmd.StringSlice("code"),
			Categories:        cmd.StringSlice("category"),
			StatusCodes:       cmd.StringSlice("status"),
			EventArns:         cmd.StringSlice("event-arn"),
			EntityArns:        cmd.StringSlice("entity-arn"),
			EntityValues:      cmd.StringSlice("entity-value"),
			StartTime:         timeRange(cmd, "start"),
			EndTime:           timeRange(cmd, "end"),
			LastUpdated:       timeRange(cmd, "updated"),
			Locale:            cmd.String("locale"),
		}
		return health.Events(newHealthClient(cfg)), p.Input(), nil
	},
}

var entitiesRunner = &QueryActionRunner[hl.DescribeAffectedEntitiesInput, hl.DescribeAffectedEntitiesOutput, types.AffectedEntity]{
	Service:      healthNS,
	DefaultAttrs: []string{"EntityValue:entity", "StatusCode:status", "AwsAccountId:account", "LastUpdatedTime:updated:t"},
	Examples: [][2]string{
		{"awsq health entities --event-arn arn:aws:health:us-east-1::event/EC2/X/Y", "resources hit by one event"},
		{"awsq health entities --event-arn A --status impaired", "only impaired resources"},
	},
	Build: func(ctx context.Context, cmd *cli.Command, cfg aws.Config) (
		op pager.Operation[hl.DescribeAffectedEntitiesInput, hl.DescribeAffectedEntitiesOutput, types.AffectedEntity],
		in *hl.DescribeAffectedEntitiesInput, err error,
	) {
		if err = RequireFlags(cmd, "event-arn"); err != nil {
			return
		}
		p := health.EntitiesParams{
			EventArns:    cmd.StringSlice("event-arn"),
			EntityArns:   cmd.StringSlice("entity-arn"),
			EntityValues: cmd.StringSlice("entity-value"),
			StatusCodes:  cmd.StringSlice("status"),
			LastUpdated:  timeRange(cmd, "updated"),
			Locale:       cmd.String("locale"),
		}
		return health.Entities(newHealthClient(cfg)), p.Input(), nil
	},
}

var eventTypesRunner = &QueryActionRunner[hl.DescribeEventTypesInput, hl.DescribeEventTypesOutput, types.EventType]{
	Service:      healthNS,
	DefaultAttrs: []string{"Service", "Code", "Category"},
	Examples: [][2]string{
		{"awsq health event-types --service EC2", "event types EC2 can raise"},
		{"awsq health event-types --category scheduledChange -o yaml", "scheduled change types as YAML"},
	},
	Build: func(ctx context.Context, cmd *cli.Command, cfg aws.Config) (
		pager.Operation[hl.DescribeEventTypesInput, hl.DescribeEventTypesOutput, types.EventType], *hl.DescribeEventTypesInput, error,
	) {
		p := health.EventTypesParams{
			Services:       cmd.StringSlice("service"),
			EventTypeCodes: cmd.StringSlice("code"),
			Categories:     cmd.StringSlice("category"),
			Locale:         cmd.String("locale"),
		}
		return health.EventTypes(newHealthClient(cfg)), p.Input(), nil
	},
}

// HealthCommandBuilder constructs the "health" command group.
func HealthCommandBuilder(meta meta.Meta) *cli.Command {
	categoryValidator := func(v []string) error {
		for _, s := range v {
			if err := OneOfValidator("issue", "accountNotification", "scheduledChange", "investigation")(s); err != nil {
				return err
			}
		}
		return nil
	}

	events := (&QueryCommandBuilder{
		Service:   healthNS,
		Name:      "events",
		Usage:     "list AWS Health events",
		UsageText: "awsq health events [options]",
		Flags: []cli.Flag{
			sliceFlag("service", "AWS service codes, e.g. EC2"),
			sliceFlag("event-region", "regions the events occurred in"),
			sliceFlag("az", "availability zones"),
			sliceFlag("code", "event type codes"),
			withSliceValidator(sliceFlag("category", "event type categories"), categoryValidator),
			sliceFlag("status", "event status codes (open, closed, upcoming)"),
			sliceFlag("event-arn", "event ARNs"),
			sliceFlag("entity-arn", "affected entity ARNs"),
			sliceFlag("entity-value", "affected entity values"),
			timeFlag("start-from", "events starting at or after"),
			timeFlag("start-to", "events starting at or before"),
			timeFlag("end-from", "events ending at or after"),
			timeFlag("end-to", "events ending at or before"),
			timeFlag("updated-from", "events updated at or after"),
			timeFlag("updated-to", "events updated at or before"),
			stringFlag(healthNS, "events", "locale", "locale of returned descriptions"),
		},
		Action:   eventsRunner.Run,
		Examples: eventsRunner.Examples,
		Meta:     meta,
	}).Build()

	entities := (&QueryCommandBuilder{
		Service:   healthNS,
		Name:      "entities",
		Usage:     "list resources affected by AWS Health events",
		UsageText: "awsq health entities --event-arn ARN [options]",
		Flags: []cli.Flag{
			sliceFlag("event-arn", "event ARNs (required)"),
			sliceFlag("entity-arn", "affected entity ARNs"),
			sliceFlag("entity-value", "affected entity values"),
			sliceFlag("status", "entity status codes (impaired, unimpaired, unknown, pending, resolved)"),
			timeFlag("updated-from", "entities updated at or after"),
			timeFlag("updated-to", "entities updated at or before"),
			stringFlag(healthNS, "entities", "locale", "locale of returned descriptions"),
		},
		Action:   entitiesRunner.Run,
		Examples: entitiesRunner.Examples,
		Meta:     meta,
	}).Build()

	eventTypes := (&QueryCommandBuilder{
		Service:   healthNS,
		Name:      "event-types",
		Usage:     "list AWS Health event types",
		UsageText: "awsq health event-types [options]",
		Flags: []cli.Flag{
			sliceFlag("service", "AWS service codes, e.g. EC2"),
			sliceFlag("code", "event type codes"),
			withSliceValidator(sliceFlag("category", "event type categories"), categoryValidator),
			stringFlag(healthNS, "event-types", "locale", "locale of returned descriptions"),
		},
		Action:   eventTypesRunner.Run,
		Examples: eventTypesRunner.Examples,
		Meta:     meta,
	}).Build()

	return &cli.Command{
		Name:     healthNS,
		Usage:    "AWS Health events, affected entities and event types",
		Metadata: map[string]any{"meta": meta},
		Commands: []*cli.Command{events, entities, eventTypes},
	}
}

func withSliceValidator(f *cli.StringSliceFlag, v func([]string) error) *cli.StringSliceFlag {
	f.Validator = v
	return f
}
