// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	tsq "github.com/aws/aws-sdk-go-v2/service/timestreamquery"
	"github.com/aws/aws-sdk-go-v2/service/timestreamquery/types"
	"github.com/urfave/cli/v3"

	"github.com/staranto/awsqgo/internal/meta"
	"github.com/staranto/awsqgo/internal/pager"
	"github.com/staranto/awsqgo/internal/services/tsquery"
)

const tsQueryNS = "tsquery"

// queryText takes --query, or else the positional arguments joined by
// spaces so unquoted SQL works.
func queryText(cmd *cli.Command) string {
	if q := cmd.String("query"); q != "" {
		return q
	}
	return strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
}

var queryRunner = &QueryActionRunner[tsq.QueryInput, tsq.QueryOutput, tsquery.Record]{
	Service: tsQueryNS,
	Examples: [][2]string{
		{`awsq tsquery query "SELECT * FROM db.metrics WHERE time > ago(1h)"`, "last hour of a table"},
		{`awsq tsquery query -q "SELECT region, avg(cpu) FROM db.m GROUP BY region" -a region,_1:avg`, "pick and rename columns"},
		{`awsq tsquery query -q "..." --page-size 1000 -o json`, "bigger pages as NDJSON"},
	},
	Build: func(ctx context.Context, cmd *cli.Command, cfg aws.Config) (
		op pager.Operation[tsq.QueryInput, tsq.QueryOutput, tsquery.Record],
		in *tsq.QueryInput, err error,
	) {
		q := queryText(cmd)
		if q == "" {
			return op, nil, errors.New("missing query: use --query or pass it as arguments")
		}
		p := tsquery.QueryParams{Query: q, ClientToken: cmd.String("client-token")}
		return tsquery.Query(newTimestreamQueryClient(cfg)), p.Input(), nil
	},
}

var scheduledRunner = &QueryActionRunner[tsq.ListScheduledQueriesInput, tsq.ListScheduledQueriesOutput, types.ScheduledQuery]{
	Service:      tsQueryNS,
	DefaultAttrs: []string{"Name", "State", "LastRunStatus:last", "NextInvocationTime:next:t"},
	Examples: [][2]string{
		{"awsq tsquery scheduled", "all scheduled queries"},
		{"awsq tsquery scheduled -a Arn -o yaml", "with their ARNs as YAML"},
	},
	Build: func(ctx context.Context, cmd *cli.Command, cfg aws.Config) (
		pager.Operation[tsq.ListScheduledQueriesInput, tsq.ListScheduledQueriesOutput, types.ScheduledQuery],
		*tsq.ListScheduledQueriesInput, error,
	) {
		return tsquery.Scheduled(newTimestreamQueryClient(cfg)), tsquery.ScheduledParams{}.Input(), nil
	},
}

var tagsRunner = &QueryActionRunner[tsq.ListTagsForResourceInput, tsq.ListTagsForResourceOutput, types.Tag]{
	Service:      tsQueryNS,
	DefaultAttrs: []string{"Key", "Value"},
	Examples: [][2]string{
		{"awsq tsquery tags --arn arn:aws:timestream:us-east-1:123456789012:scheduled-query/q", "tags of a scheduled query"},
	},
	Build: func(ctx context.Context, cmd *cli.Command, cfg aws.Config) (
		op pager.Operation[tsq.ListTagsForResourceInput, tsq.ListTagsForResourceOutput, types.Tag],
		in *tsq.ListTagsForResourceInput, err error,
	) {
		if err = RequireFlags(cmd, "arn"); err != nil {
			return
		}
		p := tsquery.TagsParams{ResourceARN: cmd.String("arn")}
		return tsquery.Tags(newTimestreamQueryClient(cfg)), p.Input(), nil
	},
}

// TsQueryCommandBuilder constructs the "tsquery" command group.
func TsQueryCommandBuilder(meta meta.Meta) *cli.Command {
	query := (&QueryCommandBuilder{
		Service:   tsQueryNS,
		Name:      "query",
		Usage:     "run a Timestream query and stream its rows",
		UsageText: "awsq tsquery query [--query] SQL [options]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "query text; positional arguments are used when absent",
			},
			stringFlag(tsQueryNS, "query", "client-token", "idempotency token for the query"),
		},
		Action:   queryRunner.Run,
		Examples: queryRunner.Examples,
		Meta:     meta,
	}).Build()

	scheduled := (&QueryCommandBuilder{
		Service:   tsQueryNS,
		Name:      "scheduled",
		Usage:     "list scheduled queries",
		UsageText: "awsq tsquery scheduled [options]",
		Action:    scheduledRunner.Run,
		Examples:  scheduledRunner.Examples,
		Meta:      meta,
	}).Build()

	tags := (&QueryCommandBuilder{
		Service:   tsQueryNS,
		Name:      "tags",
		Usage:     "list the tags of a Timestream resource",
		UsageText: "awsq tsquery tags --arn ARN [options]",
		Flags: []cli.Flag{
			stringFlag(tsQueryNS, "tags", "arn", "resource ARN (required)"),
		},
		Action:   tagsRunner.Run,
		Examples: tagsRunner.Examples,
		Meta:     meta,
	}).Build()

	return &cli.Command{
		Name:     tsQueryNS,
		Usage:    "Amazon Timestream queries, scheduled queries and tags",
		Metadata: map[string]any{"meta": meta},
		Commands: []*cli.Command{query, scheduled, tags},
	}
}
