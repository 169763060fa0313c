// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package tsquery maps Amazon Timestream Query operations onto pager
// operations. Query result rows are flattened into records keyed by column
// name so they render like any other item.
package tsquery

import (
	"context"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	tsq "github.com/aws/aws-sdk-go-v2/service/timestreamquery"
	"github.com/aws/aws-sdk-go-v2/service/timestreamquery/types"

	awsx "github.com/staranto/awsqgo/internal/aws"
	"github.com/staranto/awsqgo/internal/pager"
)

// Record is one flattened result row.
type Record map[string]any

type QueryParams struct {
	Query       string
	ClientToken string
}

// Input builds the Query request. The query string is carried unchanged on
// every page as the service requires.
func (p QueryParams) Input() *tsq.QueryInput {
	return &tsq.QueryInput{
		QueryString: awsx.StringOrNil(p.Query),
		ClientToken: awsx.StringOrNil(p.ClientToken),
	}
}

type ScheduledParams struct{}

func (ScheduledParams) Input() *tsq.ListScheduledQueriesInput {
	return &tsq.ListScheduledQueriesInput{}
}

type TagsParams struct {
	ResourceARN string
}

func (p TagsParams) Input() *tsq.ListTagsForResourceInput {
	return &tsq.ListTagsForResourceInput{ResourceARN: awsx.StringOrNil(p.ResourceARN)}
}

// Query returns the Query operation. A page may legitimately hold no rows
// while the query is still running; its cursor keeps the stream going.
func Query(c awsx.TimestreamQueryAPI) pager.Operation[tsq.QueryInput, tsq.QueryOutput, Record] {
	return pager.Operation[tsq.QueryInput, tsq.QueryOutput, Record]{
		Name: "timestreamquery:Query",
		Fetch: func(ctx context.Context, in *tsq.QueryInput) (*tsq.QueryOutput, error) {
			return c.Query(ctx, in)
		},
		Items:       func(o *tsq.QueryOutput) []Record { return Flatten(o.ColumnInfo, o.Rows) },
		NextToken:   func(o *tsq.QueryOutput) *string { return o.NextToken },
		SetToken:    func(in *tsq.QueryInput, t *string) { in.NextToken = t },
		SetPageSize: func(in *tsq.QueryInput, n *int32) { in.MaxRows = n },
	}
}

func Scheduled(c awsx.TimestreamQueryAPI) pager.Operation[tsq.ListScheduledQueriesInput, tsq.ListScheduledQueriesOutput, types.ScheduledQuery] {
	return pager.Operation[tsq.ListScheduledQueriesInput, tsq.ListScheduledQueriesOutput, types.ScheduledQuery]{
		Name: "timestreamquery:ListScheduledQueries",
		Fetch: func(ctx context.Context, in *tsq.ListScheduledQueriesInput) (*tsq.ListScheduledQueriesOutput, error) {
			return c.ListScheduledQueries(ctx, in)
		},
		Items:       func(o *tsq.ListScheduledQueriesOutput) []types.ScheduledQuery { return o.ScheduledQueries },
		NextToken:   func(o *tsq.ListScheduledQueriesOutput) *string { return o.NextToken },
		SetToken:    func(in *tsq.ListScheduledQueriesInput, t *string) { in.NextToken = t },
		SetPageSize: func(in *tsq.ListScheduledQueriesInput, n *int32) { in.MaxResults = n },
	}
}

func Tags(c awsx.TimestreamQueryAPI) pager.Operation[tsq.ListTagsForResourceInput, tsq.ListTagsForResourceOutput, types.Tag] {
	return pager.Operation[tsq.ListTagsForResourceInput, tsq.ListTagsForResourceOutput, types.Tag]{
		Name: "timestreamquery:ListTagsForResource",
		Fetch: func(ctx context.Context, in *tsq.ListTagsForResourceInput) (*tsq.ListTagsForResourceOutput, error) {
			return c.ListTagsForResource(ctx, in)
		},
		Items:       func(o *tsq.ListTagsForResourceOutput) []types.Tag { return o.Tags },
		NextToken:   func(o *tsq.ListTagsForResourceOutput) *string { return o.NextToken },
		SetToken:    func(in *tsq.ListTagsForResourceInput, t *string) { in.NextToken = t },
		SetPageSize: func(in *tsq.ListTagsForResourceInput, n *int32) { in.MaxResults = n },
	}
}

// Flatten converts rows into records using the page's column info. Columns
// without a name are keyed by position ("_0", "_1", ...).
func Flatten(cols []types.ColumnInfo, rows []types.Row) []Record {
	if len(rows) == 0 {
		return nil
	}
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, record(cols, row.Data))
	}
	return out
}

func record(cols []types.ColumnInfo, data []types.Datum) Record {
	r := make(Record, len(data))
	for i, d := range data {
		var col types.ColumnInfo
		if i < len(cols) {
			col = cols[i]
		}
		name := "_" + strconv.Itoa(i)
		if col.Name != nil && *col.Name != "" {
			name = *col.Name
		}
		r[name] = datum(col.Type, d)
	}
	return r
}

func datum(typ *types.Type, d types.Datum) any {
	switch {
	case d.NullValue != nil && *d.NullValue:
		return nil

	case d.ScalarValue != nil:
		if typ == nil {
			return *d.ScalarValue
		}
		return scalar(typ.ScalarType, *d.ScalarValue)

	case d.ArrayValue != nil:
		var elem *types.Type
		if typ != nil && typ.ArrayColumnInfo != nil {
			elem = typ.ArrayColumnInfo.Type
		}
		arr := make([]any, 0, len(d.ArrayValue))
		for _, v := range d.ArrayValue {
			arr = append(arr, datum(elem, v))
		}
		return arr

	case d.RowValue != nil:
		var cols []types.ColumnInfo
		if typ != nil {
			cols = typ.RowColumnInfo
		}
		return record(cols, d.RowValue.Data)

	case d.TimeSeriesValue != nil:
		var measure *types.Type
		if typ != nil && typ.TimeSeriesMeasureValueColumnInfo != nil {
			measure = typ.TimeSeriesMeasureValueColumnInfo.Type
		}
		points := make([]any, 0, len(d.TimeSeriesValue))
		for _, p := range d.TimeSeriesValue {
			point := map[string]any{"time": aws.ToString(p.Time)}
			if p.Value != nil {
				point["value"] = datum(measure, *p.Value)
			} else {
				point["value"] = nil
			}
			points = append(points, point)
		}
		return points
	}

	return nil
}

// scalar converts numeric and boolean scalars. Values that fail to parse, and
// every other scalar type, stay strings.
func scalar(st types.ScalarType, v string) any {
	switch st {
	case types.ScalarTypeBigint, types.ScalarTypeInteger:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	case types.ScalarTypeDouble:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	case types.ScalarTypeBoolean:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return v
}
