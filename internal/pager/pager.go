// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pager

import (
	"context"
	"time"
)

// Operation describes a single paginated API call. I is the request type, O
// the response type and T the item type carried in each page.
type Operation[I, O, T any] struct {
	// Name identifies the operation in logs and errors, e.g.
	// "health:DescribeEvents".
	Name string

	// Fetch issues exactly one request.
	Fetch func(context.Context, *I) (*O, error)

	// Items extracts the page's items from a response.
	Items func(*O) []T

	// NextToken extracts the continuation cursor from a response. nil or ""
	// means the stream is exhausted.
	NextToken func(*O) *string

	// SetToken writes the cursor into a request. A nil token clears it.
	SetToken func(*I, *string)

	// SetPageSize writes the page-size hint into a request. nil when the API
	// has no page-size field.
	SetPageSize func(*I, *int32)
}

// Options are the invocation-time settings of one paginated call.
type Options struct {
	// StartingToken resumes a previous stream at the given cursor.
	StartingToken string

	// PageSize is the per-request item hint. 0 leaves the service default.
	PageSize int32

	// MaxItems caps the total items emitted across pages. 0 is unbounded.
	// Pages are never split; the cap only stops further requests.
	MaxItems int

	// NoPaginate fetches exactly one page and reports its cursor in
	// Result.NextToken instead of following it.
	NoPaginate bool
}

// Page is one fetched page handed downstream.
type Page[T any] struct {
	// Number is the 1-based page index within this invocation.
	Number int
	Items  []T

	// NextToken is the cursor returned with this page, "" on the last page.
	NextToken string

	// Output is the untouched service response, for raw rendering.
	Output any
}

// Result summarizes a finished (or aborted) invocation.
type Result struct {
	Operation string
	Pages     int
	Items     int
	Elapsed   time.Duration

	// NextToken is non-empty when more data exists that this invocation did
	// not request, either because of NoPaginate or MaxItems. Pass it back as
	// Options.StartingToken to resume.
	NextToken string
}

// Truncated reports whether the stream stopped before the service ran out of
// data.
func (r Result) Truncated() bool {
	return r.NextToken != ""
}

func tokenValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
