// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package pager drives cursor-paginated AWS API operations. An Operation
// describes how to call one API and where its cursor and page-size fields
// live; Stream, Paginator and Items walk the pages sequentially, one request
// in flight at a time, handing each page downstream as soon as it arrives.
package pager
