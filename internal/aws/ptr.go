// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import "time"

// The OrNil helpers map a zero value to nil so request builders never send a
// field the user did not provide.

// StringOrNil returns nil for "", else a pointer to s.
func StringOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// TimeOrNil returns nil for the zero time, else a pointer to t.
func TimeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// SliceOrNil returns nil for an empty slice so it is omitted from requests.
func SliceOrNil[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

// MapSlice converts each element of in, returning nil for empty input.
func MapSlice[In, Out any](in []In, fn func(In) Out) []Out {
	if len(in) == 0 {
		return nil
	}
	out := make([]Out, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
