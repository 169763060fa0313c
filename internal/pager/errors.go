// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pager

import (
	"errors"
	"fmt"
)

var (
	// ErrNilOutput is returned when a fetch reports success without a
	// response.
	ErrNilOutput = errors.New("service returned no response")

	// ErrRepeatedToken is returned when a response carries the same cursor
	// that was sent, which would otherwise loop forever.
	ErrRepeatedToken = errors.New("service returned the cursor it was sent")

	// ErrNoMorePages is returned by Paginator.NextPage after the stream has
	// ended.
	ErrNoMorePages = errors.New("no more pages")
)

// PageError is the terminal error of an invocation. Items emitted before the
// failing page remain valid.
type PageError struct {
	Operation string
	// Page is the 1-based index of the page that failed.
	Page int
	// Emitted is the number of items delivered before the failure.
	Emitted int
	Err     error
}

// Error implements the error interface.
func (e *PageError) Error() string {
	return fmt.Sprintf("%s: page %d (after %d items): %v",
		e.Operation, e.Page, e.Emitted, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *PageError) Unwrap() error {
	return e.Err
}
