// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pager

import (
	"context"
	"fmt"
)

// Stream drives op to completion under opts, calling emit once per page as
// soon as the page arrives. It stops on the first fetch or emit error; pages
// already emitted are not retracted. The returned Result is valid in both
// cases.
func Stream[I, O, T any](
	ctx context.Context,
	op Operation[I, O, T],
	template I,
	opts Options,
	emit func(Page[T]) error,
) (Result, error) {
	p := NewPaginator(op, template, opts)

	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return p.Result(), err
		}

		if emit == nil {
			continue
		}
		if err := emit(page); err != nil {
			return p.Result(), fmt.Errorf("%s: emit page %d: %w", op.Name, page.Number, err)
		}
	}

	return p.Result(), nil
}

// Collect is Stream with every item gathered into a slice. Intended for small
// result sets and tests.
func Collect[I, O, T any](
	ctx context.Context,
	op Operation[I, O, T],
	template I,
	opts Options,
) ([]T, Result, error) {
	var items []T
	res, err := Stream(ctx, op, template, opts, func(page Page[T]) error {
		items = append(items, page.Items...)
		return nil
	})
	return items, res, err
}
