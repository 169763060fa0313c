// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pager

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/apex/log"
)

// Paginator is the pull-style driver. Each NextPage call issues exactly one
// request; HasMorePages reports whether another call is warranted under the
// invocation's Options.
//
//	p := pager.NewPaginator(op, input, opts)
//	for p.HasMorePages() {
//		page, err := p.NextPage(ctx)
//		...
//	}
type Paginator[I, O, T any] struct {
	op       Operation[I, O, T]
	template I
	opts     Options

	token   string
	pages   int
	emitted int
	started time.Time
	done    bool
}

// NewPaginator returns a Paginator over op. The template is copied; the
// caller's value is never modified.
func NewPaginator[I, O, T any](op Operation[I, O, T], template I, opts Options) *Paginator[I, O, T] {
	return &Paginator[I, O, T]{
		op:       op,
		template: template,
		opts:     opts,
		token:    opts.StartingToken,
	}
}

// HasMorePages reports whether NextPage should be called again.
func (p *Paginator[I, O, T]) HasMorePages() bool {
	if p.done {
		return false
	}
	return p.pages == 0 || p.token != ""
}

// NextPage fetches the next page. After an error the paginator is finished
// and HasMorePages returns false.
func (p *Paginator[I, O, T]) NextPage(ctx context.Context) (Page[T], error) {
	if !p.HasMorePages() {
		return Page[T]{}, ErrNoMorePages
	}

	number := p.pages + 1
	if p.started.IsZero() {
		p.started = time.Now()
	}

	if err := p.validate(); err != nil {
		p.done = true
		return Page[T]{}, p.fail(number, err)
	}

	// Cancellation is only observed between pages.
	if err := ctx.Err(); err != nil {
		p.done = true
		return Page[T]{}, p.fail(number, err)
	}

	req := p.template
	var sent *string
	if p.token != "" {
		t := p.token
		sent = &t
	}
	p.op.SetToken(&req, sent)

	if p.opts.PageSize > 0 {
		if p.op.SetPageSize != nil {
			size := p.opts.PageSize
			p.op.SetPageSize(&req, &size)
		} else {
			log.Debugf("%s: no page size field, ignoring page size %d", p.op.Name, p.opts.PageSize)
		}
	}

	log.Debugf("%s: fetching page %d (token %q)", p.op.Name, number, p.token)

	out, err := p.op.Fetch(ctx, &req)
	if err != nil {
		p.done = true
		return Page[T]{}, p.fail(number, err)
	}
	if out == nil {
		p.done = true
		return Page[T]{}, p.fail(number, ErrNilOutput)
	}

	next := tokenValue(p.op.NextToken(out))
	if next != "" && next == p.token {
		p.done = true
		return Page[T]{}, p.fail(number, ErrRepeatedToken)
	}

	items := p.op.Items(out)
	p.pages = number
	p.emitted += len(items)
	p.token = next

	log.Debugf("%s: page %d, items %d, total %d, more %t",
		p.op.Name, number, len(items), p.emitted, next != "")

	switch {
	case next == "":
	case p.opts.NoPaginate:
		p.done = true
	case p.opts.MaxItems > 0 && p.emitted >= p.opts.MaxItems:
		log.Debugf("%s: item cap %d reached", p.op.Name, p.opts.MaxItems)
		p.done = true
	}

	return Page[T]{
		Number:    number,
		Items:     items,
		NextToken: next,
		Output:    out,
	}, nil
}

// Items returns a lazy iterator over every item of every remaining page. A
// terminal error is yielded once, with the zero item, and ends the sequence.
func (p *Paginator[I, O, T]) Items(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			for _, item := range page.Items {
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}

// Result summarizes the pages fetched so far.
func (p *Paginator[I, O, T]) Result() Result {
	r := Result{
		Operation: p.op.Name,
		Pages:     p.pages,
		Items:     p.emitted,
		NextToken: p.token,
	}
	if !p.started.IsZero() {
		r.Elapsed = time.Since(p.started)
	}
	return r
}

func (p *Paginator[I, O, T]) fail(page int, err error) error {
	return &PageError{
		Operation: p.op.Name,
		Page:      page,
		Emitted:   p.emitted,
		Err:       err,
	}
}

func (p *Paginator[I, O, T]) validate() error {
	var missing []string
	if p.op.Fetch == nil {
		missing = append(missing, "Fetch")
	}
	if p.op.Items == nil {
		missing = append(missing, "Items")
	}
	if p.op.NextToken == nil {
		missing = append(missing, "NextToken")
	}
	if p.op.SetToken == nil {
		missing = append(missing, "SetToken")
	}
	if len(missing) > 0 {
		return fmt.Errorf("incomplete operation, missing %s", strings.Join(missing, ", "))
	}
	return nil
}
