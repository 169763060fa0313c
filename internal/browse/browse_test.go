// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package browse

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/awsqgo/internal/attrs"
	"github.com/staranto/awsqgo/internal/output"
	"github.com/staranto/awsqgo/internal/pager"
)

type event struct {
	Arn     string
	Service string
}

// fakeService serves fixed pages, cursor "tN" leading to page N.
type fakeService struct {
	pages [][]event
	calls int
	fail  int
}

type req struct{ token *string }

type resp struct {
	items []event
	next  *string
}

func (f *fakeService) op() pager.Operation[req, resp, event] {
	return pager.Operation[req, resp, event]{
		Name: "fake:List",
		Fetch: func(_ context.Context, r *req) (*resp, error) {
			f.calls++
			if f.fail == f.calls {
				return nil, errors.New("throttled")
			}
			i := f.calls - 1
			out := &resp{items: f.pages[i]}
			if i+1 < len(f.pages) {
				t := "t" + string(rune('0'+i+1))
				out.next = &t
			}
			return out, nil
		},
		Items:     func(r *resp) []event { return r.items },
		NextToken: func(r *resp) *string { return r.next },
		SetToken:  func(r *req, t *string) { r.token = t },
	}
}

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drive runs cmd and feeds any pageMsg back into the model.
func drive(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if pm, ok := c().(pageMsg); ok {
				next, _ := m.Update(pm)
				m = next.(Model)
			}
		}
	case pageMsg:
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func newModel(t *testing.T, f *fakeService) Model {
	t.Helper()
	var al attrs.AttrList
	require.NoError(t, al.Set("Arn,Service:svc"))
	p := pager.NewPaginator(f.op(), req{}, pager.Options{})
	return New(context.Background(), FromPaginator(p), al, "events")
}

func TestModel_FetchesOnlyOnDemand(t *testing.T) {
	f := &fakeService{pages: [][]event{
		{{Arn: "a", Service: "EC2"}, {Arn: "b", Service: "S3"}},
		{{Arn: "c", Service: "RDS"}},
	}}
	m := newModel(t, f)

	m = drive(t, m, m.Init())
	assert.Equal(t, 1, f.calls)
	assert.Equal(t, 1, m.pages)
	require.Len(t, m.rows, 2)
	assert.Equal(t, []string{"Arn", "svc"}, m.headers)
	assert.Contains(t, m.View(), "n/space next page")

	next, cmd := m.Update(keyMsg("n"))
	m = next.(Model)
	assert.True(t, m.loading)
	m = drive(t, m, cmd)

	assert.Equal(t, 2, f.calls)
	assert.False(t, m.loading)
	require.Len(t, m.rows, 3)
	assert.Equal(t, "RDS", m.rows[2][1])
	assert.Contains(t, m.View(), "end of results")

	// Exhausted: more keys never fetch.
	next, cmd = m.Update(keyMsg(" "))
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Equal(t, 2, f.calls)
}

func TestModel_IgnoresKeysWhileLoading(t *testing.T) {
	f := &fakeService{pages: [][]event{{{Arn: "a"}}, {{Arn: "b"}}}}
	m := newModel(t, f)
	m = drive(t, m, m.Init())

	next, _ := m.Update(keyMsg("n"))
	m = next.(Model)
	require.True(t, m.loading)

	_, cmd := m.Update(keyMsg("n"))
	assert.Nil(t, cmd)
}

func TestModel_FirstFetchBlocksKeys(t *testing.T) {
	f := &fakeService{pages: [][]event{{{Arn: "a"}}, {{Arn: "b"}}}}
	m := newModel(t, f)
	require.True(t, m.loading)

	first := m.Init()
	require.NotNil(t, first)

	// The first page has not arrived yet.
	next, cmd := m.Update(keyMsg("n"))
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, f.calls)
	assert.Contains(t, m.View(), "fetching page 1")

	// The spinner animates during the first fetch.
	_, cmd = m.Update(m.spin.Tick())
	assert.NotNil(t, cmd)

	m = drive(t, m, first)
	assert.Equal(t, 1, f.calls)
	assert.False(t, m.loading)
	assert.Len(t, m.rows, 1)
}

func TestModel_NothingToFetch(t *testing.T) {
	m := New(context.Background(), &staticSource{}, nil, "")
	assert.False(t, m.loading)
	assert.Nil(t, m.Init())
}

func TestModel_ErrorStopsFetching(t *testing.T) {
	f := &fakeService{fail: 2, pages: [][]event{{{Arn: "a"}}, {{Arn: "b"}}}}
	m := newModel(t, f)
	m = drive(t, m, m.Init())

	next, cmd := m.Update(keyMsg("n"))
	m = drive(t, next.(Model), cmd)

	require.Error(t, m.Err())
	var pe *pager.PageError
	assert.ErrorAs(t, m.Err(), &pe)
	assert.Contains(t, m.View(), "throttled")
	assert.Len(t, m.rows, 1)

	_, cmd = m.Update(keyMsg("n"))
	assert.Nil(t, cmd)
}

func TestModel_Quit(t *testing.T) {
	m := newModel(t, &fakeService{pages: [][]event{{}}})
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_AlignsRowsToColumns(t *testing.T) {
	m := New(context.Background(), &staticSource{}, nil, "")
	require.NoError(t, m.addPage(output.Page{Number: 1, Items: []any{
		map[string]any{"a": 1, "b": "x"},
		map[string]any{"b": "y", "c": true},
	}}))

	assert.Equal(t, []string{"a", "b"}, m.headers)
	assert.Equal(t, [][]string{{"1", "x"}, {"-", "y"}}, toStrings(m.rows))
}

type staticSource struct{}

func (staticSource) HasMore() bool                             { return false }
func (staticSource) Next(context.Context) (output.Page, error) { return output.Page{}, nil }

func toStrings[R ~[]string](rows []R) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string(r))
	}
	return out
}
