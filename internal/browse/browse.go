// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package browse is the --interactive page browser. Pages are only fetched
// when asked for, one request at a time.
package browse

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/staranto/awsqgo/internal/attrs"
	"github.com/staranto/awsqgo/internal/output"
	"github.com/staranto/awsqgo/internal/pager"
)

const maxColumnWidth = 40

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Source yields pages on demand.
type Source interface {
	HasMore() bool
	Next(context.Context) (output.Page, error)
}

type paginatorSource[I, O, T any] struct {
	p *pager.Paginator[I, O, T]
}

// FromPaginator adapts a pager.Paginator to a Source.
func FromPaginator[I, O, T any](p *pager.Paginator[I, O, T]) Source {
	return paginatorSource[I, O, T]{p: p}
}

func (s paginatorSource[I, O, T]) HasMore() bool { return s.p.HasMorePages() }

func (s paginatorSource[I, O, T]) Next(ctx context.Context) (output.Page, error) {
	page, err := s.p.NextPage(ctx)
	if err != nil {
		return output.Page{}, err
	}
	return output.PageOf(page.Number, page.Items, page.Output), nil
}

type pageMsg struct {
	page output.Page
	err  error
}

// Model is the bubbletea model of the browser.
type Model struct {
	ctx   context.Context
	src   Source
	attrs attrs.AttrList
	title string

	table   table.Model
	spin    spinner.Model
	headers []string
	rows    []table.Row

	pages   int
	loading bool
	err     error
}

// New returns a Model that fetches the first page on Init. The model is
// loading from the start since Init cannot update it.
func New(ctx context.Context, src Source, al attrs.AttrList, title string) Model {
	return Model{
		ctx:     ctx,
		src:     src,
		attrs:   al,
		title:   title,
		table:   table.New(table.WithFocused(true), table.WithHeight(20)),
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		loading: src.HasMore(),
	}
}

// Err is the terminal fetch error, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	if !m.src.HasMore() {
		return nil
	}
	return tea.Batch(m.spin.Tick, m.fetch())
}

func (m Model) fetch() tea.Cmd {
	ctx, src := m.ctx, m.src
	return func() tea.Msg {
		page, err := src.Next(ctx)
		return pageMsg{page: page, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "n", " ":
			if m.loading || m.err != nil || !m.src.HasMore() {
				return m, nil
			}
			m.loading = true
			return m, tea.Batch(m.spin.Tick, m.fetch())
		}

	case pageMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.pages = msg.page.Number
		if err := m.addPage(msg.page); err != nil {
			m.err = err
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-4, 3))
		m.table.SetWidth(msg.Width)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// addPage projects the page's items and appends them. Columns come from the
// first non-empty page; later rows are aligned to them by title.
func (m *Model) addPage(p output.Page) error {
	for _, item := range p.Items {
		row, err := output.Project(item, m.attrs)
		if err != nil {
			return err
		}

		if m.headers == nil {
			cols := make([]table.Column, 0, len(row))
			for _, c := range row {
				m.headers = append(m.headers, c.Key)
				cols = append(cols, table.Column{Title: c.Key, Width: len(c.Key)})
			}
			m.table.SetColumns(cols)
		}

		values := make(map[string]string, len(row))
		for _, c := range row {
			values[c.Key] = output.InterfaceToString(c.Value, "-")
		}
		cells := make(table.Row, len(m.headers))
		for i, h := range m.headers {
			v, ok := values[h]
			if !ok {
				v = "-"
			}
			cells[i] = v
		}
		m.rows = append(m.rows, cells)
	}

	m.fitColumns()
	m.table.SetRows(m.rows)
	return nil
}

func (m *Model) fitColumns() {
	if len(m.headers) == 0 {
		return
	}
	cols := make([]table.Column, len(m.headers))
	for i, h := range m.headers {
		w := len(h)
		for _, r := range m.rows {
			w = max(w, len(r[i]))
		}
		cols[i] = table.Column{Title: h, Width: min(w, maxColumnWidth)}
	}
	m.table.SetColumns(cols)
}

func (m Model) View() string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(m.title + "\n")
	}
	b.WriteString(m.table.View() + "\n")
	b.WriteString(m.status())
	return b.String()
}

func (m Model) status() string {
	switch {
	case m.err != nil:
		return errorStyle.Render("error: " + m.err.Error())
	case m.loading:
		return m.spin.View() + statusStyle.Render(fmt.Sprintf(" fetching page %d", m.pages+1))
	}

	more := "end of results"
	if m.src.HasMore() {
		more = "n/space next page"
	}
	return statusStyle.Render(fmt.Sprintf("page %d, %d items, %s, q quit", m.pages, len(m.rows), more))
}

// Run browses src until the user quits and returns the first fetch error.
func Run(ctx context.Context, src Source, al attrs.AttrList, title string) error {
	prog := tea.NewProgram(New(ctx, src, al, title), tea.WithContext(ctx), tea.WithAltScreen())
	final, err := prog.Run()
	if err != nil {
		return fmt.Errorf("interactive browser failed: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
