// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/staranto/awsqgo/internal/attrs"
)

// Formats accepted by New.
var Formats = []string{"text", "json", "yaml", "raw"}

// Page is one page of results as the emitters see it.
type Page struct {
	Number int
	Items  []any
	// Output is the untouched service response.
	Output any
}

// PageOf boxes typed items into a Page.
func PageOf[T any](number int, items []T, out any) Page {
	boxed := make([]any, 0, len(items))
	for _, it := range items {
		boxed = append(boxed, it)
	}
	return Page{Number: number, Items: boxed, Output: out}
}

// Settings choose and tune an Emitter.
type Settings struct {
	Format string
	Attrs  attrs.AttrList
	Titles bool
	Color  bool
}

// Emitter writes pages as they arrive.
type Emitter interface {
	Emit(Page) error
}

// New returns the Emitter for s.Format.
func New(w io.Writer, s Settings) (Emitter, error) {
	switch s.Format {
	case "", "text":
		return &textEmitter{w: w, s: s}, nil
	case "json":
		return &jsonEmitter{w: w, s: s}, nil
	case "yaml":
		return &yamlEmitter{w: w, s: s}, nil
	case "raw":
		return &rawEmitter{w: w}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q, must be one of %v", s.Format, Formats)
	}
}

// jsonEmitter writes one JSON object per line. Without attrs the full item
// is written.
type jsonEmitter struct {
	w io.Writer
	s Settings
}

func (e *jsonEmitter) Emit(p Page) error {
	full := len(e.s.Attrs.Included()) == 0
	for _, item := range p.Items {
		var v any = item
		if !full {
			row, err := Project(item, e.s.Attrs)
			if err != nil {
				return err
			}
			v = row
		}
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal item: %w", err)
		}
		if _, err := fmt.Fprintf(e.w, "%s\n", b); err != nil {
			return err
		}
	}
	return nil
}

// yamlEmitter writes one YAML document per non-empty page.
type yamlEmitter struct {
	w    io.Writer
	s    Settings
	docs int
}

func (e *yamlEmitter) Emit(p Page) error {
	if len(p.Items) == 0 {
		return nil
	}

	seq := make([]yaml.MapSlice, 0, len(p.Items))
	for _, item := range p.Items {
		row, err := Project(item, e.s.Attrs)
		if err != nil {
			return err
		}
		ms := make(yaml.MapSlice, 0, len(row))
		for _, c := range row {
			ms = append(ms, yaml.MapItem{Key: c.Key, Value: c.Value})
		}
		seq = append(seq, ms)
	}

	out, err := yaml.Marshal(seq)
	if err != nil {
		return fmt.Errorf("failed to marshal page %d: %w", p.Number, err)
	}
	if e.docs > 0 {
		if _, err := io.WriteString(e.w, "---\n"); err != nil {
			return err
		}
	}
	e.docs++
	_, err = e.w.Write(out)
	return err
}

// rawEmitter writes each service response as one JSON line.
type rawEmitter struct {
	w io.Writer
}

func (e *rawEmitter) Emit(p Page) error {
	b, err := json.Marshal(p.Output)
	if err != nil {
		return fmt.Errorf("failed to marshal page %d: %w", p.Number, err)
	}
	_, err = fmt.Fprintf(e.w, "%s\n", b)
	return err
}

// textEmitter writes a table per non-empty page. Titles, when enabled, are
// only printed above the first one.
type textEmitter struct {
	w      io.Writer
	s      Settings
	titled bool
}

func (e *textEmitter) Emit(p Page) error {
	if len(p.Items) == 0 {
		return nil
	}

	var headers []string
	rows := make([][]string, 0, len(p.Items))
	for _, item := range p.Items {
		row, err := Project(item, e.s.Attrs)
		if err != nil {
			return err
		}
		if headers == nil {
			for _, c := range row {
				headers = append(headers, c.Key)
			}
		}
		cells := make([]string, 0, len(row))
		for _, c := range row {
			cells = append(cells, InterfaceToString(c.Value, "-"))
		}
		rows = append(rows, cells)
	}

	TableWriter(e.w, headers, rows, TableOptions{
		Titles: e.s.Titles && !e.titled,
		Color:  e.s.Color,
	})
	e.titled = true
	return nil
}
