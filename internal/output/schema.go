// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"time"

	"github.com/apex/log"
)

// Tag is one attribute path discovered on an item type, for --schema.
type Tag struct {
	Name string
	Kind string
}

// Print renders the tag into its display form.
func (t Tag) Print() string {
	if t.Kind == "" {
		return t.Name
	}
	return fmt.Sprintf("%-40s %s", t.Name, t.Kind)
}

const maxSchemaDepth = 2

var timeType = reflect.TypeOf(time.Time{})

// DumpSchema prints a sorted list of the attribute paths of typ that can be
// used with --attrs.
func DumpSchema(w io.Writer, typ reflect.Type) {
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	if typ.Kind() != reflect.Struct {
		fmt.Fprintf(w, "Items are %s values with dynamic keys; use --output=json to see them.\n", typ.Kind())
		return
	}

	tags := DumpSchemaWalker("", typ, 0)
	if len(tags) == 0 {
		log.Debugf("No fields found for type: %s", typ.Name())
		return
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})

	fmt.Fprintln(w, "Schema for", typ.Name(), "--")
	for _, tag := range tags {
		fmt.Fprintln(w, tag.Print())
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w,
		`Paths are gjson paths usable with --attrs. Lists use # (e.g. Tags.#.Key).
For the complete response use --output=raw.`)
}

// DumpSchemaWalker recursively walks the exported fields of a struct type.
func DumpSchemaWalker(holder string, typ reflect.Type, depth int) []Tag {
	tags := make([]Tag, 0)

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Name
		if holder != "" {
			name = holder + "." + name
		}

		ft := field.Type
		for ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}

		switch {
		case ft == timeType:
			tags = append(tags, Tag{Name: name, Kind: "time"})

		case ft.Kind() == reflect.Struct:
			if depth < maxSchemaDepth {
				tags = append(tags, DumpSchemaWalker(name, ft, depth+1)...)
			} else {
				tags = append(tags, Tag{Name: name, Kind: "object"})
			}

		case ft.Kind() == reflect.Slice:
			elem := ft.Elem()
			for elem.Kind() == reflect.Ptr {
				elem = elem.Elem()
			}
			if elem.Kind() == reflect.Struct && elem != timeType && depth < maxSchemaDepth {
				tags = append(tags, DumpSchemaWalker(name+".#", elem, depth+1)...)
			} else {
				tags = append(tags, Tag{Name: name, Kind: "list"})
			}

		case ft.Kind() == reflect.Map:
			tags = append(tags, Tag{Name: name, Kind: "map"})

		default:
			tags = append(tags, Tag{Name: name, Kind: ft.Kind().String()})
		}
	}

	return tags
}
