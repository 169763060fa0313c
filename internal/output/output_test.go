// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/awsqgo/internal/attrs"
)

type owner struct {
	Name string
}

type tag struct {
	Key   *string
	Value *string
}

type object struct {
	Key          *string
	Size         *int64
	Owner        *owner
	Tags         []tag
	LastModified *time.Time
	hidden       string //nolint:unused
}

func ptr[T any](v T) *T { return &v }

func mustAttrs(t *testing.T, spec string) attrs.AttrList {
	t.Helper()
	var al attrs.AttrList
	require.NoError(t, al.Set(spec))
	return al
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		emptyVal string
		want     string
	}{
		{name: "string", value: "hello", want: "hello"},
		{name: "empty string", value: "", want: ""},
		{name: "int", value: 42, want: "42"},
		{name: "int64", value: int64(7), want: "7"},
		{name: "whole float64", value: 42.0, want: "42"},
		{name: "float64 with decimal", value: 42.5, want: "42.5"},
		{name: "bool true", value: true, want: "true"},
		{name: "bool false is kept", value: false, want: "false"},
		{name: "zero int is kept", value: 0, want: "0"},
		{name: "nil default", value: nil, want: ""},
		{name: "nil custom", value: nil, emptyVal: "-", want: "-"},
		{name: "slice", value: []string{"a", "b"}, want: `["a","b"]`},
		{name: "map", value: map[string]int{"x": 1}, want: `{"x":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.emptyVal != "" {
				got = InterfaceToString(tt.value, tt.emptyVal)
			} else {
				got = InterfaceToString(tt.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProject(t *testing.T) {
	item := object{
		Key:   ptr("logs/app.log"),
		Size:  ptr(int64(1500000)),
		Owner: &owner{Name: "alice"},
	}

	row, err := Project(item, mustAttrs(t, "Key,Size::b,Owner.Name:owner:u,!Tags"))
	require.NoError(t, err)
	assert.Equal(t, Row{
		{Key: "Key", Value: "logs/app.log"},
		{Key: "Size", Value: "1.5 MB"},
		{Key: "owner", Value: "ALICE"},
	}, row)
}

func TestProject_NoAttrsKeepsDocumentOrder(t *testing.T) {
	row, err := Project(object{Key: ptr("k")}, nil)
	require.NoError(t, err)

	var keys []string
	for _, c := range row {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{"Key", "Size", "Owner", "Tags", "LastModified"}, keys)
	assert.Equal(t, "k", row[0].Value)
	assert.Nil(t, row[1].Value)
}

func TestRow_MarshalJSON(t *testing.T) {
	b, err := Row{{Key: "z", Value: 1}, {Key: "a", Value: "x"}, {Key: "m", Value: nil}}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":"x","m":null}`, string(b))
}

func pageOf(n int, items ...object) Page {
	p := Page{Number: n, Output: map[string]any{"page": n}}
	for _, it := range items {
		p.Items = append(p.Items, it)
	}
	return p
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Settings{Format: "csv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestJSONEmitter(t *testing.T) {
	var buf bytes.Buffer
	e, err := New(&buf, Settings{Format: "json", Attrs: mustAttrs(t, "Key,Size")})
	require.NoError(t, err)

	require.NoError(t, e.Emit(pageOf(1, object{Key: ptr("a"), Size: ptr(int64(1))}, object{Key: ptr("b")})))
	require.NoError(t, e.Emit(pageOf(2)))
	require.NoError(t, e.Emit(pageOf(3, object{Key: ptr("c"), Size: ptr(int64(3))})))

	assert.Equal(t,
		`{"Key":"a","Size":1}`+"\n"+
			`{"Key":"b","Size":null}`+"\n"+
			`{"Key":"c","Size":3}`+"\n",
		buf.String())
}

func TestJSONEmitter_FullItemsWithoutAttrs(t *testing.T) {
	var buf bytes.Buffer
	e, err := New(&buf, Settings{Format: "json"})
	require.NoError(t, err)

	require.NoError(t, e.Emit(pageOf(1, object{Key: ptr("a"), Owner: &owner{Name: "bob"}})))
	assert.JSONEq(t, `{"Key":"a","Size":null,"Owner":{"Name":"bob"},"Tags":null,"LastModified":null}`, buf.String())
}

func TestYAMLEmitter_DocumentPerPage(t *testing.T) {
	var buf bytes.Buffer
	e, err := New(&buf, Settings{Format: "yaml", Attrs: mustAttrs(t, "Key,Size")})
	require.NoError(t, err)

	require.NoError(t, e.Emit(pageOf(1, object{Key: ptr("a"), Size: ptr(int64(1))})))
	require.NoError(t, e.Emit(pageOf(2)))
	require.NoError(t, e.Emit(pageOf(3, object{Key: ptr("b"), Size: ptr(int64(2))})))

	assert.Equal(t, "- Key: a\n  Size: 1\n---\n- Key: b\n  Size: 2\n", buf.String())
}

func TestRawEmitter(t *testing.T) {
	var buf bytes.Buffer
	e, err := New(&buf, Settings{Format: "raw"})
	require.NoError(t, err)

	require.NoError(t, e.Emit(pageOf(1)))
	require.NoError(t, e.Emit(pageOf(2)))
	assert.Equal(t, "{\"page\":1}\n{\"page\":2}\n", buf.String())
}

func TestTextEmitter_TitlesOnlyOnFirstPage(t *testing.T) {
	var buf bytes.Buffer
	e, err := New(&buf, Settings{Format: "text", Titles: true, Attrs: mustAttrs(t, "Key:Name,Size")})
	require.NoError(t, err)

	require.NoError(t, e.Emit(pageOf(1)))
	require.NoError(t, e.Emit(pageOf(2, object{Key: ptr("alpha"), Size: ptr(int64(10))})))
	require.NoError(t, e.Emit(pageOf(3, object{Key: ptr("beta")})))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "Name"))
	assert.Less(t, strings.Index(out, "Name"), strings.Index(out, "alpha"))
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "beta")
	assert.Contains(t, out, "-")
}

func TestTextEmitter_NoTitles(t *testing.T) {
	var buf bytes.Buffer
	e, err := New(&buf, Settings{Format: "text", Attrs: mustAttrs(t, "Key:Name")})
	require.NoError(t, err)

	require.NoError(t, e.Emit(pageOf(1, object{Key: ptr("alpha")})))
	assert.NotContains(t, buf.String(), "Name")
	assert.Contains(t, buf.String(), "alpha")
}

func TestDumpSchemaWalker(t *testing.T) {
	tags := DumpSchemaWalker("", reflect.TypeOf(object{}), 0)

	got := map[string]string{}
	for _, tg := range tags {
		got[tg.Name] = tg.Kind
	}

	assert.Equal(t, "string", got["Key"])
	assert.Equal(t, "int64", got["Size"])
	assert.Equal(t, "string", got["Owner.Name"])
	assert.Equal(t, "string", got["Tags.#.Key"])
	assert.Equal(t, "time", got["LastModified"])
	assert.NotContains(t, got, "hidden")
}

func TestDumpSchema(t *testing.T) {
	var buf bytes.Buffer
	DumpSchema(&buf, reflect.TypeOf(&object{}))
	assert.Contains(t, buf.String(), "Schema for object --")
	assert.Contains(t, buf.String(), "Owner.Name")

	buf.Reset()
	DumpSchema(&buf, reflect.TypeOf(map[string]any{}))
	assert.Contains(t, buf.String(), "dynamic keys")
}

func TestTag_Print(t *testing.T) {
	assert.Equal(t, "Key", Tag{Name: "Key"}.Print())
	assert.True(t, strings.HasPrefix(Tag{Name: "Key", Kind: "string"}.Print(), "Key "))
	assert.True(t, strings.HasSuffix(Tag{Name: "Key", Kind: "string"}.Print(), " string"))
}

func TestDumpExamples(t *testing.T) {
	var buf bytes.Buffer
	DumpExamples(&buf, nil)
	assert.Empty(t, buf.String())

	DumpExamples(&buf, [][2]string{{"awsq s3 objects --bucket b", "list a bucket"}})
	assert.Contains(t, buf.String(), "Command")
	assert.Contains(t, buf.String(), "awsq s3 objects --bucket b")
}

func TestGetColors(t *testing.T) {
	header, even, odd := getColors("colors")

	assert.IsType(t, "", header)
	assert.IsType(t, "", even)
	assert.IsType(t, "", odd)
}

func BenchmarkInterfaceToString(b *testing.B) {
	values := []interface{}{
		"string",
		42,
		42.5,
		true,
		nil,
		[]string{"a", "b"},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range values {
			InterfaceToString(v)
		}
	}
}

func TestPageOf(t *testing.T) {
	resp := struct{ Next string }{"t1"}
	p := PageOf(2, []owner{{Name: "a"}, {Name: "b"}}, resp)

	assert.Equal(t, 2, p.Number)
	assert.Equal(t, []any{owner{Name: "a"}, owner{Name: "b"}}, p.Items)
	assert.Equal(t, resp, p.Output)

	empty := PageOf[owner](1, nil, nil)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
}
