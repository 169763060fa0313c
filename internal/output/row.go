// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/staranto/awsqgo/internal/attrs"
)

// Cell is one output column of a row.
type Cell struct {
	Key   string
	Value any
}

// Row keeps columns in attr order.
type Row []Cell

// Project reduces item to the included attrs, applying each attr's transform.
// With no included attrs every top-level field of the item is returned in
// document order.
func Project(item any, al attrs.AttrList) (Row, error) {
	doc, err := itemJSON(item)
	if err != nil {
		return nil, err
	}

	included := al.Included()
	if len(included) == 0 {
		var row Row
		doc.ForEach(func(k, v gjson.Result) bool {
			row = append(row, Cell{Key: k.String(), Value: v.Value()})
			return true
		})
		return row, nil
	}

	row := make(Row, 0, len(included))
	for _, a := range included {
		v := doc.Get(a.Key).Value()
		if a.TransformSpec != "" {
			v = a.Transform(v)
		}
		row = append(row, Cell{Key: a.OutputKey, Value: v})
	}
	return row, nil
}

func itemJSON(item any) (gjson.Result, error) {
	b, err := json.Marshal(item)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to marshal item: %w", err)
	}
	return gjson.ParseBytes(b), nil
}

// MarshalJSON writes the row as an object with keys in column order.
func (r Row) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, c := range r {
		if i > 0 {
			buf = append(buf, ',')
		}
		k, err := json.Marshal(c.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(c.Value)
		if err != nil {
			return nil, err
		}
		buf = append(buf, k...)
		buf = append(buf, ':')
		buf = append(buf, v...)
	}
	return append(buf, '}'), nil
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	switch value := value.(type) {
	case nil:
		return emptyValue[0]
	case string:
		if value == "" {
			return emptyValue[0]
		}
		return value
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		// gjson hands every JSON number back as float64.
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
