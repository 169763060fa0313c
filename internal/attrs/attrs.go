// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package attrs

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"

	"github.com/staranto/awsqgo/internal/config"
)

// Attr represents each of the columns to be included in the output.  Key is a
// gjson path into the JSON form of one result item.
type Attr struct {
	// The gjson path to extract from the item.
	Key string
	// Should this Attr be included in output?  A ! prefix on the spec hides a
	// default column.
	Include bool
	// The key to use in the output.  This is also the column title when
	// output=text.
	OutputKey string
	// Transformation spec to apply to the output value.
	TransformSpec string
}

var lengthRe = regexp.MustCompile(`-?\d+`)

// Transform applies the TransformSpec to value.  Strings support every
// transform; numbers support b (bytes) and pass through otherwise.
func (a *Attr) Transform(value interface{}) interface{} {

	// Humanized byte counts work off numbers, which gjson hands back as
	// float64.
	if strings.ContainsAny(a.TransformSpec, "bB") {
		switch v := value.(type) {
		case float64:
			if v >= 0 {
				value = humanize.Bytes(uint64(v))
			}
		case int64:
			if v >= 0 {
				value = humanize.Bytes(uint64(v))
			}
		case int:
			if v >= 0 {
				value = humanize.Bytes(uint64(v))
			}
		case string:
			if n, err := strconv.ParseUint(v, 10, 64); err == nil {
				value = humanize.Bytes(n)
			}
		}
	}

	result, ok := value.(string)
	if !ok {
		return value
	}

	// Relative time, e.g. "3 hours ago".  Wins over t.
	if strings.ContainsAny(a.TransformSpec, "hH") {
		if t, err := parseTime(result); err == nil {
			result = humanize.Time(t)
		}
	} else if strings.ContainsAny(a.TransformSpec, "tT") {
		// Convert UTC time to local, but only when we've been told which TZ to
		// use.  Otherwise the value is used as is.
		if tz := timezone(); tz != "" {
			loc, err := time.LoadLocation(tz)
			if err == nil {
				t, err := parseTime(result)
				if err == nil {
					result = t.In(loc).Format("2006-01-02T15:04:05MST")
				} else {
					log.Debugf("failed to parse time: %s", result)
				}
			}
		}
	}

	// We need to know which case transformation appears last.  This covers the
	// case where there has been a global case transformation prepended to the
	// attrs transformation and, thus, allows the attr's to carry more weight.
	// IOW...  --attrs '*::U,Key::l' will be lower case.
	lastL := strings.LastIndexAny(a.TransformSpec, "lL")
	lastU := strings.LastIndexAny(a.TransformSpec, "uU")

	if lastL > lastU {
		result = strings.ToLower(result)
	} else if lastU > lastL {
		result = strings.ToUpper(result)
	}

	// Is it a length-based transformation?
	if a.TransformSpec != "" {
		// Same logic as above re: case.  This allows a more specific length
		// transformation to override a global one.
		match := lengthRe.FindAllString(a.TransformSpec, -1)
		if len(match) != 0 {
			l, _ := strconv.Atoi(match[len(match)-1])
			abs := int(math.Abs(float64(l)))
			if len(result) > abs && abs > 0 {
				if l < 0 && abs > 4 {
					lr := abs/2 - 1
					result = result[0:lr] + ".." + result[len(result)-lr:]
				} else {
					result = result[:abs]
				}
			}
		}
	}

	return result
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// timezone is AWSQ_TIMEZONE, then the config file's timezone key, then TZ.
func timezone() string {
	if tz := os.Getenv("AWSQ_TIMEZONE"); tz != "" {
		return tz
	}
	if tz, _ := config.GetString("timezone", ""); tz != "" {
		return tz
	}
	return os.Getenv("TZ")
}

type AttrList []Attr

// Return a string representation of the AttrList.  This should match the format
// of the original --attrs flag.
func (a *AttrList) String() string {
	result := make([]string, 0, len(*a))
	for _, attr := range *a {
		result = append(result, fmt.Sprintf("%s:%s:%s", attr.Key, attr.OutputKey, attr.TransformSpec))
	}
	return strings.Join(result, ",")
}

// Set parses each comma separated spec and adds it to the AttrList.
func (a *AttrList) Set(value string) error {
	if value == "" || value == "*" {
		return nil
	}

	const (
		jsonIdx = iota
		outputIdx
		transformIdx
	)

	// There are three : delimited fields in each spec.  The first is the gjson
	// path.  The second is the key to use in the output.  The third is the
	// transformation spec.  The latter two are optional and the output key
	// defaults to the last segment of the path.
	specs := strings.Split(value, ",")
specloop:
	for _, spec := range specs {
		if strings.TrimSpace(spec) == "" {
			continue
		}

		attr := Attr{
			Include: true,
		}

		fields := strings.Split(spec, ":")
		if len(fields) > 3 {
			return fmt.Errorf("invalid attr spec %q: too many fields", spec)
		}

		// The first field is the path.  If it begins with a !, it is excluded
		// from the output.  A leading . is accepted and dropped.
		attr.Key = strings.TrimSpace(fields[jsonIdx])
		if strings.HasPrefix(attr.Key, "!") {
			attr.Include = false
			attr.Key = attr.Key[1:]
		}
		attr.Key = strings.TrimPrefix(attr.Key, ".")
		if attr.Key == "" {
			return fmt.Errorf("invalid attr spec %q: empty key", spec)
		}

		if attr.Key == "*" {
			attr.Include = false
		}

		if len(fields) == 1 || strings.TrimSpace(fields[outputIdx]) == "" {
			segments := strings.Split(attr.Key, ".")
			attr.OutputKey = segments[len(segments)-1]
		} else {
			attr.OutputKey = strings.TrimSpace(fields[outputIdx])
		}

		if len(fields) > transformIdx {
			attr.TransformSpec = strings.TrimSpace(fields[transformIdx])
		}

		// If the attr already exists in the list (because it's one of the defaults
		// for cmd or the user double-entered it) just apply the OutputKey, Include
		// and TransformSpec to the existing Attr.
		for i := range *a {
			if (*a)[i].Key == attr.Key || (*a)[i].OutputKey == attr.Key {
				(*a)[i].Include = attr.Include
				(*a)[i].OutputKey = attr.OutputKey
				(*a)[i].TransformSpec = attr.TransformSpec
				continue specloop
			}
		}

		*a = append(*a, attr)
	}

	return nil
}

// SetGlobalTransformSpec inserts a global transform spec into the front of all
// attrs in the list.
func (alist *AttrList) SetGlobalTransformSpec() error {
	spec := ""

	// Find the global transform spec.  If there is more than one, we're not
	// dealing with it and just taking the first.
	for a := range *alist {
		if (*alist)[a].Key == "*" {
			spec = (*alist)[a].TransformSpec
			break
		}
	}

	if spec == "" {
		return nil
	}

	for a := range *alist {
		if (*alist)[a].Key == "*" {
			continue
		}
		(*alist)[a].TransformSpec = spec + "," + (*alist)[a].TransformSpec
	}

	return nil
}

// Included returns the attrs that produce output columns.
func (a AttrList) Included() AttrList {
	out := make(AttrList, 0, len(a))
	for _, attr := range a {
		if attr.Include {
			out = append(out, attr)
		}
	}
	return out
}

func (a *AttrList) Type() string {
	return "list"
}
