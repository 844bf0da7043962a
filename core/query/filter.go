// Copyright 2022 Board of Trustees of the University of Illinois.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package query

import (
	"directory-building-block/core/model"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	//KeySelect comma separated list of fields to return
	KeySelect string = "select"
	//KeySort comma separated list of fields, "-" prefix for descending
	KeySort string = "sort"
	//KeyPage 1-based page number
	KeyPage string = "page"
	//KeyLimit page size
	KeyLimit string = "limit"
)

// ReservedKeys are the control keys which never become filter conditions
var ReservedKeys = []string{KeySelect, KeySort, KeyPage, KeyLimit}

var keyPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_.]*)(?:\[([^\[\]]*)\])?$`)

// Condition is a single constraint on a field
type Condition struct {
	Field    string //query key without the operator
	Path     string //storage path
	Operator Operator
	Value    interface{} //coerced value, []interface{} for OpIn
}

// Filter is a conjunction of conditions
type Filter []Condition

// Paths gives the distinct storage paths referenced by the filter in order
func (f Filter) Paths() []string {
	paths := []string{}
	seen := map[string]bool{}
	for _, condition := range f {
		if !seen[condition.Path] {
			seen[condition.Path] = true
			paths = append(paths, condition.Path)
		}
	}
	return paths
}

// And gives a new filter with the condition appended
func (f Filter) And(condition Condition) Filter {
	result := make(Filter, len(f), len(f)+1)
	copy(result, f)
	return append(result, condition)
}

// Equals builds an equality condition for a trusted storage path
func Equals(path string, value interface{}) Condition {
	return Condition{Field: path, Path: path, Operator: OpEq, Value: value}
}

// IsReserved says if the key is a control key
func IsReserved(key string) bool {
	for _, reserved := range ReservedKeys {
		if key == reserved {
			return true
		}
	}
	return false
}

// CompileFilter translates query parameters into a filter over the schema fields.
// The reserved keys are skipped. Every key must name a schema field and every operator must be
// allowed for that field.
func CompileFilter(schema Schema, params map[string]string) (Filter, error) {
	keys := make([]string, 0, len(params))
	for key := range params {
		if IsReserved(key) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	filter := make(Filter, 0, len(keys))
	for _, key := range keys {
		condition, err := compileCondition(schema, key, params[key])
		if err != nil {
			return nil, err
		}
		filter = append(filter, *condition)
	}
	return filter, nil
}

func compileCondition(schema Schema, key string, raw string) (*Condition, error) {
	match := keyPattern.FindStringSubmatch(key)
	if match == nil {
		if name, _, found := strings.Cut(key, "["); found {
			if _, ok := schema.Field(name); ok {
				return nil, model.NewError(model.ErrorCodeInvalidFilterOperator, key, "malformed operator suffix", nil)
			}
		}
		return nil, model.NewError(model.ErrorCodeInvalidFilterField, key, "unknown field", nil)
	}
	name := match[1]
	op := OpEq
	if len(match[2]) > 0 {
		op = Operator(match[2])
	} else if strings.HasSuffix(key, "[]") {
		return nil, model.NewError(model.ErrorCodeInvalidFilterOperator, key, "empty operator", nil)
	}

	field, ok := schema.Field(name)
	if !ok || len(field.Operators) == 0 {
		return nil, model.NewError(model.ErrorCodeInvalidFilterField, name, fmt.Sprintf("%s cannot be filtered by %s", schema.Entity, name), nil)
	}
	if !isOperator(op) || !field.Allows(op) {
		return nil, model.NewError(model.ErrorCodeInvalidFilterOperator, key, fmt.Sprintf("operator %q is not allowed for %s", op, name), nil)
	}

	var value interface{}
	var err error
	if op == OpIn {
		value, err = coerceList(field, raw)
	} else {
		value, err = coerce(field, raw)
	}
	if err != nil {
		return nil, model.NewError(model.ErrorCodeInvalidFilterValue, key, fmt.Sprintf("expected %s", field.Type), err)
	}

	return &Condition{Field: name, Path: field.Path, Operator: op, Value: value}, nil
}

func isOperator(op Operator) bool {
	for _, known := range Operators {
		if known == op {
			return true
		}
	}
	return false
}

func coerceList(field Field, raw string) ([]interface{}, error) {
	parts := strings.Split(raw, ",")
	values := make([]interface{}, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len(part) == 0 {
			continue
		}
		value, err := coerce(field, part)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	return values, nil
}

func coerce(field Field, raw string) (interface{}, error) {
	switch field.Type {
	case TypeString, TypeID:
		return raw, nil
	case TypeNumber:
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, err
		}
		return value, nil
	case TypeInteger:
		value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, err
		}
		return value, nil
	case TypeBoolean:
		return strconv.ParseBool(strings.TrimSpace(raw))
	case TypeDate:
		return parseDate(strings.TrimSpace(raw))
	}
	return nil, fmt.Errorf("%s values cannot be compared", field.Type)
}

func parseDate(raw string) (time.Time, error) {
	value, err := time.Parse(time.RFC3339, raw)
	if err == nil {
		return value.UTC(), nil
	}
	value, err = time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	return value.UTC(), nil
}
