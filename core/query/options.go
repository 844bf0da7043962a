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
	"math"
	"strconv"
	"strings"
)

const (
	//DefaultPage ...
	DefaultPage int = 1
	//DefaultLimit ...
	DefaultLimit int = 25
	//DefaultMaxLimit ...
	DefaultMaxLimit int = 100

	//IDPath is the identity storage path, always returned
	IDPath string = "_id"
)

// SortField orders the results by a storage path
type SortField struct {
	Path       string
	Descending bool
}

// Expansion requests a related entity to be embedded in the results.
// Forward relations embed the referenced entity, reverse relations embed the referencing entities.
type Expansion struct {
	Relation string
	Fields   []string //storage paths of the related entity, empty for all
}

// Options shape the results of a list query
type Options struct {
	Select []string //storage paths, empty for all
	Fields []string //selected query keys in request order
	Sort   []SortField
	Page   int
	Limit  int
}

// Skip gives the number of records before the page
func (o Options) Skip() int64 {
	return int64(o.Page-1) * int64(o.Limit)
}

// Defaults configure the list queries of an entity
type Defaults struct {
	Limit    int
	MaxLimit int
	Sort     []SortField //applied when no sort is requested
}

// List is a compiled list query: one filter, the shaping options and the requested expansions
type List struct {
	Filter  Filter
	Options Options
	Expand  []Expansion
}

// BuildList compiles the query parameters into a list query
func BuildList(schema Schema, params map[string]string, defaults Defaults, expand ...Expansion) (*List, error) {
	filter, err := CompileFilter(schema, params)
	if err != nil {
		return nil, err
	}
	options, err := BuildOptions(schema, params, defaults)
	if err != nil {
		return nil, err
	}
	return &List{Filter: filter, Options: *options, Expand: expand}, nil
}

// BuildOptions reads the reserved keys: select, sort, page and limit
func BuildOptions(schema Schema, params map[string]string, defaults Defaults) (*Options, error) {
	if defaults.Limit <= 0 {
		defaults.Limit = DefaultLimit
	}
	if defaults.MaxLimit <= 0 {
		defaults.MaxLimit = DefaultMaxLimit
	}

	options := Options{Page: DefaultPage, Limit: defaults.Limit}

	if raw, ok := params[KeySelect]; ok {
		fields, paths, err := parseSelect(schema, raw)
		if err != nil {
			return nil, err
		}
		options.Fields = fields
		options.Select = paths
	}

	if raw, ok := params[KeySort]; ok {
		sortFields, err := parseSort(schema, raw)
		if err != nil {
			return nil, err
		}
		options.Sort = sortFields
	}
	if len(options.Sort) == 0 {
		options.Sort = append(options.Sort, defaults.Sort...)
	}
	options.Sort = withStableOrder(options.Sort)

	if raw, ok := params[KeyPage]; ok {
		page, err := parsePositive(KeyPage, raw)
		if err != nil {
			return nil, err
		}
		options.Page = page
	}

	if raw, ok := params[KeyLimit]; ok {
		limit, err := parsePositive(KeyLimit, raw)
		if err != nil {
			return nil, err
		}
		if limit > defaults.MaxLimit {
			return nil, model.NewError(model.ErrorCodeInvalidFilterValue, KeyLimit, fmt.Sprintf("must not exceed %d", defaults.MaxLimit), nil)
		}
		options.Limit = limit
	}

	//page*limit has to stay representable for the skip and the pagination metadata
	if options.Page > math.MaxInt/options.Limit {
		return nil, model.NewError(model.ErrorCodeInvalidFilterValue, KeyPage, fmt.Sprintf("must not exceed %d", math.MaxInt/options.Limit), nil)
	}

	return &options, nil
}

func parseSelect(schema Schema, raw string) ([]string, []string, error) {
	fields := []string{}
	paths := []string{IDPath}
	seen := map[string]bool{IDPath: true}
	for _, name := range splitList(raw) {
		if name == "id" {
			continue
		}
		field, ok := schema.Field(name)
		if !ok {
			return nil, nil, model.NewError(model.ErrorCodeInvalidFilterField, KeySelect, fmt.Sprintf("%s cannot be selected", name), nil)
		}
		fields = append(fields, name)
		if !seen[field.Path] {
			seen[field.Path] = true
			paths = append(paths, field.Path)
		}
	}
	if len(fields) == 0 {
		return nil, nil, model.NewError(model.ErrorCodeInvalidFilterValue, KeySelect, "no fields", nil)
	}
	return fields, paths, nil
}

func parseSort(schema Schema, raw string) ([]SortField, error) {
	sortFields := []SortField{}
	for _, name := range splitList(raw) {
		descending := strings.HasPrefix(name, "-")
		name = strings.TrimPrefix(name, "-")
		field, ok := schema.Field(name)
		if !ok || !field.Sortable {
			return nil, model.NewError(model.ErrorCodeInvalidFilterField, KeySort, fmt.Sprintf("%s cannot be sorted by %s", schema.Entity, name), nil)
		}
		sortFields = append(sortFields, SortField{Path: field.Path, Descending: descending})
	}
	return sortFields, nil
}

// withStableOrder appends the identity as the last sort key so equal keys keep a fixed order between pages
func withStableOrder(sortFields []SortField) []SortField {
	for _, sortField := range sortFields {
		if sortField.Path == IDPath {
			return sortFields
		}
	}
	return append(sortFields, SortField{Path: IDPath})
}

func parsePositive(key string, raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, model.NewError(model.ErrorCodeInvalidFilterValue, key, "expected integer", err)
	}
	if value < 1 {
		return 0, model.NewError(model.ErrorCodeInvalidFilterValue, key, "must be at least 1", nil)
	}
	return value, nil
}

func splitList(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if len(item) > 0 {
			items = append(items, item)
		}
	}
	return items
}
