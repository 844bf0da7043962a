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

// PageRef points to a neighbour page
type PageRef struct {
	Page  int
	Limit int
}

// Pagination is the navigation metadata of a list response
type Pagination struct {
	Page     int
	Limit    int
	Total    int64
	Next     *PageRef
	Previous *PageRef
}

// NewPagination builds the navigation metadata for a page.
// Next is set only if page*limit < total, Previous only if page > 1.
func NewPagination(page int, limit int, total int64) Pagination {
	pagination := Pagination{Page: page, Limit: limit, Total: total}
	if int64(page)*int64(limit) < total {
		pagination.Next = &PageRef{Page: page + 1, Limit: limit}
	}
	if page > 1 {
		pagination.Previous = &PageRef{Page: page - 1, Limit: limit}
	}
	return pagination
}
