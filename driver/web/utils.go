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

package web

import (
	"directory-building-block/core/model"
	"directory-building-block/core/query"
	"directory-building-block/utils"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
)

const maxBodySize int64 = 1 << 20

type pageResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type paginationResponse struct {
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Total int64         `json:"total"`
	Next  *pageResponse `json:"next,omitempty"`
	Prev  *pageResponse `json:"prev,omitempty"`
}

type envelope struct {
	Success    bool                `json:"success"`
	Count      *int                `json:"count,omitempty"`
	Pagination *paginationResponse `json:"pagination,omitempty"`
	Data       interface{}         `json:"data,omitempty"`
	Error      string              `json:"error,omitempty"`
}

var errorStatuses = map[model.ErrorCode]int{
	model.ErrorCodeInvalidFilterField:    http.StatusBadRequest,
	model.ErrorCodeInvalidFilterOperator: http.StatusBadRequest,
	model.ErrorCodeInvalidFilterValue:    http.StatusBadRequest,
	model.ErrorCodeInvalidData:           http.StatusBadRequest,
	model.ErrorCodeGeocodeLookupFailed:   http.StatusBadRequest,
	model.ErrorCodeForbidden:             http.StatusForbidden,
	model.ErrorCodeNotFound:              http.StatusNotFound,
	model.ErrorCodeDuplicateReview:       http.StatusConflict,
	model.ErrorCodeDuplicateOrganization: http.StatusConflict,
	model.ErrorCodeCascadeDeleteFailed:   http.StatusInternalServerError,
}

func jsonResponse(code int, body []byte) logs.HTTPResponse {
	headers := map[string][]string{"Content-Type": {"application/json; charset=utf-8"}}
	return logs.HTTPResponse{ResponseCode: code, Headers: headers, Body: body}
}

func envelopeError(message string) []byte {
	data, err := json.Marshal(envelope{Error: message})
	if err != nil {
		return []byte(`{"success":false}`)
	}
	return data
}

// errorResponse maps the core errors to statuses, anything unclassified is a server error
func errorResponse(l *logs.Log, err error) logs.HTTPResponse {
	coreErr, ok := model.AsError(err)
	if !ok {
		l.Errorf("request failed: %v", err)
		return jsonResponse(http.StatusInternalServerError, envelopeError(http.StatusText(http.StatusInternalServerError)))
	}

	status, ok := errorStatuses[coreErr.Code]
	if !ok {
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		l.Errorf("request failed: %v", err)
		return jsonResponse(status, envelopeError(string(coreErr.Code)))
	}

	l.WarnError("request rejected", err)
	message := coreErr.Error()
	if coreErr.Code == model.ErrorCodeGeocodeLookupFailed {
		message = "address not found"
	}
	return jsonResponse(status, envelopeError(message))
}

func successResponse(l *logs.Log, code int, data interface{}) logs.HTTPResponse {
	body, err := json.Marshal(envelope{Success: true, Data: data})
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, logutils.TypeResponseBody, nil, err, http.StatusInternalServerError, false)
	}
	return jsonResponse(code, body)
}

// listResponse wraps a page, params carry the select the list was shaped with
func listResponse(l *logs.Log, items interface{}, count int, pagination *query.Pagination, params map[string]string) logs.HTTPResponse {
	data, err := shape(items, params[query.KeySelect])
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, logutils.TypeResponseBody, nil, err, http.StatusInternalServerError, false)
	}

	response := envelope{Success: true, Count: &count, Data: data}
	if pagination != nil {
		response.Pagination = &paginationResponse{Page: pagination.Page, Limit: pagination.Limit, Total: pagination.Total}
		if pagination.Next != nil {
			response.Pagination.Next = &pageResponse{Page: pagination.Next.Page, Limit: pagination.Next.Limit}
		}
		if pagination.Previous != nil {
			response.Pagination.Prev = &pageResponse{Page: pagination.Previous.Page, Limit: pagination.Previous.Limit}
		}
	}

	body, err := json.Marshal(response)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, logutils.TypeResponseBody, nil, err, http.StatusInternalServerError, false)
	}
	return jsonResponse(http.StatusOK, body)
}

// shape keeps the id, the relations and the top level keys of the selected fields
func shape(items interface{}, selection string) (interface{}, error) {
	fields := utils.SplitList(selection)
	if len(fields) == 0 {
		return items, nil
	}

	keep := map[string]bool{"id": true, model.RelationCourses: true, model.RelationOrganization: true}
	for _, field := range fields {
		keep[strings.SplitN(field, ".", 2)[0]] = true
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	var records []map[string]interface{}
	err = json.Unmarshal(data, &records)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		for key := range record {
			if !keep[key] {
				delete(record, key)
			}
		}
	}
	return records, nil
}

func queryParams(r *http.Request) map[string]string {
	params := map[string]string{}
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}

func decodeBody(r *http.Request, target interface{}) error {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}
