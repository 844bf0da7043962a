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

package model

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode classifies the errors the drivers adapters must report to the callers
type ErrorCode string

const (
	//ErrorCodeInvalidFilterField the query references a field which is not allowed
	ErrorCodeInvalidFilterField ErrorCode = "invalid-filter-field"
	//ErrorCodeInvalidFilterOperator the query uses an operator which is not allowed
	ErrorCodeInvalidFilterOperator ErrorCode = "invalid-filter-operator"
	//ErrorCodeInvalidFilterValue the query value cannot be converted to the field type
	ErrorCodeInvalidFilterValue ErrorCode = "invalid-filter-value"
	//ErrorCodeInvalidData the entity data is not valid
	ErrorCodeInvalidData ErrorCode = "invalid-data"
	//ErrorCodeGeocodeLookupFailed the address could not be resolved
	ErrorCodeGeocodeLookupFailed ErrorCode = "geocode-lookup-failed"
	//ErrorCodeDuplicateReview the user has already reviewed the organization
	ErrorCodeDuplicateReview ErrorCode = "duplicate-review"
	//ErrorCodeDuplicateOrganization an organization with the same name exists
	ErrorCodeDuplicateOrganization ErrorCode = "duplicate-organization"
	//ErrorCodeNotFound ...
	ErrorCodeNotFound ErrorCode = "not-found"
	//ErrorCodeForbidden ...
	ErrorCodeForbidden ErrorCode = "forbidden"
	//ErrorCodeAggregateRecomputeFailed is only logged
	ErrorCodeAggregateRecomputeFailed ErrorCode = "aggregate-recompute-failed"
	//ErrorCodeCascadeDeleteFailed ...
	ErrorCodeCascadeDeleteFailed ErrorCode = "cascade-delete-failed"
)

// Error is a classified error
type Error struct {
	Code   ErrorCode
	Field  string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	message := string(e.Code)
	if len(e.Field) > 0 {
		message = fmt.Sprintf("%s: %s", message, e.Field)
	}
	if len(e.Reason) > 0 {
		message = fmt.Sprintf("%s - %s", message, e.Reason)
	}
	if e.Err != nil {
		message = fmt.Sprintf("%s: %s", message, e.Err.Error())
	}
	return message
}

// Unwrap gives the cause
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a classified error
func NewError(code ErrorCode, field string, reason string, err error) *Error {
	return &Error{Code: code, Field: field, Reason: reason, Err: err}
}

// ErrorCodeOf gives the code of a classified error or an empty code
func ErrorCodeOf(err error) ErrorCode {
	var coreErr *Error
	if stderrors.As(err, &coreErr) {
		return coreErr.Code
	}
	return ""
}

// AsError gives the classified error in the chain
func AsError(err error) (*Error, bool) {
	var coreErr *Error
	if stderrors.As(err, &coreErr) {
		return coreErr, true
	}
	return nil, false
}
