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
	"directory-building-block/core"
	"directory-building-block/core/model"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
)

// ServicesApisHandler handles the rest APIs implementation
type ServicesApisHandler struct {
	coreAPIs *core.APIs
}

func invalidBody(err error) error {
	return model.NewError(model.ErrorCodeInvalidData, "body", "malformed json", err)
}

// scope gives the organization a nested list is limited to
func scope(r *http.Request) *string {
	id, ok := mux.Vars(r)["id"]
	if !ok {
		return nil
	}
	return &id
}

//Organizations

func (h ServicesApisHandler) getOrganizations(l *logs.Log, r *http.Request, actor *model.Actor) logs.HTTPResponse {
	params := queryParams(r)
	organizations, pagination, err := h.coreAPIs.Services.SerGetOrganizations(l, params)
	if err != nil {
		return errorResponse(l, err)
	}
	return listResponse(l, organizationsToResponse(organizations), len(organizations), pagination, params)
}

func (h ServicesApisHandler) getOrganization(l *logs.Log, r *http.Request, actor *model.Actor) logs.HTTPResponse {
	organization, err := h.coreAPIs.Services.SerGetOrganization(l, mux.Vars(r)["id"])
	if err != nil {
		return errorResponse(l, err)
	}
	return successResponse(l, http.StatusOK, organizationToResponse(organization))
}

func (h ServicesApisHandler) getOrganizationsInRadius(l *logs.Log, r *http.Request, actor *model.Actor) logs.HTTPResponse {
	vars := mux.Vars(r)
	distance, err := strconv.ParseFloat(vars["distance"], 64)
	if err != nil {
		return errorResponse(l, model.NewError(model.ErrorCodeInvalidFilterValue, "distance", "not a number", err))
	}

	organizations, err := h.coreAPIs.Services.SerGetOrganizationsInRadius(l, vars["zipcode"], distance, r.URL.Query().Get("unit"))
	if err != nil {
		return errorResponse(l, err)
	}
	return listResponse(l, organizationsToResponse(organizations), len(organizations), nil, nil)
}

func (h ServicesApisHandler) createOrganization(l *logs.Log, r *http.Request, actor *model.Actor) logs.HTTPResponse {
	var requestData organizationRequest
	err := decodeBody(r, &requestData)
	if err != nil {
		return errorResponse(l, invalidBody(err))
	}

	organization, address := organizationFromRequest(requestData)
	created, err := h.coreAPIs.Services.SerCreateOrganization(l, *actor, organization, address)
	if err != nil {
		return errorResponse(l, err)
	}
	return successResponse(l, http.StatusCreated, organizationToResponse(created))
}

func (h ServicesApisHandler) updateOrganization(l *logs.Log, r *http.Request, actor *model.Actor) logs.HTTPResponse {
	var requestData organizationUpdateRequest
	err := decodeBody(r, &requestData)
	if err != nil {
		return errorResponse(l, invalidBody(err))
	}

	updated, err := h.coreAPIs.Services.SerUpdateOrganization(l, *actor, mux.Vars(r)["id"], organizationUpdateFromRequest(requestData))
	if err != nil {
		return errorResponse(l, err)
	}
	return successResponse(l, http.StatusOK, organizationToResponse(updated))
}

func (h ServicesApisHandler) deleteOrganization(l *logs.Log, r *http.Request, actor *model.Actor) logs.HTTPResponse {
	err := h.coreAPIs.Services.SerDeleteOrganization(l, *actor, mux.Vars(r)["id"])
	if err != nil {
		return errorResponse(l, err)
	}
	return successResponse(l, http.StatusOK, map[string]interface{}{})
}

//Courses

func (h ServicesApisHandler) getCourses(l *logs.Log, r *http.Request, actor *model.Actor) logs.HTTPResponse {
	params := queryParams(r)
	courses, pagination, err := h.coreAPIs.Services.SerGetCourses(l, scope(r), params)
	if err != nil {
		return errorResponse(l, err)
	}
	return listResponse(l, coursesToResponse(courses), len(courses), pagination, params)
}

func (h ServicesApisHandler) getCourse(l *logs.Log, r *http.Request, actor *model.Actor) logs.HTTPResponse {
	course, err := h.coreAPIs.Services.SerGetCourse(l, mux.Vars(r)["id"])
	if err != nil {
		return errorResponse(l, err)
	}
	return successResponse(l, http.StatusOK, courseToResponse(course))
}

func (h ServicesApisHandler) createCourse(l *logs.Log, r *http.Request, actor *model.Actor) logs.HTTPResponse {
	var requestData courseRequest
	err := decodeBody(r, &requestData)
	if err != nil {
		return errorResponse(l, invalidBody(err))
	}

	created, err := h.coreAPIs.Services.SerCreateCourse(l, *actor, mux.Vars(r)["id"], courseFromRequest(requestData))
	if err != nil {
		return errorResponse(l, err)
	}
	return successResponse(l, http.StatusCreated, courseToResponse(created))
}

func (h ServicesApisHandler) updateCourse(l *logs.Log, r *http.Request, actor *model.Actor) logs.HTTPResponse {
	var requestData courseUpdateRequest
	err := decodeBody(r, &requestData)
	if err != nil {
		return errorResponse(l, invalidBody(err))
	}

	updated, err := h.coreAPIs.Services.SerUpdateCourse(l, *actor, mux.Vars(r)["id"], courseUpdateFromRequest(requestData))
	if err != nil {
		return errorResponse(l, err)
	}
	return successResponse(l, http.StatusOK, courseToResponse(updated))
}

func (h ServicesApisHandler) deleteCourse(l *logs.Log, r *http.Request, actor *model.Actor) logs.HTTPResponse {
	err := h.coreAPIs.Services.SerDeleteCourse(l, *actor, mux.Vars(r)["id"])
	if err != nil {
		return errorResponse(l, err)
	}
	return successResponse(l, http.StatusOK, map[string]interface{}{})
}

//Reviews

func (h ServicesApisHandler) getReviews(l *logs.Log, r *http.Request, actor *model.Actor) logs.HTTPResponse {
	params := queryParams(r)
	reviews, pagination, err := h.coreAPIs.Services.SerGetReviews(l, scope(r), params)
	if err != nil {
		return errorResponse(l, err)
	}
	return listResponse(l, reviewsToResponse(reviews), len(reviews), pagination, params)
}

func (h ServicesApisHandler) getReview(l *logs.Log, r *http.Request, actor *model.Actor) logs.HTTPResponse {
	review, err := h.coreAPIs.Services.SerGetReview(l, mux.Vars(r)["id"])
	if err != nil {
		return errorResponse(l, err)
	}
	return successResponse(l, http.StatusOK, reviewToResponse(review))
}

func (h ServicesApisHandler) createReview(l *logs.Log, r *http.Request, actor *model.Actor) logs.HTTPResponse {
	var requestData reviewRequest
	err := decodeBody(r, &requestData)
	if err != nil {
		return errorResponse(l, invalidBody(err))
	}

	created, err := h.coreAPIs.Services.SerCreateReview(l, *actor, mux.Vars(r)["id"], reviewFromRequest(requestData))
	if err != nil {
		return errorResponse(l, err)
	}
	return successResponse(l, http.StatusCreated, reviewToResponse(created))
}

func (h ServicesApisHandler) updateReview(l *logs.Log, r *http.Request, actor *model.Actor) logs.HTTPResponse {
	var requestData reviewUpdateRequest
	err := decodeBody(r, &requestData)
	if err != nil {
		return errorResponse(l, invalidBody(err))
	}

	updated, err := h.coreAPIs.Services.SerUpdateReview(l, *actor, mux.Vars(r)["id"], reviewUpdateFromRequest(requestData))
	if err != nil {
		return errorResponse(l, err)
	}
	return successResponse(l, http.StatusOK, reviewToResponse(updated))
}

func (h ServicesApisHandler) deleteReview(l *logs.Log, r *http.Request, actor *model.Actor) logs.HTTPResponse {
	err := h.coreAPIs.Services.SerDeleteReview(l, *actor, mux.Vars(r)["id"])
	if err != nil {
		return errorResponse(l, err)
	}
	return successResponse(l, http.StatusOK, map[string]interface{}{})
}

// NewServicesApisHandler creates new rest services Handler instance
func NewServicesApisHandler(coreAPIs *core.APIs) ServicesApisHandler {
	return ServicesApisHandler{coreAPIs: coreAPIs}
}
