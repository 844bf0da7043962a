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

	"github.com/gorilla/mux"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
)

// AdminApisHandler handles the admin rest APIs implementation
type AdminApisHandler struct {
	coreAPIs *core.APIs
}

// recomputeAggregates repairs the derived fields of an organization
func (h AdminApisHandler) recomputeAggregates(l *logs.Log, r *http.Request, actor *model.Actor) logs.HTTPResponse {
	id := mux.Vars(r)["id"]

	organization, err := h.coreAPIs.Administration.AdmRecomputeAggregates(l, *actor, id)
	if err != nil {
		return errorResponse(l, err)
	}
	return successResponse(l, http.StatusOK, organizationToResponse(organization))
}

// NewAdminApisHandler creates new admin rest Handler instance
func NewAdminApisHandler(coreAPIs *core.APIs) AdminApisHandler {
	return AdminApisHandler{coreAPIs: coreAPIs}
}
