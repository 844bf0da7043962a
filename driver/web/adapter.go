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
	"directory-building-block/metrics"
	"directory-building-block/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
)

// Adapter entity
type Adapter struct {
	host string
	port string

	rateLimitRequests int
	rateLimitWindow   time.Duration

	auth *Auth

	defaultApisHandler  DefaultApisHandler
	servicesApisHandler ServicesApisHandler
	adminApisHandler    AdminApisHandler

	coreAPIs *core.APIs

	logger *logs.Logger
}

// handlerFunc receives the authenticated actor, nil on public routes without a token
type handlerFunc = func(*logs.Log, *http.Request, *model.Actor) logs.HTTPResponse

// Start starts the module
func (we Adapter) Start() {
	router := we.routes()

	we.logger.Infof("listening on %s:%s", we.host, we.port)
	err := http.ListenAndServe(":"+we.port, router)
	if err != nil {
		we.logger.Fatalf("Cannot start the web adapter: %v", err)
	}
}

func (we Adapter) routes() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// handle apis
	subRouter := router.PathPrefix("/directory").Subrouter()
	subRouter.Use(we.rateLimit())
	subRouter.HandleFunc("/version", we.wrapFunc(we.defaultApisHandler.version, false)).Methods("GET")

	//organizations
	subRouter.HandleFunc("/organizations", we.wrapFunc(we.servicesApisHandler.getOrganizations, false)).Methods("GET")
	subRouter.HandleFunc("/organizations", we.wrapFunc(we.servicesApisHandler.createOrganization, true)).Methods("POST")
	subRouter.HandleFunc("/organizations/radius/{zipcode}/{distance}", we.wrapFunc(we.servicesApisHandler.getOrganizationsInRadius, false)).Methods("GET")
	subRouter.HandleFunc("/organizations/{id}", we.wrapFunc(we.servicesApisHandler.getOrganization, false)).Methods("GET")
	subRouter.HandleFunc("/organizations/{id}", we.wrapFunc(we.servicesApisHandler.updateOrganization, true)).Methods("PUT")
	subRouter.HandleFunc("/organizations/{id}", we.wrapFunc(we.servicesApisHandler.deleteOrganization, true)).Methods("DELETE")

	//courses
	subRouter.HandleFunc("/courses", we.wrapFunc(we.servicesApisHandler.getCourses, false)).Methods("GET")
	subRouter.HandleFunc("/organizations/{id}/courses", we.wrapFunc(we.servicesApisHandler.getCourses, false)).Methods("GET")
	subRouter.HandleFunc("/organizations/{id}/courses", we.wrapFunc(we.servicesApisHandler.createCourse, true)).Methods("POST")
	subRouter.HandleFunc("/courses/{id}", we.wrapFunc(we.servicesApisHandler.getCourse, false)).Methods("GET")
	subRouter.HandleFunc("/courses/{id}", we.wrapFunc(we.servicesApisHandler.updateCourse, true)).Methods("PUT")
	subRouter.HandleFunc("/courses/{id}", we.wrapFunc(we.servicesApisHandler.deleteCourse, true)).Methods("DELETE")

	//reviews
	subRouter.HandleFunc("/reviews", we.wrapFunc(we.servicesApisHandler.getReviews, false)).Methods("GET")
	subRouter.HandleFunc("/organizations/{id}/reviews", we.wrapFunc(we.servicesApisHandler.getReviews, false)).Methods("GET")
	subRouter.HandleFunc("/organizations/{id}/reviews", we.wrapFunc(we.servicesApisHandler.createReview, true)).Methods("POST")
	subRouter.HandleFunc("/reviews/{id}", we.wrapFunc(we.servicesApisHandler.getReview, false)).Methods("GET")
	subRouter.HandleFunc("/reviews/{id}", we.wrapFunc(we.servicesApisHandler.updateReview, true)).Methods("PUT")
	subRouter.HandleFunc("/reviews/{id}", we.wrapFunc(we.servicesApisHandler.deleteReview, true)).Methods("DELETE")

	///admin ///
	adminSubrouter := subRouter.PathPrefix("/admin").Subrouter()
	adminSubrouter.HandleFunc("/organizations/{id}/aggregates", we.wrapFunc(we.adminApisHandler.recomputeAggregates, true)).Methods("POST")

	return router
}

func (we Adapter) rateLimit() mux.MiddlewareFunc {
	if we.rateLimitRequests <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(we.rateLimitRequests, we.rateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, req *http.Request) {
			metrics.APIRateLimitHits.WithLabelValues(routeTemplate(req)).Inc()
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write(envelopeError("too many requests"))
		}))
}

func (we Adapter) wrapFunc(handler handlerFunc, authenticated bool) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		started := time.Now()
		utils.LogRequest(we.logger, req)
		logObj := we.logger.NewRequestLog(req)

		var response logs.HTTPResponse
		actor, status, err := we.auth.check(req, authenticated)
		if err != nil {
			logObj.WarnError("authentication failed", err)
			response = jsonResponse(status, envelopeError(http.StatusText(status)))
		} else {
			response = handler(logObj, req, actor)
		}

		logObj.SendHTTPResponse(w, response)
		logObj.RequestComplete()
		metrics.RecordAPIRequest(req.Method, routeTemplate(req), response.ResponseCode, time.Since(started))
	}
}

func routeTemplate(req *http.Request) string {
	route := mux.CurrentRoute(req)
	if route == nil {
		return req.URL.Path
	}
	template, err := route.GetPathTemplate()
	if err != nil {
		return req.URL.Path
	}
	return template
}

// NewWebAdapter creates new WebAdapter instance
func NewWebAdapter(host string, port string, coreAPIs *core.APIs, auth *Auth, rateLimitRequests int, rateLimitWindow time.Duration, logger *logs.Logger) Adapter {
	defaultApisHandler := NewDefaultApisHandler(coreAPIs)
	servicesApisHandler := NewServicesApisHandler(coreAPIs)
	adminApisHandler := NewAdminApisHandler(coreAPIs)

	return Adapter{host: host, port: port, rateLimitRequests: rateLimitRequests, rateLimitWindow: rateLimitWindow, auth: auth,
		defaultApisHandler: defaultApisHandler, servicesApisHandler: servicesApisHandler, adminApisHandler: adminApisHandler,
		coreAPIs: coreAPIs, logger: logger}
}
