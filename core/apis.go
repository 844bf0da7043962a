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

package core

import (
	"directory-building-block/core/model"
	"directory-building-block/core/query"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
)

// APIs exposes to the drivers adapters access to the core functionality
type APIs struct {
	Services       Services       //expose to the drivers adapters
	Administration Administration //expose to the drivers adapters

	app *application
}

// Start starts the core part of the application
func (c *APIs) Start() {
	c.app.start()
}

// GetVersion gives the service version
func (c *APIs) GetVersion() string {
	return c.app.version
}

// NewCoreAPIs creates new CoreAPIs
func NewCoreAPIs(env string, version string, build string, storage Storage, geocoder Geocoder, listDefaults query.Defaults, logger *logs.Logger) *APIs {
	//add application instance
	application := newApplication(env, version, build, storage, geocoder, listDefaults, logger)

	//add coreAPIs instance
	servicesImpl := &servicesImpl{app: application}
	administrationImpl := &administrationImpl{app: application}

	coreAPIs := APIs{Services: servicesImpl, Administration: administrationImpl, app: application}

	return &coreAPIs
}

///

//servicesImpl

type servicesImpl struct {
	app *application
}

func (s *servicesImpl) SerGetOrganizations(l *logs.Log, params map[string]string) ([]model.Organization, *query.Pagination, error) {
	return s.app.serGetOrganizations(l, params)
}

func (s *servicesImpl) SerGetOrganization(l *logs.Log, id string) (*model.Organization, error) {
	return s.app.serGetOrganization(l, id)
}

func (s *servicesImpl) SerGetOrganizationsInRadius(l *logs.Log, zipcode string, distance float64, unit string) ([]model.Organization, error) {
	return s.app.serGetOrganizationsInRadius(l, zipcode, distance, unit)
}

func (s *servicesImpl) SerCreateOrganization(l *logs.Log, actor model.Actor, organization model.Organization, address string) (*model.Organization, error) {
	return s.app.serCreateOrganization(l, actor, organization, address)
}

func (s *servicesImpl) SerUpdateOrganization(l *logs.Log, actor model.Actor, id string, update model.OrganizationUpdate) (*model.Organization, error) {
	return s.app.serUpdateOrganization(l, actor, id, update)
}

func (s *servicesImpl) SerDeleteOrganization(l *logs.Log, actor model.Actor, id string) error {
	return s.app.serDeleteOrganization(l, actor, id)
}

func (s *servicesImpl) SerGetCourses(l *logs.Log, organizationID *string, params map[string]string) ([]model.Course, *query.Pagination, error) {
	return s.app.serGetCourses(l, organizationID, params)
}

func (s *servicesImpl) SerGetCourse(l *logs.Log, id string) (*model.Course, error) {
	return s.app.serGetCourse(l, id)
}

func (s *servicesImpl) SerCreateCourse(l *logs.Log, actor model.Actor, organizationID string, course model.Course) (*model.Course, error) {
	return s.app.serCreateCourse(l, actor, organizationID, course)
}

func (s *servicesImpl) SerUpdateCourse(l *logs.Log, actor model.Actor, id string, update model.CourseUpdate) (*model.Course, error) {
	return s.app.serUpdateCourse(l, actor, id, update)
}

func (s *servicesImpl) SerDeleteCourse(l *logs.Log, actor model.Actor, id string) error {
	return s.app.serDeleteCourse(l, actor, id)
}

func (s *servicesImpl) SerGetReviews(l *logs.Log, organizationID *string, params map[string]string) ([]model.Review, *query.Pagination, error) {
	return s.app.serGetReviews(l, organizationID, params)
}

func (s *servicesImpl) SerGetReview(l *logs.Log, id string) (*model.Review, error) {
	return s.app.serGetReview(l, id)
}

func (s *servicesImpl) SerCreateReview(l *logs.Log, actor model.Actor, organizationID string, review model.Review) (*model.Review, error) {
	return s.app.serCreateReview(l, actor, organizationID, review)
}

func (s *servicesImpl) SerUpdateReview(l *logs.Log, actor model.Actor, id string, update model.ReviewUpdate) (*model.Review, error) {
	return s.app.serUpdateReview(l, actor, id, update)
}

func (s *servicesImpl) SerDeleteReview(l *logs.Log, actor model.Actor, id string) error {
	return s.app.serDeleteReview(l, actor, id)
}

///

//administrationImpl

type administrationImpl struct {
	app *application
}

func (s *administrationImpl) AdmRecomputeAggregates(l *logs.Log, actor model.Actor, organizationID string) (*model.Organization, error) {
	return s.app.admRecomputeAggregates(l, actor, organizationID)
}

///
