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

// Services exposes APIs for the driver adapters
type Services interface {
	SerGetOrganizations(l *logs.Log, params map[string]string) ([]model.Organization, *query.Pagination, error)
	SerGetOrganization(l *logs.Log, id string) (*model.Organization, error)
	SerGetOrganizationsInRadius(l *logs.Log, zipcode string, distance float64, unit string) ([]model.Organization, error)
	SerCreateOrganization(l *logs.Log, actor model.Actor, organization model.Organization, address string) (*model.Organization, error)
	SerUpdateOrganization(l *logs.Log, actor model.Actor, id string, update model.OrganizationUpdate) (*model.Organization, error)
	SerDeleteOrganization(l *logs.Log, actor model.Actor, id string) error

	SerGetCourses(l *logs.Log, organizationID *string, params map[string]string) ([]model.Course, *query.Pagination, error)
	SerGetCourse(l *logs.Log, id string) (*model.Course, error)
	SerCreateCourse(l *logs.Log, actor model.Actor, organizationID string, course model.Course) (*model.Course, error)
	SerUpdateCourse(l *logs.Log, actor model.Actor, id string, update model.CourseUpdate) (*model.Course, error)
	SerDeleteCourse(l *logs.Log, actor model.Actor, id string) error

	SerGetReviews(l *logs.Log, organizationID *string, params map[string]string) ([]model.Review, *query.Pagination, error)
	SerGetReview(l *logs.Log, id string) (*model.Review, error)
	SerCreateReview(l *logs.Log, actor model.Actor, organizationID string, review model.Review) (*model.Review, error)
	SerUpdateReview(l *logs.Log, actor model.Actor, id string, update model.ReviewUpdate) (*model.Review, error)
	SerDeleteReview(l *logs.Log, actor model.Actor, id string) error
}

// Administration exposes administration APIs for the driver adapters
type Administration interface {
	AdmRecomputeAggregates(l *logs.Log, actor model.Actor, organizationID string) (*model.Organization, error)
}

// Storage is used by core to storage data - DB storage adapter, file storage adapter etc
type Storage interface {
	//Organizations
	FindOrganizations(list query.List) ([]model.Organization, error)
	CountOrganizations(filter query.Filter) (int64, error)
	FindOrganization(id string) (*model.Organization, error)
	FindOrganizationsWithinRadius(longitude float64, latitude float64, radians float64) ([]model.Organization, error)
	InsertOrganization(organization model.Organization) error
	UpdateOrganization(organization model.Organization) error
	UpdateOrganizationAverageCost(id string, averageCost *float64) error
	UpdateOrganizationAverageRating(id string, averageRating *float64) error
	DeleteOrganization(id string) error

	//Courses
	FindCourses(list query.List) ([]model.Course, error)
	CountCourses(filter query.Filter) (int64, error)
	FindCourse(id string) (*model.Course, error)
	InsertCourse(course model.Course) error
	UpdateCourse(course model.Course) error
	DeleteCourse(id string) error
	DeleteCoursesByOrganization(organizationID string) (int64, error)
	AverageCourseTuition(organizationID string, excludeID string) (*float64, error)

	//Reviews
	FindReviews(list query.List) ([]model.Review, error)
	CountReviews(filter query.Filter) (int64, error)
	FindReview(id string) (*model.Review, error)
	InsertReview(review model.Review) error
	UpdateReview(review model.Review) error
	DeleteReview(id string) error
	DeleteReviewsByOrganization(organizationID string) (int64, error)
	AverageReviewRating(organizationID string, excludeID string) (*float64, error)
}

// Geocoder resolves addresses to coordinates
type Geocoder interface {
	Geocode(address string) ([]model.GeocodeResult, error)
}
