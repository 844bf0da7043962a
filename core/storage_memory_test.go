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
	"errors"
	"sync"
)

// memoryStorage keeps the entities in maps so that the write paths can be checked end to end
type memoryStorage struct {
	mu sync.Mutex

	organizations map[string]model.Organization
	courses       map[string]model.Course
	reviews       map[string]model.Review

	//called before an average is read, lets tests widen the read-then-write window
	beforeAverage func()
	//called before the children of an organization are deleted
	beforeDeleteChildren func()
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{organizations: map[string]model.Organization{}, courses: map[string]model.Course{}, reviews: map[string]model.Review{}}
}

func (s *memoryStorage) FindOrganizations(list query.List) ([]model.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []model.Organization{}
	for _, organization := range s.organizations {
		result = append(result, organization)
	}
	return result, nil
}

func (s *memoryStorage) CountOrganizations(filter query.Filter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, organization := range s.organizations {
		matches := true
		for _, condition := range filter {
			if condition.Path == "user_id" && organization.UserID != condition.Value {
				matches = false
			}
		}
		if matches {
			count++
		}
	}
	return count, nil
}

func (s *memoryStorage) FindOrganization(id string) (*model.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	organization, ok := s.organizations[id]
	if !ok {
		return nil, nil
	}
	return &organization, nil
}

func (s *memoryStorage) FindOrganizationsWithinRadius(longitude float64, latitude float64, radians float64) ([]model.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []model.Organization{}
	for _, organization := range s.organizations {
		if organization.Location == nil {
			continue
		}
		distance, _ := HaversineDistance(latitude, longitude, organization.Location.Latitude(), organization.Location.Longitude(), UnitKilometers)
		if distance/earthRadiusKm <= radians {
			result = append(result, organization)
		}
	}
	return result, nil
}

func (s *memoryStorage) InsertOrganization(organization model.Organization) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.organizations {
		if existing.Name == organization.Name {
			return model.NewError(model.ErrorCodeDuplicateOrganization, "name", organization.Name, nil)
		}
	}
	s.organizations[organization.ID] = organization
	return nil
}

func (s *memoryStorage) UpdateOrganization(organization model.Organization) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.organizations[organization.ID]
	if !ok {
		return errors.New("missing organization")
	}
	organization.AverageCost = existing.AverageCost
	organization.AverageRating = existing.AverageRating
	s.organizations[organization.ID] = organization
	return nil
}

func (s *memoryStorage) UpdateOrganizationAverageCost(id string, averageCost *float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	organization, ok := s.organizations[id]
	if !ok {
		return nil
	}
	organization.AverageCost = averageCost
	s.organizations[id] = organization
	return nil
}

func (s *memoryStorage) UpdateOrganizationAverageRating(id string, averageRating *float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	organization, ok := s.organizations[id]
	if !ok {
		return nil
	}
	organization.AverageRating = averageRating
	s.organizations[id] = organization
	return nil
}

func (s *memoryStorage) DeleteOrganization(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.organizations, id)
	return nil
}

func (s *memoryStorage) FindCourses(list query.List) ([]model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []model.Course{}
	for _, course := range s.courses {
		result = append(result, course)
	}
	return result, nil
}

func (s *memoryStorage) CountCourses(filter query.Filter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.courses)), nil
}

func (s *memoryStorage) FindCourse(id string) (*model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	course, ok := s.courses[id]
	if !ok {
		return nil, nil
	}
	return &course, nil
}

func (s *memoryStorage) InsertCourse(course model.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses[course.ID] = course
	return nil
}

func (s *memoryStorage) UpdateCourse(course model.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses[course.ID] = course
	return nil
}

func (s *memoryStorage) DeleteCourse(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.courses, id)
	return nil
}

func (s *memoryStorage) DeleteCoursesByOrganization(organizationID string) (int64, error) {
	if s.beforeDeleteChildren != nil {
		s.beforeDeleteChildren()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var deleted int64
	for id, course := range s.courses {
		if course.OrganizationID == organizationID {
			delete(s.courses, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *memoryStorage) AverageCourseTuition(organizationID string, excludeID string) (*float64, error) {
	if s.beforeAverage != nil {
		s.beforeAverage()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	values := []float64{}
	for id, course := range s.courses {
		if course.OrganizationID == organizationID && id != excludeID {
			values = append(values, course.Tuition)
		}
	}
	return average(values), nil
}

func (s *memoryStorage) FindReviews(list query.List) ([]model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []model.Review{}
	for _, review := range s.reviews {
		result = append(result, review)
	}
	return result, nil
}

func (s *memoryStorage) CountReviews(filter query.Filter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.reviews)), nil
}

func (s *memoryStorage) FindReview(id string) (*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	review, ok := s.reviews[id]
	if !ok {
		return nil, nil
	}
	return &review, nil
}

func (s *memoryStorage) InsertReview(review model.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.reviews {
		if existing.OrganizationID == review.OrganizationID && existing.UserID == review.UserID {
			return model.NewError(model.ErrorCodeDuplicateReview, "user", review.UserID, nil)
		}
	}
	s.reviews[review.ID] = review
	return nil
}

func (s *memoryStorage) UpdateReview(review model.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews[review.ID] = review
	return nil
}

func (s *memoryStorage) DeleteReview(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reviews, id)
	return nil
}

func (s *memoryStorage) DeleteReviewsByOrganization(organizationID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var deleted int64
	for id, review := range s.reviews {
		if review.OrganizationID == organizationID {
			delete(s.reviews, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *memoryStorage) AverageReviewRating(organizationID string, excludeID string) (*float64, error) {
	if s.beforeAverage != nil {
		s.beforeAverage()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	values := []float64{}
	for id, review := range s.reviews {
		if review.OrganizationID == organizationID && id != excludeID {
			values = append(values, float64(review.Rating))
		}
	}
	return average(values), nil
}

func (s *memoryStorage) countChildren(organizationID string) (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	courses, reviews := 0, 0
	for _, course := range s.courses {
		if course.OrganizationID == organizationID {
			courses++
		}
	}
	for _, review := range s.reviews {
		if review.OrganizationID == organizationID {
			reviews++
		}
	}
	return courses, reviews
}

func average(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := 0.0
	for _, value := range values {
		sum += value
	}
	result := sum / float64(len(values))
	return &result
}
