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

package storage

import "directory-building-block/core/model"

//Course
func courseFromStorage(item *course) model.Course {
	if item == nil {
		return model.Course{}
	}

	return model.Course{ID: item.ID, Title: item.Title, Description: item.Description, Weeks: item.Weeks,
		Tuition: item.Tuition, MinimumSkill: item.MinimumSkill, ScholarshipAvailable: item.ScholarshipAvailable,
		OrganizationID: item.OrganizationID, Organization: parentFromStorage(item.Organization), UserID: item.UserID,
		DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func coursesFromStorage(items []course) []model.Course {
	if len(items) == 0 {
		return make([]model.Course, 0)
	}

	res := make([]model.Course, len(items))
	for i := range items {
		res[i] = courseFromStorage(&items[i])
	}
	return res
}

func courseToStorage(item *model.Course) *course {
	if item == nil {
		return nil
	}

	return &course{ID: item.ID, Title: item.Title, Description: item.Description, Weeks: item.Weeks,
		Tuition: item.Tuition, MinimumSkill: item.MinimumSkill, ScholarshipAvailable: item.ScholarshipAvailable,
		OrganizationID: item.OrganizationID, UserID: item.UserID, DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

//Review
func reviewFromStorage(item *review) model.Review {
	if item == nil {
		return model.Review{}
	}

	return model.Review{ID: item.ID, Title: item.Title, Text: item.Text, Rating: item.Rating,
		OrganizationID: item.OrganizationID, Organization: parentFromStorage(item.Organization), UserID: item.UserID,
		DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func reviewsFromStorage(items []review) []model.Review {
	if len(items) == 0 {
		return make([]model.Review, 0)
	}

	res := make([]model.Review, len(items))
	for i := range items {
		res[i] = reviewFromStorage(&items[i])
	}
	return res
}

func reviewToStorage(item *model.Review) *review {
	if item == nil {
		return nil
	}

	return &review{ID: item.ID, Title: item.Title, Text: item.Text, Rating: item.Rating,
		OrganizationID: item.OrganizationID, UserID: item.UserID, DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

// parentFromStorage converts an expanded organization, it is nil when the relation was not expanded
func parentFromStorage(item *organization) *model.Organization {
	if item == nil {
		return nil
	}
	parent := organizationFromStorage(item)
	return &parent
}
