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

//Organization
func organizationFromStorage(item *organization) model.Organization {
	if item == nil {
		return model.Organization{}
	}

	var courses []model.Course
	if item.Courses != nil {
		courses = coursesFromStorage(item.Courses)
	}

	return model.Organization{ID: item.ID, Name: item.Name, Slug: item.Slug, Description: item.Description,
		Website: item.Website, Phone: item.Phone, Email: item.Email, Location: locationFromStorage(item.Location),
		Careers: item.Careers, AverageCost: item.AverageCost, AverageRating: item.AverageRating, Photo: item.Photo,
		Housing: item.Housing, JobAssistance: item.JobAssistance, JobGuarantee: item.JobGuarantee, AcceptGi: item.AcceptGi,
		UserID: item.UserID, Courses: courses, DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func organizationsFromStorage(items []organization) []model.Organization {
	if len(items) == 0 {
		return make([]model.Organization, 0)
	}

	res := make([]model.Organization, len(items))
	for i := range items {
		res[i] = organizationFromStorage(&items[i])
	}
	return res
}

func organizationToStorage(item *model.Organization) *organization {
	if item == nil {
		return nil
	}

	return &organization{ID: item.ID, Name: item.Name, Slug: item.Slug, Description: item.Description,
		Website: item.Website, Phone: item.Phone, Email: item.Email, Location: locationToStorage(item.Location),
		Careers: item.Careers, AverageCost: item.AverageCost, AverageRating: item.AverageRating, Photo: item.Photo,
		Housing: item.Housing, JobAssistance: item.JobAssistance, JobGuarantee: item.JobGuarantee, AcceptGi: item.AcceptGi,
		UserID: item.UserID, DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

//Location
func locationFromStorage(item *location) *model.Location {
	if item == nil {
		return nil
	}
	return &model.Location{Type: item.Type, Coordinates: item.Coordinates, FormattedAddress: item.FormattedAddress,
		Street: item.Street, City: item.City, State: item.State, Zipcode: item.Zipcode, Country: item.Country}
}

func locationToStorage(item *model.Location) *location {
	if item == nil {
		return nil
	}
	return &location{Type: item.Type, Coordinates: item.Coordinates, FormattedAddress: item.FormattedAddress,
		Street: item.Street, City: item.City, State: item.State, Zipcode: item.Zipcode, Country: item.Country}
}
