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
	"time"
)

type locationResponse struct {
	Type             string    `json:"type"`
	Coordinates      []float64 `json:"coordinates"`
	FormattedAddress string    `json:"formattedAddress"`
	Street           string    `json:"street"`
	City             string    `json:"city"`
	State            string    `json:"state"`
	Zipcode          string    `json:"zipcode"`
	Country          string    `json:"country"`
}

type organizationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Website     string `json:"website,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`

	Location *locationResponse `json:"location,omitempty"`
	Careers  []string          `json:"careers"`

	AverageCost   *float64 `json:"averageCost,omitempty"`
	AverageRating *float64 `json:"averageRating,omitempty"`

	Photo         string `json:"photo"`
	Housing       bool   `json:"housing"`
	JobAssistance bool   `json:"jobAssistance"`
	JobGuarantee  bool   `json:"jobGuarantee"`
	AcceptGi      bool   `json:"acceptGi"`

	User string `json:"user"`

	Courses *[]courseResponse `json:"courses,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// parentResponse is the embedded organization of a course or review
type parentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type courseResponse struct {
	ID                   string  `json:"id"`
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	Weeks                int     `json:"weeks"`
	Tuition              float64 `json:"tuition"`
	MinimumSkill         string  `json:"minimumSkill"`
	ScholarshipAvailable bool    `json:"scholarshipAvailable"`

	//organization id, or the organization itself when expanded
	Organization interface{} `json:"organization"`

	User string `json:"user"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type reviewResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`

	Organization interface{} `json:"organization"`

	User string `json:"user"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type organizationRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Website       string   `json:"website"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Address       string   `json:"address"`
	Careers       []string `json:"careers"`
	Housing       bool     `json:"housing"`
	JobAssistance bool     `json:"jobAssistance"`
	JobGuarantee  bool     `json:"jobGuarantee"`
	AcceptGi      bool     `json:"acceptGi"`
}

type organizationUpdateRequest struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Website       *string   `json:"website"`
	Phone         *string   `json:"phone"`
	Email         *string   `json:"email"`
	Address       *string   `json:"address"`
	Careers       *[]string `json:"careers"`
	Housing       *bool     `json:"housing"`
	JobAssistance *bool     `json:"jobAssistance"`
	JobGuarantee  *bool     `json:"jobGuarantee"`
	AcceptGi      *bool     `json:"acceptGi"`
}

type courseRequest struct {
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	Weeks                int     `json:"weeks"`
	Tuition              float64 `json:"tuition"`
	MinimumSkill         string  `json:"minimumSkill"`
	ScholarshipAvailable bool    `json:"scholarshipAvailable"`
}

type courseUpdateRequest struct {
	Title                *string  `json:"title"`
	Description          *string  `json:"description"`
	Weeks                *int     `json:"weeks"`
	Tuition              *float64 `json:"tuition"`
	MinimumSkill         *string  `json:"minimumSkill"`
	ScholarshipAvailable *bool    `json:"scholarshipAvailable"`
}

type reviewRequest struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

type reviewUpdateRequest struct {
	Title  *string `json:"title"`
	Text   *string `json:"text"`
	Rating *int    `json:"rating"`
}

//Organization

func organizationToResponse(item *model.Organization) *organizationResponse {
	if item == nil {
		return nil
	}

	var courses *[]courseResponse
	if item.Courses != nil {
		items := coursesToResponse(item.Courses)
		courses = &items
	}

	return &organizationResponse{ID: item.ID, Name: item.Name, Slug: item.Slug, Description: item.Description,
		Website: item.Website, Phone: item.Phone, Email: item.Email, Location: locationToResponse(item.Location),
		Careers: item.Careers, AverageCost: item.AverageCost, AverageRating: item.AverageRating, Photo: item.Photo,
		Housing: item.Housing, JobAssistance: item.JobAssistance, JobGuarantee: item.JobGuarantee, AcceptGi: item.AcceptGi,
		User: item.UserID, Courses: courses, CreatedAt: item.DateCreated, UpdatedAt: item.DateUpdated}
}

func organizationsToResponse(items []model.Organization) []organizationResponse {
	res := make([]organizationResponse, len(items))
	for i := range items {
		res[i] = *organizationToResponse(&items[i])
	}
	return res
}

func locationToResponse(item *model.Location) *locationResponse {
	if item == nil {
		return nil
	}
	return &locationResponse{Type: item.Type, Coordinates: item.Coordinates, FormattedAddress: item.FormattedAddress,
		Street: item.Street, City: item.City, State: item.State, Zipcode: item.Zipcode, Country: item.Country}
}

func organizationFromRequest(item organizationRequest) (model.Organization, string) {
	return model.Organization{Name: item.Name, Description: item.Description, Website: item.Website, Phone: item.Phone,
		Email: item.Email, Careers: item.Careers, Housing: item.Housing, JobAssistance: item.JobAssistance,
		JobGuarantee: item.JobGuarantee, AcceptGi: item.AcceptGi}, item.Address
}

func organizationUpdateFromRequest(item organizationUpdateRequest) model.OrganizationUpdate {
	return model.OrganizationUpdate{Name: item.Name, Description: item.Description, Website: item.Website, Phone: item.Phone,
		Email: item.Email, Address: item.Address, Careers: item.Careers, Housing: item.Housing, JobAssistance: item.JobAssistance,
		JobGuarantee: item.JobGuarantee, AcceptGi: item.AcceptGi}
}

// parentToResponse gives the embedded organization, or its id when not expanded
func parentToResponse(organizationID string, item *model.Organization) interface{} {
	if item == nil {
		return organizationID
	}
	return parentResponse{ID: item.ID, Name: item.Name, Description: item.Description}
}

//Course

func courseToResponse(item *model.Course) *courseResponse {
	if item == nil {
		return nil
	}
	return &courseResponse{ID: item.ID, Title: item.Title, Description: item.Description, Weeks: item.Weeks,
		Tuition: item.Tuition, MinimumSkill: item.MinimumSkill, ScholarshipAvailable: item.ScholarshipAvailable,
		Organization: parentToResponse(item.OrganizationID, item.Organization), User: item.UserID,
		CreatedAt: item.DateCreated, UpdatedAt: item.DateUpdated}
}

func coursesToResponse(items []model.Course) []courseResponse {
	res := make([]courseResponse, len(items))
	for i := range items {
		res[i] = *courseToResponse(&items[i])
	}
	return res
}

func courseFromRequest(item courseRequest) model.Course {
	return model.Course{Title: item.Title, Description: item.Description, Weeks: item.Weeks, Tuition: item.Tuition,
		MinimumSkill: item.MinimumSkill, ScholarshipAvailable: item.ScholarshipAvailable}
}

func courseUpdateFromRequest(item courseUpdateRequest) model.CourseUpdate {
	return model.CourseUpdate{Title: item.Title, Description: item.Description, Weeks: item.Weeks, Tuition: item.Tuition,
		MinimumSkill: item.MinimumSkill, ScholarshipAvailable: item.ScholarshipAvailable}
}

//Review

func reviewToResponse(item *model.Review) *reviewResponse {
	if item == nil {
		return nil
	}
	return &reviewResponse{ID: item.ID, Title: item.Title, Text: item.Text, Rating: item.Rating,
		Organization: parentToResponse(item.OrganizationID, item.Organization), User: item.UserID,
		CreatedAt: item.DateCreated, UpdatedAt: item.DateUpdated}
}

func reviewsToResponse(items []model.Review) []reviewResponse {
	res := make([]reviewResponse, len(items))
	for i := range items {
		res[i] = *reviewToResponse(&items[i])
	}
	return res
}

func reviewFromRequest(item reviewRequest) model.Review {
	return model.Review{Title: item.Title, Text: item.Text, Rating: item.Rating}
}

func reviewUpdateFromRequest(item reviewUpdateRequest) model.ReviewUpdate {
	return model.ReviewUpdate{Title: item.Title, Text: item.Text, Rating: item.Rating}
}
