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
	"fmt"
	"time"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
)

const (
	//TypeOrganization ...
	TypeOrganization logutils.MessageDataType = "organization"

	//DefaultPhoto is used until a photo is uploaded for the organization
	DefaultPhoto string = "no-photo.jpg"

	//RelationCourses expands the courses of an organization
	RelationCourses string = "courses"
	//RelationOrganization expands the organization of a course or review
	RelationOrganization string = "organization"
)

// Careers an organization may be tagged with
const (
	CareerWebDevelopment    string = "Web Development"
	CareerMobileDevelopment string = "Mobile Development"
	CareerUIUX              string = "UI/UX"
	CareerDataScience       string = "Data Science"
	CareerBusiness          string = "Business"
	CareerOther             string = "Other"
)

// Careers lists the accepted career tags
var Careers = []string{CareerWebDevelopment, CareerMobileDevelopment, CareerUIUX, CareerDataScience, CareerBusiness, CareerOther}

// Organization represents an organization offering courses
//
//	AverageCost and AverageRating are derived from the organization courses and reviews.
//	They are nil until at least one child record exists.
type Organization struct {
	ID          string `validate:"required"`
	Name        string `validate:"required,max=60"`
	Slug        string
	Description string `validate:"required,max=600"`
	Website     string `validate:"omitempty,url,startswith=http"`
	Phone       string `validate:"omitempty,max=20"`
	Email       string `validate:"omitempty,email"`

	Location *Location
	Careers  []string `validate:"required,min=1,dive,career"`

	AverageCost   *float64
	AverageRating *float64

	Photo         string
	Housing       bool
	JobAssistance bool
	JobGuarantee  bool
	AcceptGi      bool

	UserID string `validate:"required"`

	//reverse relation, populated only when requested
	Courses []Course `validate:"-"`

	DateCreated time.Time
	DateUpdated *time.Time
}

func (o Organization) String() string {
	return fmt.Sprintf("[ID:%s\tName:%s\tSlug:%s\tUserID:%s]", o.ID, o.Name, o.Slug, o.UserID)
}

// OrganizationUpdate holds the editable organization fields. Nil fields are left unchanged.
type OrganizationUpdate struct {
	Name          *string
	Description   *string
	Website       *string
	Phone         *string
	Email         *string
	Address       *string
	Careers       *[]string
	Housing       *bool
	JobAssistance *bool
	JobGuarantee  *bool
	AcceptGi      *bool
}

// Location is a GeoJSON point plus the address parts resolved by geocoding
type Location struct {
	Type             string    //always Point
	Coordinates      []float64 //longitude, latitude
	FormattedAddress string
	Street           string
	City             string
	State            string
	Zipcode          string
	Country          string
}

// Longitude of the location point
func (l Location) Longitude() float64 {
	if len(l.Coordinates) < 2 {
		return 0
	}
	return l.Coordinates[0]
}

// Latitude of the location point
func (l Location) Latitude() float64 {
	if len(l.Coordinates) < 2 {
		return 0
	}
	return l.Coordinates[1]
}

// NewLocation builds a location from a geocoding match
func NewLocation(match GeocodeResult) Location {
	return Location{Type: "Point", Coordinates: []float64{match.Longitude, match.Latitude},
		FormattedAddress: match.FormattedAddress, Street: match.StreetName, City: match.City,
		State: match.StateCode, Zipcode: match.Zipcode, Country: match.CountryCode}
}

// GeocodeResult is a candidate match returned by the geocoding collaborator
type GeocodeResult struct {
	Latitude         float64
	Longitude        float64
	FormattedAddress string
	StreetName       string
	City             string
	StateCode        string
	Zipcode          string
	CountryCode      string
}
