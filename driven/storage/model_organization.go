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

import "time"

type organization struct {
	ID          string `bson:"_id"`
	Name        string `bson:"name"`
	Slug        string `bson:"slug"`
	Description string `bson:"description"`
	Website     string `bson:"website,omitempty"`
	Phone       string `bson:"phone,omitempty"`
	Email       string `bson:"email,omitempty"`

	Location *location `bson:"location,omitempty"`
	Careers  []string  `bson:"careers"`

	AverageCost   *float64 `bson:"average_cost,omitempty"`
	AverageRating *float64 `bson:"average_rating,omitempty"`

	Photo         string `bson:"photo"`
	Housing       bool   `bson:"housing"`
	JobAssistance bool   `bson:"job_assistance"`
	JobGuarantee  bool   `bson:"job_guarantee"`
	AcceptGi      bool   `bson:"accept_gi"`

	UserID string `bson:"user_id"`

	//populated by $lookup only
	Courses []course `bson:"courses,omitempty"`

	DateCreated time.Time  `bson:"date_created"`
	DateUpdated *time.Time `bson:"date_updated"`
}

// location is stored as a GeoJSON point so that the 2dsphere index can serve it
type location struct {
	Type             string    `bson:"type"`
	Coordinates      []float64 `bson:"coordinates"`
	FormattedAddress string    `bson:"formatted_address"`
	Street           string    `bson:"street"`
	City             string    `bson:"city"`
	State            string    `bson:"state"`
	Zipcode          string    `bson:"zipcode"`
	Country          string    `bson:"country"`
}
