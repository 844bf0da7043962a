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

type course struct {
	ID                   string  `bson:"_id"`
	Title                string  `bson:"title"`
	Description          string  `bson:"description"`
	Weeks                int     `bson:"weeks"`
	Tuition              float64 `bson:"tuition"`
	MinimumSkill         string  `bson:"minimum_skill"`
	ScholarshipAvailable bool    `bson:"scholarship_available"`

	OrganizationID string `bson:"organization_id"`
	//populated by $lookup only
	Organization *organization `bson:"organization,omitempty"`

	UserID string `bson:"user_id"`

	DateCreated time.Time  `bson:"date_created"`
	DateUpdated *time.Time `bson:"date_updated"`
}

type review struct {
	ID     string `bson:"_id"`
	Title  string `bson:"title"`
	Text   string `bson:"text"`
	Rating int    `bson:"rating"`

	OrganizationID string `bson:"organization_id"`
	//populated by $lookup only
	Organization *organization `bson:"organization,omitempty"`

	UserID string `bson:"user_id"`

	DateCreated time.Time  `bson:"date_created"`
	DateUpdated *time.Time `bson:"date_updated"`
}

// averageResult is the $group output of the aggregate queries
type averageResult struct {
	OrganizationID string   `bson:"_id"`
	Average        *float64 `bson:"average"`
}
