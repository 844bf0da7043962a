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
	//TypeCourse ...
	TypeCourse logutils.MessageDataType = "course"

	//SkillBeginner ...
	SkillBeginner string = "beginner"
	//SkillIntermediate ...
	SkillIntermediate string = "intermediate"
	//SkillAdvanced ...
	SkillAdvanced string = "advanced"
)

// Course represents a course offered by an organization
type Course struct {
	ID                   string  `validate:"required"`
	Title                string  `validate:"required"`
	Description          string  `validate:"required"`
	Weeks                int     `validate:"required,min=1"`
	Tuition              float64 `validate:"min=0"`
	MinimumSkill         string  `validate:"required,oneof=beginner intermediate advanced"`
	ScholarshipAvailable bool

	OrganizationID string `validate:"required"`
	//forward relation, populated only when requested
	Organization *Organization `validate:"-"`

	UserID string `validate:"required"`

	DateCreated time.Time
	DateUpdated *time.Time
}

func (c Course) String() string {
	return fmt.Sprintf("[ID:%s\tTitle:%s\tTuition:%.2f\tOrganizationID:%s]", c.ID, c.Title, c.Tuition, c.OrganizationID)
}

// CourseUpdate holds the editable course fields. The organization cannot be changed.
type CourseUpdate struct {
	Title                *string
	Description          *string
	Weeks                *int
	Tuition              *float64
	MinimumSkill         *string
	ScholarshipAvailable *bool
}
