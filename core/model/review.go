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
	//TypeReview ...
	TypeReview logutils.MessageDataType = "review"

	//MinRating is the lowest rating a review may give
	MinRating int = 1
	//MaxRating is the highest rating a review may give
	MaxRating int = 10
)

// Review represents a user review of an organization. A user may review an organization only once.
type Review struct {
	ID     string `validate:"required"`
	Title  string `validate:"required,max=100"`
	Text   string `validate:"required"`
	Rating int    `validate:"rating"`

	OrganizationID string        `validate:"required"`
	Organization   *Organization `validate:"-"`

	UserID string `validate:"required"`

	DateCreated time.Time
	DateUpdated *time.Time
}

func (r Review) String() string {
	return fmt.Sprintf("[ID:%s\tRating:%d\tOrganizationID:%s\tUserID:%s]", r.ID, r.Rating, r.OrganizationID, r.UserID)
}

// ReviewUpdate holds the editable review fields
type ReviewUpdate struct {
	Title  *string
	Text   *string
	Rating *int
}
