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

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
)

// admRecomputeAggregates repairs both derived fields of an organization
func (app *application) admRecomputeAggregates(l *logs.Log, actor model.Actor, organizationID string) (*model.Organization, error) {
	err := app.authorize(actor, model.TypeOrganization, model.RoleAdmin)
	if err != nil {
		return nil, err
	}

	organization, err := app.getOrganization(organizationID)
	if err != nil {
		return nil, err
	}

	err = app.aggregates.withLock(organizationID, func() error {
		averageCost, err := app.aggregates.recompute(costAggregate, organizationID, "")
		if err != nil {
			return err
		}
		averageRating, err := app.aggregates.recompute(ratingAggregate, organizationID, "")
		if err != nil {
			return err
		}
		organization.AverageCost = averageCost
		organization.AverageRating = averageRating
		return nil
	})
	if err != nil {
		l.WarnError("recompute aggregates for organization "+organizationID, err)
		return nil, err
	}

	l.Infof("recomputed aggregates for organization %s", organizationID)
	return organization, nil
}
