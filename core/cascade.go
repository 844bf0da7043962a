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
	"directory-building-block/metrics"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/errors"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
)

// cascadeDeleteOrganization removes the courses, then the reviews, then the organization.
// A failing step aborts the sequence so the organization is never removed while children remain.
func (app *application) cascadeDeleteOrganization(l *logs.Log, organizationID string) error {
	args := &logutils.FieldArgs{"organization_id": organizationID}

	err := app.aggregates.withLock(organizationID, func() error {
		//1. courses
		courses, err := app.storage.DeleteCoursesByOrganization(organizationID)
		if err != nil {
			return model.NewError(model.ErrorCodeCascadeDeleteFailed, string(model.TypeCourse), "delete courses",
				errors.WrapErrorAction(logutils.ActionDelete, model.TypeCourse, args, err))
		}
		metrics.CascadeDeletedRecords.WithLabelValues(string(model.TypeCourse)).Add(float64(courses))

		//2. reviews
		reviews, err := app.storage.DeleteReviewsByOrganization(organizationID)
		if err != nil {
			app.aggregates.refresh(l, costAggregate, organizationID, "")
			return model.NewError(model.ErrorCodeCascadeDeleteFailed, string(model.TypeReview), "delete reviews",
				errors.WrapErrorAction(logutils.ActionDelete, model.TypeReview, args, err))
		}
		metrics.CascadeDeletedRecords.WithLabelValues(string(model.TypeReview)).Add(float64(reviews))

		//3. the organization itself
		err = app.storage.DeleteOrganization(organizationID)
		if err != nil {
			app.aggregates.refresh(l, costAggregate, organizationID, "")
			app.aggregates.refresh(l, ratingAggregate, organizationID, "")
			return model.NewError(model.ErrorCodeCascadeDeleteFailed, string(model.TypeOrganization), "delete organization",
				errors.WrapErrorAction(logutils.ActionDelete, model.TypeOrganization, args, err))
		}

		l.Infof("deleted organization %s with %d courses and %d reviews", organizationID, courses, reviews)
		return nil
	})
	if err != nil {
		metrics.CascadeDeletes.WithLabelValues(metrics.ResultError).Inc()
		l.WarnError("cascade delete organization "+organizationID, err)
		return err
	}

	app.aggregates.forget(organizationID)
	metrics.CascadeDeletes.WithLabelValues(metrics.ResultSuccess).Inc()
	return nil
}
