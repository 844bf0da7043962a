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
	"directory-building-block/core/query"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/errors"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
)

//Organizations

func (app *application) serGetOrganizations(l *logs.Log, params map[string]string) ([]model.Organization, *query.Pagination, error) {
	list, err := query.BuildList(organizationSchema, params, app.listDefaultsFor(), organizationsExpansion)
	if err != nil {
		return nil, nil, err
	}

	organizations, err := app.storage.FindOrganizations(*list)
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err)
	}
	total, err := app.storage.CountOrganizations(list.Filter)
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err)
	}

	pagination := query.NewPagination(list.Options.Page, list.Options.Limit, total)
	return organizations, &pagination, nil
}

func (app *application) serGetOrganization(l *logs.Log, id string) (*model.Organization, error) {
	return app.getOrganization(id)
}

func (app *application) serGetOrganizationsInRadius(l *logs.Log, zipcode string, distance float64, unit string) ([]model.Organization, error) {
	radians, err := AngularRadius(distance, unit)
	if err != nil {
		return nil, err
	}

	center, err := app.geocode(l, zipcode)
	if err != nil {
		return nil, err
	}

	organizations, err := app.storage.FindOrganizationsWithinRadius(center.Longitude, center.Latitude, radians)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"zipcode": zipcode}, err)
	}
	return organizations, nil
}

func (app *application) serCreateOrganization(l *logs.Log, actor model.Actor, organization model.Organization, address string) (*model.Organization, error) {
	err := app.authorize(actor, model.TypeOrganization, model.RolePublisher, model.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(address)) == 0 {
		return nil, model.NewError(model.ErrorCodeInvalidData, "address", "required", nil)
	}

	//a publisher owns a single organization
	if !actor.IsAdmin() {
		published, err := app.storage.CountOrganizations(query.Filter{query.Equals("user_id", actor.ID)})
		if err != nil {
			return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"user_id": actor.ID}, err)
		}
		if published > 0 {
			return nil, model.NewError(model.ErrorCodeDuplicateOrganization, "user", "user "+actor.ID+" already published an organization", nil)
		}
	}

	organization.ID = uuid.NewString()
	organization.UserID = actor.ID
	organization.Slug = slug.Make(organization.Name)
	organization.AverageCost = nil
	organization.AverageRating = nil
	organization.Courses = nil
	if len(organization.Photo) == 0 {
		organization.Photo = model.DefaultPhoto
	}
	organization.DateCreated = app.now()
	organization.DateUpdated = nil

	err = app.validateEntity(organization)
	if err != nil {
		return nil, err
	}

	match, err := app.geocode(l, address)
	if err != nil {
		return nil, err
	}
	location := model.NewLocation(*match)
	organization.Location = &location

	err = app.storage.InsertOrganization(organization)
	if err != nil {
		return nil, storageError(logutils.ActionInsert, model.TypeOrganization, organization.ID, err)
	}
	return &organization, nil
}

func (app *application) serUpdateOrganization(l *logs.Log, actor model.Actor, id string, update model.OrganizationUpdate) (*model.Organization, error) {
	err := app.authorize(actor, model.TypeOrganization, model.RolePublisher, model.RoleAdmin)
	if err != nil {
		return nil, err
	}

	organization, err := app.getOrganization(id)
	if err != nil {
		return nil, err
	}
	err = app.authorizeOwner(actor, model.TypeOrganization, organization.UserID)
	if err != nil {
		return nil, err
	}

	applyOrganizationUpdate(organization, update)
	now := app.now()
	organization.DateUpdated = &now

	err = app.validateEntity(*organization)
	if err != nil {
		return nil, err
	}

	if update.Address != nil {
		match, err := app.geocode(l, *update.Address)
		if err != nil {
			return nil, err
		}
		location := model.NewLocation(*match)
		organization.Location = &location
	}

	err = app.storage.UpdateOrganization(*organization)
	if err != nil {
		return nil, storageError(logutils.ActionUpdate, model.TypeOrganization, id, err)
	}
	return organization, nil
}

func (app *application) serDeleteOrganization(l *logs.Log, actor model.Actor, id string) error {
	err := app.authorize(actor, model.TypeOrganization, model.RolePublisher, model.RoleAdmin)
	if err != nil {
		return err
	}

	organization, err := app.getOrganization(id)
	if err != nil {
		return err
	}
	err = app.authorizeOwner(actor, model.TypeOrganization, organization.UserID)
	if err != nil {
		return err
	}

	return app.cascadeDeleteOrganization(l, id)
}

//Courses

func (app *application) serGetCourses(l *logs.Log, organizationID *string, params map[string]string) ([]model.Course, *query.Pagination, error) {
	list, err := query.BuildList(courseSchema, params, app.listDefaultsFor(), parentExpansion)
	if err != nil {
		return nil, nil, err
	}
	if organizationID != nil {
		_, err = app.getOrganization(*organizationID)
		if err != nil {
			return nil, nil, err
		}
		list.Filter = list.Filter.And(query.Equals("organization_id", *organizationID))
	}

	courses, err := app.storage.FindCourses(*list)
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeCourse, nil, err)
	}
	total, err := app.storage.CountCourses(list.Filter)
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeCourse, nil, err)
	}

	pagination := query.NewPagination(list.Options.Page, list.Options.Limit, total)
	return courses, &pagination, nil
}

func (app *application) serGetCourse(l *logs.Log, id string) (*model.Course, error) {
	return app.getCourse(id)
}

func (app *application) serCreateCourse(l *logs.Log, actor model.Actor, organizationID string, course model.Course) (*model.Course, error) {
	err := app.authorize(actor, model.TypeCourse, model.RolePublisher, model.RoleAdmin)
	if err != nil {
		return nil, err
	}

	organization, err := app.getOrganization(organizationID)
	if err != nil {
		return nil, err
	}
	err = app.authorizeOwner(actor, model.TypeOrganization, organization.UserID)
	if err != nil {
		return nil, err
	}

	course.ID = uuid.NewString()
	course.OrganizationID = organizationID
	course.Organization = nil
	course.UserID = actor.ID
	course.DateCreated = app.now()
	course.DateUpdated = nil

	err = app.validateEntity(course)
	if err != nil {
		return nil, err
	}

	//the organization may have been deleted while waiting for its lock
	err = app.aggregates.afterWrite(l, costAggregate, organizationID, func() error {
		_, err := app.getOrganization(organizationID)
		if err != nil {
			return err
		}
		return app.storage.InsertCourse(course)
	})
	if err != nil {
		return nil, storageError(logutils.ActionInsert, model.TypeCourse, course.ID, err)
	}
	return &course, nil
}

func (app *application) serUpdateCourse(l *logs.Log, actor model.Actor, id string, update model.CourseUpdate) (*model.Course, error) {
	err := app.authorize(actor, model.TypeCourse, model.RolePublisher, model.RoleAdmin)
	if err != nil {
		return nil, err
	}

	course, err := app.getCourse(id)
	if err != nil {
		return nil, err
	}
	err = app.authorizeOwner(actor, model.TypeCourse, course.UserID)
	if err != nil {
		return nil, err
	}

	applyCourseUpdate(course, update)
	course.Organization = nil
	now := app.now()
	course.DateUpdated = &now

	err = app.validateEntity(*course)
	if err != nil {
		return nil, err
	}

	err = app.aggregates.afterWrite(l, costAggregate, course.OrganizationID, func() error {
		return app.storage.UpdateCourse(*course)
	})
	if err != nil {
		return nil, storageError(logutils.ActionUpdate, model.TypeCourse, id, err)
	}
	return course, nil
}

func (app *application) serDeleteCourse(l *logs.Log, actor model.Actor, id string) error {
	err := app.authorize(actor, model.TypeCourse, model.RolePublisher, model.RoleAdmin)
	if err != nil {
		return err
	}

	course, err := app.getCourse(id)
	if err != nil {
		return err
	}
	err = app.authorizeOwner(actor, model.TypeCourse, course.UserID)
	if err != nil {
		return err
	}

	err = app.aggregates.beforeDelete(l, costAggregate, course.OrganizationID, id, func() error {
		return app.storage.DeleteCourse(id)
	})
	if err != nil {
		return storageError(logutils.ActionDelete, model.TypeCourse, id, err)
	}
	return nil
}

//Reviews

func (app *application) serGetReviews(l *logs.Log, organizationID *string, params map[string]string) ([]model.Review, *query.Pagination, error) {
	list, err := query.BuildList(reviewSchema, params, app.listDefaultsFor(), parentExpansion)
	if err != nil {
		return nil, nil, err
	}
	if organizationID != nil {
		_, err = app.getOrganization(*organizationID)
		if err != nil {
			return nil, nil, err
		}
		list.Filter = list.Filter.And(query.Equals("organization_id", *organizationID))
	}

	reviews, err := app.storage.FindReviews(*list)
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeReview, nil, err)
	}
	total, err := app.storage.CountReviews(list.Filter)
	if err != nil {
		return nil, nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeReview, nil, err)
	}

	pagination := query.NewPagination(list.Options.Page, list.Options.Limit, total)
	return reviews, &pagination, nil
}

func (app *application) serGetReview(l *logs.Log, id string) (*model.Review, error) {
	return app.getReview(id)
}

func (app *application) serCreateReview(l *logs.Log, actor model.Actor, organizationID string, review model.Review) (*model.Review, error) {
	err := app.authorize(actor, model.TypeReview, model.RoleUser, model.RoleAdmin)
	if err != nil {
		return nil, err
	}

	_, err = app.getOrganization(organizationID)
	if err != nil {
		return nil, err
	}

	review.ID = uuid.NewString()
	review.OrganizationID = organizationID
	review.Organization = nil
	review.UserID = actor.ID
	review.DateCreated = app.now()
	review.DateUpdated = nil

	err = app.validateEntity(review)
	if err != nil {
		return nil, err
	}

	//the storage unique index rejects a second review of the same user
	err = app.aggregates.afterWrite(l, ratingAggregate, organizationID, func() error {
		_, err := app.getOrganization(organizationID)
		if err != nil {
			return err
		}
		return app.storage.InsertReview(review)
	})
	if err != nil {
		return nil, storageError(logutils.ActionInsert, model.TypeReview, review.ID, err)
	}
	return &review, nil
}

func (app *application) serUpdateReview(l *logs.Log, actor model.Actor, id string, update model.ReviewUpdate) (*model.Review, error) {
	err := app.authorize(actor, model.TypeReview, model.RoleUser, model.RoleAdmin)
	if err != nil {
		return nil, err
	}

	review, err := app.getReview(id)
	if err != nil {
		return nil, err
	}
	err = app.authorizeOwner(actor, model.TypeReview, review.UserID)
	if err != nil {
		return nil, err
	}

	applyReviewUpdate(review, update)
	review.Organization = nil
	now := app.now()
	review.DateUpdated = &now

	err = app.validateEntity(*review)
	if err != nil {
		return nil, err
	}

	err = app.aggregates.afterWrite(l, ratingAggregate, review.OrganizationID, func() error {
		return app.storage.UpdateReview(*review)
	})
	if err != nil {
		return nil, storageError(logutils.ActionUpdate, model.TypeReview, id, err)
	}
	return review, nil
}

func (app *application) serDeleteReview(l *logs.Log, actor model.Actor, id string) error {
	err := app.authorize(actor, model.TypeReview, model.RoleUser, model.RoleAdmin)
	if err != nil {
		return err
	}

	review, err := app.getReview(id)
	if err != nil {
		return err
	}
	err = app.authorizeOwner(actor, model.TypeReview, review.UserID)
	if err != nil {
		return err
	}

	err = app.aggregates.beforeDelete(l, ratingAggregate, review.OrganizationID, id, func() error {
		return app.storage.DeleteReview(id)
	})
	if err != nil {
		return storageError(logutils.ActionDelete, model.TypeReview, id, err)
	}
	return nil
}

///

func (app *application) getOrganization(id string) (*model.Organization, error) {
	organization, err := app.storage.FindOrganization(id)
	if err != nil {
		return nil, storageError(logutils.ActionFind, model.TypeOrganization, id, err)
	}
	if organization == nil {
		return nil, notFound(model.TypeOrganization, id)
	}
	return organization, nil
}

func (app *application) getCourse(id string) (*model.Course, error) {
	course, err := app.storage.FindCourse(id)
	if err != nil {
		return nil, storageError(logutils.ActionFind, model.TypeCourse, id, err)
	}
	if course == nil {
		return nil, notFound(model.TypeCourse, id)
	}
	return course, nil
}

func (app *application) getReview(id string) (*model.Review, error) {
	review, err := app.storage.FindReview(id)
	if err != nil {
		return nil, storageError(logutils.ActionFind, model.TypeReview, id, err)
	}
	if review == nil {
		return nil, notFound(model.TypeReview, id)
	}
	return review, nil
}

func applyOrganizationUpdate(organization *model.Organization, update model.OrganizationUpdate) {
	if update.Name != nil {
		organization.Name = *update.Name
		organization.Slug = slug.Make(*update.Name)
	}
	if update.Description != nil {
		organization.Description = *update.Description
	}
	if update.Website != nil {
		organization.Website = *update.Website
	}
	if update.Phone != nil {
		organization.Phone = *update.Phone
	}
	if update.Email != nil {
		organization.Email = *update.Email
	}
	if update.Careers != nil {
		organization.Careers = *update.Careers
	}
	if update.Housing != nil {
		organization.Housing = *update.Housing
	}
	if update.JobAssistance != nil {
		organization.JobAssistance = *update.JobAssistance
	}
	if update.JobGuarantee != nil {
		organization.JobGuarantee = *update.JobGuarantee
	}
	if update.AcceptGi != nil {
		organization.AcceptGi = *update.AcceptGi
	}
}

func applyCourseUpdate(course *model.Course, update model.CourseUpdate) {
	if update.Title != nil {
		course.Title = *update.Title
	}
	if update.Description != nil {
		course.Description = *update.Description
	}
	if update.Weeks != nil {
		course.Weeks = *update.Weeks
	}
	if update.Tuition != nil {
		course.Tuition = *update.Tuition
	}
	if update.MinimumSkill != nil {
		course.MinimumSkill = *update.MinimumSkill
	}
	if update.ScholarshipAvailable != nil {
		course.ScholarshipAvailable = *update.ScholarshipAvailable
	}
}

func applyReviewUpdate(review *model.Review, update model.ReviewUpdate) {
	if update.Title != nil {
		review.Title = *update.Title
	}
	if update.Text != nil {
		review.Text = *update.Text
	}
	if update.Rating != nil {
		review.Rating = *update.Rating
	}
}
