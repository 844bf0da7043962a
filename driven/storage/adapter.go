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

import (
	"directory-building-block/core/model"
	"directory-building-block/core/query"
	"strconv"
	"time"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/errors"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Adapter implements the Storage interface
type Adapter struct {
	db *database
}

// Start starts the storage
func (sa *Adapter) Start() error {
	err := sa.db.start()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInitialize, "storage adapter", nil, err)
	}
	return nil
}

// Stop disconnects the storage
func (sa *Adapter) Stop() error {
	return sa.db.stop()
}

// ORGANIZATIONS

// FindOrganizations finds the organizations page described by the list query
func (sa *Adapter) FindOrganizations(list query.List) ([]model.Organization, error) {
	pipeline, err := listPipeline(list, organizationRelations)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionCompute, "organizations pipeline", nil, err)
	}

	var result []organization
	err = sa.db.organizations.Aggregate(pipeline, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err)
	}
	return organizationsFromStorage(result), nil
}

// CountOrganizations counts the organizations matching the filter, paging ignored
func (sa *Adapter) CountOrganizations(filter query.Filter) (int64, error) {
	return sa.count(sa.db.organizations, model.TypeOrganization, filter)
}

// FindOrganization finds an organization by id
func (sa *Adapter) FindOrganization(id string) (*model.Organization, error) {
	filter := bson.D{primitive.E{Key: "_id", Value: id}}
	var result organization
	found, err := sa.db.organizations.FindOne(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"id": id}, err)
	}
	if !found {
		return nil, nil
	}

	organization := organizationFromStorage(&result)
	return &organization, nil
}

// FindOrganizationsWithinRadius finds the organizations located within the angular radius of the point
func (sa *Adapter) FindOrganizationsWithinRadius(longitude float64, latitude float64, radians float64) ([]model.Organization, error) {
	filter := radiusFilter(longitude, latitude, radians)
	var result []organization
	err := sa.db.organizations.Find(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"longitude": longitude, "latitude": latitude}, err)
	}
	return organizationsFromStorage(result), nil
}

// InsertOrganization inserts a new organization
func (sa *Adapter) InsertOrganization(organization model.Organization) error {
	_, err := sa.db.organizations.InsertOne(organizationToStorage(&organization))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.NewError(model.ErrorCodeDuplicateOrganization, "name", "an organization with this name exists", err)
		}
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeOrganization, &logutils.FieldArgs{"id": organization.ID}, err)
	}
	return nil
}

// UpdateOrganization updates the editable fields of an organization, the derived fields are left untouched
func (sa *Adapter) UpdateOrganization(organization model.Organization) error {
	item := organizationToStorage(&organization)
	filter := bson.D{primitive.E{Key: "_id", Value: organization.ID}}
	update := bson.D{
		primitive.E{Key: "$set", Value: bson.D{
			primitive.E{Key: "name", Value: item.Name},
			primitive.E{Key: "slug", Value: item.Slug},
			primitive.E{Key: "description", Value: item.Description},
			primitive.E{Key: "website", Value: item.Website},
			primitive.E{Key: "phone", Value: item.Phone},
			primitive.E{Key: "email", Value: item.Email},
			primitive.E{Key: "location", Value: item.Location},
			primitive.E{Key: "careers", Value: item.Careers},
			primitive.E{Key: "photo", Value: item.Photo},
			primitive.E{Key: "housing", Value: item.Housing},
			primitive.E{Key: "job_assistance", Value: item.JobAssistance},
			primitive.E{Key: "job_guarantee", Value: item.JobGuarantee},
			primitive.E{Key: "accept_gi", Value: item.AcceptGi},
			primitive.E{Key: "date_updated", Value: item.DateUpdated},
		}},
	}

	res, err := sa.db.organizations.UpdateOne(filter, update, nil)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.NewError(model.ErrorCodeDuplicateOrganization, "name", "an organization with this name exists", err)
		}
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, &logutils.FieldArgs{"id": organization.ID}, err)
	}
	if res.MatchedCount == 0 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeOrganization, &logutils.FieldArgs{"id": organization.ID})
	}
	return nil
}

// UpdateOrganizationAverageCost sets the average cost, nil removes it
func (sa *Adapter) UpdateOrganizationAverageCost(id string, averageCost *float64) error {
	return sa.updateAverage(id, "average_cost", averageCost)
}

// UpdateOrganizationAverageRating sets the average rating, nil removes it
func (sa *Adapter) UpdateOrganizationAverageRating(id string, averageRating *float64) error {
	return sa.updateAverage(id, "average_rating", averageRating)
}

func (sa *Adapter) updateAverage(id string, field string, value *float64) error {
	filter := bson.D{primitive.E{Key: "_id", Value: id}}
	_, err := sa.db.organizations.UpdateOne(filter, averageUpdate(field, value), nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, &logutils.FieldArgs{"id": id, "field": field}, err)
	}
	return nil
}

// DeleteOrganization deletes an organization, the children are removed by the caller
func (sa *Adapter) DeleteOrganization(id string) error {
	return sa.deleteOne(sa.db.organizations, model.TypeOrganization, id)
}

// COURSES

// FindCourses finds the courses page described by the list query
func (sa *Adapter) FindCourses(list query.List) ([]model.Course, error) {
	pipeline, err := listPipeline(list, childRelations)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionCompute, "courses pipeline", nil, err)
	}

	var result []course
	err = sa.db.courses.Aggregate(pipeline, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeCourse, nil, err)
	}
	return coursesFromStorage(result), nil
}

// CountCourses counts the courses matching the filter
func (sa *Adapter) CountCourses(filter query.Filter) (int64, error) {
	return sa.count(sa.db.courses, model.TypeCourse, filter)
}

// FindCourse finds a course by id
func (sa *Adapter) FindCourse(id string) (*model.Course, error) {
	filter := bson.D{primitive.E{Key: "_id", Value: id}}
	var result course
	found, err := sa.db.courses.FindOne(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeCourse, &logutils.FieldArgs{"id": id}, err)
	}
	if !found {
		return nil, nil
	}

	course := courseFromStorage(&result)
	return &course, nil
}

// InsertCourse inserts a new course
func (sa *Adapter) InsertCourse(course model.Course) error {
	_, err := sa.db.courses.InsertOne(courseToStorage(&course))
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeCourse, &logutils.FieldArgs{"id": course.ID}, err)
	}
	return nil
}

// UpdateCourse updates the editable fields of a course
func (sa *Adapter) UpdateCourse(course model.Course) error {
	filter := bson.D{primitive.E{Key: "_id", Value: course.ID}}
	update := bson.D{
		primitive.E{Key: "$set", Value: bson.D{
			primitive.E{Key: "title", Value: course.Title},
			primitive.E{Key: "description", Value: course.Description},
			primitive.E{Key: "weeks", Value: course.Weeks},
			primitive.E{Key: "tuition", Value: course.Tuition},
			primitive.E{Key: "minimum_skill", Value: course.MinimumSkill},
			primitive.E{Key: "scholarship_available", Value: course.ScholarshipAvailable},
			primitive.E{Key: "date_updated", Value: course.DateUpdated},
		}},
	}

	res, err := sa.db.courses.UpdateOne(filter, update, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeCourse, &logutils.FieldArgs{"id": course.ID}, err)
	}
	if res.MatchedCount == 0 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeCourse, &logutils.FieldArgs{"id": course.ID})
	}
	return nil
}

// DeleteCourse deletes a course
func (sa *Adapter) DeleteCourse(id string) error {
	return sa.deleteOne(sa.db.courses, model.TypeCourse, id)
}

// DeleteCoursesByOrganization deletes all the courses of an organization
func (sa *Adapter) DeleteCoursesByOrganization(organizationID string) (int64, error) {
	return sa.deleteByOrganization(sa.db.courses, model.TypeCourse, organizationID)
}

// AverageCourseTuition gives the mean tuition of the organization courses, nil when there are none
func (sa *Adapter) AverageCourseTuition(organizationID string, excludeID string) (*float64, error) {
	return sa.average(sa.db.courses, model.TypeCourse, organizationID, excludeID, "tuition")
}

// REVIEWS

// FindReviews finds the reviews page described by the list query
func (sa *Adapter) FindReviews(list query.List) ([]model.Review, error) {
	pipeline, err := listPipeline(list, childRelations)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionCompute, "reviews pipeline", nil, err)
	}

	var result []review
	err = sa.db.reviews.Aggregate(pipeline, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeReview, nil, err)
	}
	return reviewsFromStorage(result), nil
}

// CountReviews counts the reviews matching the filter
func (sa *Adapter) CountReviews(filter query.Filter) (int64, error) {
	return sa.count(sa.db.reviews, model.TypeReview, filter)
}

// FindReview finds a review by id
func (sa *Adapter) FindReview(id string) (*model.Review, error) {
	filter := bson.D{primitive.E{Key: "_id", Value: id}}
	var result review
	found, err := sa.db.reviews.FindOne(filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeReview, &logutils.FieldArgs{"id": id}, err)
	}
	if !found {
		return nil, nil
	}

	review := reviewFromStorage(&result)
	return &review, nil
}

// InsertReview inserts a new review, one per user and organization
func (sa *Adapter) InsertReview(review model.Review) error {
	_, err := sa.db.reviews.InsertOne(reviewToStorage(&review))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.NewError(model.ErrorCodeDuplicateReview, "organization", "the user has already reviewed this organization", err)
		}
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeReview, &logutils.FieldArgs{"id": review.ID}, err)
	}
	return nil
}

// UpdateReview updates the editable fields of a review
func (sa *Adapter) UpdateReview(review model.Review) error {
	filter := bson.D{primitive.E{Key: "_id", Value: review.ID}}
	update := bson.D{
		primitive.E{Key: "$set", Value: bson.D{
			primitive.E{Key: "title", Value: review.Title},
			primitive.E{Key: "text", Value: review.Text},
			primitive.E{Key: "rating", Value: review.Rating},
			primitive.E{Key: "date_updated", Value: review.DateUpdated},
		}},
	}

	res, err := sa.db.reviews.UpdateOne(filter, update, nil)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.NewError(model.ErrorCodeDuplicateReview, "organization", "the user has already reviewed this organization", err)
		}
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeReview, &logutils.FieldArgs{"id": review.ID}, err)
	}
	if res.MatchedCount == 0 {
		return errors.ErrorData(logutils.StatusMissing, model.TypeReview, &logutils.FieldArgs{"id": review.ID})
	}
	return nil
}

// DeleteReview deletes a review
func (sa *Adapter) DeleteReview(id string) error {
	return sa.deleteOne(sa.db.reviews, model.TypeReview, id)
}

// DeleteReviewsByOrganization deletes all the reviews of an organization
func (sa *Adapter) DeleteReviewsByOrganization(organizationID string) (int64, error) {
	return sa.deleteByOrganization(sa.db.reviews, model.TypeReview, organizationID)
}

// AverageReviewRating gives the mean rating of the organization reviews, nil when there are none
func (sa *Adapter) AverageReviewRating(organizationID string, excludeID string) (*float64, error) {
	return sa.average(sa.db.reviews, model.TypeReview, organizationID, excludeID, "rating")
}

// shared

func (sa *Adapter) count(coll *collectionWrapper, dataType logutils.MessageDataType, filter query.Filter) (int64, error) {
	match, err := filterToBSON(filter)
	if err != nil {
		return 0, errors.WrapErrorAction(logutils.ActionCompute, "filter", nil, err)
	}
	count, err := coll.CountDocuments(match)
	if err != nil {
		return 0, errors.WrapErrorAction(logutils.ActionFind, dataType, nil, err)
	}
	return count, nil
}

func (sa *Adapter) deleteOne(coll *collectionWrapper, dataType logutils.MessageDataType, id string) error {
	filter := bson.D{primitive.E{Key: "_id", Value: id}}
	res, err := coll.DeleteOne(filter, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, dataType, &logutils.FieldArgs{"id": id}, err)
	}
	if res.DeletedCount == 0 {
		return errors.ErrorData(logutils.StatusMissing, dataType, &logutils.FieldArgs{"id": id})
	}
	return nil
}

func (sa *Adapter) deleteByOrganization(coll *collectionWrapper, dataType logutils.MessageDataType, organizationID string) (int64, error) {
	filter := bson.D{primitive.E{Key: "organization_id", Value: organizationID}}
	res, err := coll.DeleteMany(filter, nil)
	if err != nil {
		return 0, errors.WrapErrorAction(logutils.ActionDelete, dataType, &logutils.FieldArgs{"organization_id": organizationID}, err)
	}
	return res.DeletedCount, nil
}

func (sa *Adapter) average(coll *collectionWrapper, dataType logutils.MessageDataType, organizationID string, excludeID string, field string) (*float64, error) {
	var result []averageResult
	err := coll.Aggregate(averagePipeline(organizationID, excludeID, field), &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionCompute, dataType, &logutils.FieldArgs{"organization_id": organizationID, "field": field}, err)
	}
	if len(result) == 0 {
		return nil, nil
	}
	return result[0].Average, nil
}

// NewStorageAdapter creates a new storage adapter instance
func NewStorageAdapter(mongoDBAuth string, mongoDBName string, mongoTimeout string, logger *logs.Logger) *Adapter {
	timeoutInt, err := strconv.Atoi(mongoTimeout)
	if err != nil {
		logger.Warn("Setting default Mongo timeout - 500")
		timeoutInt = 500
	}
	timeout := time.Millisecond * time.Duration(timeoutInt)

	db := &database{mongoDBAuth: mongoDBAuth, mongoDBName: mongoDBName, mongoTimeout: timeout, logger: logger}
	return &Adapter{db: db}
}
