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
	genmocks "directory-building-block/core/mocks"
	"directory-building-block/core/model"
	"directory-building-block/core/query"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testAdmin     = model.Actor{ID: "admin-1", Role: model.RoleAdmin}
	testPublisher = model.Actor{ID: "publisher-1", Role: model.RolePublisher}
	testOther     = model.Actor{ID: "publisher-2", Role: model.RolePublisher}
	testUser      = model.Actor{ID: "user-1", Role: model.RoleUser}
	testUser2     = model.Actor{ID: "user-2", Role: model.RoleUser}
)

func testLog() *logs.Log {
	return logs.NewLogger("test", nil).NewLog("1", logs.RequestContext{})
}

func newTestApp(storage Storage, geocoder Geocoder) *application {
	return newApplication("test", "1.0.0", "build", storage, geocoder, query.Defaults{}, logs.NewLogger("test", nil))
}

func floatPtr(value float64) *float64 {
	return &value
}

func seedOrganization(storage *memoryStorage, id string, userID string) {
	storage.organizations[id] = model.Organization{ID: id, Name: "Organization " + id, Description: "Full stack courses",
		Careers: []string{model.CareerWebDevelopment}, Photo: model.DefaultPhoto, UserID: userID, DateCreated: time.Now().UTC()}
}

func testCourse(tuition float64) model.Course {
	return model.Course{Title: "Front End Web Development", Description: "HTML, CSS and JavaScript", Weeks: 8,
		Tuition: tuition, MinimumSkill: model.SkillBeginner}
}

func testReview(rating int) model.Review {
	return model.Review{Title: "Learned a ton", Text: "Great instructors", Rating: rating}
}

func TestRoundUpToTen(t *testing.T) {
	tests := []struct {
		value float64
		want  float64
	}{
		{value: 100, want: 100},
		{value: 91.5, want: 100},
		{value: 90, want: 90},
		{value: 90.0000000001, want: 90},
		{value: 101, want: 110},
		{value: 5, want: 10},
		{value: 0, want: 0},
		{value: 10000.0 / 3, want: 3340},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundUpToTen(tt.value), "round up %v", tt.value)
	}
}

func TestCostRoundingLaw(t *testing.T) {
	tests := []struct {
		name     string
		tuitions []float64
		want     float64
	}{
		{name: "exact average", tuitions: []float64{97, 103}, want: 100},
		{name: "fractional average", tuitions: []float64{91, 92}, want: 100},
		{name: "single course", tuitions: []float64{12500}, want: 12500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := newMemoryStorage()
			seedOrganization(storage, "o1", testPublisher.ID)
			app := newTestApp(storage, nil)

			for _, tuition := range tt.tuitions {
				_, err := app.serCreateCourse(testLog(), testPublisher, "o1", testCourse(tuition))
				require.NoError(t, err)
			}

			organization, _ := storage.FindOrganization("o1")
			require.NotNil(t, organization.AverageCost)
			assert.Equal(t, tt.want, *organization.AverageCost)
		})
	}
}

func TestRatingIsStoredUnrounded(t *testing.T) {
	storage := newMemoryStorage()
	seedOrganization(storage, "o1", testPublisher.ID)
	app := newTestApp(storage, nil)

	_, err := app.serCreateReview(testLog(), testUser, "o1", testReview(8))
	require.NoError(t, err)
	_, err = app.serCreateReview(testLog(), testUser2, "o1", testReview(5))
	require.NoError(t, err)

	organization, _ := storage.FindOrganization("o1")
	require.NotNil(t, organization.AverageRating)
	assert.Equal(t, 6.5, *organization.AverageRating)
	assert.Nil(t, organization.AverageCost)
}

func TestRecomputeIsIdempotent(t *testing.T) {
	storage := newMemoryStorage()
	seedOrganization(storage, "o1", testPublisher.ID)
	app := newTestApp(storage, nil)

	for _, tuition := range []float64{8000, 9150, 10010} {
		_, err := app.serCreateCourse(testLog(), testPublisher, "o1", testCourse(tuition))
		require.NoError(t, err)
	}

	first, err := app.aggregates.recompute(costAggregate, "o1", "")
	require.NoError(t, err)
	persistedFirst, _ := storage.FindOrganization("o1")

	second, err := app.aggregates.recompute(costAggregate, "o1", "")
	require.NoError(t, err)
	persistedSecond, _ := storage.FindOrganization("o1")

	assert.Equal(t, first, second)
	assert.Equal(t, 9060.0, *second)
	assert.Equal(t, persistedFirst.AverageCost, persistedSecond.AverageCost)
}

func TestZeroCoursesLeavesCostUnset(t *testing.T) {
	storage := newMemoryStorage()
	seedOrganization(storage, "o1", testPublisher.ID)
	app := newTestApp(storage, nil)

	//review mutations never touch the cost
	review, err := app.serCreateReview(testLog(), testUser, "o1", testReview(7))
	require.NoError(t, err)
	rating := 9
	_, err = app.serUpdateReview(testLog(), testUser, review.ID, model.ReviewUpdate{Rating: &rating})
	require.NoError(t, err)

	organization, _ := storage.FindOrganization("o1")
	assert.Nil(t, organization.AverageCost)
	assert.Equal(t, 9.0, *organization.AverageRating)

	err = app.serDeleteReview(testLog(), testUser, review.ID)
	require.NoError(t, err)
	organization, _ = storage.FindOrganization("o1")
	assert.Nil(t, organization.AverageCost)
	assert.Nil(t, organization.AverageRating)

	//the last course going away unsets the cost again
	course, err := app.serCreateCourse(testLog(), testPublisher, "o1", testCourse(5000))
	require.NoError(t, err)
	organization, _ = storage.FindOrganization("o1")
	assert.Equal(t, 5000.0, *organization.AverageCost)

	err = app.serDeleteCourse(testLog(), testPublisher, course.ID)
	require.NoError(t, err)
	organization, _ = storage.FindOrganization("o1")
	assert.Nil(t, organization.AverageCost)
}

func TestEmptyAverageUnsetsField(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("AverageCourseTuition", "o1", "").Return(nil, nil)
	storage.On("UpdateOrganizationAverageCost", "o1", (*float64)(nil)).Return(nil)

	app := newTestApp(&storage, nil)
	value, err := app.aggregates.recompute(costAggregate, "o1", "")

	assert.NoError(t, err)
	assert.Nil(t, value)
	storage.AssertExpectations(t)
}

func TestDeleteExcludesDeletedChild(t *testing.T) {
	calls := []string{}
	storage := genmocks.Storage{}
	storage.On("FindCourse", "c1").Return(&model.Course{ID: "c1", OrganizationID: "o1", UserID: testPublisher.ID, Tuition: 50}, nil)
	storage.On("AverageCourseTuition", "o1", "c1").Run(func(args mock.Arguments) {
		calls = append(calls, "average")
	}).Return(floatPtr(115), nil)
	storage.On("UpdateOrganizationAverageCost", "o1", floatPtr(120)).Run(func(args mock.Arguments) {
		calls = append(calls, "persist")
	}).Return(nil)
	storage.On("DeleteCourse", "c1").Run(func(args mock.Arguments) {
		calls = append(calls, "delete")
	}).Return(nil)

	app := newTestApp(&storage, nil)
	err := app.serDeleteCourse(testLog(), testPublisher, "c1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"average", "persist", "delete"}, calls)
	storage.AssertExpectations(t)
}

func TestFailedDeleteRecomputesWithoutExclusion(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindReview", "r1").Return(&model.Review{ID: "r1", OrganizationID: "o1", UserID: testUser.ID, Rating: 2}, nil)
	storage.On("AverageReviewRating", "o1", "r1").Return(floatPtr(8), nil).Once()
	storage.On("UpdateOrganizationAverageRating", "o1", floatPtr(8)).Return(nil).Once()
	storage.On("DeleteReview", "r1").Return(errors.New("connection reset"))
	storage.On("AverageReviewRating", "o1", "").Return(floatPtr(6), nil).Once()
	storage.On("UpdateOrganizationAverageRating", "o1", floatPtr(6)).Return(nil).Once()

	app := newTestApp(&storage, nil)
	err := app.serDeleteReview(testLog(), testUser, "r1")

	assert.Error(t, err)
	storage.AssertExpectations(t)
}

func TestRecomputeFailureIsNotPropagated(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "o1").Return(&model.Organization{ID: "o1", UserID: testPublisher.ID}, nil)
	storage.On("InsertCourse", mock.AnythingOfType("model.Course")).Return(nil)
	storage.On("AverageCourseTuition", "o1", "").Return(nil, errors.New("aggregation timed out"))

	app := newTestApp(&storage, nil)
	course, err := app.serCreateCourse(testLog(), testPublisher, "o1", testCourse(4000))

	require.NoError(t, err)
	require.NotNil(t, course)
	assert.Equal(t, "o1", course.OrganizationID)
	assert.Equal(t, testPublisher.ID, course.UserID)
	storage.AssertNotCalled(t, "UpdateOrganizationAverageCost", mock.Anything, mock.Anything)

	_, err = app.aggregates.recompute(costAggregate, "o1", "")
	assert.Equal(t, model.ErrorCodeAggregateRecomputeFailed, model.ErrorCodeOf(err))
}

func TestPersistFailureIsNotPropagated(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindCourse", "c1").Return(&model.Course{ID: "c1", OrganizationID: "o1", UserID: testPublisher.ID,
		Title: "t", Description: "d", Weeks: 4, Tuition: 10, MinimumSkill: model.SkillAdvanced}, nil)
	storage.On("UpdateCourse", mock.AnythingOfType("model.Course")).Return(nil)
	storage.On("AverageCourseTuition", "o1", "").Return(floatPtr(20), nil)
	storage.On("UpdateOrganizationAverageCost", "o1", floatPtr(20)).Return(errors.New("write conflict"))

	app := newTestApp(&storage, nil)
	tuition := 20.0
	course, err := app.serUpdateCourse(testLog(), testPublisher, "c1", model.CourseUpdate{Tuition: &tuition})

	require.NoError(t, err)
	assert.Equal(t, 20.0, course.Tuition)
	storage.AssertExpectations(t)
}

func TestDuplicateReview(t *testing.T) {
	storage := newMemoryStorage()
	seedOrganization(storage, "o1", testPublisher.ID)
	app := newTestApp(storage, nil)

	original, err := app.serCreateReview(testLog(), testUser, "o1", testReview(8))
	require.NoError(t, err)

	_, err = app.serCreateReview(testLog(), testUser, "o1", testReview(1))
	require.Error(t, err)
	assert.Equal(t, model.ErrorCodeDuplicateReview, model.ErrorCodeOf(err))

	stored, _ := storage.FindReview(original.ID)
	assert.Equal(t, 8, stored.Rating)
	assert.Len(t, storage.reviews, 1)
	organization, _ := storage.FindOrganization("o1")
	assert.Equal(t, 8.0, *organization.AverageRating)
}

func TestCascadeDelete(t *testing.T) {
	tests := []struct {
		name    string
		courses int
		reviews int
	}{
		{name: "with children", courses: 3, reviews: 2},
		{name: "without children", courses: 0, reviews: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := newMemoryStorage()
			seedOrganization(storage, "o1", testPublisher.ID)
			seedOrganization(storage, "o2", testOther.ID)
			app := newTestApp(storage, nil)

			for i := 0; i < tt.courses; i++ {
				_, err := app.serCreateCourse(testLog(), testPublisher, "o1", testCourse(float64(1000*(i+1))))
				require.NoError(t, err)
			}
			for i := 0; i < tt.reviews; i++ {
				actor := model.Actor{ID: "reviewer-" + string(rune('a'+i)), Role: model.RoleUser}
				_, err := app.serCreateReview(testLog(), actor, "o1", testReview(5))
				require.NoError(t, err)
			}
			_, err := app.serCreateCourse(testLog(), testOther, "o2", testCourse(700))
			require.NoError(t, err)

			err = app.serDeleteOrganization(testLog(), testPublisher, "o1")
			require.NoError(t, err)

			courses, reviews := storage.countChildren("o1")
			assert.Equal(t, 0, courses)
			assert.Equal(t, 0, reviews)
			organization, _ := storage.FindOrganization("o1")
			assert.Nil(t, organization)

			courses, _ = storage.countChildren("o2")
			assert.Equal(t, 1, courses)
		})
	}
}

func TestCascadeDeleteAbortsOnChildFailure(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "o1").Return(&model.Organization{ID: "o1", UserID: testPublisher.ID}, nil)
	storage.On("DeleteCoursesByOrganization", "o1").Return(int64(2), nil)
	storage.On("DeleteReviewsByOrganization", "o1").Return(int64(0), errors.New("not primary"))
	storage.On("AverageCourseTuition", "o1", "").Return(nil, nil)
	storage.On("UpdateOrganizationAverageCost", "o1", (*float64)(nil)).Return(nil)

	app := newTestApp(&storage, nil)
	err := app.serDeleteOrganization(testLog(), testPublisher, "o1")

	require.Error(t, err)
	assert.Equal(t, model.ErrorCodeCascadeDeleteFailed, model.ErrorCodeOf(err))
	storage.AssertNotCalled(t, "DeleteOrganization", mock.Anything)
	storage.AssertExpectations(t)
}

func TestCascadeDeleteStopsAtFirstStep(t *testing.T) {
	storage := genmocks.Storage{}
	storage.On("FindOrganization", "o1").Return(&model.Organization{ID: "o1", UserID: testPublisher.ID}, nil)
	storage.On("DeleteCoursesByOrganization", "o1").Return(int64(0), errors.New("not primary"))

	app := newTestApp(&storage, nil)
	err := app.serDeleteOrganization(testLog(), testAdmin, "o1")

	assert.Equal(t, model.ErrorCodeCascadeDeleteFailed, model.ErrorCodeOf(err))
	storage.AssertNotCalled(t, "DeleteReviewsByOrganization", mock.Anything)
	storage.AssertNotCalled(t, "DeleteOrganization", mock.Anything)
}

func TestCreateWaitingOnCascadeDelete(t *testing.T) {
	storage := newMemoryStorage()
	seedOrganization(storage, "o1", testPublisher.ID)
	app := newTestApp(storage, nil)
	_, err := app.serCreateCourse(testLog(), testPublisher, "o1", testCourse(5000))
	require.NoError(t, err)

	started := make(chan struct{})
	release := make(chan struct{})
	storage.beforeDeleteChildren = func() {
		close(started)
		<-release
	}

	deleted := make(chan error, 1)
	go func() {
		deleted <- app.serDeleteOrganization(testLog(), testPublisher, "o1")
	}()
	<-started

	//the parent check passes, then both creates wait on the organization lock
	var courseErr, reviewErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, courseErr = app.serCreateCourse(testLog(), testPublisher, "o1", testCourse(7000))
	}()
	go func() {
		defer wg.Done()
		_, reviewErr = app.serCreateReview(testLog(), testUser, "o1", testReview(9))
	}()
	time.Sleep(20 * time.Millisecond)
	close(release)

	require.NoError(t, <-deleted)
	wg.Wait()

	assert.Equal(t, model.ErrorCodeNotFound, model.ErrorCodeOf(courseErr))
	assert.Equal(t, model.ErrorCodeNotFound, model.ErrorCodeOf(reviewErr))
	courses, reviews := storage.countChildren("o1")
	assert.Equal(t, 0, courses)
	assert.Equal(t, 0, reviews)
}

func TestRecomputesAreSerializedPerOrganization(t *testing.T) {
	storage := newMemoryStorage()
	seedOrganization(storage, "o1", testPublisher.ID)
	//widen the window between the average read and the write
	storage.beforeAverage = func() { time.Sleep(2 * time.Millisecond) }
	app := newTestApp(storage, nil)

	tuitions := []float64{}
	for i := 0; i < 20; i++ {
		tuitions = append(tuitions, float64(1000+i*137))
	}

	var wg sync.WaitGroup
	for _, tuition := range tuitions {
		wg.Add(1)
		go func(tuition float64) {
			defer wg.Done()
			_, err := app.serCreateCourse(testLog(), testPublisher, "o1", testCourse(tuition))
			assert.NoError(t, err)
		}(tuition)
	}
	wg.Wait()

	expected := RoundUpToTen(*average(tuitions))
	organization, _ := storage.FindOrganization("o1")
	require.NotNil(t, organization.AverageCost)
	assert.Equal(t, expected, *organization.AverageCost)

	//concurrent deletes of half of the courses leave the average of the rest
	remaining := []float64{}
	for _, course := range storage.courses {
		if course.Tuition >= 1000+10*137 {
			remaining = append(remaining, course.Tuition)
		}
	}
	toDelete := []string{}
	for id, course := range storage.courses {
		if course.Tuition < 1000+10*137 {
			toDelete = append(toDelete, id)
		}
	}
	for _, id := range toDelete {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			assert.NoError(t, app.serDeleteCourse(testLog(), testPublisher, id))
		}(id)
	}
	wg.Wait()

	organization, _ = storage.FindOrganization("o1")
	assert.Equal(t, RoundUpToTen(*average(remaining)), *organization.AverageCost)
}
