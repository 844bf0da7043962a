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

//go:build integration

package storage

import (
	"context"
	"directory-building-block/core/model"
	"directory-building-block/core/query"
	"fmt"
	"testing"
	"time"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startMongo(t *testing.T) *Adapter {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(2 * time.Minute),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("mongo container not available: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	adapter := NewStorageAdapter(fmt.Sprintf("mongodb://%s:%s", host, port.Port()), "directory_test", "5000", logs.NewLogger("test", nil))
	require.NoError(t, adapter.Start())
	t.Cleanup(func() {
		for _, coll := range []*collectionWrapper{adapter.db.organizations, adapter.db.courses, adapter.db.reviews} {
			if err := coll.Drop(); err != nil {
				t.Logf("failed to drop collection: %v", err)
			}
		}
		_ = adapter.Stop()
	})
	return adapter
}

func testOrganization(id string, name string, longitude float64, latitude float64) model.Organization {
	return model.Organization{ID: id, Name: name, Slug: name, Description: "bootcamp", UserID: "u-" + id,
		Careers: []string{model.CareerBusiness}, Photo: model.DefaultPhoto,
		Location:    &model.Location{Type: "Point", Coordinates: []float64{longitude, latitude}, City: "Boston"},
		DateCreated: time.Now().UTC()}
}

func indexNames(t *testing.T, coll *collectionWrapper) []string {
	t.Helper()
	indexes, err := coll.ListIndexes(logs.NewLogger("test", nil))
	require.NoError(t, err)
	names := []string{}
	for _, index := range indexes {
		names = append(names, fmt.Sprint(index["name"]))
	}
	return names
}

func TestAdapterIndexes(t *testing.T) {
	adapter := startMongo(t)

	assert.Subset(t, indexNames(t, adapter.db.organizations), []string{"name_1", "location_2dsphere", "user_id_1"})
	assert.Subset(t, indexNames(t, adapter.db.courses), []string{"organization_id_1"})
	assert.Subset(t, indexNames(t, adapter.db.reviews), []string{"organization_id_1_user_id_1"})
}

func TestAdapterIntegration(t *testing.T) {
	adapter := startMongo(t)

	require.NoError(t, adapter.InsertOrganization(testOrganization("o1", "Devworks", -71.0657, 42.3551)))
	require.NoError(t, adapter.InsertOrganization(testOrganization("o2", "Codemasters", -118.2437, 34.0522)))

	err := adapter.InsertOrganization(testOrganization("o3", "Devworks", 0, 0))
	assert.Equal(t, model.ErrorCodeDuplicateOrganization, model.ErrorCodeOf(err))

	for i, tuition := range []float64{8000, 9150, 10010} {
		course := model.Course{ID: fmt.Sprintf("c%d", i), Title: "course", Description: "d", Weeks: 8, Tuition: tuition,
			MinimumSkill: model.SkillBeginner, OrganizationID: "o1", UserID: "u-o1", DateCreated: time.Now().UTC()}
		require.NoError(t, adapter.InsertCourse(course))
	}

	t.Run("average", func(t *testing.T) {
		average, err := adapter.AverageCourseTuition("o1", "")
		require.NoError(t, err)
		assert.InDelta(t, 9053.33, *average, 0.01)

		average, err = adapter.AverageCourseTuition("o1", "c0")
		require.NoError(t, err)
		assert.InDelta(t, 9580, *average, 0.01)

		average, err = adapter.AverageCourseTuition("o2", "")
		require.NoError(t, err)
		assert.Nil(t, average)
	})

	t.Run("average field set and unset", func(t *testing.T) {
		value := 9060.0
		require.NoError(t, adapter.UpdateOrganizationAverageCost("o1", &value))
		organization, err := adapter.FindOrganization("o1")
		require.NoError(t, err)
		assert.Equal(t, 9060.0, *organization.AverageCost)

		require.NoError(t, adapter.UpdateOrganizationAverageCost("o1", nil))
		organization, err = adapter.FindOrganization("o1")
		require.NoError(t, err)
		assert.Nil(t, organization.AverageCost)
	})

	t.Run("list with expansion and selection", func(t *testing.T) {
		list := query.List{
			Filter:  query.Filter{{Path: "location.city", Operator: query.OpEq, Value: "Boston"}},
			Options: query.Options{Select: []string{"_id", "name"}, Sort: []query.SortField{{Path: "name"}}, Page: 1, Limit: 10},
			Expand:  []query.Expansion{{Relation: model.RelationCourses}},
		}
		organizations, err := adapter.FindOrganizations(list)
		require.NoError(t, err)
		require.Len(t, organizations, 2)
		assert.Equal(t, "Codemasters", organizations[0].Name)
		assert.Empty(t, organizations[0].Description)
		assert.Len(t, organizations[1].Courses, 3)

		count, err := adapter.CountOrganizations(list.Filter)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("courses with parent", func(t *testing.T) {
		list := query.List{
			Options: query.Options{Page: 1, Limit: 2},
			Expand:  []query.Expansion{{Relation: model.RelationOrganization, Fields: []string{"name", "description"}}},
		}
		courses, err := adapter.FindCourses(list)
		require.NoError(t, err)
		require.Len(t, courses, 2)
		require.NotNil(t, courses[0].Organization)
		assert.Equal(t, "Devworks", courses[0].Organization.Name)
	})

	t.Run("radius", func(t *testing.T) {
		organizations, err := adapter.FindOrganizationsWithinRadius(-71.1190, 42.3736, 10/3963.2)
		require.NoError(t, err)
		require.Len(t, organizations, 1)
		assert.Equal(t, "o1", organizations[0].ID)
	})

	t.Run("duplicate review", func(t *testing.T) {
		review := model.Review{ID: "r1", Title: "good", Text: "t", Rating: 8, OrganizationID: "o1", UserID: "u1", DateCreated: time.Now().UTC()}
		require.NoError(t, adapter.InsertReview(review))
		review.ID = "r2"
		err := adapter.InsertReview(review)
		assert.Equal(t, model.ErrorCodeDuplicateReview, model.ErrorCodeOf(err))
	})

	t.Run("delete by organization", func(t *testing.T) {
		deleted, err := adapter.DeleteCoursesByOrganization("o1")
		require.NoError(t, err)
		assert.Equal(t, int64(3), deleted)

		deleted, err = adapter.DeleteReviewsByOrganization("o1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		require.NoError(t, adapter.DeleteOrganization("o1"))
		organization, err := adapter.FindOrganization("o1")
		require.NoError(t, err)
		assert.Nil(t, organization)

		assert.Error(t, adapter.DeleteOrganization("o1"))
	})
}
