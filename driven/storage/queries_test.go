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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func stageNames(pipeline []bson.D) []string {
	names := make([]string, len(pipeline))
	for i, stage := range pipeline {
		names[i] = stage[0].Key
	}
	return names
}

func TestFilterToBSON(t *testing.T) {
	filter := query.Filter{
		{Path: "average_cost", Operator: query.OpGte, Value: 5000.0},
		{Path: "housing", Operator: query.OpEq, Value: true},
		{Path: "average_cost", Operator: query.OpLt, Value: 10000.0},
		{Path: "careers", Operator: query.OpIn, Value: []interface{}{"Business", "UI/UX"}},
	}

	result, err := filterToBSON(filter)
	require.NoError(t, err)

	expected := bson.D{
		primitive.E{Key: "average_cost", Value: bson.D{{Key: "$gte", Value: 5000.0}, {Key: "$lt", Value: 10000.0}}},
		primitive.E{Key: "housing", Value: bson.D{{Key: "$eq", Value: true}}},
		primitive.E{Key: "careers", Value: bson.D{{Key: "$in", Value: []interface{}{"Business", "UI/UX"}}}},
	}
	assert.Equal(t, expected, result)
}

func TestFilterToBSONEmpty(t *testing.T) {
	result, err := filterToBSON(nil)
	require.NoError(t, err)
	assert.Equal(t, bson.D{}, result)
}

func TestFilterToBSONRejectsUnknownOperators(t *testing.T) {
	_, err := filterToBSON(query.Filter{{Path: "name", Operator: query.Operator("regex"), Value: ".*"}})
	assert.Error(t, err)

	_, err = filterToBSON(query.Filter{{Path: "$where", Operator: query.OpEq, Value: "1"}})
	assert.Error(t, err)
}

func TestProjectionToBSON(t *testing.T) {
	tests := []struct {
		name     string
		paths    []string
		extra    []string
		expected bson.D
	}{
		{"plain", []string{"_id", "name"}, nil,
			bson.D{{Key: "_id", Value: 1}, {Key: "name", Value: 1}}},
		{"nested covered by parent", []string{"_id", "location.city", "location"}, nil,
			bson.D{{Key: "_id", Value: 1}, {Key: "location", Value: 1}}},
		{"nested alone", []string{"_id", "location.city"}, nil,
			bson.D{{Key: "_id", Value: 1}, {Key: "location.city", Value: 1}}},
		{"duplicates", []string{"_id", "name", "name"}, nil,
			bson.D{{Key: "_id", Value: 1}, {Key: "name", Value: 1}}},
		{"expansion", []string{"_id", "name"}, []string{"courses"},
			bson.D{{Key: "_id", Value: 1}, {Key: "name", Value: 1}, {Key: "courses", Value: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, projectionToBSON(tt.paths, tt.extra...))
		})
	}
}

func TestListPipelineOrder(t *testing.T) {
	list := query.List{
		Filter: query.Filter{{Path: "housing", Operator: query.OpEq, Value: true}},
		Options: query.Options{
			Select: []string{"_id", "name"},
			Sort:   []query.SortField{{Path: "name"}, {Path: "_id", Descending: true}},
			Page:   3,
			Limit:  10,
		},
		Expand: []query.Expansion{{Relation: model.RelationCourses}},
	}

	pipeline, err := listPipeline(list, organizationRelations)
	require.NoError(t, err)
	assert.Equal(t, []string{"$match", "$sort", "$skip", "$limit", "$lookup", "$project"}, stageNames(pipeline))

	assert.Equal(t, bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: -1}}, pipeline[1][0].Value)
	assert.Equal(t, int64(20), pipeline[2][0].Value)
	assert.Equal(t, int64(10), pipeline[3][0].Value)

	lookup := pipeline[4][0].Value.(bson.D).Map()
	assert.Equal(t, collectionCourses, lookup["from"])
	assert.Equal(t, model.RelationCourses, lookup["as"])

	projection := pipeline[5][0].Value.(bson.D)
	assert.Equal(t, bson.D{{Key: "_id", Value: 1}, {Key: "name", Value: 1}, {Key: "courses", Value: 1}}, projection)
}

func TestListPipelineForwardRelation(t *testing.T) {
	list := query.List{
		Options: query.Options{Page: 1, Limit: 25},
		Expand:  []query.Expansion{{Relation: model.RelationOrganization, Fields: []string{"name", "description"}}},
	}

	pipeline, err := listPipeline(list, childRelations)
	require.NoError(t, err)
	assert.Equal(t, []string{"$match", "$skip", "$limit", "$lookup", "$unwind"}, stageNames(pipeline))

	lookup := pipeline[3][0].Value.(bson.D).Map()
	assert.Equal(t, collectionOrganizations, lookup["from"])
	assert.Equal(t, bson.D{{Key: "key", Value: "$organization_id"}}, lookup["let"])

	nested := lookup["pipeline"].([]bson.D)
	require.Len(t, nested, 2)
	assert.Equal(t, bson.D{{Key: "name", Value: 1}, {Key: "description", Value: 1}}, nested[1][0].Value)

	unwind := pipeline[4][0].Value.(bson.D).Map()
	assert.Equal(t, "$organization", unwind["path"])
	assert.Equal(t, true, unwind["preserveNullAndEmptyArrays"])
}

func TestListPipelineUnknownRelation(t *testing.T) {
	list := query.List{Expand: []query.Expansion{{Relation: model.RelationCourses}}}
	_, err := listPipeline(list, childRelations)
	assert.Error(t, err)
}

func TestAveragePipeline(t *testing.T) {
	pipeline := averagePipeline("o1", "", "tuition")
	require.Len(t, pipeline, 2)
	assert.Equal(t, bson.D{{Key: "organization_id", Value: "o1"}}, pipeline[0][0].Value)

	group := pipeline[1][0].Value.(bson.D).Map()
	assert.Equal(t, "$organization_id", group["_id"])
	assert.Equal(t, bson.D{{Key: "$avg", Value: "$tuition"}}, group["average"])

	pipeline = averagePipeline("o1", "c1", "rating")
	assert.Equal(t, bson.D{{Key: "organization_id", Value: "o1"}, {Key: "_id", Value: bson.D{{Key: "$ne", Value: "c1"}}}},
		pipeline[0][0].Value)
}

func TestRadiusFilter(t *testing.T) {
	filter := radiusFilter(-71.0657, 42.3551, 0.0025)
	within := filter[0].Value.(bson.D)[0]
	assert.Equal(t, "$geoWithin", within.Key)
	assert.Equal(t, bson.A{bson.A{-71.0657, 42.3551}, 0.0025}, within.Value.(bson.D)[0].Value)
}

func TestAverageUpdate(t *testing.T) {
	value := 9060.0
	assert.Equal(t, bson.D{{Key: "$set", Value: bson.D{{Key: "average_cost", Value: 9060.0}}}}, averageUpdate("average_cost", &value))
	assert.Equal(t, bson.D{{Key: "$unset", Value: bson.D{{Key: "average_cost", Value: ""}}}}, averageUpdate("average_cost", nil))
}
