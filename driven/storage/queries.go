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
	"strings"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/errors"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mongoOperators is the complete set of query operators the adapter emits
var mongoOperators = map[query.Operator]string{
	query.OpEq:  "$eq",
	query.OpNe:  "$ne",
	query.OpGt:  "$gt",
	query.OpGte: "$gte",
	query.OpLt:  "$lt",
	query.OpLte: "$lte",
	query.OpIn:  "$in",
}

// relation describes how an expansion is joined
type relation struct {
	from         string
	localField   string
	foreignField string
	single       bool //forward reference, unwound to a single document
}

var organizationRelations = map[string]relation{
	model.RelationCourses: {from: collectionCourses, localField: "_id", foreignField: "organization_id"},
}

var childRelations = map[string]relation{
	model.RelationOrganization: {from: collectionOrganizations, localField: "organization_id", foreignField: "_id", single: true},
}

// filterToBSON translates compiled conditions, conditions on the same path share one operator document
func filterToBSON(filter query.Filter) (bson.D, error) {
	result := bson.D{}
	positions := map[string]int{}
	for _, condition := range filter {
		operator, ok := mongoOperators[condition.Operator]
		if !ok {
			return nil, errors.ErrorData(logutils.StatusInvalid, "filter operator", &logutils.FieldArgs{"operator": condition.Operator})
		}
		if strings.HasPrefix(condition.Path, "$") {
			return nil, errors.ErrorData(logutils.StatusInvalid, "filter path", &logutils.FieldArgs{"path": condition.Path})
		}

		expression := primitive.E{Key: operator, Value: condition.Value}
		if position, ok := positions[condition.Path]; ok {
			operators := result[position].Value.(bson.D)
			result[position].Value = append(operators, expression)
			continue
		}
		positions[condition.Path] = len(result)
		result = append(result, primitive.E{Key: condition.Path, Value: bson.D{expression}})
	}
	return result, nil
}

func sortToBSON(sortFields []query.SortField) bson.D {
	result := bson.D{}
	for _, sortField := range sortFields {
		direction := 1
		if sortField.Descending {
			direction = -1
		}
		result = append(result, primitive.E{Key: sortField.Path, Value: direction})
	}
	return result
}

// projectionToBSON includes the selected paths, a path nested in another selected path is dropped
func projectionToBSON(paths []string, extra ...string) bson.D {
	all := append(append([]string{}, paths...), extra...)
	result := bson.D{}
	for _, path := range all {
		covered := false
		for _, other := range all {
			if other != path && strings.HasPrefix(path, other+".") {
				covered = true
				break
			}
		}
		if covered {
			continue
		}
		duplicate := false
		for _, e := range result {
			if e.Key == path {
				duplicate = true
				break
			}
		}
		if !duplicate {
			result = append(result, primitive.E{Key: path, Value: 1})
		}
	}
	return result
}

func lookupStages(expansion query.Expansion, rel relation) []bson.D {
	lookup := bson.D{
		primitive.E{Key: "from", Value: rel.from},
		primitive.E{Key: "let", Value: bson.D{primitive.E{Key: "key", Value: "$" + rel.localField}}},
	}
	pipeline := []bson.D{
		{primitive.E{Key: "$match", Value: bson.D{primitive.E{Key: "$expr", Value: bson.D{
			primitive.E{Key: "$eq", Value: bson.A{"$" + rel.foreignField, "$$key"}}}}}}},
	}
	if len(expansion.Fields) > 0 {
		pipeline = append(pipeline, bson.D{primitive.E{Key: "$project", Value: projectionToBSON(expansion.Fields)}})
	}
	lookup = append(lookup, primitive.E{Key: "pipeline", Value: pipeline}, primitive.E{Key: "as", Value: expansion.Relation})

	stages := []bson.D{{primitive.E{Key: "$lookup", Value: lookup}}}
	if rel.single {
		stages = append(stages, bson.D{primitive.E{Key: "$unwind", Value: bson.D{
			primitive.E{Key: "path", Value: "$" + expansion.Relation},
			primitive.E{Key: "preserveNullAndEmptyArrays", Value: true}}}})
	}
	return stages
}

// listPipeline builds match, sort, skip, limit, expansions and projection as a single aggregation
func listPipeline(list query.List, relations map[string]relation) ([]bson.D, error) {
	match, err := filterToBSON(list.Filter)
	if err != nil {
		return nil, err
	}

	pipeline := []bson.D{{primitive.E{Key: "$match", Value: match}}}
	if len(list.Options.Sort) > 0 {
		pipeline = append(pipeline, bson.D{primitive.E{Key: "$sort", Value: sortToBSON(list.Options.Sort)}})
	}
	if list.Options.Limit > 0 {
		pipeline = append(pipeline, bson.D{primitive.E{Key: "$skip", Value: list.Options.Skip()}},
			bson.D{primitive.E{Key: "$limit", Value: int64(list.Options.Limit)}})
	}

	expanded := []string{}
	for _, expansion := range list.Expand {
		rel, ok := relations[expansion.Relation]
		if !ok {
			return nil, errors.ErrorData(logutils.StatusInvalid, "relation", &logutils.FieldArgs{"relation": expansion.Relation})
		}
		pipeline = append(pipeline, lookupStages(expansion, rel)...)
		expanded = append(expanded, expansion.Relation)
	}

	if len(list.Options.Select) > 0 {
		pipeline = append(pipeline, bson.D{primitive.E{Key: "$project", Value: projectionToBSON(list.Options.Select, expanded...)}})
	}
	return pipeline, nil
}

// averagePipeline averages field over the children of an organization, excludeID is left out when set
func averagePipeline(organizationID string, excludeID string, field string) []bson.D {
	match := bson.D{primitive.E{Key: "organization_id", Value: organizationID}}
	if len(excludeID) > 0 {
		match = append(match, primitive.E{Key: "_id", Value: bson.D{primitive.E{Key: "$ne", Value: excludeID}}})
	}
	return []bson.D{
		{primitive.E{Key: "$match", Value: match}},
		{primitive.E{Key: "$group", Value: bson.D{
			primitive.E{Key: "_id", Value: "$organization_id"},
			primitive.E{Key: "average", Value: bson.D{primitive.E{Key: "$avg", Value: "$" + field}}}}}},
	}
}

// radiusFilter selects the points within radians of the center
func radiusFilter(longitude float64, latitude float64, radians float64) bson.D {
	return bson.D{primitive.E{Key: "location", Value: bson.D{primitive.E{Key: "$geoWithin", Value: bson.D{
		primitive.E{Key: "$centerSphere", Value: bson.A{bson.A{longitude, latitude}, radians}}}}}}}
}

// averageUpdate sets the derived field or unsets it when there is no value
func averageUpdate(field string, value *float64) bson.D {
	if value == nil {
		return bson.D{primitive.E{Key: "$unset", Value: bson.D{primitive.E{Key: field, Value: ""}}}}
	}
	return bson.D{primitive.E{Key: "$set", Value: bson.D{primitive.E{Key: field, Value: *value}}}}
}
