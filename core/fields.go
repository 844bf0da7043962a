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
)

// Query keys accepted by the list endpoints. Anything not listed here is rejected.

var organizationSchema = query.Schema{
	Entity: string(model.TypeOrganization),
	Fields: map[string]query.Field{
		"id":                        query.IDField(query.IDPath),
		"name":                      query.StringField("name"),
		"slug":                      query.StringField("slug"),
		"description":               query.StringField("description"),
		"website":                   query.StringField("website"),
		"phone":                     query.StringField("phone"),
		"email":                     query.StringField("email"),
		"location":                  query.ObjectField("location"),
		"location.formattedAddress": query.StringField("location.formatted_address"),
		"location.street":           query.StringField("location.street"),
		"location.city":             query.StringField("location.city"),
		"location.state":            query.StringField("location.state"),
		"location.zipcode":          query.StringField("location.zipcode"),
		"location.country":          query.StringField("location.country"),
		"careers":                   query.StringField("careers"),
		"averageCost":               query.NumberField("average_cost"),
		"averageRating":             query.NumberField("average_rating"),
		"photo":                     query.StringField("photo"),
		"housing":                   query.BooleanField("housing"),
		"jobAssistance":             query.BooleanField("job_assistance"),
		"jobGuarantee":              query.BooleanField("job_guarantee"),
		"acceptGi":                  query.BooleanField("accept_gi"),
		"user":                      query.IDField("user_id"),
		"createdAt":                 query.DateField("date_created"),
		"updatedAt":                 query.DateField("date_updated"),
		"courses":                   query.ObjectField(model.RelationCourses),
	},
}

var courseSchema = query.Schema{
	Entity: string(model.TypeCourse),
	Fields: map[string]query.Field{
		"id":                   query.IDField(query.IDPath),
		"title":                query.StringField("title"),
		"description":          query.StringField("description"),
		"weeks":                query.IntegerField("weeks"),
		"tuition":              query.NumberField("tuition"),
		"minimumSkill":         query.StringField("minimum_skill"),
		"scholarshipAvailable": query.BooleanField("scholarship_available"),
		"organization":         query.IDField("organization_id"),
		"user":                 query.IDField("user_id"),
		"createdAt":            query.DateField("date_created"),
		"updatedAt":            query.DateField("date_updated"),
	},
}

var reviewSchema = query.Schema{
	Entity: string(model.TypeReview),
	Fields: map[string]query.Field{
		"id":           query.IDField(query.IDPath),
		"title":        query.StringField("title"),
		"text":         query.StringField("text"),
		"rating":       query.IntegerField("rating"),
		"organization": query.IDField("organization_id"),
		"user":         query.IDField("user_id"),
		"createdAt":    query.DateField("date_created"),
		"updatedAt":    query.DateField("date_updated"),
	},
}

var (
	//newest first unless the caller sorts
	defaultSort = []query.SortField{{Path: "date_created", Descending: true}}

	//organizations are listed together with their courses
	organizationsExpansion = query.Expansion{Relation: model.RelationCourses}
	//courses and reviews carry the name and description of their organization
	parentExpansion = query.Expansion{Relation: model.RelationOrganization, Fields: []string{"name", "description"}}
)

func (app *application) listDefaultsFor() query.Defaults {
	defaults := app.listDefaults
	defaults.Sort = defaultSort
	return defaults
}
