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
	"context"
	"time"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collectionOrganizations string = "organizations"
	collectionCourses       string = "courses"
	collectionReviews       string = "reviews"
)

type database struct {
	mongoDBAuth  string
	mongoDBName  string
	mongoTimeout time.Duration

	db       *mongo.Database
	dbClient *mongo.Client

	logger *logs.Logger

	organizations *collectionWrapper
	courses       *collectionWrapper
	reviews       *collectionWrapper
}

func (m *database) start() error {
	m.logger.Info("database -> start")

	//connect to the database
	clientOptions := options.Client().ApplyURI(m.mongoDBAuth)
	connectContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	client, err := mongo.Connect(connectContext, clientOptions)
	cancel()
	if err != nil {
		return err
	}

	//ping the database
	pingContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	err = client.Ping(pingContext, nil)
	cancel()
	if err != nil {
		return err
	}

	//apply checks
	db := client.Database(m.mongoDBName)

	organizations := &collectionWrapper{database: m, coll: db.Collection(collectionOrganizations)}
	err = m.applyOrganizationsChecks(organizations)
	if err != nil {
		return err
	}

	courses := &collectionWrapper{database: m, coll: db.Collection(collectionCourses)}
	err = m.applyCoursesChecks(courses)
	if err != nil {
		return err
	}

	reviews := &collectionWrapper{database: m, coll: db.Collection(collectionReviews)}
	err = m.applyReviewsChecks(reviews)
	if err != nil {
		return err
	}

	//asign the db, db client and the collections
	m.db = db
	m.dbClient = client
	m.organizations = organizations
	m.courses = courses
	m.reviews = reviews

	return nil
}

func (m *database) applyOrganizationsChecks(organizations *collectionWrapper) error {
	m.logger.Info("apply organizations checks.....")

	//add name index - unique
	err := organizations.AddIndex(bson.D{primitive.E{Key: "name", Value: 1}}, true)
	if err != nil {
		return err
	}

	//add location index - radius search
	err = organizations.AddIndex(bson.D{primitive.E{Key: "location", Value: "2dsphere"}}, false)
	if err != nil {
		return err
	}

	//add user_id index
	err = organizations.AddIndex(bson.D{primitive.E{Key: "user_id", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("organizations checks passed")
	return nil
}

func (m *database) applyCoursesChecks(courses *collectionWrapper) error {
	m.logger.Info("apply courses checks.....")

	//add organization_id index
	err := courses.AddIndex(bson.D{primitive.E{Key: "organization_id", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("courses checks passed")
	return nil
}

func (m *database) applyReviewsChecks(reviews *collectionWrapper) error {
	m.logger.Info("apply reviews checks.....")

	//add organization_id and user_id index - unique, one review per user and organization
	err := reviews.AddIndex(bson.D{primitive.E{Key: "organization_id", Value: 1}, primitive.E{Key: "user_id", Value: 1}}, true)
	if err != nil {
		return err
	}

	m.logger.Info("reviews checks passed")
	return nil
}

func (m *database) stop() error {
	if m.dbClient == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	defer cancel()
	return m.dbClient.Disconnect(ctx)
}
