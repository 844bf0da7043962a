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
	"time"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/errors"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
	"gopkg.in/go-playground/validator.v9"
)

// application represents the core application code based on hexagonal architecture
type application struct {
	env     string
	version string
	build   string

	storage  Storage
	geocoder Geocoder

	listDefaults query.Defaults
	validate     *validator.Validate

	aggregates *aggregateEngine

	logger *logs.Logger
}

func newApplication(env string, version string, build string, storage Storage, geocoder Geocoder, listDefaults query.Defaults, logger *logs.Logger) *application {
	if listDefaults.Limit <= 0 {
		listDefaults.Limit = query.DefaultLimit
	}
	if listDefaults.MaxLimit <= 0 {
		listDefaults.MaxLimit = query.DefaultMaxLimit
	}
	return &application{env: env, version: version, build: build, storage: storage, geocoder: geocoder,
		listDefaults: listDefaults, validate: newValidator(), aggregates: newAggregateEngine(storage), logger: logger}
}

// start starts the core part of the application
func (app *application) start() {
	app.logger.Infof("directory core started - version:%s build:%s env:%s", app.version, app.build, app.env)
}

// authorize checks that the actor has one of the roles
func (app *application) authorize(actor model.Actor, dataType logutils.MessageDataType, roles ...string) error {
	if !actor.HasRole(roles...) {
		return model.NewError(model.ErrorCodeForbidden, string(dataType), "role "+actor.Role+" is not allowed", nil)
	}
	return nil
}

// authorizeOwner checks that the actor owns the entity or is an administrator
func (app *application) authorizeOwner(actor model.Actor, dataType logutils.MessageDataType, ownerID string) error {
	if !actor.Owns(ownerID) {
		return model.NewError(model.ErrorCodeForbidden, string(dataType), "user "+actor.ID+" is not the owner", nil)
	}
	return nil
}

func (app *application) now() time.Time {
	return time.Now().UTC()
}

// storageError keeps classified storage errors intact and wraps everything else
func storageError(action logutils.MessageActionType, dataType logutils.MessageDataType, id string, err error) error {
	if _, ok := model.AsError(err); ok {
		return err
	}
	return errors.WrapErrorAction(action, dataType, &logutils.FieldArgs{"id": id}, err)
}

func notFound(dataType logutils.MessageDataType, id string) error {
	return model.NewError(model.ErrorCodeNotFound, string(dataType), "no "+string(dataType)+" with id "+id, nil)
}
