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
	"math"
	"sync"
	"time"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/errors"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
	"golang.org/x/sync/syncmap"
)

// aggregate describes one derived organization field and the child collection it is computed from
type aggregate struct {
	name     string
	dataType logutils.MessageDataType
	average  func(storage Storage, organizationID string, excludeID string) (*float64, error)
	round    func(value float64) float64
	persist  func(storage Storage, organizationID string, value *float64) error
}

var costAggregate = aggregate{
	name:     metrics.AggregateCost,
	dataType: model.TypeCourse,
	average: func(storage Storage, organizationID string, excludeID string) (*float64, error) {
		return storage.AverageCourseTuition(organizationID, excludeID)
	},
	round: RoundUpToTen,
	persist: func(storage Storage, organizationID string, value *float64) error {
		return storage.UpdateOrganizationAverageCost(organizationID, value)
	},
}

var ratingAggregate = aggregate{
	name:     metrics.AggregateRating,
	dataType: model.TypeReview,
	average: func(storage Storage, organizationID string, excludeID string) (*float64, error) {
		return storage.AverageReviewRating(organizationID, excludeID)
	},
	persist: func(storage Storage, organizationID string, value *float64) error {
		return storage.UpdateOrganizationAverageRating(organizationID, value)
	},
}

// RoundUpToTen rounds up to the nearest multiple of 10
func RoundUpToTen(value float64) float64 {
	//drop binary noise so that exact multiples are not pushed up
	tens := math.Round(value/10*1e9) / 1e9
	return math.Ceil(tens) * 10
}

// aggregateEngine keeps the organization derived fields in line with the current children.
//
//	Mutations of the same organization are serialized in this process so that every
//	recompute reads a state which includes the mutations settled before it. Across
//	several service instances the last write wins.
type aggregateEngine struct {
	storage Storage

	locks syncmap.Map //organization id -> *sync.Mutex
}

func newAggregateEngine(storage Storage) *aggregateEngine {
	return &aggregateEngine{storage: storage}
}

// withLock runs fn while holding the organization lock
func (e *aggregateEngine) withLock(organizationID string, fn func() error) error {
	value, _ := e.locks.LoadOrStore(organizationID, &sync.Mutex{})
	mutex := value.(*sync.Mutex)
	mutex.Lock()
	defer mutex.Unlock()

	return fn()
}

// forget drops the lock of a deleted organization
func (e *aggregateEngine) forget(organizationID string) {
	e.locks.Delete(organizationID)
}

// recompute reads the average over the current children, excluding excludeID when set, and persists it.
// No children unsets the field.
func (e *aggregateEngine) recompute(agg aggregate, organizationID string, excludeID string) (*float64, error) {
	start := time.Now()

	average, err := agg.average(e.storage, organizationID, excludeID)
	if err != nil {
		metrics.RecordAggregateRecompute(agg.name, metrics.ResultError, time.Since(start))
		return nil, model.NewError(model.ErrorCodeAggregateRecomputeFailed, agg.name, "average "+string(agg.dataType),
			errors.WrapErrorAction(logutils.ActionCompute, agg.dataType, &logutils.FieldArgs{"organization_id": organizationID}, err))
	}

	var value *float64
	result := metrics.ResultEmpty
	if average != nil && !math.IsNaN(*average) {
		computed := *average
		if agg.round != nil {
			computed = agg.round(computed)
		}
		value = &computed
		result = metrics.ResultSuccess
	}

	err = agg.persist(e.storage, organizationID, value)
	if err != nil {
		metrics.RecordAggregateRecompute(agg.name, metrics.ResultError, time.Since(start))
		return nil, model.NewError(model.ErrorCodeAggregateRecomputeFailed, agg.name, "persist organization",
			errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization, &logutils.FieldArgs{"id": organizationID}, err))
	}

	metrics.RecordAggregateRecompute(agg.name, result, time.Since(start))
	return value, nil
}

// refresh recomputes and only logs a failure, the triggering mutation has already settled
func (e *aggregateEngine) refresh(l *logs.Log, agg aggregate, organizationID string, excludeID string) {
	value, err := e.recompute(agg, organizationID, excludeID)
	if err != nil {
		l.WarnError("recompute "+agg.name+" for organization "+organizationID, err)
		return
	}
	if value == nil {
		l.Infof("%s unset for organization %s", agg.name, organizationID)
		return
	}
	l.Infof("%s for organization %s is %v", agg.name, organizationID, *value)
}

// afterWrite serializes a create or update of a child with the recompute it triggers
func (e *aggregateEngine) afterWrite(l *logs.Log, agg aggregate, organizationID string, write func() error) error {
	return e.withLock(organizationID, func() error {
		err := write()
		if err != nil {
			return err
		}
		e.refresh(l, agg, organizationID, "")
		return nil
	})
}

// beforeDelete recomputes without the child which is about to be deleted and then deletes it.
// If the delete fails the aggregate is recomputed over the unchanged children.
func (e *aggregateEngine) beforeDelete(l *logs.Log, agg aggregate, organizationID string, childID string, remove func() error) error {
	return e.withLock(organizationID, func() error {
		e.refresh(l, agg, organizationID, childID)

		err := remove()
		if err != nil {
			e.refresh(l, agg, organizationID, "")
			return err
		}
		return nil
	})
}
