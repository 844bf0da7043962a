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
	"strings"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
)

const (
	//UnitMiles is the default radius unit
	UnitMiles string = "mi"
	//UnitKilometers ...
	UnitKilometers string = "km"

	earthRadiusKm float64 = 6378.1
	kmPerMile     float64 = 1.609344
)

// EarthRadius gives the reference Earth radius in the requested unit
func EarthRadius(unit string) (float64, error) {
	switch strings.ToLower(unit) {
	case "", UnitMiles:
		return earthRadiusKm / kmPerMile, nil
	case UnitKilometers:
		return earthRadiusKm, nil
	}
	return 0, model.NewError(model.ErrorCodeInvalidFilterValue, "unit", "expected mi or km", nil)
}

// AngularRadius converts a linear distance to radians on the Earth sphere
func AngularRadius(distance float64, unit string) (float64, error) {
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		return 0, model.NewError(model.ErrorCodeInvalidFilterValue, "distance", "expected a non negative number", nil)
	}
	radius, err := EarthRadius(unit)
	if err != nil {
		return 0, err
	}
	return distance / radius, nil
}

// HaversineDistance gives the great circle distance between two points in the requested unit
func HaversineDistance(lat1 float64, lng1 float64, lat2 float64, lng2 float64, unit string) (float64, error) {
	radius, err := EarthRadius(unit)
	if err != nil {
		return 0, err
	}
	toRadians := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * radius * math.Asin(math.Min(1, math.Sqrt(a))), nil
}

// geocode resolves an address to the first match of the geocoding collaborator
func (app *application) geocode(l *logs.Log, address string) (*model.GeocodeResult, error) {
	address = strings.TrimSpace(address)
	if len(address) == 0 {
		return nil, model.NewError(model.ErrorCodeGeocodeLookupFailed, "address", "address is empty", nil)
	}

	matches, err := app.geocoder.Geocode(address)
	if err != nil {
		metrics.GeocodeRequests.WithLabelValues(metrics.ResultError).Inc()
		l.WarnError("geocode "+address, err)
		return nil, model.NewError(model.ErrorCodeGeocodeLookupFailed, "address", "address not found", err)
	}
	if len(matches) == 0 {
		metrics.GeocodeRequests.WithLabelValues(metrics.ResultEmpty).Inc()
		return nil, model.NewError(model.ErrorCodeGeocodeLookupFailed, "address", "address not found", nil)
	}

	metrics.GeocodeRequests.WithLabelValues(metrics.ResultSuccess).Inc()
	return &matches[0], nil
}
