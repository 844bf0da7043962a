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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	//Boston Common
	bostonMatch = model.GeocodeResult{Latitude: 42.3551, Longitude: -71.0656, FormattedAddress: "139 Tremont St, Boston, MA 02111, US",
		StreetName: "139 Tremont St", City: "Boston", StateCode: "MA", Zipcode: "02111", CountryCode: "US"}
	//Harvard Square, about 3 miles from Boston Common
	cambridgeMatch = model.GeocodeResult{Latitude: 42.3736, Longitude: -71.1190, City: "Cambridge", StateCode: "MA", Zipcode: "02138", CountryCode: "US"}
)

func TestAngularRadius(t *testing.T) {
	radians, err := AngularRadius(earthRadiusKm, UnitKilometers)
	require.NoError(t, err)
	assert.InDelta(t, 1, radians, 1e-12)

	radians, err = AngularRadius(earthRadiusKm/kmPerMile, "")
	require.NoError(t, err)
	assert.InDelta(t, 1, radians, 1e-12)

	radians, err = AngularRadius(100, UnitMiles)
	require.NoError(t, err)
	assert.InDelta(t, 100/3963.19, radians, 1e-6)

	_, err = AngularRadius(10, "furlong")
	assert.Equal(t, model.ErrorCodeInvalidFilterValue, model.ErrorCodeOf(err))

	_, err = AngularRadius(-1, UnitMiles)
	assert.Equal(t, model.ErrorCodeInvalidFilterValue, model.ErrorCodeOf(err))
}

func TestHaversineDistance(t *testing.T) {
	distance, err := HaversineDistance(bostonMatch.Latitude, bostonMatch.Longitude, cambridgeMatch.Latitude, cambridgeMatch.Longitude, UnitMiles)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, distance, 0.3)

	distance, err = HaversineDistance(0, 0, 0, 0, UnitKilometers)
	require.NoError(t, err)
	assert.Equal(t, 0.0, distance)
}

func TestRadiusSearch(t *testing.T) {
	storage := newMemoryStorage()
	seedOrganization(storage, "o1", testPublisher.ID)
	location := model.NewLocation(bostonMatch)
	organization := storage.organizations["o1"]
	organization.Location = &location
	storage.organizations["o1"] = organization

	geocoder := genmocks.Geocoder{}
	geocoder.On("Geocode", "02138").Return([]model.GeocodeResult{cambridgeMatch, bostonMatch}, nil)

	app := newTestApp(storage, &geocoder)

	tests := []struct {
		name     string
		distance float64
		unit     string
		want     int
	}{
		{name: "includes within miles", distance: 5, unit: UnitMiles, want: 1},
		{name: "excludes below the true distance", distance: 2, unit: UnitMiles, want: 0},
		{name: "includes within kilometers", distance: 6, unit: UnitKilometers, want: 1},
		{name: "excludes below the true distance in kilometers", distance: 3, unit: UnitKilometers, want: 0},
		{name: "default unit", distance: 10, unit: "", want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			organizations, err := app.serGetOrganizationsInRadius(testLog(), "02138", tt.distance, tt.unit)
			require.NoError(t, err)
			assert.Len(t, organizations, tt.want)
		})
	}
}

func TestRadiusSearchGeocodeFailures(t *testing.T) {
	geocoder := genmocks.Geocoder{}
	geocoder.On("Geocode", "00000").Return([]model.GeocodeResult{}, nil)
	geocoder.On("Geocode", "99999").Return(nil, errors.New("circuit breaker is open"))

	storage := genmocks.Storage{}
	app := newTestApp(&storage, &geocoder)

	_, err := app.serGetOrganizationsInRadius(testLog(), "00000", 10, UnitMiles)
	assert.Equal(t, model.ErrorCodeGeocodeLookupFailed, model.ErrorCodeOf(err))

	_, err = app.serGetOrganizationsInRadius(testLog(), "99999", 10, UnitMiles)
	assert.Equal(t, model.ErrorCodeGeocodeLookupFailed, model.ErrorCodeOf(err))

	_, err = app.serGetOrganizationsInRadius(testLog(), "02138", 10, "parsec")
	assert.Equal(t, model.ErrorCodeInvalidFilterValue, model.ErrorCodeOf(err))
	geocoder.AssertNotCalled(t, "Geocode", "02138")

	storage.AssertNotCalled(t, "FindOrganizationsWithinRadius")
}
