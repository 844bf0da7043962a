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

package geocoder

import (
	"directory-building-block/core/model"
	"directory-building-block/metrics"
	stderrors "errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/errors"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
	gobreaker "github.com/sony/gobreaker/v2"
)

const (
	breakerName    string = "geocoder"
	requestTimeout        = 10 * time.Second

	typeGeocoder logutils.MessageDataType = "geocoder"
)

// Adapter implements the Geocoder interface against a MapQuest compatible address API
type Adapter struct {
	host   string
	apiKey string

	client  *http.Client
	breaker *gobreaker.CircuitBreaker[[]model.GeocodeResult]

	logger *logs.Logger
}

type addressResponse struct {
	Info struct {
		StatusCode int      `json:"statuscode"`
		Messages   []string `json:"messages"`
	} `json:"info"`
	Results []struct {
		Locations []addressLocation `json:"locations"`
	} `json:"results"`
}

type addressLocation struct {
	Street     string `json:"street"`
	City       string `json:"adminArea5"`
	State      string `json:"adminArea3"`
	Country    string `json:"adminArea1"`
	PostalCode string `json:"postalCode"`
	LatLng     struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"latLng"`
}

// Geocode resolves the address to its candidate locations, best match first
func (a *Adapter) Geocode(address string) ([]model.GeocodeResult, error) {
	results, err := a.breaker.Execute(func() ([]model.GeocodeResult, error) {
		return a.lookup(address)
	})
	if err != nil {
		if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(breakerName, metrics.ResultRejected).Inc()
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(breakerName, metrics.ResultError).Inc()
		}
		return nil, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(breakerName, metrics.ResultSuccess).Inc()
	return results, nil
}

func (a *Adapter) lookup(address string) ([]model.GeocodeResult, error) {
	query := url.Values{}
	query.Set("key", a.apiKey)
	query.Set("location", address)

	req, err := http.NewRequest(http.MethodGet, a.host+"/geocoding/v1/address?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionCreate, logutils.TypeRequest, nil, err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionSend, logutils.TypeRequest, nil, err)
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionRead, logutils.TypeResponse, nil, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.ErrorData(logutils.StatusInvalid, logutils.TypeResponse, &logutils.FieldArgs{"status_code": resp.StatusCode, "error": string(body)})
	}

	var response addressResponse
	err = json.Unmarshal(body, &response)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionUnmarshal, logutils.TypeResponseBody, nil, err)
	}
	if response.Info.StatusCode != 0 {
		return nil, errors.ErrorData(logutils.StatusInvalid, typeGeocoder, &logutils.FieldArgs{"statuscode": response.Info.StatusCode, "messages": response.Info.Messages})
	}

	results := []model.GeocodeResult{}
	for _, result := range response.Results {
		for _, location := range result.Locations {
			results = append(results, geocodeResultFromLocation(location))
		}
	}
	return results, nil
}

func geocodeResultFromLocation(location addressLocation) model.GeocodeResult {
	parts := []string{}
	for _, part := range []string{location.Street, location.City, strings.TrimSpace(location.State + " " + location.PostalCode), location.Country} {
		if len(part) > 0 {
			parts = append(parts, part)
		}
	}

	return model.GeocodeResult{Latitude: location.LatLng.Lat, Longitude: location.LatLng.Lng,
		FormattedAddress: strings.Join(parts, ", "), StreetName: location.Street, City: location.City,
		StateCode: location.State, Zipcode: location.PostalCode, CountryCode: location.Country}
}

func stateValue(state gobreaker.State) int {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// NewGeocoderAdapter creates a new geocoder adapter instance
func NewGeocoderAdapter(host string, apiKey string, logger *logs.Logger) *Adapter {
	metrics.SetCircuitBreakerState(breakerName, stateValue(gobreaker.StateClosed))

	breaker := gobreaker.NewCircuitBreaker[[]model.GeocodeResult](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Infof("circuit breaker %s: %s -> %s", name, from.String(), to.String())
			metrics.SetCircuitBreakerState(name, stateValue(to))
		},
	})

	return &Adapter{host: strings.TrimSuffix(host, "/"), apiKey: apiKey,
		client: &http.Client{Timeout: requestTimeout}, breaker: breaker, logger: logger}
}
