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

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values
const (
	ResultSuccess  string = "success"
	ResultError    string = "error"
	ResultEmpty    string = "empty"
	ResultRejected string = "rejected"
)

// Aggregate label values
const (
	AggregateCost   string = "average_cost"
	AggregateRating string = "average_rating"
)

var (
	// Consistency Metrics
	AggregateRecomputes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_aggregate_recomputes_total",
			Help: "Total number of organization aggregate recomputes",
		},
		[]string{"aggregate", "result"}, // result: "success", "empty", "error"
	)

	AggregateRecomputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "directory_aggregate_recompute_duration_seconds",
			Help:    "Duration of organization aggregate recomputes in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"aggregate"},
	)

	CascadeDeletes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_cascade_deletes_total",
			Help: "Total number of organization cascade deletes",
		},
		[]string{"result"},
	)

	CascadeDeletedRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_cascade_deleted_records_total",
			Help: "Total number of child records removed by cascade deletes",
		},
		[]string{"entity"},
	)

	// Geocoding Metrics
	GeocodeRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_geocode_requests_total",
			Help: "Total number of address lookups",
		},
		[]string{"result"}, // result: "success", "empty", "error"
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "directory_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "error", "rejected"
	)

	// API Metrics
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "directory_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status_code"},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_api_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"route"},
	)
)

// RecordAggregateRecompute records the outcome of an aggregate recompute
func RecordAggregateRecompute(aggregate string, result string, duration time.Duration) {
	AggregateRecomputes.WithLabelValues(aggregate, result).Inc()
	AggregateRecomputeDuration.WithLabelValues(aggregate).Observe(duration.Seconds())
}

// RecordAPIRequest records API request metrics
func RecordAPIRequest(method string, route string, statusCode int, duration time.Duration) {
	APIRequestDuration.WithLabelValues(method, route, strconv.Itoa(statusCode)).Observe(duration.Seconds())
}

// SetCircuitBreakerState records the breaker state as a gauge value
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
