// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package neuprint

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "neuprint_client",
			Name:      "requests_total",
			Help:      "Requests sent to neuPrint, by endpoint and HTTP status (\"error\" for transport failures).",
		},
		[]string{"endpoint", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "neuprint_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip time of neuPrint requests.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		},
		[]string{"endpoint"},
	)
)

func observeRequest(endpoint, code string, elapsed time.Duration) {
	requestsTotal.WithLabelValues(endpoint, code).Inc()
	requestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}
