// Package metrics defines and registers all custom Prometheus metrics for the
// contentforge API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "contentforge"

// AuthRequestsTotal counts signup/login attempts.
// Labels:
//   - operation: "signup" or "login"
//   - outcome: "ok" or "error"
var AuthRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_requests_total",
		Help:      "Total number of signup and login attempts, by outcome.",
	},
	[]string{"operation", "outcome"},
)

// PostsCreatedTotal counts newly created posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

// GenerationRequestsTotal counts generation gateway calls.
// Label:
//   - outcome: "ok" or "error"
var GenerationRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generation_requests_total",
		Help:      "Total number of content generation requests, by outcome.",
	},
	[]string{"outcome"},
)

// GenerationDuration measures end-to-end provider call latency, including the
// fallback roster.
var GenerationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Duration of content generation requests.",
		Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 20, 30, 60},
	},
)

// CacheRequestsTotal counts response-cache lookups.
// Label:
//   - result: "hit" or "miss"
var CacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_requests_total",
		Help:      "Total number of response cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
