// Package metrics defines all custom Prometheus metrics for the movie
// catalog API. It is the single source of truth for metric names, labels,
// and help strings; request-level metrics come from the echoprometheus
// middleware registered in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "throttled", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests rejected by the authorization gate.
// Label:
//   - reason: "missing_credentials", "invalid_token", "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication or role checks.",
	},
	[]string{"reason"},
)

// MoviesCreatedTotal counts catalog items created, by genre.
var MoviesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movies_created_total",
		Help:      "Total number of movies added to the catalog, by genre.",
	},
	[]string{"genre"},
)

// CommentsCreatedTotal counts comments posted.
var CommentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments posted.",
	},
)

// CatalogQueryDuration measures how long a catalog list query takes,
// including the store read.
var CatalogQueryDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "query_duration_seconds",
		Help:      "Duration of catalog list queries from store read to page slice.",
		Buckets:   prometheus.DefBuckets,
	},
)

// AuditQueueDepth tracks the entries waiting in each audit worker channel.
// Label:
//   - worker_id: numeric worker index
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
