// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// OrderEvents counts order lifecycle transitions by event type.
	OrderEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "promotion_order_events_total",
		Help: "Promotion order transitions by event type.",
	}, []string{"event"})

	// EventPublishFailures counts order events that could not be delivered.
	EventPublishFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "promotion_order_event_publish_failures_total",
	})

	// AdRequestTransitions counts ad campaign request status changes.
	AdRequestTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ad_campaign_request_transitions_total",
	}, []string{"status"})

	// PlatformSyncs counts ad platform syncs by platform and outcome.
	PlatformSyncs = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ad_platform_syncs_total",
	}, []string{"platform", "outcome"})

	// EmailsSent counts campaign emails by delivery status.
	EmailsSent = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "email_campaign_recipients_total",
	}, []string{"status"})

	CatalogCacheHits = prometheus.NewCounter(prometheus.CounterOpts{Name: "catalog_cache_hits_total"})
	CatalogCacheMiss = prometheus.NewCounter(prometheus.CounterOpts{Name: "catalog_cache_miss_total"})
)

func init() {
	prometheus.MustRegister(
		OrderEvents,
		EventPublishFailures,
		AdRequestTransitions,
		PlatformSyncs,
		EmailsSent,
		CatalogCacheHits,
		CatalogCacheMiss,
	)
}
