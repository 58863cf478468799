// Package observability exposes Prometheus metrics for the EcoTrack service.
// Metrics are package-level promauto collectors registered on the default
// registry and served by the API's /metrics endpoint.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Activity Metrics ───────────────────────────────────────────────────────

// ActivitiesRecorded counts logged activities by category.
var ActivitiesRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ecotrack",
	Subsystem: "activities",
	Name:      "recorded_total",
	Help:      "Total activities logged, by category.",
}, []string{"category"})

// ActivityFootprint observes the computed footprint of each logged activity.
var ActivityFootprint = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "ecotrack",
	Subsystem: "activities",
	Name:      "footprint_kg",
	Help:      "Carbon footprint per logged activity in kg CO2e.",
	Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100},
}, []string{"category"})

// ─── Goal Metrics ───────────────────────────────────────────────────────────

// GoalsCreated counts goals created by variant.
var GoalsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ecotrack",
	Subsystem: "goals",
	Name:      "created_total",
	Help:      "Total goals created, by variant.",
}, []string{"variant"})

// GoalsAbandoned counts goals abandoned before their end date.
var GoalsAbandoned = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "ecotrack",
	Subsystem: "goals",
	Name:      "abandoned_total",
	Help:      "Total goals abandoned by users.",
})

// ─── Insight Metrics ────────────────────────────────────────────────────────

// TipsEmitted counts tips generated, by tip type.
var TipsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ecotrack",
	Subsystem: "insights",
	Name:      "tips_emitted_total",
	Help:      "Total tips generated, by type.",
}, []string{"type"})

// TrendAlerts counts trend alerts raised for rising emissions.
var TrendAlerts = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "ecotrack",
	Subsystem: "insights",
	Name:      "trend_alerts_total",
	Help:      "Total trend alerts raised for rising emissions.",
})

// ─── Feed Metrics ───────────────────────────────────────────────────────────

// TipFeedClients tracks currently connected live tip feed clients.
var TipFeedClients = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "ecotrack",
	Subsystem: "feed",
	Name:      "clients",
	Help:      "Currently connected live tip feed clients.",
})
