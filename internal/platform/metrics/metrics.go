// Package metrics exposes the service's prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EntitiesCreated counts successful entity registrations.
	EntitiesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "registry_entities_created_total",
		Help: "Number of entities registered.",
	})

	// ReportsSubmitted counts annual report submissions, re-filings included.
	ReportsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "registry_reports_submitted_total",
		Help: "Number of annual report submissions.",
	})

	// ReportsReviewed counts admin review decisions by outcome.
	ReportsReviewed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "registry_reports_reviewed_total",
		Help: "Number of annual report reviews by outcome.",
	}, []string{"outcome"})

	// AuditEntries counts audit chain entries appended across all entities.
	AuditEntries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "registry_audit_entries_total",
		Help: "Number of audit log entries appended.",
	})

	// LoginAttempts counts login attempts by surface and outcome.
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "registry_login_attempts_total",
		Help: "Number of login attempts by step and outcome.",
	}, []string{"step", "outcome"})
)
