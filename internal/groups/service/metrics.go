package service

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	groupsCreatedMetric = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "kitty",
		Name:      "groups_created_total",
		Help:      "The total number of groups created",
	})

	invitesIssuedMetric = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "kitty",
		Name:      "invites_issued_total",
		Help:      "The total number of invite tokens issued, resends included",
	})

	invitesConsumedMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kitty",
		Name:      "invites_consumed_total",
		Help:      "The total number of accept/decline attempts",
	}, []string{"decision", "result"})

	groupJoinsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kitty",
		Name:      "group_joins_total",
		Help:      "The total number of join-by-code attempts",
	}, []string{"result"})
)

// resultLabel buckets an error into a low-cardinality metric label.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrExpired):
		return "expired"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}
