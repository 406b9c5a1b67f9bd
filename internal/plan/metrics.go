package plan

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	assignResultCreated   = "created"
	assignResultDuplicate = "already_assigned"
	assignResultNotFound  = "not_found"
	assignResultInvalid   = "invalid"
	assignResultFailed    = "failed"
)

var (
	planQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "procplan",
		Subsystem: "plan",
		Name:      "queries_total",
		Help:      "Total number of work plan queries broken down by mode.",
	}, []string{"mode"})

	assignments = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "procplan",
		Subsystem: "assign",
		Name:      "requests_total",
		Help:      "Total number of tender assignment requests broken down by result.",
	}, []string{"result"})
)

func recordAssignment(result string) {
	assignments.WithLabelValues(result).Inc()
}
