package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameActions  = "actions"
	LabelAction  = "action"
	LabelOutcome = "outcome"

	ActionFetch  = "fetch"
	ActionUpdate = "update"

	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
	OutcomeRejected  = "rejected"
)

var Actions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameActions,
		Help:      "User triggered editor actions",
		Namespace: Namespace,
	},
	[]string{LabelAction, LabelOutcome},
)
