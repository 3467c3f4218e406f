package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ApplicationsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shiftmatch_applications_created_total",
			Help: "Total number of job applications created",
		},
	)

	ApplicationTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shiftmatch_application_transitions_total",
			Help: "Status transitions applied to job applications",
		},
		[]string{"from", "to"},
	)

	TransitionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shiftmatch_application_transitions_rejected_total",
			Help: "Status or confirmation mutations refused by the state machine",
		},
		[]string{"operation"},
	)

	LegalConfirmations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shiftmatch_legal_confirmations_total",
			Help: "Legal confirmations recorded, by party",
		},
		[]string{"party"},
	)

	ChatMessagesAppended = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shiftmatch_chat_messages_appended_total",
			Help: "Chat messages appended, by sender role",
		},
		[]string{"sender_role"},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shiftmatch_store_errors_total",
			Help: "Key-value store failures surfaced to callers",
		},
		[]string{"operation"},
	)
)
