// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lookupbot_session_events_total",
		Help: "Inbound dialog events by trigger",
	}, []string{"trigger"})

	sessionTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lookupbot_session_transitions_total",
		Help: "Pending question transitions",
	}, []string{"from", "to"})

	sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lookupbot_sessions_active",
		Help: "Sessions currently held by the session store",
	})

	sessionEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lookupbot_session_evictions_total",
		Help: "Sessions evicted after the inactivity window",
	})

	outboundMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lookupbot_outbound_messages_total",
		Help: "Messages handed to the chat transport",
	}, []string{"channel", "kind", "result"}) // kind=prompt|report, result=ok|error
)

// RecordSessionEvent counts one inbound event.
func RecordSessionEvent(trigger string) {
	sessionEvents.WithLabelValues(trigger).Inc()
}

// RecordSessionTransition counts a pending question change.
func RecordSessionTransition(from, to string) {
	if from == to {
		return
	}
	sessionTransitions.WithLabelValues(from, to).Inc()
}

// SetActiveSessions publishes the current store size.
func SetActiveSessions(n int) {
	sessionsActive.Set(float64(n))
}

// RecordSessionEvictions adds n evicted sessions.
func RecordSessionEvictions(n int) {
	if n <= 0 {
		return
	}
	sessionEvictions.Add(float64(n))
}

// RecordOutboundMessage counts a message sent through a chat channel.
func RecordOutboundMessage(channel, kind string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	outboundMessages.WithLabelValues(channel, kind, result).Inc()
}
