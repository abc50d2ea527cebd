// SPDX-License-Identifier: MIT

package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
)

// Attribute keys shared by lookup and session spans.
const (
	HTTPStatusCodeKey = "http.status_code"
	HTTPHostKey       = "http.host"

	LookupKindKey    = "lookup.kind"
	LookupOutcomeKey = "lookup.outcome"

	SessionTriggerKey  = "session.trigger"
	SessionStateKey    = "session.state"
	SessionChannelKey  = "session.channel"
	SessionNewStateKey = "session.new_state"

	ErrorKey     = "error"
	ErrorTypeKey = "error.type"
)

// LookupAttributes describes an outbound lookup before it is sent.
func LookupAttributes(kind, host string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.String(LookupKindKey, kind)}
	if host != "" {
		attrs = append(attrs, attribute.String(HTTPHostKey, host))
	}
	return attrs
}

// OutcomeAttributes describes how a lookup ended. status is omitted when no
// response was received.
func OutcomeAttributes(outcome string, status int) []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.String(LookupOutcomeKey, outcome)}
	if status > 0 {
		attrs = append(attrs, attribute.Int(HTTPStatusCodeKey, status))
	}
	return attrs
}

// SessionAttributes describes a dialog event.
func SessionAttributes(channel, trigger, state string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(SessionChannelKey, channel),
		attribute.String(SessionTriggerKey, trigger),
		attribute.String(SessionStateKey, state),
	}
}

// ErrorAttributes marks a span as failed with a classified error type.
func ErrorAttributes(errorType string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Bool(ErrorKey, true),
		attribute.String(ErrorTypeKey, errorType),
	}
}
