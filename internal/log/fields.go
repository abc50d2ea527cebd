// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldSessionID = "session_id"
	FieldRequestID = "request_id"
	FieldChatID    = "chat_id"
	FieldUserID    = "user_id"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"
	FieldTrigger   = "trigger"

	// Dialog state fields
	FieldOldState = "old_state"
	FieldNewState = "new_state"

	// Lookup fields
	FieldIdentifier     = "identifier"
	FieldIdentifierKind = "identifier_kind"
	FieldEndpoint       = "endpoint"
	FieldStatus         = "status"
	FieldFailure        = "failure"
	FieldDurationMS     = "duration_ms"
	FieldPayload        = "payload"
)
