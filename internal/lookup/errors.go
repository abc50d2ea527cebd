// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package lookup

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a lookup produced no payload.
type FailureKind string

const (
	FailureTimeout    FailureKind = "timeout"
	FailureHTTPStatus FailureKind = "http_status"
	FailureTransport  FailureKind = "transport"
	FailureParse      FailureKind = "parse"
)

var (
	// Sentinel errors for errors.Is checks by callers.
	ErrTimeout         = errors.New("lookup: request timed out")
	ErrHTTPStatus      = errors.New("lookup: unexpected http status")
	ErrTransport       = errors.New("lookup: transport failure")
	ErrParse           = errors.New("lookup: response is not a json object or array")
	ErrUnsupportedKind = errors.New("lookup: identifier kind has no lookup service")
)

// Error is a classified lookup failure.
type Error struct {
	Kind   FailureKind
	Target string // "phone" or "national_id"
	Status int
	Body   string
	Err    error // underlying transport or decode error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("lookup %s: %v", e.Target, e.sentinel())
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Body != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Body)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.sentinel()}
	}
	return []error{e.sentinel(), e.Err}
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case FailureTimeout:
		return ErrTimeout
	case FailureHTTPStatus:
		return ErrHTTPStatus
	case FailureParse:
		return ErrParse
	default:
		return ErrTransport
	}
}

// Classify returns the failure kind and status carried by err, if any.
func Classify(err error) (FailureKind, int, bool) {
	var le *Error
	if !errors.As(err, &le) {
		return "", 0, false
	}
	return le.Kind, le.Status, true
}
