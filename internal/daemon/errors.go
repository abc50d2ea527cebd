// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package daemon

import "errors"

var (
	// ErrMissingHandler is returned when the HTTP handler is not provided
	ErrMissingHandler = errors.New("HTTP handler is required")

	// ErrManagerNotStarted is returned when trying to shutdown a manager that hasn't started
	ErrManagerNotStarted = errors.New("manager not started")

	// ErrManagerStarted is returned when Start is called twice
	ErrManagerStarted = errors.New("manager already started")
)
