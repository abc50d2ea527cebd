// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import "errors"

var (
	// ErrUnknownConfigField classifies strict YAML parse failures caused by unknown keys.
	// Use errors.Is(err, ErrUnknownConfigField) instead of string matching.
	ErrUnknownConfigField = errors.New("unknown config field")

	// ErrMissingBotToken is fatal in webhook mode.
	ErrMissingBotToken = errors.New("BOT_TOKEN is not set")

	// ErrMissingExternalURL is fatal in webhook mode.
	ErrMissingExternalURL = errors.New("external URL is not set (RENDER_EXTERNAL_URL or LOOKUPBOT_EXTERNAL_URL)")

	// ErrInvalidTimeout rejects a non-positive lookup timeout.
	ErrInvalidTimeout = errors.New("lookup timeout must be positive")
)
