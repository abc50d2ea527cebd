// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package report renders raw lookup payloads into the fixed text reports
// shown to users.
//
// Renderers never fail: missing or mistyped fields print a placeholder, and
// any internal failure is converted into a short apology that still names
// the queried identifier.
package report

import (
	"fmt"
	"strings"

	xglog "github.com/ManuGH/lookupbot/internal/log"
	"github.com/ManuGH/lookupbot/internal/metrics"
)

const (
	ruleHeavy = "━━━━━━━━━━━━━━━━━━━━━━━━━━━"
	ruleLight = "───────────────────────"
)

// render runs build and downgrades a panic to the fallback text.
func render(kind, number string, build func(b *strings.Builder) bool, fallback func(number string) string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			logger := xglog.WithComponent("report")
			logger.Error().
				Str(xglog.FieldEvent, "report.render_failed").
				Str(xglog.FieldIdentifierKind, kind).
				Str(xglog.FieldIdentifier, xglog.MaskIdentifier(number)).
				Str("panic", fmt.Sprint(r)).
				Msg("report formatting failed, sending fallback")
			metrics.RecordReportFallback(kind)
			out = fallback(number)
		}
	}()

	var b strings.Builder
	hasRecords := build(&b)
	metrics.RecordReportRendered(kind, hasRecords)
	return b.String()
}

func line(b *strings.Builder, format string, args ...any) {
	fmt.Fprintf(b, format, args...)
	b.WriteByte('\n')
}
