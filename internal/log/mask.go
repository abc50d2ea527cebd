// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

import (
	"strings"
	"unicode/utf8"
)

const summaryLimit = 120

// MaskIdentifier hides all but the last four characters of a user supplied
// identifier so info-level logs never carry full phone or Aadhaar numbers.
func MaskIdentifier(id string) string {
	id = strings.TrimSpace(id)
	n := utf8.RuneCountInString(id)
	if n == 0 {
		return ""
	}
	if n <= 4 {
		return strings.Repeat("*", n)
	}
	runes := []rune(id)
	return strings.Repeat("*", n-4) + string(runes[n-4:])
}

// Summarize trims free text to a bounded length for log fields.
func Summarize(text string) string {
	value := strings.TrimSpace(text)
	if utf8.RuneCountInString(value) <= summaryLimit {
		return value
	}
	return string([]rune(value)[:summaryLimit]) + "..."
}
