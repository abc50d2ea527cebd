// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package report

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	commaRun = regexp.MustCompile(`,+`)

	// Upstream addresses arrive with '|' and '!' as field separators. The
	// letter 'l' is also replaced; this looks like a workaround for a data
	// quality issue in the phone provider and is kept for output
	// compatibility even though it splits words such as "Delhi".
	addressSeparators = strings.NewReplacer("|", ", ", "!", ", ", "l", ", ")
)

// titleCase upper-cases the first letter of every word. Apostrophes start a
// new word, so "o'brien" becomes "O'Brien". A Caser keeps state, so one is
// built per call.
func titleCase(s string) string {
	caser := cases.Title(language.Und)
	var b strings.Builder
	start := 0
	for i, r := range s {
		if r == '\'' || r == '’' {
			b.WriteString(caser.String(s[start:i]))
			b.WriteRune(r)
			start = i + utf8.RuneLen(r)
		}
	}
	b.WriteString(caser.String(s[start:]))
	return b.String()
}

// NormalizeAddress cleans a raw phone-provider address for display.
func NormalizeAddress(raw string) string {
	s := addressSeparators.Replace(raw)
	s = commaRun.ReplaceAllString(s, ",")
	s = strings.Trim(s, ", ")

	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = titleCase(strings.TrimSpace(p))
	}
	return strings.Join(parts, ", ")
}
