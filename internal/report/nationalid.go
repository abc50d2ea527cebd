// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package report

import (
	"strings"
)

const (
	kindNationalID = "national_id"
	familyHeader   = "🧬 FAMILY INFORMATION LOOKUP"
)

// NationalID renders the family (ration card) payload returned for an
// Aadhaar number.
func NationalID(payload any, number string) string {
	return render(kindNationalID, number, func(b *strings.Builder) bool {
		return buildNationalID(b, payload)
	}, NationalIDFallback)
}

// NationalIDFallback is the apology sent when the family report cannot be built.
func NationalIDFallback(number string) string {
	return familyHeader + "\n\nError processing Aadhaar data for " + number + ". Please try again."
}

func buildNationalID(b *strings.Builder, payload any) bool {
	line(b, familyHeader)
	line(b, ruleHeavy)

	data := NewRecord(payload)
	if !data.IsObject() {
		b.WriteString("No data found for this Aadhaar number.")
		return false
	}
	if data.Truthy("error") {
		line(b, "Error: %s", data.Raw("error", ""))
		return false
	}

	line(b, "🪪 Ration Card: %s", data.Str("rcId", NotAvailable))
	line(b, "📦 Scheme Name: %s", data.Str("schemeName", NA))
	line(b, "🆔 Scheme ID: %s", data.Str("schemeId", NA))
	line(b, "🏪 FPS ID: %s", data.Str("fpsId", NA))
	line(b, "🏠 Address: %s", data.Str("address", NotAvailable))
	line(b, "📍 District: %s", withCode(data, "homeDistName", "districtCode"))
	line(b, "🌆 State: %s", withCode(data, "homeStateName", "homeStateCode"))
	line(b, "✅ Eligible for ORC: %s", data.Str("allowed_onorc", NA))
	line(b, "🔁 Duplicate UID Status: %s", data.Str("dup_uid_status", NA))

	line(b, ruleHeavy)
	line(b, "👨‍👩‍👧‍👦 Family Members:\n")

	members := data.List("memberDetailsList")
	if len(members) == 0 {
		b.WriteString("No family members found.")
		return false
	}

	for i, raw := range members {
		member := NewRecord(raw)
		if !member.IsObject() {
			continue
		}
		// "releationship_name" is the provider's spelling.
		line(b, "%d. %s", i+1, titleCase(member.Str("memberName", NA)))
		line(b, "• 👤 Relation: %s (Code: %s)",
			titleCase(member.Str("releationship_name", NA)),
			member.Str("relationship_code", NA))
		line(b, "• 🆔 Member ID: %s", member.Str("memberId", NA))
		line(b, "• 🔐 UID Linked: %s\n", member.Str("uid", NA))
	}

	line(b, ruleHeavy)
	b.WriteString("💳")
	return true
}

// withCode prints "name (code)" when the code is set and the name resolved,
// otherwise the name alone.
func withCode(data Record, nameKey, codeKey string) string {
	name := data.Str(nameKey, NA)
	if data.Truthy(codeKey) && name != NA {
		return name + " (" + data.Raw(codeKey, "") + ")"
	}
	return name
}
