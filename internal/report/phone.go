// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package report

import (
	"strings"
)

const kindPhone = "phone"

// Phone renders the phone lookup payload. The payload is either a list of
// records or an object carrying a "data" list and an optional "developer"
// attribution.
func Phone(payload any, number string) string {
	return render(kindPhone, number, func(b *strings.Builder) bool {
		return buildPhone(b, payload, number)
	}, PhoneFallback)
}

// PhoneFallback is the apology sent when the phone report cannot be built.
func PhoneFallback(number string) string {
	return "📞 Number Lookup Result for: " + number + "\n\nError processing data. Please try again."
}

func buildPhone(b *strings.Builder, payload any, number string) bool {
	line(b, "📞 Number Lookup Result for: %s", number)
	line(b, ruleHeavy)

	envelope := NewRecord(payload)
	records := phoneRecords(payload)
	if len(records) == 0 {
		b.WriteString("No data found for this number.")
		return false
	}

	for i, raw := range records {
		line(b, ruleLight)
		line(b, "%d. Result", i+1)

		rec := NewRecord(raw)
		if !rec.IsObject() {
			continue
		}
		writePhoneRecord(b, rec)
	}

	// Attribution is only printed below actual results.
	if envelope.Truthy("developer") {
		line(b, ruleHeavy)
		line(b, "💳 API by: %s", envelope.Raw("developer", ""))
	}
	return true
}

func phoneRecords(payload any) []any {
	switch v := payload.(type) {
	case []any:
		return v
	case map[string]any:
		return NewRecord(v).List("data")
	default:
		return nil
	}
}

func writePhoneRecord(b *strings.Builder, rec Record) {
	line(b, "• 👤 Name: %s", rec.Str("name", NotAvailable))
	line(b, "• 📱 Mobile: %s", rec.Str("mobile", NotAvailable))
	line(b, "• 👨‍👦 Father's Name: %s", rec.Str("fname", NotAvailable))

	address := rec.Str("address", NotAvailable)
	if address != NotAvailable {
		address = NormalizeAddress(address)
	}
	line(b, "• 🏠 Address: %s", address)

	line(b, "• 📞 Alt Mobile: %s", rec.Str("alt", NotAvailable))
	line(b, "• 🌐 Circle: %s", rec.Str("circle", NotAvailable))
	line(b, "• 🆔 ID No: %s", rec.Str("id", NotAvailable))
	// The provider never returns an email address.
	line(b, "• 📧 Email: %s\n", NotAvailable)
}
