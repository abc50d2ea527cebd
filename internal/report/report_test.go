// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var v any
	require.NoError(t, dec.Decode(&v))
	return v
}

func TestPhone_ListPayload(t *testing.T) {
	payload := decode(t, `[{"name":"Ravi","mobile":"9876543210","fname":"Mohan","address":"house 12|sector 5|noida","alt":"9123456780","circle":"UP WEST","id":1234}]`)

	got := Phone(payload, "9876543210")

	want := "📞 Number Lookup Result for: 9876543210\n" +
		ruleHeavy + "\n" +
		ruleLight + "\n" +
		"1. Result\n" +
		"• 👤 Name: Ravi\n" +
		"• 📱 Mobile: 9876543210\n" +
		"• 👨‍👦 Father's Name: Mohan\n" +
		"• 🏠 Address: House 12, Sector 5, Noida\n" +
		"• 📞 Alt Mobile: 9123456780\n" +
		"• 🌐 Circle: UP WEST\n" +
		"• 🆔 ID No: 1234\n" +
		"• 📧 Email: Not Available\n\n"
	assert.Equal(t, want, got)
}

func TestPhone_ObjectPayloadWithDeveloper(t *testing.T) {
	payload := decode(t, `{"data":[{"name":"A"},{"mobile":"9000000000"}],"developer":"Acme"}`)

	got := Phone(payload, "9000000000")

	assert.Contains(t, got, "1. Result\n• 👤 Name: A\n• 📱 Mobile: Not Available\n")
	assert.Contains(t, got, "2. Result\n• 👤 Name: Not Available\n• 📱 Mobile: 9000000000\n")
	assert.True(t, strings.HasSuffix(got, ruleHeavy+"\n💳 API by: Acme\n"), got)
}

func TestPhone_NoRecords(t *testing.T) {
	cases := map[string]string{
		"empty object":       `{}`,
		"empty list":         `[]`,
		"empty data":         `{"data":[],"developer":"X"}`,
		"data not a list":    `{"data":"oops"}`,
		"scalar payload":     `42`,
		"null payload":       `null`,
		"string payload":     `"nothing"`,
		"error only payload": `{"error":"not found"}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			got := Phone(decode(t, raw), "9876543210")
			assert.Equal(t, "📞 Number Lookup Result for: 9876543210\n"+ruleHeavy+"\nNo data found for this number.", got)
			assert.NotContains(t, got, "API by")
		})
	}
}

func TestPhone_NonObjectRecordKeepsOrdinal(t *testing.T) {
	got := Phone(decode(t, `["junk",{"name":"B"}]`), "9876543210")

	assert.Contains(t, got, "1. Result\n"+ruleLight+"\n2. Result\n• 👤 Name: B\n")
}

func TestPhone_NullFieldsUsePlaceholder(t *testing.T) {
	got := Phone(decode(t, `[{"name":null,"address":null,"circle":{"a":1}}]`), "9876543210")

	assert.Contains(t, got, "• 👤 Name: Not Available\n")
	assert.Contains(t, got, "• 🏠 Address: Not Available\n")
	assert.Contains(t, got, "• 🌐 Circle: Not Available\n")
}

func TestNormalizeAddress(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"house 12|sector 5|noida", "House 12, Sector 5, Noida"},
		{"|kanpur|", "Kanpur"},
		{"a!b", "A, B"},
		{"lucknow,,up", "Ucknow, Up"},
		{"NEW DELHI", "New Delhi"},
		{"12th cross|o'brien nagar", "12Th Cross, O'Brien Nagar"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeAddress(tc.in), "input %q", tc.in)
	}
}

func TestTitleCase_Apostrophes(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"o'brien", "O'Brien"},
		{"D'SOUZA", "D'Souza"},
		{"o’neil", "O’Neil"},
		{"'quoted'", "'Quoted'"},
		{"ram kumar", "Ram Kumar"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, titleCase(tc.in), "input %q", tc.in)
	}
}

func TestNationalID_FullPayload(t *testing.T) {
	payload := decode(t, `{
		"rcId":"RC123","schemeName":"PHH","schemeId":"2","fpsId":"F9",
		"address":"Main Road","homeDistName":"Lucknow","districtCode":"162",
		"homeStateName":"Uttar Pradesh","homeStateCode":"09",
		"allowed_onorc":"Yes","dup_uid_status":"No",
		"memberDetailsList":[
			{"memberName":"RAM KUMAR","releationship_name":"SELF","relationship_code":"01","memberId":"M1","uid":"Yes"},
			{"memberName":"sita devi","releationship_name":"wife","relationship_code":"02","memberId":"M2","uid":"No"}
		]}`)

	got := NationalID(payload, "123456789012")

	want := "🧬 FAMILY INFORMATION LOOKUP\n" +
		ruleHeavy + "\n" +
		"🪪 Ration Card: RC123\n" +
		"📦 Scheme Name: PHH\n" +
		"🆔 Scheme ID: 2\n" +
		"🏪 FPS ID: F9\n" +
		"🏠 Address: Main Road\n" +
		"📍 District: Lucknow (162)\n" +
		"🌆 State: Uttar Pradesh (09)\n" +
		"✅ Eligible for ORC: Yes\n" +
		"🔁 Duplicate UID Status: No\n" +
		ruleHeavy + "\n" +
		"👨‍👩‍👧‍👦 Family Members:\n\n" +
		"1. Ram Kumar\n" +
		"• 👤 Relation: Self (Code: 01)\n" +
		"• 🆔 Member ID: M1\n" +
		"• 🔐 UID Linked: Yes\n\n" +
		"2. Sita Devi\n" +
		"• 👤 Relation: Wife (Code: 02)\n" +
		"• 🆔 Member ID: M2\n" +
		"• 🔐 UID Linked: No\n\n" +
		ruleHeavy + "\n" +
		"💳"
	assert.Equal(t, want, got)
}

func TestNationalID_ErrorShortCircuits(t *testing.T) {
	got := NationalID(decode(t, `{"error":"not found","rcId":"X"}`), "123456789012")

	assert.Equal(t, "🧬 FAMILY INFORMATION LOOKUP\n"+ruleHeavy+"\nError: not found\n", got)
}

func TestNationalID_EmptyObject(t *testing.T) {
	got := NationalID(decode(t, `{}`), "123456789012")

	assert.Contains(t, got, "🪪 Ration Card: Not Available\n")
	assert.Contains(t, got, "📦 Scheme Name: N/A\n")
	assert.Contains(t, got, "📍 District: N/A\n")
	assert.Contains(t, got, "🌆 State: N/A\n")
	assert.True(t, strings.HasSuffix(got, "Family Members:\n\nNo family members found."), got)
}

func TestNationalID_CodeRequiresName(t *testing.T) {
	got := NationalID(decode(t, `{"districtCode":"162","homeStateName":"Bihar","homeStateCode":""}`), "123456789012")

	assert.Contains(t, got, "📍 District: N/A\n")
	assert.Contains(t, got, "🌆 State: Bihar\n")
}

func TestNationalID_NumericCode(t *testing.T) {
	got := NationalID(decode(t, `{"homeDistName":"Patna","districtCode":230}`), "123456789012")

	assert.Contains(t, got, "📍 District: Patna (230)\n")
}

func TestNationalID_NonObjectPayload(t *testing.T) {
	for _, raw := range []string{`[]`, `[{"rcId":"x"}]`, `"text"`, `null`} {
		got := NationalID(decode(t, raw), "123456789012")
		assert.Equal(t, "🧬 FAMILY INFORMATION LOOKUP\n"+ruleHeavy+"\nNo data found for this Aadhaar number.", got, raw)
	}
}

func TestRender_PanicFallsBack(t *testing.T) {
	got := render("phone", "9876543210", func(*strings.Builder) bool {
		panic("boom")
	}, PhoneFallback)

	assert.Equal(t, "📞 Number Lookup Result for: 9876543210\n\nError processing data. Please try again.", got)
	assert.Contains(t, NationalIDFallback("123456789012"), "123456789012")
}
