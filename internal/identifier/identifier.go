// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package identifier classifies user supplied lookup keys.
//
// Both validators are pure and total; callers trim whitespace first.
package identifier

// Kind tags an identifier after validation.
type Kind int

const (
	KindUnknown Kind = iota
	KindPhone
	KindNationalID
)

const (
	phoneLength      = 10
	nationalIDLength = 12
)

func (k Kind) String() string {
	switch k {
	case KindPhone:
		return "phone"
	case KindNationalID:
		return "national_id"
	default:
		return "unknown"
	}
}

// Identifier is a raw user value tagged with its validated kind.
type Identifier struct {
	Value string
	Kind  Kind
}

// IsPhone reports whether s is a 10 digit mobile number starting with 6-9.
func IsPhone(s string) bool {
	if len(s) != phoneLength || !allDigits(s) {
		return false
	}
	return s[0] >= '6' && s[0] <= '9'
}

// IsNationalID reports whether s is a 12 digit national ID (Aadhaar) number.
func IsNationalID(s string) bool {
	return len(s) == nationalIDLength && allDigits(s)
}

// Classify tags s with the first kind it validates as.
func Classify(s string) Identifier {
	switch {
	case IsPhone(s):
		return Identifier{Value: s, Kind: KindPhone}
	case IsNationalID(s):
		return Identifier{Value: s, Kind: KindNationalID}
	default:
		return Identifier{Value: s, Kind: KindUnknown}
	}
}

// ASCII only; unicode.IsDigit would accept Devanagari and full-width digits.
func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
