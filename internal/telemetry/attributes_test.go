// SPDX-License-Identifier: MIT

package telemetry

import (
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestLookupAttributes(t *testing.T) {
	attrs := LookupAttributes("phone", "api.example.com")

	if len(attrs) != 2 {
		t.Fatalf("Expected 2 attributes, got %d", len(attrs))
	}
	verifyAttribute(t, attrs, LookupKindKey, "phone")
	verifyAttribute(t, attrs, HTTPHostKey, "api.example.com")
}

func TestLookupAttributes_NoHost(t *testing.T) {
	attrs := LookupAttributes("national_id", "")

	if len(attrs) != 1 {
		t.Fatalf("Expected 1 attribute, got %d", len(attrs))
	}
}

func TestOutcomeAttributes(t *testing.T) {
	attrs := OutcomeAttributes("http_status", 503)
	verifyAttribute(t, attrs, LookupOutcomeKey, "http_status")
	verifyIntAttribute(t, attrs, HTTPStatusCodeKey, 503)

	attrs = OutcomeAttributes("timeout", 0)
	if len(attrs) != 1 {
		t.Fatalf("Expected status to be omitted, got %v", attrs)
	}
}

func TestSessionAttributes(t *testing.T) {
	attrs := SessionAttributes("telegram", "start_phone", "idle")

	verifyAttribute(t, attrs, SessionChannelKey, "telegram")
	verifyAttribute(t, attrs, SessionTriggerKey, "start_phone")
	verifyAttribute(t, attrs, SessionStateKey, "idle")
}

func TestErrorAttributes(t *testing.T) {
	attrs := ErrorAttributes("timeout")

	if len(attrs) != 2 {
		t.Fatalf("Expected 2 attributes, got %d", len(attrs))
	}
	verifyBoolAttribute(t, attrs, ErrorKey, true)
	verifyAttribute(t, attrs, ErrorTypeKey, "timeout")
}

func verifyAttribute(t *testing.T, attrs []attribute.KeyValue, key, expectedValue string) {
	t.Helper()
	for _, attr := range attrs {
		if string(attr.Key) == key {
			if attr.Value.AsString() != expectedValue {
				t.Errorf("Expected %s=%s, got %s", key, expectedValue, attr.Value.AsString())
			}
			return
		}
	}
	t.Errorf("Attribute %s not found", key)
}

func verifyIntAttribute(t *testing.T, attrs []attribute.KeyValue, key string, expectedValue int) {
	t.Helper()
	for _, attr := range attrs {
		if string(attr.Key) == key {
			if attr.Value.AsInt64() != int64(expectedValue) {
				t.Errorf("Expected %s=%d, got %d", key, expectedValue, attr.Value.AsInt64())
			}
			return
		}
	}
	t.Errorf("Attribute %s not found", key)
}

func verifyBoolAttribute(t *testing.T, attrs []attribute.KeyValue, key string, expectedValue bool) {
	t.Helper()
	for _, attr := range attrs {
		if string(attr.Key) == key {
			if attr.Value.AsBool() != expectedValue {
				t.Errorf("Expected %s=%t, got %t", key, expectedValue, attr.Value.AsBool())
			}
			return
		}
	}
	t.Errorf("Attribute %s not found", key)
}
