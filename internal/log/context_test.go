// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestContextWithRequestID(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		requestID string
		want      string
	}{
		{
			name:      "nil context",
			ctx:       nil,
			requestID: "test-id-123",
			want:      "test-id-123",
		},
		{
			name:      "background context",
			ctx:       context.Background(),
			requestID: "req-456",
			want:      "req-456",
		},
		{
			name:      "empty request ID",
			ctx:       context.Background(),
			requestID: "",
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := ContextWithRequestID(tt.ctx, tt.requestID)
			got := RequestIDFromContext(ctx)
			if got != tt.want {
				t.Errorf("RequestIDFromContext() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContextWithSessionID(t *testing.T) {
	ctx := ContextWithSessionID(context.Background(), "chat-42")
	if got := SessionIDFromContext(ctx); got != "chat-42" {
		t.Errorf("SessionIDFromContext() = %q, want %q", got, "chat-42")
	}
	if got := SessionIDFromContext(context.Background()); got != "" {
		t.Errorf("SessionIDFromContext() on empty context = %q, want empty", got)
	}
}

func TestWithContext_AddsCorrelationFields(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithSessionID(ctx, "sess-1")

	l := WithContext(ctx, base)
	l.Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log entry: %v", err)
	}
	if entry[FieldRequestID] != "req-1" {
		t.Errorf("request_id = %v, want req-1", entry[FieldRequestID])
	}
	if entry[FieldSessionID] != "sess-1" {
		t.Errorf("session_id = %v, want sess-1", entry[FieldSessionID])
	}
}

func TestWithContext_NoFieldsReturnsSameLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	l := WithContext(context.Background(), base)
	l.Info().Msg("plain")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log entry: %v", err)
	}
	if _, ok := entry[FieldRequestID]; ok {
		t.Error("did not expect request_id field")
	}
}

func TestMaskIdentifier(t *testing.T) {
	tests := map[string]string{
		"":             "",
		"123":          "***",
		"9945789124":   "******9124",
		"123456789012": "********9012",
		" 9945789124 ": "******9124",
	}
	for in, want := range tests {
		if got := MaskIdentifier(in); got != want {
			t.Errorf("MaskIdentifier(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSummarize(t *testing.T) {
	long := bytes.Repeat([]byte("a"), summaryLimit+10)
	got := Summarize(string(long))
	if len(got) != summaryLimit+3 {
		t.Errorf("Summarize() length = %d, want %d", len(got), summaryLimit+3)
	}
	if Summarize("  short  ") != "short" {
		t.Errorf("Summarize() did not trim")
	}
}
