// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package lookup sends a validated identifier to its lookup service and
// returns the decoded payload or a classified failure.
package lookup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ManuGH/lookupbot/internal/identifier"
	xglog "github.com/ManuGH/lookupbot/internal/log"
	"github.com/ManuGH/lookupbot/internal/metrics"
	"github.com/ManuGH/lookupbot/internal/platform/httpx"
	"github.com/ManuGH/lookupbot/internal/telemetry"
)

const (
	DefaultTimeout = 30 * time.Second

	maxBodyBytes = 4 << 20
	maxErrorBody = 256
	tracerName   = "github.com/ManuGH/lookupbot/internal/lookup"
	outcomeOK    = "ok"
	userAgent    = "lookupbot/1"
	acceptJSON   = "application/json"
)

// Config points the orchestrator at the two lookup services.
type Config struct {
	PhoneBaseURL      string
	NationalIDBaseURL string
	NationalIDKey     string
	Timeout           time.Duration
}

// Orchestrator performs lookups. It is safe for concurrent use and never
// retries.
type Orchestrator struct {
	cfg    Config
	client *http.Client
	logger zerolog.Logger
	tracer trace.Tracer
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithHTTPClient replaces the default hardened client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *Orchestrator) {
		if c != nil {
			o.client = c
		}
	}
}

// WithLogger replaces the component logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// New builds an orchestrator. A non-positive timeout means DefaultTimeout.
func New(cfg Config, opts ...Option) *Orchestrator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	o := &Orchestrator{
		cfg:    cfg,
		logger: xglog.WithComponent("lookup"),
		tracer: telemetry.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.client == nil {
		o.client = httpx.NewClient(cfg.Timeout, httpx.WithTracing())
	}
	return o
}

// Timeout reports the per-call bound.
func (o *Orchestrator) Timeout() time.Duration {
	return o.cfg.Timeout
}

// Lookup issues exactly one request for id and returns the decoded payload,
// a map[string]any or []any with numbers kept as json.Number.
func (o *Orchestrator) Lookup(ctx context.Context, id identifier.Identifier) (any, error) {
	req, err := NewRequest(o.cfg, id)
	if err != nil {
		return nil, err
	}

	kind := id.Kind.String()
	host := req.host()
	ctx, span := o.tracer.Start(ctx, "lookup."+kind,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(telemetry.LookupAttributes(kind, host)...),
	)
	defer span.End()

	logger := xglog.WithContext(ctx, o.logger).With().
		Str(xglog.FieldIdentifierKind, kind).
		Str(xglog.FieldIdentifier, xglog.MaskIdentifier(id.Value)).
		Str(xglog.FieldEndpoint, host).
		Logger()

	start := time.Now()
	payload, status, err := o.do(ctx, req)
	elapsed := time.Since(start)

	outcome := outcomeOK
	if err != nil {
		fk, _, _ := Classify(err)
		outcome = string(fk)
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		span.SetAttributes(telemetry.ErrorAttributes(outcome)...)
		logger.Warn().
			Err(err).
			Str(xglog.FieldEvent, "lookup.failed").
			Str(xglog.FieldFailure, outcome).
			Int(xglog.FieldStatus, status).
			Int64(xglog.FieldDurationMS, elapsed.Milliseconds()).
			Msg("lookup failed")
	} else {
		logger.Info().
			Str(xglog.FieldEvent, "lookup.succeeded").
			Int(xglog.FieldStatus, status).
			Int64(xglog.FieldDurationMS, elapsed.Milliseconds()).
			Msg("lookup succeeded")
	}
	span.SetAttributes(telemetry.OutcomeAttributes(outcome, status)...)
	metrics.ObserveLookup(kind, outcome, status, elapsed)

	return payload, err
}

func (o *Orchestrator) do(ctx context.Context, req Request) (any, int, error) {
	target := req.Identifier.Kind.String()

	ctx, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.Endpoint, nil)
	if err != nil {
		return nil, 0, &Error{Kind: FailureTransport, Target: target, Err: err}
	}
	httpReq.Header.Set("Accept", acceptJSON)
	httpReq.Header.Set("User-Agent", userAgent)

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return nil, 0, &Error{Kind: transportKind(err), Target: target, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, resp.StatusCode, &Error{
			Kind:   FailureHTTPStatus,
			Target: target,
			Status: resp.StatusCode,
			Body:   string(bytes.TrimSpace(snippet)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, &Error{Kind: transportKind(err), Target: target, Err: err}
	}

	o.logger.Debug().
		Str(xglog.FieldEvent, "lookup.payload").
		Str(xglog.FieldIdentifierKind, target).
		Str(xglog.FieldPayload, xglog.Summarize(string(body))).
		Msg("raw lookup payload")

	payload, err := decodePayload(body)
	if err != nil {
		return nil, resp.StatusCode, &Error{Kind: FailureParse, Target: target, Status: resp.StatusCode, Err: err}
	}
	return payload, resp.StatusCode, nil
}

// decodePayload accepts exactly one JSON object or array.
func decodePayload(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after json value")
	}

	switch v.(type) {
	case map[string]any, []any:
		return v, nil
	default:
		return nil, errors.New("top-level json value is not an object or array")
	}
}

func transportKind(err error) FailureKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureTimeout
	}
	return FailureTransport
}
