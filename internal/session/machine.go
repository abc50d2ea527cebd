// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package session drives the per-conversation dialog: it tracks the single
// pending question of each session, validates answers and runs the
// lookup pipeline for accepted identifiers.
package session

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ManuGH/lookupbot/internal/identifier"
	xglog "github.com/ManuGH/lookupbot/internal/log"
	"github.com/ManuGH/lookupbot/internal/lookup"
	"github.com/ManuGH/lookupbot/internal/metrics"
	"github.com/ManuGH/lookupbot/internal/report"
	"github.com/ManuGH/lookupbot/internal/telemetry"
)

// Looker performs one lookup for a validated identifier.
type Looker interface {
	Lookup(ctx context.Context, id identifier.Identifier) (any, error)
}

// Dialog delivers text to the user of a session. Prompt asks for input;
// Report delivers everything else.
type Dialog interface {
	Prompt(ctx context.Context, sessionID, text string) error
	Report(ctx context.Context, sessionID, text string) error
}

// Machine applies events to sessions. It is safe for concurrent use;
// events of one session are processed one at a time.
type Machine struct {
	store   *Store
	looker  Looker
	dialog  Dialog
	channel string
	logger  zerolog.Logger
	tracer  trace.Tracer
}

// MachineOption customizes a Machine.
type MachineOption func(*Machine)

// WithChannel names the driver in logs, spans and metrics.
func WithChannel(name string) MachineOption {
	return func(m *Machine) { m.channel = name }
}

// NewMachine wires a machine to its store and ports.
func NewMachine(store *Store, looker Looker, dialog Dialog, opts ...MachineOption) *Machine {
	m := &Machine{
		store:   store,
		looker:  looker,
		dialog:  dialog,
		channel: "unknown",
		logger:  xglog.WithComponent("session"),
		tracer:  telemetry.Tracer("github.com/ManuGH/lookupbot/internal/session"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handle processes one event. Delivery errors are returned; the session has
// already moved to its new state by then.
func (m *Machine) Handle(ctx context.Context, ev Event) error {
	if xglog.RequestIDFromContext(ctx) == "" {
		ctx = xglog.ContextWithRequestID(ctx, uuid.NewString())
	}
	ctx = xglog.ContextWithSessionID(ctx, ev.SessionID)

	text := strings.TrimSpace(ev.Text)
	trigger := ev.Trigger
	if trigger == TriggerText && strings.EqualFold(text, "cancel") {
		trigger = TriggerCancel
	}

	s := m.store.Acquire(ev.SessionID)
	defer m.store.Release(s)

	from := s.pending
	ctx, span := m.tracer.Start(ctx, "session.handle",
		trace.WithAttributes(telemetry.SessionAttributes(m.channel, trigger.String(), from.String())...))
	defer span.End()

	logger := xglog.WithContext(ctx, m.logger)
	metrics.RecordSessionEvent(trigger.String())

	var err error
	switch trigger {
	case TriggerStartPhone:
		s.pending = QuestionPhone
		err = m.dialog.Prompt(ctx, s.ID, phonePrompt)
	case TriggerStartID:
		s.pending = QuestionNationalID
		err = m.dialog.Prompt(ctx, s.ID, idPrompt)
	case TriggerCancel:
		s.pending = QuestionNone
		err = m.dialog.Report(ctx, s.ID, cancelled)
	case TriggerWelcome:
		err = m.dialog.Report(ctx, s.ID, welcomeText(ev.DisplayName))
	case TriggerHelp:
		err = m.dialog.Report(ctx, s.ID, helpText)
	case TriggerQuickStart:
		err = m.dialog.Report(ctx, s.ID, quickStart)
	default:
		err = m.answer(ctx, s, text)
	}

	to := s.pending
	metrics.RecordSessionTransition(from.String(), to.String())
	span.SetAttributes(attribute.String(telemetry.SessionNewStateKey, to.String()))

	evt := logger.Info()
	if err != nil {
		span.RecordError(err)
		evt = logger.Warn().Err(err)
	}
	evt.Str(xglog.FieldEvent, "session.event").
		Str(xglog.FieldTrigger, trigger.String()).
		Str(xglog.FieldOldState, from.String()).
		Str(xglog.FieldNewState, to.String()).
		Msg("session event handled")

	return err
}

// answer handles free text against the pending question.
func (m *Machine) answer(ctx context.Context, s *Session, text string) error {
	id := identifier.Classify(text)

	switch s.pending {
	case QuestionPhone:
		if id.Kind != identifier.KindPhone {
			return m.dialog.Prompt(ctx, s.ID, invalidPhone)
		}
	case QuestionNationalID:
		if id.Kind != identifier.KindNationalID {
			return m.dialog.Prompt(ctx, s.ID, invalidID)
		}
	default:
		if id.Kind == identifier.KindUnknown {
			return m.dialog.Report(ctx, s.ID, usageHint)
		}
	}

	s.pending = QuestionNone
	return m.run(ctx, s, id)
}

// run performs exactly one lookup and delivers its outcome.
func (m *Machine) run(ctx context.Context, s *Session, id identifier.Identifier) error {
	labels, render := phoneLabels, report.Phone
	if id.Kind == identifier.KindNationalID {
		labels, render = idLabels, report.NationalID
	}

	if err := m.dialog.Report(ctx, s.ID, searchingLine(labels, id.Value)); err != nil {
		return err
	}

	payload, err := m.looker.Lookup(ctx, id)
	if err != nil {
		return m.dialog.Report(ctx, s.ID, failureLine(labels, err))
	}

	text := render(payload, id.Value)
	if err := m.dialog.Report(ctx, s.ID, foundLine(labels, id.Value)); err != nil {
		return err
	}
	return m.dialog.Report(ctx, s.ID, text)
}

func failureLine(labels flowLabels, err error) string {
	kind, status, ok := lookup.Classify(err)
	switch {
	case ok && kind == lookup.FailureTimeout:
		return timeoutLine(labels)
	case ok && kind == lookup.FailureHTTPStatus:
		return statusLine(labels, status)
	default:
		return failedLine(labels)
	}
}
