// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package telegram drives dialog sessions over the Telegram Bot API in
// webhook mode.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5/middleware"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/ManuGH/lookupbot/internal/channel"
	xglog "github.com/ManuGH/lookupbot/internal/log"
	"github.com/ManuGH/lookupbot/internal/metrics"
	"github.com/ManuGH/lookupbot/internal/session"
)

// Name labels this driver in logs and metrics.
const Name = "telegram"

const (
	// Telegram rejects longer messages.
	maxMessageRunes = 4096
	defaultSendRate = 25
)

// Config configures the bot.
type Config struct {
	Token      string
	WebhookURL string
	// SendRate caps outbound messages per second across all chats.
	SendRate float64
	// APIEndpoint overrides tgbotapi.APIEndpoint; it must keep the two %s
	// verbs for token and method.
	APIEndpoint string
}

// Bot is a Telegram driver. It implements session.Dialog.
type Bot struct {
	api        *tgbotapi.BotAPI
	webhookURL string
	limiter    *rate.Limiter
	logger     zerolog.Logger

	inflight sync.WaitGroup
	mu       sync.Mutex
	queues   map[string]*chatQueue
}

// chatQueue holds the pending updates of one chat. A single worker drains
// it, so a chat's updates are handled in arrival order.
type chatQueue struct {
	pending []dispatch
}

type dispatch struct {
	ctx context.Context
	ev  session.Event
}

// New authenticates against the Bot API using client for every call.
func New(cfg Config, client *http.Client) (*Bot, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("telegram: bot token is required")
	}
	endpoint := cfg.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	if cfg.SendRate <= 0 {
		cfg.SendRate = defaultSendRate
	}

	api, err := tgbotapi.NewBotAPIWithClient(cfg.Token, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("telegram: connect: %w", err)
	}

	logger := xglog.WithComponent("telegram")
	logger.Info().
		Str(xglog.FieldEvent, "telegram.authorized").
		Str("bot", api.Self.UserName).
		Msg("authorized on bot account")

	return &Bot{
		api:        api,
		webhookURL: cfg.WebhookURL,
		limiter:    rate.NewLimiter(rate.Limit(cfg.SendRate), 1),
		logger:     logger,
		queues:     make(map[string]*chatQueue),
	}, nil
}

// RegisterWebhook points Telegram at the configured webhook URL.
func (b *Bot) RegisterWebhook(ctx context.Context) error {
	if b.webhookURL == "" {
		return errors.New("telegram: webhook url is required")
	}
	wh, err := tgbotapi.NewWebhook(b.webhookURL)
	if err != nil {
		return fmt.Errorf("telegram: webhook url: %w", err)
	}
	if err := b.limiter.Wait(ctx); err != nil {
		return err
	}
	if _, err := b.api.Request(wh); err != nil {
		return fmt.Errorf("telegram: set webhook: %w", err)
	}
	b.logger.Info().
		Str(xglog.FieldEvent, "telegram.webhook_registered").
		Msg("webhook registered")
	return nil
}

// WebhookHandler acknowledges each update at once and hands it to the
// chat's queue, so a slow lookup never delays Telegram's delivery. Chats
// are handled concurrently; updates within a chat keep their order.
func (b *Bot) WebhookHandler(ctx context.Context, h channel.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		update, err := b.api.HandleUpdate(r)
		if err != nil {
			b.logger.Warn().Err(err).
				Str(xglog.FieldEvent, "telegram.bad_update").
				Msg("rejecting webhook request")
			http.Error(w, "bad update", http.StatusBadRequest)
			return
		}

		ev, ok := b.toEvent(update)
		if ok {
			b.enqueue(h, dispatch{ctx: xglog.ContextWithRequestID(ctx, requestID(r)), ev: ev})
		}
		w.WriteHeader(http.StatusOK)
	})
}

// enqueue appends d to its chat's queue and starts a worker when the chat
// has none.
func (b *Bot) enqueue(h channel.Handler, d dispatch) {
	b.inflight.Add(1)

	b.mu.Lock()
	q, running := b.queues[d.ev.SessionID]
	if !running {
		q = &chatQueue{}
		b.queues[d.ev.SessionID] = q
	}
	q.pending = append(q.pending, d)
	b.mu.Unlock()

	if !running {
		go b.drain(h, d.ev.SessionID, q)
	}
}

// drain handles q until it is empty, then retires it.
func (b *Bot) drain(h channel.Handler, sessionID string, q *chatQueue) {
	for {
		b.mu.Lock()
		if len(q.pending) == 0 {
			delete(b.queues, sessionID)
			b.mu.Unlock()
			return
		}
		d := q.pending[0]
		q.pending[0] = dispatch{}
		q.pending = q.pending[1:]
		b.mu.Unlock()

		b.handle(h, d)
	}
}

func (b *Bot) handle(h channel.Handler, d dispatch) {
	defer b.inflight.Done()
	if err := h.Handle(d.ctx, d.ev); err != nil {
		logger := xglog.WithContext(d.ctx, b.logger)
		logger.Error().Err(err).
			Str(xglog.FieldEvent, "telegram.handle_failed").
			Str(xglog.FieldSessionID, d.ev.SessionID).
			Msg("handle inbound failed")
	}
}

// Wait blocks until every queued update has been handled.
func (b *Bot) Wait() {
	b.inflight.Wait()
}

func (b *Bot) toEvent(update *tgbotapi.Update) (session.Event, bool) {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return session.Event{}, false
	}
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return session.Event{}, false
	}

	var (
		trigger session.Trigger
		ok      bool
	)
	if msg.IsCommand() {
		trigger, ok = channel.ParseCommand(msg.Command())
	} else {
		trigger, ok = channel.ParseTrigger(text)
	}
	if !ok {
		b.logger.Debug().
			Str(xglog.FieldEvent, "telegram.command_ignored").
			Str("command", msg.Command()).
			Msg("ignoring unknown command")
		return session.Event{}, false
	}

	userID, firstName := resolveSender(msg.From)
	b.logger.Info().
		Str(xglog.FieldEvent, "telegram.inbound").
		Int64(xglog.FieldChatID, msg.Chat.ID).
		Str(xglog.FieldUserID, userID).
		Str(xglog.FieldTrigger, trigger.String()).
		Msg("inbound received")

	return session.Event{
		SessionID:   strconv.FormatInt(msg.Chat.ID, 10),
		Text:        text,
		Trigger:     trigger,
		DisplayName: firstName,
	}, true
}

// Prompt sends text with the cancel keyboard.
func (b *Bot) Prompt(ctx context.Context, sessionID, text string) error {
	return b.send(ctx, sessionID, text, "prompt", channel.CancelKeyboard)
}

// Report sends text with the main keyboard.
func (b *Bot) Report(ctx context.Context, sessionID, text string) error {
	return b.send(ctx, sessionID, text, "report", channel.MainKeyboard)
}

func (b *Bot) send(ctx context.Context, sessionID, text, kind string, keyboard [][]string) (err error) {
	defer func() { metrics.RecordOutboundMessage(Name, kind, err) }()

	chatID, err := strconv.ParseInt(sessionID, 10, 64)
	if err != nil {
		return fmt.Errorf("telegram: session id %q is not a chat id", sessionID)
	}

	for _, part := range splitMessage(text, maxMessageRunes) {
		if err := b.limiter.Wait(ctx); err != nil {
			return err
		}
		msg := tgbotapi.NewMessage(chatID, part)
		msg.ReplyMarkup = replyKeyboard(keyboard)
		if _, err := b.api.Send(msg); err != nil {
			return fmt.Errorf("telegram: send: %w", err)
		}
	}
	return nil
}

func replyKeyboard(rows [][]string) tgbotapi.ReplyKeyboardMarkup {
	out := make([][]tgbotapi.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, label := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
		}
		out = append(out, tgbotapi.NewKeyboardButtonRow(buttons...))
	}
	return tgbotapi.NewReplyKeyboard(out...)
}

// splitMessage cuts text into parts of at most limit runes, preferring
// line boundaries.
func splitMessage(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var parts []string
	for len(runes) > limit {
		cut := limit
		for i := limit - 1; i > 0; i-- {
			if runes[i] == '\n' {
				cut = i + 1
				break
			}
		}
		parts = append(parts, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}

func resolveSender(user *tgbotapi.User) (string, string) {
	if user == nil {
		return "", ""
	}
	return strconv.FormatInt(user.ID, 10), strings.TrimSpace(user.FirstName)
}

func requestID(r *http.Request) string {
	if id := middleware.GetReqID(r.Context()); id != "" {
		return id
	}
	return uuid.NewString()
}
