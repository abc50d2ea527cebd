// Package channel holds what the chat drivers share: button labels,
// trigger recognition and the inbound handler contract.
package channel

import (
	"context"
	"strings"

	"github.com/ManuGH/lookupbot/internal/session"
)

// Reply keyboard labels.
const (
	ButtonPhone      = "📱 Phone Lookup"
	ButtonNationalID = "🆔 Aadhaar Lookup"
	ButtonHelp       = "ℹ️ Help"
	ButtonQuickStart = "🚀 Quick Start"
	ButtonCancel     = "Cancel"
)

var (
	// MainKeyboard is attached to reports.
	MainKeyboard = [][]string{
		{ButtonPhone, ButtonNationalID},
		{ButtonHelp, ButtonQuickStart},
	}
	// CancelKeyboard is attached to prompts.
	CancelKeyboard = [][]string{{ButtonCancel}}
)

// Handler consumes inbound events; *session.Machine implements it.
type Handler interface {
	Handle(ctx context.Context, ev session.Event) error
}

var commands = map[string]session.Trigger{
	"start":   session.TriggerWelcome,
	"help":    session.TriggerHelp,
	"phone":   session.TriggerStartPhone,
	"aadhaar": session.TriggerStartID,
	"cancel":  session.TriggerCancel,
}

var buttons = map[string]session.Trigger{
	ButtonPhone:      session.TriggerStartPhone,
	ButtonNationalID: session.TriggerStartID,
	ButtonHelp:       session.TriggerHelp,
	ButtonQuickStart: session.TriggerQuickStart,
}

// ParseCommand maps a bot command name, without the slash or a trailing
// "@botname", to its trigger.
func ParseCommand(name string) (session.Trigger, bool) {
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	t, ok := commands[strings.ToLower(name)]
	return t, ok
}

// ParseTrigger classifies raw message text. Unknown commands report false
// and are ignored by drivers.
func ParseTrigger(text string) (session.Trigger, bool) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "/") {
		name, _, _ := strings.Cut(text[1:], " ")
		return ParseCommand(name)
	}
	if t, ok := buttons[text]; ok {
		return t, true
	}
	if strings.EqualFold(text, "cancel") {
		return session.TriggerCancel, true
	}
	return session.TriggerText, true
}
