package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ManuGH/lookupbot/internal/session"
)

func TestParseTrigger(t *testing.T) {
	cases := []struct {
		in   string
		want session.Trigger
		ok   bool
	}{
		{"/start", session.TriggerWelcome, true},
		{"/help", session.TriggerHelp, true},
		{ButtonHelp, session.TriggerHelp, true},
		{ButtonQuickStart, session.TriggerQuickStart, true},
		{"/phone", session.TriggerStartPhone, true},
		{"/phone@lookup_bot", session.TriggerStartPhone, true},
		{ButtonPhone, session.TriggerStartPhone, true},
		{"/aadhaar", session.TriggerStartID, true},
		{ButtonNationalID, session.TriggerStartID, true},
		{"/cancel", session.TriggerCancel, true},
		{"Cancel", session.TriggerCancel, true},
		{" cANCEL ", session.TriggerCancel, true},
		{"9945789124", session.TriggerText, true},
		{"hello", session.TriggerText, true},
		{"/unknown", session.TriggerText, false},
	}
	for _, tc := range cases {
		got, ok := ParseTrigger(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, tc.in)
		}
	}
}

func TestParseCommand_CaseInsensitive(t *testing.T) {
	got, ok := ParseCommand("PHONE")
	assert.True(t, ok)
	assert.Equal(t, session.TriggerStartPhone, got)
}
