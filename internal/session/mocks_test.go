package session

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ManuGH/lookupbot/internal/identifier"
)

type mockLooker struct {
	mock.Mock
}

func (m *mockLooker) Lookup(ctx context.Context, id identifier.Identifier) (any, error) {
	args := m.Called(ctx, id)
	return args.Get(0), args.Error(1)
}

type mockDialog struct {
	mock.Mock
}

func (m *mockDialog) Prompt(ctx context.Context, sessionID, text string) error {
	return m.Called(ctx, sessionID, text).Error(0)
}

func (m *mockDialog) Report(ctx context.Context, sessionID, text string) error {
	return m.Called(ctx, sessionID, text).Error(0)
}

// texts returns the delivered texts of one method, in order.
func (m *mockDialog) texts(method string) []string {
	var out []string
	for _, c := range m.Calls {
		if c.Method == method {
			out = append(out, c.Arguments.String(2))
		}
	}
	return out
}

func newAcceptingDialog() *mockDialog {
	d := &mockDialog{}
	d.On("Prompt", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	d.On("Report", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	return d
}
