// Package local drives a single dialog session over a terminal.
package local

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ManuGH/lookupbot/internal/channel"
	"github.com/ManuGH/lookupbot/internal/metrics"
	"github.com/ManuGH/lookupbot/internal/session"
)

// Name labels this driver in logs and metrics.
const Name = "local"

// SessionID is the one session a terminal carries.
const SessionID = "local"

// CLI reads lines from in and writes dialog output to out. It implements
// session.Dialog.
type CLI struct {
	in  io.Reader
	out io.Writer
	mu  sync.Mutex
}

// NewCLI wraps a terminal.
func NewCLI(in io.Reader, out io.Writer) *CLI {
	return &CLI{in: in, out: out}
}

// Prompt prints text followed by the cancel hint.
func (c *CLI) Prompt(_ context.Context, _ string, text string) error {
	return c.write("prompt", text, channel.CancelKeyboard)
}

// Report prints text followed by the main menu.
func (c *CLI) Report(_ context.Context, _ string, text string) error {
	return c.write("report", text, channel.MainKeyboard)
}

func (c *CLI) write(kind, text string, keyboard [][]string) (err error) {
	defer func() { metrics.RecordOutboundMessage(Name, kind, err) }()

	c.mu.Lock()
	defer c.mu.Unlock()
	_, err = fmt.Fprintf(c.out, "%s\n%s\n\n", text, menu(keyboard))
	return err
}

func menu(rows [][]string) string {
	var labels []string
	for _, row := range rows {
		for _, label := range row {
			labels = append(labels, "["+label+"]")
		}
	}
	return strings.Join(labels, " ")
}

// Run feeds every input line to h until in is exhausted or ctx is done.
// Handler errors are printed and do not stop the loop.
func (c *CLI) Run(ctx context.Context, h channel.Handler) error {
	if err := h.Handle(ctx, session.Event{SessionID: SessionID, Trigger: session.TriggerWelcome}); err != nil {
		return err
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(c.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			text := strings.TrimSpace(line)
			if text == "" {
				continue
			}
			trigger, known := channel.ParseTrigger(text)
			if !known {
				continue
			}
			ev := session.Event{SessionID: SessionID, Text: text, Trigger: trigger}
			if err := h.Handle(ctx, ev); err != nil {
				c.mu.Lock()
				_, _ = fmt.Fprintf(c.out, "error: %v\n\n", err)
				c.mu.Unlock()
			}
		}
	}
}
