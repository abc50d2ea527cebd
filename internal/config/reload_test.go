// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestHolder_ReloadAppliesAndNotifies(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", "logLevel: info\n")

	loader := NewLoader(path, "")
	initial, err := loader.Load()
	require.NoError(t, err)
	h := NewHolder(initial, loader, ModeLocal)

	var prevs, nexts []AppConfig
	h.OnReload(func(prev, next AppConfig) {
		prevs = append(prevs, prev)
		nexts = append(nexts, next)
	})

	require.NoError(t, os.WriteFile(path, []byte("logLevel: debug\n"), 0o600))
	require.NoError(t, h.Reload())

	assert.Equal(t, "debug", h.Get().LogLevel)
	require.Len(t, nexts, 1)
	assert.Equal(t, "info", prevs[0].LogLevel)
	assert.Equal(t, "debug", nexts[0].LogLevel)
}

func TestHolder_InvalidReloadKeepsCurrent(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", "logLevel: info\n")

	loader := NewLoader(path, "")
	initial, err := loader.Load()
	require.NoError(t, err)
	h := NewHolder(initial, loader, ModeLocal)

	require.NoError(t, os.WriteFile(path, []byte("logLevel: loud\n"), 0o600))
	require.Error(t, h.Reload())
	assert.Equal(t, "info", h.Get().LogLevel)

	require.NoError(t, os.WriteFile(path, []byte("bogus: true\n"), 0o600))
	require.ErrorIs(t, h.Reload(), ErrUnknownConfigField)
	assert.Equal(t, "info", h.Get().LogLevel)
}

func TestHolder_WatchWithoutFileReturns(t *testing.T) {
	clearEnv(t)
	h := NewHolder(Defaults(), NewLoader("", ""), ModeLocal)
	require.NoError(t, h.Watch(context.Background()))
}

func TestHolder_WatchReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)
	clearEnv(t)
	path := writeFile(t, "config.yaml", "logLevel: info\n")

	loader := NewLoader(path, "")
	initial, err := loader.Load()
	require.NoError(t, err)
	h := NewHolder(initial, loader, ModeLocal)

	reloaded := make(chan struct{}, 1)
	h.OnReload(func(_, _ AppConfig) {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, h.Watch(ctx))
	}()

	// Retries cover the window before the watcher is registered.
	require.Eventually(t, func() bool {
		if err := os.WriteFile(path, []byte("logLevel: warn\n"), 0o600); err != nil {
			return false
		}
		select {
		case <-reloaded:
			return true
		case <-time.After(2 * time.Second):
			return false
		}
	}, 15*time.Second, 50*time.Millisecond)

	assert.Equal(t, "warn", h.Get().LogLevel)
	cancel()
	wg.Wait()
}
