// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

const masked = "***"

// ErrConfigExists is returned by WriteSample when path exists and force is unset.
var ErrConfigExists = errors.New("config file already exists")

// Dump renders cfg as YAML in file layout with secrets masked.
func Dump(cfg AppConfig) ([]byte, error) {
	return yaml.Marshal(fileView(cfg, true))
}

// Sample renders the defaults as a loadable config file.
func Sample() ([]byte, error) {
	return yaml.Marshal(fileView(Defaults(), false))
}

// WriteSample atomically writes Sample to path.
func WriteSample(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}
	data, err := Sample()
	if err != nil {
		return fmt.Errorf("render sample: %w", err)
	}

	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o600))
	if err != nil {
		return fmt.Errorf("create pending config file: %w", err)
	}
	defer func() { _ = pending.Cleanup() }()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("write config data: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace config file: %w", err)
	}
	return nil
}

func maskIf(mask bool, value string) string {
	if mask && value != "" {
		return masked
	}
	return value
}

// fileView mirrors the yaml tags of AppConfig with durations as strings.
func fileView(cfg AppConfig, mask bool) map[string]any {
	return map[string]any{
		"logLevel":   cfg.LogLevel,
		"listenAddr": cfg.ListenAddr,
		"telegram": map[string]any{
			"token":       maskIf(mask, cfg.Telegram.Token),
			"externalURL": cfg.Telegram.ExternalURL,
			"sendRate":    cfg.Telegram.SendRate,
		},
		"lookup": map[string]any{
			"phoneURL":      cfg.Lookup.PhoneURL,
			"nationalIDURL": cfg.Lookup.NationalIDURL,
			"nationalIDKey": maskIf(mask, cfg.Lookup.NationalIDKey),
			"timeout":       cfg.Lookup.Timeout.String(),
		},
		"session": map[string]any{
			"idleTTL":       cfg.Session.IdleTTL.String(),
			"sweepInterval": cfg.Session.SweepInterval.String(),
		},
		"telemetry": map[string]any{
			"enabled":      cfg.Telemetry.Enabled,
			"serviceName":  cfg.Telemetry.ServiceName,
			"environment":  cfg.Telemetry.Environment,
			"exporter":     cfg.Telemetry.Exporter,
			"endpoint":     cfg.Telemetry.Endpoint,
			"samplingRate": cfg.Telemetry.SamplingRate,
		},
	}
}
