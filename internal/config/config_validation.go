// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.validateApp(); err != nil {
		return err
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: driver %s needs a DSN", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	case DriverFile:
		if cfg.Storage.Files.Path == "" {
			return fmt.Errorf("%w: file driver needs a path", ErrInvalidStorageConfigs)
		}
	case DriverMemory, "":
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	switch cfg.TextGen.Provider {
	case "":
	case ProviderOpenAI, ProviderAnthropic:
		if cfg.TextGen.Model == "" {
			return fmt.Errorf("%w: model is required", ErrInvalidTextGenConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidTextGenConfigs, cfg.TextGen.Provider)
	}

	switch cfg.Billing.Provider {
	case "", BillingSandbox, BillingNone:
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidBillingConfigs, cfg.Billing.Provider)
	}
	seen := make(map[string]struct{}, len(cfg.Billing.Plans))
	for _, p := range cfg.Billing.Plans {
		if p.ID == "" || p.ProductID == "" {
			return fmt.Errorf("%w: plan needs id and product id", ErrInvalidBillingConfigs)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate plan %q", ErrInvalidBillingConfigs, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return nil
}

func (cfg *StructuredConfig) validateApp() error {
	if _, err := cfg.Location(); err != nil {
		return fmt.Errorf("%w: timezone: %w", ErrInvalidAppConfigs, err)
	}
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: log level: %w", ErrInvalidAppConfigs, err)
		}
	}
	if cfg.App.HistoryCapacity < 1 || cfg.App.HistoryCapacity > MaxHistoryCapacity {
		return fmt.Errorf("%w: history capacity must be within 1..%d, got %d", ErrInvalidAppConfigs, MaxHistoryCapacity, cfg.App.HistoryCapacity)
	}
	if cfg.App.QueueSize < MinQueueSize {
		return fmt.Errorf("%w: queue size must be at least %d, got %d", ErrInvalidAppConfigs, MinQueueSize, cfg.App.QueueSize)
	}
	return nil
}
