package adapter

import (
	"fmt"

	"github.com/MKhiriev/lacnutry/internal/config"
	"github.com/MKhiriev/lacnutry/internal/logger"
	"github.com/jonboulle/clockwork"
)

// Adapters groups every outbound integration built from configuration.
// TextGenerator and BillingProvider are nil when disabled in config.
type Adapters struct {
	Receipts ReceiptVerifier
	Quiz     QuizBackend
	TextGen  TextGenerator
	Billing  BillingProvider
}

// NewAdapters builds the integrations selected by cfg.
func NewAdapters(cfg *config.StructuredConfig, clock clockwork.Clock, log *logger.Logger) (*Adapters, error) {
	adapters := &Adapters{
		Quiz: NewQuizBackend(cfg.Adapter, log.WithComponent("quiz_backend")),
	}

	if cfg.Adapter.ReceiptAddress == "" {
		adapters.Receipts = NewSandboxReceiptVerifier(cfg.Adapter, log.WithComponent("receipts"))
	} else {
		receipts, err := NewHTTPReceiptVerifier(cfg.Adapter, log.WithComponent("receipts"))
		if err != nil {
			return nil, err
		}
		adapters.Receipts = receipts
	}

	textGenLog := log.WithComponent("textgen")
	switch cfg.TextGen.Provider {
	case config.ProviderOpenAI:
		adapters.TextGen = NewOpenAIGenerator(cfg.TextGen, cfg.Adapter.RequestTimeout, textGenLog)
	case config.ProviderAnthropic:
		adapters.TextGen = NewAnthropicGenerator(cfg.TextGen, cfg.Adapter.RequestTimeout, textGenLog)
	case "":
	default:
		return nil, fmt.Errorf("unknown text generation provider %q", cfg.TextGen.Provider)
	}

	switch cfg.Billing.Provider {
	case config.BillingSandbox:
		adapters.Billing = NewSandboxBillingProvider(cfg.Billing.Plans, cfg.Billing.SandboxDelay, clock, log.WithComponent("billing"))
	case config.BillingNone, "":
	default:
		return nil, fmt.Errorf("unknown billing provider %q", cfg.Billing.Provider)
	}

	return adapters, nil
}
