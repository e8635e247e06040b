package adapter

import (
	"testing"

	"github.com/MKhiriev/lacnutry/internal/config"
	"github.com/MKhiriev/lacnutry/internal/logger"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdapters_Defaults(t *testing.T) {
	cfg := &config.StructuredConfig{Billing: config.Billing{Provider: config.BillingSandbox}}

	a, err := NewAdapters(cfg, clockwork.NewFakeClock(), logger.Nop())
	require.NoError(t, err)

	assert.IsType(t, &sandboxReceiptVerifier{}, a.Receipts)
	assert.IsType(t, &localQuizBackend{}, a.Quiz)
	assert.IsType(t, &sandboxBillingProvider{}, a.Billing)
	assert.Nil(t, a.TextGen)
}

func TestNewAdapters_Configured(t *testing.T) {
	cfg := &config.StructuredConfig{
		Adapter: config.Adapter{ReceiptAddress: "localhost:9000", QuizAddress: "localhost:9001"},
		TextGen: config.TextGen{Provider: config.ProviderAnthropic, Model: "m"},
		Billing: config.Billing{Provider: config.BillingNone},
	}

	a, err := NewAdapters(cfg, clockwork.NewFakeClock(), logger.Nop())
	require.NoError(t, err)

	assert.IsType(t, &httpReceiptVerifier{}, a.Receipts)
	assert.IsType(t, &httpQuizBackend{}, a.Quiz)
	assert.IsType(t, &anthropicGenerator{}, a.TextGen)
	assert.Nil(t, a.Billing)
}

func TestNewAdapters_UnknownProviders(t *testing.T) {
	_, err := NewAdapters(&config.StructuredConfig{TextGen: config.TextGen{Provider: "other"}}, nil, logger.Nop())
	assert.Error(t, err)

	_, err = NewAdapters(&config.StructuredConfig{Billing: config.Billing{Provider: "store"}}, nil, logger.Nop())
	assert.Error(t, err)
}
