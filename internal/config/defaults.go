package config

import (
	"time"

	"github.com/MKhiriev/lacnutry/models"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
	DriverFile     = "file"
	DriverMemory   = "memory"

	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"

	BillingSandbox = "sandbox"
	BillingNone    = "none"
)

const (
	// MaxHistoryCapacity is the largest scan history the app keeps.
	MaxHistoryCapacity = 50
	// MinQueueSize leaves room for a pending write on every profile key.
	MinQueueSize = 8
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:         "dev",
			Timezone:        "Local",
			LogLevel:        "debug",
			HistoryCapacity: MaxHistoryCapacity,
			QueueSize:       256,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "lacnutry.db",
			},
			Files: Files{
				Path: "lacnutry.json",
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8787",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			EntitlementIssuer: "lacnutry-receipts",
			RequestTimeout:    15 * time.Second,
		},
		TextGen: TextGen{
			MaxTokens: 1024,
		},
		Billing: Billing{
			Provider:     BillingSandbox,
			SandboxDelay: 500 * time.Millisecond,
			Plans:        models.DefaultPlans(),
		},
	}
}
