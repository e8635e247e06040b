package service

import (
	"fmt"

	"github.com/MKhiriev/lacnutry/internal/adapter"
	"github.com/MKhiriev/lacnutry/internal/config"
	"github.com/MKhiriev/lacnutry/internal/logger"
	"github.com/MKhiriev/lacnutry/internal/store"
	"github.com/MKhiriev/lacnutry/internal/validators"
	"github.com/MKhiriev/lacnutry/internal/workers"
	"github.com/MKhiriev/lacnutry/models"
	"github.com/jonboulle/clockwork"
)

type Services struct {
	ProfileStore        ProfileStore
	QuizService         QuizService
	SubscriptionService SubscriptionService
	AssistantService    AssistantService
	CatalogService      CatalogService
	AppInfoService      AppInfoService
}

// NewServices wires every service on top of the storage, the persistence
// queue and the outbound adapters. The observer may be nil.
func NewServices(
	storage store.KeyValueStorage,
	queue *workers.Queue,
	adapters *adapter.Adapters,
	cfg *config.StructuredConfig,
	build models.AppBuildInfo,
	observer TextGenObserver,
	clock clockwork.Clock,
	logger *logger.Logger,
) (*Services, error) {
	validator := validators.NewRequestValidator()

	profiles, err := NewProfileStore(storage, queue, cfg.App, clock, logger.WithComponent("profile_store"))
	if err != nil {
		return nil, fmt.Errorf("profile store: %w", err)
	}

	assistant, err := NewAssistantService(adapters.TextGen, validator, observer, clock, logger.WithComponent("assistant"))
	if err != nil {
		return nil, fmt.Errorf("assistant: %w", err)
	}

	catalog, err := NewCatalogService()
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	plans := cfg.Billing.Plans
	if len(plans) == 0 {
		plans = models.DefaultPlans()
	}

	return &Services{
		ProfileStore:        profiles,
		QuizService:         NewQuizService(profiles, adapters.Quiz, validator, clock, logger.WithComponent("quiz")),
		SubscriptionService: NewSubscriptionService(profiles, adapters.Billing, adapters.Receipts, plans, logger.WithComponent("subscription")),
		AssistantService:    assistant,
		CatalogService:      catalog,
		AppInfoService:      appInfo,
	}, nil
}
