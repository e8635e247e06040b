package adapter

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/lacnutry/internal/logger"
	"github.com/MKhiriev/lacnutry/internal/utils"
	"github.com/MKhiriev/lacnutry/models"
	"github.com/jonboulle/clockwork"
)

// Product ids understood by the sandbox store on top of the configured plans.
const (
	SandboxCancelProductID = "sandbox.cancel"
	SandboxFailProductID   = "sandbox.fail"
)

const sandboxEventsBuffer = 8

type sandboxBillingProvider struct {
	plans []models.Plan
	delay time.Duration
	clock clockwork.Clock
	ids   utils.IDGenerator

	mu        sync.Mutex
	connected bool
	closed    bool
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	events    chan models.PurchaseEvent
	owned     []models.Purchase

	logger *logger.Logger
}

// NewSandboxBillingProvider returns a [BillingProvider] simulating a store
// in process. Every purchase of a configured plan succeeds after delay.
// [SandboxCancelProductID] and [SandboxFailProductID] simulate the user
// backing out and a store failure.
func NewSandboxBillingProvider(plans []models.Plan, delay time.Duration, clock clockwork.Clock, log *logger.Logger) BillingProvider {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &sandboxBillingProvider{
		plans:  slices.Clone(plans),
		delay:  delay,
		clock:  clock,
		ids:    utils.NewUUIDGenerator(),
		events: make(chan models.PurchaseEvent, sandboxEventsBuffer),
		logger: log,
	}
}

func (p *sandboxBillingProvider) Connect(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.connected {
		return nil
	}
	if p.closed {
		return fmt.Errorf("%w: provider was disconnected", ErrBillingNotConnected)
	}
	p.ctx, p.cancel = context.WithCancel(context.Background())
	p.connected = true

	p.logger.Info().Str("func", "*sandboxBillingProvider.Connect").Msg("sandbox billing connected")
	return nil
}

func (p *sandboxBillingProvider) Disconnect() error {
	p.mu.Lock()
	if !p.connected {
		p.mu.Unlock()
		return nil
	}
	p.connected = false
	p.closed = true
	p.cancel()
	p.mu.Unlock()

	p.wg.Wait()
	close(p.events)
	return nil
}

func (p *sandboxBillingProvider) Offerings(_ context.Context, productIDs []string) ([]models.Offering, error) {
	if !p.isConnected() {
		return nil, ErrBillingNotConnected
	}

	offerings := make([]models.Offering, 0, len(productIDs))
	for _, plan := range p.plans {
		if slices.Contains(productIDs, plan.ProductID) {
			offerings = append(offerings, models.Offering{
				ProductID: plan.ProductID,
				Title:     plan.Title,
				Price:     fmt.Sprintf("%s %.2f", plan.Currency, plan.Price),
			})
		}
	}
	return offerings, nil
}

func (p *sandboxBillingProvider) Purchase(_ context.Context, productID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.connected {
		return ErrBillingNotConnected
	}

	var event models.PurchaseEvent
	switch {
	case productID == SandboxCancelProductID:
		event.Err = &models.BillingError{Code: models.BillingErrorUserCancelled, Message: "user cancelled"}
	case productID == SandboxFailProductID:
		event.Err = &models.BillingError{Code: "E_SERVICE_ERROR", Message: "sandbox store failure"}
	case p.hasProduct(productID):
		event.Purchase = &models.Purchase{
			Platform:        models.PlatformSandbox,
			ProductID:       productID,
			PurchaseToken:   p.ids.Generate(),
			TransactionID:   p.ids.Generate(),
			TransactionDate: p.clock.Now().UTC(),
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
	}

	ctx := p.ctx
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		select {
		case <-ctx.Done():
			return
		case <-p.clock.After(p.delay):
		}
		select {
		case <-ctx.Done():
		case p.events <- event:
		}
	}()

	return nil
}

func (p *sandboxBillingProvider) Acknowledge(_ context.Context, purchase models.Purchase) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.connected {
		return ErrBillingNotConnected
	}

	purchase.IsAcknowledged = true
	p.owned = append(p.owned, purchase)
	return nil
}

func (p *sandboxBillingProvider) AvailablePurchases(context.Context) ([]models.Purchase, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.connected {
		return nil, ErrBillingNotConnected
	}
	return slices.Clone(p.owned), nil
}

func (p *sandboxBillingProvider) Events() <-chan models.PurchaseEvent {
	return p.events
}

func (p *sandboxBillingProvider) isConnected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connected
}

func (p *sandboxBillingProvider) hasProduct(productID string) bool {
	return slices.ContainsFunc(p.plans, func(plan models.Plan) bool {
		return plan.ProductID == productID
	})
}
