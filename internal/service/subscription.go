package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/lacnutry/internal/adapter"
	"github.com/MKhiriev/lacnutry/internal/logger"
	"github.com/MKhiriev/lacnutry/models"
)

type subscriptionService struct {
	profiles ProfileStore
	provider adapter.BillingProvider
	verifier adapter.ReceiptVerifier
	plans    []models.Plan

	mu        sync.Mutex
	pending   bool
	lastError string

	runMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSubscriptionService wires the paywall. A nil provider disables buying
// and restoring; Status and Plans keep working.
func NewSubscriptionService(profiles ProfileStore, provider adapter.BillingProvider, verifier adapter.ReceiptVerifier, plans []models.Plan, log *logger.Logger) SubscriptionService {
	return &subscriptionService{
		profiles: profiles,
		provider: provider,
		verifier: verifier,
		plans:    slices.Clone(plans),
		logger:   log,
	}
}

// Run connects the billing provider and starts listening to its events.
// It implements workers.Worker and does not block.
func (s *subscriptionService) Run(ctx context.Context) {
	if s.provider == nil {
		s.logger.Info().Str("func", "*subscriptionService.Run").Msg("billing disabled")
		return
	}

	s.runMu.Lock()
	defer s.runMu.Unlock()
	if s.cancel != nil {
		return
	}

	if err := s.provider.Connect(ctx); err != nil {
		s.logger.Err(err).Str("func", "*subscriptionService.Run").Msg("billing connection failed")
		s.setResult(false, err)
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel

	events := s.provider.Events()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case <-runCtx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				s.handleEvent(runCtx, ev)
			}
		}
	}()
}

// Stop disconnects the provider and waits for the event loop.
func (s *subscriptionService) Stop() {
	s.runMu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.runMu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	s.wg.Wait()

	if err := s.provider.Disconnect(); err != nil {
		s.logger.Err(err).Str("func", "*subscriptionService.Stop").Msg("billing disconnect failed")
	}
}

func (s *subscriptionService) Plans() []models.Plan {
	return slices.Clone(s.plans)
}

func (s *subscriptionService) Status() models.SubscriptionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.SubscriptionStatus{
		HasSubscription: s.profiles.HasSubscription(),
		Pending:         s.pending,
		LastError:       s.lastError,
	}
}

func (s *subscriptionService) Purchase(ctx context.Context, planID string) error {
	if s.provider == nil {
		return ErrBillingUnavailable
	}

	idx := slices.IndexFunc(s.plans, func(p models.Plan) bool { return p.ID == planID })
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrPlanNotFound, planID)
	}
	plan := s.plans[idx]

	offerings, err := s.provider.Offerings(ctx, []string{plan.ProductID})
	if err != nil {
		return mapAdapterError(err)
	}
	if !slices.ContainsFunc(offerings, func(o models.Offering) bool { return o.ProductID == plan.ProductID }) {
		return fmt.Errorf("%w: %s", ErrProductUnavailable, plan.ProductID)
	}

	s.setResult(true, nil)
	if err = s.provider.Purchase(ctx, plan.ProductID); err != nil {
		err = mapAdapterError(err)
		s.setResult(false, err)
		return err
	}

	s.logger.Info().
		Str("func", "*subscriptionService.Purchase").
		Str("plan_id", plan.ID).
		Str("product_id", plan.ProductID).
		Msg("purchase started")
	return nil
}

// Restore grants the subscription when the store account owns any purchase.
// Owned purchases are trusted as is, they were verified when bought.
func (s *subscriptionService) Restore(ctx context.Context) error {
	if s.provider == nil {
		return ErrBillingUnavailable
	}

	purchases, err := s.provider.AvailablePurchases(ctx)
	if err != nil {
		return mapAdapterError(err)
	}
	if len(purchases) == 0 {
		return ErrNoPurchasesToRestore
	}

	s.logger.Info().Str("func", "*subscriptionService.Restore").Int("purchases", len(purchases)).Msg("subscription restored")
	return s.profiles.CompleteSubscription(ctx)
}

// ── events ────────────────────────────────────────────────────────────────────

func (s *subscriptionService) handleEvent(ctx context.Context, ev models.PurchaseEvent) {
	switch {
	case ev.Err != nil:
		if ev.Err.IsUserCancelled() {
			s.logger.Debug().Str("func", "*subscriptionService.handleEvent").Msg("purchase cancelled by user")
			s.setResult(false, nil)
			return
		}
		s.logger.Warn().Str("func", "*subscriptionService.handleEvent").Str("code", ev.Err.Code).Msg(ev.Err.Message)
		s.setResult(false, ev.Err)

	case ev.Purchase != nil:
		if ev.Purchase.PurchaseToken == "" && ev.Purchase.TransactionReceipt == "" {
			s.logger.Warn().Str("func", "*subscriptionService.handleEvent").Str("product_id", ev.Purchase.ProductID).Msg("purchase without receipt ignored")
			return
		}
		err := s.finishPurchase(ctx, *ev.Purchase)
		if err != nil {
			s.logger.Err(err).Str("func", "*subscriptionService.handleEvent").Str("product_id", ev.Purchase.ProductID).Msg("purchase not completed")
		}
		s.setResult(false, err)
	}
}

// finishPurchase verifies the receipt, acknowledges it with the store and
// grants the subscription, in that order.
func (s *subscriptionService) finishPurchase(ctx context.Context, purchase models.Purchase) error {
	result, err := s.verifier.Verify(ctx, purchase)
	if err != nil {
		return mapAdapterError(err)
	}
	if !result.Success {
		return fmt.Errorf("%w: %s", ErrPurchaseNotVerified, result.Message)
	}

	if err = s.provider.Acknowledge(ctx, purchase); err != nil {
		return mapAdapterError(err)
	}

	if err = s.profiles.CompleteSubscription(ctx); err != nil {
		// The flag is set in memory; the write is still queued.
		s.logger.Warn().Err(err).Str("func", "*subscriptionService.finishPurchase").Msg("stopped waiting for subscription write")
	}

	s.logger.Info().Str("func", "*subscriptionService.finishPurchase").Str("product_id", purchase.ProductID).Msg("subscription activated")
	return nil
}

func (s *subscriptionService) setResult(pending bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = pending
	s.lastError = ""
	if err != nil {
		var billingErr *models.BillingError
		if errors.As(err, &billingErr) && billingErr.Message != "" {
			s.lastError = billingErr.Message
		} else {
			s.lastError = err.Error()
		}
	}
}
