// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound integrations of lacnutry: purchase
// receipt verification, the quiz results backend, text generation providers
// and billing providers.
//
// Every integration is reached through an interface declared here so the
// service layer never depends on a transport. HTTP integrations are built on
// resty via [utils.HTTPClient]; their non-2xx responses are mapped to the
// sentinel errors in errors.go by mapHTTPError, so callers can match them
// with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/lacnutry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ReceiptVerifier confirms a platform purchase with the verification server
// before the subscription is granted.
type ReceiptVerifier interface {
	// Verify sends the purchase receipt for validation. A nil error with
	// result.Success == false means the server rejected the receipt.
	Verify(ctx context.Context, purchase models.Purchase) (models.VerificationResult, error)
}

// QuizBackend receives completed onboarding quizzes.
type QuizBackend interface {
	// SubmitQuiz stores the quiz answers remotely.
	SubmitQuiz(ctx context.Context, submission models.QuizSubmission) error
}

// TextGenerator produces a single completion for a conversation.
type TextGenerator interface {
	// Generate returns the assistant's answer to messages. A leading
	// message with RoleSystem, if present, is the system prompt.
	Generate(ctx context.Context, messages []models.ChatMessage) (string, error)

	// Provider names the backend, used for logs and metrics labels.
	Provider() string
}

// BillingProvider is the platform store. Purchases are asynchronous: the
// outcome of Purchase is delivered later on the Events channel.
type BillingProvider interface {
	// Connect opens the store connection. It must be called before any
	// other method.
	Connect(ctx context.Context) error

	// Disconnect closes the store connection and the Events channel.
	Disconnect() error

	// Offerings returns the store products matching productIDs. Unknown ids
	// are omitted.
	Offerings(ctx context.Context, productIDs []string) ([]models.Offering, error)

	// Purchase opens the purchase flow for productID.
	Purchase(ctx context.Context, productID string) error

	// Acknowledge finishes the transaction so the store does not refund it.
	Acknowledge(ctx context.Context, purchase models.Purchase) error

	// AvailablePurchases lists purchases owned by the current store account.
	AvailablePurchases(ctx context.Context) ([]models.Purchase, error)

	// Events delivers purchase results and asynchronous billing errors.
	Events() <-chan models.PurchaseEvent
}
