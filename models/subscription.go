package models

import "time"

// Platform identifies the billing platform a purchase was made on.
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
	PlatformSandbox Platform = "sandbox"
)

// BillingErrorUserCancelled is reported by billing providers when the user
// closes the purchase sheet. It is not treated as a failure.
const BillingErrorUserCancelled = "E_USER_CANCELLED"

// Plan is a purchasable subscription offering as shown on the paywall.
type Plan struct {
	// ID is the short plan key used by the API, e.g. "monthly".
	ID            string  `json:"id"`
	ProductID     string  `json:"productId"`
	Title         string  `json:"title"`
	Price         float64 `json:"price"`
	PricePerMonth float64 `json:"pricePerMonth"`
	Currency      string  `json:"currency"`
	Period        string  `json:"period"`
}

// DefaultPlans returns the monthly and annual plans.
func DefaultPlans() []Plan {
	return []Plan{
		{
			ID:            "monthly",
			ProductID:     "com.lactosefree.monthly",
			Title:         "Mensal",
			Price:         27,
			PricePerMonth: 27,
			Currency:      "R$",
			Period:        "month",
		},
		{
			ID:            "annual",
			ProductID:     "com.lactosefree.annual",
			Title:         "Anual",
			Price:         97,
			PricePerMonth: 8.08,
			Currency:      "R$",
			Period:        "year",
		},
	}
}

// Offering is a product as reported back by the billing provider.
type Offering struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Price     string `json:"price"`
}

// Purchase is a completed platform transaction that still needs server-side
// verification and acknowledgement.
type Purchase struct {
	Platform           Platform  `json:"platform"`
	ProductID          string    `json:"productId"`
	PurchaseToken      string    `json:"purchaseToken,omitempty"`
	TransactionReceipt string    `json:"transactionReceipt,omitempty"`
	TransactionID      string    `json:"transactionId,omitempty"`
	TransactionDate    time.Time `json:"transactionDate"`
	IsAcknowledged     bool      `json:"-"`
}

// BillingError is an error reported asynchronously by a billing provider.
type BillingError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *BillingError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

// IsUserCancelled reports whether the error just means the user backed out.
func (e *BillingError) IsUserCancelled() bool {
	return e != nil && e.Code == BillingErrorUserCancelled
}

// PurchaseEvent is delivered by a billing provider on its events channel.
// Exactly one of Purchase and Err is set.
type PurchaseEvent struct {
	Purchase *Purchase
	Err      *BillingError
}

// VerificationRequest is the body sent to the receipt verification server.
type VerificationRequest struct {
	Platform           Platform `json:"platform"`
	ProductID          string   `json:"productId"`
	PurchaseToken      string   `json:"purchaseToken,omitempty"`
	TransactionReceipt string   `json:"transactionReceipt,omitempty"`
	TransactionID      string   `json:"transactionId,omitempty"`
}

// NewVerificationRequest copies the verifiable fields of p.
func NewVerificationRequest(p Purchase) VerificationRequest {
	return VerificationRequest{
		Platform:           p.Platform,
		ProductID:          p.ProductID,
		PurchaseToken:      p.PurchaseToken,
		TransactionReceipt: p.TransactionReceipt,
		TransactionID:      p.TransactionID,
	}
}

// VerificationResult is the verification server's answer.
type VerificationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	// Entitlement is an optional signed token proving the subscription.
	Entitlement string `json:"entitlement,omitempty"`
}

// SubscriptionStatus is what the API reports about the subscription.
type SubscriptionStatus struct {
	HasSubscription bool   `json:"hasSubscription"`
	Pending         bool   `json:"pending"`
	LastError       string `json:"lastError,omitempty"`
}
