package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/lacnutry/internal/config"
	"github.com/MKhiriev/lacnutry/internal/logger"
	"github.com/MKhiriev/lacnutry/internal/utils"
	"github.com/MKhiriev/lacnutry/models"
)

// sandboxEntitlementTTL matches a monthly billing period.
const sandboxEntitlementTTL = 30 * 24 * time.Hour

type sandboxReceiptVerifier struct {
	entitlementKey    string
	entitlementIssuer string

	logger *logger.Logger
}

// NewSandboxReceiptVerifier returns a [ReceiptVerifier] that accepts every
// purchase carrying a token or a receipt, without any network call. It is
// used when no verification server is configured. If cfg.EntitlementKey is
// set, accepted purchases get a locally signed entitlement token.
func NewSandboxReceiptVerifier(cfg config.Adapter, log *logger.Logger) ReceiptVerifier {
	return &sandboxReceiptVerifier{
		entitlementKey:    cfg.EntitlementKey,
		entitlementIssuer: cfg.EntitlementIssuer,
		logger:            log,
	}
}

func (v *sandboxReceiptVerifier) Verify(_ context.Context, purchase models.Purchase) (models.VerificationResult, error) {
	if purchase.PurchaseToken == "" && purchase.TransactionReceipt == "" {
		return models.VerificationResult{Success: false, Message: "missing receipt"}, nil
	}

	result := models.VerificationResult{Success: true, Message: "sandbox"}
	if v.entitlementKey == "" {
		return result, nil
	}

	ent, err := utils.GenerateEntitlementToken(v.entitlementIssuer, purchase.ProductID, sandboxEntitlementTTL, v.entitlementKey)
	if err != nil {
		return models.VerificationResult{}, err
	}
	result.Entitlement = ent.String()

	v.logger.Debug().Str("func", "*sandboxReceiptVerifier.Verify").Str("product_id", purchase.ProductID).Msg("sandbox entitlement issued")
	return result, nil
}
