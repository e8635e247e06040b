package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/lacnutry/internal/config"
	"github.com/MKhiriev/lacnutry/internal/logger"
	"github.com/MKhiriev/lacnutry/internal/utils"
	"github.com/MKhiriev/lacnutry/models"
)

const verifyReceiptPath = "/api/receipts/verify"

type httpReceiptVerifier struct {
	client *utils.HTTPClient
	signer *utils.Signer

	entitlementKey    string
	entitlementIssuer string

	logger *logger.Logger
}

// NewHTTPReceiptVerifier constructs a [ReceiptVerifier] calling the
// verification server at cfg.ReceiptAddress.
//
// When cfg.HashKey is set the request body is signed into the HashSHA256
// header and a signed response is checked against the same key. When
// cfg.EntitlementKey is set, an entitlement token in a successful answer must
// validate against it.
func NewHTTPReceiptVerifier(cfg config.Adapter, log *logger.Logger) (ReceiptVerifier, error) {
	baseURL := utils.NormalizeBaseURL(cfg.ReceiptAddress)
	if baseURL == "" {
		return nil, fmt.Errorf("%w: empty receipt address", ErrInvalidAddress)
	}

	return &httpReceiptVerifier{
		client:            utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		signer:            utils.NewSigner(cfg.HashKey),
		entitlementKey:    cfg.EntitlementKey,
		entitlementIssuer: cfg.EntitlementIssuer,
		logger:            log,
	}, nil
}

// Verify implements [ReceiptVerifier]. It POSTs the receipt to
// POST /api/receipts/verify.
func (v *httpReceiptVerifier) Verify(ctx context.Context, purchase models.Purchase) (models.VerificationResult, error) {
	body, err := json.Marshal(models.NewVerificationRequest(purchase))
	if err != nil {
		return models.VerificationResult{}, fmt.Errorf("encode verification request: %w", err)
	}

	req := v.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if v.signer.Enabled() {
		req.SetHeader(utils.HashHeader, v.signer.SignHex(body))
	}

	resp, err := req.Post(verifyReceiptPath)
	if err != nil {
		return models.VerificationResult{}, fmt.Errorf("verify receipt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VerificationResult{}, err
	}

	if v.signer.Enabled() {
		if sig := resp.Header().Get(utils.HashHeader); sig != "" && !v.signer.Verify(resp.Body(), sig) {
			return models.VerificationResult{}, ErrInvalidSignature
		}
	}

	var result models.VerificationResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.VerificationResult{}, fmt.Errorf("decode verification response: %w", err)
	}

	if err = v.checkEntitlement(purchase, result); err != nil {
		return models.VerificationResult{}, err
	}

	v.logger.Debug().
		Str("func", "*httpReceiptVerifier.Verify").
		Str("product_id", purchase.ProductID).
		Bool("success", result.Success).
		Msg("receipt verified")

	return result, nil
}

func (v *httpReceiptVerifier) checkEntitlement(purchase models.Purchase, result models.VerificationResult) error {
	if !result.Success || result.Entitlement == "" || v.entitlementKey == "" {
		return nil
	}

	ent, err := utils.ValidateEntitlementToken(result.Entitlement, v.entitlementKey, v.entitlementIssuer)
	if err != nil {
		return err
	}
	if ent.ProductID() != purchase.ProductID {
		return fmt.Errorf("%w: granted for %q, purchased %q", utils.ErrInvalidEntitlement, ent.ProductID(), purchase.ProductID)
	}

	return nil
}
