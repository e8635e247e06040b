package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/lacnutry/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidEntitlement is returned when an entitlement token fails
// validation or lacks the product claim.
var ErrInvalidEntitlement = errors.New("invalid entitlement token")

// GenerateEntitlementToken creates a signed HMAC-SHA256 entitlement token for
// productID valid for duration.
//
// All parameters are required. Returns an error if any of them are empty or zero.
func GenerateEntitlementToken(issuer, productID string, duration time.Duration, signKey string) (models.Entitlement, error) {
	if issuer == "" || productID == "" || duration == 0 || signKey == "" {
		return models.Entitlement{}, errors.New("invalid params for generating entitlement token")
	}

	now := time.Now()
	claims := models.EntitlementClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   productID,
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		ProductID: productID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Entitlement{}, fmt.Errorf("error occurred during signing entitlement token: %w", err)
	}

	return models.Entitlement{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateEntitlementToken verifies the signature, issuer and expiry of an
// entitlement token and returns its claims.
//
// Example usage:
//
//	ent, err := utils.ValidateEntitlementToken(raw, "secret", "receipts")
//	if err != nil {
//	    // reject the purchase
//	}
func ValidateEntitlementToken(tokenString, signKey, issuer string) (models.Entitlement, error) {
	claims := &models.EntitlementClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return models.Entitlement{}, fmt.Errorf("%w: %w", ErrInvalidEntitlement, err)
	}

	if claims.ProductID == "" {
		return models.Entitlement{}, fmt.Errorf("%w: empty product id", ErrInvalidEntitlement)
	}

	return models.Entitlement{Token: token, Claims: *claims, SignedString: tokenString}, nil
}
