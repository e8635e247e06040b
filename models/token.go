package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// EntitlementClaims is the claim set of the entitlement token returned by
// the receipt verification server after a successful verification.
type EntitlementClaims struct {
	jwt.RegisteredClaims

	// ProductID is the store product the entitlement was granted for.
	ProductID string `json:"product_id"`
}

// Entitlement is a parsed and validated entitlement token.
type Entitlement struct {
	// Token is the underlying JWT. Excluded from JSON; only the compact
	// string form is meaningful outside the process.
	*jwt.Token `json:"-"`

	Claims EntitlementClaims `json:"-"`

	// SignedString is the compact JWS form of the token.
	SignedString string `json:"-"`
}

// ProductID returns the product the entitlement covers.
func (e *Entitlement) ProductID() string {
	return e.Claims.ProductID
}

// ExpiresAt returns the expiry of the entitlement, or an error when the token
// carries no exp claim.
func (e *Entitlement) ExpiresAt() (time.Time, error) {
	exp, err := e.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("entitlement has no expiry")
	}
	return exp.Time, nil
}

// String returns the compact JWS serialization of the token.
func (e *Entitlement) String() string {
	return e.SignedString
}
