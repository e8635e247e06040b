package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateEntitlementToken_Success(t *testing.T) {
	token, err := GenerateEntitlementToken("receipts", "com.lactosefree.annual", time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.ProductID() != "com.lactosefree.annual" {
		t.Errorf("expected product id, got %s", token.ProductID())
	}
}

func TestGenerateEntitlementToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		issuer    string
		productID string
		duration  time.Duration
		key       string
	}{
		{"empty issuer", "", "p", time.Hour, "key"},
		{"empty product", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "p", 0, "key"},
		{"empty key", "iss", "p", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateEntitlementToken(tt.issuer, tt.productID, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateEntitlementToken_RoundTrip(t *testing.T) {
	generated, err := GenerateEntitlementToken("receipts", "com.lactosefree.monthly", 5*time.Minute, "secret-key")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	parsed, err := ValidateEntitlementToken(generated.SignedString, "secret-key", "receipts")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.ProductID() != "com.lactosefree.monthly" {
		t.Errorf("unexpected product id %q", parsed.ProductID())
	}
	exp, err := parsed.ExpiresAt()
	if err != nil {
		t.Fatalf("expected expiry, got error: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Errorf("expected expiry in the future, got %v", exp)
	}
}

func TestValidateEntitlementToken_Rejects(t *testing.T) {
	valid, _ := GenerateEntitlementToken("receipts", "p", time.Hour, "secret-key")
	expired, _ := GenerateEntitlementToken("receipts", "p", -time.Hour, "secret-key")

	noProduct := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "receipts",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	noProductStr, _ := noProduct.SignedString([]byte("secret-key"))

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other-key", "receipts"},
		{"wrong issuer", valid.SignedString, "secret-key", "someone-else"},
		{"expired", expired.SignedString, "secret-key", "receipts"},
		{"garbage", "not.a.token", "secret-key", "receipts"},
		{"no product", noProductStr, "secret-key", "receipts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateEntitlementToken(tt.token, tt.key, tt.issuer)
			if !errors.Is(err, ErrInvalidEntitlement) {
				t.Errorf("expected ErrInvalidEntitlement, got %v", err)
			}
		})
	}
}
