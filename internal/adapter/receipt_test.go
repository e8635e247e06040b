// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/lacnutry/internal/config"
	"github.com/MKhiriev/lacnutry/internal/logger"
	"github.com/MKhiriev/lacnutry/internal/utils"
	"github.com/MKhiriev/lacnutry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testHashKey        = "testhashkey"
	testEntitlementKey = "entitlement-secret"
	testIssuer         = "lacnutry-receipts"
)

func testPurchase() models.Purchase {
	return models.Purchase{
		Platform:      models.PlatformAndroid,
		ProductID:     "com.lactosefree.monthly",
		PurchaseToken: "tok-1",
	}
}

func newTestVerifier(t *testing.T, serverURL string) ReceiptVerifier {
	t.Helper()
	v, err := NewHTTPReceiptVerifier(config.Adapter{
		ReceiptAddress:    serverURL,
		HashKey:           testHashKey,
		EntitlementKey:    testEntitlementKey,
		EntitlementIssuer: testIssuer,
		RequestTimeout:    time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return v
}

// ── HTTP verifier ───────────────────────────────────────────────────────────

func TestHTTPReceiptVerifier_SignsRequestAndAcceptsEntitlement(t *testing.T) {
	ent, err := utils.GenerateEntitlementToken(testIssuer, "com.lactosefree.monthly", time.Hour, testEntitlementKey)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, verifyReceiptPath, r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, utils.HashString(string(body), testHashKey), r.Header.Get(utils.HashHeader))

		var req models.VerificationRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "tok-1", req.PurchaseToken)

		_, _ = utils.WriteJSON(w, models.VerificationResult{Success: true, Entitlement: ent.String()}, http.StatusOK)
	}))
	defer srv.Close()

	got, err := newTestVerifier(t, srv.URL).Verify(context.Background(), testPurchase())
	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, ent.String(), got.Entitlement)
}

func TestHTTPReceiptVerifier_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, models.VerificationResult{Success: false, Message: "expired"}, http.StatusOK)
	}))
	defer srv.Close()

	got, err := newTestVerifier(t, srv.URL).Verify(context.Background(), testPurchase())
	require.NoError(t, err)
	assert.False(t, got.Success)
	assert.Equal(t, "expired", got.Message)
}

func TestHTTPReceiptVerifier_EntitlementForOtherProduct(t *testing.T) {
	ent, err := utils.GenerateEntitlementToken(testIssuer, "com.lactosefree.annual", time.Hour, testEntitlementKey)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, models.VerificationResult{Success: true, Entitlement: ent.String()}, http.StatusOK)
	}))
	defer srv.Close()

	_, err = newTestVerifier(t, srv.URL).Verify(context.Background(), testPurchase())
	assert.ErrorIs(t, err, utils.ErrInvalidEntitlement)
}

func TestHTTPReceiptVerifier_EntitlementWrongKey(t *testing.T) {
	ent, err := utils.GenerateEntitlementToken(testIssuer, "com.lactosefree.monthly", time.Hour, "another-key")
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, models.VerificationResult{Success: true, Entitlement: ent.String()}, http.StatusOK)
	}))
	defer srv.Close()

	_, err = newTestVerifier(t, srv.URL).Verify(context.Background(), testPurchase())
	assert.ErrorIs(t, err, utils.ErrInvalidEntitlement)
}

func TestHTTPReceiptVerifier_BadResponseSignature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(utils.HashHeader, "deadbeef")
		_, _ = utils.WriteJSON(w, models.VerificationResult{Success: true}, http.StatusOK)
	}))
	defer srv.Close()

	_, err := newTestVerifier(t, srv.URL).Verify(context.Background(), testPurchase())
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestHTTPReceiptVerifier_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"bad gateway", http.StatusBadGateway, ErrBadGateway},
		{"internal", http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			_, err := newTestVerifier(t, srv.URL).Verify(context.Background(), testPurchase())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewHTTPReceiptVerifier_EmptyAddress(t *testing.T) {
	_, err := NewHTTPReceiptVerifier(config.Adapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

// ── Sandbox verifier ────────────────────────────────────────────────────────

func TestSandboxReceiptVerifier_IssuesEntitlement(t *testing.T) {
	v := NewSandboxReceiptVerifier(config.Adapter{EntitlementKey: testEntitlementKey, EntitlementIssuer: testIssuer}, logger.Nop())

	got, err := v.Verify(context.Background(), testPurchase())
	require.NoError(t, err)
	require.True(t, got.Success)

	ent, err := utils.ValidateEntitlementToken(got.Entitlement, testEntitlementKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "com.lactosefree.monthly", ent.ProductID())
}

func TestSandboxReceiptVerifier_NoKeyNoEntitlement(t *testing.T) {
	v := NewSandboxReceiptVerifier(config.Adapter{}, logger.Nop())

	got, err := v.Verify(context.Background(), testPurchase())
	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Empty(t, got.Entitlement)
}

func TestSandboxReceiptVerifier_MissingReceipt(t *testing.T) {
	v := NewSandboxReceiptVerifier(config.Adapter{}, logger.Nop())

	got, err := v.Verify(context.Background(), models.Purchase{ProductID: "com.lactosefree.monthly"})
	require.NoError(t, err)
	assert.False(t, got.Success)
}
