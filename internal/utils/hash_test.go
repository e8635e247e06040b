// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/lacnutry/models"
)

const testHashKey = "test-secret-key"

func TestSigner_MatchesDirectHMAC(t *testing.T) {
	s := NewSigner(testHashKey)
	data := []byte("test-data")

	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write(data)
	expected := hex.EncodeToString(h.Sum(nil))

	if got := s.SignHex(data); got != expected {
		t.Fatalf("unexpected signature\nwant: %s\ngot:  %s", expected, got)
	}
	if s.SignHex(data) != s.SignHex(data) {
		t.Fatal("signature must be deterministic for the same input")
	}
}

func TestSigner_VerifyVerificationRequest(t *testing.T) {
	s := NewSigner(testHashKey)

	body, err := json.Marshal(models.VerificationRequest{
		Platform:      models.PlatformAndroid,
		ProductID:     "com.lactosefree.monthly",
		PurchaseToken: "token-1",
	})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	sig := s.SignHex(body)
	if !s.Verify(body, sig) {
		t.Fatal("expected signature to verify")
	}

	// Меняем тело: подпись больше не должна совпадать
	tampered := append([]byte{}, body...)
	tampered[len(tampered)-2] = 'X'
	if s.Verify(tampered, sig) {
		t.Fatal("expected tampered body to fail verification")
	}
	if s.Verify(body, "not-hex") {
		t.Fatal("expected malformed signature to fail verification")
	}
}

func TestNewSigner_EmptyKeyDisabled(t *testing.T) {
	if NewSigner("").Enabled() {
		t.Fatal("expected signer without key to be disabled")
	}
	if !NewSigner("k").Enabled() {
		t.Fatal("expected signer with key to be enabled")
	}
}

func TestHashString_MatchesSigner(t *testing.T) {
	if HashString("abc", testHashKey) != NewSigner(testHashKey).SignHex([]byte("abc")) {
		t.Fatal("HashString and Signer must agree")
	}
}
