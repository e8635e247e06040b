// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	if TraceIDCtxKey.String() != "traceID" {
		t.Errorf("expected 'traceID', got '%s'", TraceIDCtxKey.String())
	}
}

func TestGetTraceIDFromContext(t *testing.T) {
	ctx := WithTraceID(context.Background(), "abc")
	id, ok := GetTraceIDFromContext(ctx)
	if !ok || id != "abc" {
		t.Fatalf("expected abc/true, got %q/%v", id, ok)
	}

	if _, ok := GetTraceIDFromContext(context.Background()); ok {
		t.Fatal("expected ok=false for missing value")
	}
	if _, ok := GetTraceIDFromContext(context.WithValue(context.Background(), TraceIDCtxKey, 42)); ok {
		t.Fatal("expected ok=false for wrong type")
	}
}
