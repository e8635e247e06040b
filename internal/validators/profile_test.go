// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/lacnutry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validProfile() models.UserProfile {
	return models.UserProfile{
		Name:        "Ana Souza",
		Email:       "ana@example.com",
		Phone:       "+55 (11) 91234-5678",
		Allergies:   []string{"Lactose"},
		Preferences: []string{"Vegano"},
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestProfileValidator_Dispatch(t *testing.T) {
	v := NewProfileValidator()
	ctx := context.Background()

	p := validProfile()
	require.NoError(t, v.Validate(ctx, p))
	require.NoError(t, v.Validate(ctx, &p))

	r := models.ScanRecord{ProductName: "Leite de aveia"}
	require.NoError(t, v.Validate(ctx, r))
	require.NoError(t, v.Validate(ctx, &r))

	assert.ErrorIs(t, v.Validate(ctx, "profile"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, p, "unknown"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// UserProfile
// ---------------------------------------------------------------------------

func TestProfileValidator_Profile(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *models.UserProfile)
		want   error
	}{
		{"valid", func(p *models.UserProfile) {}, nil},
		{"blank name", func(p *models.UserProfile) { p.Name = "   " }, ErrEmptyName},
		{"email without domain", func(p *models.UserProfile) { p.Email = "ana@" }, ErrInvalidEmail},
		{"email with spaces", func(p *models.UserProfile) { p.Email = "a na@x.com" }, ErrInvalidEmail},
		{"phone optional", func(p *models.UserProfile) { p.Phone = "" }, nil},
		{"phone letters", func(p *models.UserProfile) { p.Phone = "call me" }, ErrInvalidPhone},
		{"empty allergies list ok", func(p *models.UserProfile) { p.Allergies = nil }, nil},
		{"blank allergy", func(p *models.UserProfile) { p.Allergies = []string{"Lactose", ""} }, ErrEmptyListEntry},
		{"blank preference", func(p *models.UserProfile) { p.Preferences = []string{" "} }, ErrEmptyListEntry},
	}

	v := NewProfileValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)

			err := v.Validate(context.Background(), p)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestProfileValidator_ScopedFields(t *testing.T) {
	v := NewProfileValidator()
	p := models.UserProfile{Name: "Ana", Email: "broken"}

	assert.NoError(t, v.Validate(context.Background(), p, FieldName))
	assert.ErrorIs(t, v.Validate(context.Background(), p, FieldName, FieldEmail), ErrInvalidEmail)
}

// ---------------------------------------------------------------------------
// ScanRecord
// ---------------------------------------------------------------------------

func TestProfileValidator_ScanRecord(t *testing.T) {
	tests := []struct {
		name   string
		record models.ScanRecord
		want   error
	}{
		{"minimal", models.ScanRecord{ProductName: "Iogurte"}, nil},
		{"full", models.ScanRecord{ID: "abc", ProductName: "Iogurte", Date: "2026-03-14T10:00:00Z", HasLactose: true}, nil},
		{"legacy millis", models.ScanRecord{ProductName: "Iogurte", Date: "2026-03-14T10:00:00.123Z"}, nil},
		{"no product", models.ScanRecord{ProductName: " "}, ErrEmptyProductName},
		{"bad date", models.ScanRecord{ProductName: "Iogurte", Date: "14/03/2026"}, ErrInvalidScanDate},
		{"blank id", models.ScanRecord{ID: "  ", ProductName: "Iogurte"}, ErrInvalidScanID},
		{"long id", models.ScanRecord{ID: strings.Repeat("x", 129), ProductName: "Iogurte"}, ErrInvalidScanID},
	}

	v := NewProfileValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.record)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("usuario@email.com"))
	assert.True(t, IsValidEmail("a.b+c@sub.domain.br"))
	assert.False(t, IsValidEmail("usuario@email"))
	assert.False(t, IsValidEmail("@email.com"))
	assert.False(t, IsValidEmail(""))
}
