package validators

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/lacnutry/models"
)

// Field name constants used to scope validation of profile-related models.
const (
	// FieldName targets a person's display name. It must not be blank.
	FieldName = "name"

	// FieldEmail targets an email address.
	FieldEmail = "email"

	// FieldPhone targets the optional phone number of a profile.
	FieldPhone = "phone"

	// FieldAllergies targets the allergy list of a profile.
	FieldAllergies = "allergies"

	// FieldPreferences targets the dietary preference list of a profile.
	FieldPreferences = "preferences"

	// FieldScanID targets the client supplied id of a scan record.
	FieldScanID = "scan_id"

	// FieldProductName targets the scanned product name.
	FieldProductName = "product_name"

	// FieldScanDate targets the scan timestamp.
	FieldScanDate = "scan_date"

	maxScanIDLength = 128
)

var (
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegexp = regexp.MustCompile(`^\+?[0-9 ()\-]{8,20}$`)
)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

// ProfileValidator validates [models.UserProfile] and [models.ScanRecord].
type ProfileValidator struct {
}

// NewProfileValidator constructs a ProfileValidator.
func NewProfileValidator() Validator {
	return &ProfileValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms are
// accepted. Returns ErrUnsupportedType for anything else.
func (v *ProfileValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserProfile:
		return v.validateProfile(ctx, value, fields...)
	case *models.UserProfile:
		return v.validateProfile(ctx, *value, fields...)

	case models.ScanRecord:
		return v.validateScanRecord(ctx, value, fields...)
	case *models.ScanRecord:
		return v.validateScanRecord(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateProfile checks a full profile replacement.
//
// Default fields: name, email, phone, allergies, preferences.
func (v *ProfileValidator) validateProfile(_ context.Context, profile models.UserProfile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPhone, FieldAllergies, FieldPreferences}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(profile.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if !IsValidEmail(strings.TrimSpace(profile.Email)) {
				return ErrInvalidEmail
			}
		case FieldPhone:
			// optional
			if profile.Phone != "" && !phoneRegexp.MatchString(profile.Phone) {
				return ErrInvalidPhone
			}
		case FieldAllergies:
			if hasBlank(profile.Allergies) {
				return ErrEmptyListEntry
			}
		case FieldPreferences:
			if hasBlank(profile.Preferences) {
				return ErrEmptyListEntry
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateScanRecord checks a history entry submitted by the scanner.
// ID and Date may be empty; the store fills them in.
//
// Default fields: scan_id, product_name, scan_date.
func (v *ProfileValidator) validateScanRecord(_ context.Context, record models.ScanRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldScanID, FieldProductName, FieldScanDate}
	}

	for _, f := range fields {
		switch f {
		case FieldScanID:
			if utf8.RuneCountInString(record.ID) > maxScanIDLength || (record.ID != "" && strings.TrimSpace(record.ID) == "") {
				return ErrInvalidScanID
			}
		case FieldProductName:
			if strings.TrimSpace(record.ProductName) == "" {
				return ErrEmptyProductName
			}
		case FieldScanDate:
			if record.Date == "" {
				continue
			}
			if _, err := time.Parse(time.RFC3339, record.Date); err != nil {
				return ErrInvalidScanDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func hasBlank(list []string) bool {
	for _, s := range list {
		if strings.TrimSpace(s) == "" {
			return true
		}
	}
	return false
}
