package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trananh2004/shopfront/internal/client/models"
	"github.com/trananh2004/shopfront/internal/datex"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrNameRequired},
		{"only spaces", "    ", ErrNameRequired},
		{"too short", "A", ErrNameTooShort},
		{"too short after trim", "  A  ", ErrNameTooShort},
		{"minimum length", "An", nil},
		{"plain name", "Nguyen Van A", nil},
		{"accented name", "Trần Thị Bích Hằng", nil},
		{"fifty chars", strings.Repeat("ab", 25), nil},
		{"too long", strings.Repeat("a", 51), ErrNameTooLong},
		{"digits", "Nguyen 9", ErrNameInvalidChars},
		{"punctuation", "Anna-Maria", ErrNameInvalidChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateName(tt.in))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	long := strings.Repeat("a", 95) + "@b.com" // 101 chars

	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrEmailRequired},
		{"valid", "x@y.com", nil},
		{"subdomain", "user@mail.example.org", nil},
		{"trimmed", "  x@y.com  ", nil},
		{"too long", long, ErrEmailTooLong},
		{"no at", "xy.com", ErrEmailInvalid},
		{"no tld", "x@ycom", ErrEmailInvalid},
		{"spaces inside", "x y@z.com", ErrEmailInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateEmail(tt.in))
		})
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty is allowed", "", nil},
		{"local form", "0912345678", nil},
		{"international form", "+84912345678", nil},
		{"bare country code", "84912345678", nil},
		{"separators stripped", "091-234.56 78", nil},
		{"carrier prefix 3", "0312345678", nil},
		{"bad carrier prefix", "0112345678", ErrPhoneInvalid},
		{"too short", "091234567", ErrPhoneInvalid},
		{"too long", "09123456789", ErrPhoneInvalid},
		{"letters", "09123x5678", ErrPhoneInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePhoneNumber(tt.in))
		})
	}
}

func TestValidateCompany(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty is allowed", "", nil},
		{"minimum", "AB", nil},
		{"too short", "A", ErrCompanyTooShort},
		{"too long", strings.Repeat("c", 101), ErrCompanyTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateCompany(tt.in))
		})
	}
}

func TestValidateAddress_AlwaysAccepts(t *testing.T) {
	assert.NoError(t, ValidateAddress(""))
	assert.NoError(t, ValidateAddress("anything at all, including 'weird' chars 123"))
}

func TestValidateDob(t *testing.T) {
	now := time.Now()

	// The year bound is checked before the future bound, so a tomorrow that
	// falls into the next year trips the year rule instead.
	tomorrow := now.AddDate(0, 0, 1)
	future := datex.EncodeTime(tomorrow)
	wantFuture := ErrDobFuture
	if tomorrow.Year() != now.Year() {
		wantFuture = ErrDobYearRange
	}

	tests := []struct {
		name string
		in   int64
		want error
	}{
		{"unset is allowed", 0, nil},
		{"valid date", 24_071_999, nil},
		{"seven digits", 5_021_990, ErrDobDigits},
		{"nine digits", 123_456_789_0, ErrDobDigits},
		{"year before 1900", 24_071_899, ErrDobYearRange},
		{"year in the future", datex.Encode(24, 7, now.Year()+1), ErrDobYearRange},
		{"month zero", 24_001_999, ErrDobMonth},
		{"month thirteen", 24_131_999, ErrDobMonth},
		{"tomorrow", future, wantFuture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateDob(tt.in))
		})
	}
}

func TestValidateDob_DayOverflowNormalizes(t *testing.T) {
	// Day 31 in a 30-day month passes the rule set: day-of-month consistency
	// is intentionally not checked, only year, month, and the future bound.
	assert.NoError(t, ValidateDob(31_041_999))
	// Day 31 in February 1999 normalizes to March 3 and is still in the past.
	assert.NoError(t, ValidateDob(31_021_999))
}

func TestValidateDraft_CollectsAllFieldErrors(t *testing.T) {
	dob := time.Now().AddDate(0, 0, 7)
	d := &models.FormDraft{
		Name:        "A",
		Email:       "not-an-email",
		PhoneNumber: "12345",
		Company:     "X",
		Dob:         &dob,
	}

	errs := ValidateDraft(d)

	assert.Len(t, errs, 5)
	assert.Equal(t, ErrNameTooShort.Error(), errs[FieldName])
	assert.Equal(t, ErrEmailInvalid.Error(), errs[FieldEmail])
	assert.Equal(t, ErrPhoneInvalid.Error(), errs[FieldPhoneNumber])
	assert.Equal(t, ErrCompanyTooShort.Error(), errs[FieldCompany])
	assert.NotContains(t, errs, FieldAddress)
}

func TestValidateDraft_ValidDraftIsEmpty(t *testing.T) {
	dob := time.Date(1999, 7, 24, 0, 0, 0, 0, time.Local)
	d := &models.FormDraft{
		Name:        "Nguyen Van A",
		Email:       "a@example.com",
		PhoneNumber: "0912345678",
		Address:     "12 Tran Hung Dao",
		Company:     "ACME",
		Dob:         &dob,
	}

	errs := ValidateDraft(d)
	assert.True(t, errs.Empty(), "unexpected errors: %v", errs)
}
