// Package validation implements the profile form rule set. All checks are
// pure and synchronous; they never touch the network and can run on every
// keystroke. Per field the first failing rule wins; across fields every rule
// runs so the caller gets the complete error map in one pass.
package validation

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/trananh2004/shopfront/internal/client/models"
	"github.com/trananh2004/shopfront/internal/datex"
)

// Field keys used in the Errors map. They match the JSON field names of the
// profile record so the caller can attach messages to inputs directly.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhoneNumber = "phoneNumber"
	FieldAddress     = "address"
	FieldCompany     = "company"
	FieldDob         = "dob"
)

var (
	ErrNameRequired     = errors.New("name must not be empty")
	ErrNameTooShort     = errors.New("name must be at least 2 characters")
	ErrNameTooLong      = errors.New("name must be at most 50 characters")
	ErrNameInvalidChars = errors.New("name may only contain letters and spaces")

	ErrEmailRequired = errors.New("email must not be empty")
	ErrEmailTooLong  = errors.New("email must be at most 100 characters")
	ErrEmailInvalid  = errors.New("email format is invalid")

	ErrPhoneInvalid = errors.New("phone number is not a valid mobile number")

	ErrCompanyTooShort = errors.New("company must be at least 2 characters")
	ErrCompanyTooLong  = errors.New("company must be at most 100 characters")

	ErrDobDigits    = errors.New("date of birth must encode to 8 digits (DDMMYYYY)")
	ErrDobYearRange = errors.New("year of birth must be between 1900 and the current year")
	ErrDobMonth     = errors.New("month of birth must be between 1 and 12")
	ErrDobFuture    = errors.New("date of birth must not be in the future")
)

var (
	// Letters, spaces, and the Latin accented range used by Vietnamese names.
	nameRe = regexp.MustCompile(`^[a-zA-ZÀ-ỹ\s]+$`)

	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Leading 0, 84 or +84, a mobile carrier prefix digit, then 8 digits.
	phoneRe = regexp.MustCompile(`^(\+84|84|0)(3|5|7|8|9)[0-9]{8}$`)

	phoneStripRe = regexp.MustCompile(`[\s\-.]`)
)

// Errors is a sparse field-to-message mapping. A missing key means the field
// is currently valid; an empty map means the whole draft is save-eligible.
type Errors map[string]string

func (e Errors) Empty() bool { return len(e) == 0 }

// ValidateName checks the display name: required, trimmed length 2..50,
// letters/spaces/accented letters only. Checked in that order.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameRequired
	}
	n := len([]rune(trimmed))
	if n < 2 {
		return ErrNameTooShort
	}
	if n > 50 {
		return ErrNameTooLong
	}
	if !nameRe.MatchString(trimmed) {
		return ErrNameInvalidChars
	}
	return nil
}

// ValidateEmail checks the email: required, trimmed length <=100, and a
// local@domain.tld shape.
func ValidateEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return ErrEmailRequired
	}
	if len([]rune(trimmed)) > 100 {
		return ErrEmailTooLong
	}
	if !emailRe.MatchString(trimmed) {
		return ErrEmailInvalid
	}
	return nil
}

// ValidatePhoneNumber checks an optional Vietnamese mobile number. Spaces,
// hyphens and dots are stripped before matching. Empty input is valid.
func ValidatePhoneNumber(phone string) error {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return nil
	}
	clean := phoneStripRe.ReplaceAllString(trimmed, "")
	if !phoneRe.MatchString(clean) {
		return ErrPhoneInvalid
	}
	return nil
}

// ValidateAddress accepts any address, including empty. The permissive rule
// is deliberate; tightening it is a product decision, not a bug fix.
func ValidateAddress(address string) error {
	return nil
}

// ValidateCompany checks an optional company name: trimmed length 2..100
// when present.
func ValidateCompany(company string) error {
	trimmed := strings.TrimSpace(company)
	if trimmed == "" {
		return nil
	}
	n := len([]rune(trimmed))
	if n < 2 {
		return ErrCompanyTooShort
	}
	if n > 100 {
		return ErrCompanyTooLong
	}
	return nil
}

// ValidateDob checks an optional DDMMYYYY-encoded date of birth: exactly
// 8 decimal digits, year in [1900, current year], month in [1,12], and the
// resulting calendar date not in the future. Day-of-month consistency with
// the specific month is not checked; day overflow normalizes the same way
// the calendar construction does.
func ValidateDob(dob int64) error {
	if dob == 0 {
		return nil
	}
	if dob < 10_000_000 || dob > 99_999_999 {
		return ErrDobDigits
	}
	_, month, year, err := datex.Split(dob)
	if err != nil {
		return ErrDobDigits
	}

	now := time.Now()
	if year < 1900 || year > now.Year() {
		return ErrDobYearRange
	}
	if month < 1 || month > 12 {
		return ErrDobMonth
	}

	birth, err := datex.Date(dob)
	if err != nil {
		return ErrDobDigits
	}
	if birth.After(now) {
		return ErrDobFuture
	}
	return nil
}

// ValidateDraft runs every field rule independently and returns the union of
// failures. Field errors never short-circuit each other.
func ValidateDraft(d *models.FormDraft) Errors {
	errs := Errors{}

	put := func(field string, err error) {
		if err != nil {
			errs[field] = err.Error()
		}
	}

	put(FieldName, ValidateName(d.Name))
	put(FieldEmail, ValidateEmail(d.Email))
	put(FieldPhoneNumber, ValidatePhoneNumber(d.PhoneNumber))
	put(FieldAddress, ValidateAddress(d.Address))
	put(FieldCompany, ValidateCompany(d.Company))
	put(FieldDob, ValidateDob(d.DobNumber()))

	return errs
}
