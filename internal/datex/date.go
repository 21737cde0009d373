// Package datex implements the DDMMYYYY integer encoding used for the
// date-of-birth field on profile records. The persisted value is a decimal
// number whose digits read day, month, year, e.g. 24071999 for 1999-07-24.
package datex

import (
	"errors"
	"time"
)

// ErrInvalidEncoding is returned for values that do not fit the 8-digit
// DDMMYYYY form.
var ErrInvalidEncoding = errors.New("invalid DDMMYYYY encoding")

// Encode packs day, month and year into the DDMMYYYY integer form.
// Components are not range-checked here; validation owns that.
func Encode(day, month, year int) int64 {
	return int64(day)*1_000_000 + int64(month)*10_000 + int64(year)
}

// EncodeTime packs the calendar date of t into the DDMMYYYY integer form.
func EncodeTime(t time.Time) int64 {
	return Encode(t.Day(), int(t.Month()), t.Year())
}

// Split unpacks a DDMMYYYY integer into its components. Values outside the
// 8-digit range (single-digit days are stored with an implicit leading zero)
// return ErrInvalidEncoding. No calendar checks are performed.
func Split(n int64) (day, month, year int, err error) {
	if n <= 0 || n > 99_999_999 {
		return 0, 0, 0, ErrInvalidEncoding
	}
	day = int(n / 1_000_000)
	month = int(n/10_000) % 100
	year = int(n % 10_000)
	return day, month, year, nil
}

// Date converts a DDMMYYYY integer to a time.Time in the local zone.
// Out-of-range components are normalized the way time.Date does
// (e.g. day 32 rolls into the next month); callers that need strict
// components should use Split.
func Date(n int64) (time.Time, error) {
	day, month, year, err := Split(n)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}
