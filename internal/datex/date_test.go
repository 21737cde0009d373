package datex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSplit_RoundTrip(t *testing.T) {
	// Every valid calendar date between 1900-01-01 and today must survive
	// encode -> split -> encode unchanged.
	start := time.Date(1900, 1, 1, 0, 0, 0, 0, time.Local)
	end := time.Now()

	// Stepping by 13 days keeps the test fast while still crossing month
	// and year boundaries in every pattern.
	for d := start; d.Before(end); d = d.AddDate(0, 0, 13) {
		n := EncodeTime(d)
		day, month, year, err := Split(n)
		require.NoError(t, err, "date %v", d)
		assert.Equal(t, d.Day(), day)
		assert.Equal(t, int(d.Month()), month)
		assert.Equal(t, d.Year(), year)
		assert.Equal(t, n, Encode(day, month, year))
	}
}

func TestSplit_SingleDigitDay(t *testing.T) {
	// 5021990 is 05-02-1990 with the leading zero dropped by integer storage.
	day, month, year, err := Split(5_021_990)
	require.NoError(t, err)
	assert.Equal(t, 5, day)
	assert.Equal(t, 2, month)
	assert.Equal(t, 1990, year)
}

func TestSplit_Invalid(t *testing.T) {
	for _, n := range []int64{0, -1, 100_000_000, 245_071_999_0} {
		_, _, _, err := Split(n)
		assert.ErrorIs(t, err, ErrInvalidEncoding, "n=%d", n)
	}
}

func TestDate(t *testing.T) {
	d, err := Date(24_071_999)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1999, 7, 24, 0, 0, 0, 0, time.Local), d)
}

func TestDate_NormalizesOverflow(t *testing.T) {
	// Day 31 in April normalizes to May 1, mirroring how the month and day
	// ranges are checked separately from calendar construction.
	d, err := Date(31_041_999)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1999, 5, 1, 0, 0, 0, 0, time.Local), d)
}
