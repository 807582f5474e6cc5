// Package money converts between milliunit amounts and display strings.
// Milliunits are the YNAB wire format: 1000 milliunits = $1.00.
package money

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatMilliunits renders a milliunit amount as a currency display string,
// e.g. 125000 -> "$125.00", -1500 -> "-$1.50". The sign precedes the
// currency symbol. Amounts that are not a whole number of cents are rounded
// to two decimal places for display only.
func FormatMilliunits(milliunits int64) string {
	negative := milliunits < 0
	abs := milliunits
	if negative {
		abs = -abs
	}

	// Round to whole cents: 1 cent = 10 milliunits.
	cents := (abs + 5) / 10

	formatted := fmt.Sprintf("$%s.%02d", humanize.Comma(cents/100), cents%100)
	if negative {
		return "-" + formatted
	}
	return formatted
}

// DollarsToMilliunits converts a dollar amount to milliunits, rounding to
// the nearest milliunit so float representation noise (1.15 stored as
// 1.14999...) cannot shift the result.
func DollarsToMilliunits(dollars float64) int64 {
	return int64(math.Round(dollars * 1000))
}
