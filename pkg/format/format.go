// Package format provides the shared currency and percentage formatting
// used by the chart, legend and table renderers. All three surfaces must
// produce byte-identical strings for the same value, so the rules live in
// one place.
package format

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
)

// displayCurrency is the fixed display currency for the dashboard.
// Holdings are stored already converted; no conversion happens here.
const displayCurrency = money.USD

// Currency formats an amount as a currency string with two decimals,
// e.g. 1234.5 -> "$1,234.50".
func Currency(amount float64) string {
	return asMoney(amount).Display()
}

// SignedCurrency formats an amount with an explicit sign,
// e.g. 1234.5 -> "+$1,234.50", -20 -> "-$20.00".
// Zero is rendered without a sign.
func SignedCurrency(amount float64) string {
	s := asMoney(amount).Display()
	if amount > 0 {
		return "+" + s
	}
	return s
}

// Percent formats a percentage with one decimal, e.g. 37.5 -> "37.5%".
func Percent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// SignedPercent formats a percentage with two decimals and an explicit
// sign, e.g. 4.2 -> "+4.20%". Used for gain/loss and day-change figures.
func SignedPercent(pct float64) string {
	return fmt.Sprintf("%+.2f%%", pct)
}

// asMoney converts a float amount to minor units. Rounding to the nearest
// cent happens here and nowhere else.
func asMoney(amount float64) *money.Money {
	return money.New(int64(math.Round(amount*100)), displayCurrency)
}
